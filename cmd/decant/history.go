package main

import (
	"fmt"
	"time"

	"github.com/decantlabs/decant"
)

// Run executes the history list command.
func (c *HistoryListCmd) Run(deps *Dependencies) error {
	filter := decant.ExtractionFilter{
		Limit:  c.Limit,
		Offset: c.Offset,
	}
	if c.Domain != "" {
		filter.Domain = &c.Domain
	}
	if c.Format != "" {
		format := decant.ParseFormat(c.Format)
		filter.Format = &format
	}

	recs, err := deps.History.FindExtractions(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", decant.ErrorMessage(err))
		return err
	}

	if len(recs) == 0 {
		fmt.Fprintln(deps.Stdout, "No saved extractions. Use 'decant extract --save' to create one.")
		return nil
	}

	for _, rec := range recs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %-8s  %6d words  %s\n",
			rec.ID, rec.CreatedAt.Format(time.DateTime), rec.Format, rec.WordCount, rec.URL)
	}

	return nil
}

// Run executes the history show command.
func (c *HistoryShowCmd) Run(deps *Dependencies) error {
	rec, err := deps.History.FindExtractionByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", decant.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, rec.Output)
	return nil
}

// Run executes the history delete command.
func (c *HistoryDeleteCmd) Run(deps *Dependencies) error {
	if err := deps.History.DeleteExtraction(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", decant.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "deleted %s\n", c.ID)
	return nil
}
