package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/decantlabs/decant"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	html, pageURL, err := c.readInput(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", decant.ErrorMessage(err))
		return err
	}

	opts := decant.NewExtractOptions(html, pageURL)
	opts.Title = c.Title
	opts.Format = decant.Format(c.Format)
	opts.FullPage = c.FullPage
	opts.IncludeImages = !c.NoImages
	opts.DetectTables = !c.NoTables
	opts.SmartExtract = !c.NoSmart

	result, err := deps.Pipeline.Extract(opts)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", decant.ErrorMessage(err))
		return err
	}

	if c.Out != "" {
		if err := os.WriteFile(c.Out, []byte(result.Output), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", c.Out, err)
		}
		fmt.Fprintf(deps.Stdout, "wrote %s (%d words)\n", c.Out, result.Metadata.WordCount)
	} else {
		fmt.Fprintln(deps.Stdout, result.Output)
	}

	if c.Save {
		rec := recordFromResult(result)
		if err := deps.History.CreateExtraction(deps.Ctx, rec); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", decant.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "saved %s\n", rec.ID)
	}

	return nil
}

// readInput resolves the input argument into raw HTML and the page URL.
func (c *ExtractCmd) readInput(deps *Dependencies) (html, pageURL string, err error) {
	switch {
	case strings.HasPrefix(c.Input, "http://") || strings.HasPrefix(c.Input, "https://"):
		pageURL = c.Input
		if c.URL != "" {
			pageURL = c.URL
		}
		html, err = deps.Fetcher.Fetch(deps.Ctx, c.Input)
		return html, pageURL, err

	case c.Input == "-":
		b, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), c.URL, nil

	default:
		b, err := os.ReadFile(c.Input)
		if err != nil {
			return "", "", fmt.Errorf("failed to read %s: %w", c.Input, err)
		}
		return string(b), c.URL, nil
	}
}

// recordFromResult builds a history record from an extraction result.
func recordFromResult(result *decant.ExtractResult) *decant.ExtractionRecord {
	return &decant.ExtractionRecord{
		URL:       result.Metadata.URL,
		Domain:    result.Metadata.Domain,
		Title:     result.Metadata.Title,
		Format:    result.Format,
		Output:    result.Output,
		WordCount: result.Metadata.WordCount,
	}
}
