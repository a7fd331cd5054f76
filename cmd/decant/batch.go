package main

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/decantlabs/decant"
	"golang.org/x/sync/errgroup"
)

// Run executes the batch command. URLs are fetched and extracted
// concurrently; one output file is written per URL.
func (c *BatchCmd) Run(deps *Dependencies) error {
	if err := os.MkdirAll(c.OutDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", c.OutDir, err)
	}

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)

	for i, pageURL := range c.URLs {
		g.Go(func() error {
			html, err := deps.Fetcher.Fetch(ctx, pageURL)
			if err != nil {
				return fmt.Errorf("fetch %s: %w", pageURL, err)
			}

			opts := decant.NewExtractOptions(html, pageURL)
			opts.Format = decant.Format(c.Format)
			opts.FullPage = c.FullPage
			opts.IncludeImages = !c.NoImages
			opts.DetectTables = !c.NoTables
			opts.SmartExtract = !c.NoSmart

			result, err := deps.Pipeline.Extract(opts)
			if err != nil {
				return fmt.Errorf("extract %s: %w", pageURL, err)
			}

			name := outputName(result, pageURL, i)
			path := filepath.Join(c.OutDir, name)
			if err := os.WriteFile(path, []byte(result.Output), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			fmt.Fprintf(deps.Stdout, "wrote %s (%d words)\n", path, result.Metadata.WordCount)

			if c.Save {
				if err := deps.History.CreateExtraction(ctx, recordFromResult(result)); err != nil {
					return fmt.Errorf("save %s: %w", pageURL, err)
				}
			}

			return nil
		})
	}

	return g.Wait()
}

// outputName derives a file name for an extraction: the slugified title,
// falling back to the URL path, with an extension matching the format.
func outputName(result *decant.ExtractResult, pageURL string, index int) string {
	slug := decant.Slugify(result.Metadata.Title)
	if slug == "" {
		if u, err := url.Parse(pageURL); err == nil {
			slug = decant.Slugify(u.Hostname() + " " + u.Path)
		}
	}
	if slug == "" {
		slug = fmt.Sprintf("page-%d", index+1)
	}

	ext := "md"
	switch result.Format {
	case decant.FormatJSON:
		ext = "json"
	case decant.FormatMCP:
		ext = "txt"
	}

	return slug + "." + ext
}
