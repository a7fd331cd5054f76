package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/decantlabs/decant"
	"github.com/decantlabs/decant/pipeline"
	"github.com/decantlabs/decant/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	DB       *sqlite.DB
	History  decant.HistoryService
	Pipeline *pipeline.Pipeline
	Fetcher  decant.Fetcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log pipeline activity to stderr"`

	Extract ExtractCmd `cmd:"" help:"Extract main content from a page"`
	Batch   BatchCmd   `cmd:"" help:"Extract content from multiple URLs"`
	History HistoryCmd `cmd:"" help:"Manage saved extractions"`
}

// ExtractCmd is the "extract" subcommand. Input is a URL, a local file
// path, or "-" for stdin.
type ExtractCmd struct {
	Input    string `arg:"" help:"Page URL, HTML file path, or - for stdin"`
	URL      string `short:"u" help:"Page URL when input is a file or stdin"`
	Title    string `short:"t" help:"Fallback title when the page has none"`
	Format   string `short:"f" default:"markdown" help:"Output format: markdown, json, or mcp"`
	Engine   string `default:"readability" enum:"readability,trafilatura" help:"Main content extraction engine"`
	FullPage bool   `help:"Skip main content detection and use the cleaned full page"`
	NoImages bool   `help:"Drop images from output"`
	NoTables bool   `help:"Skip table detection"`
	NoSmart  bool   `help:"Skip entity detection"`
	Out      string `short:"o" help:"Write output to file instead of stdout"`
	Save     bool   `short:"s" help:"Save the extraction to history"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	URLs        []string `arg:"" help:"Page URLs to extract"`
	Format      string   `short:"f" default:"markdown" help:"Output format: markdown, json, or mcp"`
	Engine      string   `default:"readability" enum:"readability,trafilatura" help:"Main content extraction engine"`
	FullPage    bool     `help:"Skip main content detection and use the cleaned full page"`
	NoImages    bool     `help:"Drop images from output"`
	NoTables    bool     `help:"Skip table detection"`
	NoSmart     bool     `help:"Skip entity detection"`
	OutDir      string   `short:"d" default:"." help:"Directory to write output files to"`
	Save        bool     `short:"s" help:"Save each extraction to history"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
	RateLimit   float64  `default:"1" help:"Requests per second per host"`
}

// HistoryCmd groups the history subcommands.
type HistoryCmd struct {
	List   HistoryListCmd   `cmd:"" help:"List saved extractions"`
	Show   HistoryShowCmd   `cmd:"" help:"Print a saved extraction"`
	Delete HistoryDeleteCmd `cmd:"" help:"Delete a saved extraction"`
}

// HistoryListCmd is the "history list" subcommand.
type HistoryListCmd struct {
	Domain string `help:"Filter by domain"`
	Format string `help:"Filter by format"`
	Limit  int    `default:"20" help:"Maximum rows to show"`
	Offset int    `help:"Rows to skip"`
}

// HistoryShowCmd is the "history show" subcommand.
type HistoryShowCmd struct {
	ID string `arg:"" help:"Extraction ID"`
}

// HistoryDeleteCmd is the "history delete" subcommand.
type HistoryDeleteCmd struct {
	ID string `arg:"" help:"Extraction ID"`
}
