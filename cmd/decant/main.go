package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/decantlabs/decant"
	"github.com/decantlabs/decant/htmltomarkdown"
	dechttp "github.com/decantlabs/decant/http"
	"github.com/decantlabs/decant/pipeline"
	"github.com/decantlabs/decant/readability"
	decslog "github.com/decantlabs/decant/slog"
	"github.com/decantlabs/decant/sqlite"
	"github.com/decantlabs/decant/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Stdin is the source for "extract -". Set before calling Run().
	Stdin io.Reader

	// SQLite database used by the history service.
	DB *sqlite.DB

	// History service, exposed for end-to-end testing.
	History decant.HistoryService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Stdin:  os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("decant"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'decant --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The selected command comes from the parsed context rather than the raw
	// arguments so that root flags before the command name resolve correctly.
	cmd := strings.Fields(kongCtx.Command())[0]

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}
	deps.Logger = logger

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DECANT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.History = sqlite.NewHistoryService(m.DB)
	deps.DB = m.DB
	deps.History = m.History

	// Wire command-specific dependencies
	switch cmd {
	case "extract":
		deps.Pipeline = newPipeline(cli.Extract.Engine, logger)
		deps.Fetcher = decslog.NewLoggingFetcher(dechttp.NewFetcher(), logger)
	case "batch":
		deps.Pipeline = newPipeline(cli.Batch.Engine, logger)
		deps.Fetcher = decslog.NewLoggingFetcher(
			dechttp.NewFetcher(dechttp.WithRateLimit(cli.Batch.RateLimit)), logger)
	}

	return kongCtx.Run(deps)
}

// newPipeline builds the extraction pipeline for the selected engine.
func newPipeline(engine string, logger *slog.Logger) *pipeline.Pipeline {
	var extractor decant.Extractor
	switch engine {
	case "trafilatura":
		extractor = trafilatura.NewExtractor()
	default:
		extractor = readability.NewExtractor()
	}

	return pipeline.New(
		decslog.NewLoggingExtractor(extractor, logger),
		htmltomarkdown.NewConverter(),
	)
}

func defaultDBPath() string {
	if path := os.Getenv("DECANT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "decant.db"
	}
	dir := filepath.Join(home, ".decant")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "decant.db")
}
