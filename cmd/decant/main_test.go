package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	main "github.com/decantlabs/decant/cmd/decant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPage = `<!DOCTYPE html>
<html>
<head>
<title>Test Article</title>
<meta property="og:site_name" content="Test Site">
</head>
<body>
<nav><a href="/">Home Nav Link</a></nav>
<article><h1>Test Article</h1><p>The page body text for extraction.</p></article>
</body>
</html>`

// newTestMain returns a Main wired to a temp database and the given stdin.
func newTestMain(t *testing.T, stdin string) *main.Main {
	t.Helper()
	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "decant.db")
	m.Stdin = strings.NewReader(stdin)
	return m
}

func run(t *testing.T, m *main.Main, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err = m.Run(context.Background(), args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestCmdExtract(t *testing.T) {
	t.Parallel()

	t.Run("extracts stdin to markdown", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t, testPage)
		stdout, _, err := run(t, m, "extract", "-", "--url", "https://example.com/article")
		require.NoError(t, err)

		assert.Contains(t, stdout, "# Test Article")
		assert.Contains(t, stdout, "> **Source:** https://example.com/article")
		assert.Contains(t, stdout, "The page body text for extraction.")
		assert.NotContains(t, stdout, "Home Nav Link")
	})

	t.Run("extracts file input", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		require.NoError(t, os.WriteFile(path, []byte(testPage), 0644))

		m := newTestMain(t, "")
		stdout, _, err := run(t, m, "extract", path, "--url", "https://example.com/article")
		require.NoError(t, err)
		assert.Contains(t, stdout, "# Test Article")
	})

	t.Run("json format", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t, testPage)
		stdout, _, err := run(t, m, "extract", "-", "--url", "https://example.com/article", "--format", "json")
		require.NoError(t, err)

		assert.Contains(t, stdout, `"version": "1.0"`)
		assert.Contains(t, stdout, `"domain": "example.com"`)
	})

	t.Run("unknown format falls back to markdown", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t, testPage)
		stdout, _, err := run(t, m, "extract", "-", "--url", "https://example.com/article", "--format", "yaml")
		require.NoError(t, err)
		assert.Contains(t, stdout, "# Test Article")
	})

	t.Run("verbose flag before command name", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t, testPage)
		stdout, stderr, err := run(t, m, "-v", "extract", "-", "--url", "https://example.com/article")
		require.NoError(t, err)

		assert.Contains(t, stdout, "# Test Article")
		assert.Contains(t, stderr, "msg=extract")
	})

	t.Run("missing URL for stdin input fails", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t, testPage)
		_, stderr, err := run(t, m, "extract", "-")
		require.Error(t, err)
		assert.Contains(t, stderr, "error:")
	})

	t.Run("writes output file", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "article.md")
		m := newTestMain(t, testPage)
		stdout, _, err := run(t, m, "extract", "-", "--url", "https://example.com/article", "-o", out)
		require.NoError(t, err)

		assert.Contains(t, stdout, "wrote "+out)
		content, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Contains(t, string(content), "# Test Article")
	})
}

func TestCmdHistory(t *testing.T) {
	t.Parallel()

	t.Run("save then list and show", func(t *testing.T) {
		t.Parallel()

		dbPath := filepath.Join(t.TempDir(), "decant.db")

		m := main.NewMain()
		m.DBPath = dbPath
		m.Stdin = strings.NewReader(testPage)
		_, stderr, err := run(t, m, "extract", "-", "--url", "https://example.com/article", "--save")
		require.NoError(t, err)
		require.Contains(t, stderr, "saved ")
		id := strings.TrimSpace(strings.TrimPrefix(stderr, "saved "))

		m2 := main.NewMain()
		m2.DBPath = dbPath
		stdout, _, err := run(t, m2, "history", "list")
		require.NoError(t, err)
		assert.Contains(t, stdout, "https://example.com/article")
		assert.Contains(t, stdout, id)

		m3 := main.NewMain()
		m3.DBPath = dbPath
		stdout, _, err = run(t, m3, "history", "show", id)
		require.NoError(t, err)
		assert.Contains(t, stdout, "# Test Article")
	})

	t.Run("empty history", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t, "")
		stdout, _, err := run(t, m, "history", "list")
		require.NoError(t, err)
		assert.Contains(t, stdout, "No saved extractions")
	})

	t.Run("delete removes record", func(t *testing.T) {
		t.Parallel()

		dbPath := filepath.Join(t.TempDir(), "decant.db")

		m := main.NewMain()
		m.DBPath = dbPath
		m.Stdin = strings.NewReader(testPage)
		_, stderr, err := run(t, m, "extract", "-", "--url", "https://example.com/article", "--save")
		require.NoError(t, err)
		id := strings.TrimSpace(strings.TrimPrefix(stderr, "saved "))

		m2 := main.NewMain()
		m2.DBPath = dbPath
		stdout, _, err := run(t, m2, "history", "delete", id)
		require.NoError(t, err)
		assert.Contains(t, stdout, "deleted "+id)

		m3 := main.NewMain()
		m3.DBPath = dbPath
		_, stderr, err = run(t, m3, "history", "show", id)
		require.Error(t, err)
		assert.Contains(t, stderr, "extraction not found")
	})

	t.Run("show unknown id fails", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t, "")
		_, stderr, err := run(t, m, "history", "show", "no-such-id")
		require.Error(t, err)
		assert.Contains(t, stderr, "extraction not found")
	})
}

func TestCmdNoArgs(t *testing.T) {
	t.Parallel()

	m := newTestMain(t, "")
	_, _, err := run(t, m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}
