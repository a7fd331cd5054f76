package decant

import (
	"fmt"
	"strings"
)

// Table is a table extracted from page content. Rows are padded to a uniform
// column count; tables with zero data rows are discarded by the detector
// before they are returned.
type Table struct {
	// Caption is the table caption, empty when absent.
	Caption string `json:"caption"`

	// Headers is the resolved header row, possibly empty.
	Headers []string `json:"headers"`

	// Rows holds the data rows; every row has the same length.
	Rows [][]string `json:"rows"`

	// Markdown is the precomputed canonical rendering.
	Markdown string `json:"markdown"`
}

// MarkdownTable renders headers and rows as a canonical pipe-delimited
// Markdown table with a "---" separator per column. When no headers are
// given, generic "Col N" labels are synthesized. Returns "" when there are
// no data rows.
func MarkdownTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	head := headers
	if len(head) == 0 {
		head = make([]string, colCount)
		for i := range head {
			head[i] = fmt.Sprintf("Col %d", i+1)
		}
	}
	head = padCells(head, colCount)

	separator := make([]string, colCount)
	for i := range separator {
		separator[i] = "---"
	}

	lines := []string{
		"| " + strings.Join(head, " | ") + " |",
		"| " + strings.Join(separator, " | ") + " |",
	}
	for _, row := range rows {
		lines = append(lines, "| "+strings.Join(padCells(row, colCount), " | ")+" |")
	}

	return strings.Join(lines, "\n")
}

func padCells(cells []string, n int) []string {
	if len(cells) >= n {
		return cells
	}
	padded := make([]string, n)
	copy(padded, cells)
	return padded
}
