package decant_test

import (
	"strings"
	"testing"

	"github.com/decantlabs/decant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownTable(t *testing.T) {
	t.Parallel()

	t.Run("renders headers and rows", func(t *testing.T) {
		t.Parallel()
		md := decant.MarkdownTable(
			[]string{"Name", "Age"},
			[][]string{{"Alice", "30"}, {"Bob", "25"}},
		)

		lines := strings.Split(md, "\n")
		require.Len(t, lines, 4)
		assert.Equal(t, "| Name | Age |", lines[0])
		assert.Equal(t, "| --- | --- |", lines[1])
		assert.Equal(t, "| Alice | 30 |", lines[2])
		assert.Equal(t, "| Bob | 25 |", lines[3])
	})

	t.Run("synthesizes headers when absent", func(t *testing.T) {
		t.Parallel()
		md := decant.MarkdownTable(nil, [][]string{{"a", "b", "c"}})

		lines := strings.Split(md, "\n")
		assert.Equal(t, "| Col 1 | Col 2 | Col 3 |", lines[0])
	})

	t.Run("pads short rows to widest", func(t *testing.T) {
		t.Parallel()
		md := decant.MarkdownTable(
			[]string{"A", "B", "C"},
			[][]string{{"1"}, {"1", "2", "3"}},
		)

		lines := strings.Split(md, "\n")
		assert.Equal(t, "| 1 |  |  |", lines[2])
		assert.Equal(t, "| 1 | 2 | 3 |", lines[3])
	})

	t.Run("no rows renders nothing", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", decant.MarkdownTable([]string{"A"}, nil))
	})
}
