package goquery_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/decantlabs/decant"
	gq "github.com/decantlabs/decant/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseBody(t *testing.T, html string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc.Find("body")
}

func TestBlockText_SeparatesBlocks(t *testing.T) {
	t.Parallel()

	sel := parseBody(t, "<p>First block.</p><p>Second block.</p>")
	text := decant.NormalizeWhitespace(gq.BlockText(sel))

	assert.Equal(t, "First block.\nSecond block.", text)
}

func TestBlockText_DivSoup(t *testing.T) {
	t.Parallel()

	sel := parseBody(t, "<div>one</div><div>two</div><div>three</div>")
	text := decant.NormalizeWhitespace(gq.BlockText(sel))

	assert.Equal(t, "one\ntwo\nthree", text)
}

func TestBlockText_InlineElementsDoNotBreak(t *testing.T) {
	t.Parallel()

	sel := parseBody(t, "<p>Text with <em>emphasis</em> and <a href='/x'>a link</a> inline.</p>")
	text := decant.NormalizeWhitespace(gq.BlockText(sel))

	assert.Equal(t, "Text with emphasis and a link inline.", text)
}

func TestBlockText_BrBreaksLine(t *testing.T) {
	t.Parallel()

	sel := parseBody(t, "<p>line one<br>line two</p>")
	text := decant.NormalizeWhitespace(gq.BlockText(sel))

	assert.Equal(t, "line one\nline two", text)
}

func TestBlockText_EmptyBlocksAddNoBreaks(t *testing.T) {
	t.Parallel()

	sel := parseBody(t, "<div></div><div>   </div><p>content</p>")
	text := decant.NormalizeWhitespace(gq.BlockText(sel))

	assert.Equal(t, "content", text)
}

func TestBlockText_SkipsComments(t *testing.T) {
	t.Parallel()

	sel := parseBody(t, "<p>visible</p><!-- hidden comment -->")
	text := gq.BlockText(sel)

	assert.NotContains(t, text, "hidden comment")
}

func TestBlockText_TableCells(t *testing.T) {
	t.Parallel()

	sel := parseBody(t, "<table><tr><td>a</td><td>b</td></tr></table>")
	text := gq.BlockText(sel)

	// Cell boundaries produce breaks so cells don't fuse into "ab".
	assert.NotContains(t, text, "ab")
	assert.Contains(t, text, "a")
	assert.Contains(t, text, "b")
}
