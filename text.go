package decant

import (
	"regexp"
	"strings"
)

var (
	multiSpaceRe = regexp.MustCompile(` {2,}`)
	lineEdgeRe   = regexp.MustCompile(`(?m)^ +| +$`)
	blankRunRe   = regexp.MustCompile(`\n{3,}`)
)

// NormalizeWhitespace minifies whitespace in extracted text: tabs and
// non-breaking spaces become plain spaces, zero-width spaces and byte-order
// marks are removed, runs of spaces collapse to one, every line is trimmed,
// and consecutive blank lines are capped at one. The function is pure and
// idempotent.
func NormalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\t", " ")
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = strings.ReplaceAll(s, "\u200B", "")
	s = strings.ReplaceAll(s, "\uFEFF", "")
	s = multiSpaceRe.ReplaceAllString(s, " ")
	s = lineEdgeRe.ReplaceAllString(s, "")
	s = blankRunRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
