// Package readability binds the main-content heuristic to
// go-shiori/go-readability, a port of Mozilla's content-scoring algorithm.
package readability

import (
	"net/url"
	"strings"

	"github.com/decantlabs/decant"
	readability "github.com/go-shiori/go-readability"
)

// minContentLength is the minimum plain-text length for a readability result
// to count as usable. Below this the algorithm is assumed to have missed the
// main content and the caller falls back to full-page extraction.
const minContentLength = 100

// Ensure Extractor implements decant.Extractor at compile time.
var _ decant.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the primary article subtree from
// a full document.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract runs the content-scoring algorithm on raw HTML. It returns
// (nil, nil) when the heuristic produces no usable result; an unusable
// primary heuristic is a fallback trigger, never an error.
func (e *Extractor) Extract(rawHTML, pageURL string) (*decant.Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, nil
	}

	// A malformed page URL degrades relative-link resolution but must not
	// fail the extraction.
	base, err := url.Parse(pageURL)
	if err != nil {
		base = nil
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), base)
	if err != nil {
		return nil, nil
	}
	if len(strings.TrimSpace(article.TextContent)) < minContentLength {
		return nil, nil
	}

	return &decant.Article{
		Title:       article.Title,
		Content:     article.Content,
		TextContent: article.TextContent,
		SiteName:    article.SiteName,
		Excerpt:     article.Excerpt,
	}, nil
}
