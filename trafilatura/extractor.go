// Package trafilatura binds the main-content heuristic to
// markusmobius/go-trafilatura, an alternative to the readability extractor
// with its own cascade of fallback algorithms.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/decantlabs/decant"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements decant.Extractor at compile time.
var _ decant.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content, or (nil, nil)
// when trafilatura finds nothing usable.
func (e *Extractor) Extract(rawHTML, pageURL string) (*decant.Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, nil
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if u, err := url.Parse(pageURL); err == nil {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, nil
	}
	if strings.TrimSpace(result.ContentText) == "" {
		return nil, nil
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &decant.Article{
		Title:       result.Metadata.Title,
		Content:     contentHTML,
		TextContent: result.ContentText,
		SiteName:    result.Metadata.Sitename,
		Excerpt:     result.Metadata.Description,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
