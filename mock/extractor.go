package mock

import "github.com/decantlabs/decant"

var _ decant.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of decant.Extractor.
type Extractor struct {
	ExtractFn func(html, pageURL string) (*decant.Article, error)
}

func (e *Extractor) Extract(html, pageURL string) (*decant.Article, error) {
	return e.ExtractFn(html, pageURL)
}
