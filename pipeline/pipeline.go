// Package pipeline implements the extraction orchestrator: it wires the
// main-content extractor, DOM cleaner, table and entity detectors, and
// format renderers into a deterministic sequence.
package pipeline

import (
	"net/url"
	"strings"
	"time"

	"github.com/decantlabs/decant"
	gq "github.com/decantlabs/decant/goquery"
)

// Pipeline runs extraction calls. Each call is independent and stateless;
// a single Pipeline is safe for concurrent use.
type Pipeline struct {
	extractor decant.Extractor
	converter decant.Converter
	now       func() time.Time
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithClock overrides the wall-clock source used for extraction timestamps.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		p.now = now
	}
}

// New creates a Pipeline around the given main-content extractor and
// Markdown converter.
func New(extractor decant.Extractor, converter decant.Converter, opts ...Option) *Pipeline {
	p := &Pipeline{
		extractor: extractor,
		converter: converter,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Extract runs the full pipeline: isolate the content-bearing subtree,
// derive tables, entities, and counts, and render the requested format.
//
// The only errors returned are invalid options; for any parseable input,
// including empty documents and tag soup, Extract produces a result. An
// unusable main-content heuristic falls back to the cleaned full page, and
// an unknown format value renders as markdown.
func (p *Pipeline) Extract(opts decant.ExtractOptions) (*decant.ExtractResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	format := decant.ParseFormat(string(opts.Format))

	var article *decant.Article
	if !opts.FullPage {
		if a, err := p.extractor.Extract(opts.HTML, opts.URL); err == nil && a != nil {
			a.TextContent = decant.NormalizeWhitespace(a.TextContent)
			article = a
		}
	}
	if article == nil {
		article = fullPageArticle(opts)
	}

	wordCount := decant.CountWords(article.TextContent)

	imageCount := 0
	if opts.IncludeImages {
		imageCount = decant.CountImages(article.Content)
	}

	var tables []decant.Table
	if opts.DetectTables {
		tables = gq.DetectTables(article.Content)
	}

	var entities *decant.Entities
	if opts.SmartExtract {
		entities = decant.DetectEntities(article.TextContent)
	}

	title := article.Title
	if title == "" {
		title = opts.Title
	}

	meta := decant.Metadata{
		Title:           title,
		URL:             opts.URL,
		Domain:          domainOf(opts.URL),
		SiteName:        article.SiteName,
		Excerpt:         article.Excerpt,
		WordCount:       wordCount,
		ImageCount:      imageCount,
		EstimatedTokens: decant.EstimateTokens(article.TextContent),
		ExtractedAt:     p.now().UTC(),
		TableCount:      len(tables),
		Entities:        entities,
	}

	output, err := p.render(format, article, meta, tables, opts)
	if err != nil {
		return nil, err
	}

	return &decant.ExtractResult{
		Output:   output,
		Metadata: meta,
		Format:   format,
	}, nil
}

func (p *Pipeline) render(format decant.Format, article *decant.Article, meta decant.Metadata, tables []decant.Table, opts decant.ExtractOptions) (string, error) {
	switch format {
	case decant.FormatJSON:
		structure := gq.ExtractStructure(article.Content, opts.URL)
		return decant.RenderJSON(article, meta, tables, structure)
	case decant.FormatMCP:
		return decant.RenderResource(article, meta, tables)
	default:
		body, err := p.converter.Convert(article.Content, decant.ConvertOptions{
			BaseURL:       opts.URL,
			IncludeImages: opts.IncludeImages,
		})
		if err != nil {
			// Conversion failure degrades to the plain text body; the
			// pipeline stays total.
			body = article.TextContent
		}
		return decant.RenderMarkdown(meta, body, tables), nil
	}
}

// fullPageArticle builds the article from the whole cleaned document body.
// This is both the explicit full-page mode and the mandatory safety net when
// the main-content heuristic returns nothing usable.
func fullPageArticle(opts decant.ExtractOptions) *decant.Article {
	doc, err := gq.Clean(opts.HTML)
	if err != nil {
		return &decant.Article{Title: opts.Title}
	}

	title := opts.Title
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	siteName, excerpt := gq.PageMeta(doc, opts.URL)

	body := doc.Find("body")
	contentHTML, err := body.Html()
	if err != nil {
		contentHTML = ""
	}

	return &decant.Article{
		Title:       title,
		Content:     contentHTML,
		TextContent: decant.NormalizeWhitespace(gq.BlockText(body)),
		SiteName:    siteName,
		Excerpt:     excerpt,
	}
}

func domainOf(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
