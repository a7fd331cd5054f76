// Package htmltomarkdown converts article HTML to Markdown using
// JohannesKaufmann/html-to-markdown with this project's house rules applied
// in a goquery pre-clean pass.
package htmltomarkdown

import (
	"net/url"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/decantlabs/decant"
	decantquery "github.com/decantlabs/decant/goquery"
)

// strippedTags are non-content and interactive elements removed before
// conversion. The main-content heuristic should already have dropped most of
// these; stripping again here is the second line of defense for full-page
// mode and for pages the heuristic passes through.
const strippedTags = "script, style, noscript, iframe, svg, nav, form, button, input, select, textarea, fieldset"

// Ensure Converter implements decant.Converter at compile time.
var _ decant.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown. The
// commonmark plugin supplies the house style (ATX headings, "-" bullets,
// fenced code blocks) and the table plugin renders pipe-delimited tables.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter. The instance is goroutine-safe and
// reused across conversions.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown. Empty input converts to an
// empty string rather than an error; the pipeline treats blank content as a
// valid terminal state.
func (c *Converter) Convert(rawHTML string, opts decant.ConvertOptions) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", nil
	}

	cleaned, err := preclean(rawHTML, opts)
	if err != nil {
		return "", err
	}

	return c.conv.ConvertString(cleaned)
}

// preclean rewrites the HTML so the conversion follows the house rules:
// non-content tags stripped, links with empty text dropped, images stripped
// or resolved per options, relative URLs resolved against the base, and code
// block language classes normalized so the fence language survives.
func preclean(rawHTML string, opts decant.ConvertOptions) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", err
	}
	base, _ := url.Parse(opts.BaseURL)

	doc.Find(strippedTags).Each(func(_ int, s *goquery.Selection) {
		s.Remove()
	})

	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		if strings.TrimSpace(s.Text()) == "" {
			s.Remove()
			return
		}
		if href, ok := s.Attr("href"); ok {
			s.SetAttr("href", resolveURL(base, href))
		}
	})

	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		if !opts.IncludeImages {
			s.Remove()
			return
		}
		src := s.AttrOr("src", "")
		if src == "" {
			src = s.AttrOr("data-src", "")
		}
		if src == "" {
			s.Remove()
			return
		}
		s.SetAttr("src", resolveURL(base, src))
	})

	doc.Find("pre code").Each(func(_ int, s *goquery.Selection) {
		if lang := decantquery.SniffCodeLanguage(s); lang != "" {
			s.SetAttr("class", "language-"+lang)
		}
	})

	return doc.Find("body").Html()
}

// resolveURL resolves href against base, leaving malformed references
// unresolved rather than failing the conversion.
func resolveURL(base *url.URL, href string) string {
	if base == nil || href == "" {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
