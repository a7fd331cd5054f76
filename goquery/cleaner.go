// Package goquery provides the DOM-level pieces of the extraction pipeline:
// boilerplate removal, block-aware text extraction, table detection, and
// content-structure extraction, all built on PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// removalSelectors is the ordered removal rule table for full-page cleaning.
// The list is data-driven so individual rules can be tested and extended in
// isolation. Selectors that fail to compile are skipped at runtime.
var removalSelectors = []string{
	// Core non-content
	"script",
	"style",
	"noscript",
	`iframe:not([src*="youtube"]):not([src*="vimeo"])`,
	"svg",

	// Navigation & page chrome
	"nav",
	"footer",
	"header",
	`[role="navigation"]`,
	`[role="banner"]`,
	`[role="contentinfo"]`,
	".breadcrumb",
	".breadcrumbs",
	".pagination",

	// Interactive controls
	"button",
	"input",
	"select",
	"textarea",
	"fieldset",

	// Ads & tracking
	".ad",
	".ads",
	".advertisement",
	".sponsored",
	`[class*="ad-"]`,
	`[class*="ads-"]`,
	`[id*="ad-"]`,
	`[id*="ads-"]`,
	"ins.adsbygoogle",
	`[id*="google_ads"]`,

	// Sidebars & widgets
	".sidebar",
	"aside",
	".widget",
	".widgets",

	// Cookie & consent banners
	`[class*="cookie"]`,
	`[id*="cookie"]`,
	`[class*="consent"]`,
	".cookie-banner",
	".cookie-consent",
	"#cookie-banner",
	"#gdpr",
	".gdpr",
	`[class*="gdpr"]`,

	// Popups & overlays
	`[class*="popup"]`,
	`[class*="modal"]`,
	`[class*="overlay"]`,

	// Social sharing
	`[class*="share"]`,
	`[class*="social"]`,
	".share-buttons",
	".social-share",

	// Comments
	".comments",
	"#comments",
	".disqus",
	`[id*="comment"]`,

	// Related content & recommendations
	`[class*="related"]`,
	`[class*="recommended"]`,
	".related-posts",

	// Hidden & accessibility-only
	`[aria-hidden="true"]`,
	".print-only",
	".screen-reader-text",
	".sr-only",
	".visually-hidden",

	// CMS chrome
	".navbox",
	".vertical-navbox",
	".infobox",
	".mw-editsection",
	".mw-jump-link",
	`[class*="wp-block-comments"]`,

	// Newsletter & promo blocks
	`[class*="newsletter"]`,
	`[class*="subscribe"]`,
	`[class*="promo"]`,

	// Back to top
	".back-to-top",
	`[class*="back-to-top"]`,
	`a[href="#top"]`,
}

// articleScoped marks removal rules that spare elements inside an <article>:
// a footer or aside that belongs to the article is content (byline, pull
// quote), while the page-level one is chrome.
var articleScoped = map[string]bool{
	"footer": true,
	"header": true,
	"aside":  true,
}

// emptyContainerSelector matches block-level containers considered for the
// empty-pruning phase.
const emptyContainerSelector = "div, section, article, aside, p, figure, blockquote, ul, ol, li, table, header, footer"

// embeddedMediaSelector matches media that keeps an otherwise text-empty
// container alive.
const embeddedMediaSelector = "img, picture, video, audio, canvas, iframe, embed, object"

// Clean parses raw HTML and removes non-content elements: the removal rule
// table first, then two passes pruning now-empty block containers. Two
// passes are needed because removing an inner empty node can newly empty its
// parent. Parsing is permissive tag-soup parsing; the caller's original
// string is never touched, so repeated cleaning of the same input is safe.
func Clean(rawHTML string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, err
	}

	for _, selector := range removalSelectors {
		matcher, err := cascadia.Compile(selector)
		if err != nil {
			// One bad selector must not abort the whole pass.
			continue
		}
		scoped := articleScoped[selector]
		doc.FindMatcher(matcher).Each(func(_ int, s *goquery.Selection) {
			if isRootElement(s) {
				return
			}
			if scoped && s.ParentsFiltered("article").Length() > 0 {
				return
			}
			s.Remove()
		})
	}

	pruneEmptyContainers(doc)
	pruneEmptyContainers(doc)

	return doc, nil
}

// pruneEmptyContainers removes block-level containers whose text content is
// blank and which contain no embedded media.
func pruneEmptyContainers(doc *goquery.Document) {
	doc.Find(emptyContainerSelector).Each(func(_ int, s *goquery.Selection) {
		if isRootElement(s) {
			return
		}
		if strings.TrimSpace(s.Text()) != "" {
			return
		}
		if s.Find(embeddedMediaSelector).Length() > 0 {
			return
		}
		s.Remove()
	})
}

// isRootElement reports whether the selection is the document root, html, or
// body element. Root elements are never removed even when a rule matches.
func isRootElement(s *goquery.Selection) bool {
	switch goquery.NodeName(s) {
	case "html", "head", "body", "#document":
		return true
	}
	return false
}
