package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/decantlabs/decant"
	"golang.org/x/net/html"
)

var (
	headingTagRe = regexp.MustCompile(`^h([1-6])$`)
	codeLangRe   = regexp.MustCompile(`(?:language|lang|hljs)-(\w+)`)
)

// ExtractStructure breaks extracted content HTML into the structural
// inventory consumed by the JSON renderer. Relative link and image URLs are
// resolved against pageURL; elements whose URL cannot be resolved keep their
// original value. Unparsable input yields an empty structure.
func ExtractStructure(content, pageURL string) *decant.ContentStructure {
	structure := &decant.ContentStructure{}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return structure
	}
	base, _ := url.Parse(pageURL)

	structure.Sections = extractSections(doc)
	structure.Headings = extractHeadings(doc)
	structure.Links = extractLinks(doc, base)
	structure.Images = extractImages(doc, base)
	structure.CodeBlocks = extractCodeBlocks(doc)
	structure.Lists = extractLists(doc)
	return structure
}

// extractSections segments body content by heading boundaries. A section
// with no heading is permitted only as the leading segment.
func extractSections(doc *goquery.Document) []decant.Section {
	var sections []decant.Section

	var heading *string
	level := 0
	var content strings.Builder

	flush := func() {
		text := strings.TrimSpace(content.String())
		if text != "" || heading != nil {
			sections = append(sections, decant.Section{
				Heading: heading,
				Level:   level,
				Content: text,
			})
		}
	}

	doc.Find("body").Contents().Each(func(_ int, s *goquery.Selection) {
		node := s.Get(0)
		if node.Type == html.ElementNode {
			if m := headingTagRe.FindStringSubmatch(node.Data); m != nil {
				flush()
				text := strings.TrimSpace(s.Text())
				heading = &text
				level = int(m[1][0] - '0')
				content.Reset()
				return
			}
		}
		content.WriteString(strings.TrimSpace(s.Text()) + "\n")
	})
	flush()

	return sections
}

func extractHeadings(doc *goquery.Document) []decant.Heading {
	var headings []decant.Heading
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		headings = append(headings, decant.Heading{
			Level: int(goquery.NodeName(s)[1] - '0'),
			Text:  strings.TrimSpace(s.Text()),
		})
	})
	return headings
}

func extractLinks(doc *goquery.Document, base *url.URL) []decant.Link {
	var links []decant.Link
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		href := resolveURL(base, s.AttrOr("href", ""))
		if text == "" || href == "" {
			return
		}
		links = append(links, decant.Link{Text: text, Href: href})
	})
	return links
}

func extractImages(doc *goquery.Document, base *url.URL) []decant.Image {
	var images []decant.Image
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		src := s.AttrOr("src", "")
		if src == "" {
			src = s.AttrOr("data-src", "")
		}
		if src == "" {
			return
		}
		images = append(images, decant.Image{
			Src: resolveURL(base, src),
			Alt: s.AttrOr("alt", ""),
		})
	})
	return images
}

func extractCodeBlocks(doc *goquery.Document) []decant.CodeBlock {
	var blocks []decant.CodeBlock
	doc.Find("pre code").Each(func(_ int, s *goquery.Selection) {
		blocks = append(blocks, decant.CodeBlock{
			Language: SniffCodeLanguage(s),
			Code:     s.Text(),
		})
	})
	return blocks
}

func extractLists(doc *goquery.Document) []decant.List {
	var lists []decant.List
	doc.Find("ul, ol").Each(func(_ int, s *goquery.Selection) {
		listType := "unordered"
		if goquery.NodeName(s) == "ol" {
			listType = "ordered"
		}
		var items []string
		// Direct children only; nested lists get their own entries.
		s.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
			items = append(items, strings.TrimSpace(li.Text()))
		})
		lists = append(lists, decant.List{Type: listType, Items: items})
	})
	return lists
}

// SniffCodeLanguage sniffs a code block's language from language-/lang-/
// hljs- class patterns on the element or its parent.
func SniffCodeLanguage(code *goquery.Selection) string {
	if m := codeLangRe.FindStringSubmatch(code.AttrOr("class", "")); m != nil {
		return m[1]
	}
	if m := codeLangRe.FindStringSubmatch(code.Parent().AttrOr("class", "")); m != nil {
		return m[1]
	}
	return ""
}

// PageMeta resolves the site name and excerpt from document metadata:
// og:site_name with a fallback to the page host stripped of "www.", and
// og:description with a fallback to the description meta tag.
func PageMeta(doc *goquery.Document, pageURL string) (siteName, excerpt string) {
	if v, ok := doc.Find(`meta[property="og:site_name"]`).First().Attr("content"); ok {
		siteName = v
	} else if u, err := url.Parse(pageURL); err == nil {
		siteName = strings.TrimPrefix(u.Hostname(), "www.")
	}

	if v, ok := doc.Find(`meta[property="og:description"]`).First().Attr("content"); ok {
		excerpt = v
	} else if v, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		excerpt = v
	}
	return siteName, excerpt
}

// resolveURL resolves href against base. Malformed references are returned
// unresolved rather than dropped; resolution failure never aborts the
// extraction.
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
