package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// blockTags are elements whose boundaries insert a line break during text
// extraction, so sibling blocks in non-semantic markup don't glue together
// into one run-on sentence.
var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"dd": true, "div": true, "dl": true, "dt": true, "fieldset": true,
	"figcaption": true, "figure": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "li": true, "main": true, "nav": true,
	"ol": true, "p": true, "pre": true, "section": true, "table": true,
	"tbody": true, "td": true, "tfoot": true, "th": true, "thead": true,
	"tr": true, "ul": true,
}

// BlockText collapses the selection's node tree into plain text, appending a
// line break after each block-level element whose subtree produced non-blank
// text. The result is raw; callers usually pass it through
// decant.NormalizeWhitespace.
func BlockText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		appendNodeText(&b, n)
	}
	return b.String()
}

func appendNodeText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		if n.Data == "br" {
			b.WriteString("\n")
			return
		}
	case html.CommentNode, html.DoctypeNode:
		return
	}

	start := b.Len()
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		appendNodeText(b, c)
	}

	if n.Type == html.ElementNode && blockTags[n.Data] {
		if strings.TrimSpace(b.String()[start:]) != "" {
			b.WriteString("\n")
		}
	}
}
