package decant

// Article holds the extracted content of a page prior to format rendering.
// It is constructed once per extraction call and never mutated by a renderer.
type Article struct {
	// Title is the article title from page metadata.
	Title string

	// Content is the serialized HTML of the extracted subtree.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	Content string

	// TextContent is the normalized plain text of the same subtree.
	TextContent string

	// SiteName is the publishing site name, when document metadata
	// provides one.
	SiteName string

	// Excerpt is a short description from document metadata.
	Excerpt string
}

// Extractor identifies the primary readable content subtree of an HTML
// document (the Readability heuristic).
type Extractor interface {
	// Extract processes raw HTML and returns the main content. The page URL
	// is used for relative URL resolution inside the content.
	//
	// A (nil, nil) return means the heuristic found no usable content;
	// callers must fall back to full-page extraction rather than fail.
	Extract(html, pageURL string) (*Article, error)
}

// ConvertOptions configures a single HTML to Markdown conversion.
type ConvertOptions struct {
	// BaseURL resolves relative link and image URLs. Elements whose URL
	// cannot be resolved keep their original value.
	BaseURL string

	// IncludeImages keeps image references; when false images are stripped.
	IncludeImages bool
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown using the house style:
	// ATX headings, "-" bullets, "---" rules, fenced code blocks, and
	// pipe-delimited tables.
	Convert(html string, opts ConvertOptions) (string, error)
}
