package decant

import "net/url"

// Format identifies an output encoding.
type Format string

// Supported output formats.
const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatMCP      Format = "mcp"
)

// ParseFormat maps a format string to a Format. Unknown values fall back to
// FormatMarkdown; an unrecognized format is never an error.
func ParseFormat(s string) Format {
	switch Format(s) {
	case FormatJSON:
		return FormatJSON
	case FormatMCP:
		return FormatMCP
	default:
		return FormatMarkdown
	}
}

// ExtractOptions is the input contract for a single extraction call.
type ExtractOptions struct {
	// HTML is the raw page HTML. May be an empty document.
	HTML string

	// URL is the absolute page URL, used as the base for relative-link
	// resolution and for deriving the domain.
	URL string

	// Title is an optional fallback used when the page yields no title.
	Title string

	// Format selects the output encoding. Unknown values render as markdown.
	Format Format

	// IncludeImages keeps image references in the output and enables the
	// image count. It does not affect whether content is extracted.
	IncludeImages bool

	// DetectTables runs the table detector over the extracted content.
	DetectTables bool

	// SmartExtract runs entity detection over the extracted text.
	SmartExtract bool

	// FullPage bypasses the main-content heuristic and uses the whole
	// cleaned document body.
	FullPage bool
}

// NewExtractOptions returns options for the given page with defaults applied:
// markdown output with images, tables, and entity detection enabled.
func NewExtractOptions(html, pageURL string) ExtractOptions {
	return ExtractOptions{
		HTML:          html,
		URL:           pageURL,
		Format:        FormatMarkdown,
		IncludeImages: true,
		DetectTables:  true,
		SmartExtract:  true,
	}
}

// Validate returns an error if the options are missing required fields.
// An empty HTML string is a valid (empty) document; a missing or relative
// URL is a programmer error.
func (o *ExtractOptions) Validate() error {
	if o.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	u, err := url.Parse(o.URL)
	if err != nil || !u.IsAbs() {
		return Errorf(EINVALID, "page URL must be absolute: %q", o.URL)
	}
	return nil
}
