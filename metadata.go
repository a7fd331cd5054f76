package decant

import (
	"regexp"
	"time"
)

// Metadata is the structured summary of an extraction. It is assembled once
// by the orchestrator, threaded through the renderers, and returned to the
// caller read-only.
type Metadata struct {
	Title           string    `json:"title"`
	URL             string    `json:"url"`
	Domain          string    `json:"domain"`
	SiteName        string    `json:"siteName"`
	Excerpt         string    `json:"excerpt"`
	WordCount       int       `json:"wordCount"`
	ImageCount      int       `json:"imageCount"`
	EstimatedTokens int       `json:"estimatedTokens"`
	ExtractedAt     time.Time `json:"extractedAt"`
	TableCount      int       `json:"tables"`

	// Entities is present only when entity detection ran and found at
	// least one match.
	Entities *Entities `json:"smartData,omitempty"`
}

// ExtractResult is the output of a single extraction call.
type ExtractResult struct {
	// Output is the rendered document in the requested format.
	Output string `json:"output"`

	// Metadata summarizes the extraction.
	Metadata Metadata `json:"metadata"`

	// Format is the encoding actually used. Unknown requested formats
	// report "markdown" here.
	Format Format `json:"format"`
}

var imgTagRe = regexp.MustCompile(`(?i)<img\b`)

// CountImages counts image tags in serialized HTML.
func CountImages(html string) int {
	if html == "" {
		return 0
	}
	return len(imgTagRe.FindAllStringIndex(html, -1))
}
