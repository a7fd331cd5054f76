package decant

import (
	"fmt"
	"strings"
	"time"
)

// RenderMarkdown assembles the Markdown output: a metadata header block, the
// converted article body, then optional "Extracted Tables" and "Extracted
// Data" sections. The body is expected to already be Markdown (see
// Converter); it is run through the same whitespace minification as
// extracted text. Pure function of its inputs.
func RenderMarkdown(meta Metadata, body string, tables []Table) string {
	var md strings.Builder

	md.WriteString("# " + meta.Title + "\n\n")
	md.WriteString("> **Source:** " + meta.URL + "\n")
	if meta.SiteName != "" {
		md.WriteString("> **Site:** " + meta.SiteName + "\n")
	}
	if meta.Excerpt != "" {
		md.WriteString("> **Summary:** " + meta.Excerpt + "\n")
	}
	md.WriteString(fmt.Sprintf("> **Extracted:** %s | %d words\n",
		meta.ExtractedAt.UTC().Format(time.RFC3339), meta.WordCount))
	md.WriteString("\n---\n\n")

	md.WriteString(NormalizeWhitespace(body))

	if len(tables) > 0 {
		md.WriteString("\n\n---\n\n## Extracted Tables\n\n")
		for i, table := range tables {
			md.WriteString(fmt.Sprintf("### Table %d", i+1))
			if table.Caption != "" {
				md.WriteString(": " + table.Caption)
			}
			md.WriteString("\n\n" + table.Markdown + "\n\n")
		}
	}

	if !meta.Entities.IsEmpty() {
		md.WriteString("\n\n---\n\n## Extracted Data\n\n")
		e := meta.Entities
		if len(e.Emails) > 0 {
			md.WriteString("**Emails:** " + strings.Join(e.Emails, ", ") + "\n\n")
		}
		if len(e.Dates) > 0 {
			md.WriteString("**Dates:** " + strings.Join(e.Dates, ", ") + "\n\n")
		}
		if len(e.Prices) > 0 {
			md.WriteString("**Prices:** " + strings.Join(e.Prices, ", ") + "\n\n")
		}
		if len(e.Phones) > 0 {
			md.WriteString("**Phone numbers:** " + strings.Join(e.Phones, ", ") + "\n\n")
		}
	}

	return md.String()
}
