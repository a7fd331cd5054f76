package decant

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// resourceEnvelope is the AI-agent resource output: an MCP-style resource
// with a plain-text content block and structured metadata for agent
// processing.
type resourceEnvelope struct {
	Type        string           `json:"type"`
	URI         string           `json:"uri"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	MimeType    string           `json:"mimeType"`
	Content     string           `json:"content"`
	Metadata    resourceMetadata `json:"metadata"`
}

type resourceMetadata struct {
	Source      resourceSource  `json:"source"`
	ContentType string          `json:"contentType"`
	Stats       resourceStats   `json:"stats"`
	Entities    *Entities       `json:"extractedEntities"`
	Tables      []resourceTable `json:"tables"`
}

type resourceSource struct {
	URL         string `json:"url"`
	Domain      string `json:"domain"`
	SiteName    string `json:"siteName"`
	ExtractedAt string `json:"extractedAt"`
}

type resourceStats struct {
	WordCount       int `json:"wordCount"`
	ImageCount      int `json:"imageCount"`
	EstimatedTokens int `json:"estimatedTokens"`
	TableCount      int `json:"tableCount"`
}

type resourceTable struct {
	Index    int        `json:"index"`
	Caption  *string    `json:"caption"`
	Headers  []string   `json:"headers"`
	RowCount int        `json:"rowCount"`
	Rows     [][]string `json:"rows"`
}

// RenderResource emits the agent-oriented resource envelope with a synthetic
// decant:// URI, a plain-text content block with bracketed section markers,
// and structured metadata including a coarse content-type classification.
func RenderResource(article *Article, meta Metadata, tables []Table) (string, error) {
	description := meta.Excerpt
	if description == "" {
		description = "Extracted content from " + meta.URL
	}

	entities := meta.Entities
	if entities == nil {
		entities = &Entities{}
	}

	env := resourceEnvelope{
		Type: "resource",
		URI: fmt.Sprintf("decant://extracted/%s/%s",
			url.PathEscape(meta.Domain), url.PathEscape(Slugify(meta.Title))),
		Name:        meta.Title,
		Description: description,
		MimeType:    "text/plain",
		Content:     buildResourceContent(article, meta, tables),
		Metadata: resourceMetadata{
			Source: resourceSource{
				URL:         meta.URL,
				Domain:      meta.Domain,
				SiteName:    meta.SiteName,
				ExtractedAt: meta.ExtractedAt.UTC().Format(time.RFC3339),
			},
			ContentType: classifyContent(meta, tables),
			Stats: resourceStats{
				WordCount:       meta.WordCount,
				ImageCount:      meta.ImageCount,
				EstimatedTokens: meta.EstimatedTokens,
				TableCount:      len(tables),
			},
			Entities: entities,
			Tables:   make([]resourceTable, 0, len(tables)),
		},
	}

	for i, t := range tables {
		rt := resourceTable{
			Index:    i,
			Headers:  emptySlice(t.Headers),
			RowCount: len(t.Rows),
			Rows:     emptySlice(t.Rows),
		}
		if t.Caption != "" {
			caption := t.Caption
			rt.Caption = &caption
		}
		env.Metadata.Tables = append(env.Metadata.Tables, rt)
	}

	out, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// buildResourceContent builds the plain-text content block: context lines,
// the article text, then bracketed table and entity sections.
func buildResourceContent(article *Article, meta Metadata, tables []Table) string {
	parts := []string{
		"[Source: " + meta.Title + "]",
		"[URL: " + meta.URL + "]",
	}
	if meta.Excerpt != "" {
		parts = append(parts, "[Summary: "+meta.Excerpt+"]")
	}
	parts = append(parts, "", strings.TrimSpace(article.TextContent))

	if len(tables) > 0 {
		parts = append(parts, "", "[Tables]")
		for i, table := range tables {
			header := fmt.Sprintf("Table %d", i+1)
			if table.Caption != "" {
				header += " - " + table.Caption
			}
			parts = append(parts, header+":")
			if len(table.Headers) > 0 {
				parts = append(parts, strings.Join(table.Headers, " | "))
			}
			for _, row := range table.Rows {
				parts = append(parts, strings.Join(row, " | "))
			}
			parts = append(parts, "")
		}
	}

	if !meta.Entities.IsEmpty() {
		e := meta.Entities
		var lines []string
		if len(e.Emails) > 0 {
			lines = append(lines, "Emails: "+strings.Join(e.Emails, ", "))
		}
		if len(e.Dates) > 0 {
			lines = append(lines, "Dates: "+strings.Join(e.Dates, ", "))
		}
		if len(e.Prices) > 0 {
			lines = append(lines, "Prices: "+strings.Join(e.Prices, ", "))
		}
		if len(e.Phones) > 0 {
			lines = append(lines, "Phones: "+strings.Join(e.Phones, ", "))
		}
		if len(lines) > 0 {
			parts = append(parts, "[Extracted Entities]")
			parts = append(parts, lines...)
		}
	}

	return strings.Join(parts, "\n")
}

// classifyContent assigns a coarse content type for agent context awareness.
func classifyContent(meta Metadata, tables []Table) string {
	switch {
	case len(tables) > 2:
		return "data_table"
	case meta.WordCount > 2000:
		return "article"
	case meta.Entities != nil && len(meta.Entities.Prices) > 0:
		return "product"
	case meta.Entities != nil && len(meta.Entities.Emails) > 2:
		return "contact"
	default:
		return "general"
	}
}

// Slugify lowercases text, collapses non-alphanumeric runs to hyphens, trims
// leading and trailing hyphens, and caps the result at 80 characters.
func Slugify(text string) string {
	var sb strings.Builder
	prevHyphen := true
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
			prevHyphen = false
		} else if !prevHyphen {
			sb.WriteRune('-')
			prevHyphen = true
		}
	}
	slug := strings.Trim(sb.String(), "-")
	if len(slug) > 80 {
		slug = slug[:80]
	}
	return slug
}
