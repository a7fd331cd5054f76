package decant

import (
	"encoding/json"
	"strings"
	"time"
)

// jsonEnvelope is the versioned JSON output document. Field names are part
// of the output contract.
type jsonEnvelope struct {
	Version       string       `json:"version"`
	Metadata      jsonMetadata `json:"metadata"`
	Content       jsonContent  `json:"content"`
	Tables        []jsonTable  `json:"tables"`
	ExtractedData *Entities    `json:"extractedData,omitempty"`
}

type jsonMetadata struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Domain      string `json:"domain"`
	SiteName    string `json:"siteName"`
	Description string `json:"description"`
	WordCount   int    `json:"wordCount"`
	ImageCount  int    `json:"imageCount"`
	ExtractedAt string `json:"extractedAt"`
}

type jsonContent struct {
	Plain      string      `json:"plain"`
	Sections   []Section   `json:"sections"`
	Headings   []Heading   `json:"headings"`
	Links      []Link      `json:"links"`
	Images     []Image     `json:"images"`
	CodeBlocks []CodeBlock `json:"codeBlocks"`
	Lists      []List      `json:"lists"`
}

type jsonTable struct {
	Index   int        `json:"index"`
	Caption *string    `json:"caption"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// RenderJSON emits the versioned JSON envelope: metadata, the plain text and
// structural breakdown of the content, detected tables, and the entity
// bundle when non-empty. Pretty-printed with 2-space indentation.
func RenderJSON(article *Article, meta Metadata, tables []Table, structure *ContentStructure) (string, error) {
	if structure == nil {
		structure = &ContentStructure{}
	}

	env := jsonEnvelope{
		Version: "1.0",
		Metadata: jsonMetadata{
			Title:       meta.Title,
			URL:         meta.URL,
			Domain:      meta.Domain,
			SiteName:    meta.SiteName,
			Description: meta.Excerpt,
			WordCount:   meta.WordCount,
			ImageCount:  meta.ImageCount,
			ExtractedAt: meta.ExtractedAt.UTC().Format(time.RFC3339),
		},
		Content: jsonContent{
			Plain:      strings.TrimSpace(article.TextContent),
			Sections:   emptySlice(structure.Sections),
			Headings:   emptySlice(structure.Headings),
			Links:      emptySlice(structure.Links),
			Images:     emptySlice(structure.Images),
			CodeBlocks: emptySlice(structure.CodeBlocks),
			Lists:      emptySlice(structure.Lists),
		},
		Tables: make([]jsonTable, 0, len(tables)),
	}

	for i, t := range tables {
		jt := jsonTable{
			Index:   i,
			Headers: emptySlice(t.Headers),
			Rows:    emptySlice(t.Rows),
		}
		if t.Caption != "" {
			caption := t.Caption
			jt.Caption = &caption
		}
		env.Tables = append(env.Tables, jt)
	}

	if !meta.Entities.IsEmpty() {
		env.ExtractedData = meta.Entities
	}

	out, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// emptySlice keeps nil slices rendering as [] rather than null.
func emptySlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
