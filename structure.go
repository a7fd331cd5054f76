package decant

// ContentStructure is the structural breakdown of extracted content consumed
// by the JSON renderer: heading-delimited sections plus flat inventories of
// headings, links, images, code blocks, and lists.
type ContentStructure struct {
	Sections   []Section   `json:"sections"`
	Headings   []Heading   `json:"headings"`
	Links      []Link      `json:"links"`
	Images     []Image     `json:"images"`
	CodeBlocks []CodeBlock `json:"codeBlocks"`
	Lists      []List      `json:"lists"`
}

// Section is a run of content delimited by heading boundaries. Only the
// leading section may have a nil heading.
type Section struct {
	Heading *string `json:"heading"`
	Level   int     `json:"level"`
	Content string  `json:"content"`
}

// Heading is a single document heading.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Link is a hyperlink with non-empty text and target.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// Image is an image reference with a non-empty source.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// CodeBlock is a fenced code block with a best-effort language tag.
type CodeBlock struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

// List is a flat item list; nested lists appear as their own entries rather
// than being recursed into their parents.
type List struct {
	// Type is "unordered" or "ordered".
	Type  string   `json:"type"`
	Items []string `json:"items"`
}
