// Package decant extracts the main content of a web page and converts it
// into Markdown, structured JSON, or an AI-agent resource format. Given raw
// HTML and a page URL it isolates the content-bearing subtree, derives
// structured data (tables, entities, word and token counts), and renders the
// result in the requested encoding.
//
// This package contains domain types, interfaces, and pure domain logic
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// readability/, sqlite/). The pipeline package wires them into the
// extraction orchestrator.
package decant
