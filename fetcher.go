package decant

import "context"

// Fetcher retrieves raw HTML for a URL. Fetching is delivery plumbing for
// callers that start from a live page; the extraction pipeline itself only
// ever sees the HTML string.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}
