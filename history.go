package decant

import (
	"context"
	"time"
)

// ExtractionRecord represents a saved extraction in history.
type ExtractionRecord struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Domain      string    `json:"domain"`
	Title       string    `json:"title"`
	Format      Format    `json:"format"`
	Output      string    `json:"output"`
	WordCount   int       `json:"wordCount"`
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *ExtractionRecord) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "extraction URL required")
	}
	return nil
}

// ExtractionFilter represents a filter for FindExtractions.
type ExtractionFilter struct {
	ID     *string `json:"id"`
	Domain *string `json:"domain"`
	Format *Format `json:"format"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// HistoryService persists extraction results. The extraction pipeline itself
// never touches history; it is an external collaborator consumed by callers
// such as the CLI.
type HistoryService interface {
	// CreateExtraction saves a new extraction record.
	CreateExtraction(ctx context.Context, rec *ExtractionRecord) error

	// FindExtractionByID retrieves a record by ID.
	// Returns ENOTFOUND if the record does not exist.
	FindExtractionByID(ctx context.Context, id string) (*ExtractionRecord, error)

	// FindExtractions retrieves records matching the filter, newest first.
	FindExtractions(ctx context.Context, filter ExtractionFilter) ([]*ExtractionRecord, error)

	// DeleteExtraction permanently removes a record.
	// Returns ENOTFOUND if the record does not exist.
	DeleteExtraction(ctx context.Context, id string) error
}
