package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/decantlabs/decant"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ decant.HistoryService = (*HistoryService)(nil)

// HistoryService implements decant.HistoryService using SQLite.
type HistoryService struct {
	db *DB
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(db *DB) *HistoryService {
	return &HistoryService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateExtraction saves a new extraction record. The ID, content hash, and
// creation timestamp are assigned here.
func (s *HistoryService) CreateExtraction(ctx context.Context, rec *decant.ExtractionRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	rec.CreatedAt = time.Now().UTC()
	rec.ContentHash = hashContent(rec.Output)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO extractions (id, url, domain, title, format, output, word_count, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.URL, rec.Domain, rec.Title, string(rec.Format), rec.Output,
		rec.WordCount, rec.ContentHash, rec.CreatedAt.Format(time.RFC3339))

	return err
}

// FindExtractionByID retrieves a record by ID.
func (s *HistoryService) FindExtractionByID(ctx context.Context, id string) (*decant.ExtractionRecord, error) {
	var rec decant.ExtractionRecord
	var format, createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, url, domain, title, format, output, word_count, content_hash, created_at
		FROM extractions
		WHERE id = ?
	`, id).Scan(&rec.ID, &rec.URL, &rec.Domain, &rec.Title, &format,
		&rec.Output, &rec.WordCount, &rec.ContentHash, &createdAt)

	if err == sql.ErrNoRows {
		return nil, decant.Errorf(decant.ENOTFOUND, "extraction not found")
	}
	if err != nil {
		return nil, err
	}

	rec.Format = decant.Format(format)
	rec.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

// FindExtractions retrieves records matching the filter, newest first.
func (s *HistoryService) FindExtractions(ctx context.Context, filter decant.ExtractionFilter) ([]*decant.ExtractionRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, domain, title, format, output, word_count, content_hash, created_at FROM extractions WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Domain != nil {
		query.WriteString(" AND domain = ?")
		args = append(args, *filter.Domain)
	}
	if filter.Format != nil {
		query.WriteString(" AND format = ?")
		args = append(args, string(*filter.Format))
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*decant.ExtractionRecord
	for rows.Next() {
		var rec decant.ExtractionRecord
		var format, createdAt string

		if err := rows.Scan(&rec.ID, &rec.URL, &rec.Domain, &rec.Title, &format,
			&rec.Output, &rec.WordCount, &rec.ContentHash, &createdAt); err != nil {
			return nil, err
		}

		rec.Format = decant.Format(format)
		rec.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		recs = append(recs, &rec)
	}

	return recs, rows.Err()
}

// DeleteExtraction permanently removes a record.
func (s *HistoryService) DeleteExtraction(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM extractions WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return decant.Errorf(decant.ENOTFOUND, "extraction not found")
	}

	return nil
}
