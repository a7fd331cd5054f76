package mock

import (
	"context"

	"github.com/decantlabs/decant"
)

var _ decant.HistoryService = (*HistoryService)(nil)

// HistoryService is a mock implementation of decant.HistoryService.
type HistoryService struct {
	CreateExtractionFn   func(ctx context.Context, rec *decant.ExtractionRecord) error
	FindExtractionByIDFn func(ctx context.Context, id string) (*decant.ExtractionRecord, error)
	FindExtractionsFn    func(ctx context.Context, filter decant.ExtractionFilter) ([]*decant.ExtractionRecord, error)
	DeleteExtractionFn   func(ctx context.Context, id string) error
}

func (s *HistoryService) CreateExtraction(ctx context.Context, rec *decant.ExtractionRecord) error {
	return s.CreateExtractionFn(ctx, rec)
}

func (s *HistoryService) FindExtractionByID(ctx context.Context, id string) (*decant.ExtractionRecord, error) {
	return s.FindExtractionByIDFn(ctx, id)
}

func (s *HistoryService) FindExtractions(ctx context.Context, filter decant.ExtractionFilter) ([]*decant.ExtractionRecord, error) {
	return s.FindExtractionsFn(ctx, filter)
}

func (s *HistoryService) DeleteExtraction(ctx context.Context, id string) error {
	return s.DeleteExtractionFn(ctx, id)
}
