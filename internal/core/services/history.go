package services

import (
	"context"

	"github.com/custodia-labs/docquery/internal/core/domain"
	"github.com/custodia-labs/docquery/internal/core/ports/driven"
	"github.com/custodia-labs/docquery/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService exposes the history store to driving adapters.
type HistoryService struct {
	store driven.HistoryStore
}

// NewHistoryService creates a new history service.
func NewHistoryService(store driven.HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// Register creates an empty history for phone if none exists.
func (s *HistoryService) Register(ctx context.Context, phone string) error {
	return s.store.Register(ctx, phone)
}

// Exists reports whether phone has a history record.
func (s *HistoryService) Exists(ctx context.Context, phone string) (bool, error) {
	return s.store.Exists(ctx, phone)
}

// History returns the pairs in the order they were asked.
func (s *HistoryService) History(ctx context.Context, phone string) ([]domain.QAPair, error) {
	return s.store.History(ctx, phone)
}

// Record returns the raw stored logs.
func (s *HistoryService) Record(ctx context.Context, phone string) (*domain.UserHistoryRecord, error) {
	return s.store.Record(ctx, phone)
}
