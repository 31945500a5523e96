package driving

import (
	"context"

	"github.com/custodia-labs/docquery/internal/core/domain"
)

// HistoryService exposes a user's question/answer history.
type HistoryService interface {
	// Register creates an empty history for phone if none exists.
	Register(ctx context.Context, phone string) error

	// Exists reports whether phone has a history record.
	Exists(ctx context.Context, phone string) (bool, error)

	// History returns the pairs in the order they were asked.
	History(ctx context.Context, phone string) ([]domain.QAPair, error)

	// Record returns the raw stored logs.
	Record(ctx context.Context, phone string) (*domain.UserHistoryRecord, error)
}
