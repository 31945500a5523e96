package driven

import (
	"context"

	"github.com/custodia-labs/docquery/internal/core/domain"
)

// HistoryStore persists per-user question/answer history keyed by phone number.
// Implementations validate phone numbers and log entries, run each operation
// in its own transaction and wrap persistence failures with domain.ErrStorage.
type HistoryStore interface {
	// Register creates an empty record. Registering an existing phone number is a no-op.
	Register(ctx context.Context, phone string) error

	// Exists reports whether a record exists for phone.
	Exists(ctx context.Context, phone string) (bool, error)

	// Append adds one question and one answer to the record, creating it if needed.
	// Both logs are updated atomically.
	Append(ctx context.Context, phone, question, answer string) error

	// History returns the question/answer pairs in append order.
	// An unknown phone number yields an empty slice.
	History(ctx context.Context, phone string) ([]domain.QAPair, error)

	// Record returns the raw stored record, or domain.ErrNotFound.
	Record(ctx context.Context, phone string) (*domain.UserHistoryRecord, error)
}
