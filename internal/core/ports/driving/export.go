package driving

import (
	"context"

	"github.com/custodia-labs/docquery/internal/core/domain"
)

// ExportService renders history and extracted text as downloadable files.
type ExportService interface {
	// ExportHistory renders a registered user's history.
	// Unknown users yield domain.ErrNotFound, empty histories domain.ErrEmptyHistory.
	ExportHistory(ctx context.Context, phone string, format domain.ExportFormat) (*domain.Export, error)

	// ExportText renders a document's extracted text.
	ExportText(doc *domain.Document, format domain.ExportFormat) (*domain.Export, error)
}
