package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/docquery/internal/core/domain"
)

// DocumentService turns uploaded files into extracted documents.
type DocumentService interface {
	// Load extracts the file at path, deriving its type from the extension.
	Load(ctx context.Context, path string) (*domain.Document, error)

	// LoadReader extracts a document from r. The type is derived from name
	// unless typeTag is non-empty.
	LoadReader(ctx context.Context, r io.Reader, name, typeTag string) (*domain.Document, error)

	// SupportedTypes lists the file types that can be loaded.
	SupportedTypes() []domain.FileType
}
