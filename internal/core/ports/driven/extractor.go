package driven

import (
	"context"
	"io"

	"github.com/custodia-labs/docquery/internal/core/domain"
)

// Extractor returns the full plain text of a document of one file type.
type Extractor interface {
	// FileType returns the document type this extractor handles.
	FileType() domain.FileType

	// Extract reads the document and returns its text.
	// Parser errors are returned wrapped, never swallowed.
	Extract(ctx context.Context, r io.Reader) (string, error)
}

// ExtractorRegistry selects an extractor by file type.
type ExtractorRegistry interface {
	// Register adds an extractor, replacing any existing one for the same type.
	Register(extractor Extractor)

	// Get returns the extractor for a file type, or domain.ErrUnsupportedFormat.
	Get(fileType domain.FileType) (Extractor, error)

	// Extract parses the type tag and extracts text with the matching extractor.
	Extract(ctx context.Context, r io.Reader, typeTag string) (string, error)

	// FileTypes returns the registered file types.
	FileTypes() []domain.FileType
}
