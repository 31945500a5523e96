// Package plaintext extracts text from UTF-8 text files.
package plaintext

import (
	"context"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/custodia-labs/docquery/internal/core/domain"
	"github.com/custodia-labs/docquery/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles plain text documents.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// FileType returns the document type this extractor handles.
func (e *Extractor) FileType() domain.FileType {
	return domain.FileTypeTXT
}

// Extract returns the file content unchanged. Content must be valid UTF-8.
func (e *Extractor) Extract(_ context.Context, r io.Reader) (string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading text: %w", err)
	}
	if !utf8.Valid(content) {
		return "", fmt.Errorf("%w: text is not valid UTF-8", domain.ErrInvalidInput)
	}
	return string(content), nil
}
