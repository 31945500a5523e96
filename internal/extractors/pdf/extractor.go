// Package pdf extracts text from PDF documents using github.com/ledongthuc/pdf.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/custodia-labs/docquery/internal/core/domain"
	"github.com/custodia-labs/docquery/internal/core/ports/driven"
	"github.com/custodia-labs/docquery/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles PDF documents.
type Extractor struct{}

// New creates a new PDF extractor.
func New() *Extractor {
	return &Extractor{}
}

// FileType returns the document type this extractor handles.
func (e *Extractor) FileType() domain.FileType {
	return domain.FileTypePDF
}

// Extract concatenates the plain text of every page in order, with no
// separator between pages.
func (e *Extractor) Extract(ctx context.Context, r io.Reader) (text string, err error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading pdf: %w", err)
	}

	// The parser panics on some malformed inputs.
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = fmt.Errorf("%w: malformed pdf: %v", domain.ErrInvalidInput, rec)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("%w: opening pdf: %w", domain.ErrInvalidInput, err)
	}

	numPages := reader.NumPage()
	fonts := make(map[string]*pdf.Font)

	var result strings.Builder
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(fonts)
		if err != nil {
			return "", fmt.Errorf("extracting page %d: %w", i, err)
		}
		result.WriteString(pageText)
	}

	logger.Debug("pdf: read %d pages", numPages)
	return result.String(), nil
}
