package extractors

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/custodia-labs/docquery/internal/core/domain"
	"github.com/custodia-labs/docquery/internal/core/ports/driven"
	"github.com/custodia-labs/docquery/internal/extractors/docx"
	"github.com/custodia-labs/docquery/internal/extractors/pdf"
	"github.com/custodia-labs/docquery/internal/extractors/plaintext"
	"github.com/custodia-labs/docquery/internal/logger"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry maps file types to extractors.
type Registry struct {
	mu         sync.RWMutex
	extractors map[domain.FileType]driven.Extractor
}

// NewRegistry creates an empty extractor registry.
func NewRegistry() *Registry {
	return &Registry{
		extractors: make(map[domain.FileType]driven.Extractor),
	}
}

// DefaultRegistry returns a registry with the pdf, docx and txt extractors.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(pdf.New())
	r.Register(docx.New())
	r.Register(plaintext.New())
	return r
}

// Register adds an extractor, replacing any existing one for its file type.
func (r *Registry) Register(extractor driven.Extractor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.extractors[extractor.FileType()] = extractor
}

// Get returns the extractor for a file type.
func (r *Registry) Get(fileType domain.FileType) (driven.Extractor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	extractor, ok := r.extractors[fileType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, fileType)
	}
	return extractor, nil
}

// Extract parses typeTag and extracts text with the matching extractor.
func (r *Registry) Extract(ctx context.Context, rd io.Reader, typeTag string) (string, error) {
	fileType, err := domain.ParseFileType(typeTag)
	if err != nil {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, typeTag)
	}

	extractor, err := r.Get(fileType)
	if err != nil {
		return "", err
	}

	text, err := extractor.Extract(ctx, rd)
	if err != nil {
		return "", fmt.Errorf("extracting %s: %w", fileType, err)
	}
	logger.Debug("extracted %d characters from %s document", len(text), fileType)
	return text, nil
}

// FileTypes returns the registered file types in sorted order.
func (r *Registry) FileTypes() []domain.FileType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]domain.FileType, 0, len(r.extractors))
	for t := range r.extractors {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
