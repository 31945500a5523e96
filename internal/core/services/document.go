package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/docquery/internal/core/domain"
	"github.com/custodia-labs/docquery/internal/core/ports/driven"
	"github.com/custodia-labs/docquery/internal/core/ports/driving"
	"github.com/custodia-labs/docquery/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService loads uploaded files and extracts their text.
type DocumentService struct {
	extractors driven.ExtractorRegistry
}

// NewDocumentService creates a new document service.
func NewDocumentService(extractors driven.ExtractorRegistry) *DocumentService {
	return &DocumentService{extractors: extractors}
}

// Load extracts the file at path. The type comes from the file extension.
func (s *DocumentService) Load(ctx context.Context, path string) (*domain.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()

	return s.LoadReader(ctx, f, filepath.Base(path), "")
}

// LoadReader extracts a document from r. typeTag overrides the type derived
// from name. Documents without any text are rejected with domain.ErrEmptyDocument.
func (s *DocumentService) LoadReader(
	ctx context.Context,
	r io.Reader,
	name, typeTag string,
) (*domain.Document, error) {
	var (
		fileType domain.FileType
		err      error
	)
	if typeTag == "" {
		fileType, err = domain.FileTypeFromPath(name)
	} else {
		fileType, err = domain.ParseFileType(typeTag)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("extracting %s as %s", name, fileType)
	start := time.Now()

	text, err := s.extractors.Extract(ctx, r, fileType.String())
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptyDocument, name)
	}

	logger.Debug("extracted %d characters from %s in %s", len(text), name, time.Since(start).Round(time.Millisecond))

	return &domain.Document{
		ID:       uuid.NewString(),
		Name:     name,
		Type:     fileType,
		Text:     text,
		LoadedAt: time.Now(),
	}, nil
}

// SupportedTypes lists the file types with a registered extractor.
func (s *DocumentService) SupportedTypes() []domain.FileType {
	return s.extractors.FileTypes()
}
