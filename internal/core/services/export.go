package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/docquery/internal/core/domain"
	"github.com/custodia-labs/docquery/internal/core/ports/driven"
	"github.com/custodia-labs/docquery/internal/core/ports/driving"
)

// Ensure ExportService implements the interface.
var _ driving.ExportService = (*ExportService)(nil)

// extractedTextTitle heads exported document text.
const extractedTextTitle = "Extracted Text"

// ExportService renders history and extracted text through format exporters.
type ExportService struct {
	store     driven.HistoryStore
	exporters map[domain.ExportFormat]driven.Exporter
}

// NewExportService creates a new export service over the given exporters.
func NewExportService(store driven.HistoryStore, exporters ...driven.Exporter) *ExportService {
	byFormat := make(map[domain.ExportFormat]driven.Exporter, len(exporters))
	for _, e := range exporters {
		byFormat[e.Format()] = e
	}
	return &ExportService{store: store, exporters: byFormat}
}

// ExportHistory renders a registered user's history as chat_history_<phone>.<ext>.
func (s *ExportService) ExportHistory(
	ctx context.Context,
	phone string,
	format domain.ExportFormat,
) (*domain.Export, error) {
	exporter, err := s.exporter(format)
	if err != nil {
		return nil, err
	}

	exists, err := s.store.Exists(ctx, phone)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("phone number %s %w in our records", phone, domain.ErrNotFound)
	}

	pairs, err := s.store.History(ctx, phone)
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("%w for %s", domain.ErrEmptyHistory, phone)
	}

	data, err := exporter.ExportHistory(phone, pairs)
	if err != nil {
		return nil, fmt.Errorf("rendering %s history: %w", format, err)
	}

	return &domain.Export{
		FileName: fmt.Sprintf("chat_history_%s.%s", phone, format),
		MIMEType: exporter.MIMEType(),
		Data:     data,
	}, nil
}

// ExportText renders a document's extracted text as extracted_text.<ext>.
func (s *ExportService) ExportText(doc *domain.Document, format domain.ExportFormat) (*domain.Export, error) {
	exporter, err := s.exporter(format)
	if err != nil {
		return nil, err
	}
	if doc == nil || doc.Text == "" {
		return nil, domain.ErrEmptyDocument
	}

	data, err := exporter.ExportText(extractedTextTitle, doc.Text)
	if err != nil {
		return nil, fmt.Errorf("rendering %s text: %w", format, err)
	}

	return &domain.Export{
		FileName: fmt.Sprintf("extracted_text.%s", format),
		MIMEType: exporter.MIMEType(),
		Data:     data,
	}, nil
}

func (s *ExportService) exporter(format domain.ExportFormat) (driven.Exporter, error) {
	exporter, ok := s.exporters[format]
	if !ok {
		return nil, fmt.Errorf("%w: export format %q", domain.ErrUnsupportedFormat, format)
	}
	return exporter, nil
}
