package driven

import "github.com/custodia-labs/docquery/internal/core/domain"

// Exporter renders history and extracted text in one file format.
type Exporter interface {
	// Format returns the export format produced.
	Format() domain.ExportFormat

	// MIMEType returns the MIME type of produced files.
	MIMEType() string

	// ExportHistory renders the ordered question/answer pairs of a user.
	ExportHistory(phone string, pairs []domain.QAPair) ([]byte, error)

	// ExportText renders extracted document text under a title.
	ExportText(title, text string) ([]byte, error)
}
