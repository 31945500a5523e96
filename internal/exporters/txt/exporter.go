// Package txt renders exports as UTF-8 plain text.
package txt

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/docquery/internal/core/domain"
	"github.com/custodia-labs/docquery/internal/core/ports/driven"
)

// Ensure Exporter implements the interface.
var _ driven.Exporter = (*Exporter)(nil)

// Exporter produces plain text files.
type Exporter struct{}

// New creates a new plain text exporter.
func New() *Exporter {
	return &Exporter{}
}

// Format returns domain.ExportFormatTXT.
func (e *Exporter) Format() domain.ExportFormat {
	return domain.ExportFormatTXT
}

// MIMEType returns the plain text MIME type.
func (e *Exporter) MIMEType() string {
	return "text/plain"
}

// ExportHistory writes a heading followed by one Question/Answer block per pair.
func (e *Exporter) ExportHistory(phone string, pairs []domain.QAPair) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Chat History for %s\n\n", phone)
	for _, pair := range pairs {
		fmt.Fprintf(&b, "Question: %s\n", pair.Question)
		fmt.Fprintf(&b, "Answer: %s\n\n", pair.Answer)
	}
	return []byte(b.String()), nil
}

// ExportText writes the title, a blank line and the text.
func (e *Exporter) ExportText(title, text string) ([]byte, error) {
	return []byte(title + "\n\n" + text), nil
}
