// Package exporters renders question/answer history and extracted document
// text as downloadable files.
package exporters

import (
	"github.com/custodia-labs/docquery/internal/core/ports/driven"
	"github.com/custodia-labs/docquery/internal/exporters/docx"
	"github.com/custodia-labs/docquery/internal/exporters/txt"
)

// Default returns the exporters for every supported format.
func Default() []driven.Exporter {
	return []driven.Exporter{txt.New(), docx.New()}
}
