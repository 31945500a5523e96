// Package docx extracts text from Office Open XML word-processing documents.
package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/docquery/internal/core/domain"
	"github.com/custodia-labs/docquery/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// documentPart is the main document part inside the package.
const documentPart = "word/document.xml"

// Extractor handles DOCX documents.
type Extractor struct{}

// New creates a new DOCX extractor.
func New() *Extractor {
	return &Extractor{}
}

// FileType returns the document type this extractor handles.
func (e *Extractor) FileType() domain.FileType {
	return domain.FileTypeDOCX
}

// Extract returns the text of every body paragraph, joined with newlines.
func (e *Extractor) Extract(_ context.Context, r io.Reader) (string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading docx: %w", err)
	}

	reader, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("%w: opening docx archive: %w", domain.ErrInvalidInput, err)
	}

	for _, file := range reader.File {
		if file.Name != documentPart {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("opening %s: %w", documentPart, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", documentPart, err)
		}

		return parseDocumentXML(data)
	}

	return "", fmt.Errorf("%w: docx archive has no %s", domain.ErrInvalidInput, documentPart)
}

// documentXML represents the structure of word/document.xml.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"body"`
}

// paragraph is the text of one w:p element in document order. Runs nested
// in hyperlinks, smart tags or field results are included; w:tab becomes a
// tab and w:br or w:cr a newline.
type paragraph struct {
	Text string
}

// UnmarshalXML walks the paragraph's tokens so interleaved runs and
// hyperlinks keep their order. Property elements are skipped since their
// w:tab children define tab stops rather than text.
func (p *paragraph) UnmarshalXML(d *xml.Decoder, _ xml.StartElement) error {
	var (
		b      strings.Builder
		depth  int
		inText int
	)
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "pPr", "rPr":
				if err := d.Skip(); err != nil {
					return err
				}
				continue
			case "t":
				inText++
			case "tab":
				b.WriteByte('\t')
			case "br", "cr":
				b.WriteByte('\n')
			}
			depth++
		case xml.EndElement:
			if depth == 0 {
				p.Text = b.String()
				return nil
			}
			depth--
			if el.Name.Local == "t" {
				inText--
			}
		case xml.CharData:
			if inText > 0 {
				b.Write(el)
			}
		}
	}
}

// parseDocumentXML extracts paragraph text from the document XML.
func parseDocumentXML(content []byte) (string, error) {
	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return "", fmt.Errorf("%w: parsing %s: %w", domain.ErrInvalidInput, documentPart, err)
	}

	texts := make([]string, len(doc.Body.Paragraphs))
	for i, para := range doc.Body.Paragraphs {
		texts[i] = para.Text
	}
	return strings.Join(texts, "\n"), nil
}
