// Package docx renders exports as minimal WordprocessingML (.docx) documents.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/custodia-labs/docquery/internal/core/domain"
	"github.com/custodia-labs/docquery/internal/core/ports/driven"
)

// Ensure Exporter implements the interface.
var _ driven.Exporter = (*Exporter)(nil)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
</Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`

const stylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style>
<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:pPr><w:outlineLvl w:val="0"/></w:pPr><w:rPr><w:b/><w:sz w:val="32"/></w:rPr></w:style>
</w:styles>`

const documentHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`

const documentFooter = `<w:sectPr/></w:body></w:document>`

// Exporter produces .docx files.
type Exporter struct{}

// New creates a new DOCX exporter.
func New() *Exporter {
	return &Exporter{}
}

// Format returns domain.ExportFormatDOCX.
func (e *Exporter) Format() domain.ExportFormat {
	return domain.ExportFormatDOCX
}

// MIMEType returns the WordprocessingML MIME type.
func (e *Exporter) MIMEType() string {
	return domain.FileTypeDOCX.MIMEType()
}

// ExportHistory writes a level-1 heading, then Question, Answer and an empty
// paragraph per pair.
func (e *Exporter) ExportHistory(phone string, pairs []domain.QAPair) ([]byte, error) {
	var body bytes.Buffer
	if err := writeParagraph(&body, "Heading1", "Chat History for "+phone); err != nil {
		return nil, err
	}
	for _, pair := range pairs {
		for _, text := range []string{"Question: " + pair.Question, "Answer: " + pair.Answer, ""} {
			if err := writeParagraph(&body, "", text); err != nil {
				return nil, err
			}
		}
	}
	return pack(body.Bytes())
}

// ExportText writes the title as a heading and one paragraph per text line.
func (e *Exporter) ExportText(title, text string) ([]byte, error) {
	var body bytes.Buffer
	if err := writeParagraph(&body, "Heading1", title); err != nil {
		return nil, err
	}
	for _, line := range strings.Split(text, "\n") {
		if err := writeParagraph(&body, "", line); err != nil {
			return nil, err
		}
	}
	return pack(body.Bytes())
}

// writeParagraph appends a <w:p> with an optional paragraph style.
func writeParagraph(buf *bytes.Buffer, style, text string) error {
	buf.WriteString("<w:p>")
	if style != "" {
		fmt.Fprintf(buf, `<w:pPr><w:pStyle w:val="%s"/></w:pPr>`, style)
	}
	if text != "" {
		buf.WriteString(`<w:r><w:t xml:space="preserve">`)
		if err := xml.EscapeText(buf, []byte(text)); err != nil {
			return err
		}
		buf.WriteString("</w:t></w:r>")
	}
	buf.WriteString("</w:p>")
	return nil
}

// pack assembles the package parts around a document body.
func pack(body []byte) ([]byte, error) {
	parts := []struct {
		name    string
		content []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(packageRelsXML)},
		{"word/_rels/document.xml.rels", []byte(documentRelsXML)},
		{"word/styles.xml", []byte(stylesXML)},
		{"word/document.xml", append(append([]byte(documentHeader), body...), documentFooter...)},
	}

	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", part.name, err)
		}
		if _, err := w.Write(part.content); err != nil {
			return nil, fmt.Errorf("writing %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing docx archive: %w", err)
	}
	return buf.Bytes(), nil
}
