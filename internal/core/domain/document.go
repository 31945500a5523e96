package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// FileType is the declared type tag of an uploaded document.
type FileType string

// Supported document types.
const (
	FileTypePDF  FileType = "pdf"
	FileTypeDOCX FileType = "docx"
	FileTypeTXT  FileType = "txt"
)

// IsValid returns true if the file type is recognised.
func (t FileType) IsValid() bool {
	switch t {
	case FileTypePDF, FileTypeDOCX, FileTypeTXT:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t FileType) String() string {
	return string(t)
}

// MIMEType returns the MIME type for the file type.
func (t FileType) MIMEType() string {
	switch t {
	case FileTypePDF:
		return "application/pdf"
	case FileTypeDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case FileTypeTXT:
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}

// ParseFileType parses a type tag such as "pdf", "DOCX" or ".txt".
// Unknown tags return ErrUnsupportedFormat.
func ParseFileType(tag string) (FileType, error) {
	t := FileType(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(tag), ".")))
	if !t.IsValid() {
		return "", ErrUnsupportedFormat
	}
	return t, nil
}

// FileTypeFromPath derives the file type from a file name's extension.
func FileTypeFromPath(path string) (FileType, error) {
	return ParseFileType(filepath.Ext(path))
}

// Document is the text extracted from an uploaded file.
type Document struct {
	// ID identifies this extraction.
	ID string

	// Name is the original file name.
	Name string

	// Type is the declared file type.
	Type FileType

	// Text is the full extracted text, with page boundaries flattened.
	Text string

	// LoadedAt is when the text was extracted.
	LoadedAt time.Time
}

// Answer is a span extracted from a context by a question-answering model.
type Answer struct {
	// Text is the answer span.
	Text string

	// Score is the model's confidence, if reported.
	Score float64

	// Start and End are rune offsets of the span in the context, or -1 when unknown.
	Start int
	End   int
}

// ExportFormat is an output file format for history and extracted text.
type ExportFormat string

// Supported export formats.
const (
	ExportFormatTXT  ExportFormat = "txt"
	ExportFormatDOCX ExportFormat = "docx"
)

// ParseExportFormat parses a format name case-insensitively.
func ParseExportFormat(s string) (ExportFormat, error) {
	f := ExportFormat(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case ExportFormatTXT, ExportFormatDOCX:
		return f, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// Export is a rendered file ready to be written or downloaded.
type Export struct {
	FileName string
	MIMEType string
	Data     []byte
}
