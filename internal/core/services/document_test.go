package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docquery/internal/core/domain"
	"github.com/custodia-labs/docquery/internal/extractors"
)

func TestDocumentService_LoadReader(t *testing.T) {
	svc := NewDocumentService(extractors.DefaultRegistry())

	doc, err := svc.LoadReader(context.Background(), strings.NewReader("The capital of France is Paris."), "notes.txt", "")

	require.NoError(t, err)
	assert.Equal(t, "notes.txt", doc.Name)
	assert.Equal(t, domain.FileTypeTXT, doc.Type)
	assert.Equal(t, "The capital of France is Paris.", doc.Text)
	assert.False(t, doc.LoadedAt.IsZero())
	_, err = uuid.Parse(doc.ID)
	assert.NoError(t, err)
}

func TestDocumentService_LoadReader_TypeTagOverridesName(t *testing.T) {
	svc := NewDocumentService(extractors.DefaultRegistry())

	doc, err := svc.LoadReader(context.Background(), strings.NewReader("hello"), "upload.bin", "TXT")

	require.NoError(t, err)
	assert.Equal(t, domain.FileTypeTXT, doc.Type)
}

func TestDocumentService_LoadReader_UniqueIDs(t *testing.T) {
	svc := NewDocumentService(extractors.DefaultRegistry())

	a, err := svc.LoadReader(context.Background(), strings.NewReader("a"), "a.txt", "")
	require.NoError(t, err)
	b, err := svc.LoadReader(context.Background(), strings.NewReader("b"), "b.txt", "")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestDocumentService_LoadReader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		file    string
		tag     string
		wantErr error
	}{
		{"unsupported extension", "x", "slides.pptx", "", domain.ErrUnsupportedFormat},
		{"missing extension", "x", "README", "", domain.ErrUnsupportedFormat},
		{"unsupported tag", "x", "a.txt", "rtf", domain.ErrUnsupportedFormat},
		{"empty text", "", "empty.txt", "", domain.ErrEmptyDocument},
		{"whitespace only", " \n\t ", "blank.txt", "", domain.ErrEmptyDocument},
		{"corrupt docx", "not a zip", "broken.docx", "", domain.ErrInvalidInput},
	}

	svc := NewDocumentService(extractors.DefaultRegistry())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := svc.LoadReader(context.Background(), strings.NewReader(tt.content), tt.file, tt.tag)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, doc)
		})
	}
}

func TestDocumentService_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("Hello from disk"), 0o644))

	doc, err := NewDocumentService(extractors.DefaultRegistry()).Load(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, "doc.txt", doc.Name)
	assert.Equal(t, "Hello from disk", doc.Text)
}

func TestDocumentService_Load_MissingFile(t *testing.T) {
	_, err := NewDocumentService(extractors.DefaultRegistry()).
		Load(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDocumentService_SupportedTypes(t *testing.T) {
	svc := NewDocumentService(extractors.DefaultRegistry())
	assert.Equal(t, []domain.FileType{domain.FileTypeDOCX, domain.FileTypePDF, domain.FileTypeTXT}, svc.SupportedTypes())
}
