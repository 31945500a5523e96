package extractors

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docquery/internal/core/domain"
)

// upperExtractor is a stub extractor used to test replacement.
type upperExtractor struct{}

func (upperExtractor) FileType() domain.FileType { return domain.FileTypeTXT }

func (upperExtractor) Extract(_ context.Context, r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	return strings.ToUpper(string(b)), err
}

func TestDefaultRegistry_FileTypes(t *testing.T) {
	r := DefaultRegistry()

	assert.Equal(t, []domain.FileType{domain.FileTypeDOCX, domain.FileTypePDF, domain.FileTypeTXT}, r.FileTypes())
}

func TestRegistry_ExtractText(t *testing.T) {
	r := DefaultRegistry()

	text, err := r.Extract(context.Background(), strings.NewReader("hello"), "TXT")

	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestRegistry_UnsupportedTag(t *testing.T) {
	r := DefaultRegistry()

	for _, tag := range []string{"doc", "xlsx", ""} {
		_, err := r.Extract(context.Background(), strings.NewReader("x"), tag)
		assert.ErrorIs(t, err, domain.ErrUnsupportedFormat, tag)
	}
}

func TestRegistry_ValidTagWithoutExtractor(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get(domain.FileTypePDF)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)

	_, err = r.Extract(context.Background(), strings.NewReader("x"), "pdf")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	r := DefaultRegistry()
	r.Register(upperExtractor{})

	text, err := r.Extract(context.Background(), strings.NewReader("hello"), "txt")

	require.NoError(t, err)
	assert.Equal(t, "HELLO", text)
	assert.Len(t, r.FileTypes(), 3)
}

func TestRegistry_ParserErrorsPropagate(t *testing.T) {
	r := DefaultRegistry()

	_, err := r.Extract(context.Background(), strings.NewReader("not a zip"), "docx")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "extracting docx")
}
