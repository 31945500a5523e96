package cli

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docquery/internal/core/domain"
	"github.com/custodia-labs/docquery/internal/core/services"
	"github.com/custodia-labs/docquery/internal/extractors"
)

func TestAskCmd_FirstQuestionCreatesAccount(t *testing.T) {
	env := setupTestServices(t)
	path := writeDocument(t, "france.txt", franceText)

	out, err := executeCommand(t, "ask", path, "--phone", testPhone, "--question", "What is the capital?")

	require.NoError(t, err)
	assert.Contains(t, out, accountCreatedMessage)
	assert.Contains(t, out, "Paris is the capital of France")

	pairs, err := env.history.History(context.Background(), testPhone)
	require.NoError(t, err)
	assert.Equal(t, []domain.QAPair{{Question: "What is the capital?", Answer: "Paris is the capital of France"}}, pairs)
}

func TestAskCmd_SecondQuestionNoAccountMessage(t *testing.T) {
	setupTestServices(t)
	path := writeDocument(t, "france.txt", franceText)

	_, err := executeCommand(t, "ask", path, "--phone", testPhone, "--question", "What is the capital?")
	require.NoError(t, err)

	out, err := executeCommand(t, "ask", path, "--phone", testPhone, "--question", "What flows through Seine?")
	require.NoError(t, err)

	assert.NotContains(t, out, accountCreatedMessage)
	assert.Contains(t, out, "The Seine flows through Paris")
}

func TestAskCmd_Errors(t *testing.T) {
	setupTestServices(t)
	path := writeDocument(t, "france.txt", franceText)

	tests := []struct {
		name        string
		args        []string
		errContains string
	}{
		{"invalid phone", []string{"ask", path, "--phone", "555-1234", "--question", "q"}, "must contain only digits"},
		{"short phone", []string{"ask", path, "--phone", "555123", "--question", "q"}, "must be exactly 10 digits"},
		{"missing phone flag", []string{"ask", path, "--question", "q"}, "phone"},
		{"unsupported file", []string{"ask", writeDocument(t, "slides.pptx", "x"), "--phone", testPhone, "--question", "q"}, "unsupported format"},
		{"missing file", []string{"ask", filepath.Join(t.TempDir(), "nope.txt"), "--phone", testPhone, "--question", "q"}, "failed to extract"},
		{"empty document", []string{"ask", writeDocument(t, "empty.txt", "  "), "--phone", testPhone, "--question", "q"}, "no text extracted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, strings.ToLower(err.Error()), tt.errContains)
		})
	}
}

func TestAskCmd_QAUnavailableExplained(t *testing.T) {
	env := setupTestServices(t)
	SetServices(Services{
		Document:  services.NewDocumentService(extractors.DefaultRegistry()),
		Ask:       services.NewAskService(nil, env.history),
		QAInitErr: assert.AnError,
	})
	path := writeDocument(t, "france.txt", franceText)

	_, err := executeCommand(t, "ask", path, "--phone", testPhone, "--question", "q")

	assert.ErrorIs(t, err, assert.AnError)
}
