package mcp

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docquery/internal/core/domain"
)

func TestServer_handleAsk(t *testing.T) {
	ctx := context.Background()

	t.Run("answers and records the question", func(t *testing.T) {
		server, store := newTestServer(t)
		path := writeDocument(t, "Paris is the capital of France.")

		_, output, err := server.handleAsk(ctx, nil, AskInput{Path: path, Phone: testPhone, Question: "What is the capital?"})

		require.NoError(t, err)
		assert.Equal(t, "What is the capital?", output.Question)
		assert.Equal(t, "Paris", output.Answer)
		assert.True(t, output.NewAccount)

		pairs, err := store.History(ctx, testPhone)
		require.NoError(t, err)
		assert.Equal(t, []domain.QAPair{{Question: "What is the capital?", Answer: "Paris"}}, pairs)
	})

	t.Run("each call reports the extraction it answered from", func(t *testing.T) {
		server, _ := newTestServer(t)
		path := writeDocument(t, "Paris is the capital of France.")

		_, first, err := server.handleAsk(ctx, nil, AskInput{Path: path, Phone: testPhone, Question: "Q1"})
		require.NoError(t, err)
		_, second, err := server.handleAsk(ctx, nil, AskInput{Path: path, Phone: testPhone, Question: "Q2"})
		require.NoError(t, err)

		_, err = uuid.Parse(first.DocumentID)
		require.NoError(t, err)
		_, err = uuid.Parse(second.DocumentID)
		require.NoError(t, err)
		assert.NotEqual(t, first.DocumentID, second.DocumentID)
	})

	t.Run("second question is not a new account", func(t *testing.T) {
		server, _ := newTestServer(t)
		path := writeDocument(t, "Paris is the capital of France.")

		_, _, err := server.handleAsk(ctx, nil, AskInput{Path: path, Phone: testPhone, Question: "Q1"})
		require.NoError(t, err)
		_, output, err := server.handleAsk(ctx, nil, AskInput{Path: path, Phone: testPhone, Question: "Q2"})
		require.NoError(t, err)

		assert.False(t, output.NewAccount)
	})

	t.Run("missing document", func(t *testing.T) {
		server, _ := newTestServer(t)

		_, _, err := server.handleAsk(ctx, nil, AskInput{
			Path:     filepath.Join(t.TempDir(), "missing.txt"),
			Phone:    testPhone,
			Question: "q",
		})
		assert.Error(t, err)
	})

	t.Run("invalid phone", func(t *testing.T) {
		server, _ := newTestServer(t)
		path := writeDocument(t, "text")

		_, _, err := server.handleAsk(ctx, nil, AskInput{Path: path, Phone: "12ab", Question: "q"})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestServer_handleGetHistory(t *testing.T) {
	ctx := context.Background()
	server, store := newTestServer(t)

	_, output, err := server.handleGetHistory(ctx, nil, PhoneInput{Phone: testPhone})
	require.NoError(t, err)
	assert.Equal(t, 0, output.Count)
	assert.NotNil(t, output.Pairs)

	require.NoError(t, store.Append(ctx, testPhone, "What is 2+2?", "4"))

	_, output, err = server.handleGetHistory(ctx, nil, PhoneInput{Phone: testPhone})
	require.NoError(t, err)
	assert.Equal(t, 1, output.Count)
	assert.Equal(t, testPhone, output.Phone)
	assert.Equal(t, "4", output.Pairs[0].Answer)
}

func TestServer_handleHistoryExists(t *testing.T) {
	ctx := context.Background()
	server, store := newTestServer(t)

	_, output, err := server.handleHistoryExists(ctx, nil, PhoneInput{Phone: testPhone})
	require.NoError(t, err)
	assert.False(t, output.Exists)

	require.NoError(t, store.Register(ctx, testPhone))

	_, output, err = server.handleHistoryExists(ctx, nil, PhoneInput{Phone: testPhone})
	require.NoError(t, err)
	assert.True(t, output.Exists)

	_, _, err = server.handleHistoryExists(ctx, nil, PhoneInput{Phone: "555"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
