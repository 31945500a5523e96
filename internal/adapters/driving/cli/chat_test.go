package cli

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docquery/internal/core/domain"
	"github.com/custodia-labs/docquery/internal/logger"
)

func TestChatCmd_AnswersEachLine(t *testing.T) {
	env := setupTestServices(t)
	path := writeDocument(t, "france.txt", franceText)

	input := "What is the capital?\n\nWhat flows through Seine?\nexit\nignored after exit?\n"
	out, err := executeCommandWithInput(t, input, "chat", path, "--phone", testPhone)

	require.NoError(t, err)
	assert.Contains(t, out, "Loaded france.txt")
	assert.Regexp(t, `document [0-9a-f]{8}\)`, out)
	assert.Equal(t, 1, strings.Count(out, accountCreatedMessage))
	assert.NotContains(t, out, "Question: ", "no prompt when stdin is not a terminal")

	pairs, err := env.history.History(context.Background(), testPhone)
	require.NoError(t, err)
	assert.Equal(t, []domain.QAPair{
		{Question: "What is the capital?", Answer: "Paris is the capital of France"},
		{Question: "What flows through Seine?", Answer: "The Seine flows through Paris"},
	}, pairs)
}

func TestChatCmd_EndsOnEOF(t *testing.T) {
	env := setupTestServices(t)
	require.NoError(t, env.history.Register(context.Background(), testPhone))
	path := writeDocument(t, "france.txt", franceText)

	out, err := executeCommandWithInput(t, "What is the capital?", "chat", path, "--phone", testPhone)

	require.NoError(t, err)
	assert.NotContains(t, out, accountCreatedMessage)
	assert.Contains(t, out, "Paris is the capital of France")
}

func TestChatCmd_InvalidPhone(t *testing.T) {
	setupTestServices(t)
	path := writeDocument(t, "france.txt", franceText)

	_, err := executeCommandWithInput(t, "q\n", "chat", path, "--phone", "12345")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestChatSession_Replace(t *testing.T) {
	session := &chatSession{doc: &domain.Document{Text: "old"}}
	session.replace(&domain.Document{Text: "new"})
	assert.Equal(t, "new", session.document().Text)
}

func TestWatchDocument_ReloadsOnChange(t *testing.T) {
	setupTestServices(t)
	path := writeDocument(t, "notes.txt", "first version")

	doc, err := documentService.Load(context.Background(), path)
	require.NoError(t, err)
	session := &chatSession{doc: doc}
	firstID := doc.ID

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := &syncBuffer{}
	require.NoError(t, watchDocument(ctx, out, path, session))

	require.NoError(t, os.WriteFile(path, []byte("second version"), 0o644))

	assert.Eventually(t, func() bool {
		return session.document().Text == "second version"
	}, 3*time.Second, 20*time.Millisecond)
	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Reloaded notes.txt")
	}, time.Second, 20*time.Millisecond)

	assert.NotEqual(t, firstID, session.document().ID)
	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "document "+shortID(session.document().ID))
	}, time.Second, 20*time.Millisecond)
}

func TestWatchDocument_KeepsTextOnFailedReload(t *testing.T) {
	setupTestServices(t)
	path := writeDocument(t, "notes.txt", "first version")

	doc, err := documentService.Load(context.Background(), path)
	require.NoError(t, err)
	session := &chatSession{doc: doc}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, watchDocument(ctx, &syncBuffer{}, path, session))
	require.NoError(t, os.WriteFile(path, []byte("   "), 0o644))

	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, "first version", session.document().Text)
}

func TestWatchDocument_NoWatcher(t *testing.T) {
	setupTestServices(t)
	fileWatcher = nil

	err := watchDocument(context.Background(), &syncBuffer{}, "x.txt", &chatSession{})
	assert.Error(t, err)
}

func TestChatCmd_VerboseLogsSession(t *testing.T) {
	setupTestServices(t)
	path := writeDocument(t, "france.txt", franceText)

	logs := &syncBuffer{}
	logger.SetOutput(logs)
	t.Cleanup(func() {
		logger.SetOutput(os.Stderr)
		logger.SetVerbose(false)
	})

	_, err := executeCommandWithInput(t, "exit\n", "chat", path, "--phone", testPhone, "-v")

	require.NoError(t, err)
	assert.Contains(t, logs.String(), "=== chat france.txt ===")
}
