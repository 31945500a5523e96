package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docquery/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docquery/internal/adapters/driven/watch"
	"github.com/custodia-labs/docquery/internal/core/domain"
	"github.com/custodia-labs/docquery/internal/core/services"
	"github.com/custodia-labs/docquery/internal/exporters"
	"github.com/custodia-labs/docquery/internal/extractors"
)

const testPhone = "5551234567"

// stubQA answers with the sentence of the context that mentions the
// question's last word, or the first sentence.
type stubQA struct{}

func (stubQA) Answer(_ context.Context, question, contextText string) (domain.Answer, error) {
	words := strings.Fields(strings.TrimRight(question, "?"))
	key := strings.ToLower(words[len(words)-1])
	sentences := strings.Split(contextText, ".")
	answer := strings.TrimSpace(sentences[0])
	for _, s := range sentences {
		if strings.Contains(strings.ToLower(s), key) {
			answer = strings.TrimSpace(s)
			break
		}
	}
	start := strings.Index(contextText, answer)
	return domain.Answer{Text: answer, Score: 0.75, Start: start, End: start + len(answer)}, nil
}

func (stubQA) ModelName() string { return "stub" }

func (stubQA) Ping(context.Context) error { return nil }

func (stubQA) Close() error { return nil }

// testEnv exposes the stores behind the installed services.
type testEnv struct {
	history *memory.HistoryStore
	config  *memory.ConfigStore
}

// setupTestServices installs memory-backed services for the duration of the test.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		history: memory.NewHistoryStore(),
		config:  memory.NewConfigStore(),
	}

	SetServices(Services{
		Document:   services.NewDocumentService(extractors.DefaultRegistry()),
		Ask:        services.NewAskService(stubQA{}, env.history),
		History:    services.NewHistoryService(env.history),
		Export:     services.NewExportService(env.history, exporters.Default()...),
		Settings:   services.NewSettingsService(env.config),
		Watcher:    watch.New(20 * time.Millisecond),
		ValidateQA: func(domain.QASettings) error { return nil },
	})
	t.Cleanup(func() { SetServices(Services{}) })

	return env
}

// executeCommand runs the root command with args and returns combined output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeCommandWithInput(t, "", args...)
}

// executeCommandWithInput runs the root command with stdin set to input.
func executeCommandWithInput(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag to its default so package-level flag
// variables do not leak between tests.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func writeDocument(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const franceText = "Paris is the capital of France. The Seine flows through Paris."

// syncBuffer is a bytes.Buffer safe for use from watcher goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
