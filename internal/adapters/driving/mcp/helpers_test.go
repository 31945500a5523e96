package mcp

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docquery/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docquery/internal/core/domain"
	"github.com/custodia-labs/docquery/internal/core/services"
	"github.com/custodia-labs/docquery/internal/extractors"
)

const testPhone = "5551234567"

// stubQA answers every question with a fixed span.
type stubQA struct {
	text string
}

func (q *stubQA) Answer(_ context.Context, _, _ string) (domain.Answer, error) {
	return domain.Answer{Text: q.text, Score: 0.9, Start: 0, End: len(q.text)}, nil
}

func (q *stubQA) ModelName() string { return "stub" }

func (q *stubQA) Ping(context.Context) error { return nil }

func (q *stubQA) Close() error { return nil }

// newTestServer builds a server over real services backed by a memory store.
func newTestServer(t *testing.T) (*Server, *memory.HistoryStore) {
	t.Helper()
	store := memory.NewHistoryStore()
	server, err := NewServer(&Ports{
		Document: services.NewDocumentService(extractors.DefaultRegistry()),
		Ask:      services.NewAskService(&stubQA{text: "Paris"}, store),
		History:  services.NewHistoryService(store),
	}, "test")
	require.NoError(t, err)
	return server, store
}

func writeDocument(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "france.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
