package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docquery/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docquery/internal/core/services"
	"github.com/custodia-labs/docquery/internal/extractors"
)

func TestNewServer(t *testing.T) {
	t.Run("missing ports returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{}, "")
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingDocumentService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, _ := newTestServer(t)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	store := memory.NewHistoryStore()
	document := services.NewDocumentService(extractors.DefaultRegistry())
	ask := services.NewAskService(&stubQA{text: "x"}, store)
	history := services.NewHistoryService(store)

	tests := []struct {
		name    string
		ports   Ports
		wantErr error
	}{
		{"no document service", Ports{Ask: ask, History: history}, ErrMissingDocumentService},
		{"no ask service", Ports{Document: document, History: history}, ErrMissingAskService},
		{"no history service", Ports{Document: document, Ask: ask}, ErrMissingHistoryService},
		{"all ports", Ports{Document: document, Ask: ask, History: history}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestServer_ListsTools(t *testing.T) {
	server, _ := newTestServer(t)
	ctx := context.Background()

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer clientSession.Close()

	result, err := clientSession.ListTools(ctx, nil)
	require.NoError(t, err)

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"ask_document", "get_history", "history_exists"}, names)
}

func TestServer_ReportsVersionAndInstructions(t *testing.T) {
	server, _ := newTestServer(t)
	ctx := context.Background()

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer clientSession.Close()

	initResult := clientSession.InitializeResult()
	require.NotNil(t, initResult)
	assert.Equal(t, "docquery", initResult.ServerInfo.Name)
	assert.Equal(t, "test", initResult.ServerInfo.Version)
	assert.Contains(t, initResult.Instructions, "ask_document")
}
