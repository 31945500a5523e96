package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionServer(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/chat/completions":
			assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

			var req struct {
				Model    string `json:"model"`
				Messages []struct {
					Role    string `json:"role"`
					Content string `json:"content"`
				} `json:"messages"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "gpt-test", req.Model)
			require.Len(t, req.Messages, 2)
			assert.Equal(t, "system", req.Messages[0].Role)
			assert.Contains(t, req.Messages[1].Content, "Question: ")

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":      "chatcmpl-1",
				"object":  "chat.completion",
				"created": 1,
				"model":   req.Model,
				"choices": []map[string]any{{
					"index":         0,
					"message":       map[string]any{"role": "assistant", "content": reply},
					"finish_reason": "stop",
				}},
			})
		case "/v1/models":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"object":"list","data":[]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestService(t *testing.T, server *httptest.Server) *QAService {
	t.Helper()
	svc, err := NewQAService(Config{APIKey: "sk-test", BaseURL: server.URL + "/v1", Model: "gpt-test"})
	require.NoError(t, err)
	return svc
}

func TestNewQAService(t *testing.T) {
	_, err := NewQAService(Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")

	svc, err := NewQAService(Config{APIKey: "sk-test"})
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, svc.ModelName())
	assert.NoError(t, svc.Close())
}

func TestQAService_Answer_VerbatimSpan(t *testing.T) {
	svc := newTestService(t, completionServer(t, "  Paris\n"))

	answer, err := svc.Answer(context.Background(), "What is the capital?", "The capital of France is Paris.")

	require.NoError(t, err)
	assert.Equal(t, "Paris", answer.Text)
	assert.Equal(t, 25, answer.Start)
	assert.Equal(t, 30, answer.End)
	assert.Zero(t, answer.Score)
}

func TestQAService_Answer_QuotedReply(t *testing.T) {
	svc := newTestService(t, completionServer(t, `"Paris"`))

	answer, err := svc.Answer(context.Background(), "What is the capital?", "The capital of France is Paris.")

	require.NoError(t, err)
	assert.Equal(t, "Paris", answer.Text)
	assert.Equal(t, 25, answer.Start)
}

func TestQAService_Answer_NotVerbatim(t *testing.T) {
	svc := newTestService(t, completionServer(t, "The city of Paris"))

	answer, err := svc.Answer(context.Background(), "What is the capital?", "The capital of France is Paris.")

	require.NoError(t, err)
	assert.Equal(t, "The city of Paris", answer.Text)
	assert.Equal(t, -1, answer.Start)
	assert.Equal(t, -1, answer.End)
}

func TestQAService_Answer_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`))
	}))
	defer server.Close()

	_, err := newTestService(t, server).Answer(context.Background(), "q", "c")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Incorrect API key provided")
}

func TestQAService_Ping(t *testing.T) {
	svc := newTestService(t, completionServer(t, "unused"))
	assert.NoError(t, svc.Ping(context.Background()))
}

func TestLocateSpan(t *testing.T) {
	tests := []struct {
		name      string
		context   string
		span      string
		wantStart int
		wantEnd   int
	}{
		{"ascii", "abc def", "def", 4, 7},
		{"first occurrence", "a b a", "a", 0, 1},
		{"multibyte offsets are runes", "café au lait", "lait", 8, 12},
		{"missing", "abc", "xyz", -1, -1},
		{"empty span", "abc", "", -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := locateSpan(tt.context, tt.span)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}
