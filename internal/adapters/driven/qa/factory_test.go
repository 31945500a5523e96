package qa

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docquery/internal/core/domain"
)

func TestNewService(t *testing.T) {
	tests := []struct {
		name        string
		settings    domain.QASettings
		wantModel   string
		wantErr     bool
		errContains string
	}{
		{
			name:      "huggingface with defaults",
			settings:  domain.QASettings{Provider: domain.QAProviderHuggingFace},
			wantModel: "distilbert/distilbert-base-cased-distilled-squad",
		},
		{
			name:      "huggingface custom model",
			settings:  domain.QASettings{Provider: domain.QAProviderHuggingFace, Model: "deepset/roberta-base-squad2"},
			wantModel: "deepset/roberta-base-squad2",
		},
		{
			name:      "openai with key",
			settings:  domain.QASettings{Provider: domain.QAProviderOpenAI, APIKey: "sk-test"},
			wantModel: "gpt-4o-mini",
		},
		{
			name:        "openai without key",
			settings:    domain.QASettings{Provider: domain.QAProviderOpenAI},
			wantErr:     true,
			errContains: "requires an API key",
		},
		{
			name:        "unknown provider",
			settings:    domain.QASettings{Provider: "bert-local"},
			wantErr:     true,
			errContains: "unsupported provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewService(tt.settings)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrQAUnavailable)
				assert.Contains(t, err.Error(), tt.errContains)
				assert.Nil(t, svc)
				return
			}

			require.NoError(t, err)
			assert.IsType(t, &Limited{}, svc)
			assert.Equal(t, tt.wantModel, svc.ModelName())
			assert.NoError(t, svc.Close())
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("reachable endpoint", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusMethodNotAllowed)
		}))
		defer server.Close()

		err := Validate(domain.QASettings{Provider: domain.QAProviderHuggingFace, BaseURL: server.URL})
		assert.NoError(t, err)
	})

	t.Run("unreachable endpoint", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		err := Validate(domain.QASettings{Provider: domain.QAProviderHuggingFace, BaseURL: server.URL})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrQAUnavailable)
		assert.Contains(t, err.Error(), "service unreachable")
	})
}
