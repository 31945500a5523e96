// Package qa provides factory functions for creating QA service adapters.
package qa

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/docquery/internal/adapters/driven/qa/huggingface"
	"github.com/custodia-labs/docquery/internal/adapters/driven/qa/openai"
	"github.com/custodia-labs/docquery/internal/core/domain"
	"github.com/custodia-labs/docquery/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for service connectivity validation.
const pingTimeout = 5 * time.Second

// NewService creates the QA service selected by settings, wrapped in a
// rate limiter. Unconfigured settings yield domain.ErrQAUnavailable.
func NewService(settings domain.QASettings) (driven.QAService, error) {
	if !settings.IsConfigured() {
		if settings.Provider.RequiresAPIKey() {
			return nil, fmt.Errorf("%w: %s requires an API key. Run 'docquery settings set qa.api_key <key>'",
				domain.ErrQAUnavailable, settings.Provider)
		}
		return nil, fmt.Errorf("%w: unsupported provider %q", domain.ErrQAUnavailable, settings.Provider)
	}

	svc, err := createService(settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrQAUnavailable, err)
	}

	return NewLimited(svc, settings.RateLimit), nil
}

// Validate creates a QA service from settings and pings it.
func Validate(settings domain.QASettings) error {
	svc, err := NewService(settings)
	if err != nil {
		return err
	}
	defer svc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := svc.Ping(ctx); err != nil {
		return fmt.Errorf("%w: service unreachable (%w)", domain.ErrQAUnavailable, err)
	}
	return nil
}

func createService(settings domain.QASettings) (driven.QAService, error) {
	timeout := time.Duration(settings.TimeoutSeconds) * time.Second

	switch settings.Provider {
	case domain.QAProviderHuggingFace:
		return huggingface.NewQAService(huggingface.Config{
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
			APIKey:  settings.APIKey,
			Timeout: timeout,
		}), nil

	case domain.QAProviderOpenAI:
		return openai.NewQAService(openai.Config{
			APIKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
			Timeout: timeout,
		})

	default:
		return nil, fmt.Errorf("unsupported QA provider: %s", settings.Provider)
	}
}
