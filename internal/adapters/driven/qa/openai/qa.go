// Package openai provides a QA service adapter that prompts an
// OpenAI-compatible chat model to quote the answer from the context.
package openai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sashabaranov/go-openai"

	"github.com/custodia-labs/docquery/internal/core/domain"
	"github.com/custodia-labs/docquery/internal/core/ports/driven"
)

// Ensure QAService implements the interface.
var _ driven.QAService = (*QAService)(nil)

// Default configuration values.
const (
	DefaultModel   = "gpt-4o-mini"
	DefaultTimeout = 120 * time.Second
)

const systemPrompt = `You answer questions about a document by quoting it.
Reply with the shortest exact span of the context that answers the question.
Copy the span verbatim. Do not add any other words, punctuation or quotes.`

const userPrompt = `Context:
%s

Question: %s`

// Config holds configuration for the OpenAI QA service.
type Config struct {
	// APIKey is the OpenAI API key (required).
	APIKey string

	// BaseURL is the API base URL. Can be changed for compatible APIs.
	BaseURL string

	// Model is the chat model to use (default: gpt-4o-mini).
	Model string

	// Timeout is the request timeout (default: 120s).
	Timeout time.Duration
}

// QAService answers questions with an OpenAI chat completion.
type QAService struct {
	client *openai.Client
	model  string
}

// NewQAService creates a new OpenAI QA service.
func NewQAService(cfg Config) (*QAService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	config.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &QAService{
		client: openai.NewClientWithConfig(config),
		model:  cfg.Model,
	}, nil
}

// Answer asks the model for a verbatim span and locates it in contextText.
// Start and End are rune offsets, or -1 when the reply is not a verbatim span.
// The model reports no confidence, so Score is 0.
func (s *QAService) Answer(ctx context.Context, question, contextText string) (domain.Answer, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(userPrompt, contextText, question)},
		},
	})
	if err != nil {
		return domain.Answer{}, fmt.Errorf("openai: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return domain.Answer{}, fmt.Errorf("openai: no response choices returned")
	}

	text := cleanSpan(resp.Choices[0].Message.Content)
	start, end := locateSpan(contextText, text)

	return domain.Answer{
		Text:  text,
		Start: start,
		End:   end,
	}, nil
}

// cleanSpan strips whitespace and wrapping quotes that models tend to add.
func cleanSpan(text string) string {
	text = strings.TrimSpace(text)
	if len(text) >= 2 {
		first, last := text[0], text[len(text)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			text = strings.TrimSpace(text[1 : len(text)-1])
		}
	}
	return text
}

// locateSpan returns the rune offsets of the first occurrence of span.
func locateSpan(contextText, span string) (int, int) {
	if span == "" {
		return -1, -1
	}
	idx := strings.Index(contextText, span)
	if idx < 0 {
		return -1, -1
	}
	start := utf8.RuneCountInString(contextText[:idx])
	return start, start + utf8.RuneCountInString(span)
}

// ModelName returns the name of the chat model being used.
func (s *QAService) ModelName() string {
	return s.model
}

// Ping validates the API key by listing models.
func (s *QAService) Ping(ctx context.Context) error {
	if _, err := s.client.ListModels(ctx); err != nil {
		return fmt.Errorf("openai: ping failed: %w", err)
	}
	return nil
}

// Close releases resources.
func (s *QAService) Close() error {
	return nil
}
