// Package huggingface provides a QA service adapter for Hugging Face style
// question-answering inference endpoints.
package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/custodia-labs/docquery/internal/core/domain"
	"github.com/custodia-labs/docquery/internal/core/ports/driven"
)

// Ensure QAService implements the interface.
var _ driven.QAService = (*QAService)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://router.huggingface.co/hf-inference/models"
	DefaultModel   = "distilbert/distilbert-base-cased-distilled-squad"
	DefaultTimeout = 120 * time.Second
)

// Config holds configuration for the Hugging Face QA service.
type Config struct {
	// BaseURL is the models endpoint; the model name is appended as a path segment.
	BaseURL string

	// Model is the question-answering model (default: distilbert squad).
	Model string

	// APIKey is the access token. Optional for public endpoints.
	APIKey string

	// Timeout is the request timeout (default: 120s).
	Timeout time.Duration
}

// QAService answers questions using a question-answering pipeline endpoint.
type QAService struct {
	client  *http.Client
	baseURL string
	model   string
	apiKey  string
}

// answerRequest is the question-answering task request format.
type answerRequest struct {
	Inputs answerInputs `json:"inputs"`
}

type answerInputs struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

// answerResponse is a single question-answering result.
type answerResponse struct {
	Answer string  `json:"answer"`
	Score  float64 `json:"score"`
	Start  int     `json:"start"`
	End    int     `json:"end"`
}

// errorResponse is returned by the endpoint on failure.
type errorResponse struct {
	Error string `json:"error"`
}

// NewQAService creates a new Hugging Face QA service.
func NewQAService(cfg Config) *QAService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &QAService{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		apiKey:  cfg.APIKey,
	}
}

// Answer extracts the best answer span for question from contextText.
func (s *QAService) Answer(ctx context.Context, question, contextText string) (domain.Answer, error) {
	jsonBody, err := json.Marshal(answerRequest{
		Inputs: answerInputs{Question: question, Context: contextText},
	})
	if err != nil {
		return domain.Answer{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.modelURL(), bytes.NewReader(jsonBody))
	if err != nil {
		return domain.Answer{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	s.authorize(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return domain.Answer{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Answer{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
			return domain.Answer{}, fmt.Errorf("huggingface error (status %d): %s", resp.StatusCode, errResp.Error)
		}
		return domain.Answer{}, fmt.Errorf("huggingface error (status %d): %s", resp.StatusCode, string(body))
	}

	result, err := decodeAnswer(body)
	if err != nil {
		return domain.Answer{}, err
	}

	return domain.Answer{
		Text:  result.Answer,
		Score: result.Score,
		Start: result.Start,
		End:   result.End,
	}, nil
}

// decodeAnswer accepts either a single result or a ranked list of results.
func decodeAnswer(body []byte) (answerResponse, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var results []answerResponse
		if err := json.Unmarshal(trimmed, &results); err != nil {
			return answerResponse{}, fmt.Errorf("decode response: %w", err)
		}
		if len(results) == 0 {
			return answerResponse{}, fmt.Errorf("huggingface: no answers returned")
		}
		return results[0], nil
	}

	var result answerResponse
	if err := json.Unmarshal(trimmed, &result); err != nil {
		return answerResponse{}, fmt.Errorf("decode response: %w", err)
	}
	return result, nil
}

// ModelName returns the name of the QA model being used.
func (s *QAService) ModelName() string {
	return s.model
}

// Ping validates the model endpoint is reachable.
// Inference endpoints only accept POST, so 405 counts as reachable.
func (s *QAService) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.modelURL(), http.NoBody)
	if err != nil {
		return fmt.Errorf("huggingface: failed to create ping request: %w", err)
	}
	s.authorize(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("huggingface: ping failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusMethodNotAllowed {
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("huggingface: API returned status %d (failed to read body: %w)", resp.StatusCode, err)
	}
	return fmt.Errorf("huggingface: API returned status %d: %s", resp.StatusCode, string(body))
}

// Close releases resources.
func (s *QAService) Close() error {
	return nil
}

func (s *QAService) modelURL() string {
	return s.baseURL + "/" + s.model
}

func (s *QAService) authorize(req *http.Request) {
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}
}
