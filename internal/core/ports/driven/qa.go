package driven

import (
	"context"

	"github.com/custodia-labs/docquery/internal/core/domain"
)

// QAService answers a question by extracting a span from a context.
// It always returns its best span; there is no "no answer" result.
//
// Implementations may include:
//   - Hugging Face question-answering inference endpoints
//   - OpenAI-compatible chat models prompted to quote the context
type QAService interface {
	// Answer extracts the answer to question from contextText.
	Answer(ctx context.Context, question, contextText string) (domain.Answer, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
