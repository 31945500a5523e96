package driving

import (
	"context"

	"github.com/custodia-labs/docquery/internal/core/domain"
)

// AskRequest is a question about a loaded document on behalf of a user.
type AskRequest struct {
	// Phone is the user's 10-digit phone number.
	Phone string

	// Question is the natural-language question.
	Question string

	// Document is the loaded document supplying the context.
	Document *domain.Document
}

// AskResult is the outcome of an answered question.
type AskResult struct {
	Question string
	Answer   domain.Answer

	// DocumentID identifies the extraction the answer came from.
	DocumentID string

	// NewAccount is true when this question registered the phone number.
	NewAccount bool
}

// AskService answers questions and records them in the user's history.
type AskService interface {
	// Ask validates the request, answers it and appends the pair to history.
	Ask(ctx context.Context, req AskRequest) (*AskResult, error)
}
