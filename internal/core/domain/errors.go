package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat indicates a file or export type tag that is not recognised.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrValidation indicates a phone number or request field failed validation.
	ErrValidation = errors.New("validation failed")

	// ErrStorage indicates a failure to read or write persisted history.
	// Storage failures are never retried.
	ErrStorage = errors.New("storage failure")

	// ErrEmptyDocument indicates no text could be extracted from a document,
	// or a question was asked before any document was loaded.
	ErrEmptyDocument = errors.New("no text extracted from document")

	// ErrEmptyHistory indicates a registered user has no question/answer pairs yet.
	ErrEmptyHistory = errors.New("no history available")

	// ErrQAUnavailable indicates the question-answering service is not configured.
	ErrQAUnavailable = errors.New("question answering service unavailable")
)

// ValidationError describes which field failed validation and why.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

// Unwrap lets errors.Is(err, ErrValidation) succeed.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
