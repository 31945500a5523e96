package services

import (
	"context"
	"strings"

	"github.com/custodia-labs/docquery/internal/core/domain"
)

// mockQA implements driven.QAService for testing.
type mockQA struct {
	answer    domain.Answer
	answerErr error
	questions []string
}

func (m *mockQA) Answer(_ context.Context, question, contextText string) (domain.Answer, error) {
	m.questions = append(m.questions, question)
	if m.answerErr != nil {
		return domain.Answer{}, m.answerErr
	}
	if m.answer.Text != "" {
		return m.answer, nil
	}
	// Echo the first word of the context as the span.
	word := strings.Fields(contextText)[0]
	return domain.Answer{Text: word, Score: 0.5, Start: 0, End: len(word)}, nil
}

func (m *mockQA) ModelName() string { return "mock-qa" }

func (m *mockQA) Ping(context.Context) error { return nil }

func (m *mockQA) Close() error { return nil }
