package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/docquery/internal/core/domain"
	"github.com/custodia-labs/docquery/internal/core/ports/driven"
	"github.com/custodia-labs/docquery/internal/core/ports/driving"
	"github.com/custodia-labs/docquery/internal/logger"
)

// Ensure AskService implements the interface.
var _ driving.AskService = (*AskService)(nil)

// AskService answers questions about a document and records each pair.
type AskService struct {
	qa    driven.QAService
	store driven.HistoryStore
}

// NewAskService creates a new ask service. qa may be nil when no provider
// is configured; Ask then fails with domain.ErrQAUnavailable.
func NewAskService(qa driven.QAService, store driven.HistoryStore) *AskService {
	return &AskService{qa: qa, store: store}
}

// Ask validates the request, answers it, registers unknown users and
// appends the pair to their history.
//
// Question and answer whitespace is collapsed to single spaces so that both
// fit on one log line.
func (s *AskService) Ask(ctx context.Context, req driving.AskRequest) (*driving.AskResult, error) {
	if err := domain.ValidatePhoneNumber(req.Phone); err != nil {
		return nil, err
	}

	question := collapseWhitespace(req.Question)
	if question == "" {
		return nil, fmt.Errorf("%w: question is required", domain.ErrInvalidInput)
	}
	if req.Document == nil || strings.TrimSpace(req.Document.Text) == "" {
		return nil, fmt.Errorf("%w: load a document before asking", domain.ErrEmptyDocument)
	}
	if s.qa == nil {
		return nil, domain.ErrQAUnavailable
	}

	log := logger.Logger()
	log.Debug().
		Str("model", s.qa.ModelName()).
		Str("document", req.Document.ID).
		Time("loaded_at", req.Document.LoadedAt).
		Msgf("asking about %s", req.Document.Name)
	start := time.Now()

	answer, err := s.qa.Answer(ctx, question, req.Document.Text)
	if err != nil {
		return nil, fmt.Errorf("answering question: %w", err)
	}
	answer.Text = collapseWhitespace(answer.Text)
	if answer.Text == "" {
		return nil, fmt.Errorf("%w: model returned an empty answer", domain.ErrInvalidInput)
	}

	logger.Debug("answer score=%.4f span=[%d,%d) in %s",
		answer.Score, answer.Start, answer.End, time.Since(start).Round(time.Millisecond))

	exists, err := s.store.Exists(ctx, req.Phone)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := s.store.Register(ctx, req.Phone); err != nil {
			return nil, err
		}
		logger.Info("registered %s", req.Phone)
	}

	if err := s.store.Append(ctx, req.Phone, question, answer.Text); err != nil {
		return nil, err
	}

	return &driving.AskResult{
		Question:   question,
		Answer:     answer,
		DocumentID: req.Document.ID,
		NewAccount: !exists,
	}, nil
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
