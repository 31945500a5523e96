package qa

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/docquery/internal/core/domain"
	"github.com/custodia-labs/docquery/internal/core/ports/driven"
)

// Ensure Limited implements the interface.
var _ driven.QAService = (*Limited)(nil)

// Limited throttles Answer calls to a QA service.
type Limited struct {
	next    driven.QAService
	limiter *rate.Limiter
}

// NewLimited wraps next so that at most perSecond answers are requested per
// second. A non-positive rate disables throttling.
func NewLimited(next driven.QAService, perSecond float64) *Limited {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	return &Limited{
		next:    next,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Answer waits for the limiter, then delegates.
func (l *Limited) Answer(ctx context.Context, question, contextText string) (domain.Answer, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return domain.Answer{}, err
	}
	return l.next.Answer(ctx, question, contextText)
}

// ModelName returns the wrapped service's model name.
func (l *Limited) ModelName() string {
	return l.next.ModelName()
}

// Ping delegates without consuming a token.
func (l *Limited) Ping(ctx context.Context) error {
	return l.next.Ping(ctx)
}

// Close closes the wrapped service.
func (l *Limited) Close() error {
	return l.next.Close()
}
