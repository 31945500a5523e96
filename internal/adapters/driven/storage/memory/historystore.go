// Package memory provides in-memory implementations of driven ports,
// used by tests and by ephemeral sessions that keep no history on disk.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/custodia-labs/docquery/internal/core/domain"
	"github.com/custodia-labs/docquery/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
// It encodes history exactly like the persistent stores do.
type HistoryStore struct {
	mu      sync.RWMutex
	nextID  int64
	records map[string]*domain.UserHistoryRecord
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		records: make(map[string]*domain.UserHistoryRecord),
	}
}

// Register creates an empty record unless one already exists.
func (s *HistoryStore) Register(_ context.Context, phone string) error {
	if err := domain.ValidatePhoneNumber(phone); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensure(phone)
	return nil
}

// Exists reports whether a record exists for phone.
func (s *HistoryStore) Exists(_ context.Context, phone string) (bool, error) {
	if err := domain.ValidatePhoneNumber(phone); err != nil {
		return false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.records[phone]
	return ok, nil
}

// Append adds a question/answer pair, creating the record on demand.
func (s *HistoryStore) Append(_ context.Context, phone, question, answer string) error {
	if err := domain.ValidatePhoneNumber(phone); err != nil {
		return err
	}
	if err := domain.ValidateLogEntry(question); err != nil {
		return fmt.Errorf("question: %w", err)
	}
	if err := domain.ValidateLogEntry(answer); err != nil {
		return fmt.Errorf("answer: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.ensure(phone)
	rec.QueryLog = domain.AppendLine(rec.QueryLog, question)
	rec.ResponseLog = domain.AppendLine(rec.ResponseLog, answer)
	return nil
}

// History returns the stored pairs in append order.
func (s *HistoryStore) History(ctx context.Context, phone string) ([]domain.QAPair, error) {
	rec, err := s.Record(ctx, phone)
	if errors.Is(err, domain.ErrNotFound) {
		return []domain.QAPair{}, nil
	}
	if err != nil {
		return nil, err
	}
	return rec.Pairs(), nil
}

// Record returns a copy of the stored record.
func (s *HistoryStore) Record(_ context.Context, phone string) (*domain.UserHistoryRecord, error) {
	if err := domain.ValidatePhoneNumber(phone); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[phone]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

// SetLogs overwrites the raw logs of a record, creating it if needed.
// Tests use it to seed logs that Append would never produce, such as
// logs of unequal length.
func (s *HistoryStore) SetLogs(phone, queryLog, responseLog string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.ensure(phone)
	rec.QueryLog = queryLog
	rec.ResponseLog = responseLog
}

// ensure returns the record for phone, creating it (caller must hold lock).
func (s *HistoryStore) ensure(phone string) *domain.UserHistoryRecord {
	if rec, ok := s.records[phone]; ok {
		return rec
	}
	s.nextID++
	rec := &domain.UserHistoryRecord{ID: s.nextID, PhoneNumber: phone}
	s.records[phone] = rec
	return rec
}
