package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/custodia-labs/docquery/internal/core/domain"
	"github.com/custodia-labs/docquery/internal/core/ports/driven"
)

// historyStore implements driven.HistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

// Register creates an empty record unless one already exists.
func (h *historyStore) Register(ctx context.Context, phone string) error {
	if err := domain.ValidatePhoneNumber(phone); err != nil {
		return err
	}

	err := h.store.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO user_history (phone_number, query, response)
			VALUES (?, '', '')
			ON CONFLICT(phone_number) DO NOTHING
		`, phone)
		return err
	})
	if err != nil {
		return fmt.Errorf("registering phone number: %w: %w", domain.ErrStorage, err)
	}
	return nil
}

// Exists reports whether a record exists for phone.
func (h *historyStore) Exists(ctx context.Context, phone string) (bool, error) {
	if err := domain.ValidatePhoneNumber(phone); err != nil {
		return false, err
	}

	var found bool
	err := h.store.withTx(ctx, func(tx *sql.Tx) error {
		var one int
		err := tx.QueryRowContext(ctx,
			"SELECT 1 FROM user_history WHERE phone_number = ? LIMIT 1", phone).Scan(&one)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("checking phone number: %w: %w", domain.ErrStorage, err)
	}
	return found, nil
}

// Append adds a question/answer pair, creating the record on demand.
// Both logs change in one statement within one transaction.
func (h *historyStore) Append(ctx context.Context, phone, question, answer string) error {
	if err := domain.ValidatePhoneNumber(phone); err != nil {
		return err
	}
	if err := domain.ValidateLogEntry(question); err != nil {
		return fmt.Errorf("question: %w", err)
	}
	if err := domain.ValidateLogEntry(answer); err != nil {
		return fmt.Errorf("answer: %w", err)
	}

	queryLine := domain.AppendLine("", question)
	responseLine := domain.AppendLine("", answer)

	err := h.store.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO user_history (phone_number, query, response)
			VALUES (?, ?, ?)
			ON CONFLICT(phone_number) DO UPDATE SET
				query = COALESCE(user_history.query, '') || excluded.query,
				response = COALESCE(user_history.response, '') || excluded.response
		`, phone, queryLine, responseLine)
		return err
	})
	if err != nil {
		return fmt.Errorf("appending history: %w: %w", domain.ErrStorage, err)
	}
	return nil
}

// History returns the stored pairs in append order.
func (h *historyStore) History(ctx context.Context, phone string) ([]domain.QAPair, error) {
	rec, err := h.Record(ctx, phone)
	if errors.Is(err, domain.ErrNotFound) {
		return []domain.QAPair{}, nil
	}
	if err != nil {
		return nil, err
	}
	return rec.Pairs(), nil
}

// Record returns the raw stored record.
func (h *historyStore) Record(ctx context.Context, phone string) (*domain.UserHistoryRecord, error) {
	if err := domain.ValidatePhoneNumber(phone); err != nil {
		return nil, err
	}

	var rec domain.UserHistoryRecord
	err := h.store.withTx(ctx, func(tx *sql.Tx) error {
		var query, response sql.NullString
		err := tx.QueryRowContext(ctx, `
			SELECT id, phone_number, query, response
			FROM user_history WHERE phone_number = ?
		`, phone).Scan(&rec.ID, &rec.PhoneNumber, &query, &response)
		if err != nil {
			return err
		}
		rec.QueryLog = query.String
		rec.ResponseLog = response.String
		return nil
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading history: %w: %w", domain.ErrStorage, err)
	}
	return &rec, nil
}
