// Package storagetest holds behaviour tests shared by every HistoryStore implementation.
package storagetest

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docquery/internal/core/domain"
	"github.com/custodia-labs/docquery/internal/core/ports/driven"
)

// RunHistoryStoreTests runs the HistoryStore contract against stores built by newStore.
// newStore must return an empty store.
func RunHistoryStoreTests(t *testing.T, newStore func(t *testing.T) driven.HistoryStore) {
	t.Helper()

	t.Run("Scenario", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		require.NoError(t, store.Register(ctx, "5551234567"))
		require.NoError(t, store.Append(ctx, "5551234567", "What is the capital?", "Paris"))
		require.NoError(t, store.Append(ctx, "5551234567", "What is 2+2?", "4"))

		history, err := store.History(ctx, "5551234567")
		require.NoError(t, err)
		assert.Equal(t, []domain.QAPair{
			{Question: "What is the capital?", Answer: "Paris"},
			{Question: "What is 2+2?", Answer: "4"},
		}, history)

		exists, err := store.Exists(ctx, "5551234567")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = store.Exists(ctx, "5550000000")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		want := make([]domain.QAPair, 0, 25)
		for i := 0; i < 25; i++ {
			pair := domain.QAPair{
				Question: fmt.Sprintf("question %d?", i),
				Answer:   fmt.Sprintf("answer %d", i),
			}
			want = append(want, pair)
			require.NoError(t, store.Append(ctx, "5551112222", pair.Question, pair.Answer))
		}

		got, err := store.History(ctx, "5551112222")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("IdempotentRegister", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		require.NoError(t, store.Register(ctx, "5551234567"))
		require.NoError(t, store.Append(ctx, "5551234567", "q", "a"))
		require.NoError(t, store.Register(ctx, "5551234567"))

		exists, err := store.Exists(ctx, "5551234567")
		require.NoError(t, err)
		assert.True(t, exists)

		history, err := store.History(ctx, "5551234567")
		require.NoError(t, err)
		assert.Equal(t, []domain.QAPair{{Question: "q", Answer: "a"}}, history)
	})

	t.Run("RegisteredWithoutHistory", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		require.NoError(t, store.Register(ctx, "5551234567"))

		history, err := store.History(ctx, "5551234567")
		require.NoError(t, err)
		assert.Empty(t, history)

		rec, err := store.Record(ctx, "5551234567")
		require.NoError(t, err)
		assert.Equal(t, "5551234567", rec.PhoneNumber)
		assert.Empty(t, rec.QueryLog)
		assert.Empty(t, rec.ResponseLog)
	})

	t.Run("AppendCreatesRecord", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		exists, err := store.Exists(ctx, "5559876543")
		require.NoError(t, err)
		require.False(t, exists)

		require.NoError(t, store.Append(ctx, "5559876543", "Who wrote it?", "Tolstoy"))

		exists, err = store.Exists(ctx, "5559876543")
		require.NoError(t, err)
		assert.True(t, exists)

		history, err := store.History(ctx, "5559876543")
		require.NoError(t, err)
		assert.Equal(t, []domain.QAPair{{Question: "Who wrote it?", Answer: "Tolstoy"}}, history)
	})

	t.Run("EmptyHistoryForUnknownPhone", func(t *testing.T) {
		store := newStore(t)

		history, err := store.History(context.Background(), "5550000000")
		require.NoError(t, err)
		assert.NotNil(t, history)
		assert.Empty(t, history)
	})

	t.Run("RecordNotFound", func(t *testing.T) {
		store := newStore(t)

		_, err := store.Record(context.Background(), "5550000000")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("IsolationAcrossKeys", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		require.NoError(t, store.Append(ctx, "5550000001", "question for A", "answer for A"))
		require.NoError(t, store.Append(ctx, "5550000002", "question for B", "answer for B"))

		historyB, err := store.History(ctx, "5550000002")
		require.NoError(t, err)
		assert.Equal(t, []domain.QAPair{{Question: "question for B", Answer: "answer for B"}}, historyB)
	})

	t.Run("RejectsInvalidPhoneNumbers", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		for _, phone := range []string{"", "555123456", "555123456x", "55512345678"} {
			assert.ErrorIs(t, store.Register(ctx, phone), domain.ErrValidation, phone)
			assert.ErrorIs(t, store.Append(ctx, phone, "q", "a"), domain.ErrValidation, phone)

			_, err := store.Exists(ctx, phone)
			assert.ErrorIs(t, err, domain.ErrValidation, phone)

			_, err = store.History(ctx, phone)
			assert.ErrorIs(t, err, domain.ErrValidation, phone)
		}
	})

	t.Run("RejectsEntriesThatBreakPairing", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		assert.ErrorIs(t, store.Append(ctx, "5551234567", "two\nlines", "a"), domain.ErrInvalidInput)
		assert.ErrorIs(t, store.Append(ctx, "5551234567", "q", "  "), domain.ErrInvalidInput)
		assert.ErrorIs(t, store.Append(ctx, "5551234567", "", "a"), domain.ErrInvalidInput)

		exists, err := store.Exists(ctx, "5551234567")
		require.NoError(t, err)
		assert.False(t, exists, "rejected appends must not create a record")
	})

	t.Run("ConcurrentAppendsSamePhone", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		const workers = 8
		var wg sync.WaitGroup
		errs := make(chan error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				errs <- store.Append(ctx, "5551234567", fmt.Sprintf("q%d", i), fmt.Sprintf("a%d", i))
			}(i)
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		history, err := store.History(ctx, "5551234567")
		require.NoError(t, err)
		require.Len(t, history, workers)
		for _, pair := range history {
			// Every question stays paired with its own answer.
			assert.Equal(t, "a"+pair.Question[1:], pair.Answer)
		}
	})
}
