package wizard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("create and use a run", func(t *testing.T) {
		store := NewMemoryStore(time.Minute)
		defer store.Close()

		runID, err := store.Create(ctx, NewRun(EligibilityConfig()))
		require.NoError(t, err)
		require.NotEmpty(t, runID)

		err = store.With(ctx, runID, func(run *Run) error {
			return run.SubmitAnswer(0, "services")
		})
		require.NoError(t, err)

		err = store.With(ctx, runID, func(run *Run) error {
			assert.Equal(t, 1, run.Step())
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("unknown run id", func(t *testing.T) {
		store := NewMemoryStore(time.Minute)
		defer store.Close()

		err := store.With(ctx, "no-such-run", func(*Run) error { return nil })
		assert.ErrorIs(t, err, ErrRunNotFound)
	})

	t.Run("runs expire after the ttl", func(t *testing.T) {
		store := NewMemoryStore(time.Minute)
		defer store.Close()

		now := time.Now()
		store.now = func() time.Time { return now }

		runID, err := store.Create(ctx, NewRun(ScoredConfig()))
		require.NoError(t, err)

		now = now.Add(2 * time.Minute)
		err = store.With(ctx, runID, func(*Run) error { return nil })
		assert.ErrorIs(t, err, ErrRunNotFound)
		assert.Zero(t, store.Len())
	})

	t.Run("use slides the expiry forward", func(t *testing.T) {
		store := NewMemoryStore(time.Minute)
		defer store.Close()

		now := time.Now()
		store.now = func() time.Time { return now }

		runID, err := store.Create(ctx, NewRun(ScoredConfig()))
		require.NoError(t, err)

		now = now.Add(45 * time.Second)
		require.NoError(t, store.With(ctx, runID, func(*Run) error { return nil }))

		now = now.Add(45 * time.Second)
		assert.NoError(t, store.With(ctx, runID, func(*Run) error { return nil }))
	})

	t.Run("sweep drops expired runs", func(t *testing.T) {
		store := NewMemoryStore(time.Minute)
		defer store.Close()

		now := time.Now()
		store.now = func() time.Time { return now }

		_, err := store.Create(ctx, NewRun(ScoredConfig()))
		require.NoError(t, err)
		_, err = store.Create(ctx, NewRun(EligibilityConfig()))
		require.NoError(t, err)
		require.Equal(t, 2, store.Len())

		now = now.Add(2 * time.Minute)
		store.sweep()
		assert.Zero(t, store.Len())
	})

	t.Run("delete removes a run", func(t *testing.T) {
		store := NewMemoryStore(time.Minute)
		defer store.Close()

		runID, err := store.Create(ctx, NewRun(ScoredConfig()))
		require.NoError(t, err)
		require.NoError(t, store.Delete(ctx, runID))

		err = store.With(ctx, runID, func(*Run) error { return nil })
		assert.ErrorIs(t, err, ErrRunNotFound)
	})
}
