package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreAllow(t *testing.T) {
	ctx := context.Background()

	t.Run("allows up to the limit", func(t *testing.T) {
		store := NewMemoryStore()
		defer store.Close()

		for i := 0; i < 3; i++ {
			result, err := store.Allow(ctx, "1.2.3.4", 3, time.Minute)
			require.NoError(t, err)
			assert.True(t, result.Allowed)
			assert.Equal(t, 3-(i+1), result.Remaining)
		}

		result, err := store.Allow(ctx, "1.2.3.4", 3, time.Minute)
		require.NoError(t, err)
		assert.False(t, result.Allowed)
		assert.Zero(t, result.Remaining)
	})

	t.Run("keys are independent", func(t *testing.T) {
		store := NewMemoryStore()
		defer store.Close()

		for i := 0; i < 2; i++ {
			_, err := store.Allow(ctx, "1.1.1.1", 2, time.Minute)
			require.NoError(t, err)
		}

		result, err := store.Allow(ctx, "2.2.2.2", 2, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
	})

	t.Run("window slides", func(t *testing.T) {
		store := NewMemoryStore()
		defer store.Close()

		now := time.Now()
		store.now = func() time.Time { return now }

		for i := 0; i < 2; i++ {
			_, err := store.Allow(ctx, "ip", 2, time.Minute)
			require.NoError(t, err)
		}

		result, err := store.Allow(ctx, "ip", 2, time.Minute)
		require.NoError(t, err)
		require.False(t, result.Allowed)

		now = now.Add(61 * time.Second)
		result, err = store.Allow(ctx, "ip", 2, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
	})

	t.Run("reset clears the counter", func(t *testing.T) {
		store := NewMemoryStore()
		defer store.Close()

		for i := 0; i < 2; i++ {
			_, err := store.Allow(ctx, "ip", 2, time.Minute)
			require.NoError(t, err)
		}
		require.NoError(t, store.Reset(ctx, "ip"))

		result, err := store.Allow(ctx, "ip", 2, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
	})

	t.Run("sweep drops drained buckets", func(t *testing.T) {
		store := NewMemoryStore()
		defer store.Close()

		now := time.Now()
		store.now = func() time.Time { return now }

		_, err := store.Allow(ctx, "ip", 5, time.Minute)
		require.NoError(t, err)

		now = now.Add(2 * time.Minute)
		store.sweep()

		store.mu.Lock()
		defer store.mu.Unlock()
		assert.Empty(t, store.buckets)
	})
}
