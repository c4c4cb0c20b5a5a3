package assistant

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("set then get", func(t *testing.T) {
		cache := NewMemoryCache()
		require.NoError(t, cache.Set(ctx, "k", "v", time.Minute))

		value, ok, err := cache.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "v", value)
	})

	t.Run("miss on unknown key", func(t *testing.T) {
		cache := NewMemoryCache()

		_, ok, err := cache.Get(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("entries expire after the ttl", func(t *testing.T) {
		cache := NewMemoryCache()
		now := time.Now()
		cache.now = func() time.Time { return now }

		require.NoError(t, cache.Set(ctx, "k", "v", time.Minute))

		now = now.Add(2 * time.Minute)
		_, ok, err := cache.Get(ctx, "k")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set overwrites", func(t *testing.T) {
		cache := NewMemoryCache()
		require.NoError(t, cache.Set(ctx, "k", "old", time.Minute))
		require.NoError(t, cache.Set(ctx, "k", "new", time.Minute))

		value, ok, err := cache.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "new", value)
	})
}
