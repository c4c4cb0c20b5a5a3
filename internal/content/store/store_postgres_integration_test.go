//go:build integration

package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizform/internal/content"
	"bizform/pkg/testutil/containers"
)

func newPostgresStore(t *testing.T) *PostgresStore {
	t.Helper()
	pc := containers.NewPostgresContainer(t)

	schema, err := os.ReadFile("schema.sql")
	require.NoError(t, err)
	_, err = pc.DB.ExecContext(context.Background(), string(schema))
	require.NoError(t, err)

	return NewPostgres(pc.DB)
}

func TestPostgresStore(t *testing.T) {
	ctx := context.Background()
	store := newPostgresStore(t)

	item := content.Item{
		ID:          uuid.New(),
		Kind:        content.KindArticle,
		Slug:        "usn-vs-npd",
		Title:       "USN versus NPD",
		Summary:     "Comparing the two light regimes.",
		Body:        "Full comparison text.",
		Tags:        []string{"usn", "npd"},
		PublishedAt: time.Date(2025, time.October, 1, 12, 0, 0, 0, time.UTC),
	}

	t.Run("upsert then get", func(t *testing.T) {
		require.NoError(t, store.Upsert(ctx, item))

		got, err := store.GetBySlug(ctx, content.KindArticle, "usn-vs-npd")
		require.NoError(t, err)
		assert.Equal(t, item.ID, got.ID)
		assert.Equal(t, item.Title, got.Title)
		assert.Equal(t, item.Tags, got.Tags)
		assert.True(t, got.PublishedAt.Equal(item.PublishedAt))
	})

	t.Run("upsert updates in place", func(t *testing.T) {
		updated := item
		updated.Title = "USN versus NPD, revised"
		require.NoError(t, store.Upsert(ctx, updated))

		got, err := store.GetBySlug(ctx, content.KindArticle, "usn-vs-npd")
		require.NoError(t, err)
		assert.Equal(t, "USN versus NPD, revised", got.Title)
	})

	t.Run("list is newest first", func(t *testing.T) {
		older := content.Item{
			ID:          uuid.New(),
			Kind:        content.KindArticle,
			Slug:        "older-piece",
			Title:       "Older piece",
			Summary:     "s",
			Body:        "b",
			PublishedAt: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		}
		require.NoError(t, store.Upsert(ctx, older))

		items, err := store.ListByKind(ctx, content.KindArticle)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "usn-vs-npd", items[0].Slug)
		assert.Equal(t, "older-piece", items[1].Slug)
	})

	t.Run("missing slug is not found", func(t *testing.T) {
		_, err := store.GetBySlug(ctx, content.KindArticle, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("kind scopes the listing", func(t *testing.T) {
		items, err := store.ListByKind(ctx, content.KindFAQ)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}
