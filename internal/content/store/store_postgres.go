package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"bizform/internal/content"
	contentsqlc "bizform/internal/content/store/sqlc"
)

// PostgresStore reads knowledge-base items from PostgreSQL.
type PostgresStore struct {
	db      *sql.DB
	queries *contentsqlc.Queries
}

// NewPostgres constructs a PostgreSQL-backed content store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{
		db:      db,
		queries: contentsqlc.New(db),
	}
}

func (s *PostgresStore) ListByKind(ctx context.Context, kind content.Kind) ([]content.Item, error) {
	rows, err := s.queries.ListContentByKind(ctx, kind.String())
	if err != nil {
		return nil, fmt.Errorf("list content by kind: %w", err)
	}
	items := make([]content.Item, 0, len(rows))
	for _, row := range rows {
		item, err := toItem(row)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *PostgresStore) GetBySlug(ctx context.Context, kind content.Kind, slug string) (*content.Item, error) {
	row, err := s.queries.GetContentBySlug(ctx, contentsqlc.GetContentBySlugParams{
		Kind: kind.String(),
		Slug: slug,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get content by slug: %w", err)
	}
	item, err := toItem(row)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Upsert inserts or updates an item. Used by seeding and tests; the read path
// never writes.
func (s *PostgresStore) Upsert(ctx context.Context, item content.Item) error {
	tags, err := json.Marshal(item.Tags)
	if err != nil {
		return fmt.Errorf("marshal content tags: %w", err)
	}
	err = s.queries.UpsertContentItem(ctx, contentsqlc.UpsertContentItemParams{
		ID:          item.ID,
		Kind:        item.Kind.String(),
		Slug:        item.Slug,
		Title:       item.Title,
		Summary:     item.Summary,
		Body:        item.Body,
		Tags:        tags,
		PublishedAt: item.PublishedAt,
	})
	if err != nil {
		return fmt.Errorf("upsert content item: %w", err)
	}
	return nil
}

func toItem(row contentsqlc.ContentItem) (content.Item, error) {
	var tags []string
	if len(row.Tags) > 0 {
		if err := json.Unmarshal(row.Tags, &tags); err != nil {
			return content.Item{}, fmt.Errorf("unmarshal content tags: %w", err)
		}
	}
	return content.Item{
		ID:          row.ID,
		Kind:        content.Kind(row.Kind),
		Slug:        row.Slug,
		Title:       row.Title,
		Summary:     row.Summary,
		Body:        row.Body,
		Tags:        tags,
		PublishedAt: row.PublishedAt,
	}, nil
}
