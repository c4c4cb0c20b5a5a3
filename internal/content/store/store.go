// Package store provides the content item stores.
package store

import (
	"context"

	"bizform/internal/content"
	dErrors "bizform/pkg/domain-errors"
)

// ErrNotFound is returned when no item matches a kind and slug.
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "content item not found")

// Store reads knowledge-base items. ListByKind returns items newest first.
type Store interface {
	ListByKind(ctx context.Context, kind content.Kind) ([]content.Item, error)
	GetBySlug(ctx context.Context, kind content.Kind, slug string) (*content.Item, error)
}
