package wizard

import (
	"context"

	dErrors "bizform/pkg/domain-errors"
)

// ErrRunNotFound is returned for unknown or expired run IDs.
var ErrRunNotFound = dErrors.New(dErrors.CodeNotFound, "wizard run not found")

// Store keeps live runs keyed by run ID. With executes fn while holding the
// run exclusively, so callers mutate and snapshot the run inside fn without
// racing other requests for the same ID.
type Store interface {
	Create(ctx context.Context, run *Run) (string, error)
	With(ctx context.Context, runID string, fn func(*Run) error) error
	Delete(ctx context.Context, runID string) error
}
