package content

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"bizform/internal/content/metrics"
	dErrors "bizform/pkg/domain-errors"
	"bizform/pkg/requestcontext"
)

// Reader is the store surface the service consumes.
type Reader interface {
	ListByKind(ctx context.Context, kind Kind) ([]Item, error)
	GetBySlug(ctx context.Context, kind Kind, slug string) (*Item, error)
}

// Service answers knowledge-base reads. When a primary store is configured
// its backend failures fall back to the seeded store; a not-found from the
// primary is authoritative and never falls back.
type Service struct {
	primary  Reader // nil when Postgres is not configured
	fallback Reader
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// NewService constructs a content service. primary may be nil.
func NewService(primary, fallback Reader, logger *slog.Logger, metrics *metrics.Metrics) *Service {
	return &Service{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
		metrics:  metrics,
	}
}

// List returns every item of a kind, newest first.
func (s *Service) List(ctx context.Context, kind Kind) ([]Item, error) {
	if s.primary != nil {
		items, err := s.primary.ListByKind(ctx, kind)
		if err == nil {
			s.metrics.IncrementRead("list", "primary")
			return items, nil
		}
		s.degrade(ctx, "list", err)
	}

	items, err := s.fallback.ListByKind(ctx, kind)
	if err != nil {
		return nil, err
	}
	s.metrics.IncrementRead("list", "fallback")
	return items, nil
}

// Get returns one item by kind and slug.
func (s *Service) Get(ctx context.Context, kind Kind, slug string) (*Item, error) {
	if s.primary != nil {
		item, err := s.primary.GetBySlug(ctx, kind, slug)
		if err == nil {
			s.metrics.IncrementRead("get", "primary")
			return item, nil
		}
		if dErrors.CodeOf(err) == dErrors.CodeNotFound {
			return nil, err
		}
		s.degrade(ctx, "get", err)
	}

	item, err := s.fallback.GetBySlug(ctx, kind, slug)
	if err != nil {
		return nil, err
	}
	s.metrics.IncrementRead("get", "fallback")
	return item, nil
}

// GetOverview assembles the landing-page digest, fetching every kind
// concurrently and keeping the newest few items of each.
func (s *Service) GetOverview(ctx context.Context) (*Overview, error) {
	overview := &Overview{Sections: make(map[Kind][]Item, len(Kinds()))}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, kind := range Kinds() {
		kind := kind
		g.Go(func() error {
			items, err := s.List(gctx, kind)
			if err != nil {
				return err
			}
			if len(items) > overviewPerKind {
				items = items[:overviewPerKind]
			}
			mu.Lock()
			overview.Sections[kind] = items
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.metrics.IncrementRead("overview", "combined")
	return overview, nil
}

func (s *Service) degrade(ctx context.Context, operation string, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	s.metrics.IncrementFallback(operation)
	s.logger.ErrorContext(ctx, "content primary store failed, using fallback",
		"request_id", requestcontext.RequestID(ctx),
		"operation", operation,
		"error", err,
	)
}
