package assistant

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"bizform/internal/assistant/metrics"
	"bizform/pkg/requestcontext"
)

// fallbackReply is served whenever the provider fails. The endpoint never
// surfaces provider errors to the client.
const fallbackReply = "The assistant is temporarily unavailable. Meanwhile: " +
	"NPD suits solo work up to 2.4 million rubles a year with a 4-6% tax, " +
	"IP fits a growing business with employees, and an OOO is the choice for " +
	"partners and limited liability. Try the questionnaire on this site for a " +
	"personalized recommendation."

// Reply is the outcome of one chat request.
type Reply struct {
	Text string
	// Cached reports that the text came from the reply cache.
	Cached bool
	// Fallback reports that the provider failed and the canned text was used.
	Fallback bool
}

// Service answers chat questions through the configured provider. Replies to
// history-less questions are cached by message digest, and concurrent
// identical questions share a single provider call.
type Service struct {
	provider Provider
	cache    Cache
	cacheTTL time.Duration
	group    singleflight.Group
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// NewService constructs an assistant service with its dependencies.
func NewService(provider Provider, cache Cache, cacheTTL time.Duration, logger *slog.Logger, metrics *metrics.Metrics) *Service {
	return &Service{
		provider: provider,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
		metrics:  metrics,
	}
}

// Chat answers a user message. Provider failures degrade to the canned
// fallback; the returned error is non-nil only for caller mistakes, never for
// provider trouble.
func (s *Service) Chat(ctx context.Context, message string, history []Message, tier Tier) (*Reply, error) {
	requestID := requestcontext.RequestID(ctx)

	// Only history-less questions are cacheable: with history the reply
	// depends on the whole conversation.
	cacheable := len(history) == 0
	key := cacheKey(message, tier)

	if cacheable {
		if text, ok, err := s.cache.Get(ctx, key); err != nil {
			s.logger.ErrorContext(ctx, "assistant cache read failed",
				"request_id", requestID,
				"error", err,
			)
		} else if ok {
			s.metrics.IncrementChat("cache")
			return &Reply{Text: text, Cached: true}, nil
		}
	}

	text, shared, err := s.complete(ctx, key, message, history, tier, cacheable)
	if err != nil {
		s.logger.ErrorContext(ctx, "assistant provider failed",
			"request_id", requestID,
			"tier", tier,
			"error", err,
		)
		s.metrics.IncrementChat("fallback")
		return &Reply{Text: fallbackReply, Fallback: true}, nil
	}

	if shared {
		s.metrics.IncrementChat("coalesced")
	} else {
		s.metrics.IncrementChat("provider")
	}
	return &Reply{Text: text}, nil
}

func (s *Service) complete(ctx context.Context, key, message string, history []Message, tier Tier, cacheable bool) (string, bool, error) {
	req := CompletionRequest{
		System:  systemPrompt(tier),
		History: history,
		Message: message,
	}

	// Conversations with history are unique; only coalesce cacheable calls.
	if !cacheable {
		text, err := s.callProvider(ctx, req)
		return text, false, err
	}

	result, err, shared := s.group.Do(key, func() (any, error) {
		text, err := s.callProvider(ctx, req)
		if err != nil {
			return nil, err
		}
		if cacheErr := s.cache.Set(ctx, key, text, s.cacheTTL); cacheErr != nil {
			s.logger.ErrorContext(ctx, "assistant cache write failed",
				"request_id", requestcontext.RequestID(ctx),
				"error", cacheErr,
			)
		}
		return text, nil
	})
	if err != nil {
		return "", shared, err
	}
	return result.(string), shared, nil
}

func (s *Service) callProvider(ctx context.Context, req CompletionRequest) (string, error) {
	start := time.Now()
	text, err := s.provider.Complete(ctx, req)
	if err != nil {
		s.metrics.ObserveProviderLatency("error", time.Since(start))
		return "", err
	}
	s.metrics.ObserveProviderLatency("ok", time.Since(start))
	return text, nil
}

// cacheKey digests the message and tier so raw user text never becomes a
// storage key.
func cacheKey(message string, tier Tier) string {
	sum := sha256.Sum256([]byte(message + "|" + string(tier)))
	return hex.EncodeToString(sum[:])
}
