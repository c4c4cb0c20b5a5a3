package httptransport

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizform/internal/ratelimit"
	"bizform/internal/taxes"
	taxeshandler "bizform/internal/taxes/handler"
	"bizform/pkg/testutil"
)

func newRouter(t *testing.T, cfg RouterConfig) http.Handler {
	t.Helper()
	if cfg.RateLimit == nil {
		store := ratelimit.NewMemoryStore()
		t.Cleanup(store.Close)
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		cfg.RateLimit = ratelimit.New(store, 100, time.Minute, logger, nil)
	}
	return NewRouter(cfg)
}

func TestHealthz(t *testing.T) {
	t.Run("healthy with no checks", func(t *testing.T) {
		router := newRouter(t, RouterConfig{})

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/healthz", nil))
		testutil.AssertStatus(t, rr, http.StatusOK)
		assert.Contains(t, rr.Body.String(), `"status":"ok"`)
	})

	t.Run("failing dependency degrades health", func(t *testing.T) {
		router := newRouter(t, RouterConfig{
			Health: map[string]HealthChecker{
				"redis": func(context.Context) error { return errors.New("down") },
				"db":    func(context.Context) error { return nil },
			},
		})

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/healthz", nil))
		testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
		assert.Contains(t, rr.Body.String(), `"redis":"unhealthy"`)
		assert.Contains(t, rr.Body.String(), `"db":"ok"`)
	})
}

func TestRouterMounts(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	taxesSvc := taxes.NewService(logger, nil)

	router := newRouter(t, RouterConfig{
		Handlers: []Registrar{taxeshandler.New(taxesSvc, logger)},
	})

	t.Run("module routes answer through the chain", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/calculate/npd", map[string]any{
			"monthlyIncome": 100000,
		})
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatus(t, rr, http.StatusOK)
		// The request id middleware tags every response.
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})

	t.Run("metrics endpoint is exposed", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/metrics", nil))
		testutil.AssertStatus(t, rr, http.StatusOK)
	})
}

func TestRouterRateLimitedGroup(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := ratelimit.NewMemoryStore()
	t.Cleanup(store.Close)
	limiter := ratelimit.New(store, 1, time.Minute, logger, nil)

	taxesSvc := taxes.NewService(logger, nil)
	router := NewRouter(RouterConfig{
		Limited:   []Registrar{taxeshandler.New(taxesSvc, logger)},
		RateLimit: limiter,
	})

	body := map[string]any{"monthlyIncome": 100000}

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/calculate/npd", body))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/calculate/npd", body))
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
}
