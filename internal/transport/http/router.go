// Package httptransport assembles the public HTTP surface: module handlers,
// the middleware chain, and operational endpoints.
package httptransport

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bizform/internal/ratelimit"
	"bizform/pkg/platform/httputil"
	"bizform/pkg/platform/middleware/metadata"
	"bizform/pkg/platform/middleware/requestid"
	"bizform/pkg/platform/middleware/requesttime"
)

// Registrar mounts a module's routes on the router.
type Registrar interface {
	Register(r chi.Router)
}

// HealthChecker reports the health of one backing dependency.
type HealthChecker func(ctx context.Context) error

// RouterConfig carries everything the router mounts.
type RouterConfig struct {
	// Handlers mounted on the plain middleware chain.
	Handlers []Registrar

	// Limited handlers additionally pass the per-IP rate limiter.
	Limited []Registrar

	// RateLimit guards the Limited group. Required when Limited is non-empty.
	RateLimit *ratelimit.Middleware

	// Health checks by dependency name. Failures turn /healthz into a 503.
	Health map[string]HealthChecker
}

// NewRouter wires all public endpoints behind the shared middleware chain.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)

	r.Get("/healthz", healthHandler(cfg.Health))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	for _, h := range cfg.Handlers {
		h.Register(r)
	}

	if len(cfg.Limited) > 0 {
		r.Group(func(gr chi.Router) {
			gr.Use(cfg.RateLimit.Limit)
			for _, h := range cfg.Limited {
				h.Register(gr)
			}
		})
	}

	return r
}

func healthHandler(checks map[string]HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := http.StatusOK
		deps := make(map[string]string, len(checks))
		for name, check := range checks {
			if err := check(r.Context()); err != nil {
				deps[name] = "unhealthy"
				status = http.StatusServiceUnavailable
				continue
			}
			deps[name] = "ok"
		}

		body := map[string]any{"status": "ok"}
		if status != http.StatusOK {
			body["status"] = "degraded"
		}
		if len(deps) > 0 {
			body["dependencies"] = deps
		}
		httputil.WriteJSON(w, status, body)
	}
}
