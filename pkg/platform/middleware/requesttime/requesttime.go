// Package requesttime pins a single "now" per request. Logging, run
// timestamps, and TTL arithmetic all read the same instant regardless of how
// long the handler takes.
package requesttime

import (
	"net/http"
	"time"

	"bizform/pkg/requestcontext"
)

// Middleware stamps the request context with the arrival time.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
