// Package requestid assigns a unique ID to every request so log lines across
// handlers and services can be correlated.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"bizform/pkg/requestcontext"
)

// Header carries the request ID back to the client and accepts one from
// trusted upstream proxies.
const Header = "X-Request-ID"

// Middleware ensures every request has an ID: reuse the inbound header when
// present, otherwise mint a new UUID.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(Header)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		w.Header().Set(Header, reqID)
		ctx := requestcontext.WithRequestID(r.Context(), reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
