// Package httpserver builds the HTTP server with project-wide timeouts.
package httpserver

import (
	"net/http"
	"time"
)

// New wraps handler in an http.Server. The write timeout leaves headroom for
// assistant requests that wait on the upstream model.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
