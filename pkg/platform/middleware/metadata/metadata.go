// Package metadata extracts client-facing request metadata (IP, User-Agent,
// device class) and stores it on the request context.
package metadata

import (
	"net/http"
	"strings"

	"github.com/mssola/useragent"

	"bizform/pkg/requestcontext"
)

// ClientMetadata extracts the client IP address and User-Agent from the
// request and adds them to the context for handlers, services, and the rate
// limiter. Apply it early in the chain.
func ClientMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := ClientIPFromRequest(r)
		rawUA := r.Header.Get("User-Agent")

		ctx := requestcontext.WithClientMetadata(r.Context(), ip, rawUA)
		ctx = requestcontext.WithDeviceClass(ctx, classifyDevice(rawUA))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// classifyDevice buckets the User-Agent into a coarse class used as a log
// dimension. Parsing failures fall back to "unknown".
func classifyDevice(rawUA string) string {
	if rawUA == "" {
		return "unknown"
	}
	ua := useragent.New(rawUA)
	switch {
	case ua.Bot():
		return "bot"
	case ua.Mobile(), mobilePlatform(ua):
		return "mobile"
	default:
		return "desktop"
	}
}

// mobilePlatform catches UAs that name a mobile platform without the browser
// token the parser's Mobile() check relies on, e.g. in-app webviews that send
// "Mozilla/5.0 (iPhone; ...) AppleWebKit/605.1.15" and nothing after it.
func mobilePlatform(ua *useragent.UserAgent) bool {
	platform := strings.ToLower(ua.Platform() + " " + ua.OS())
	for _, marker := range []string{"iphone", "ipad", "android"} {
		if strings.Contains(platform, marker) {
			return true
		}
	}
	return false
}

// ClientIPFromRequest extracts the real client IP from the request, handling proxies and load balancers.
func ClientIPFromRequest(r *http.Request) string {
	// X-Forwarded-For can contain multiple IPs (client, proxy1, proxy2, ...);
	// the first one is the original client.
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	// X-Real-IP is set by nginx and similar proxies.
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// RemoteAddr is "ip:port" ("[::1]:port" for IPv6); strip the port.
	if addr := r.RemoteAddr; addr != "" {
		if idx := strings.LastIndex(addr, ":"); idx != -1 {
			return addr[:idx]
		}
		return addr
	}

	return "unknown"
}
