package middlewares

import (
	"context"
	"net"
	"net/http"
	"strings"
)

const clientIPKey contextKey = "clientIP"

// Forwarding headers consulted for the originating client, most specific
// first. Only the first hop of X-Forwarded-For is trusted; later entries are
// appended by proxies the client does not control.
var clientIPHeaders = []string{"True-Client-IP", "X-Real-IP", "X-Forwarded-For"}

// ClientIPMiddleware resolves the originating client IP once per request and
// stores it on the request context. Everything downstream that needs the
// client identity (log attributes, login throttling) reads the resolved value
// through ClientIP instead of re-parsing proxy headers.
func ClientIPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), clientIPKey, resolveClientIP(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClientIP returns the IP resolved by ClientIPMiddleware. When the middleware
// is not installed it falls back to the connection address.
func ClientIP(r *http.Request) string {
	if ip, ok := r.Context().Value(clientIPKey).(string); ok && ip != "" {
		return ip
	}

	return connectionIP(r.RemoteAddr)
}

func resolveClientIP(r *http.Request) string {
	for _, header := range clientIPHeaders {
		value := r.Header.Get(header)
		if value == "" {
			continue
		}

		if comma := strings.IndexByte(value, ','); comma >= 0 {
			value = value[:comma]
		}

		if parsed := net.ParseIP(strings.TrimSpace(value)); parsed != nil {
			return parsed.String()
		}
	}

	return connectionIP(r.RemoteAddr)
}

func connectionIP(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}

	if parsed := net.ParseIP(host); parsed != nil {
		return parsed.String()
	}

	return host
}
