// Package middleware holds HTTP middleware that carries its own
// configuration, currently the CORS policy for the browser client.
package middleware

import (
	"net/http"
	"strconv"
)

// CORSConfig holds the CORS policy. The hub serves a single known
// browser client, so one allowed origin suffices.
type CORSConfig struct {
	// AllowedOrigin is the origin of the browser client,
	// e.g. "http://localhost:3000".
	AllowedOrigin string

	// MaxAge specifies how long preflight results may be cached, in seconds.
	MaxAge int
}

// DefaultCORSConfig returns the policy used when none is configured.
func DefaultCORSConfig(origin string) CORSConfig {
	return CORSConfig{AllowedOrigin: origin, MaxAge: 86400}
}

// CORS returns middleware enforcing the configured single-origin policy.
// Same-origin requests (no Origin header) pass through untouched;
// disallowed origins get no CORS headers, so the browser blocks the
// response; preflight OPTIONS requests are answered with 204.
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if origin != config.AllowedOrigin {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
