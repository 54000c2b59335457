// filepath: internal/api/middleware.go
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"contactgate/internal/logging"
	"contactgate/internal/services/auth"

	"github.com/oklog/ulid/v2"
	"github.com/patrickmn/go-cache"
)

// RequestIDMiddleware tags every request with a fresh ULID, exposed in the
// X-Request-ID response header and the request context for log correlation.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := ulid.Make().String()
		w.Header().Set("X-Request-ID", requestID)

		logging.Log.Debugf("Request %s: %s %s", requestID, r.Method, r.URL.Path)

		ctx := context.WithValue(r.Context(), "request_id", requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RateLimiter enforces a fixed-window per-credential request cap on the
// contacts routes. Window counters live in an expiring cache keyed by the
// credential fingerprint.
type RateLimiter struct {
	perMin  int
	windows *cache.Cache
}

// NewRateLimiter creates a limiter allowing perMin requests per credential
// per minute. perMin <= 0 disables limiting.
func NewRateLimiter(perMin int) *RateLimiter {
	return &RateLimiter{
		perMin:  perMin,
		windows: cache.New(time.Minute, 5*time.Minute),
	}
}

// Middleware is the http middleware enforcing the limit.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	if rl.perMin <= 0 {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := auth.Fingerprint(r.Header.Get("Authorization"))

		if err := rl.windows.Add(key, 1, cache.DefaultExpiration); err != nil {
			// Counter exists, bump it within the current window.
			n, incErr := rl.windows.IncrementInt(key, 1)
			if incErr == nil && n > rl.perMin {
				logging.Log.Warnf("RateLimiter: Credential %s over limit (%d/min)", key, rl.perMin)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{"error": "Rate limit exceeded"})
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
