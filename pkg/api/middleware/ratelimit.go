package middleware

import (
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"

	"bfhl-hq/bfhl/pkg/api"
	"bfhl-hq/bfhl/pkg/config"
	"bfhl-hq/bfhl/pkg/telemetry/metrics"
)

// RateLimitMiddleware applies a global token bucket. Requests over the limit
// receive 429 with Retry-After: 1. A disabled configuration returns nil,
// which Chain skips.
func RateLimitMiddleware(cfg config.RateLimitConfig, collector *metrics.Collector) Middleware {
	if !cfg.Enabled {
		return nil
	}

	limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				slog.WarnContext(r.Context(), "rate limit exceeded",
					"method", r.Method,
					"path", r.URL.Path,
				)
				collector.RecordRateLimited()

				w.Header().Set("Retry-After", "1")
				api.WriteStatus(w, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
