package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"bfhl-hq/bfhl/pkg/api"
	"bfhl-hq/bfhl/pkg/telemetry/metrics"
)

// RecoveryMiddleware recovers from panics in downstream handlers, logs the
// stack, counts the panic and answers 500 with the generic error body.
// http.ErrAbortHandler is re-raised so the server can abort the connection.
func RecoveryMiddleware(collector *metrics.Collector) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				err := recover()
				if err == nil {
					return
				}
				if err == http.ErrAbortHandler {
					panic(err)
				}

				slog.ErrorContext(r.Context(), "panic in handler",
					"error", err,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)
				collector.RecordPanic()

				api.WriteStatus(w, http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
