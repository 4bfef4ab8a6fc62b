package middleware

import (
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"bfhl-hq/bfhl/pkg/telemetry/logging"
	"bfhl-hq/bfhl/pkg/telemetry/tracing"
)

// TraceIDHeader carries the trace ID of the server span back to the client.
const TraceIDHeader = "X-Trace-ID"

// TracingMiddleware starts a server span per request, continuing any W3C
// trace context sent by the client. Trace and span IDs are copied into the
// logging context so log lines can be correlated with traces, and the span
// context is written back as response headers (X-Trace-ID and traceparent).
// A nil tracer disables the middleware.
func TracingMiddleware(tracer *tracing.Tracer) Middleware {
	if tracer == nil {
		return nil
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := tracing.Extract(r.Context(), r.Header)

			ctx, span := tracer.Start(ctx, fmt.Sprintf("%s %s", r.Method, r.URL.Path),
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.target", r.URL.Path),
					attribute.String("user_agent.original", r.UserAgent()),
					tracing.AttrRequestID.String(GetRequestID(r.Context())),
				),
			)
			defer span.End()

			if traceID := tracing.TraceID(ctx); traceID != "" {
				ctx = logging.WithTraceID(ctx, traceID)
				ctx = logging.WithSpanID(ctx, tracing.SpanID(ctx))
				w.Header().Set(TraceIDHeader, traceID)
				tracing.Inject(ctx, w.Header())
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			span.SetAttributes(attribute.Int("http.status_code", rw.statusCode))
			if rw.statusCode >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(rw.statusCode))
			}
		})
	}
}
