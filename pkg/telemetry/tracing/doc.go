// Package tracing provides OpenTelemetry distributed tracing.
//
// When enabled, spans are exported over OTLP gRPC with a parent-based
// sampler ("always", "never" or "ratio"). Incoming W3C trace context is
// honoured through Extract. When disabled, New returns a tracer whose spans
// are no-ops, so callers never need to check.
package tracing
