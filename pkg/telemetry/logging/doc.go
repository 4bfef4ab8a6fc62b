// Package logging builds the service's log/slog logger.
//
// Loggers write JSON or text to a configurable writer. Records emitted with a
// context (InfoContext, ErrorContext, ...) automatically carry the request_id,
// trace_id and span_id stored in that context by the HTTP middleware:
//
//	logger, err := logging.New(logging.Config{Level: "info", Format: "json"})
//	ctx := logging.WithRequestID(ctx, "req-123")
//	logger.InfoContext(ctx, "request completed", "status", 200)
package logging
