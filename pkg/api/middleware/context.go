package middleware

import (
	"context"
	"time"

	"bfhl-hq/bfhl/pkg/telemetry/logging"
)

type contextKey string

// StartTimeKey is the context key for the request start time.
const StartTimeKey contextKey = "start_time"

// GetRequestID returns the request ID stored by RequestIDMiddleware.
func GetRequestID(ctx context.Context) string {
	return logging.GetRequestID(ctx)
}

// GetStartTime returns the time LoggingMiddleware received the request, or
// the zero time.
func GetStartTime(ctx context.Context) time.Time {
	if startTime, ok := ctx.Value(StartTimeKey).(time.Time); ok {
		return startTime
	}
	return time.Time{}
}
