// Package middleware provides the HTTP middleware stack of the bfhl server.
//
// Each constructor returns a Middleware; Chain composes them with the first
// argument outermost. The server applies them in this order:
//
//	RecoveryMiddleware   panics become 500 "Internal server error"
//	RequestIDMiddleware  X-Request-ID propagation or generation
//	TracingMiddleware    server span plus trace IDs in the log context
//	LoggingMiddleware    access log and request metrics
//	CORSMiddleware       CORS headers and preflight handling
//	RateLimitMiddleware  global token bucket, 429 on overflow
//	TimeoutMiddleware    per-request deadline, 504 on expiry
//
// Constructors that are disabled by configuration return nil, which Chain
// skips.
package middleware
