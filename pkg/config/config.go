package config

import "time"

// Config is the root configuration structure for the bfhl service.
// It contains the server, API, identity, classifier, telemetry and reload
// sections.
type Config struct {
	// Server contains HTTP server configuration including listen address,
	// timeouts, CORS and rate limiting.
	Server ServerConfig `yaml:"server" toml:"server"`

	// API contains the classification endpoint settings.
	API APIConfig `yaml:"api" toml:"api"`

	// Identity contains the fixed identity fields returned in every
	// successful classification envelope.
	Identity IdentityConfig `yaml:"identity" toml:"identity"`

	// Classifier contains token classification settings.
	Classifier ClassifierConfig `yaml:"classifier" toml:"classifier"`

	// Telemetry contains configuration for observability including logging,
	// metrics, tracing and health checks.
	Telemetry TelemetryConfig `yaml:"telemetry" toml:"telemetry"`

	// Reload controls hot reloading of the configuration file.
	Reload ReloadConfig `yaml:"reload" toml:"reload"`
}

// ServerConfig contains configuration for the HTTP server.
type ServerConfig struct {
	// ListenAddress is the address and port for the server to listen on.
	// Format: "host:port" (e.g., "127.0.0.1:8080", "0.0.0.0:8080").
	// Default: "127.0.0.1:8080"
	ListenAddress string `yaml:"listen_address" toml:"listen_address"`

	// ReadTimeout is the maximum duration for reading the entire request,
	// including the body.
	// Default: 10s
	ReadTimeout time.Duration `yaml:"read_timeout" toml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the
	// response.
	// Default: 10s
	WriteTimeout time.Duration `yaml:"write_timeout" toml:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next request
	// when keep-alives are enabled.
	// Default: 120s
	IdleTimeout time.Duration `yaml:"idle_timeout" toml:"idle_timeout"`

	// ShutdownTimeout is the maximum duration to wait for in-flight requests
	// during graceful shutdown.
	// Default: 15s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" toml:"shutdown_timeout"`

	// RequestTimeout bounds the handling of a single request. Requests
	// exceeding it receive a 504 response.
	// Default: 5s
	RequestTimeout time.Duration `yaml:"request_timeout" toml:"request_timeout"`

	// MaxHeaderBytes controls the maximum number of bytes the server will
	// read parsing the request header.
	// Default: 1048576 (1MB)
	MaxHeaderBytes int `yaml:"max_header_bytes" toml:"max_header_bytes"`

	// CORS contains Cross-Origin Resource Sharing configuration.
	CORS CORSConfig `yaml:"cors" toml:"cors"`

	// RateLimit contains global request rate limiting configuration.
	RateLimit RateLimitConfig `yaml:"rate_limit" toml:"rate_limit"`

	// TLS contains HTTPS configuration.
	TLS TLSConfig `yaml:"tls" toml:"tls"`
}

// TLSConfig contains TLS configuration for the HTTP server.
type TLSConfig struct {
	// Enabled controls whether the server terminates TLS.
	// Default: false
	Enabled bool `yaml:"enabled" toml:"enabled"`

	// CertFile is the path to the PEM-encoded certificate chain.
	CertFile string `yaml:"cert_file" toml:"cert_file"`

	// KeyFile is the path to the PEM-encoded private key.
	KeyFile string `yaml:"key_file" toml:"key_file"`

	// MinVersion is the minimum TLS version to accept.
	// Options: "1.2", "1.3"
	// Default: "1.3"
	MinVersion string `yaml:"min_version" toml:"min_version"`

	// ReloadInterval is how often the certificate files are checked for
	// changes. Zero disables reloading.
	// Default: 5m
	ReloadInterval time.Duration `yaml:"reload_interval" toml:"reload_interval"`
}

// CORSConfig contains CORS (Cross-Origin Resource Sharing) configuration.
type CORSConfig struct {
	// Enabled controls whether CORS is enabled.
	// Default: true
	Enabled bool `yaml:"enabled" toml:"enabled"`

	// AllowedOrigins is a list of allowed origins for CORS requests.
	// Default: ["*"]
	AllowedOrigins []string `yaml:"allowed_origins" toml:"allowed_origins"`

	// AllowedMethods is a list of allowed HTTP methods for CORS requests.
	// Default: ["GET", "POST", "OPTIONS"]
	AllowedMethods []string `yaml:"allowed_methods" toml:"allowed_methods"`

	// AllowedHeaders is a list of allowed HTTP headers for CORS requests.
	// Default: ["Content-Type", "X-Request-ID"]
	AllowedHeaders []string `yaml:"allowed_headers" toml:"allowed_headers"`

	// ExposedHeaders is a list of headers that are exposed to the client.
	// Default: ["X-Request-ID"]
	ExposedHeaders []string `yaml:"exposed_headers" toml:"exposed_headers"`

	// MaxAge is the maximum age (in seconds) for the preflight cache.
	// Default: 3600
	MaxAge int `yaml:"max_age" toml:"max_age"`

	// AllowCredentials controls whether credentials are allowed in CORS
	// requests.
	// Default: false
	AllowCredentials bool `yaml:"allow_credentials" toml:"allow_credentials"`
}

// RateLimitConfig contains token bucket rate limiting configuration applied
// to all requests.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active.
	// Default: false
	Enabled bool `yaml:"enabled" toml:"enabled"`

	// RequestsPerSecond is the sustained request rate.
	// Default: 100
	RequestsPerSecond float64 `yaml:"requests_per_second" toml:"requests_per_second"`

	// Burst is the maximum number of requests allowed at once.
	// Default: 200
	Burst int `yaml:"burst" toml:"burst"`
}

// APIConfig contains configuration for the classification endpoint.
type APIConfig struct {
	// Paths lists the routes serving the classification endpoint. The first
	// entry is the canonical path.
	// Default: ["/bfhl", "/api/bfhl"]
	Paths []string `yaml:"paths" toml:"paths"`

	// OperationCode is the value returned by GET on the endpoint.
	// Default: 1
	OperationCode int `yaml:"operation_code" toml:"operation_code"`

	// MaxBodyBytes is the largest accepted request body.
	// Default: 1048576 (1MB)
	MaxBodyBytes int64 `yaml:"max_body_bytes" toml:"max_body_bytes"`
}

// IdentityConfig contains the static identity returned with every
// classification result. None of these values depend on the request.
type IdentityConfig struct {
	// UserID identifies the service owner.
	// Default: "john_doe_17091999"
	UserID string `yaml:"user_id" toml:"user_id"`

	// Email is the owner's contact address.
	// Default: "john@xyz.com"
	Email string `yaml:"email" toml:"email"`

	// RollNumber is the owner's roll number label.
	// Default: "ABCD123"
	RollNumber string `yaml:"roll_number" toml:"roll_number"`
}

// ClassifierConfig contains token classification configuration.
type ClassifierConfig struct {
	// NumericPolicy selects the numeric predicate.
	// Options: "strict" (ASCII digits only), "coercive" (general numeric
	// coercion, kept for compatibility).
	// Default: "strict"
	NumericPolicy string `yaml:"numeric_policy" toml:"numeric_policy"`
}

// TelemetryConfig contains configuration for observability.
type TelemetryConfig struct {
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging" toml:"logging"`

	// Metrics contains metrics collection configuration.
	Metrics MetricsConfig `yaml:"metrics" toml:"metrics"`

	// Tracing contains distributed tracing configuration.
	Tracing TracingConfig `yaml:"tracing" toml:"tracing"`

	// Health contains health check configuration.
	Health HealthConfig `yaml:"health" toml:"health"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level to emit.
	// Options: "debug", "info", "warn", "error"
	// Default: "info"
	Level string `yaml:"level" toml:"level"`

	// Format controls the log output format.
	// Options: "json", "text"
	// Default: "json"
	Format string `yaml:"format" toml:"format"`

	// AddSource includes file and line number in log entries.
	// Default: false
	AddSource bool `yaml:"add_source" toml:"add_source"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled controls whether metrics collection is active.
	// Default: true
	Enabled bool `yaml:"enabled" toml:"enabled"`

	// Path is the HTTP path for the Prometheus metrics endpoint.
	// Default: "/metrics"
	Path string `yaml:"path" toml:"path"`

	// Namespace is the metric name prefix.
	// Default: "bfhl"
	Namespace string `yaml:"namespace" toml:"namespace"`

	// Subsystem is the metric subsystem name.
	// Default: "api"
	Subsystem string `yaml:"subsystem" toml:"subsystem"`

	// RequestDurationBuckets defines histogram buckets for request duration
	// in seconds.
	// Default: [0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.5]
	RequestDurationBuckets []float64 `yaml:"request_duration_buckets" toml:"request_duration_buckets"`

	// TokenCountBuckets defines histogram buckets for tokens per request.
	// Default: [0, 1, 5, 10, 50, 100, 500, 1000, 10000]
	TokenCountBuckets []float64 `yaml:"token_count_buckets" toml:"token_count_buckets"`
}

// TracingConfig contains OpenTelemetry tracing configuration.
type TracingConfig struct {
	// Enabled controls whether tracing is active.
	// Default: false
	Enabled bool `yaml:"enabled" toml:"enabled"`

	// Endpoint is the OTLP gRPC collector endpoint (host:port).
	// Required when tracing is enabled.
	Endpoint string `yaml:"endpoint" toml:"endpoint"`

	// ServiceName is reported as the service.name resource attribute.
	// Default: "bfhl"
	ServiceName string `yaml:"service_name" toml:"service_name"`

	// Sampler selects the sampling strategy.
	// Options: "always", "never", "ratio"
	// Default: "ratio"
	Sampler string `yaml:"sampler" toml:"sampler"`

	// SampleRatio is the fraction of traces sampled by the ratio sampler.
	// Default: 1.0
	SampleRatio float64 `yaml:"sample_ratio" toml:"sample_ratio"`

	// Insecure disables TLS towards the collector.
	// Default: false
	Insecure bool `yaml:"insecure" toml:"insecure"`

	// Timeout bounds each export call.
	// Default: 10s
	Timeout time.Duration `yaml:"timeout" toml:"timeout"`
}

// HealthConfig contains health check configuration.
type HealthConfig struct {
	// Enabled controls whether health check endpoints are enabled.
	// Default: true
	Enabled bool `yaml:"enabled" toml:"enabled"`

	// LivenessPath is the path for the liveness probe endpoint.
	// Default: "/health"
	LivenessPath string `yaml:"liveness_path" toml:"liveness_path"`

	// ReadinessPath is the path for the readiness probe endpoint.
	// Default: "/ready"
	ReadinessPath string `yaml:"readiness_path" toml:"readiness_path"`

	// VersionPath is the path for the version information endpoint.
	// Default: "/version"
	VersionPath string `yaml:"version_path" toml:"version_path"`

	// CheckTimeout is the timeout for individual component health checks.
	// Default: 2s
	CheckTimeout time.Duration `yaml:"check_timeout" toml:"check_timeout"`
}

// ReloadConfig controls configuration hot reloading.
type ReloadConfig struct {
	// Watch enables watching the configuration file for changes.
	// Default: false
	Watch bool `yaml:"watch" toml:"watch"`

	// Debounce is the quiet period after a file change before reloading.
	// Default: 250ms
	Debounce time.Duration `yaml:"debounce" toml:"debounce"`
}
