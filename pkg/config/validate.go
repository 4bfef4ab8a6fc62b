package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"bfhl-hq/bfhl/pkg/classify"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "server.listen_address").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "configuration validation failed with %d errors:\n", len(e.Errors))
	for _, err := range e.Errors {
		fmt.Fprintf(&sb, "  - %s\n", err.Error())
	}
	return sb.String()
}

// Validate validates the entire configuration and returns a ValidationError
// if any validation rules fail. All errors are collected and returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateServer(&cfg.Server)...)
	errs = append(errs, validateAPI(&cfg.API)...)
	errs = append(errs, validateIdentity(&cfg.Identity)...)
	errs = append(errs, validateClassifier(&cfg.Classifier)...)
	errs = append(errs, validateTelemetry(&cfg.Telemetry)...)
	errs = append(errs, validateReload(&cfg.Reload)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

func validateServer(cfg *ServerConfig) []FieldError {
	var errs []FieldError

	if cfg.ListenAddress == "" {
		errs = append(errs, FieldError{Field: "server.listen_address", Message: "listen address is required"})
	} else if _, _, err := net.SplitHostPort(cfg.ListenAddress); err != nil {
		errs = append(errs, FieldError{
			Field:   "server.listen_address",
			Message: fmt.Sprintf("invalid host:port %q: %v", cfg.ListenAddress, err),
		})
	}

	durations := []struct {
		field string
		value time.Duration
	}{
		{"server.read_timeout", cfg.ReadTimeout},
		{"server.write_timeout", cfg.WriteTimeout},
		{"server.idle_timeout", cfg.IdleTimeout},
		{"server.shutdown_timeout", cfg.ShutdownTimeout},
		{"server.request_timeout", cfg.RequestTimeout},
	}
	for _, d := range durations {
		if d.value < 0 {
			errs = append(errs, FieldError{Field: d.field, Message: "timeout must be positive"})
		}
	}

	if cfg.MaxHeaderBytes < 0 {
		errs = append(errs, FieldError{Field: "server.max_header_bytes", Message: "max header bytes must be non-negative"})
	}
	if cfg.MaxHeaderBytes > 10*1024*1024 {
		errs = append(errs, FieldError{Field: "server.max_header_bytes", Message: "max header bytes exceeds reasonable limit (10MB)"})
	}

	if cfg.CORS.Enabled {
		if len(cfg.CORS.AllowedOrigins) == 0 {
			errs = append(errs, FieldError{Field: "server.cors.allowed_origins", Message: "at least one origin is required when CORS is enabled"})
		}
		if cfg.CORS.AllowCredentials {
			for _, o := range cfg.CORS.AllowedOrigins {
				if o == "*" {
					errs = append(errs, FieldError{
						Field:   "server.cors.allow_credentials",
						Message: "credentials cannot be allowed with wildcard origin",
					})
					break
				}
			}
		}
	}
	if cfg.CORS.MaxAge < 0 {
		errs = append(errs, FieldError{Field: "server.cors.max_age", Message: "max age must be non-negative"})
	}

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.RequestsPerSecond <= 0 {
			errs = append(errs, FieldError{Field: "server.rate_limit.requests_per_second", Message: "requests per second must be positive"})
		}
		if cfg.RateLimit.Burst <= 0 {
			errs = append(errs, FieldError{Field: "server.rate_limit.burst", Message: "burst must be positive"})
		}
	}

	if cfg.TLS.Enabled {
		if cfg.TLS.CertFile == "" {
			errs = append(errs, FieldError{Field: "server.tls.cert_file", Message: "cert file is required when TLS is enabled"})
		}
		if cfg.TLS.KeyFile == "" {
			errs = append(errs, FieldError{Field: "server.tls.key_file", Message: "key file is required when TLS is enabled"})
		}
	}
	if cfg.TLS.MinVersion != "" && cfg.TLS.MinVersion != "1.2" && cfg.TLS.MinVersion != "1.3" {
		errs = append(errs, FieldError{
			Field:   "server.tls.min_version",
			Message: fmt.Sprintf("invalid TLS version %q (must be 1.2 or 1.3)", cfg.TLS.MinVersion),
		})
	}
	if cfg.TLS.ReloadInterval < 0 {
		errs = append(errs, FieldError{Field: "server.tls.reload_interval", Message: "reload interval must be non-negative"})
	}

	return errs
}

func validateAPI(cfg *APIConfig) []FieldError {
	var errs []FieldError

	if len(cfg.Paths) == 0 {
		errs = append(errs, FieldError{Field: "api.paths", Message: "at least one path is required"})
	}
	seen := make(map[string]bool, len(cfg.Paths))
	for i, p := range cfg.Paths {
		field := fmt.Sprintf("api.paths[%d]", i)
		if !strings.HasPrefix(p, "/") {
			errs = append(errs, FieldError{Field: field, Message: fmt.Sprintf("path %q must start with /", p)})
		}
		if seen[p] {
			errs = append(errs, FieldError{Field: field, Message: fmt.Sprintf("duplicate path %q", p)})
		}
		seen[p] = true
	}

	if cfg.MaxBodyBytes <= 0 {
		errs = append(errs, FieldError{Field: "api.max_body_bytes", Message: "max body bytes must be positive"})
	}

	return errs
}

func validateIdentity(cfg *IdentityConfig) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(cfg.UserID) == "" {
		errs = append(errs, FieldError{Field: "identity.user_id", Message: "user id is required"})
	}
	if cfg.Email != "" && !strings.Contains(cfg.Email, "@") {
		errs = append(errs, FieldError{Field: "identity.email", Message: fmt.Sprintf("invalid email address %q", cfg.Email)})
	}
	if strings.TrimSpace(cfg.RollNumber) == "" {
		errs = append(errs, FieldError{Field: "identity.roll_number", Message: "roll number is required"})
	}

	return errs
}

func validateClassifier(cfg *ClassifierConfig) []FieldError {
	if _, err := classify.ParsePolicy(cfg.NumericPolicy); err != nil {
		return []FieldError{{Field: "classifier.numeric_policy", Message: err.Error()}}
	}
	return nil
}

func validateTelemetry(cfg *TelemetryConfig) []FieldError {
	var errs []FieldError

	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.level",
			Message: fmt.Sprintf("invalid log level %q (must be 'debug', 'info', 'warn', or 'error')", cfg.Logging.Level),
		})
	}
	switch strings.ToLower(cfg.Logging.Format) {
	case "json", "text":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.format",
			Message: fmt.Sprintf("invalid log format %q (must be 'json' or 'text')", cfg.Logging.Format),
		})
	}

	if cfg.Metrics.Enabled {
		if !strings.HasPrefix(cfg.Metrics.Path, "/") {
			errs = append(errs, FieldError{Field: "telemetry.metrics.path", Message: "metrics path must start with /"})
		}
		if !ascending(cfg.Metrics.RequestDurationBuckets) {
			errs = append(errs, FieldError{Field: "telemetry.metrics.request_duration_buckets", Message: "buckets must be in ascending order"})
		}
		if !ascending(cfg.Metrics.TokenCountBuckets) {
			errs = append(errs, FieldError{Field: "telemetry.metrics.token_count_buckets", Message: "buckets must be in ascending order"})
		}
	}

	if cfg.Tracing.Enabled {
		if cfg.Tracing.Endpoint == "" {
			errs = append(errs, FieldError{Field: "telemetry.tracing.endpoint", Message: "endpoint is required when tracing is enabled"})
		}
		switch cfg.Tracing.Sampler {
		case "always", "never", "ratio":
		default:
			errs = append(errs, FieldError{
				Field:   "telemetry.tracing.sampler",
				Message: fmt.Sprintf("invalid sampler %q (must be 'always', 'never', or 'ratio')", cfg.Tracing.Sampler),
			})
		}
	}
	if cfg.Tracing.SampleRatio < 0 || cfg.Tracing.SampleRatio > 1 {
		errs = append(errs, FieldError{Field: "telemetry.tracing.sample_ratio", Message: "sample ratio must be between 0.0 and 1.0"})
	}

	if cfg.Health.Enabled {
		paths := []struct{ field, value string }{
			{"telemetry.health.liveness_path", cfg.Health.LivenessPath},
			{"telemetry.health.readiness_path", cfg.Health.ReadinessPath},
			{"telemetry.health.version_path", cfg.Health.VersionPath},
		}
		for _, p := range paths {
			if !strings.HasPrefix(p.value, "/") {
				errs = append(errs, FieldError{Field: p.field, Message: "path must start with /"})
			}
		}
		if cfg.Health.CheckTimeout <= 0 {
			errs = append(errs, FieldError{Field: "telemetry.health.check_timeout", Message: "check timeout must be positive"})
		} else if cfg.Health.CheckTimeout > 60*time.Second {
			errs = append(errs, FieldError{Field: "telemetry.health.check_timeout", Message: "check timeout should not exceed 60s"})
		}
	}

	return errs
}

func validateReload(cfg *ReloadConfig) []FieldError {
	if cfg.Debounce < 0 {
		return []FieldError{{Field: "reload.debounce", Message: "debounce must be non-negative"}}
	}
	return nil
}

func ascending(values []float64) bool {
	for i := 1; i < len(values); i++ {
		if values[i] <= values[i-1] {
			return false
		}
	}
	return true
}
