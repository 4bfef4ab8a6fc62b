package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{"empty listen address", func(c *Config) { c.Server.ListenAddress = "" }, "server.listen_address"},
		{"listen address without port", func(c *Config) { c.Server.ListenAddress = "localhost" }, "server.listen_address"},
		{"negative read timeout", func(c *Config) { c.Server.ReadTimeout = -time.Second }, "server.read_timeout"},
		{"huge header limit", func(c *Config) { c.Server.MaxHeaderBytes = 11 << 20 }, "server.max_header_bytes"},
		{"credentials with wildcard", func(c *Config) { c.Server.CORS.AllowCredentials = true }, "server.cors.allow_credentials"},
		{"rate limit without rate", func(c *Config) {
			c.Server.RateLimit.Enabled = true
			c.Server.RateLimit.RequestsPerSecond = -1
		}, "server.rate_limit.requests_per_second"},
		{"tls without cert", func(c *Config) { c.Server.TLS.Enabled = true }, "server.tls.cert_file"},
		{"tls version", func(c *Config) { c.Server.TLS.MinVersion = "1.1" }, "server.tls.min_version"},
		{"no paths", func(c *Config) { c.API.Paths = nil }, "api.paths"},
		{"relative path", func(c *Config) { c.API.Paths = []string{"bfhl"} }, "api.paths[0]"},
		{"duplicate path", func(c *Config) { c.API.Paths = []string{"/bfhl", "/bfhl"} }, "api.paths[1]"},
		{"zero body limit", func(c *Config) { c.API.MaxBodyBytes = 0 }, "api.max_body_bytes"},
		{"blank user id", func(c *Config) { c.Identity.UserID = "  " }, "identity.user_id"},
		{"bad email", func(c *Config) { c.Identity.Email = "nobody" }, "identity.email"},
		{"unknown policy", func(c *Config) { c.Classifier.NumericPolicy = "fuzzy" }, "classifier.numeric_policy"},
		{"bad log level", func(c *Config) { c.Telemetry.Logging.Level = "trace" }, "telemetry.logging.level"},
		{"bad log format", func(c *Config) { c.Telemetry.Logging.Format = "xml" }, "telemetry.logging.format"},
		{"metrics path", func(c *Config) { c.Telemetry.Metrics.Path = "metrics" }, "telemetry.metrics.path"},
		{"unsorted buckets", func(c *Config) { c.Telemetry.Metrics.TokenCountBuckets = []float64{5, 1} }, "telemetry.metrics.token_count_buckets"},
		{"tracing without endpoint", func(c *Config) { c.Telemetry.Tracing.Enabled = true }, "telemetry.tracing.endpoint"},
		{"sample ratio", func(c *Config) { c.Telemetry.Tracing.SampleRatio = 1.5 }, "telemetry.tracing.sample_ratio"},
		{"health path", func(c *Config) { c.Telemetry.Health.ReadinessPath = "ready" }, "telemetry.health.readiness_path"},
		{"check timeout", func(c *Config) { c.Telemetry.Health.CheckTimeout = 2 * time.Minute }, "telemetry.health.check_timeout"},
		{"negative debounce", func(c *Config) { c.Reload.Debounce = -time.Millisecond }, "reload.debounce"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)

			err := Validate(cfg)
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}

			found := false
			for _, fe := range verr.Errors {
				if fe.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("expected error for field %q, got %v", tt.wantField, verr.Errors)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	single := ValidationError{Errors: []FieldError{{Field: "a", Message: "bad"}}}
	if got := single.Error(); got != "configuration validation failed: a: bad" {
		t.Errorf("unexpected message %q", got)
	}

	multi := ValidationError{Errors: []FieldError{{Field: "a", Message: "bad"}, {Field: "b", Message: "worse"}}}
	if got := multi.Error(); !strings.Contains(got, "2 errors") || !strings.Contains(got, "  - b: worse") {
		t.Errorf("unexpected message %q", got)
	}

	if got := (ValidationError{}).Error(); got != "configuration validation failed" {
		t.Errorf("unexpected message %q", got)
	}
}
