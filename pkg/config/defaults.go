package config

import "time"

// Defaults returns a configuration populated with every default value.
// File contents are decoded on top of it, so booleans that default to true
// stay true unless a file sets them explicitly.
func Defaults() *Config {
	cfg := &Config{
		Server: ServerConfig{
			CORS:      CORSConfig{Enabled: true},
			RateLimit: RateLimitConfig{Enabled: false},
		},
		Telemetry: TelemetryConfig{
			Metrics: MetricsConfig{Enabled: true},
			Health:  HealthConfig{Enabled: true},
		},
	}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills in default values for any unset configuration fields.
// Fields that already carry a non-zero value are left untouched. Boolean
// switches are not touched here; see Defaults.
func ApplyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyAPIDefaults(&cfg.API)
	applyIdentityDefaults(&cfg.Identity)
	applyClassifierDefaults(&cfg.Classifier)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyReloadDefaults(&cfg.Reload)
}

func applyServerDefaults(cfg *ServerConfig) {
	if cfg.ListenAddress == "" {
		cfg.ListenAddress = "127.0.0.1:8080"
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 10 * time.Second
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 10 * time.Second
	}
	if cfg.IdleTimeout == 0 {
		cfg.IdleTimeout = 120 * time.Second
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 15 * time.Second
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 5 * time.Second
	}
	if cfg.MaxHeaderBytes == 0 {
		cfg.MaxHeaderBytes = 1 << 20
	}

	applyCORSDefaults(&cfg.CORS)

	if cfg.RateLimit.RequestsPerSecond == 0 {
		cfg.RateLimit.RequestsPerSecond = 100
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = 200
	}

	if cfg.TLS.MinVersion == "" {
		cfg.TLS.MinVersion = "1.3"
	}
	if cfg.TLS.ReloadInterval == 0 {
		cfg.TLS.ReloadInterval = 5 * time.Minute
	}
}

func applyCORSDefaults(cfg *CORSConfig) {
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}
	if len(cfg.AllowedMethods) == 0 {
		cfg.AllowedMethods = []string{"GET", "POST", "OPTIONS"}
	}
	if len(cfg.AllowedHeaders) == 0 {
		cfg.AllowedHeaders = []string{"Content-Type", "X-Request-ID"}
	}
	if len(cfg.ExposedHeaders) == 0 {
		cfg.ExposedHeaders = []string{"X-Request-ID"}
	}
	if cfg.MaxAge == 0 {
		cfg.MaxAge = 3600
	}
}

func applyAPIDefaults(cfg *APIConfig) {
	if len(cfg.Paths) == 0 {
		cfg.Paths = []string{"/bfhl", "/api/bfhl"}
	}
	if cfg.OperationCode == 0 {
		cfg.OperationCode = 1
	}
	if cfg.MaxBodyBytes == 0 {
		cfg.MaxBodyBytes = 1 << 20
	}
}

func applyIdentityDefaults(cfg *IdentityConfig) {
	if cfg.UserID == "" {
		cfg.UserID = "john_doe_17091999"
	}
	if cfg.Email == "" {
		cfg.Email = "john@xyz.com"
	}
	if cfg.RollNumber == "" {
		cfg.RollNumber = "ABCD123"
	}
}

func applyClassifierDefaults(cfg *ClassifierConfig) {
	if cfg.NumericPolicy == "" {
		cfg.NumericPolicy = "strict"
	}
}

func applyTelemetryDefaults(cfg *TelemetryConfig) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}

	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = "bfhl"
	}
	if cfg.Metrics.Subsystem == "" {
		cfg.Metrics.Subsystem = "api"
	}
	if len(cfg.Metrics.RequestDurationBuckets) == 0 {
		cfg.Metrics.RequestDurationBuckets = []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.5}
	}
	if len(cfg.Metrics.TokenCountBuckets) == 0 {
		cfg.Metrics.TokenCountBuckets = []float64{0, 1, 5, 10, 50, 100, 500, 1000, 10000}
	}

	if cfg.Tracing.ServiceName == "" {
		cfg.Tracing.ServiceName = "bfhl"
	}
	if cfg.Tracing.Sampler == "" {
		cfg.Tracing.Sampler = "ratio"
	}
	if cfg.Tracing.SampleRatio == 0 {
		cfg.Tracing.SampleRatio = 1.0
	}
	if cfg.Tracing.Timeout == 0 {
		cfg.Tracing.Timeout = 10 * time.Second
	}

	if cfg.Health.LivenessPath == "" {
		cfg.Health.LivenessPath = "/health"
	}
	if cfg.Health.ReadinessPath == "" {
		cfg.Health.ReadinessPath = "/ready"
	}
	if cfg.Health.VersionPath == "" {
		cfg.Health.VersionPath = "/version"
	}
	if cfg.Health.CheckTimeout == 0 {
		cfg.Health.CheckTimeout = 2 * time.Second
	}
}

func applyReloadDefaults(cfg *ReloadConfig) {
	if cfg.Debounce == 0 {
		cfg.Debounce = 250 * time.Millisecond
	}
}
