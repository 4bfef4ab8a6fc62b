package telemetry

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"bfhl-hq/bfhl/pkg/config"
	"bfhl-hq/bfhl/pkg/telemetry/health"
	"bfhl-hq/bfhl/pkg/telemetry/logging"
	"bfhl-hq/bfhl/pkg/telemetry/metrics"
	"bfhl-hq/bfhl/pkg/telemetry/tracing"
)

// BuildInfo identifies the running binary.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildTime string
}

// Telemetry bundles the logger, metrics collector, tracer and health checker.
type Telemetry struct {
	Logger  *slog.Logger
	Metrics *metrics.Collector
	Tracer  *tracing.Tracer
	Health  *health.Checker
	Build   BuildInfo
}

// New builds every telemetry component from cfg. Logs are written to w.
// The metrics collector is nil when metrics are disabled.
func New(cfg *config.TelemetryConfig, build BuildInfo, w io.Writer) (*Telemetry, error) {
	logger, err := logging.New(logging.FromConfig(cfg.Logging, w))
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	tracer, err := tracing.New(&cfg.Tracing, build.Version)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector(&cfg.Metrics, nil)
	}

	return &Telemetry{
		Logger:  logger,
		Metrics: collector,
		Tracer:  tracer,
		Health:  health.New(cfg.Health.CheckTimeout),
		Build:   build,
	}, nil
}

// Shutdown flushes the tracer.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	return t.Tracer.Shutdown(ctx)
}
