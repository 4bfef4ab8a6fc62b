// Package telemetry wires the service's observability stack.
//
// # Components
//
//   - logging: log/slog logger carrying request and trace identifiers
//   - metrics: Prometheus collector and scrape handler
//   - tracing: OpenTelemetry tracer exporting over OTLP gRPC
//   - health: liveness, readiness and version endpoints
//
// # Usage
//
//	tel, err := telemetry.New(&cfg.Telemetry, telemetry.BuildInfo{Version: "1.0.0"}, os.Stderr)
//	if err != nil {
//	    return err
//	}
//	defer tel.Shutdown(context.Background())
//
//	tel.Logger.Info("starting")
//	tel.Metrics.RecordRequest("POST", "/bfhl", 200, time.Millisecond)
package telemetry
