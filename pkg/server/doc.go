// Package server ties the classification handler, middleware and telemetry
// endpoints into one HTTP server and manages its lifecycle.
//
// # Routes
//
//	POST|GET  /bfhl, /api/bfhl   classification (api.paths)
//	GET       /metrics           Prometheus scrape (telemetry.metrics.path)
//	GET       /health            liveness
//	GET       /ready             readiness, 503 while draining
//	GET       /version           build information
//
// Unknown paths receive 404 {"is_success": false, "message": "Not found"}.
//
// # Basic Usage
//
//	tel, err := telemetry.New(&cfg.Telemetry, build, os.Stderr)
//	if err != nil {
//	    return err
//	}
//	srv, err := server.New(cfg, tel)
//	if err != nil {
//	    return err
//	}
//	if err := srv.Start(ctx); err != nil {
//	    return err
//	}
//
// Start blocks until ctx is cancelled or SIGINT/SIGTERM arrives, then drains
// in-flight requests for up to server.shutdown_timeout.
//
// # Hot Reload
//
// WatchConfig observes the configuration file and applies identity,
// operation code, numeric policy and body limit changes without a restart.
// Invalid files are rejected and counted in config_reloads_total.
//
// # TLS
//
// With server.tls.enabled the listener terminates TLS using the configured
// certificate pair. The files are re-read every server.tls.reload_interval
// when they change on disk.
package server
