// Package metrics exports Prometheus metrics for the bfhl service.
//
// All metrics share the configured namespace and subsystem (bfhl_api by
// default):
//
//   - requests_total{method,path,status}
//   - request_duration_seconds{method,path}
//   - tokens_classified_total{category}
//   - request_tokens
//   - validation_failures_total{reason}
//   - rate_limited_total
//   - panics_recovered_total
//   - config_reloads_total{result}
//
// The Collector's Handler serves the registry for scraping.
package metrics
