package metrics

import (
	"strconv"
	"sync"
	"time"

	"bfhl-hq/bfhl/pkg/classify"
	"bfhl-hq/bfhl/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Collector owns every Prometheus metric exported by the service and offers
// one recording method per event. All methods are no-ops on a nil Collector
// or when metrics are disabled.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	requestMetrics        *RequestMetrics
	classificationMetrics *ClassificationMetrics
	operationalMetrics    *OperationalMetrics

	// paths caps the distinct path label values
	paths *CardinalityLimiter
}

// NewCollector creates a metrics collector registered on registry. If
// registry is nil a fresh registry is created. Go runtime and process
// collectors are registered alongside the service metrics.
//
// Example:
//
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//	mux.Handle(cfg.Telemetry.Metrics.Path, collector.Handler())
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	if cfg.Namespace == "" {
		cfg.Namespace = "bfhl"
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = "api"
	}
	if len(cfg.RequestDurationBuckets) == 0 {
		cfg.RequestDurationBuckets = prometheus.DefBuckets
	}
	if len(cfg.TokenCountBuckets) == 0 {
		cfg.TokenCountBuckets = []float64{0, 1, 5, 10, 50, 100, 500, 1000, 10000}
	}

	c := &Collector{
		config:   cfg,
		registry: registry,
		paths:    NewCardinalityLimiter(64),
	}

	c.requestMetrics = NewRequestMetrics(cfg, registry)
	c.classificationMetrics = NewClassificationMetrics(cfg, registry)
	c.operationalMetrics = NewOperationalMetrics(cfg, registry)

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

func (c *Collector) enabled() bool {
	return c != nil && c.config.Enabled
}

// RecordRequest records a completed HTTP request. Paths beyond the
// cardinality limit are reported as "other".
func (c *Collector) RecordRequest(method, path string, status int, duration time.Duration) {
	if !c.enabled() {
		return
	}

	if !c.paths.Allow(path) {
		path = "other"
	}
	c.requestMetrics.RecordRequest(method, path, strconv.Itoa(status), duration)
}

// RecordClassification records the outcome of classifying total tokens.
func (c *Collector) RecordClassification(res classify.Result, total int) {
	if !c.enabled() {
		return
	}
	c.classificationMetrics.Record(res, total)
}

// RecordValidationFailure records a rejected request body.
//
// Parameters:
//   - reason: failure class ("malformed_json", "not_object", "missing_data",
//     "null_data", "not_array", "non_string_element", "body_too_large")
func (c *Collector) RecordValidationFailure(reason string) {
	if !c.enabled() {
		return
	}
	c.classificationMetrics.validationFailures.WithLabelValues(reason).Inc()
}

// RecordRateLimited records a request rejected by the rate limiter.
func (c *Collector) RecordRateLimited() {
	if !c.enabled() {
		return
	}
	c.operationalMetrics.rateLimited.Inc()
}

// RecordPanic records a panic recovered by the HTTP middleware.
func (c *Collector) RecordPanic() {
	if !c.enabled() {
		return
	}
	c.operationalMetrics.panicsRecovered.Inc()
}

// RecordConfigReload records a configuration reload attempt.
func (c *Collector) RecordConfigReload(ok bool) {
	if !c.enabled() {
		return
	}
	result := "success"
	if !ok {
		result = "failure"
	}
	c.operationalMetrics.configReloads.WithLabelValues(result).Inc()
}

// Registry returns the Prometheus registry used by this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// CardinalityLimiter caps the number of distinct label values admitted for
// a metric.
type CardinalityLimiter struct {
	maxCardinality int
	current        map[string]struct{}
	mu             sync.RWMutex
}

// NewCardinalityLimiter creates a limiter admitting at most maxCardinality
// distinct values.
func NewCardinalityLimiter(maxCardinality int) *CardinalityLimiter {
	return &CardinalityLimiter{
		maxCardinality: maxCardinality,
		current:        make(map[string]struct{}),
	}
}

// Allow reports whether value is already known or still fits under the limit.
func (cl *CardinalityLimiter) Allow(value string) bool {
	cl.mu.RLock()
	if _, exists := cl.current[value]; exists {
		cl.mu.RUnlock()
		return true
	}
	cl.mu.RUnlock()

	cl.mu.Lock()
	defer cl.mu.Unlock()

	if _, exists := cl.current[value]; exists {
		return true
	}
	if len(cl.current) >= cl.maxCardinality {
		return false
	}
	cl.current[value] = struct{}{}
	return true
}

// Count returns the current cardinality.
func (cl *CardinalityLimiter) Count() int {
	cl.mu.RLock()
	defer cl.mu.RUnlock()
	return len(cl.current)
}
