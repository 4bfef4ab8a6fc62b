package metrics

import (
	"bfhl-hq/bfhl/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// OperationalMetrics tracks events outside the request/response flow.
type OperationalMetrics struct {
	rateLimited     prometheus.Counter
	panicsRecovered prometheus.Counter
	configReloads   *prometheus.CounterVec
}

// NewOperationalMetrics creates and registers operational metrics.
func NewOperationalMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *OperationalMetrics {
	om := &OperationalMetrics{
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "rate_limited_total",
			Help:      "Total number of requests rejected by the rate limiter",
		}),
		panicsRecovered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "panics_recovered_total",
			Help:      "Total number of handler panics recovered",
		}),
		configReloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "config_reloads_total",
			Help:      "Total number of configuration reload attempts, by result",
		}, []string{"result"}),
	}

	registry.MustRegister(om.rateLimited, om.panicsRecovered, om.configReloads)

	return om
}
