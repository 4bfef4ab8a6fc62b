package metrics

import (
	"bfhl-hq/bfhl/pkg/classify"
	"bfhl-hq/bfhl/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// Token categories used as the category label.
const (
	CategoryNumber    = "number"
	CategoryAlphabet  = "alphabet"
	CategoryUnmatched = "unmatched"
)

// ClassificationMetrics tracks classification outcomes.
//
// Metrics:
//   - bfhl_api_tokens_classified_total: tokens by category
//   - bfhl_api_request_tokens: tokens per request histogram
//   - bfhl_api_validation_failures_total: rejected bodies by reason
type ClassificationMetrics struct {
	tokensClassified   *prometheus.CounterVec
	requestTokens      prometheus.Histogram
	validationFailures *prometheus.CounterVec
}

// NewClassificationMetrics creates and registers classification metrics.
func NewClassificationMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *ClassificationMetrics {
	cm := &ClassificationMetrics{
		tokensClassified: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "tokens_classified_total",
				Help:      "Total number of tokens classified, by category",
			},
			[]string{"category"},
		),

		requestTokens: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "request_tokens",
				Help:      "Number of tokens per classification request",
				Buckets:   cfg.TokenCountBuckets,
			},
		),

		validationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "validation_failures_total",
				Help:      "Total number of rejected request bodies, by reason",
			},
			[]string{"reason"},
		),
	}

	registry.MustRegister(cm.tokensClassified, cm.requestTokens, cm.validationFailures)

	return cm
}

// Record records one classification of total tokens.
func (cm *ClassificationMetrics) Record(res classify.Result, total int) {
	cm.requestTokens.Observe(float64(total))
	cm.tokensClassified.WithLabelValues(CategoryNumber).Add(float64(len(res.Numbers)))
	cm.tokensClassified.WithLabelValues(CategoryAlphabet).Add(float64(len(res.Alphabets)))
	cm.tokensClassified.WithLabelValues(CategoryUnmatched).Add(float64(res.Unmatched(total)))
}
