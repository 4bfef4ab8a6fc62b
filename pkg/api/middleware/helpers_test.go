package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"bfhl-hq/bfhl/pkg/config"
	"bfhl-hq/bfhl/pkg/telemetry/metrics"
)

func newTestCollector() *metrics.Collector {
	cfg := config.Defaults().Telemetry.Metrics
	return metrics.NewCollector(&cfg, prometheus.NewRegistry())
}

// scrape returns the exposition text of collector.
func scrape(t *testing.T, collector *metrics.Collector) string {
	t.Helper()
	rec := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics scrape returned %d", rec.Code)
	}
	return rec.Body.String()
}

func assertMetric(t *testing.T, collector *metrics.Collector, line string) {
	t.Helper()
	if body := scrape(t, collector); !strings.Contains(body, line) {
		t.Errorf("metrics output missing %q", line)
	}
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
})
