package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bfhl-hq/bfhl/pkg/classify"
	"bfhl-hq/bfhl/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// Helper function to create test config
func testConfig() *config.MetricsConfig {
	return &config.MetricsConfig{
		Enabled:                true,
		Namespace:              "test",
		Subsystem:              "api",
		RequestDurationBuckets: []float64{0.001, 0.01, 0.1},
		TokenCountBuckets:      []float64{1, 10, 100},
	}
}

func TestCollector_NewCollector(t *testing.T) {
	cfg := testConfig()
	registry := prometheus.NewRegistry()

	collector := NewCollector(cfg, registry)

	if collector == nil {
		t.Fatal("Expected non-nil collector")
	}
	if collector.Registry() != registry {
		t.Error("Collector registry not set correctly")
	}
}

func TestCollector_NewCollectorDefaults(t *testing.T) {
	cfg := &config.MetricsConfig{Enabled: true}
	collector := NewCollector(cfg, nil)

	if collector.Registry() == nil {
		t.Fatal("expected a registry to be created")
	}
	if cfg.Namespace != "bfhl" || cfg.Subsystem != "api" {
		t.Errorf("unexpected defaults %q/%q", cfg.Namespace, cfg.Subsystem)
	}
}

func TestCollector_RecordRequest(t *testing.T) {
	collector := NewCollector(testConfig(), prometheus.NewRegistry())

	collector.RecordRequest("POST", "/bfhl", 200, 3*time.Millisecond)
	collector.RecordRequest("POST", "/bfhl", 200, time.Millisecond)
	collector.RecordRequest("POST", "/bfhl", 400, time.Millisecond)

	rm := collector.requestMetrics
	if got := testutil.ToFloat64(rm.requestsTotal.WithLabelValues("POST", "/bfhl", "200")); got != 2 {
		t.Errorf("expected 2 successful requests, got %v", got)
	}
	if got := testutil.ToFloat64(rm.requestsTotal.WithLabelValues("POST", "/bfhl", "400")); got != 1 {
		t.Errorf("expected 1 failed request, got %v", got)
	}
	if got := testutil.CollectAndCount(rm.requestDuration); got != 1 {
		t.Errorf("expected 1 duration series, got %d", got)
	}
}

func TestCollector_RecordRequestCardinality(t *testing.T) {
	collector := NewCollector(testConfig(), prometheus.NewRegistry())
	collector.paths = NewCardinalityLimiter(1)

	collector.RecordRequest("GET", "/bfhl", 200, time.Millisecond)
	collector.RecordRequest("GET", "/random-1", 404, time.Millisecond)

	rm := collector.requestMetrics
	if got := testutil.ToFloat64(rm.requestsTotal.WithLabelValues("GET", "other", "404")); got != 1 {
		t.Errorf("expected overflow path to be recorded as other, got %v", got)
	}
}

func TestCollector_RecordClassification(t *testing.T) {
	collector := NewCollector(testConfig(), prometheus.NewRegistry())

	tokens := []string{"M", "1", "334", "4", "B", "AB"}
	collector.RecordClassification(classify.Classify(tokens), len(tokens))

	cm := collector.classificationMetrics
	if got := testutil.ToFloat64(cm.tokensClassified.WithLabelValues(CategoryNumber)); got != 3 {
		t.Errorf("expected 3 numbers, got %v", got)
	}
	if got := testutil.ToFloat64(cm.tokensClassified.WithLabelValues(CategoryAlphabet)); got != 2 {
		t.Errorf("expected 2 alphabets, got %v", got)
	}
	if got := testutil.ToFloat64(cm.tokensClassified.WithLabelValues(CategoryUnmatched)); got != 1 {
		t.Errorf("expected 1 unmatched, got %v", got)
	}
}

func TestCollector_OperationalMetrics(t *testing.T) {
	collector := NewCollector(testConfig(), prometheus.NewRegistry())

	collector.RecordValidationFailure("malformed_json")
	collector.RecordRateLimited()
	collector.RecordRateLimited()
	collector.RecordPanic()
	collector.RecordConfigReload(true)
	collector.RecordConfigReload(false)

	if got := testutil.ToFloat64(collector.classificationMetrics.validationFailures.WithLabelValues("malformed_json")); got != 1 {
		t.Errorf("expected 1 validation failure, got %v", got)
	}
	om := collector.operationalMetrics
	if got := testutil.ToFloat64(om.rateLimited); got != 2 {
		t.Errorf("expected 2 rate limited, got %v", got)
	}
	if got := testutil.ToFloat64(om.panicsRecovered); got != 1 {
		t.Errorf("expected 1 panic, got %v", got)
	}
	if got := testutil.ToFloat64(om.configReloads.WithLabelValues("failure")); got != 1 {
		t.Errorf("expected 1 failed reload, got %v", got)
	}
}

func TestCollector_Disabled(t *testing.T) {
	cfg := testConfig()
	cfg.Enabled = false
	collector := NewCollector(cfg, prometheus.NewRegistry())

	collector.RecordRequest("GET", "/bfhl", 200, time.Millisecond)
	collector.RecordRateLimited()

	if got := testutil.ToFloat64(collector.operationalMetrics.rateLimited); got != 0 {
		t.Errorf("disabled collector recorded %v", got)
	}
	if got := testutil.CollectAndCount(collector.requestMetrics.requestsTotal); got != 0 {
		t.Errorf("disabled collector created %d series", got)
	}
}

func TestCollector_NilIsNoop(t *testing.T) {
	var collector *Collector
	collector.RecordRequest("GET", "/bfhl", 200, time.Millisecond)
	collector.RecordClassification(classify.Result{}, 0)
	collector.RecordValidationFailure("x")
	collector.RecordRateLimited()
	collector.RecordPanic()
	collector.RecordConfigReload(true)
}

func TestCollector_Handler(t *testing.T) {
	collector := NewCollector(testConfig(), prometheus.NewRegistry())
	collector.RecordRequest("POST", "/bfhl", 200, time.Millisecond)

	rec := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `test_api_requests_total{method="POST",path="/bfhl",status="200"} 1`) {
		t.Errorf("metrics output missing request counter:\n%s", body)
	}
	if !strings.Contains(body, "go_goroutines") {
		t.Error("expected go runtime metrics")
	}
}

func TestCardinalityLimiter(t *testing.T) {
	cl := NewCardinalityLimiter(2)

	if !cl.Allow("a") || !cl.Allow("b") {
		t.Fatal("expected first two values to be admitted")
	}
	if cl.Allow("c") {
		t.Error("expected third value to be rejected")
	}
	if !cl.Allow("a") {
		t.Error("known value must stay admitted")
	}
	if cl.Count() != 2 {
		t.Errorf("expected count 2, got %d", cl.Count())
	}
}
