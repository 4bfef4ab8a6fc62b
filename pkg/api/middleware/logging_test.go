package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"success logs info", http.StatusOK, "INFO"},
		{"client error logs warn", http.StatusBadRequest, "WARN"},
		{"server error logs error", http.StatusInternalServerError, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))
			collector := newTestCollector()

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if GetStartTime(r.Context()).IsZero() {
					t.Error("start time missing from context")
				}
				w.WriteHeader(tt.status)
			})

			w := httptest.NewRecorder()
			LoggingMiddleware(logger, collector)(handler).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/bfhl", nil))

			var entry map[string]any
			if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
				t.Fatalf("log line is not JSON: %v\n%s", err, buf.String())
			}
			if entry["msg"] != "request completed" {
				t.Errorf("msg = %v", entry["msg"])
			}
			if entry["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", entry["level"], tt.wantLevel)
			}
			if entry["status"] != float64(tt.status) {
				t.Errorf("status = %v, want %v", entry["status"], tt.status)
			}
			if _, ok := entry["latency_ms"]; !ok {
				t.Error("latency_ms missing")
			}

			assertMetric(t, collector, fmt.Sprintf(`bfhl_api_requests_total{method="POST",path="/bfhl",status="%d"} 1`, tt.status))
		})
	}
}

func TestResponseWriter_DefaultStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	_, _ = rw.Write([]byte("x"))
	rw.WriteHeader(http.StatusTeapot)

	if rw.statusCode != http.StatusOK {
		t.Errorf("statusCode = %d, want 200", rw.statusCode)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("recorded code = %d, want 200", rec.Code)
	}
	if rw.Unwrap() != rec {
		t.Error("Unwrap should return the underlying writer")
	}
}
