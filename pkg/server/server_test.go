package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bfhl-hq/bfhl/pkg/config"
	"bfhl-hq/bfhl/pkg/telemetry"
)

func newTestServer(t *testing.T, mutate func(*config.Config)) *Server {
	t.Helper()

	cfg := config.Defaults()
	cfg.Server.ListenAddress = "127.0.0.1:0"
	if mutate != nil {
		mutate(cfg)
	}

	tel, err := telemetry.New(&cfg.Telemetry, telemetry.BuildInfo{Version: "1.2.3", Commit: "abc"}, io.Discard)
	require.NoError(t, err)

	srv, err := New(cfg, tel)
	require.NoError(t, err)
	return srv
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestNew_Errors(t *testing.T) {
	_, err := New(nil, &telemetry.Telemetry{})
	assert.Error(t, err)

	_, err = New(config.Defaults(), nil)
	assert.Error(t, err)
}

func TestHandler_Routes(t *testing.T) {
	h := newTestServer(t, nil).Handler()

	t.Run("classify on canonical path", func(t *testing.T) {
		rec := serve(h, http.MethodPost, "/bfhl", `{"data":["M","1","334","4","B"]}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"is_success": true,
			"user_id": "john_doe_17091999",
			"email": "john@xyz.com",
			"roll_number": "ABCD123",
			"numbers": ["1", "334", "4"],
			"alphabets": ["M", "B"],
			"highest_alphabet": "M"
		}`, rec.Body.String())
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("classify on alias path", func(t *testing.T) {
		rec := serve(h, http.MethodPost, "/api/bfhl", `{"data":["1","2","a","b"]}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var out map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Equal(t, "b", out["highest_alphabet"])
	})

	t.Run("operation code", func(t *testing.T) {
		rec := serve(h, http.MethodGet, "/bfhl", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"operation_code":1}`, rec.Body.String())
	})

	t.Run("invalid input", func(t *testing.T) {
		rec := serve(h, http.MethodPost, "/bfhl", `{"data":"abc"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"is_success":false,"message":"Invalid input format"}`, rec.Body.String())
	})

	t.Run("unknown path", func(t *testing.T) {
		rec := serve(h, http.MethodGet, "/nope", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"is_success":false,"message":"Not found"}`, rec.Body.String())
	})

	t.Run("health endpoints", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/health", "").Code)

		rec := serve(h, http.MethodGet, "/ready", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"config"`)

		rec = serve(h, http.MethodGet, "/version", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "1.2.3")
	})

	t.Run("metrics endpoint", func(t *testing.T) {
		rec := serve(h, http.MethodGet, "/metrics", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "bfhl_api_requests_total")
		assert.Contains(t, rec.Body.String(), `bfhl_api_tokens_classified_total{category="number"}`)
	})
}

func TestHandler_MetricsAndHealthDisabled(t *testing.T) {
	h := newTestServer(t, func(cfg *config.Config) {
		cfg.Telemetry.Metrics.Enabled = false
		cfg.Telemetry.Health.Enabled = false
	}).Handler()

	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodGet, "/metrics", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/bfhl", "").Code)
}

func TestHandler_RateLimitSparesProbes(t *testing.T) {
	h := newTestServer(t, func(cfg *config.Config) {
		cfg.Server.RateLimit = config.RateLimitConfig{Enabled: true, RequestsPerSecond: 0.001, Burst: 1}
	}).Handler()

	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/bfhl", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(h, http.MethodGet, "/bfhl", "").Code)
	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/health", "").Code)
}

func TestServer_StartAndShutdown(t *testing.T) {
	srv := newTestServer(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	select {
	case <-srv.Started():
	case err := <-done:
		t.Fatalf("server failed to start: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	assert.True(t, srv.IsRunning())

	client := &http.Client{Timeout: 5 * time.Second}
	defer client.CloseIdleConnections()

	resp, err := client.Post("http://"+srv.Addr()+"/bfhl", "application/json", strings.NewReader(`{"data":["z","9"]}`))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"highest_alphabet":"z"`)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}

	assert.False(t, srv.IsRunning())

	rec := serve(srv.Handler(), http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "draining")
}

func TestServer_StartAfterShutdown(t *testing.T) {
	srv := newTestServer(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	select {
	case <-srv.Started():
	case err := <-done:
		t.Fatalf("server failed to start: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}

	var err error
	assert.NotPanics(t, func() { err = srv.Start(context.Background()) })
	assert.ErrorIs(t, err, ErrServerStopped)
	assert.False(t, srv.IsRunning())
	assert.NoError(t, srv.Shutdown(context.Background()))
}

func TestServer_StartWhileRunning(t *testing.T) {
	srv := newTestServer(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()
	<-srv.Started()

	err := srv.Start(context.Background())
	assert.Error(t, err)

	cancel()
	require.NoError(t, <-done)
}

func TestServer_StartListenError(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	srv := newTestServer(t, func(cfg *config.Config) {
		cfg.Server.ListenAddress = occupied.Addr().String()
	})

	err = srv.Start(context.Background())
	assert.Error(t, err)
	assert.False(t, srv.IsRunning())
}

func TestServer_ShutdownBeforeStart(t *testing.T) {
	srv := newTestServer(t, nil)
	assert.NoError(t, srv.Shutdown(context.Background()))
}
