package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"bfhl-hq/bfhl/pkg/api"
	"bfhl-hq/bfhl/pkg/api/handlers"
	"bfhl-hq/bfhl/pkg/api/middleware"
	"bfhl-hq/bfhl/pkg/config"
	"bfhl-hq/bfhl/pkg/telemetry"
	"bfhl-hq/bfhl/pkg/telemetry/health"
)

// ErrServerStopped is returned by Start on a server that has already been
// started once. A Server is not reusable after Start.
var ErrServerStopped = errors.New("server has already been started")

// Server is the bfhl HTTP server.
type Server struct {
	config    *config.Config
	telemetry *telemetry.Telemetry
	logger    *slog.Logger

	bfhl    *handlers.BFHLHandler
	handler http.Handler

	httpServer *http.Server
	listener   net.Listener
	certs      *CertificateReloader
	stopCerts  context.CancelFunc

	started      chan struct{}
	shutdownOnce sync.Once
	mu           sync.RWMutex
	isRunning    bool
}

// New creates a server for cfg. Routes and middleware are built once here;
// Handler exposes them for in-process use.
func New(cfg *config.Config, tel *telemetry.Telemetry) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if tel == nil {
		return nil, errors.New("telemetry is nil")
	}

	bfhl, err := handlers.NewBFHLHandler(cfg, tel.Metrics, tel.Tracer, tel.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create bfhl handler: %w", err)
	}

	s := &Server{
		config:    cfg,
		telemetry: tel,
		logger:    tel.Logger,
		bfhl:      bfhl,
		started:   make(chan struct{}),
	}

	tel.Health.RegisterCheck("config", func(context.Context) error {
		if s.bfhl.Settings() == nil {
			return errors.New("no configuration loaded")
		}
		return nil
	})

	s.handler = s.setupRoutes()
	return s, nil
}

// Start listens on the configured address and serves until ctx is
// cancelled, SIGINT or SIGTERM is received, or the listener fails. It then
// shuts down gracefully. Start may succeed only once per Server; later
// calls return ErrServerStopped. A failed listen does not count as a start.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return fmt.Errorf("server is already running")
	}
	select {
	case <-s.started:
		s.mu.Unlock()
		return ErrServerStopped
	default:
	}

	ln, err := s.listen()
	if err != nil {
		s.mu.Unlock()
		return err
	}

	s.listener = ln
	s.httpServer = &http.Server{
		Handler:        s.handler,
		ReadTimeout:    s.config.Server.ReadTimeout,
		WriteTimeout:   s.config.Server.WriteTimeout,
		IdleTimeout:    s.config.Server.IdleTimeout,
		MaxHeaderBytes: s.config.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn),
	}
	s.isRunning = true
	close(s.started)
	s.mu.Unlock()

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("starting bfhl server",
			"address", ln.Addr().String(),
			"tls_enabled", s.config.Server.TLS.Enabled,
			"paths", s.config.API.Paths,
		)

		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-ctx.Done():
		s.logger.Info("context cancelled, initiating shutdown")
		return s.Shutdown(context.Background())
	case sig := <-sigChan:
		s.logger.Info("received shutdown signal", "signal", sig.String())
		return s.Shutdown(context.Background())
	case err := <-errChan:
		_ = s.Shutdown(context.Background())
		return err
	}
}

// listen opens the TCP listener, wrapping it in TLS when enabled.
func (s *Server) listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.config.Server.ListenAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", s.config.Server.ListenAddress, err)
	}

	tlsCfg := s.config.Server.TLS
	if !tlsCfg.Enabled {
		return ln, nil
	}

	certs, err := NewCertificateReloader(tlsCfg.CertFile, tlsCfg.KeyFile, tlsCfg.ReloadInterval, s.logger)
	if err != nil {
		_ = ln.Close()
		return nil, fmt.Errorf("failed to configure TLS: %w", err)
	}
	tlsConfig, err := NewTLSConfig(tlsCfg, certs)
	if err != nil {
		_ = ln.Close()
		return nil, fmt.Errorf("failed to configure TLS: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.certs = certs
	s.stopCerts = cancel
	go certs.Run(ctx)

	return tls.NewListener(ln, tlsConfig), nil
}

// Shutdown marks the service as draining and gracefully stops the HTTP
// server within the configured shutdown timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	if !s.IsRunning() {
		return nil
	}

	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.telemetry.Health.SetDraining()
		s.logger.Info("initiating graceful shutdown", "timeout", s.config.Server.ShutdownTimeout.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, s.config.Server.ShutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("error during server shutdown", "error", err)
			shutdownErr = fmt.Errorf("server shutdown error: %w", err)
		}
		if s.stopCerts != nil {
			s.stopCerts()
		}

		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()

		s.logger.Info("bfhl server stopped")
	})

	return shutdownErr
}

// setupRoutes configures HTTP routes and the middleware chain. Rate limiting
// and the request timeout apply to the classification routes only, so
// probes and scrapes are never throttled.
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()
	tel := s.telemetry

	apiHandler := middleware.Chain(s.bfhl,
		middleware.RateLimitMiddleware(s.config.Server.RateLimit, tel.Metrics),
		middleware.TimeoutMiddleware(s.config.Server.RequestTimeout),
	)
	for _, path := range s.config.API.Paths {
		mux.Handle(path, apiHandler)
	}

	if s.config.Telemetry.Metrics.Enabled && tel.Metrics != nil {
		mux.Handle(s.config.Telemetry.Metrics.Path, tel.Metrics.Handler())
	}

	if s.config.Telemetry.Health.Enabled {
		health.Register(mux, s.config.Telemetry.Health, tel.Health,
			tel.Build.Version, tel.Build.Commit, tel.Build.BuildTime)
	}

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		api.WriteStatus(w, http.StatusNotFound)
	})

	return middleware.Chain(mux,
		middleware.RecoveryMiddleware(tel.Metrics),
		middleware.RequestIDMiddleware,
		middleware.TracingMiddleware(tel.Tracer),
		middleware.LoggingMiddleware(s.logger, tel.Metrics),
		middleware.CORSMiddleware(s.config.Server.CORS),
	)
}

// IsRunning returns true if the server is running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// Started is closed once the listener is open.
func (s *Server) Started() <-chan struct{} {
	return s.started
}

// Addr returns the listener address, or "" before Start.
func (s *Server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Handler returns the configured HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}
