package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"
)

// Config configures the API server.
type Config struct {
	Addr            string
	RateLimit       int           // requests per client per RateWindow; 0 disables limiting
	RateWindow      time.Duration // defaults to one minute
	ShutdownTimeout time.Duration // defaults to ten seconds
	Logger          *slog.Logger
}

// Server is the calculator HTTP API.
type Server struct {
	cfg     Config
	logger  *slog.Logger
	limiter *RateLimiter
	http    *http.Server
}

// New builds a server from cfg. Call Close or ListenAndServe to release it.
func New(cfg Config) *Server {
	if cfg.RateWindow <= 0 {
		cfg.RateWindow = time.Minute
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{cfg: cfg, logger: logger}
	if cfg.RateLimit > 0 {
		s.limiter = NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	}
	s.http = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler returns the routed, middleware-wrapped API.
func (s *Server) Handler() http.Handler {
	h := NewHandler(s.logger)

	limited := func(fn http.HandlerFunc) http.Handler {
		if s.limiter == nil {
			return fn
		}
		return RateLimitMiddleware(s.limiter, fn)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", h.Healthz)
	mux.Handle("/v1/emi", limited(h.CalculateEMI))
	mux.Handle("/v1/principal", limited(h.CalculatePrincipal))
	mux.Handle("/v1/tvm", limited(h.EvaluateTVM))
	return LoggingMiddleware(s.logger, mux)
}

// Serve accepts connections on l until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	defer s.Close()

	serverErr := make(chan error, 1)
	go func() {
		s.logger.Info("API listening", "addr", l.Addr().String())
		if err := s.http.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("server exited")
	return nil
}

// ListenAndServe listens on cfg.Addr and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	l, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		s.Close()
		return err
	}
	return s.Serve(ctx, l)
}

// Close stops the rate limiter's background work.
func (s *Server) Close() {
	if s.limiter != nil {
		s.limiter.Stop()
	}
}
