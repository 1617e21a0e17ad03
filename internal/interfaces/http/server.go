package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/turtacn/ClaimScout/internal/config"
	"github.com/turtacn/ClaimScout/internal/infrastructure/monitoring/logging"
)

// Server wraps http.Server with the configured timeouts and a logged
// lifecycle.
type Server struct {
	srv     *http.Server
	router  http.Handler
	logger  logging.Logger
	timeout config.ServerConfig
}

// NewServer creates an HTTP server for the given handler.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = config.DefaultShutdownTimeout
	}
	return &Server{
		router:  handler,
		logger:  logger,
		timeout: cfg,
		srv: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}
}

// Start begins serving and blocks until the server stops. A clean shutdown
// returns nil.
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", logging.String("addr", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop drains in-flight requests and shuts the server down within the
// configured shutdown timeout.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(ctx, s.timeout.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Info("HTTP server stopped")
	return nil
}

// Handler returns the underlying route tree, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
