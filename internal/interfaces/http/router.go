// Package http wires the HTTP route tree and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/turtacn/ClaimScout/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/ClaimScout/internal/interfaces/http/handlers"
	"github.com/turtacn/ClaimScout/internal/interfaces/http/middleware"
)

// RouterConfig aggregates the handlers and middleware needed to build the
// complete route tree.
type RouterConfig struct {
	PatentHandler *handlers.PatentHandler
	HealthHandler *handlers.HealthHandler

	CORS           func(http.Handler) http.Handler
	RequestLogging func(http.Handler) http.Handler

	Metrics     *prometheus.AppMetrics
	MetricsPath string
}

// NewRouter constructs the HTTP route tree. The four API operations are
// served both at their original /api paths and under /api/v1 for clients
// that pin a version.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if cfg.CORS != nil {
		r.Use(cfg.CORS)
	}
	if cfg.RequestLogging != nil {
		r.Use(cfg.RequestLogging)
	}
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	if cfg.HealthHandler != nil {
		r.Get("/healthz", cfg.HealthHandler.Liveness)
		r.Get("/readyz", cfg.HealthHandler.Readiness)
	}

	if cfg.Metrics != nil {
		path := cfg.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.Handle(path, cfg.Metrics.Handler())
	}

	r.Route("/api", func(api chi.Router) {
		registerPatentRoutes(api, cfg.PatentHandler)
		api.Route("/v1", func(v1 chi.Router) {
			registerPatentRoutes(v1, cfg.PatentHandler)
		})
	})

	return r
}

func registerPatentRoutes(r chi.Router, h *handlers.PatentHandler) {
	if h == nil {
		return
	}
	r.Post("/similarity", h.Search)
	r.Post("/similarity/upload", h.SearchUpload)
	r.Post("/analyze", h.Analyze)
	r.Get("/patents", h.ListPatents)
}
