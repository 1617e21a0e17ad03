package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/turtacn/ClaimScout/internal/domain/patent"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	store patent.CorpusStore
}

// NewHealthHandler creates a HealthHandler. The store is probed on readiness.
func NewHealthHandler(store patent.CorpusStore) *HealthHandler {
	return &HealthHandler{store: store}
}

// Liveness handles GET /healthz. It answers ok as long as the process serves.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness handles GET /readyz. Ready means the corpus store answers.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.store != nil {
		if _, err := h.store.ListPatents(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
