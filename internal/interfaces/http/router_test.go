package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/ClaimScout/internal/application/analysis"
	"github.com/turtacn/ClaimScout/internal/application/search"
	"github.com/turtacn/ClaimScout/internal/domain/patent"
	"github.com/turtacn/ClaimScout/internal/infrastructure/extract"
	"github.com/turtacn/ClaimScout/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/ClaimScout/internal/infrastructure/storage/memory"
	"github.com/turtacn/ClaimScout/internal/interfaces/http/handlers"
	"github.com/turtacn/ClaimScout/internal/interfaces/http/middleware"
)

type staticGenerator struct{}

func (staticGenerator) Generate(ctx context.Context, claimText string) (*patent.AnalysisResult, error) {
	return &patent.AnalysisResult{
		TechnologyDomain: "Machine Learning",
		KeyTerms:         []string{},
		Summary:          "summary",
		Suggestions:      []string{},
	}, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	store := memory.NewSeededStore()
	metrics := prometheus.NewAppMetrics("claimscout_router_test")

	patentHandler := handlers.NewPatentHandler(handlers.PatentHandlerDeps{
		Search:    search.NewService(search.Deps{Store: store}),
		Analysis:  analysis.NewService(analysis.Deps{Store: store, Generator: staticGenerator{}}),
		Extractor: extract.NewDisabledExtractor(),
		Store:     store,
	})

	return NewRouter(RouterConfig{
		PatentHandler: patentHandler,
		HealthHandler: handlers.NewHealthHandler(store),
		CORS:          middleware.CORS(middleware.DefaultCORSConfig()),
		Metrics:       metrics,
	})
}

func TestRouterServesAllEndpoints(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"health", http.MethodGet, "/healthz", "", http.StatusOK},
		{"readiness", http.MethodGet, "/readyz", "", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", "", http.StatusOK},
		{"patents", http.MethodGet, "/api/patents", "", http.StatusOK},
		{"patents v1", http.MethodGet, "/api/v1/patents", "", http.StatusOK},
		{"similarity", http.MethodPost, "/api/similarity", `{"text":"neural network"}`, http.StatusOK},
		{"similarity v1", http.MethodPost, "/api/v1/similarity", `{"text":"neural network"}`, http.StatusOK},
		{"similarity empty", http.MethodPost, "/api/similarity", `{"text":""}`, http.StatusBadRequest},
		{"analyze", http.MethodPost, "/api/analyze", `{"text":"a claim"}`, http.StatusOK},
		{"analyze v1", http.MethodPost, "/api/v1/analyze", `{"text":"a claim"}`, http.StatusOK},
		{"unknown route", http.MethodGet, "/api/nothing", "", http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req *http.Request
			if tc.body != "" {
				req = httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tc.method, tc.path, nil)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestRouterAppliesCORSHeaders(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/similarity", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouterPatentsPayload(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/patents", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var patents []patent.Patent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &patents))
	assert.Len(t, patents, 5)
}
