// Package analysis implements the claim-analysis application service: an
// exact-string cache gate in front of the external analysis generator.
package analysis

import (
	"context"
	"time"

	"github.com/turtacn/ClaimScout/internal/domain/patent"
	"github.com/turtacn/ClaimScout/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/ClaimScout/internal/infrastructure/monitoring/prometheus"
	apperrors "github.com/turtacn/ClaimScout/pkg/errors"
)

// Generator is the boundary contract for the external analysis call:
// structured analysis out, or an error. Implementations default missing or
// mistyped upstream fields before returning; callers trust a fresh result
// as-is.
type Generator interface {
	Generate(ctx context.Context, claimText string) (*patent.AnalysisResult, error)
}

// Service analyzes patent claim text, caching results by exact input text.
type Service interface {
	// Analyze returns the cached analysis for inputText, or generates,
	// persists, and returns a new one. The cache key is the literal input
	// string: no normalization, no trimming. On generator failure the
	// error propagates and nothing is cached.
	Analyze(ctx context.Context, inputText string) (*patent.AnalysisResult, error)
}

// Deps holds all dependencies of the analysis service.
type Deps struct {
	Store     patent.CorpusStore
	Generator Generator
	Logger    logging.Logger
	Metrics   *prometheus.AppMetrics
}

type service struct {
	store     patent.CorpusStore
	generator Generator
	logger    logging.Logger
	metrics   *prometheus.AppMetrics
}

// NewService creates a claim-analysis service.
func NewService(deps Deps) Service {
	logger := deps.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &service{
		store:     deps.Store,
		generator: deps.Generator,
		logger:    logger,
		metrics:   deps.Metrics,
	}
}

// Analyze checks the cache, then generates. Two concurrent calls for the same
// uncached text may both miss and both invoke the generator, producing two
// records for the key; lookups return the first match, so responses stay
// deterministic afterwards. The window is accepted rather than closed with a
// per-key in-flight lock.
func (s *service) Analyze(ctx context.Context, inputText string) (*patent.AnalysisResult, error) {
	if inputText == "" {
		return nil, apperrors.NewValidationError("text", "Patent text is required")
	}

	cached, err := s.store.FindClaimAnalysis(ctx, inputText)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeStore, "failed to query analysis cache")
	}
	if cached != nil {
		if s.metrics != nil {
			s.metrics.AnalysisCacheHitsTotal.Inc()
		}
		s.logger.Debug("analysis cache hit", logging.Int64("analysis_id", cached.ID))
		return cached.Result(), nil
	}

	if s.metrics != nil {
		s.metrics.AnalysisCacheMissesTotal.Inc()
	}

	start := time.Now()
	result, err := s.generator.Generate(ctx, inputText)
	elapsed := time.Since(start)
	if s.metrics != nil {
		s.metrics.LLMRequestDuration.Observe(elapsed.Seconds())
	}
	if err != nil {
		if s.metrics != nil {
			s.metrics.LLMRequestsTotal.WithLabelValues("error").Inc()
		}
		s.logger.Warn("claim analysis generation failed",
			logging.Err(err),
			logging.Duration("elapsed", elapsed),
		)
		// The generator's message is part of the API contract for this
		// operation, so the error passes through unwrapped.
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.LLMRequestsTotal.WithLabelValues("success").Inc()
	}

	if _, err := s.store.AddClaimAnalysis(ctx, &patent.ClaimAnalysis{
		InputText:        inputText,
		TechnologyDomain: result.TechnologyDomain,
		KeyTerms:         result.KeyTerms,
		ClaimElements:    result.ClaimElements,
		Summary:          result.Summary,
		Suggestions:      result.Suggestions,
	}); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeStore, "failed to cache analysis")
	}

	s.logger.Info("claim analysis generated",
		logging.String("technology_domain", result.TechnologyDomain),
		logging.Int("key_terms", len(result.KeyTerms)),
		logging.Duration("elapsed", elapsed),
	)
	return result, nil
}
