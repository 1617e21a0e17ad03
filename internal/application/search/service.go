// Package search implements the similarity-search application service: it
// validates queries, ranks the corpus with the lexical Jaccard ranker, and
// records one audit row per returned match.
package search

import (
	"context"
	"time"

	"github.com/turtacn/ClaimScout/internal/domain/patent"
	"github.com/turtacn/ClaimScout/internal/domain/similarity"
	"github.com/turtacn/ClaimScout/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/ClaimScout/internal/infrastructure/monitoring/prometheus"
	apperrors "github.com/turtacn/ClaimScout/pkg/errors"
)

// Result pairs a corpus patent with its rounded similarity score, shaped for
// the API response.
type Result struct {
	Patent          *patent.Patent `json:"patent"`
	SimilarityScore float64        `json:"similarityScore"`
}

// Service ranks query text against the full corpus.
type Service interface {
	// Search returns at most TopK matches ordered by descending score.
	// Every returned (patent, score) pair is persisted to the similarity
	// audit log before the results are returned.
	Search(ctx context.Context, queryText string) ([]Result, error)
}

// Deps holds all dependencies of the search service.
type Deps struct {
	Store   patent.CorpusStore
	Logger  logging.Logger
	Metrics *prometheus.AppMetrics

	// TopK caps the number of returned matches; <= 0 selects the default.
	TopK int
}

type service struct {
	store   patent.CorpusStore
	logger  logging.Logger
	metrics *prometheus.AppMetrics
	topK    int
}

// NewService creates a similarity-search service.
func NewService(deps Deps) Service {
	logger := deps.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	topK := deps.TopK
	if topK <= 0 {
		topK = similarity.DefaultTopK
	}
	return &service{
		store:   deps.Store,
		logger:  logger,
		metrics: deps.Metrics,
		topK:    topK,
	}
}

func (s *service) Search(ctx context.Context, queryText string) ([]Result, error) {
	if queryText == "" {
		return nil, apperrors.NewValidationError("text", "Patent text is required")
	}

	start := time.Now()

	corpus, err := s.store.ListPatents(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeStore, "failed to load corpus")
	}

	matches := similarity.Rank(queryText, corpus, s.topK)

	results := make([]Result, 0, len(matches))
	for _, m := range matches {
		if _, err := s.store.AddSimilarityQuery(ctx, &patent.SimilarityQuery{
			QueryText:       queryText,
			SimilarPatentID: m.Patent.ID,
			SimilarityScore: m.Score,
		}); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeStore, "failed to record similarity result")
		}
		results = append(results, Result{Patent: m.Patent, SimilarityScore: m.Score})
	}

	elapsed := time.Since(start)
	if s.metrics != nil {
		s.metrics.SearchDuration.Observe(elapsed.Seconds())
		s.metrics.SearchResultCount.Observe(float64(len(results)))
	}
	s.logger.Info("similarity search complete",
		logging.Int("corpus_size", len(corpus)),
		logging.Int("results", len(results)),
		logging.Duration("elapsed", elapsed),
	)
	return results, nil
}
