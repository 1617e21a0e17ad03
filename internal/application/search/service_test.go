package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/ClaimScout/internal/domain/patent"
	"github.com/turtacn/ClaimScout/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/ClaimScout/internal/infrastructure/storage/memory"
	apperrors "github.com/turtacn/ClaimScout/pkg/errors"
)

// failingStore wraps the memory store and lets individual methods fail.
type failingStore struct {
	patent.CorpusStore
	listErr error
	addErr  error
}

func (f *failingStore) ListPatents(ctx context.Context) ([]*patent.Patent, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.CorpusStore.ListPatents(ctx)
}

func (f *failingStore) AddSimilarityQuery(ctx context.Context, q *patent.SimilarityQuery) (*patent.SimilarityQuery, error) {
	if f.addErr != nil {
		return nil, f.addErr
	}
	return f.CorpusStore.AddSimilarityQuery(ctx, q)
}

func newTestService(store patent.CorpusStore) Service {
	return NewService(Deps{Store: store, Logger: logging.NewNopLogger()})
}

func TestSearchEmptyTextIsValidationError(t *testing.T) {
	store := memory.NewSeededStore()
	svc := newTestService(store)

	_, err := svc.Search(context.Background(), "")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	// The ranker never ran: no audit rows.
	assert.Zero(t, store.QueryCount())
}

func TestSearchRanksSeedCorpus(t *testing.T) {
	store := memory.NewSeededStore()
	svc := newTestService(store)

	results, err := svc.Search(context.Background(), "neural network classification")
	require.NoError(t, err)
	require.Len(t, results, 5)

	// The machine-learning patent shares tokens with the query; the OCR
	// patent shares none and scores 0.
	assert.Equal(t, "US11234567", results[0].Patent.PatentNumber)
	assert.Greater(t, results[0].SimilarityScore, 0.0)

	var ocrScore float64
	found := false
	for _, r := range results {
		if r.Patent.PatentNumber == "US11345678" {
			ocrScore = r.SimilarityScore
			found = true
		}
	}
	require.True(t, found)
	assert.Equal(t, 0.0, ocrScore)

	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(t, results[i].SimilarityScore, results[i-1].SimilarityScore)
	}
}

func TestSearchPersistsOneAuditRowPerResult(t *testing.T) {
	store := memory.NewSeededStore()
	svc := newTestService(store)

	results, err := svc.Search(context.Background(), "neural network classification")
	require.NoError(t, err)

	records, err := store.FindSimilarityQueries(context.Background(), "neural network classification")
	require.NoError(t, err)
	require.Len(t, records, len(results))
	for i, rec := range records {
		assert.Equal(t, results[i].Patent.ID, rec.SimilarPatentID)
		assert.Equal(t, results[i].SimilarityScore, rec.SimilarityScore)
	}
}

func TestSearchTruncatesToTopK(t *testing.T) {
	store := memory.NewSeededStore()
	svc := NewService(Deps{Store: store, Logger: logging.NewNopLogger(), TopK: 2})

	results, err := svc.Search(context.Background(), "data processing")
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearchEmptyCorpus(t *testing.T) {
	svc := newTestService(memory.NewStore())

	results, err := svc.Search(context.Background(), "anything at all")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchStoreFailuresAreInternal(t *testing.T) {
	base := memory.NewSeededStore()

	svc := newTestService(&failingStore{CorpusStore: base, listErr: errors.New("corrupt")})
	_, err := svc.Search(context.Background(), "neural network")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeStore, apperrors.GetCode(err))

	svc = newTestService(&failingStore{CorpusStore: base, addErr: errors.New("corrupt")})
	_, err = svc.Search(context.Background(), "neural network")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeStore, apperrors.GetCode(err))
}
