package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/ClaimScout/internal/domain/patent"
)

func TestAddPatentAssignsSequentialIDs(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	first, err := s.AddPatent(ctx, &patent.Patent{Title: "A", PatentNumber: "US1", Claims: "claims a"})
	require.NoError(t, err)
	second, err := s.AddPatent(ctx, &patent.Patent{Title: "B", PatentNumber: "US2", Claims: "claims b"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestAddPatentStoresCopy(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	in := &patent.Patent{Title: "A", PatentNumber: "US1", Claims: "claims a"}
	stored, err := s.AddPatent(ctx, in)
	require.NoError(t, err)

	in.Title = "mutated"
	got, err := s.GetPatent(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Title)
}

func TestGetPatentAbsent(t *testing.T) {
	s := NewStore()
	got, err := s.GetPatent(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetPatentByNumberFirstMatch(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	// Duplicate numbers are a logical invariant violation the store does
	// not enforce; first match in insertion order wins.
	s.AddPatent(ctx, &patent.Patent{Title: "First", PatentNumber: "US1", Claims: "x"})
	s.AddPatent(ctx, &patent.Patent{Title: "Second", PatentNumber: "US1", Claims: "y"})

	got, err := s.GetPatentByNumber(ctx, "US1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "First", got.Title)

	missing, err := s.GetPatentByNumber(ctx, "US9999999")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestListPatentsInsertionOrder(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	for _, n := range []string{"US3", "US1", "US2"} {
		s.AddPatent(ctx, &patent.Patent{Title: n, PatentNumber: n, Claims: "c"})
	}

	list, err := s.ListPatents(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "US3", list[0].PatentNumber)
	assert.Equal(t, "US1", list[1].PatentNumber)
	assert.Equal(t, "US2", list[2].PatentNumber)
}

func TestSeededStoreHasFiveSamplePatents(t *testing.T) {
	s := NewSeededStore()

	list, err := s.ListPatents(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 5)
	for i, p := range list {
		assert.Equal(t, int64(i+1), p.ID)
	}
	assert.Equal(t, "US11234567", list[0].PatentNumber)
	assert.Equal(t, "US11456789", list[4].PatentNumber)
}

func TestSimilarityQueryLogExactMatchFilter(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	s.AddSimilarityQuery(ctx, &patent.SimilarityQuery{QueryText: "neural network", SimilarPatentID: 1, SimilarityScore: 0.5})
	s.AddSimilarityQuery(ctx, &patent.SimilarityQuery{QueryText: "neural network", SimilarPatentID: 2, SimilarityScore: 0.25})
	s.AddSimilarityQuery(ctx, &patent.SimilarityQuery{QueryText: "neural network ", SimilarPatentID: 3, SimilarityScore: 0.25})

	got, err := s.FindSimilarityQueries(ctx, "neural network")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
	assert.Equal(t, 3, s.QueryCount())
}

func TestClaimAnalysisExactKeyLookup(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	stored, err := s.AddClaimAnalysis(ctx, &patent.ClaimAnalysis{
		InputText:        "a claim about neural networks",
		TechnologyDomain: "Machine Learning",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.ID)

	hit, err := s.FindClaimAnalysis(ctx, "a claim about neural networks")
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, "Machine Learning", hit.TechnologyDomain)

	// Trailing whitespace is a distinct key: no normalization.
	miss, err := s.FindClaimAnalysis(ctx, "a claim about neural networks ")
	require.NoError(t, err)
	assert.Nil(t, miss)
}

func TestCountersAreIndependentPerEntity(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	s.AddPatent(ctx, &patent.Patent{Title: "A", PatentNumber: "US1", Claims: "c"})
	q, _ := s.AddSimilarityQuery(ctx, &patent.SimilarityQuery{QueryText: "q", SimilarPatentID: 1})
	a, _ := s.AddClaimAnalysis(ctx, &patent.ClaimAnalysis{InputText: "t"})

	assert.Equal(t, int64(1), q.ID)
	assert.Equal(t, int64(1), a.ID)
}
