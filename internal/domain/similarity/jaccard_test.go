package similarity

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/ClaimScout/internal/domain/patent"
)

func TestTokenize(t *testing.T) {
	set := Tokenize("A Neural Network FOR the data classification network")

	// "A", "FOR", "the" are <= 3 chars and dropped; "data" survives at 4.
	assert.Len(t, set, 4)
	assert.Contains(t, set, "neural")
	assert.Contains(t, set, "network")
	assert.Contains(t, set, "data")
	assert.Contains(t, set, "classification")
	assert.NotContains(t, set, "for")
}

func TestTokenizeEmpty(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("a an the for i of"))
}

func TestJaccard(t *testing.T) {
	a := Tokenize("neural network classification")
	b := Tokenize("neural network training")

	// intersection {neural, network} = 2, union = 4
	assert.InDelta(t, 0.5, Jaccard(a, b), 1e-9)
}

func TestJaccardIdenticalSets(t *testing.T) {
	a := Tokenize("machine learning model optimization")
	assert.Equal(t, 1.0, Jaccard(a, Tokenize("machine learning model optimization")))
}

func TestJaccardDisjointSets(t *testing.T) {
	a := Tokenize("neural network classification")
	b := Tokenize("optical character recognition")
	assert.Equal(t, 0.0, Jaccard(a, b))
}

func TestJaccardBothEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Jaccard(Tokenize(""), Tokenize("the a for")))
}

func newCorpus(claims ...string) []*patent.Patent {
	corpus := make([]*patent.Patent, len(claims))
	for i, c := range claims {
		corpus[i] = &patent.Patent{
			ID:           int64(i + 1),
			Title:        fmt.Sprintf("Patent %d", i+1),
			PatentNumber: fmt.Sprintf("US%07d", i+1),
			Claims:       c,
		}
	}
	return corpus
}

func TestRankOrderingAndBounds(t *testing.T) {
	corpus := newCorpus(
		"neural network model training inference",
		"optical character recognition scanning",
		"neural network classification scoring",
	)

	matches := Rank("neural network classification", corpus, 10)
	require.Len(t, matches, 3)

	for i, m := range matches {
		assert.GreaterOrEqual(t, m.Score, 0.0)
		assert.LessOrEqual(t, m.Score, 1.0)
		if i > 0 {
			assert.LessOrEqual(t, m.Score, matches[i-1].Score)
		}
	}

	// The classification patent shares 3 of 5 tokens; the OCR patent none.
	assert.Equal(t, int64(3), matches[0].Patent.ID)
	assert.Equal(t, int64(2), matches[2].Patent.ID)
	assert.Equal(t, 0.0, matches[2].Score)
}

func TestRankIdenticalClaimsScoresOne(t *testing.T) {
	corpus := newCorpus("neural network classification scoring")
	matches := Rank("neural network classification scoring", corpus, 10)
	require.Len(t, matches, 1)
	assert.Equal(t, 1.0, matches[0].Score)
}

func TestRankTiesPreserveCorpusOrder(t *testing.T) {
	// Both corpus entries have the same score against the query.
	corpus := newCorpus(
		"neural network alpha",
		"neural network bravo",
	)
	matches := Rank("neural network", corpus, 10)
	require.Len(t, matches, 2)
	assert.Equal(t, matches[0].Score, matches[1].Score)
	assert.Equal(t, int64(1), matches[0].Patent.ID)
	assert.Equal(t, int64(2), matches[1].Patent.ID)
}

func TestRankTruncatesToK(t *testing.T) {
	corpus := newCorpus(
		"neural network one", "neural network two", "neural network three",
		"neural network four", "neural network five",
	)
	matches := Rank("neural network", corpus, 2)
	assert.Len(t, matches, 2)
}

func TestRankDefaultK(t *testing.T) {
	claims := make([]string, 15)
	for i := range claims {
		claims[i] = "neural network claims"
	}
	matches := Rank("neural network", newCorpus(claims...), 0)
	assert.Len(t, matches, DefaultTopK)
}

func TestRankEmptyCorpus(t *testing.T) {
	matches := Rank("neural network", nil, 10)
	assert.Empty(t, matches)
}

func TestRankOrdersOnFullPrecisionScores(t *testing.T) {
	// 4 shared tokens over unions of 12 and 13: full-precision scores
	// 0.3333… and 0.3076…, rounded to 0.33 and 0.31 in the result.
	corpus := newCorpus(
		"claim token1 token2 token3 token4 alpha beta gamma delta epsilon zeta1 eta1",
		"claim token1 token2 token3 token4 alpha beta gamma delta epsilon zeta2 eta2 theta2",
	)
	matches := Rank("claim token1 token2 token3", corpus, 10)
	require.Len(t, matches, 2)
	assert.Equal(t, int64(1), matches[0].Patent.ID)
	assert.Equal(t, 0.33, matches[0].Score)
	assert.Equal(t, 0.31, matches[1].Score)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 0.33, Round2(1.0/3.0))
	assert.Equal(t, 0.67, Round2(2.0/3.0))
	assert.Equal(t, 1.0, Round2(1.0))
	assert.Equal(t, 0.0, Round2(0.0))
}
