// Package similarity implements the lexical similarity ranking used by the
// similarity-search pipeline: bag-of-words Jaccard over significant tokens.
// Everything in this package is pure; callers are responsible for persisting
// results.
package similarity

import (
	"math"
	"sort"
	"strings"

	"github.com/turtacn/ClaimScout/internal/domain/patent"
)

// minTokenLength is the exclusive lower bound on token length. Tokens of
// length <= 3 are discarded, which removes short stop-words like "a", "the",
// "for" without a stop-word list.
const minTokenLength = 3

// DefaultTopK is the number of matches returned when the caller does not
// specify k.
const DefaultTopK = 10

// Match pairs a corpus patent with its similarity score against a query.
type Match struct {
	Patent *patent.Patent
	// Score is the Jaccard index in [0,1], rounded to 2 decimal places.
	// Ranking happens on the full-precision score before rounding.
	Score float64
}

// Tokenize lower-cases text, splits it on whitespace, and returns the set of
// unique tokens longer than three characters.
func Tokenize(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		if len(tok) > minTokenLength {
			set[tok] = struct{}{}
		}
	}
	return set
}

// Jaccard computes |a ∩ b| / |a ∪ b| over two token sets. When both sets are
// empty the index is undefined; 0 is returned to avoid division by zero.
func Jaccard(a, b map[string]struct{}) float64 {
	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}
	intersection := 0
	for tok := range small {
		if _, ok := large[tok]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// Rank scores every corpus patent's claims text against queryText and returns
// the top k matches ordered by descending score. Ties preserve corpus order
// (stable sort). Returned scores are rounded to 2 decimals; the sort itself
// uses full precision. k <= 0 selects DefaultTopK. An empty corpus yields an
// empty result, not an error.
//
// Callers validate that queryText is non-empty; Rank does not re-validate.
func Rank(queryText string, corpus []*patent.Patent, k int) []Match {
	if k <= 0 {
		k = DefaultTopK
	}

	queryTokens := Tokenize(queryText)

	matches := make([]Match, 0, len(corpus))
	for _, p := range corpus {
		score := Jaccard(queryTokens, Tokenize(p.Claims))
		matches = append(matches, Match{Patent: p, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > k {
		matches = matches[:k]
	}
	for i := range matches {
		matches[i].Score = Round2(matches[i].Score)
	}
	return matches
}

// Round2 rounds a score to 2 decimal places.
func Round2(score float64) float64 {
	return math.Round(score*100) / 100
}
