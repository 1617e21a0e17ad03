// Package memory provides the in-memory CorpusStore implementation. State
// lives for the process lifetime only: a restart loses all similarity and
// analysis history and reverts the corpus to the seed set.
package memory

import (
	"context"
	"sync"

	"github.com/turtacn/ClaimScout/internal/domain/patent"
)

// Store implements patent.CorpusStore over process-local maps. Surrogate IDs
// come from per-entity counters starting at 1 and are never reused.
//
// Neither derived log is ever evicted; both grow for the process lifetime.
// Evicting analysis rows would change which inputs hit the cache, so there is
// no eviction policy.
type Store struct {
	mu sync.RWMutex

	patents    map[int64]*patent.Patent
	queries    map[int64]*patent.SimilarityQuery
	analyses   map[int64]*patent.ClaimAnalysis
	nextPatent int64
	nextQuery  int64
	nextAnal   int64

	// insertion order for snapshot listing and first-match scans
	patentOrder   []int64
	queryOrder    []int64
	analysisOrder []int64
}

var _ patent.CorpusStore = (*Store)(nil)

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		patents:    make(map[int64]*patent.Patent),
		queries:    make(map[int64]*patent.SimilarityQuery),
		analyses:   make(map[int64]*patent.ClaimAnalysis),
		nextPatent: 1,
		nextQuery:  1,
		nextAnal:   1,
	}
}

// NewSeededStore creates a store pre-populated with the sample corpus.
func NewSeededStore() *Store {
	s := NewStore()
	for _, seed := range seedPatents {
		p := seed
		s.AddPatent(context.Background(), &p)
	}
	return s
}

func (s *Store) AddPatent(_ context.Context, p *patent.Patent) (*patent.Patent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *p
	stored.ID = s.nextPatent
	s.nextPatent++
	s.patents[stored.ID] = &stored
	s.patentOrder = append(s.patentOrder, stored.ID)
	return &stored, nil
}

func (s *Store) GetPatent(_ context.Context, id int64) (*patent.Patent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.patents[id], nil
}

func (s *Store) GetPatentByNumber(_ context.Context, number string) (*patent.Patent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.patentOrder {
		if p := s.patents[id]; p.PatentNumber == number {
			return p, nil
		}
	}
	return nil, nil
}

func (s *Store) ListPatents(_ context.Context) ([]*patent.Patent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*patent.Patent, 0, len(s.patentOrder))
	for _, id := range s.patentOrder {
		out = append(out, s.patents[id])
	}
	return out, nil
}

func (s *Store) AddSimilarityQuery(_ context.Context, q *patent.SimilarityQuery) (*patent.SimilarityQuery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *q
	stored.ID = s.nextQuery
	s.nextQuery++
	s.queries[stored.ID] = &stored
	s.queryOrder = append(s.queryOrder, stored.ID)
	return &stored, nil
}

func (s *Store) FindSimilarityQueries(_ context.Context, queryText string) ([]*patent.SimilarityQuery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*patent.SimilarityQuery
	for _, id := range s.queryOrder {
		if q := s.queries[id]; q.QueryText == queryText {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *Store) AddClaimAnalysis(_ context.Context, a *patent.ClaimAnalysis) (*patent.ClaimAnalysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *a
	stored.ID = s.nextAnal
	s.nextAnal++
	s.analyses[stored.ID] = &stored
	s.analysisOrder = append(s.analysisOrder, stored.ID)
	return &stored, nil
}

func (s *Store) FindClaimAnalysis(_ context.Context, inputText string) (*patent.ClaimAnalysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.analysisOrder {
		if a := s.analyses[id]; a.InputText == inputText {
			return a, nil
		}
	}
	return nil, nil
}

// AnalysisCount reports the number of cached analyses. Not part of the
// CorpusStore contract.
func (s *Store) AnalysisCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.analyses)
}

// QueryCount reports the number of similarity audit records.
func (s *Store) QueryCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.queries)
}
