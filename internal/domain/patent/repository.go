package patent

import "context"

// CorpusStore defines the persistence contract for the patent corpus and its
// two derived result logs. An in-memory implementation and a future durable
// implementation are interchangeable behind this interface.
//
// All Add methods assign the next surrogate ID for the entity type and return
// the stored value. IDs are per-entity-type, monotonically increasing, never
// reused, starting at 1.
type CorpusStore interface {
	// AddPatent stores a new patent. Never fails for the in-memory store;
	// the error return exists for durable implementations.
	AddPatent(ctx context.Context, p *Patent) (*Patent, error)

	// GetPatent returns the patent with the given ID, or nil if absent.
	GetPatent(ctx context.Context, id int64) (*Patent, error)

	// GetPatentByNumber returns the first patent with the given number in
	// insertion order, or nil if absent.
	GetPatentByNumber(ctx context.Context, number string) (*Patent, error)

	// ListPatents returns a snapshot of the full corpus in insertion order.
	ListPatents(ctx context.Context) ([]*Patent, error)

	// AddSimilarityQuery appends one audit record. The log is append-only
	// and grows unboundedly for the process lifetime.
	AddSimilarityQuery(ctx context.Context, q *SimilarityQuery) (*SimilarityQuery, error)

	// FindSimilarityQueries returns all audit records whose query text
	// exactly matches queryText, in insertion order.
	FindSimilarityQueries(ctx context.Context, queryText string) ([]*SimilarityQuery, error)

	// AddClaimAnalysis stores a cached analysis. Callers are expected to
	// check FindClaimAnalysis first; the store itself does not deduplicate.
	AddClaimAnalysis(ctx context.Context, a *ClaimAnalysis) (*ClaimAnalysis, error)

	// FindClaimAnalysis returns the first record whose input text exactly
	// matches inputText, or nil if absent.
	FindClaimAnalysis(ctx context.Context, inputText string) (*ClaimAnalysis, error)
}
