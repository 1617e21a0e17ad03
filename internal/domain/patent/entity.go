// Package patent defines the ClaimScout corpus data model: reference patents,
// similarity-query audit records, and cached claim analyses. All business
// rules that concern these entities live here; persistence is handled by the
// CorpusStore implementations in the infrastructure layer.
package patent

import (
	"strings"

	"github.com/turtacn/ClaimScout/pkg/errors"
)

// Patent is a reference document in the corpus. Patents are created once at
// process start (or via AddPatent), never mutated, never deleted.
type Patent struct {
	// ID is a surrogate identifier assigned on insertion, starting at 1.
	ID int64 `json:"id"`

	Title string `json:"title"`

	// PatentNumber is unique across the corpus. Uniqueness is a logical
	// invariant; the store does not enforce it on insert, matching the
	// reference data set which is curated upstream.
	PatentNumber string `json:"patentNumber"`

	Abstract string `json:"abstract,omitempty"`

	// Claims is the primary text compared during similarity ranking.
	Claims string `json:"claims"`

	// FiledDate is free-form ("2022-03-15"); no date arithmetic is done on it.
	FiledDate string `json:"filedDate,omitempty"`
	Inventors string `json:"inventors,omitempty"`
	Assignee  string `json:"assignee,omitempty"`
}

// Validate checks the invariants required before inserting a patent.
func (p *Patent) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return errors.NewValidationError("title", "title is required")
	}
	if strings.TrimSpace(p.PatentNumber) == "" {
		return errors.NewValidationError("patentNumber", "patent number is required")
	}
	if strings.TrimSpace(p.Claims) == "" {
		return errors.NewValidationError("claims", "claims text is required")
	}
	return nil
}

// SimilarityQuery is an append-only audit record of one (query, result) pair
// returned from a similarity search.
type SimilarityQuery struct {
	ID int64 `json:"id"`

	// QueryText is the raw input text, stored verbatim.
	QueryText string `json:"queryText"`

	// SimilarPatentID references a Patent by ID. It may dangle if the
	// referenced patent were ever removed, which it never is.
	SimilarPatentID int64 `json:"similarPatentId"`

	// SimilarityScore is in [0,1], rounded to 2 decimals before storage.
	SimilarityScore float64 `json:"similarityScore"`
}

// ClaimAnalysis is a cached AI analysis result keyed by the exact input text.
// For a given InputText the store holds at most one record under normal
// operation; records are never updated or evicted.
type ClaimAnalysis struct {
	ID int64 `json:"id"`

	// InputText is the cache key. Exact string match, not normalized: two
	// inputs differing by one whitespace character are distinct keys.
	InputText string `json:"inputText"`

	TechnologyDomain string   `json:"technologyDomain,omitempty"`
	KeyTerms         []string `json:"keyTerms"`
	ClaimElements    int      `json:"claimElements,omitempty"`
	Summary          string   `json:"summary,omitempty"`
	Suggestions      []string `json:"suggestions"`
}

// Fallback values applied to absent analysis fields on the cache-hit path and
// by the generator's own defaulting of upstream output.
const (
	DefaultTechnologyDomain = "Unknown"
	DefaultSummary          = "No summary available"
)

// AnalysisResult is the shaped analysis returned to callers: every field is
// populated, falling back to the documented defaults.
type AnalysisResult struct {
	TechnologyDomain string   `json:"technologyDomain"`
	KeyTerms         []string `json:"keyTerms"`
	ClaimElements    int      `json:"claimElements"`
	Summary          string   `json:"summary"`
	Suggestions      []string `json:"suggestions"`
}

// Result converts a stored record to an AnalysisResult, substituting the
// defined fallback for any absent field.
func (a *ClaimAnalysis) Result() *AnalysisResult {
	res := &AnalysisResult{
		TechnologyDomain: a.TechnologyDomain,
		KeyTerms:         a.KeyTerms,
		ClaimElements:    a.ClaimElements,
		Summary:          a.Summary,
		Suggestions:      a.Suggestions,
	}
	if res.TechnologyDomain == "" {
		res.TechnologyDomain = DefaultTechnologyDomain
	}
	if res.KeyTerms == nil {
		res.KeyTerms = []string{}
	}
	if res.Summary == "" {
		res.Summary = DefaultSummary
	}
	if res.Suggestions == nil {
		res.Suggestions = []string{}
	}
	return res
}
