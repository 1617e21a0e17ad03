package client

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
)

// Patent is a reference patent from the corpus.
type Patent struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	PatentNumber string `json:"patentNumber"`
	Abstract     string `json:"abstract,omitempty"`
	Claims       string `json:"claims"`
	FiledDate    string `json:"filedDate,omitempty"`
	Inventors    string `json:"inventors,omitempty"`
	Assignee     string `json:"assignee,omitempty"`
}

// SimilarityResult pairs a corpus patent with its similarity to the query.
type SimilarityResult struct {
	Patent          Patent  `json:"patent"`
	SimilarityScore float64 `json:"similarityScore"`
}

// SimilarityResponse is the body returned by the similarity endpoints.
type SimilarityResponse struct {
	Results []SimilarityResult `json:"results"`
}

// ClaimAnalysis is the structured analysis of a patent claim.
type ClaimAnalysis struct {
	TechnologyDomain string   `json:"technologyDomain"`
	KeyTerms         []string `json:"keyTerms"`
	ClaimElements    int      `json:"claimElements"`
	Summary          string   `json:"summary"`
	Suggestions      []string `json:"suggestions"`
}

type textRequest struct {
	Text string `json:"text"`
}

// SearchSimilar runs a similarity search for the given claim text.
func (c *Client) SearchSimilar(ctx context.Context, text string) (*SimilarityResponse, error) {
	var resp SimilarityResponse
	if err := c.do(ctx, http.MethodPost, "/api/similarity", textRequest{Text: text}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SearchSimilarPDF uploads a PDF document and runs a similarity search over
// its extracted text.
func (c *Client) SearchSimilarPDF(ctx context.Context, filename string, content []byte) (*SimilarityResponse, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="pdf"; filename=%q`, filename))
	header.Set("Content-Type", "application/pdf")
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("client: failed to build upload: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return nil, fmt.Errorf("client: failed to build upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("client: failed to build upload: %w", err)
	}

	var resp SimilarityResponse
	if _, err := c.doOnce(ctx, http.MethodPost, "/api/similarity/upload",
		&buf, writer.FormDataContentType(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Analyze requests an AI analysis of the given claim text.
func (c *Client) Analyze(ctx context.Context, text string) (*ClaimAnalysis, error) {
	var resp ClaimAnalysis
	if err := c.do(ctx, http.MethodPost, "/api/analyze", textRequest{Text: text}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListPatents returns the full reference corpus.
func (c *Client) ListPatents(ctx context.Context) ([]Patent, error) {
	var patents []Patent
	if err := c.do(ctx, http.MethodGet, "/api/patents", nil, &patents); err != nil {
		return nil, err
	}
	return patents, nil
}
