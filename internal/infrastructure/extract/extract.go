// Package extract provides text extraction from uploaded patent documents.
package extract

import (
	"context"

	"github.com/turtacn/ClaimScout/pkg/errors"
)

// MaxUploadBytes is the largest document upload accepted anywhere in the
// service. Checked at the HTTP boundary before extraction is attempted.
const MaxUploadBytes = 10 * 1024 * 1024

// TextExtractor turns an uploaded document into claim text suitable for
// similarity search.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte) (string, error)
}

type disabledExtractor struct{}

// NewDisabledExtractor returns the default extractor, which rejects every
// document and tells the caller to paste text instead. PDF parsing is opt-in
// via configuration.
func NewDisabledExtractor() TextExtractor {
	return disabledExtractor{}
}

func (disabledExtractor) Extract(ctx context.Context, data []byte) (string, error) {
	return "", errors.NewExtractionError(
		"Failed to extract text from PDF: PDF parsing not implemented - please paste text directly")
}
