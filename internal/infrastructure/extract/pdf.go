package extract

import (
	"bytes"
	"context"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/turtacn/ClaimScout/pkg/errors"
)

type pdfExtractor struct{}

// NewPDFExtractor returns an extractor that parses real PDF content. Enabled
// by the pdf.enabled config flag; the disabled extractor stays the default.
func NewPDFExtractor() TextExtractor {
	return pdfExtractor{}
}

func (pdfExtractor) Extract(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.NewExtractionError("Failed to extract text from PDF: " + err.Error())
	}

	var buf bytes.Buffer
	numPages := r.NumPage()
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", errors.NewExtractionError("Failed to extract text from PDF: " + err.Error())
		}
		buf.WriteString(text)
		if i < numPages {
			buf.WriteByte('\n')
		}
	}

	out := strings.TrimSpace(buf.String())
	if out == "" {
		return "", errors.NewExtractionError("Failed to extract text from PDF: document contains no text")
	}
	return out, nil
}
