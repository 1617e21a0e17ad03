package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/turtacn/ClaimScout/internal/application/analysis"
	"github.com/turtacn/ClaimScout/internal/application/search"
	"github.com/turtacn/ClaimScout/internal/domain/patent"
	"github.com/turtacn/ClaimScout/internal/infrastructure/extract"
	"github.com/turtacn/ClaimScout/internal/infrastructure/monitoring/logging"
	apperrors "github.com/turtacn/ClaimScout/pkg/errors"
)

// PatentHandler serves the similarity, analysis, and corpus endpoints.
type PatentHandler struct {
	search    search.Service
	analysis  analysis.Service
	extractor extract.TextExtractor
	store     patent.CorpusStore
	logger    logging.Logger

	maxUploadBytes int64
}

// PatentHandlerDeps holds all dependencies of the PatentHandler.
type PatentHandlerDeps struct {
	Search    search.Service
	Analysis  analysis.Service
	Extractor extract.TextExtractor
	Store     patent.CorpusStore
	Logger    logging.Logger

	// MaxUploadBytes caps document uploads; zero means the default limit.
	MaxUploadBytes int64
}

// NewPatentHandler creates a PatentHandler.
func NewPatentHandler(deps PatentHandlerDeps) *PatentHandler {
	logger := deps.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	maxUpload := deps.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = extract.MaxUploadBytes
	}
	return &PatentHandler{
		search:         deps.Search,
		analysis:       deps.Analysis,
		extractor:      deps.Extractor,
		store:          deps.Store,
		logger:         logger,
		maxUploadBytes: maxUpload,
	}
}

type textRequest struct {
	Text string `json:"text"`
}

// SimilarityResponse is the body returned by the similarity endpoints.
type SimilarityResponse struct {
	Results []search.Result `json:"results"`
}

// Search handles POST /api/similarity.
func (h *PatentHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.runSearch(w, r, req.Text)
}

// SearchUpload handles POST /api/similarity/upload: a multipart form with a
// "pdf" file field. The extracted text goes through the same search flow as
// pasted text.
func (h *PatentHandler) SearchUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "No PDF file provided")
		return
	}

	file, header, err := r.FormFile("pdf")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No PDF file provided")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if mediaType := strings.TrimSpace(strings.Split(contentType, ";")[0]); mediaType != "application/pdf" {
		writeError(w, http.StatusBadRequest, "Invalid PDF file")
		return
	}
	if header.Size > h.maxUploadBytes {
		writeError(w, http.StatusBadRequest, "Invalid PDF file")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid PDF file")
		return
	}

	text, err := h.extractor.Extract(r.Context(), data)
	if err != nil {
		h.logger.Warn("document extraction failed",
			logging.String("filename", header.Filename),
			logging.Int64("size", header.Size),
			logging.Err(err),
		)
		writeAppError(w, err)
		return
	}

	h.runSearch(w, r, text)
}

func (h *PatentHandler) runSearch(w http.ResponseWriter, r *http.Request, text string) {
	results, err := h.search.Search(r.Context(), text)
	if err != nil {
		if apperrors.IsCode(err, apperrors.CodeStore) {
			h.logger.Error("similarity search failed", logging.Err(err))
		}
		writeAppError(w, err)
		return
	}
	if results == nil {
		results = []search.Result{}
	}
	writeJSON(w, http.StatusOK, SimilarityResponse{Results: results})
}

// Analyze handles POST /api/analyze.
func (h *PatentHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.analysis.Analyze(r.Context(), req.Text)
	if err != nil {
		if apperrors.IsCode(err, apperrors.CodeStore) {
			h.logger.Error("claim analysis failed", logging.Err(err))
		}
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// ListPatents handles GET /api/patents.
func (h *PatentHandler) ListPatents(w http.ResponseWriter, r *http.Request) {
	patents, err := h.store.ListPatents(r.Context())
	if err != nil {
		h.logger.Error("failed to list patents", logging.Err(err))
		writeError(w, http.StatusInternalServerError, "Failed to retrieve patents")
		return
	}
	if patents == nil {
		patents = []*patent.Patent{}
	}
	writeJSON(w, http.StatusOK, patents)
}
