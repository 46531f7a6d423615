// Package httpapi exposes the extraction core over plain JSON-over-HTTP, in
// place of the RPC surface the core is otherwise orthogonal to.
package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docparse/internal/apperrors"
	"github.com/joseph-ayodele/docparse/internal/core/confidence"
	"github.com/joseph-ayodele/docparse/internal/core/extract"
	"github.com/joseph-ayodele/docparse/internal/entity"
	"github.com/joseph-ayodele/docparse/internal/repository"
)

// Service wires the core parser and confidence engine to an HTTP surface,
// persisting each extraction via store.
type Service struct {
	store  repository.ExtractionStore
	logger *slog.Logger
}

func NewService(store repository.ExtractionStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// Routes returns the service's handler tree.
func (s *Service) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/extract", s.handleExtract)
	mux.HandleFunc("GET /v1/extractions", s.handleList)
	mux.HandleFunc("GET /v1/extractions/{id}", s.handleGet)
	return mux
}

type extractRequest struct {
	RawText       string  `json:"raw_text"`
	DocumentType  string  `json:"document_type,omitempty"`
	Language      string  `json:"language,omitempty"`
	OCRConfidence float64 `json:"ocr_confidence,omitempty"`
}

type extractResponse struct {
	ID         uuid.UUID        `json:"id"`
	Record     extract.Record   `json:"record"`
	Confidence confidence.Score `json:"confidence"`
}

func (s *Service) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, apperrors.InvalidArgumentErrorf("decode request body: %v", err))
		return
	}

	v := apperrors.NewValidator()
	v.Field("raw_text", req.RawText, apperrors.Required)
	if err := apperrors.ValidateAndReturnError(v); err != nil {
		s.writeError(w, err)
		return
	}

	opts := extract.Options{
		DocumentType: extract.DocumentType(req.DocumentType),
		Language:     req.Language,
	}
	record := extract.Parse(req.RawText, opts)
	score := confidence.Compute(record, req.RawText, req.OCRConfidence, record.Metadata.DocumentType)
	record.Metadata.ConfidenceScore = score.Overall
	if err := extract.ValidateRecord(record); err != nil {
		s.logger.Warn("assembled record failed schema validation", "error", err)
	}

	e := &entity.Extraction{
		ID:        uuid.New(),
		RawText:   req.RawText,
		Record:    record,
		Score:     score,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Save(r.Context(), e); err != nil {
		s.logger.Error("failed to save extraction", "error", err)
		s.writeError(w, apperrors.InternalErrorf("save extraction: %v", err))
		return
	}

	s.writeJSON(w, http.StatusCreated, extractResponse{ID: e.ID, Record: record, Confidence: score})
}

func (s *Service) handleGet(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		s.writeError(w, apperrors.InvalidArgumentError("id must be a UUID"))
		return
	}
	e, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.logger.Error("failed to get extraction", "id", id, "error", err)
		s.writeError(w, apperrors.InternalErrorf("get extraction: %v", err))
		return
	}
	if e == nil {
		s.writeError(w, apperrors.NotFoundError("extraction not found"))
		return
	}
	s.writeJSON(w, http.StatusOK, e)
}

func (s *Service) handleList(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := strings.TrimSpace(r.URL.Query().Get("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	extractions, err := s.store.List(r.Context(), limit)
	if err != nil {
		s.logger.Error("failed to list extractions", "error", err)
		s.writeError(w, apperrors.InternalErrorf("list extractions: %v", err))
		return
	}
	s.writeJSON(w, http.StatusOK, extractions)
}

func (s *Service) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Service) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := err.Error()
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		status = appErr.Status
		message = appErr.Message
	}
	s.writeJSON(w, status, map[string]string{"error": message})
}
