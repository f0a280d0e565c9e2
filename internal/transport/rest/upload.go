// Package rest provides the HTTP endpoints of the Beatvard backend.
package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/beatvard/beatvard-backend/internal/domain/ingest"
)

// Ingestor is the slice of the ingestion service this handler needs.
type Ingestor interface {
	Ingest(ctx context.Context, req *ingest.UploadRequest) (*ingest.IngestionResult, error)
}

// UploadHandler serves the beat upload endpoint.
type UploadHandler struct {
	service Ingestor
}

// NewUploadHandler creates the handler around an ingestion service.
func NewUploadHandler(service Ingestor) *UploadHandler {
	return &UploadHandler{service: service}
}

// uploadResponse is the success envelope the web client expects.
type uploadResponse struct {
	Success  bool            `json:"success"`
	BeatID   string          `json:"beatId"`
	Metadata ingest.Metadata `json:"metadata"`
	Files    uploadFiles     `json:"files"`
	Message  string          `json:"message"`
}

type uploadFiles struct {
	Audio ingest.ObjectLocation  `json:"audio"`
	Cover *ingest.ObjectLocation `json:"cover"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ServeHTTP handles POST upload requests. OPTIONS preflight is answered by
// the CORS middleware before this handler runs; any other method is refused.
func (h *UploadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"})
		return
	}

	requestID := uuid.New().String()

	var req ingest.UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Str("requestId", requestID).Err(err).Msg("Unparseable upload body")
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	result, err := h.service.Ingest(r.Context(), &req)
	if err != nil {
		h.writeError(w, requestID, err)
		return
	}

	log.Info().
		Str("requestId", requestID).
		Str("beatId", result.AssetID).
		Msg("Upload accepted")

	writeJSON(w, http.StatusOK, uploadResponse{
		Success:  true,
		BeatID:   result.AssetID,
		Metadata: result.Metadata,
		Files:    uploadFiles{Audio: result.Audio, Cover: result.Cover},
		Message:  "Beat uploaded successfully",
	})
}

// writeError maps the ingestion error taxonomy onto HTTP statuses:
// validation failures are the client's fault (400, naming the fields);
// payload decode and storage failures surface as 500 with a detail string.
func (h *UploadHandler) writeError(w http.ResponseWriter, requestID string, err error) {
	var vErr *ingest.ValidationError
	if errors.As(err, &vErr) {
		log.Warn().Str("requestId", requestID).Strs("fields", vErr.Fields).Msg("Upload validation failed")
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: vErr.Error()})
		return
	}

	log.Error().Str("requestId", requestID).Err(err).Msg("Upload processing failed")
	writeJSON(w, http.StatusInternalServerError, errorResponse{
		Error:   "Failed to process upload",
		Details: err.Error(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}
