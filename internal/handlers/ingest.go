package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"partcatalog/internal/contextutil"
	"partcatalog/internal/ingest"
)

// IngestHandler handles HTTP requests for triggering a re-ingest.
type IngestHandler struct {
	pipeline *ingest.Pipeline
}

// NewIngestHandler creates a new IngestHandler.
func NewIngestHandler(pipeline *ingest.Pipeline) *IngestHandler {
	return &IngestHandler{pipeline: pipeline}
}

// IngestResponse represents the response from the ingest endpoint.
type IngestResponse struct {
	RunID   string             `json:"run_id"`
	Status  string             `json:"status"`
	Summary *ingest.RunSummary `json:"summary,omitempty"`
}

// ServeHTTP runs a full ingest of all configured catalogs and reports the
// outcome. Unchanged files are skipped by hash, so repeat calls are cheap.
func (h *IngestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	runID := uuid.New().String()
	ctx := contextutil.WithRunID(r.Context(), runID)
	logger := contextutil.LoggerFromContext(ctx)

	summary, err := h.pipeline.IngestAll(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "ingest run failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, IngestResponse{
			RunID:   runID,
			Status:  "failed",
			Summary: summary,
		})
		return
	}

	writeJSON(w, http.StatusOK, IngestResponse{
		RunID:   runID,
		Status:  "completed",
		Summary: summary,
	})
}
