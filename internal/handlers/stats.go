package handlers

import (
	"net/http"

	"partcatalog/internal/contextutil"
	"partcatalog/internal/ingest"
)

// StatsHandler handles HTTP requests for extraction statistics.
type StatsHandler struct {
	pipeline *ingest.Pipeline
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(pipeline *ingest.Pipeline) *StatsHandler {
	return &StatsHandler{pipeline: pipeline}
}

// ServeHTTP reports coverage statistics over the stored extraction.
func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	stats, err := h.pipeline.CoverageStats(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to compute stats", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
