package handlers

import (
	"net/http"

	"partcatalog/internal/contextutil"
	"partcatalog/internal/export"
	"partcatalog/internal/parse"
	"partcatalog/internal/storage"
)

// ExportHandler streams the current record table as a tabular download.
type ExportHandler struct {
	recordRepo storage.RecordStore
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(recordRepo storage.RecordStore) *ExportHandler {
	return &ExportHandler{recordRepo: recordRepo}
}

// ServeCSV streams the record table as CSV.
func (h *ExportHandler) ServeCSV(w http.ResponseWriter, r *http.Request) {
	records, ok := h.loadRecords(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="records.csv"`)
	if err := export.EncodeCSV(w, records); err != nil {
		logger := contextutil.LoggerFromContext(r.Context())
		logger.ErrorContext(r.Context(), "failed to stream csv export", "error", err)
	}
}

// ServeXLSX streams the record table as an XLSX workbook.
func (h *ExportHandler) ServeXLSX(w http.ResponseWriter, r *http.Request) {
	records, ok := h.loadRecords(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="records.xlsx"`)
	if err := export.EncodeXLSX(w, records); err != nil {
		logger := contextutil.LoggerFromContext(r.Context())
		logger.ErrorContext(r.Context(), "failed to stream xlsx export", "error", err)
	}
}

// loadRecords fetches all records and handles the empty and error cases.
// Zero records answer 404: an empty extraction produces no table.
func (h *ExportHandler) loadRecords(w http.ResponseWriter, r *http.Request) ([]parse.Record, bool) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	stored, err := h.recordRepo.ListAll(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list records for export", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list records")
		return nil, false
	}
	if len(stored) == 0 {
		writeError(w, http.StatusNotFound, "no records to export")
		return nil, false
	}

	records := make([]parse.Record, len(stored))
	for i, rec := range stored {
		records[i] = rec.ToRecord()
	}
	return records, true
}
