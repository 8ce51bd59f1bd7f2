package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"partcatalog/internal/contextutil"
	"partcatalog/internal/storage"
)

// defaultRecordLimit caps the list response when no limit is given.
const defaultRecordLimit = 500

// RecordsHandler handles HTTP requests for listing extracted records.
type RecordsHandler struct {
	recordRepo storage.RecordStore
}

// NewRecordsHandler creates a new RecordsHandler.
func NewRecordsHandler(recordRepo storage.RecordStore) *RecordsHandler {
	return &RecordsHandler{recordRepo: recordRepo}
}

// RecordResponse is one classified record in the API response.
type RecordResponse struct {
	SerialNumber    string `json:"serial_number"`
	PartNumber      string `json:"part_number,omitempty"`
	NameEnglish     string `json:"name_english,omitempty"`
	NameLang1       string `json:"name_lang1,omitempty"`
	NameLang2       string `json:"name_lang2,omitempty"`
	NameLang3       string `json:"name_lang3,omitempty"`
	NameLang4       string `json:"name_lang4,omitempty"`
	NameLang5       string `json:"name_lang5,omitempty"`
	PartNumberAlt   string `json:"part_number_alt,omitempty"`
	ReferenceNumber string `json:"reference_number,omitempty"`
	AdditionalInfo  string `json:"additional_info,omitempty"`
	ExtraData       string `json:"extra_data,omitempty"`
}

// RecordsResponse is the list payload.
type RecordsResponse struct {
	Records []RecordResponse `json:"records"`
	Total   int              `json:"total"`
}

// ServeHTTP lists extracted records, optionally filtered by ?serial= and
// capped by ?limit=.
func (h *RecordsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var (
		records []*storage.PartRecord
		err     error
	)

	if serial := r.URL.Query().Get("serial"); serial != "" {
		records, err = h.recordRepo.ListBySerial(ctx, serial)
	} else {
		records, err = h.recordRepo.ListAll(ctx)
	}
	if err != nil {
		logger.ErrorContext(ctx, "failed to list records", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list records")
		return
	}

	limit := defaultRecordLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	total := len(records)
	if len(records) > limit {
		records = records[:limit]
	}

	response := RecordsResponse{
		Records: make([]RecordResponse, len(records)),
		Total:   total,
	}
	for i, rec := range records {
		response.Records[i] = RecordResponse{
			SerialNumber:    rec.SerialNumber,
			PartNumber:      rec.PartNumber,
			NameEnglish:     rec.NameEnglish,
			NameLang1:       rec.NameLang1,
			NameLang2:       rec.NameLang2,
			NameLang3:       rec.NameLang3,
			NameLang4:       rec.NameLang4,
			NameLang5:       rec.NameLang5,
			PartNumberAlt:   rec.PartNumberAlt,
			ReferenceNumber: rec.ReferenceNumber,
			AdditionalInfo:  rec.AdditionalInfo,
			ExtraData:       rec.ExtraData,
		}
	}

	writeJSON(w, http.StatusOK, response)
}

// writeJSON encodes v as the JSON response body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error payload.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
