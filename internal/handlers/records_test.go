package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"partcatalog/internal/parse"
	"partcatalog/internal/storage"
)

// seedRecords builds a migrated store with one file and the given records.
func seedRecords(t *testing.T, records []parse.Record) *storage.RecordRepo {
	t.Helper()

	tmpDir := t.TempDir()
	db, err := storage.New(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := storage.Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	fileID := seedFile(t, db)

	repo := storage.NewRecordRepo(db)
	for i, rec := range records {
		partRecord := &storage.PartRecord{
			ID:       uuid.New().String(),
			FileID:   fileID,
			Position: i,
			Record:   rec,
		}
		if err := repo.Insert(context.Background(), partRecord); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	return repo
}

func seedFile(t *testing.T, db *sql.DB) string {
	t.Helper()

	catalogRepo := storage.NewCatalogRepo(db)
	catalog, err := catalogRepo.GetOrCreateByName(context.Background(), "test", "/tmp/test")
	if err != nil {
		t.Fatalf("GetOrCreateByName() error = %v", err)
	}

	fileRepo := storage.NewFileRepo(db)
	file := &storage.FileRecord{
		CatalogID: catalog.ID,
		RelPath:   "dump.dat",
		Hash:      "hash",
	}
	if err := fileRepo.Upsert(context.Background(), file); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	return file.ID
}

func TestRecordsHandler_ListAll(t *testing.T) {
	repo := seedRecords(t, []parse.Record{
		{SerialNumber: "1", PartNumber: "A100", NameEnglish: "Cylinder", ExtraData: "-"},
		{SerialNumber: "2", PartNumber: "B200", NameEnglish: "Valve", ExtraData: "-"},
	})

	handler := NewRecordsHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/records", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("RecordsHandler status = %v, want %v", w.Code, http.StatusOK)
	}

	var resp RecordsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp.Total != 2 {
		t.Errorf("RecordsHandler total = %d, want 2", resp.Total)
	}
	if len(resp.Records) != 2 {
		t.Fatalf("RecordsHandler records = %d, want 2", len(resp.Records))
	}
	if resp.Records[0].SerialNumber != "1" || resp.Records[0].PartNumber != "A100" {
		t.Errorf("RecordsHandler record[0] = %+v", resp.Records[0])
	}
}

func TestRecordsHandler_SerialFilter(t *testing.T) {
	repo := seedRecords(t, []parse.Record{
		{SerialNumber: "1", PartNumber: "A100", ExtraData: "-"},
		{SerialNumber: "2", PartNumber: "B200", ExtraData: "-"},
		{SerialNumber: "1", PartNumber: "C300", ExtraData: "-"},
	})

	handler := NewRecordsHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/records?serial=1", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("RecordsHandler status = %v, want %v", w.Code, http.StatusOK)
	}

	var resp RecordsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp.Total != 2 {
		t.Errorf("RecordsHandler total = %d, want 2", resp.Total)
	}
	for _, rec := range resp.Records {
		if rec.SerialNumber != "1" {
			t.Errorf("RecordsHandler filtered record serial = %s, want 1", rec.SerialNumber)
		}
	}
}

func TestRecordsHandler_Limit(t *testing.T) {
	repo := seedRecords(t, []parse.Record{
		{SerialNumber: "1", ExtraData: "-"},
		{SerialNumber: "2", ExtraData: "-"},
		{SerialNumber: "3", ExtraData: "-"},
	})

	handler := NewRecordsHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/records?limit=2", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("RecordsHandler status = %v, want %v", w.Code, http.StatusOK)
	}

	var resp RecordsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	// Total reflects the full result set, the list is capped
	if resp.Total != 3 {
		t.Errorf("RecordsHandler total = %d, want 3", resp.Total)
	}
	if len(resp.Records) != 2 {
		t.Errorf("RecordsHandler records = %d, want 2", len(resp.Records))
	}
}

func TestRecordsHandler_InvalidLimit(t *testing.T) {
	repo := seedRecords(t, nil)

	handler := NewRecordsHandler(repo)

	tests := []string{"0", "-1", "abc"}
	for _, limit := range tests {
		t.Run(limit, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/records?limit="+limit, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("RecordsHandler status = %v, want %v", w.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestRecordsHandler_EmptyStore(t *testing.T) {
	repo := seedRecords(t, nil)

	handler := NewRecordsHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/records", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("RecordsHandler status = %v, want %v", w.Code, http.StatusOK)
	}

	var resp RecordsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Total != 0 || len(resp.Records) != 0 {
		t.Errorf("RecordsHandler empty store: total = %d, records = %d", resp.Total, len(resp.Records))
	}
}
