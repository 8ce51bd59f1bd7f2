package storage

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"

	"partcatalog/internal/parse"
)

// setupRecordTest builds a migrated database with one catalog and one file,
// returning the file ID for record rows.
func setupRecordTest(t *testing.T) (*sql.DB, string) {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := tmpDir + "/test.db"

	db, err := New(dbPath)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	catalogRepo := NewCatalogRepo(db)
	catalog, err := catalogRepo.GetOrCreateByName(context.Background(), "test", "/tmp/test")
	if err != nil {
		t.Fatalf("GetOrCreateByName() error = %v", err)
	}

	fileRepo := NewFileRepo(db)
	file := &FileRecord{
		CatalogID: catalog.ID,
		RelPath:   "dump.dat",
		Hash:      "hash",
	}
	if err := fileRepo.Upsert(context.Background(), file); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	return db, file.ID
}

func makePartRecord(fileID string, position int, serial, partNumber string) *PartRecord {
	return &PartRecord{
		ID:       uuid.New().String(),
		FileID:   fileID,
		Position: position,
		Record: parse.Record{
			SerialNumber: serial,
			PartNumber:   partNumber,
		},
	}
}

func TestRecordRepo_InsertAndListAll(t *testing.T) {
	db, fileID := setupRecordTest(t)
	repo := NewRecordRepo(db)

	records := []*PartRecord{
		makePartRecord(fileID, 0, "1", "A100"),
		makePartRecord(fileID, 1, "2", "B200"),
		makePartRecord(fileID, 2, "3", "C300"),
	}
	for _, rec := range records {
		if err := repo.Insert(context.Background(), rec); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	got, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("ListAll() count = %d, want 3", len(got))
	}

	// Order by position within the file
	for i, rec := range got {
		if rec.Position != i {
			t.Errorf("ListAll()[%d].Position = %d, want %d", i, rec.Position, i)
		}
	}
	if got[0].SerialNumber != "1" || got[2].SerialNumber != "3" {
		t.Errorf("ListAll() order wrong: first serial %s, last serial %s", got[0].SerialNumber, got[2].SerialNumber)
	}
}

func TestRecordRepo_RoundTripsAllFields(t *testing.T) {
	db, fileID := setupRecordTest(t)
	repo := NewRecordRepo(db)

	rec := &PartRecord{
		ID:       uuid.New().String(),
		FileID:   fileID,
		Position: 0,
		Record: parse.Record{
			SerialNumber:    "7",
			PartNumber:      "X9",
			NameEnglish:     "Cylinder",
			NameLang1:       "Vérin",
			NameLang2:       "Zylinder",
			NameLang3:       "Cilindro",
			NameLang4:       "Cilindro",
			NameLang5:       "Cilinder",
			PartNumberAlt:   "12.34.56",
			ReferenceNumber: "12345678",
			AdditionalInfo:  "L=200",
			ExtraData:       "left___over",
		},
	}
	if err := repo.Insert(context.Background(), rec); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	got, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("ListAll() count = %d, want 1", len(got))
	}
	if got[0].Record != rec.Record {
		t.Errorf("ListAll() record = %+v, want %+v", got[0].Record, rec.Record)
	}
}

func TestRecordRepo_ListBySerial(t *testing.T) {
	db, fileID := setupRecordTest(t)
	repo := NewRecordRepo(db)

	for i, serial := range []string{"1", "2", "1"} {
		rec := makePartRecord(fileID, i, serial, "P")
		if err := repo.Insert(context.Background(), rec); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	got, err := repo.ListBySerial(context.Background(), "1")
	if err != nil {
		t.Fatalf("ListBySerial() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("ListBySerial() count = %d, want 2", len(got))
	}

	// Missing serial returns empty, not an error
	none, err := repo.ListBySerial(context.Background(), "999")
	if err != nil {
		t.Fatalf("ListBySerial() error = %v", err)
	}
	if len(none) != 0 {
		t.Errorf("ListBySerial() count = %d, want 0", len(none))
	}
}

func TestRecordRepo_DeleteByFile(t *testing.T) {
	db, fileID := setupRecordTest(t)
	repo := NewRecordRepo(db)

	for i := 0; i < 3; i++ {
		rec := makePartRecord(fileID, i, "1", "P")
		if err := repo.Insert(context.Background(), rec); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	if err := repo.DeleteByFile(context.Background(), fileID); err != nil {
		t.Fatalf("DeleteByFile() error = %v", err)
	}

	count, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 0 {
		t.Errorf("Count() after DeleteByFile = %d, want 0", count)
	}
}

func TestRecordRepo_Count(t *testing.T) {
	db, fileID := setupRecordTest(t)
	repo := NewRecordRepo(db)

	count, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 0 {
		t.Errorf("Count() on empty store = %d, want 0", count)
	}

	for i := 0; i < 5; i++ {
		rec := makePartRecord(fileID, i, "1", "P")
		if err := repo.Insert(context.Background(), rec); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	count, err = repo.Count(context.Background())
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 5 {
		t.Errorf("Count() = %d, want 5", count)
	}
}
