package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_record_store.go -package=mocks partcatalog/internal/storage RecordStore

import (
	"context"
	"database/sql"
	"fmt"
)

// recordColumns is the column list shared by every record query.
const recordColumns = `id, file_id, position, serial_number, part_number,
	name_english, name_lang1, name_lang2, name_lang3, name_lang4, name_lang5,
	part_number_alt, reference_number, additional_info, extra_data`

// RecordStore defines the interface for part record storage operations.
type RecordStore interface {
	// Insert inserts a single part record into the database.
	// The record.ID must be set (UUID) before calling this method.
	Insert(ctx context.Context, rec *PartRecord) error
	// DeleteByFile deletes all records for a given file ID.
	DeleteByFile(ctx context.Context, fileID string) error
	// ListAll returns every record ordered by file and position.
	ListAll(ctx context.Context) ([]*PartRecord, error)
	// ListBySerial returns the records with the given serial number.
	ListBySerial(ctx context.Context, serial string) ([]*PartRecord, error)
	// Count returns the total number of stored records.
	Count(ctx context.Context) (int, error)
}

// RecordRepo provides methods for part record operations.
// It implements the RecordStore interface.
type RecordRepo struct {
	db *sql.DB
}

// NewRecordRepo creates a new RecordRepo.
func NewRecordRepo(db *sql.DB) *RecordRepo {
	return &RecordRepo{db: db}
}

// DB returns the underlying database handle, for stats queries.
func (r *RecordRepo) DB() *sql.DB {
	return r.db
}

// Insert inserts a single part record into the database.
// The record.ID must be set (UUID) before calling this method.
func (r *RecordRepo) Insert(ctx context.Context, rec *PartRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO records (`+recordColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.FileID, rec.Position,
		rec.SerialNumber, rec.PartNumber,
		rec.NameEnglish, rec.NameLang1, rec.NameLang2,
		rec.NameLang3, rec.NameLang4, rec.NameLang5,
		rec.PartNumberAlt, rec.ReferenceNumber,
		rec.AdditionalInfo, rec.ExtraData,
	)
	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}
	return nil
}

// DeleteByFile deletes all records for a given file ID.
// Used when re-ingesting a file to remove its previous extraction.
func (r *RecordRepo) DeleteByFile(ctx context.Context, fileID string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM records WHERE file_id = ?", fileID)
	if err != nil {
		return fmt.Errorf("failed to delete records by file: %w", err)
	}
	return nil
}

// ListAll returns every record ordered by file and position, preserving
// chunk discovery order within each file.
func (r *RecordRepo) ListAll(ctx context.Context) ([]*PartRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+recordColumns+" FROM records ORDER BY file_id, position",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	return scanRecords(rows)
}

// ListBySerial returns the records with the given serial number.
// Returns an empty slice if none exist (not an error).
func (r *RecordRepo) ListBySerial(ctx context.Context, serial string) ([]*PartRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+recordColumns+" FROM records WHERE serial_number = ? ORDER BY file_id, position",
		serial,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query records by serial: %w", err)
	}
	return scanRecords(rows)
}

// Count returns the total number of stored records.
func (r *RecordRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM records").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

// scanRecords drains a record query into PartRecord values.
func scanRecords(rows *sql.Rows) ([]*PartRecord, error) {
	defer func() {
		_ = rows.Close()
	}()

	var records []*PartRecord
	for rows.Next() {
		var rec PartRecord
		if err := rows.Scan(
			&rec.ID, &rec.FileID, &rec.Position,
			&rec.SerialNumber, &rec.PartNumber,
			&rec.NameEnglish, &rec.NameLang1, &rec.NameLang2,
			&rec.NameLang3, &rec.NameLang4, &rec.NameLang5,
			&rec.PartNumberAlt, &rec.ReferenceNumber,
			&rec.AdditionalInfo, &rec.ExtraData,
		); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return records, nil
}
