package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_file_store.go -package=mocks partcatalog/internal/storage FileStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// FileStore defines the interface for ingested-file storage operations.
type FileStore interface {
	// GetByCatalogAndPath gets a file by catalog ID and relative path.
	// Returns nil and ErrNotFound if not found.
	GetByCatalogAndPath(ctx context.Context, catalogID int, relPath string) (*FileRecord, error)
	// Upsert inserts a new file or updates an existing one.
	Upsert(ctx context.Context, file *FileRecord) error
}

// FileRepo provides methods for file operations.
// It implements the FileStore interface.
type FileRepo struct {
	db *sql.DB
}

// NewFileRepo creates a new FileRepo.
func NewFileRepo(db *sql.DB) *FileRepo {
	return &FileRepo{db: db}
}

// GetByCatalogAndPath gets a file by catalog ID and relative path.
// Returns nil and ErrNotFound if not found.
func (r *FileRepo) GetByCatalogAndPath(ctx context.Context, catalogID int, relPath string) (*FileRecord, error) {
	var file FileRecord
	var updatedAtStr string

	err := r.db.QueryRowContext(ctx,
		"SELECT id, catalog_id, rel_path, hash, updated_at FROM files WHERE catalog_id = ? AND rel_path = ?",
		catalogID, relPath,
	).Scan(&file.ID, &file.CatalogID, &file.RelPath, &file.Hash, &updatedAtStr)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query file: %w", err)
	}

	// Parse updated_at DATETIME string
	file.UpdatedAt, err = time.Parse("2006-01-02 15:04:05", updatedAtStr)
	if err != nil {
		// Try alternative format (SQLite might use different format)
		file.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse updated_at timestamp: %w", err)
		}
	}

	return &file, nil
}

// Upsert inserts a new file or updates an existing one.
// If the file doesn't exist (by catalog_id and rel_path), generates a new
// UUID. If it exists, updates hash and updated_at while preserving the ID.
func (r *FileRepo) Upsert(ctx context.Context, file *FileRecord) error {
	existing, err := r.GetByCatalogAndPath(ctx, file.CatalogID, file.RelPath)
	if err != nil && err != ErrNotFound {
		return fmt.Errorf("failed to check existing file: %w", err)
	}

	if existing != nil {
		file.ID = existing.ID
		_, err := r.db.ExecContext(ctx,
			"UPDATE files SET hash = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
			file.Hash, file.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update file: %w", err)
		}
		return nil
	}

	if file.ID == "" {
		file.ID = uuid.New().String()
	}
	_, err = r.db.ExecContext(ctx,
		"INSERT INTO files (id, catalog_id, rel_path, hash) VALUES (?, ?, ?, ?)",
		file.ID, file.CatalogID, file.RelPath, file.Hash,
	)
	if err != nil {
		return fmt.Errorf("failed to insert file: %w", err)
	}
	return nil
}
