package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_catalog_store.go -package=mocks partcatalog/internal/storage CatalogStore

import (
	"context"
	"database/sql"
	"fmt"
)

// CatalogStore defines the interface for catalog storage operations.
type CatalogStore interface {
	// GetOrCreateByName gets an existing catalog by name, or creates it if
	// it doesn't exist.
	GetOrCreateByName(ctx context.Context, name, rootPath string) (CatalogRecord, error)
}

// CatalogRepo provides methods for catalog operations.
// It implements the CatalogStore interface.
type CatalogRepo struct {
	db *sql.DB
}

// NewCatalogRepo creates a new CatalogRepo.
func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

// GetOrCreateByName gets an existing catalog by name, or creates it if it
// doesn't exist. The stored root path is updated when the configured path
// moved.
func (r *CatalogRepo) GetOrCreateByName(ctx context.Context, name, rootPath string) (CatalogRecord, error) {
	var catalog CatalogRecord
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, root_path FROM catalogs WHERE name = ?",
		name,
	).Scan(&catalog.ID, &catalog.Name, &catalog.RootPath)

	if err == nil {
		if catalog.RootPath != rootPath {
			if _, err := r.db.ExecContext(ctx,
				"UPDATE catalogs SET root_path = ? WHERE id = ?",
				rootPath, catalog.ID,
			); err != nil {
				return CatalogRecord{}, fmt.Errorf("failed to update catalog root path: %w", err)
			}
			catalog.RootPath = rootPath
		}
		return catalog, nil
	}

	if err != sql.ErrNoRows {
		return CatalogRecord{}, fmt.Errorf("failed to query catalog: %w", err)
	}

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO catalogs (name, root_path) VALUES (?, ?)",
		name, rootPath,
	)
	if err != nil {
		return CatalogRecord{}, fmt.Errorf("failed to insert catalog: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return CatalogRecord{}, fmt.Errorf("failed to get catalog id: %w", err)
	}

	return CatalogRecord{ID: int(id), Name: name, RootPath: rootPath}, nil
}
