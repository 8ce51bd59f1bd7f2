// Package source manages the catalog drop directories that raw dump files
// arrive in.
package source

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"partcatalog/internal/storage"
)

// Manager manages catalog configuration and provides catalog lookup and path
// resolution.
type Manager struct {
	catalogRepo storage.CatalogStore
	catalogs    map[string]storage.CatalogRecord // Cache catalogs by name
}

// NewManager creates a new source manager and registers the configured
// catalog roots, keyed by name.
func NewManager(ctx context.Context, catalogRepo storage.CatalogStore, roots map[string]string) (*Manager, error) {
	m := &Manager{
		catalogRepo: catalogRepo,
		catalogs:    make(map[string]storage.CatalogRecord),
	}

	// Deterministic registration order keeps catalog IDs stable across runs.
	names := make([]string, 0, len(roots))
	for name := range roots {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		catalog, err := catalogRepo.GetOrCreateByName(ctx, name, roots[name])
		if err != nil {
			return nil, fmt.Errorf("failed to register catalog %s: %w", name, err)
		}
		m.catalogs[name] = catalog
	}

	return m, nil
}

// CatalogByName returns the catalog record for the given catalog name.
func (m *Manager) CatalogByName(name string) (storage.CatalogRecord, error) {
	catalog, ok := m.catalogs[name]
	if !ok {
		return storage.CatalogRecord{}, fmt.Errorf("catalog not found: %s", name)
	}
	return catalog, nil
}

// AbsPath returns the absolute path for a file given its catalog ID and
// relative path.
func (m *Manager) AbsPath(catalogID int, relPath string) string {
	for _, catalog := range m.catalogs {
		if catalog.ID == catalogID {
			return filepath.Join(catalog.RootPath, relPath)
		}
	}
	// Catalog not found (should not happen in practice)
	return ""
}
