package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// ScannedFile represents a catalog dump file found during scanning.
type ScannedFile struct {
	CatalogID int    // Catalog ID from database
	RelPath   string // Relative path from catalog root (e.g., "2024/export-03.dat")
	AbsPath   string // Absolute file path
}

// ScanAll scans all catalog roots and returns every file carrying the given
// extension (e.g., ".dat").
func (m *Manager) ScanAll(ctx context.Context, ext string) ([]ScannedFile, error) {
	var scannedFiles []ScannedFile

	for _, catalog := range m.catalogs {
		// Check for context cancellation
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		err := filepath.Walk(catalog.RootPath, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return fmt.Errorf("failed to access path %s: %w", path, err)
			}

			if info.IsDir() {
				return nil
			}

			if filepath.Ext(path) != ext {
				return nil
			}

			relPath, err := filepath.Rel(catalog.RootPath, path)
			if err != nil {
				return fmt.Errorf("failed to compute relative path for %s: %w", path, err)
			}

			scannedFiles = append(scannedFiles, ScannedFile{
				CatalogID: catalog.ID,
				RelPath:   filepath.ToSlash(relPath),
				AbsPath:   path,
			})
			return nil
		})

		if err != nil {
			return scannedFiles, fmt.Errorf("failed to scan catalog %s: %w", catalog.Name, err)
		}
	}

	return scannedFiles, nil
}
