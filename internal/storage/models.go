package storage

import (
	"time"

	"partcatalog/internal/parse"
)

// CatalogRecord represents a named catalog drop directory in the database.
type CatalogRecord struct {
	ID        int
	Name      string
	RootPath  string
	CreatedAt time.Time
}

// FileRecord represents one ingested catalog dump file.
type FileRecord struct {
	ID        string // UUID
	CatalogID int    // Foreign key to catalogs.id
	RelPath   string // Relative path from catalog root
	Hash      string // SHA256 hex string of file content
	UpdatedAt time.Time
}

// PartRecord is one classified record row as stored, carrying the full
// twelve-field schema plus its provenance.
type PartRecord struct {
	ID       string // UUID
	FileID   string // Foreign key to files.id
	Position int    // Chunk discovery order within the file (starts at 0)
	parse.Record
}

// ToRecord returns the embedded twelve-field record for tabular export.
func (p *PartRecord) ToRecord() parse.Record {
	return p.Record
}
