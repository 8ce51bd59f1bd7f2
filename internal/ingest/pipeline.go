// Package ingest orchestrates the extraction of part records from raw
// catalog dump files into SQLite and the tabular exports.
package ingest

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"partcatalog/internal/contextutil"
	"partcatalog/internal/export"
	"partcatalog/internal/parse"
	"partcatalog/internal/source"
	"partcatalog/internal/storage"
)

// Pipeline orchestrates the ingestion of catalog dump files.
type Pipeline struct {
	sources    *source.Manager
	fileRepo   storage.FileStore
	recordRepo storage.RecordStore
	tokenizer  *parse.Tokenizer
	sourceExt  string
	exportDir  string
	exportXLSX bool
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	sources *source.Manager,
	fileRepo storage.FileStore,
	recordRepo storage.RecordStore,
	sourceExt string,
	exportDir string,
	exportXLSX bool,
) *Pipeline {
	return &Pipeline{
		sources:    sources,
		fileRepo:   fileRepo,
		recordRepo: recordRepo,
		tokenizer:  parse.NewTokenizer(),
		sourceExt:  sourceExt,
		exportDir:  exportDir,
		exportXLSX: exportXLSX,
	}
}

// IngestFile ingests a single catalog dump file.
// It checks if the file has changed (via hash), parses it into records, and
// replaces the file's stored records in SQLite.
func (p *Pipeline) IngestFile(ctx context.Context, catalogID int, relPath string) error {
	logger := contextutil.LoggerFromContext(ctx)

	absPath := p.sources.AbsPath(catalogID, relPath)
	if absPath == "" {
		return fmt.Errorf("failed to resolve absolute path for catalog %d, relPath %s", catalogID, relPath)
	}

	content, err := os.ReadFile(absPath)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", absPath, err)
	}

	hash := sha256.Sum256(content)
	hashHex := fmt.Sprintf("%x", hash)

	existingFile, err := p.fileRepo.GetByCatalogAndPath(ctx, catalogID, relPath)
	if err != nil && err != storage.ErrNotFound {
		return fmt.Errorf("failed to check existing file: %w", err)
	}

	// Skip re-ingesting if hash matches
	if existingFile != nil && existingFile.Hash == hashHex {
		logger.DebugContext(ctx, "skipping unchanged file", "rel_path", relPath, "hash", hashHex)
		return nil
	}

	// Parse: tokenize, segment, classify. The parse layer never errors;
	// malformed chunks degrade into misclassified fields.
	tokens := p.tokenizer.Tokenize(content)
	chunks := parse.Segment(tokens)
	records := make([]parse.Record, 0, len(chunks))
	for _, chunk := range chunks {
		records = append(records, parse.Classify(chunk))
	}

	// Generate or reuse file ID
	var fileID string
	if existingFile != nil {
		fileID = existingFile.ID
	} else {
		fileID = uuid.New().String()
	}

	fileRecord := &storage.FileRecord{
		ID:        fileID,
		CatalogID: catalogID,
		RelPath:   relPath,
		Hash:      hashHex,
	}
	if err := p.fileRepo.Upsert(ctx, fileRecord); err != nil {
		return fmt.Errorf("failed to upsert file: %w", err)
	}

	// Replace any previous extraction of this file
	if existingFile != nil {
		if err := p.recordRepo.DeleteByFile(ctx, fileID); err != nil {
			return fmt.Errorf("failed to delete old records: %w", err)
		}
	}

	for i, rec := range records {
		partRecord := &storage.PartRecord{
			ID:       uuid.New().String(),
			FileID:   fileID,
			Position: i,
			Record:   rec,
		}
		if err := p.recordRepo.Insert(ctx, partRecord); err != nil {
			return fmt.Errorf("failed to insert record: %w", err)
		}
	}

	logger.InfoContext(ctx, "ingested file",
		"rel_path", relPath, "tokens", len(tokens), "records", len(records))
	return nil
}

// IngestAll scans all catalogs and ingests every dump file, then refreshes
// the tabular exports. Errors for individual files are logged but don't stop
// the run.
func (p *Pipeline) IngestAll(ctx context.Context) (*RunSummary, error) {
	logger := contextutil.LoggerFromContext(ctx)

	scannedFiles, err := p.sources.ScanAll(ctx, p.sourceExt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan catalogs: %w", err)
	}

	logger.InfoContext(ctx, "starting ingest", "total_files", len(scannedFiles))

	summary := &RunSummary{FilesFound: len(scannedFiles)}

	for _, file := range scannedFiles {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		if err := p.IngestFile(ctx, file.CatalogID, file.RelPath); err != nil {
			summary.FilesFailed++
			logger.ErrorContext(ctx, "failed to ingest file", "rel_path", file.RelPath, "error", err)
			continue
		}
		summary.FilesIngested++
	}

	if err := p.writeExports(ctx, summary); err != nil {
		return summary, err
	}

	logger.InfoContext(ctx, "ingest completed",
		"total_files", summary.FilesFound,
		"success", summary.FilesIngested,
		"errors", summary.FilesFailed,
		"records", summary.RecordsExported)

	if summary.FilesFailed > 0 {
		return summary, fmt.Errorf("ingest completed with %d errors", summary.FilesFailed)
	}
	return summary, nil
}

// writeExports rewrites the CSV (and optionally XLSX) exports from the
// current store contents. Zero records suppress the files entirely.
func (p *Pipeline) writeExports(ctx context.Context, summary *RunSummary) error {
	logger := contextutil.LoggerFromContext(ctx)

	stored, err := p.recordRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list records for export: %w", err)
	}

	records := make([]parse.Record, len(stored))
	for i, rec := range stored {
		records[i] = rec.ToRecord()
	}
	summary.RecordsExported = len(records)

	csvPath := filepath.Join(p.exportDir, "records.csv")
	switch err := export.WriteCSV(csvPath, records); err {
	case nil:
		logger.InfoContext(ctx, "wrote export", "path", csvPath, "records", len(records))
	case export.ErrNoRecords:
		logger.WarnContext(ctx, "no records to export, skipping export files")
		return nil
	default:
		return fmt.Errorf("failed to write csv export: %w", err)
	}

	if p.exportXLSX {
		xlsxPath := filepath.Join(p.exportDir, "records.xlsx")
		if err := export.WriteXLSX(xlsxPath, records); err != nil {
			return fmt.Errorf("failed to write xlsx export: %w", err)
		}
		logger.InfoContext(ctx, "wrote export", "path", xlsxPath, "records", len(records))
	}

	return nil
}

// RunSummary reports the outcome of one full ingest run.
type RunSummary struct {
	FilesFound      int `json:"files_found"`
	FilesIngested   int `json:"files_ingested"`
	FilesFailed     int `json:"files_failed"`
	RecordsExported int `json:"records_exported"`
}
