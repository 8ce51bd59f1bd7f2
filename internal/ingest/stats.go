package ingest

import (
	"context"
	"fmt"
	"math"
	"sort"

	"partcatalog/internal/parse"
	"partcatalog/internal/storage"
)

// ExtractionStats contains statistics about the current extraction.
type ExtractionStats struct {
	// FilesIngested is the number of dump files in the store.
	FilesIngested int `json:"files_ingested"`
	// RecordsExtracted is the total number of classified records.
	RecordsExtracted int `json:"records_extracted"`
	// SerialOnlyRecords is the number of records with no fields beyond the
	// serial number.
	SerialOnlyRecords int `json:"serial_only_records"`
	// RecordsWithExtraData is the number of records whose Extra Data field
	// holds real leftover tokens rather than the placeholder.
	RecordsWithExtraData int `json:"records_with_extra_data"`
	// NameSlotStats summarizes how many of the six name slots are populated
	// per record.
	NameSlotStats NameSlotStats `json:"name_slot_stats"`
}

// NameSlotStats contains statistics about populated name slots per record.
type NameSlotStats struct {
	Min  int     `json:"min"`
	Max  int     `json:"max"`
	Mean float64 `json:"mean"`
	P95  int     `json:"p95"`
}

// CoverageStats computes extraction statistics from the database.
func (p *Pipeline) CoverageStats(ctx context.Context) (*ExtractionStats, error) {
	recordRepo, ok := p.recordRepo.(*storage.RecordRepo)
	if !ok {
		return nil, fmt.Errorf("recordRepo is not *storage.RecordRepo, cannot query stats")
	}

	db := recordRepo.DB()
	if db == nil {
		return nil, fmt.Errorf("recordRepo.DB() returned nil")
	}

	stats := &ExtractionStats{}

	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM files").Scan(&stats.FilesIngested); err != nil {
		return nil, fmt.Errorf("failed to count files: %w", err)
	}

	records, err := recordRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	stats.RecordsExtracted = len(records)

	nameCounts := make([]int, 0, len(records))
	for _, rec := range records {
		if serialOnly(rec) {
			stats.SerialOnlyRecords++
		}
		if rec.ExtraData != "" && rec.ExtraData != parse.ExtraDataPlaceholder {
			stats.RecordsWithExtraData++
		}
		nameCounts = append(nameCounts, countNames(rec))
	}

	stats.NameSlotStats = computeNameSlotStats(nameCounts)
	return stats, nil
}

// serialOnly reports whether a record carries nothing but its serial number.
func serialOnly(rec *storage.PartRecord) bool {
	row := rec.Row()
	for _, field := range row[1:] {
		if field != "" {
			return false
		}
	}
	return true
}

// countNames returns the number of populated name slots in a record.
func countNames(rec *storage.PartRecord) int {
	count := 0
	for _, name := range []string{
		rec.NameEnglish, rec.NameLang1, rec.NameLang2,
		rec.NameLang3, rec.NameLang4, rec.NameLang5,
	} {
		if name != "" {
			count++
		}
	}
	return count
}

// computeNameSlotStats computes min, max, mean, and p95 from slot counts.
func computeNameSlotStats(counts []int) NameSlotStats {
	if len(counts) == 0 {
		return NameSlotStats{}
	}

	sorted := make([]int, len(counts))
	copy(sorted, counts)
	sort.Ints(sorted)

	sum := 0
	for _, count := range counts {
		sum += count
	}
	mean := float64(sum) / float64(len(counts))

	p95Index := int(math.Ceil(float64(len(sorted)) * 0.95))
	if p95Index >= len(sorted) {
		p95Index = len(sorted) - 1
	}

	return NameSlotStats{
		Min:  sorted[0],
		Max:  sorted[len(sorted)-1],
		Mean: math.Round(mean*100) / 100, // Round to 2 decimal places
		P95:  sorted[p95Index],
	}
}
