// Package parquet exports the filesystem manifest to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/huangsam/workscope/schema"
)

// ManifestRow is one scanned file in the Parquet manifest. Parquet holds a
// single row schema per file, so the manifest artifact carries only the file
// inventory; the headline metrics live in the JSON and CSV artifacts.
type ManifestRow struct {
	// GeneratedAt is when the report run produced this row
	GeneratedAt time.Time `parquet:"generated_at,snappy"`

	// PeriodLabel is the human label of the analyzed window
	PeriodLabel string `parquet:"period_label,snappy"`

	// RelativePath is the file path relative to the scan root
	RelativePath string `parquet:"relative_path,snappy"`

	// SizeBytes is the on-disk size of the file
	SizeBytes int64 `parquet:"size_bytes,snappy"`

	// Lines is the text line count (nullable, absent for binary or unreadable files)
	Lines *int64 `parquet:"lines,optional,snappy"`

	// Chars is the character count (nullable, absent for binary or unreadable files)
	Chars *int64 `parquet:"chars,optional,snappy"`

	// IsBinary marks files classified by null-byte probing
	IsBinary bool `parquet:"is_binary,snappy"`

	// LastModified is the file modification timestamp
	LastModified time.Time `parquet:"last_modified,snappy"`
}

// WriteManifest writes the report's file inventory to a Parquet file.
func WriteManifest(report *schema.Report, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[ManifestRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(ConvertFileRecords(report)); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}

// ConvertFileRecords flattens the report's snapshot into manifest rows. A
// missing snapshot yields an empty but valid Parquet file.
func ConvertFileRecords(report *schema.Report) []ManifestRow {
	if report.Filesystem == nil {
		return []ManifestRow{}
	}
	result := make([]ManifestRow, len(report.Filesystem.Files))
	for i, rec := range report.Filesystem.Files {
		result[i] = ManifestRow{
			GeneratedAt:  report.GeneratedAt,
			PeriodLabel:  report.Range.Label,
			RelativePath: rec.RelativePath,
			SizeBytes:    rec.SizeBytes,
			Lines:        rec.Lines,
			Chars:        rec.Chars,
			IsBinary:     rec.IsBinary,
			LastModified: rec.LastModified,
		}
	}
	return result
}
