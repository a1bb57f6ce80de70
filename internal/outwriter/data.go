package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/workscope/internal/contract"
	"github.com/huangsam/workscope/schema"
)

// writeJSONReport serializes the full report. This artifact is lossless and
// doubles as a baseline input for a later run.
func writeJSONReport(report *schema.Report, path string) error {
	f, err := contract.SelectOutputFile(path)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", path, err)
	}
	defer closeArtifact(f)
	return writeJSON(f, report)
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVReport writes the flat headline metric rows. Lossy by design: the
// commit listing and manifest are not included.
func writeCSVReport(report *schema.Report, path string) error {
	f, err := contract.SelectOutputFile(path)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", path, err)
	}
	defer closeArtifact(f)

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"metric", "value"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range headlineRows(report) {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	return nil
}

// headlineRows flattens the report into metric/value pairs.
func headlineRows(report *schema.Report) [][]string {
	itoa := func(v int) string { return strconv.Itoa(v) }
	rows := [][]string{
		{"generated_at", report.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"period", report.Range.Label},
		{"range_start", rangeStamp(report.Range.Start)},
		{"range_end", rangeStamp(report.Range.End)},
		{"commit_count", itoa(report.Git.CommitCount)},
		{"files_changed", itoa(report.Git.FilesChanged)},
		{"raw_lines_added", itoa(report.Git.RawLinesAdded)},
		{"raw_lines_removed", itoa(report.Git.RawLinesRemoved)},
		{"lines_added", itoa(report.Git.LinesAdded)},
		{"lines_modified", itoa(report.Git.LinesModified)},
		{"lines_removed", itoa(report.Git.LinesRemoved)},
		{"estimated_minutes", strconv.FormatInt(report.Effort.Minutes, 10)},
	}
	if fs := report.Filesystem; fs != nil {
		rows = append(rows,
			[]string{"fs_total_files", itoa(fs.TotalFiles)},
			[]string{"fs_total_folders", itoa(fs.TotalFolders)},
			[]string{"fs_total_links", itoa(fs.TotalLinks)},
			[]string{"fs_sum_lines", strconv.FormatInt(fs.SumLines, 10)},
			[]string{"fs_sum_chars", strconv.FormatInt(fs.SumChars, 10)},
			[]string{"fs_sum_size_bytes", strconv.FormatInt(fs.SumSizeBytes, 10)},
		)
	}
	if d := report.Baseline; d != nil {
		rows = append(rows,
			[]string{"delta_commit_count", strconv.FormatInt(d.CommitCount, 10)},
			[]string{"delta_estimated_minutes", strconv.FormatInt(d.EstimatedMinutes, 10)},
		)
	}
	return rows
}
