// Package outwriter has output and writer logic for report artifacts.
package outwriter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/huangsam/workscope/internal/contract"
	"github.com/huangsam/workscope/internal/htmlreport"
	"github.com/huangsam/workscope/internal/parquet"
	"github.com/huangsam/workscope/schema"
)

// artifactTimestamp is embedded in generated filenames so concurrent runs
// against the same output directory never clobber each other.
const artifactTimestamp = "20060102-150405"

// RenderResult records the outcome of one format's render attempt.
type RenderResult struct {
	Format schema.OutputMode
	Path   string
	Err    error
}

// RenderResults aggregates per-format outcomes for the whole run.
type RenderResults []RenderResult

// Err returns a single error naming every failed format, or nil when all
// requested artifacts were written.
func (rs RenderResults) Err() error {
	var failed []string
	for _, r := range rs {
		if r.Err != nil {
			failed = append(failed, fmt.Sprintf("%s (%v)", r.Format, r.Err))
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return fmt.Errorf("rendering stage failed for: %s", strings.Join(failed, "; "))
}

// WriteReport renders the assembled report once per requested format. Each
// format renders independently; one failure never stops the others.
func WriteReport(report *schema.Report, cfg *contract.Config) RenderResults {
	results := make(RenderResults, 0, len(cfg.Formats))
	for _, format := range cfg.Formats {
		path, err := artifactPath(report, cfg, format)
		if err == nil {
			err = renderTo(report, cfg, format, path)
		}
		results = append(results, RenderResult{Format: format, Path: path, Err: err})
	}
	return results
}

// renderTo dispatches a single format to its renderer.
func renderTo(report *schema.Report, cfg *contract.Config, format schema.OutputMode, path string) error {
	switch format {
	case schema.JSONOut:
		return writeJSONReport(report, path)
	case schema.CSVOut:
		return writeCSVReport(report, path)
	case schema.HTMLOut:
		return htmlreport.Write(report, cfg.CommitLimit, path)
	case schema.ParquetOut:
		return parquet.WriteManifest(report, path)
	default:
		return writeTextReport(report, cfg.CommitLimit, path)
	}
}

// artifactPath picks the real output path for a format. The extension always
// comes from the format, even when the user supplied an explicit file path.
func artifactPath(report *schema.Report, cfg *contract.Config, format schema.OutputMode) (string, error) {
	if cfg.OutputFile != "" {
		path := cfg.OutputFile
		if ext := filepath.Ext(path); ext != format.Extension() {
			path = strings.TrimSuffix(path, ext) + format.Extension()
		}
		return path, nil
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create output directory %q: %w", cfg.OutputDir, err)
	}
	name := fmt.Sprintf("workscope_%s_%s%s",
		strings.ToLower(strings.ReplaceAll(report.Range.Label, " ", "-")),
		report.GeneratedAt.Format(artifactTimestamp),
		format.Extension())
	return filepath.Join(cfg.OutputDir, name), nil
}

// closeArtifact closes an artifact handle, leaving the shared stdout open.
func closeArtifact(f *os.File) {
	if f != os.Stdout {
		_ = f.Close()
	}
}

// rangeStamp formats a range bound for display, tolerating the unbounded
// zero start used by the all-time period.
func rangeStamp(t time.Time) string {
	if t.IsZero() {
		return "repository start"
	}
	return t.Format("2006-01-02")
}
