package core

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/huangsam/workscope/schema"
)

// Assemble merges the extraction and scan outputs into the report model and
// runs both effort models. The snapshot may be nil when the filesystem scan
// failed; the baseline may be nil when no prior report was supplied.
func Assemble(dr schema.DateRange, activity schema.GitActivity, snapshot *schema.FilesystemSnapshot, catalog []schema.CatalogEntry, baseline *schema.Report) schema.Report {
	report := schema.Report{
		GeneratedAt:          time.Now(),
		Range:                dr,
		Git:                  activity,
		Filesystem:           snapshot,
		Effort:               Estimate(activity),
		GitComparison:        EstimateAlternative(GitBasis(activity), catalog),
		FilesystemComparison: EstimateAlternative(FilesystemBasis(snapshot), catalog),
	}
	if baseline != nil {
		report.Baseline = computeBaselineDelta(&report, baseline)
	}
	return report
}

// computeBaselineDelta annotates the report with current-minus-baseline
// differences. Plain arithmetic only; history is never recomputed.
func computeBaselineDelta(current, baseline *schema.Report) *schema.BaselineDelta {
	return &schema.BaselineDelta{
		CommitCount:      int64(current.Git.CommitCount - baseline.Git.CommitCount),
		RawLinesAdded:    int64(current.Git.RawLinesAdded - baseline.Git.RawLinesAdded),
		RawLinesRemoved:  int64(current.Git.RawLinesRemoved - baseline.Git.RawLinesRemoved),
		LinesModified:    int64(current.Git.LinesModified - baseline.Git.LinesModified),
		FilesChanged:     int64(current.Git.FilesChanged - baseline.Git.FilesChanged),
		EstimatedMinutes: current.Effort.Minutes - baseline.Effort.Minutes,
	}
}

// LoadBaseline reads a previously serialized report for delta annotation.
func LoadBaseline(path string) (*schema.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read baseline report %q: %w", path, err)
	}
	var report schema.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("cannot parse baseline report %q: %w", path, err)
	}
	return &report, nil
}
