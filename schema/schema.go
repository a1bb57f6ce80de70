// Package schema has configs, models and global variables for all parts of workscope.
package schema

import "time"

// DateRange is the inclusive reporting window. Start is the beginning of its
// day and End is the last second of its day, both in local time.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

// Days returns the number of calendar days covered by the range, minimum 1.
func (dr DateRange) Days() int {
	days := int(dr.End.Sub(dr.Start).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// FileRecord holds the metrics for one file discovered by the walker.
// Lines and Chars are nil when the file is binary or could not be read;
// a nil value means "not measured", which is distinct from zero.
type FileRecord struct {
	AbsolutePath string    `json:"absolute_path"`
	RelativePath string    `json:"relative_path"`
	SizeBytes    int64     `json:"size_bytes"`
	Lines        *int64    `json:"lines,omitempty"`
	Chars        *int64    `json:"chars,omitempty"`
	LastModified time.Time `json:"last_modified"`
	IsBinary     bool      `json:"is_binary"`
}

// ExtensionCount is one bucket of the per-extension histogram.
type ExtensionCount struct {
	Extension string `json:"extension"`
	Count     int    `json:"count"`
}

// FilesystemSnapshot aggregates one full walk of the target tree.
// It is built fresh per invocation and never persisted on its own.
type FilesystemSnapshot struct {
	Root           string           `json:"root"`
	TotalItems     int              `json:"total_items"`
	TotalFiles     int              `json:"total_files"`
	TotalFolders   int              `json:"total_folders"`
	TotalLinks     int              `json:"total_links"`
	SumLines       int64            `json:"sum_lines"`
	SumChars       int64            `json:"sum_chars"`
	SumSizeBytes   int64            `json:"sum_size_bytes"`
	LastModified   time.Time        `json:"last_modified"`
	TopExtensions  []ExtensionCount `json:"top_extensions"`
	Files          []FileRecord     `json:"files"`
	FiltersApplied []string         `json:"filters_applied"`
}

// Commit is one commit as reported by the version-control tool.
type Commit struct {
	Hash      string    `json:"hash"`
	Author    string    `json:"author"`
	Subject   string    `json:"subject"`
	Timestamp time.Time `json:"timestamp"`
}

// DiffStat holds the numeric diff totals for a single commit.
type DiffStat struct {
	CommitHash   string `json:"commit_hash"`
	FilesChanged int    `json:"files_changed"`
	LinesAdded   int    `json:"lines_added"`
	LinesRemoved int    `json:"lines_removed"`
}

// DailyRollup buckets commit activity by calendar day (commit-local date,
// formatted as 2006-01-02).
type DailyRollup struct {
	Date          string `json:"date"`
	FilesChanged  int    `json:"files_changed"`
	LinesAdded    int    `json:"lines_added"`
	LinesRemoved  int    `json:"lines_removed"`
	LinesModified int    `json:"lines_modified"`
}

// GitActivity aggregates commit history for the reporting window.
//
// The partitioned counts split the raw added/removed totals with the
// modification inference LinesModified = min(RawLinesAdded, RawLinesRemoved).
// This is a coarse approximation carried for compatibility: it cannot tell
// "20 lines edited in place" apart from "20 deleted here, 20 added elsewhere".
type GitActivity struct {
	CommitCount     int           `json:"commit_count"`
	Commits         []Commit      `json:"commits"`
	RawLinesAdded   int           `json:"raw_lines_added"`
	RawLinesRemoved int           `json:"raw_lines_removed"`
	LinesAdded      int           `json:"lines_added"`
	LinesRemoved    int           `json:"lines_removed"`
	LinesModified   int           `json:"lines_modified"`
	FilesChanged    int           `json:"files_changed"`
	DailyRollups    []DailyRollup `json:"daily_rollups"`
}

// EffortEstimate is the primary model output, in whole minutes.
type EffortEstimate struct {
	Minutes int64 `json:"minutes"`
}

// Hours returns the estimate as fractional hours.
func (e EffortEstimate) Hours() float64 {
	return float64(e.Minutes) / 60.0
}

// CatalogEntry is one row of the methodology catalog: a labeled productivity
// factor (hours per basis line) with citation metadata. The catalog is data,
// not logic; a user-supplied catalog replaces the built-in one wholesale.
type CatalogEntry struct {
	Key         string   `json:"key"`
	Label       string   `json:"label"`
	Factor      float64  `json:"factor"`
	References  []string `json:"references,omitempty"`
	Description string   `json:"description,omitempty"`
}

// MethodEstimate is a catalog entry applied to a concrete basis.
type MethodEstimate struct {
	CatalogEntry
	Hours float64 `json:"hours"`
}

// EffortComparison is the alternative model output: one basis value and the
// per-methodology hour estimates derived from it.
type EffortComparison struct {
	Basis float64          `json:"basis"`
	Rows  []MethodEstimate `json:"rows"`
}

// BaselineDelta holds current-minus-baseline differences for the headline
// metrics. Advisory annotations only; history is never recomputed.
type BaselineDelta struct {
	CommitCount      int64 `json:"commit_count"`
	RawLinesAdded    int64 `json:"raw_lines_added"`
	RawLinesRemoved  int64 `json:"raw_lines_removed"`
	LinesModified    int64 `json:"lines_modified"`
	FilesChanged     int64 `json:"files_changed"`
	EstimatedMinutes int64 `json:"estimated_minutes"`
}

// Report is the top-level aggregate for one run. Its JSON serialization is
// the data-interchange artifact and doubles as the baseline input format.
type Report struct {
	GeneratedAt          time.Time           `json:"generated_at"`
	Range                DateRange           `json:"range"`
	Git                  GitActivity         `json:"git"`
	Filesystem           *FilesystemSnapshot `json:"filesystem,omitempty"`
	Effort               EffortEstimate      `json:"effort"`
	GitComparison        EffortComparison    `json:"git_comparison"`
	FilesystemComparison EffortComparison    `json:"filesystem_comparison"`
	Baseline             *BaselineDelta      `json:"baseline,omitempty"`
}
