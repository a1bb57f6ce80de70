package contract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/huangsam/workscope/schema"
)

// Default values for configuration.
const (
	DefaultCommitLimit = 50
	MaxCommitLimit     = 5000
	DefaultReportsDir  = "reports"
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// DateOnlyFormat is the short form accepted for custom range bounds.
const DateOnlyFormat = "2006-01-02"

// Config holds the runtime configuration for one report run.
// This struct remains the "final, validated" config.
type Config struct {
	// RepoPath is the resolved working-copy top level. When the target path
	// is not inside a repository, RepoPath holds the absolute target path
	// and GitDegraded is set: the run proceeds filesystem-only.
	RepoPath    string
	GitDegraded bool

	Range       schema.DateRange
	Ref         string
	AllBranches bool

	Formats    []schema.OutputMode
	OutputDir  string
	OutputFile string // explicit path, only valid with a single format

	CommitLimit int

	Catalog      []schema.CatalogEntry
	BaselinePath string

	IncludeVCS        bool
	IncludeCompressed bool
	IncludeArchives   bool

	NoCache bool

	UseColors bool
	Width     int // Terminal width override (0 = auto-detect)
}

// Clone returns a deep-enough copy for per-request overrides: slices are
// duplicated so a caller can mutate the clone freely.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Formats = append([]schema.OutputMode(nil), c.Formats...)
	clone.Catalog = append([]schema.CatalogEntry(nil), c.Catalog...)
	return &clone
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	TargetPathStr string

	Period      string `mapstructure:"period"`
	Start       string `mapstructure:"start"`
	End         string `mapstructure:"end"`
	Formats     string `mapstructure:"formats"`
	OutputDir   string `mapstructure:"output-dir"`
	OutputFile  string `mapstructure:"output-file"`
	Ref         string `mapstructure:"ref"`
	AllBranches bool   `mapstructure:"all-branches"`
	CatalogFile string `mapstructure:"catalog"`
	Baseline    string `mapstructure:"baseline"`
	CommitLimit int    `mapstructure:"commit-limit"`

	IncludeVCS        bool `mapstructure:"include-vcs"`
	IncludeCompressed bool `mapstructure:"include-compressed"`
	IncludeArchives   bool `mapstructure:"include-archives"`

	NoCache bool   `mapstructure:"no-cache"`
	Color   string `mapstructure:"color"`
	Width   int    `mapstructure:"width"`
}

// ProcessAndValidate performs all complex parsing and validation on the raw inputs
// and updates the final Config struct. Configuration errors abort before any
// output is written; repository-resolution failure only degrades the run.
func ProcessAndValidate(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processDateRange(cfg, input, time.Now()); err != nil {
		return err
	}
	if err := processFormats(cfg, input); err != nil {
		return err
	}
	if err := processCatalog(cfg, input); err != nil {
		return err
	}
	if err := resolveOutputDir(cfg, input); err != nil {
		return err
	}
	resolveRepoPath(ctx, cfg, client, input)
	return nil
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Ref = input.Ref
	cfg.AllBranches = input.AllBranches
	cfg.BaselinePath = input.Baseline
	cfg.IncludeVCS = input.IncludeVCS
	cfg.IncludeCompressed = input.IncludeCompressed
	cfg.IncludeArchives = input.IncludeArchives
	cfg.NoCache = input.NoCache
	cfg.Width = input.Width
	cfg.OutputFile = input.OutputFile

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.CommitLimit <= 0 || input.CommitLimit > MaxCommitLimit {
		return fmt.Errorf("commit-limit must be greater than 0 and cannot exceed %d (received %d)", MaxCommitLimit, input.CommitLimit)
	}
	cfg.CommitLimit = input.CommitLimit

	return nil
}

// processDateRange resolves the period selector into an inclusive day-granular
// window: start of day through end of day, local time.
func processDateRange(cfg *Config, input *ConfigRawInput, now time.Time) error {
	period := schema.Period(strings.ToLower(input.Period))
	if _, ok := schema.ValidPeriods[period]; !ok {
		return fmt.Errorf("invalid period '%s'. must be day, week, month, all, custom", input.Period)
	}

	startOfDay := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}
	endOfDay := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
	}

	switch period {
	case schema.DayPeriod:
		cfg.Range = schema.DateRange{Start: startOfDay(now), End: endOfDay(now), Label: "Daily"}
	case schema.WeekPeriod:
		cfg.Range = schema.DateRange{Start: startOfDay(now.AddDate(0, 0, -6)), End: endOfDay(now), Label: "Weekly"}
	case schema.MonthPeriod:
		cfg.Range = schema.DateRange{Start: startOfDay(now.AddDate(0, 0, -29)), End: endOfDay(now), Label: "Monthly"}
	case schema.AllPeriod:
		// Zero start means unbounded; the git client omits --since for it.
		cfg.Range = schema.DateRange{Start: time.Time{}, End: endOfDay(now), Label: "All time"}
	case schema.CustomPeriod:
		if input.Start == "" || input.End == "" {
			return fmt.Errorf("custom period requires both --start and --end")
		}
		start, err := parseDateBound(input.Start)
		if err != nil {
			return fmt.Errorf("invalid --start value %q: %w", input.Start, err)
		}
		end, err := parseDateBound(input.End)
		if err != nil {
			return fmt.Errorf("invalid --end value %q: %w", input.End, err)
		}
		if start.After(end) {
			return fmt.Errorf("custom range start %s is after end %s", input.Start, input.End)
		}
		cfg.Range = schema.DateRange{Start: startOfDay(start), End: endOfDay(end), Label: "Custom"}
	}
	return nil
}

// RevalidateWindow re-resolves the analysis window on an already validated
// config, for callers that override the period per request.
func RevalidateWindow(cfg *Config, period, start, end string) error {
	input := &ConfigRawInput{Period: period, Start: start, End: end}
	return processDateRange(cfg, input, time.Now())
}

// RevalidateTarget re-resolves the target path on an already validated
// config. The degraded flag is recomputed for the new target.
func RevalidateTarget(ctx context.Context, cfg *Config, client GitClient, target string) {
	cfg.GitDegraded = false
	resolveRepoPath(ctx, cfg, client, &ConfigRawInput{TargetPathStr: target})
}

// parseDateBound accepts either a bare date or a full RFC3339 timestamp.
func parseDateBound(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(DateOnlyFormat, s, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(DateTimeFormat, s)
}

// processFormats parses the comma-separated format list.
func processFormats(cfg *Config, input *ConfigRawInput) error {
	cfg.Formats = cfg.Formats[:0]
	seen := make(map[schema.OutputMode]struct{})
	for _, part := range strings.Split(input.Formats, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" {
			continue
		}
		mode := schema.OutputMode(part)
		if _, ok := schema.ValidOutputModes[mode]; !ok {
			return fmt.Errorf("invalid output format '%s'. must be text, json, csv, html, parquet", part)
		}
		if _, dup := seen[mode]; dup {
			continue
		}
		seen[mode] = struct{}{}
		cfg.Formats = append(cfg.Formats, mode)
	}
	if len(cfg.Formats) == 0 {
		return fmt.Errorf("at least one output format is required")
	}
	if cfg.OutputFile != "" && len(cfg.Formats) > 1 {
		return fmt.Errorf("--output-file only applies to a single format (got %d)", len(cfg.Formats))
	}
	return nil
}

// processCatalog loads the external methodology catalog when provided,
// otherwise installs the built-in one.
func processCatalog(cfg *Config, input *ConfigRawInput) error {
	if input.CatalogFile == "" {
		cfg.Catalog = schema.DefaultCatalog()
		return nil
	}
	entries, err := schema.LoadCatalog(input.CatalogFile)
	if err != nil {
		return err
	}
	cfg.Catalog = entries
	return nil
}

// resolveOutputDir picks the artifact directory: explicit flag, otherwise a
// "reports" directory beside the binary, falling back to the working directory
// when the executable path cannot be determined.
func resolveOutputDir(cfg *Config, input *ConfigRawInput) error {
	if input.OutputDir != "" {
		abs, err := filepath.Abs(input.OutputDir)
		if err != nil {
			return fmt.Errorf("invalid output directory %q: %w", input.OutputDir, err)
		}
		cfg.OutputDir = abs
		return nil
	}
	if exe, err := os.Executable(); err == nil {
		cfg.OutputDir = filepath.Join(filepath.Dir(exe), DefaultReportsDir)
		return nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("cannot resolve an output directory: %w", err)
	}
	cfg.OutputDir = filepath.Join(cwd, DefaultReportsDir)
	return nil
}

// resolveRepoPath resolves the target path to the top of its working copy.
// A path outside any repository is not an error: the run degrades to a
// filesystem-only report with a warning, per the recovery policy. An
// arbitrary directory is never treated as a repository.
func resolveRepoPath(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) {
	target := input.TargetPathStr
	if target == "" {
		target = "."
	}
	abs, err := filepath.Abs(target)
	if err != nil {
		cfg.RepoPath = target
		cfg.GitDegraded = true
		LogWarn("cannot resolve target path", err)
		return
	}

	root, err := client.RepoRoot(ctx, abs)
	if err != nil {
		cfg.RepoPath = abs
		cfg.GitDegraded = true
		LogWarn(fmt.Sprintf("%q is not inside a Git working copy; commit history will be empty", abs), err)
		return
	}
	cfg.RepoPath = root
}
