package cmd

import (
	"github.com/spf13/cobra"

	"github.com/huangsam/workscope/core"
	"github.com/huangsam/workscope/internal/contract"
)

// generateCmd runs the full analysis and writes the report artifacts.
var generateCmd = &cobra.Command{
	Use:   "generate [target-path]",
	Short: "Analyze a workspace and write activity report artifacts.",
	Long: `Mine the Git history and inventory the filesystem of a workspace, then
write an activity report in one or more formats.

The analysis runs two passes in parallel:
- Git extraction: commits, churn, and daily rollups for the selected window
- Filesystem scan: file counts, text metrics, and extension histogram

A target outside any Git repository still produces a filesystem-only report.

Examples:
  # Report on the last week of the current directory
  workscope generate

  # Monthly report with an HTML chart page
  workscope generate --period month --formats text,html

  # Custom window across all branches
  workscope generate --period custom --start 2026-01-01 --end 2026-03-31 --all-branches

  # Diff against an earlier JSON report
  workscope generate --formats json --baseline reports/workscope_weekly_20260801-120000.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteGenerate(rootCtx, cfg, gitClient, cacheStore); err != nil {
			contract.LogFatal("Cannot generate report", err)
		}
	},
}
