package outwriter

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/huangsam/workscope/internal/contract"
	"github.com/huangsam/workscope/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/term"
)

// PrintRunSummary prints the headline metrics and per-format artifact
// outcomes to stdout after a generate run.
func PrintRunSummary(report *schema.Report, results RenderResults, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Metric", "Value"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	commitValue := strconv.Itoa(report.Git.CommitCount)
	minutesValue := fmt.Sprintf("%d min", report.Effort.Minutes)
	if cfg.UseColors {
		commitValue = contract.AccentColor.Sprint(commitValue)
		minutesValue = contract.AccentColor.Sprint(minutesValue)
	}

	data := [][]string{
		{"Period", report.Range.Label},
		{"Commits", commitValue},
		{"Files changed", strconv.Itoa(report.Git.FilesChanged)},
		{"Lines +/-", formatChurn(report, cfg.UseColors)},
		{"Estimated effort", minutesValue},
	}
	if fs := report.Filesystem; fs != nil {
		data = append(data,
			[]string{"Files on disk", strconv.Itoa(fs.TotalFiles)},
			[]string{"Text lines", strconv.FormatInt(fs.SumLines, 10)},
		)
	}
	if d := report.Baseline; d != nil {
		data = append(data, []string{"Vs baseline", contract.SignedDelta(d.EstimatedMinutes) + " min"})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	maxPath := maxSummaryPathWidth(cfg)
	for _, r := range results {
		if r.Err != nil {
			contract.LogWarn(fmt.Sprintf("could not write %s artifact", r.Format), r.Err)
			continue
		}
		if _, err := fmt.Fprintf(os.Stdout, "Wrote %s report to %s\n", r.Format, contract.TruncatePath(r.Path, maxPath)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(os.Stdout, "Report generated in %v\n", duration)
	return err
}

// formatChurn renders the raw added/removed pair, colored when enabled.
func formatChurn(report *schema.Report, useColors bool) string {
	added := fmt.Sprintf("+%d", report.Git.RawLinesAdded)
	removed := fmt.Sprintf("-%d", report.Git.RawLinesRemoved)
	if useColors {
		added = contract.PositiveColor.Sprint(added)
		removed = contract.NegativeColor.Sprint(removed)
	}
	return added + " / " + removed
}

// maxSummaryPathWidth bounds artifact paths to the terminal width so the
// summary stays on one line per artifact.
func maxSummaryPathWidth(cfg *contract.Config) int {
	termWidth := cfg.Width
	if termWidth == 0 {
		detected, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detected <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detected
		}
	}

	// Reserve room for the "Wrote <format> report to " prefix.
	available := termWidth - 30
	if available < 20 {
		return 20
	}
	return available
}
