package outwriter

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/huangsam/workscope/internal/contract"
	"github.com/huangsam/workscope/schema"
)

// writeTextReport renders the sectioned markdown document.
func writeTextReport(report *schema.Report, commitLimit int, path string) error {
	f, err := contract.SelectOutputFile(path)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", path, err)
	}
	defer closeArtifact(f)
	return renderText(f, report, commitLimit)
}

func renderText(w io.Writer, report *schema.Report, commitLimit int) error {
	p := func(format string, args ...any) {
		_, _ = fmt.Fprintf(w, format, args...)
	}

	p("# Workspace Activity Report\n\n")
	p("- Period: %s (%s through %s)\n", report.Range.Label, rangeStamp(report.Range.Start), rangeStamp(report.Range.End))
	p("- Generated: %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04:05"))

	renderTextGit(p, report, commitLimit)
	renderTextFilesystem(p, report.Filesystem)
	renderTextEffort(p, report)
	renderTextBaseline(p, report.Baseline)

	return nil
}

func renderTextGit(p func(string, ...any), report *schema.Report, commitLimit int) {
	git := report.Git
	p("## Git Activity\n\n")
	if git.CommitCount == 0 {
		p("No commits found in this period.\n\n")
		return
	}

	p("- Commits: %s\n", humanize.Comma(int64(git.CommitCount)))
	p("- Files changed: %s\n", humanize.Comma(int64(git.FilesChanged)))
	p("- Raw lines: +%s / -%s\n", humanize.Comma(int64(git.RawLinesAdded)), humanize.Comma(int64(git.RawLinesRemoved)))
	p("- Partitioned: %s added, %s modified, %s removed\n\n",
		humanize.Comma(int64(git.LinesAdded)), humanize.Comma(int64(git.LinesModified)), humanize.Comma(int64(git.LinesRemoved)))

	if len(git.DailyRollups) > 0 {
		p("| Date | Files | Added | Removed | Modified |\n")
		p("|------|------:|------:|--------:|---------:|\n")
		for _, day := range git.DailyRollups {
			p("| %s | %d | %d | %d | %d |\n", day.Date, day.FilesChanged, day.LinesAdded, day.LinesRemoved, day.LinesModified)
		}
		p("\n")
	}

	p("### Recent Commits\n\n")
	shown := 0
	for _, c := range git.Commits {
		if shown >= commitLimit {
			p("- ... and %d more\n", git.CommitCount-shown)
			break
		}
		p("- `%s` %s — %s (%s)\n", shortHash(c.Hash), c.Timestamp.Format("2006-01-02 15:04"), c.Subject, c.Author)
		shown++
	}
	p("\n")
}

func renderTextFilesystem(p func(string, ...any), snapshot *schema.FilesystemSnapshot) {
	p("## Filesystem Inventory\n\n")
	if snapshot == nil {
		p("Filesystem scan unavailable for this run.\n\n")
		return
	}

	p("- Root: %s\n", snapshot.Root)
	p("- Items: %s (%s files, %s folders, %s links)\n",
		humanize.Comma(int64(snapshot.TotalItems)), humanize.Comma(int64(snapshot.TotalFiles)),
		humanize.Comma(int64(snapshot.TotalFolders)), humanize.Comma(int64(snapshot.TotalLinks)))
	p("- Text volume: %s lines, %s characters\n", humanize.Comma(snapshot.SumLines), humanize.Comma(snapshot.SumChars))
	p("- Size on disk: %s\n", humanize.Bytes(uint64(snapshot.SumSizeBytes)))
	if !snapshot.LastModified.IsZero() {
		p("- Last modified: %s\n", snapshot.LastModified.Format("2006-01-02 15:04:05"))
	}
	if len(snapshot.FiltersApplied) > 0 {
		p("- Filters: %v\n", snapshot.FiltersApplied)
	}
	p("\n")

	if len(snapshot.TopExtensions) > 0 {
		p("| Extension | Files |\n")
		p("|-----------|------:|\n")
		for _, ext := range snapshot.TopExtensions {
			p("| %s | %d |\n", ext.Extension, ext.Count)
		}
		p("\n")
	}
}

func renderTextEffort(p func(string, ...any), report *schema.Report) {
	p("## Estimated Effort\n\n")
	p("- Primary model: %d minutes (%.1f hours)\n\n", report.Effort.Minutes, report.Effort.Hours())

	renderComparison(p, "Methodology Comparison (version-control basis)", report.GitComparison)
	renderComparison(p, "Methodology Comparison (filesystem basis)", report.FilesystemComparison)
}

func renderComparison(p func(string, ...any), title string, cmp schema.EffortComparison) {
	p("### %s\n\n", title)
	p("Basis: %.1f lines\n\n", cmp.Basis)
	if len(cmp.Rows) == 0 {
		p("No methodology catalog entries available.\n\n")
		return
	}
	p("| Methodology | Factor (h/line) | Hours |\n")
	p("|-------------|----------------:|------:|\n")
	for _, row := range cmp.Rows {
		p("| %s | %.3f | %.1f |\n", row.Label, row.Factor, row.Hours)
	}
	p("\n")
}

func renderTextBaseline(p func(string, ...any), delta *schema.BaselineDelta) {
	if delta == nil {
		return
	}
	p("## Baseline Comparison\n\n")
	p("- Commits: %+d\n", delta.CommitCount)
	p("- Raw lines added: %+d\n", delta.RawLinesAdded)
	p("- Raw lines removed: %+d\n", delta.RawLinesRemoved)
	p("- Lines modified: %+d\n", delta.LinesModified)
	p("- Files changed: %+d\n", delta.FilesChanged)
	p("- Estimated minutes: %+d\n\n", delta.EstimatedMinutes)
}

// shortHash abbreviates a commit hash for display.
func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}
