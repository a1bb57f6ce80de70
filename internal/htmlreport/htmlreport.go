package htmlreport

import (
	"fmt"
	"html/template"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/huangsam/workscope/internal/contract"
	"github.com/huangsam/workscope/schema"
)

// manifestRowLimit caps the file table so huge workspaces stay browsable.
const manifestRowLimit = 200

type pageTile struct {
	Label string
	Value string
}

type commitRow struct {
	Hash    string
	When    string
	Author  string
	Subject string
}

type fileRow struct {
	Path     string
	Size     string
	Lines    string
	Modified string
}

type methodologyRow struct {
	Label       string
	Factor      string
	GitHours    string
	FsHours     string
	Description string
	Reference   string
}

type pageData struct {
	Title         string
	Period        string
	Generated     string
	GitTiles      []pageTile
	FsTiles       []pageTile
	HasActivity   bool
	ChartRuntime  template.JS
	ActivityChart template.HTML
	VolumeChart   template.HTML
	Commits       []commitRow
	MoreCommits   int
	HasSnapshot   bool
	Files         []fileRow
	MoreFiles     int
	Methodologies []methodologyRow
	GitBasis      string
	FsBasis       string
	BaselineTiles []pageTile
}

// Write renders the report as a single HTML document with embedded charts.
func Write(report *schema.Report, commitLimit int, path string) error {
	data := buildPageData(report, commitLimit)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return pageTemplate.Execute(f, data)
}

func buildPageData(report *schema.Report, commitLimit int) pageData {
	data := pageData{
		Title:       "Workspace Activity Report",
		Period:      report.Range.Label,
		Generated:   report.GeneratedAt.Format("2006-01-02 15:04:05"),
		HasActivity: report.Git.CommitCount > 0,
		GitBasis:    fmt.Sprintf("%.1f", report.GitComparison.Basis),
		FsBasis:     fmt.Sprintf("%.1f", report.FilesystemComparison.Basis),
	}

	data.GitTiles = []pageTile{
		{"Commits", humanize.Comma(int64(report.Git.CommitCount))},
		{"Files changed", humanize.Comma(int64(report.Git.FilesChanged))},
		{"Lines added", humanize.Comma(int64(report.Git.LinesAdded))},
		{"Lines modified", humanize.Comma(int64(report.Git.LinesModified))},
		{"Lines removed", humanize.Comma(int64(report.Git.LinesRemoved))},
		{"Estimated effort", fmt.Sprintf("%d min", report.Effort.Minutes)},
	}

	if data.HasActivity {
		// The runtime is inlined so the written document needs no network
		// access to draw its charts. When it cannot be fetched the page
		// degrades to tiles and tables, never to an external reference.
		if runtime, err := fetchChartRuntime(); err != nil {
			contract.LogWarn("cannot bundle chart runtime; rendering report without charts", err)
		} else {
			data.ChartRuntime = template.JS(runtime)
			series := buildChartSeries(report.Git)
			data.ActivityChart = template.HTML(renderChartFragment(activityChart(series)))
			data.VolumeChart = template.HTML(renderChartFragment(volumeChart(report.Git, series)))
		}
	}

	for i, c := range report.Git.Commits {
		if i >= commitLimit {
			data.MoreCommits = report.Git.CommitCount - i
			break
		}
		data.Commits = append(data.Commits, commitRow{
			Hash:    shortHash(c.Hash),
			When:    c.Timestamp.Format("2006-01-02 15:04"),
			Author:  c.Author,
			Subject: c.Subject,
		})
	}

	if fs := report.Filesystem; fs != nil {
		data.HasSnapshot = true
		data.FsTiles = []pageTile{
			{"Files", humanize.Comma(int64(fs.TotalFiles))},
			{"Folders", humanize.Comma(int64(fs.TotalFolders))},
			{"Links", humanize.Comma(int64(fs.TotalLinks))},
			{"Text lines", humanize.Comma(fs.SumLines)},
			{"Characters", humanize.Comma(fs.SumChars)},
			{"Size on disk", humanize.Bytes(uint64(fs.SumSizeBytes))},
		}
		for i, rec := range fs.Files {
			if i >= manifestRowLimit {
				data.MoreFiles = len(fs.Files) - i
				break
			}
			data.Files = append(data.Files, fileRow{
				Path:     rec.RelativePath,
				Size:     humanize.Bytes(uint64(rec.SizeBytes)),
				Lines:    lineCell(rec),
				Modified: rec.LastModified.Format("2006-01-02 15:04"),
			})
		}
	}

	gitRows := indexHours(report.GitComparison)
	for _, row := range report.FilesystemComparison.Rows {
		data.Methodologies = append(data.Methodologies, methodologyRow{
			Label:       row.Label,
			Factor:      fmt.Sprintf("%.3f", row.Factor),
			GitHours:    gitRows[row.Key],
			FsHours:     fmt.Sprintf("%.1f", row.Hours),
			Description: row.Description,
			Reference:   firstReference(row.References),
		})
	}

	if d := report.Baseline; d != nil {
		data.BaselineTiles = []pageTile{
			{"Commits vs baseline", fmt.Sprintf("%+d", d.CommitCount)},
			{"Files changed vs baseline", fmt.Sprintf("%+d", d.FilesChanged)},
			{"Minutes vs baseline", fmt.Sprintf("%+d", d.EstimatedMinutes)},
		}
	}

	return data
}

func indexHours(cmp schema.EffortComparison) map[string]string {
	out := make(map[string]string, len(cmp.Rows))
	for _, row := range cmp.Rows {
		out[row.Key] = fmt.Sprintf("%.1f", row.Hours)
	}
	return out
}

func firstReference(refs []string) string {
	if len(refs) == 0 {
		return ""
	}
	return refs[0]
}

func lineCell(rec schema.FileRecord) string {
	if rec.IsBinary {
		return "binary"
	}
	if rec.Lines == nil {
		return "-"
	}
	return humanize.Comma(*rec.Lines)
}

func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}
