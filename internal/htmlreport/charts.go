// Package htmlreport renders the self-contained visual report with charts.
package htmlreport

import (
	"bytes"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/huangsam/workscope/schema"
)

const (
	chartWidth  = "100%"
	chartHeight = "420px"
)

// chartSeries is the aligned day-by-day data both charts draw from. Bars and
// trend always share the same label axis; misaligned series are a defect.
type chartSeries struct {
	labels     []string
	bars       []int
	barName    string
	trend      []float64
	cumulative []float64
}

// buildChartSeries derives the chart data. Per-day files-changed from the
// rollups is preferred for the bars; when the rollups are entirely absent or
// zero, bars fall back to per-day commit counts derived from the commit list,
// and the lines-basis trend is re-aligned to those same day labels.
func buildChartSeries(git schema.GitActivity) chartSeries {
	if hasRollupActivity(git.DailyRollups) {
		s := chartSeries{barName: "Files changed"}
		for _, day := range git.DailyRollups {
			s.labels = append(s.labels, day.Date)
			s.bars = append(s.bars, day.FilesChanged)
			s.trend = append(s.trend, dayBasis(day))
		}
		s.cumulative = cumulate(s.trend)
		return s
	}

	// Fallback: count commits per day straight from the listing.
	counts := make(map[string]int)
	var order []string
	for _, c := range git.Commits {
		day := c.Timestamp.Format("2006-01-02")
		if _, seen := counts[day]; !seen {
			order = append(order, day)
		}
		counts[day]++
	}
	s := chartSeries{barName: "Commits"}
	for _, day := range order {
		s.labels = append(s.labels, day)
		s.bars = append(s.bars, counts[day])
		s.trend = append(s.trend, 0)
	}
	s.cumulative = cumulate(s.trend)
	return s
}

func hasRollupActivity(rollups []schema.DailyRollup) bool {
	for _, day := range rollups {
		if day.FilesChanged > 0 || day.LinesAdded > 0 || day.LinesRemoved > 0 {
			return true
		}
	}
	return false
}

// dayBasis applies the lines-changed basis formula to one day bucket.
func dayBasis(day schema.DailyRollup) float64 {
	added := float64(day.LinesAdded - day.LinesModified)
	removed := float64(day.LinesRemoved - day.LinesModified)
	basis := added + 0.5*float64(day.LinesModified) - 0.5*removed
	if basis < 0 {
		return 0
	}
	return basis
}

func cumulate(values []float64) []float64 {
	out := make([]float64, len(values))
	var sum float64
	for i, v := range values {
		sum += v
		out[i] = sum
	}
	return out
}

// activityChart is the daily change chart: activity bars overlapped with the
// lines-basis trend.
func activityChart(s chartSeries) *charts.Bar {
	bar := newBarChart("Daily Change Activity", s.labels)

	barData := make([]opts.BarData, len(s.bars))
	for i, v := range s.bars {
		barData[i] = opts.BarData{Value: v}
	}
	bar.AddSeries(s.barName, barData)

	line := charts.NewLine()
	line.SetXAxis(s.labels)
	lineData := make([]opts.LineData, len(s.trend))
	for i, v := range s.trend {
		lineData[i] = opts.LineData{Value: v}
	}
	line.AddSeries("Lines basis", lineData, charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	bar.Overlap(line)

	return bar
}

// volumeChart is the commit volume chart: per-day commit counts overlapped
// with the cumulative lines-basis trend.
func volumeChart(git schema.GitActivity, s chartSeries) *charts.Bar {
	counts := make(map[string]int)
	for _, c := range git.Commits {
		counts[c.Timestamp.Format("2006-01-02")]++
	}

	bar := newBarChart("Daily Commit Volume", s.labels)
	barData := make([]opts.BarData, len(s.labels))
	for i, day := range s.labels {
		barData[i] = opts.BarData{Value: counts[day]}
	}
	bar.AddSeries("Commits", barData)

	line := charts.NewLine()
	line.SetXAxis(s.labels)
	lineData := make([]opts.LineData, len(s.cumulative))
	for i, v := range s.cumulative {
		lineData[i] = opts.LineData{Value: v}
	}
	line.AddSeries("Cumulative lines basis", lineData, charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	bar.Overlap(line)

	return bar
}

func newBarChart(title string, labels []string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Count"}),
	)
	bar.SetXAxis(labels)
	return bar
}

// renderChartFragment renders a chart and extracts just the container div and
// script so it can be embedded in the report page.
func renderChartFragment(chart *charts.Bar) string {
	var buf bytes.Buffer
	if err := chart.Render(&buf); err != nil {
		return ""
	}
	return extractChartContent(buf.String())
}

// extractChartContent pulls the chart container out of the full HTML page
// that echarts emits, dropping its standalone page chrome.
func extractChartContent(html string) string {
	trimmed := strings.TrimSpace(html)
	if !strings.HasPrefix(trimmed, "<!DOCTYPE") && !strings.HasPrefix(trimmed, "<html") {
		return html
	}

	start := strings.Index(html, `<div class="container">`)
	if start == -1 {
		return html
	}
	end := strings.Index(html, `</body>`)
	if end == -1 {
		return html
	}

	content := html[start:end]
	content = strings.ReplaceAll(content, `class="container"`, `class="chart-box"`)
	return removeStyleTags(content)
}

func removeStyleTags(content string) string {
	for {
		i := strings.Index(content, `<style>`)
		if i == -1 {
			return content
		}
		j := strings.Index(content[i:], `</style>`)
		if j == -1 {
			return content
		}
		content = content[:i] + content[i+j+len(`</style>`):]
	}
}
