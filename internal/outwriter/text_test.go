package outwriter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/workscope/schema"
)

func TestRenderTextEmptyState(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, renderText(&sb, emptyReport(), 10))

	out := sb.String()
	assert.Contains(t, out, "# Workspace Activity Report")
	assert.Contains(t, out, "No commits found in this period.")
	assert.Contains(t, out, "## Filesystem Inventory")
	assert.Contains(t, out, "Methodology Comparison")
}

func TestRenderTextGitSection(t *testing.T) {
	report := emptyReport()
	report.Git = schema.GitActivity{
		CommitCount:     3,
		RawLinesAdded:   1200,
		RawLinesRemoved: 150,
		LinesAdded:      1050,
		LinesModified:   150,
		FilesChanged:    9,
		Commits: []schema.Commit{
			{Hash: "aaaa1111bbbb", Author: "Alice", Subject: "First", Timestamp: time.Now()},
			{Hash: "cccc2222dddd", Author: "Bob", Subject: "Second", Timestamp: time.Now()},
			{Hash: "eeee3333ffff", Author: "Carol", Subject: "Third", Timestamp: time.Now()},
		},
		DailyRollups: []schema.DailyRollup{
			{Date: "2026-08-24", FilesChanged: 9, LinesAdded: 1200, LinesRemoved: 150, LinesModified: 150},
		},
	}

	var sb strings.Builder
	require.NoError(t, renderText(&sb, report, 2))

	out := sb.String()
	assert.Contains(t, out, "1,200", "large counts are humanized")
	assert.Contains(t, out, "| 2026-08-24 |")
	assert.Contains(t, out, "`aaaa1111`", "hashes are abbreviated")
	assert.Contains(t, out, "... and 1 more", "commit listing honors the limit")
	assert.NotContains(t, out, "Third")
}

func TestRenderTextMissingSnapshot(t *testing.T) {
	report := emptyReport()
	report.Filesystem = nil

	var sb strings.Builder
	require.NoError(t, renderText(&sb, report, 10))
	assert.Contains(t, sb.String(), "Filesystem scan unavailable for this run.")
}

func TestRenderTextBaselineSection(t *testing.T) {
	report := emptyReport()
	report.Baseline = &schema.BaselineDelta{CommitCount: 4, EstimatedMinutes: -30}

	var sb strings.Builder
	require.NoError(t, renderText(&sb, report, 10))

	out := sb.String()
	assert.Contains(t, out, "## Baseline Comparison")
	assert.Contains(t, out, "Commits: +4")
	assert.Contains(t, out, "Estimated minutes: -30")
}

func TestShortHash(t *testing.T) {
	assert.Equal(t, "deadbeef", shortHash("deadbeefcafe"))
	assert.Equal(t, "abc", shortHash("abc"))
}
