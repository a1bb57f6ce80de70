package core

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/workscope/schema"
)

func weeklyRange() schema.DateRange {
	end := time.Date(2026, 8, 28, 23, 59, 59, 0, time.Local)
	return schema.DateRange{Start: end.AddDate(0, 0, -6), End: end, Label: "Weekly"}
}

func TestAssemble(t *testing.T) {
	activity := schema.GitActivity{
		CommitCount:   2,
		RawLinesAdded: 30,
		LinesAdded:    20,
		LinesModified: 10,
	}
	snapshot := &schema.FilesystemSnapshot{TotalFiles: 3, SumLines: 500}
	catalog := schema.DefaultCatalog()

	report := Assemble(weeklyRange(), activity, snapshot, catalog, nil)

	assert.Equal(t, "Weekly", report.Range.Label)
	assert.False(t, report.GeneratedAt.IsZero())
	assert.Equal(t, activity, report.Git)
	assert.Same(t, snapshot, report.Filesystem)
	assert.Nil(t, report.Baseline)

	assert.Equal(t, Estimate(activity), report.Effort)
	assert.InDelta(t, 25.0, report.GitComparison.Basis, 1e-9)
	assert.Equal(t, 500.0, report.FilesystemComparison.Basis)
	assert.Len(t, report.GitComparison.Rows, len(catalog))
	assert.Len(t, report.FilesystemComparison.Rows, len(catalog))
}

func TestAssembleNilSnapshot(t *testing.T) {
	report := Assemble(weeklyRange(), schema.GitActivity{}, nil, schema.DefaultCatalog(), nil)

	assert.Nil(t, report.Filesystem)
	assert.Equal(t, 0.0, report.FilesystemComparison.Basis)
	assert.Equal(t, int64(0), report.Effort.Minutes)
}

func TestAssembleBaselineDelta(t *testing.T) {
	baseline := &schema.Report{
		Git: schema.GitActivity{
			CommitCount:   5,
			RawLinesAdded: 100,
			FilesChanged:  8,
		},
		Effort: schema.EffortEstimate{Minutes: 400},
	}
	activity := schema.GitActivity{
		CommitCount:   7,
		RawLinesAdded: 90,
		FilesChanged:  10,
	}

	report := Assemble(weeklyRange(), activity, nil, schema.DefaultCatalog(), baseline)

	require.NotNil(t, report.Baseline)
	assert.Equal(t, int64(2), report.Baseline.CommitCount)
	assert.Equal(t, int64(-10), report.Baseline.RawLinesAdded)
	assert.Equal(t, int64(2), report.Baseline.FilesChanged)
	assert.Equal(t, report.Effort.Minutes-400, report.Baseline.EstimatedMinutes)
}

func TestLoadBaseline(t *testing.T) {
	report := Assemble(weeklyRange(), schema.GitActivity{CommitCount: 3}, nil, schema.DefaultCatalog(), nil)
	data, err := json.Marshal(report)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "baseline.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	loaded, err := LoadBaseline(path)
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Git.CommitCount)
	assert.Equal(t, report.Effort.Minutes, loaded.Effort.Minutes)
}

func TestLoadBaselineErrors(t *testing.T) {
	_, err := LoadBaseline(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "garbage.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err = LoadBaseline(path)
	assert.Error(t, err)
}
