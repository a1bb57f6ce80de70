package parquet

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/workscope/schema"
)

func manifestReport() *schema.Report {
	lines := int64(12)
	chars := int64(340)
	return &schema.Report{
		GeneratedAt: time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
		Range:       schema.DateRange{Label: "Weekly"},
		Filesystem: &schema.FilesystemSnapshot{
			Root: "/work",
			Files: []schema.FileRecord{
				{
					RelativePath: "main.go",
					SizeBytes:    340,
					Lines:        &lines,
					Chars:        &chars,
					LastModified: time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC),
				},
				{
					RelativePath: "assets/logo.png",
					SizeBytes:    2048,
					IsBinary:     true,
					LastModified: time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC),
				},
			},
		},
	}
}

func TestConvertFileRecords(t *testing.T) {
	rows := ConvertFileRecords(manifestReport())
	require.Len(t, rows, 2)

	assert.Equal(t, "main.go", rows[0].RelativePath)
	assert.Equal(t, "Weekly", rows[0].PeriodLabel)
	require.NotNil(t, rows[0].Lines)
	assert.Equal(t, int64(12), *rows[0].Lines)
	assert.False(t, rows[0].IsBinary)

	assert.Equal(t, "assets/logo.png", rows[1].RelativePath)
	assert.True(t, rows[1].IsBinary)
	assert.Nil(t, rows[1].Lines, "binary files carry no line count")
	assert.Nil(t, rows[1].Chars)
}

func TestConvertFileRecordsMissingSnapshot(t *testing.T) {
	report := &schema.Report{GeneratedAt: time.Now()}
	rows := ConvertFileRecords(report)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestWriteManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.parquet")
	require.NoError(t, WriteManifest(manifestReport(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteManifestEmptySnapshot(t *testing.T) {
	report := &schema.Report{
		GeneratedAt: time.Now(),
		Range:       schema.DateRange{Label: "Daily"},
	}
	path := filepath.Join(t.TempDir(), "empty.parquet")
	require.NoError(t, WriteManifest(report, path))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestWriteManifestBadPath(t *testing.T) {
	err := WriteManifest(manifestReport(), filepath.Join(t.TempDir(), "missing", "deep", "manifest.parquet"))
	assert.Error(t, err)
}
