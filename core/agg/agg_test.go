package agg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLog = `--aaa111|Alice|2026-08-24T10:30:00Z|Add parser
10	2	core/parser.go
5	0	core/parser_test.go

--bbb222|Bob|2026-08-24T15:45:00Z|Fix edge case
3	8	core/parser.go

--ccc333|Alice|2026-08-25T09:00:00Z|Add logo
-	-	assets/logo.png
2	1	README.md
`

func TestBuildActivity(t *testing.T) {
	activity := BuildActivity([]byte(sampleLog))

	assert.Equal(t, 3, activity.CommitCount)
	require.Len(t, activity.Commits, 3)
	assert.Equal(t, "aaa111", activity.Commits[0].Hash)
	assert.Equal(t, "Alice", activity.Commits[0].Author)
	assert.Equal(t, "Add parser", activity.Commits[0].Subject)

	assert.Equal(t, 20, activity.RawLinesAdded)
	assert.Equal(t, 11, activity.RawLinesRemoved)
	assert.Equal(t, 5, activity.FilesChanged, "binary placeholder lines still count as changed files")

	// Partition runs over the global totals.
	assert.Equal(t, 11, activity.LinesModified)
	assert.Equal(t, 9, activity.LinesAdded)
	assert.Equal(t, 0, activity.LinesRemoved)
}

func TestBuildActivityDailyRollups(t *testing.T) {
	activity := BuildActivity([]byte(sampleLog))

	require.Len(t, activity.DailyRollups, 2)
	assert.Equal(t, "2026-08-24", activity.DailyRollups[0].Date, "rollups sort chronologically")
	assert.Equal(t, "2026-08-25", activity.DailyRollups[1].Date)

	day1 := activity.DailyRollups[0]
	assert.Equal(t, 3, day1.FilesChanged)
	assert.Equal(t, 18, day1.LinesAdded)
	assert.Equal(t, 10, day1.LinesRemoved)
	assert.Equal(t, 10, day1.LinesModified, "per-day inference uses that day's totals")

	day2 := activity.DailyRollups[1]
	assert.Equal(t, 2, day2.FilesChanged)
	assert.Equal(t, 2, day2.LinesAdded)
	assert.Equal(t, 1, day2.LinesRemoved)
	assert.Equal(t, 1, day2.LinesModified)
}

func TestBuildActivityEmptyOutput(t *testing.T) {
	for _, out := range []string{"", "\n", "''"} {
		activity := BuildActivity([]byte(out))
		assert.Zero(t, activity.CommitCount)
		assert.Zero(t, activity.RawLinesAdded)
		assert.Zero(t, activity.RawLinesRemoved)
		assert.Empty(t, activity.DailyRollups)
	}
}

func TestBuildActivitySubjectWithQuotes(t *testing.T) {
	log := "--abc123|Alice|2026-08-24T10:30:00Z|Rename 'foo' to 'bar'\n1\t1\tfoo.go\n"
	activity := BuildActivity([]byte(log))

	require.Len(t, activity.Commits, 1)
	assert.Equal(t, "Rename 'foo' to 'bar'", activity.Commits[0].Subject)
}

func TestBuildActivityMalformedHeader(t *testing.T) {
	log := `--deadbeef|Carol|not-a-date|Broken header
4	4	skipped.go
--feedface|Dave|2026-08-26T12:00:00Z|Good commit
7	0	kept.go
`
	activity := BuildActivity([]byte(log))

	// The malformed header and its stat lines are dropped entirely.
	assert.Equal(t, 1, activity.CommitCount)
	assert.Equal(t, 7, activity.RawLinesAdded)
	assert.Equal(t, 0, activity.RawLinesRemoved)
	assert.Equal(t, 1, activity.FilesChanged)
}

func TestPartition(t *testing.T) {
	testCases := []struct {
		name                      string
		rawAdded, rawRemoved      int
		wantAdd, wantRem, wantMod int
	}{
		{"pure addition", 10, 0, 10, 0, 0},
		{"pure removal", 0, 7, 0, 7, 0},
		{"balanced churn", 5, 5, 0, 0, 5},
		{"more added", 12, 4, 8, 0, 4},
		{"more removed", 3, 9, 0, 6, 3},
		{"nothing", 0, 0, 0, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			add, rem, mod := Partition(tc.rawAdded, tc.rawRemoved)
			assert.Equal(t, tc.wantAdd, add)
			assert.Equal(t, tc.wantRem, rem)
			assert.Equal(t, tc.wantMod, mod)

			// Partition invariant: complements reconstruct the raw totals.
			assert.Equal(t, tc.rawAdded, add+mod)
			assert.Equal(t, tc.rawRemoved, rem+mod)
		})
	}
}

func TestParseChurnValue(t *testing.T) {
	assert.Equal(t, 42, parseChurnValue("42"))
	assert.Equal(t, 0, parseChurnValue("-"))
	assert.Equal(t, 0, parseChurnValue("garbage"))
	assert.Equal(t, 0, parseChurnValue("-5"))
}
