package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateRangeDays(t *testing.T) {
	start := time.Date(2026, 8, 22, 0, 0, 0, 0, time.Local)
	end := time.Date(2026, 8, 28, 23, 59, 59, 0, time.Local)

	assert.Equal(t, 7, DateRange{Start: start, End: end}.Days())
	assert.Equal(t, 1, DateRange{Start: end, End: end}.Days())
	assert.Equal(t, 1, DateRange{Start: end, End: start}.Days(), "inverted ranges clamp to one day")
}

func TestEffortEstimateHours(t *testing.T) {
	assert.Equal(t, 1.5, EffortEstimate{Minutes: 90}.Hours())
	assert.Equal(t, 0.0, EffortEstimate{}.Hours())
}

func TestOutputModeExtension(t *testing.T) {
	assert.Equal(t, ".md", TextOut.Extension())
	assert.Equal(t, ".json", JSONOut.Extension())
	assert.Equal(t, ".csv", CSVOut.Extension())
	assert.Equal(t, ".html", HTMLOut.Extension())
	assert.Equal(t, ".parquet", ParquetOut.Extension())
}
