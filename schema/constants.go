package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of a rendered report artifact.
	OutputMode string

	// Period represents a report window selector.
	Period string
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default: sectioned markdown document
	JSONOut    OutputMode = "json"
	CSVOut     OutputMode = "csv"
	HTMLOut    OutputMode = "html"
	ParquetOut OutputMode = "parquet"
)

// All report periods supported.
const (
	DayPeriod    Period = "day"
	WeekPeriod   Period = "week" // default
	MonthPeriod  Period = "month"
	AllPeriod    Period = "all"
	CustomPeriod Period = "custom"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	JSONOut:    {},
	CSVOut:     {},
	HTMLOut:    {},
	ParquetOut: {},
}

// ValidPeriods lists all valid report periods.
var ValidPeriods = map[Period]struct{}{
	DayPeriod:    {},
	WeekPeriod:   {},
	MonthPeriod:  {},
	AllPeriod:    {},
	CustomPeriod: {},
}

// Extension returns the file extension an OutputMode renders to.
func (m OutputMode) Extension() string {
	switch m {
	case JSONOut:
		return ".json"
	case CSVOut:
		return ".csv"
	case HTMLOut:
		return ".html"
	case ParquetOut:
		return ".parquet"
	default:
		return ".md"
	}
}
