package core

import (
	"math"

	"github.com/huangsam/workscope/schema"
)

// Primary model coefficients: minutes per unit of change. The two complexity
// multipliers are fixed and always applied together.
const (
	minutesPerAddedLine    = 5.0
	minutesPerModifiedLine = 3.0
	minutesPerRemovedLine  = 1.5
	minutesPerCommit       = 15.0

	complexityMultiplierA = 1.2
	complexityMultiplierB = 1.3

	// effortFloorMinutes applies whenever any commits exist at all.
	effortFloorMinutes = 30
)

// Estimate maps aggregated change counts to an effort duration. The model is
// pure: identical activity always yields identical minutes.
func Estimate(activity schema.GitActivity) schema.EffortEstimate {
	minutes := float64(activity.LinesAdded)*minutesPerAddedLine +
		float64(activity.LinesModified)*minutesPerModifiedLine +
		float64(activity.LinesRemoved)*minutesPerRemovedLine +
		float64(activity.CommitCount)*minutesPerCommit

	minutes *= complexityMultiplierA * complexityMultiplierB

	rounded := int64(math.Round(minutes))
	if activity.CommitCount > 0 && rounded < effortFloorMinutes {
		rounded = effortFloorMinutes
	}
	return schema.EffortEstimate{Minutes: rounded}
}

// GitBasis derives the lines-changed basis for the version-control view:
// additions count in full, modifications half, removals subtract half.
// The basis never goes negative.
func GitBasis(activity schema.GitActivity) float64 {
	basis := float64(activity.LinesAdded) +
		0.5*float64(activity.LinesModified) -
		0.5*float64(activity.LinesRemoved)
	return math.Max(0, basis)
}

// FilesystemBasis derives the basis for the filesystem view: the total
// current text volume rather than a change delta.
func FilesystemBasis(snapshot *schema.FilesystemSnapshot) float64 {
	if snapshot == nil {
		return 0
	}
	return float64(snapshot.SumLines)
}

// EstimateAlternative applies every catalog factor to a basis, producing the
// comparative methodology table. Each row is independent: hours = basis x
// factor, rounded to one decimal.
func EstimateAlternative(basis float64, catalog []schema.CatalogEntry) schema.EffortComparison {
	rows := make([]schema.MethodEstimate, 0, len(catalog))
	for _, entry := range catalog {
		rows = append(rows, schema.MethodEstimate{
			CatalogEntry: entry,
			Hours:        math.Round(basis*entry.Factor*10) / 10,
		})
	}
	return schema.EffortComparison{Basis: basis, Rows: rows}
}
