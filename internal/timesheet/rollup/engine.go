// Package rollup combines weekly records into the ephemeral aggregate
// views served by dashboards and exports. All functions are pure reads;
// nothing here is persisted.
package rollup

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/domain"
)

// HourFunc extracts the hours a record contributes to the active view.
// Aggregation accumulates these values in full precision and rounds once
// at the end.
type HourFunc func(*domain.WeeklyRecord) float64

// FullHours counts every logged day of the record. Use for pre-filtered
// inputs such as the output of domain.FilterRange.
func FullHours() HourFunc {
	return func(r *domain.WeeklyRecord) float64 {
		return r.DayHours.Total()
	}
}

// ForMonth counts only the hours attributed to the given month. Records
// without a fragment for the month contribute nothing.
func ForMonth(monthKey string) HourFunc {
	return func(r *domain.WeeklyRecord) float64 {
		fragment, ok := r.MonthHours[monthKey]
		if !ok {
			return 0
		}
		return fragment.Total()
	}
}

// Engine aggregates records with locale-aware name ordering
type Engine struct {
	collator *collate.Collator
}

// New creates an Engine ordering names for the given locale
func New(tag language.Tag) *Engine {
	return &Engine{
		collator: collate.New(tag, collate.IgnoreCase),
	}
}

// CompareNames compares two display names using the engine's collation
func (e *Engine) CompareNames(a, b string) int {
	return e.collator.CompareString(a, b)
}

// lessByHours orders by hours descending with a stable name tie-break
func (e *Engine) lessByHours(hoursA, hoursB float64, nameA, nameB string) bool {
	if hoursA != hoursB {
		return hoursA > hoursB
	}
	return e.collator.CompareString(nameA, nameB) < 0
}
