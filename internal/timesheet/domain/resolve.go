package domain

// The resolver is the single source of truth for month attribution.
// Callers must never attribute a week to a month from week_number/year
// alone; a split week would then be wrongly counted into one month.

// HoursForMonth returns the record's hours attributed to the given month,
// rounded to two decimal places. A missing fragment (including a nil or
// absent month_hours map) yields 0.
func HoursForMonth(record *WeeklyRecord, monthKey string) float64 {
	fragment, ok := record.MonthHours[monthKey]
	if !ok {
		return 0
	}
	return Round2(fragment.Total())
}

// IsInMonth reports whether the record contributes hours to the given
// month. A fragment with all-zero days (possible after an edit) does not
// count as membership even if it is still stored.
func IsInMonth(record *WeeklyRecord, monthKey string) bool {
	fragment, ok := record.MonthHours[monthKey]
	if !ok {
		return false
	}
	return !fragment.IsZero()
}

// StatusForMonth returns the fragment's own status for the given month,
// or nil if the record has no fragment for it.
func StatusForMonth(record *WeeklyRecord, monthKey string) *Status {
	fragment, ok := record.MonthHours[monthKey]
	if !ok {
		return nil
	}
	status := fragment.Status
	return &status
}
