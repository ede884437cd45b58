package domain

import "math"

// Weekday indices for the five working days of a week
const (
	Monday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	DaysPerWeek = 5
)

// DayHours holds the hours logged for the five working days of one week.
// The db tags map directly onto the weekly_records columns; the json keys
// are the canonical wire names used inside month_hours fragments.
type DayHours struct {
	Monday    float64 `json:"monday" db:"monday_hours"`
	Tuesday   float64 `json:"tuesday" db:"tuesday_hours"`
	Wednesday float64 `json:"wednesday" db:"wednesday_hours"`
	Thursday  float64 `json:"thursday" db:"thursday_hours"`
	Friday    float64 `json:"friday" db:"friday_hours"`
}

// At returns the hours for weekday index 0..4 (Monday..Friday).
// Out-of-range indices return 0.
func (d DayHours) At(index int) float64 {
	switch index {
	case Monday:
		return d.Monday
	case Tuesday:
		return d.Tuesday
	case Wednesday:
		return d.Wednesday
	case Thursday:
		return d.Thursday
	case Friday:
		return d.Friday
	}
	return 0
}

// Set assigns the hours for weekday index 0..4. Out-of-range indices are
// ignored.
func (d *DayHours) Set(index int, hours float64) {
	switch index {
	case Monday:
		d.Monday = hours
	case Tuesday:
		d.Tuesday = hours
	case Wednesday:
		d.Wednesday = hours
	case Thursday:
		d.Thursday = hours
	case Friday:
		d.Friday = hours
	}
}

// Total returns the full-precision sum of the five day values
func (d DayHours) Total() float64 {
	return d.Monday + d.Tuesday + d.Wednesday + d.Thursday + d.Friday
}

// IsZero reports whether all five day values are zero
func (d DayHours) IsZero() bool {
	return d.Monday == 0 && d.Tuesday == 0 && d.Wednesday == 0 && d.Thursday == 0 && d.Friday == 0
}

// Round2 rounds v to two decimal places. Totals accumulate in full
// precision and are rounded once at the point of final aggregation.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
