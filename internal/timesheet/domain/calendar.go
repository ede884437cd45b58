package domain

import "time"

// The calendar functions operate on timezone-naive calendar dates anchored
// in UTC. All callers must hold that convention or cross-boundary weeks
// shift by a day.

// MondayOf returns the Monday that starts the given week of the year.
//
// The week number uses a simplified offset scheme: January 1st plus
// (week-1)*7 days, rounded back to the Monday of that week. This is NOT
// strict ISO-8601 numbering and must not be "corrected" to it; every
// persisted record and every month attribution depends on this exact
// scheme.
func MondayOf(year, week int) time.Time {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	d := jan1.AddDate(0, 0, (week-1)*7)

	// Round back to Monday (week starts Monday)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// MonthKeyOf returns the canonical "YYYY-MM" key for the date's month
func MonthKeyOf(date time.Time) string {
	return date.Format("2006-01")
}

// DateOfWeekday returns the calendar date of weekday index 0..4
// (Monday..Friday) within the week starting at weekStart.
func DateOfWeekday(weekStart time.Time, index int) time.Time {
	return weekStart.AddDate(0, 0, index)
}

// DateOnly truncates t to its calendar date in UTC
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MonthKeysBetween returns the "YYYY-MM" keys of every month touched by
// the inclusive date range, in chronological order. An inverted range
// yields no keys.
func MonthKeysBetween(start, end time.Time) []string {
	start = DateOnly(start)
	end = DateOnly(end)
	if start.After(end) {
		return nil
	}

	var keys []string
	cursor := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cursor.After(end) {
		keys = append(keys, MonthKeyOf(cursor))
		cursor = cursor.AddDate(0, 1, 0)
	}
	return keys
}
