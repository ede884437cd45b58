package domain

import "time"

// FilterRange re-slices weekly records down to the days inside the
// inclusive [start, end] date window and returns new record values with
// recomputed day hours and month fragments. The input records are never
// mutated; other views rely on the unfiltered data.
//
// Records with no surviving day are dropped from the output entirely.
// A start after end is a vacuous filter and yields an empty result.
func FilterRange(records []*WeeklyRecord, start, end time.Time) []*WeeklyRecord {
	start = DateOnly(start)
	end = DateOnly(end)

	filtered := make([]*WeeklyRecord, 0, len(records))
	for _, record := range records {
		if fr := filterRecord(record, start, end); fr != nil {
			filtered = append(filtered, fr)
		}
	}
	return filtered
}

func filterRecord(record *WeeklyRecord, start, end time.Time) *WeeklyRecord {
	weekStart := MondayOf(record.Year, record.WeekNumber)

	inRange := [DaysPerWeek]bool{}
	var days DayHours
	for i := 0; i < DaysPerWeek; i++ {
		date := DateOfWeekday(weekStart, i)
		if date.Before(start) || date.After(end) {
			continue
		}
		inRange[i] = true
		days.Set(i, record.At(i))
	}

	monthHours := make(MonthHours, len(record.MonthHours))
	for monthKey, fragment := range record.MonthHours {
		kept := fragment
		kept.DayHours = DayHours{}
		for i := 0; i < DaysPerWeek; i++ {
			if inRange[i] {
				kept.Set(i, fragment.At(i))
			}
		}
		if kept.IsZero() {
			continue
		}
		monthHours[monthKey] = kept
	}

	if days.IsZero() && len(monthHours) == 0 {
		return nil
	}

	out := *record
	out.DayHours = days
	out.MonthHours = monthHours
	return &out
}
