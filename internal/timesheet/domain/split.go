package domain

// SplitWeek attributes the five day values of a week to their calendar
// months and returns the resulting month_hours mapping. Five consecutive
// weekdays span at most two months, but the boundary can fall between any
// pair of days, so every day is bucketed by its own calendar date.
//
// A fragment is present in the result only if at least one of its day
// values is nonzero; zero days inside a kept fragment are written as 0.
//
// prev is the record's previous month_hours mapping, used for status
// carry-forward on re-split: a fragment whose day values are unchanged
// from prev keeps its full lifecycle, while a changed or new fragment
// starts over as draft with cleared lifecycle fields. Pass nil on first
// entry.
func SplitWeek(days DayHours, weekNumber, year int, prev MonthHours) MonthHours {
	weekStart := MondayOf(year, weekNumber)

	result := make(MonthHours)
	for i := 0; i < DaysPerWeek; i++ {
		monthKey := MonthKeyOf(DateOfWeekday(weekStart, i))

		fragment := result[monthKey]
		fragment.Set(i, days.At(i))
		result[monthKey] = fragment
	}

	for monthKey, fragment := range result {
		if fragment.IsZero() {
			delete(result, monthKey)
			continue
		}

		if prevFragment, ok := prev[monthKey]; ok && prevFragment.DayHours == fragment.DayHours {
			// Unchanged days keep their approval lifecycle
			fragment.Status = prevFragment.Status
			fragment.SubmittedAt = prevFragment.SubmittedAt
			fragment.ApprovedBy = prevFragment.ApprovedBy
			fragment.ApprovedAt = prevFragment.ApprovedAt
			fragment.RejectionReason = prevFragment.RejectionReason
		} else {
			fragment.Status = StatusDraft
			fragment.SubmittedAt = nil
			fragment.ApprovedBy = nil
			fragment.ApprovedAt = nil
			fragment.RejectionReason = nil
		}
		result[monthKey] = fragment
	}

	return result
}
