package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterRange_PartialWeek(t *testing.T) {
	record := splitRecord(t, DayHours{Monday: 8, Tuesday: 8, Wednesday: 8, Thursday: 8, Friday: 8}, 14, 2025)

	got := FilterRange([]*WeeklyRecord{record}, date(2025, time.April, 1), date(2025, time.April, 2))

	require.Len(t, got, 1)
	assert.Equal(t, 16.0, got[0].TotalHours())
	assert.Equal(t, DayHours{Tuesday: 8, Wednesday: 8}, got[0].DayHours)

	require.Len(t, got[0].MonthHours, 1)
	april, ok := got[0].MonthHours["2025-04"]
	require.True(t, ok)
	assert.Equal(t, DayHours{Tuesday: 8, Wednesday: 8}, april.DayHours)
}

func TestFilterRange_FullContainment(t *testing.T) {
	record := splitRecord(t, DayHours{Monday: 7.5, Wednesday: 4, Friday: 8}, 14, 2025)

	got := FilterRange([]*WeeklyRecord{record}, date(2025, time.March, 1), date(2025, time.April, 30))

	require.Len(t, got, 1)
	assert.Equal(t, record.TotalHours(), got[0].TotalHours())
	assert.Equal(t, record.DayHours, got[0].DayHours)
}

func TestFilterRange_FullyOutside(t *testing.T) {
	record := splitRecord(t, DayHours{Monday: 8, Tuesday: 8}, 14, 2025)

	got := FilterRange([]*WeeklyRecord{record}, date(2025, time.June, 1), date(2025, time.June, 30))

	assert.Empty(t, got)
}

func TestFilterRange_StartAfterEnd(t *testing.T) {
	record := splitRecord(t, DayHours{Monday: 8, Tuesday: 8, Wednesday: 8, Thursday: 8, Friday: 8}, 14, 2025)

	got := FilterRange([]*WeeklyRecord{record}, date(2025, time.April, 10), date(2025, time.April, 1))

	assert.Empty(t, got)
}

func TestFilterRange_InclusiveBounds(t *testing.T) {
	// Week 14: Monday 2025-03-31 .. Friday 2025-04-04
	record := splitRecord(t, DayHours{Monday: 8, Tuesday: 8, Wednesday: 8, Thursday: 8, Friday: 8}, 14, 2025)

	got := FilterRange([]*WeeklyRecord{record}, date(2025, time.March, 31), date(2025, time.March, 31))

	require.Len(t, got, 1)
	assert.Equal(t, 8.0, got[0].TotalHours())
	assert.Equal(t, DayHours{Monday: 8}, got[0].DayHours)

	got = FilterRange([]*WeeklyRecord{record}, date(2025, time.April, 4), date(2025, time.April, 4))

	require.Len(t, got, 1)
	assert.Equal(t, DayHours{Friday: 8}, got[0].DayHours)
}

func TestFilterRange_DoesNotMutateInput(t *testing.T) {
	record := splitRecord(t, DayHours{Monday: 8, Tuesday: 8, Wednesday: 8, Thursday: 8, Friday: 8}, 14, 2025)
	originalDays := record.DayHours
	originalMarch := record.MonthHours["2025-03"]

	_ = FilterRange([]*WeeklyRecord{record}, date(2025, time.April, 1), date(2025, time.April, 2))

	assert.Equal(t, originalDays, record.DayHours)
	assert.Equal(t, originalMarch, record.MonthHours["2025-03"])
	assert.Len(t, record.MonthHours, 2)
}

func TestFilterRange_KeepsFragmentStatus(t *testing.T) {
	record := splitRecord(t, DayHours{Monday: 8, Tuesday: 8, Wednesday: 8, Thursday: 8, Friday: 8}, 14, 2025)
	april := record.MonthHours["2025-04"]
	april.Status = StatusApproved
	record.MonthHours["2025-04"] = april

	got := FilterRange([]*WeeklyRecord{record}, date(2025, time.April, 1), date(2025, time.April, 2))

	require.Len(t, got, 1)
	assert.Equal(t, StatusApproved, got[0].MonthHours["2025-04"].Status)
}

func TestFilterRange_EmptyInput(t *testing.T) {
	got := FilterRange(nil, date(2025, time.April, 1), date(2025, time.April, 30))
	assert.Empty(t, got)
}

func TestFilterRange_MultipleRecords(t *testing.T) {
	inRange := splitRecord(t, DayHours{Monday: 4}, 14, 2025)
	outOfRange := splitRecord(t, DayHours{Monday: 8}, 2, 2025)

	got := FilterRange([]*WeeklyRecord{inRange, outOfRange}, date(2025, time.March, 31), date(2025, time.April, 6))

	require.Len(t, got, 1)
	assert.Equal(t, 4.0, got[0].TotalHours())
}
