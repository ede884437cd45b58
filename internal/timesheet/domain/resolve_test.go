package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func splitRecord(t *testing.T, days DayHours, week, year int) *WeeklyRecord {
	t.Helper()
	return &WeeklyRecord{
		Year:       year,
		WeekNumber: week,
		DayHours:   days,
		Status:     StatusSubmitted,
		MonthHours: SplitWeek(days, week, year, nil),
	}
}

func TestHoursForMonth_SplitWeek(t *testing.T) {
	record := splitRecord(t, DayHours{Monday: 8, Tuesday: 8, Wednesday: 8, Thursday: 8, Friday: 8}, 14, 2025)

	assert.Equal(t, 8.0, HoursForMonth(record, "2025-03"))
	assert.Equal(t, 32.0, HoursForMonth(record, "2025-04"))
	assert.Equal(t, record.TotalHours(), HoursForMonth(record, "2025-03")+HoursForMonth(record, "2025-04"))
}

func TestHoursForMonth_MissingFragment(t *testing.T) {
	record := splitRecord(t, DayHours{Monday: 8}, 10, 2025)

	assert.Zero(t, HoursForMonth(record, "2025-07"))
}

func TestHoursForMonth_NilMonthHours(t *testing.T) {
	// Legacy records may have no month_hours at all; degrade to no data
	record := &WeeklyRecord{Year: 2025, WeekNumber: 10}

	assert.Zero(t, HoursForMonth(record, "2025-03"))
	assert.False(t, IsInMonth(record, "2025-03"))
	assert.Nil(t, StatusForMonth(record, "2025-03"))
}

func TestHoursForMonth_Rounding(t *testing.T) {
	record := splitRecord(t, DayHours{Monday: 1.11, Tuesday: 2.22, Wednesday: 3.33}, 10, 2025)

	assert.Equal(t, 6.66, HoursForMonth(record, "2025-03"))
}

func TestIsInMonth(t *testing.T) {
	record := splitRecord(t, DayHours{Monday: 8, Tuesday: 8, Wednesday: 8, Thursday: 8, Friday: 8}, 14, 2025)

	assert.True(t, IsInMonth(record, "2025-03"))
	assert.True(t, IsInMonth(record, "2025-04"))
	assert.False(t, IsInMonth(record, "2025-05"))
}

func TestIsInMonth_AllZeroFragment(t *testing.T) {
	// A stored fragment whose days were all zeroed out by an edit does not
	// count as membership
	record := &WeeklyRecord{
		Year:       2025,
		WeekNumber: 14,
		MonthHours: MonthHours{
			"2025-04": {Status: StatusApproved},
		},
	}

	assert.False(t, IsInMonth(record, "2025-04"))
	assert.Zero(t, HoursForMonth(record, "2025-04"))
}

func TestStatusForMonth(t *testing.T) {
	record := splitRecord(t, DayHours{Monday: 8, Tuesday: 8, Wednesday: 8, Thursday: 8, Friday: 8}, 14, 2025)

	march := record.MonthHours["2025-03"]
	march.Status = StatusApproved
	record.MonthHours["2025-03"] = march

	got := StatusForMonth(record, "2025-03")
	assert.NotNil(t, got)
	assert.Equal(t, StatusApproved, *got)

	got = StatusForMonth(record, "2025-04")
	assert.NotNil(t, got)
	assert.Equal(t, StatusDraft, *got)

	assert.Nil(t, StatusForMonth(record, "2025-09"))
}
