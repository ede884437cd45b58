package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthHours_ScanValue(t *testing.T) {
	original := SplitWeek(DayHours{Monday: 8, Tuesday: 6.5, Wednesday: 8, Thursday: 8, Friday: 8}, 14, 2025, nil)

	value, err := original.Value()
	require.NoError(t, err)

	var scanned MonthHours
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, original, scanned)
}

func TestMonthHours_ScanNil(t *testing.T) {
	var m MonthHours
	require.NoError(t, m.Scan(nil))
	assert.NotNil(t, m)
	assert.Empty(t, m)
}

func TestMonthHours_ValueNil(t *testing.T) {
	var m MonthHours
	value, err := m.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), value)
}

func TestMonthHours_MonthKeys(t *testing.T) {
	m := MonthHours{
		"2025-04": {},
		"2024-12": {},
		"2025-03": {},
	}

	assert.Equal(t, []string{"2024-12", "2025-03", "2025-04"}, m.MonthKeys())
}

func TestWeeklyRecord_TotalHours(t *testing.T) {
	record := &WeeklyRecord{DayHours: DayHours{Monday: 8.25, Tuesday: 7.75, Friday: 4}}
	assert.Equal(t, 20.0, record.TotalHours())

	empty := &WeeklyRecord{}
	assert.Zero(t, empty.TotalHours())
}

func TestWeeklyRecord_GroupKey(t *testing.T) {
	record := &WeeklyRecord{UserID: "u1", WeekNumber: 14, Year: 2025}
	assert.Equal(t, "u1-14-2025", record.GroupKey())
}

func TestStatus_Valid(t *testing.T) {
	for _, s := range []Status{StatusDraft, StatusSubmitted, StatusApproved, StatusRejected} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, Status("pending").Valid())
	assert.False(t, Status("").Valid())
}
