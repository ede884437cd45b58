package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMondayOf(t *testing.T) {
	tests := []struct {
		name string
		year int
		week int
		want time.Time
	}{
		// 2025-01-01 is a Wednesday; week 1 rounds back into December
		{"week 1 of 2025", 2025, 1, date(2024, time.December, 30)},
		{"week 2 of 2025", 2025, 2, date(2025, time.January, 6)},
		// The March/April boundary week used throughout the codebase
		{"week 14 of 2025 straddles months", 2025, 14, date(2025, time.March, 31)},
		{"week 15 of 2025", 2025, 15, date(2025, time.April, 7)},
		// 2024-01-01 is a Monday, so no rounding happens
		{"week 1 of 2024", 2024, 1, date(2024, time.January, 1)},
		{"week 53 of 2024", 2024, 53, date(2024, time.December, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MondayOf(tt.year, tt.week)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, time.Monday, got.Weekday())
		})
	}
}

func TestMondayOf_AlwaysMonday(t *testing.T) {
	for year := 2020; year <= 2030; year++ {
		for week := 1; week <= 53; week++ {
			got := MondayOf(year, week)
			if got.Weekday() != time.Monday {
				t.Fatalf("MondayOf(%d, %d) = %s, not a Monday", year, week, got)
			}
		}
	}
}

func TestMondayOf_ConsecutiveWeeksAreSevenDaysApart(t *testing.T) {
	for week := 1; week < 53; week++ {
		this := MondayOf(2025, week)
		next := MondayOf(2025, week+1)
		assert.Equal(t, this.AddDate(0, 0, 7), next, "week %d", week)
	}
}

func TestMonthKeyOf(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{date(2025, time.March, 31), "2025-03"},
		{date(2025, time.April, 1), "2025-04"},
		{date(2025, time.January, 5), "2025-01"},
		{date(2024, time.December, 30), "2024-12"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MonthKeyOf(tt.date))
	}
}

func TestDateOfWeekday(t *testing.T) {
	weekStart := date(2025, time.March, 31)

	assert.Equal(t, date(2025, time.March, 31), DateOfWeekday(weekStart, Monday))
	assert.Equal(t, date(2025, time.April, 1), DateOfWeekday(weekStart, Tuesday))
	assert.Equal(t, date(2025, time.April, 4), DateOfWeekday(weekStart, Friday))
}

func TestMonthKeysBetween(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  []string
	}{
		{
			name:  "within one month",
			start: date(2025, time.April, 1),
			end:   date(2025, time.April, 30),
			want:  []string{"2025-04"},
		},
		{
			name:  "spanning a year boundary",
			start: date(2024, time.November, 15),
			end:   date(2025, time.February, 3),
			want:  []string{"2024-11", "2024-12", "2025-01", "2025-02"},
		},
		{
			name:  "single day",
			start: date(2025, time.March, 31),
			end:   date(2025, time.March, 31),
			want:  []string{"2025-03"},
		},
		{
			name:  "inverted range",
			start: date(2025, time.May, 1),
			end:   date(2025, time.April, 1),
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthKeysBetween(tt.start, tt.end))
		})
	}
}

func TestDateOnly(t *testing.T) {
	berlin, _ := time.LoadLocation("Europe/Berlin")
	ts := time.Date(2025, time.April, 1, 23, 30, 0, 0, berlin)

	got := DateOnly(ts)
	assert.Equal(t, date(2025, time.April, 1), got)
}
