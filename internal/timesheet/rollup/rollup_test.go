package rollup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/domain"
)

func record(userID, userName, projectID, projectName string, week, year int, days domain.DayHours) *domain.WeeklyRecord {
	return &domain.WeeklyRecord{
		UserID:      userID,
		UserName:    &userName,
		ProjectID:   projectID,
		ProjectName: &projectName,
		Year:        year,
		WeekNumber:  week,
		DayHours:    days,
		Status:      domain.StatusSubmitted,
		MonthHours:  domain.SplitWeek(days, week, year, nil),
	}
}

func TestUtilization(t *testing.T) {
	tests := []struct {
		name      string
		used      float64
		allocated float64
		want      float64
	}{
		{"zero allocation guards to zero", 40, 0, 0},
		{"normal", 80, 160, 50},
		{"over-allocation surfaced", 120, 100, 120},
		{"zero used", 0, 160, 0},
		{"rounded", 100, 3, 3333.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Utilization(tt.used, tt.allocated))
		})
	}
}

func TestUserSummaries_MonthScoped(t *testing.T) {
	e := New(language.English)

	// Week 14 of 2025 straddles March and April
	records := []*domain.WeeklyRecord{
		record("u1", "Ada", "p1", "Apollo", 14, 2025, domain.DayHours{Monday: 8, Tuesday: 8, Wednesday: 8, Thursday: 8, Friday: 8}),
		record("u2", "Ben", "p1", "Apollo", 14, 2025, domain.DayHours{Tuesday: 4}),
	}

	april := e.UserSummaries(records, ForMonth("2025-04"))

	require.Len(t, april, 2)
	// Ada has 32 April hours (Tue-Fri), Ben 4
	assert.Equal(t, "Ada", april[0].UserName)
	assert.Equal(t, 32.0, april[0].TotalHours)
	assert.Equal(t, "Ben", april[1].UserName)
	assert.Equal(t, 4.0, april[1].TotalHours)

	march := e.UserSummaries(records, ForMonth("2025-03"))

	// Ben logged nothing in March and must not appear
	require.Len(t, march, 1)
	assert.Equal(t, "Ada", march[0].UserName)
	assert.Equal(t, 8.0, march[0].TotalHours)
}

func TestUserSummaries_ProjectAndWeekBreakdown(t *testing.T) {
	e := New(language.English)

	records := []*domain.WeeklyRecord{
		record("u1", "Ada", "p1", "Apollo", 10, 2025, domain.DayHours{Monday: 8, Tuesday: 8}),
		record("u1", "Ada", "p2", "Borealis", 10, 2025, domain.DayHours{Wednesday: 4}),
		record("u1", "Ada", "p1", "Apollo", 11, 2025, domain.DayHours{Monday: 6}),
	}

	got := e.UserSummaries(records, FullHours())

	require.Len(t, got, 1)
	summary := got[0]
	assert.Equal(t, 26.0, summary.TotalHours)

	require.Len(t, summary.Projects, 2)
	assert.Equal(t, "Apollo", summary.Projects[0].ProjectName)
	assert.Equal(t, 22.0, summary.Projects[0].Hours)
	assert.Equal(t, "Borealis", summary.Projects[1].ProjectName)
	assert.Equal(t, 4.0, summary.Projects[1].Hours)

	require.Len(t, summary.Weeks, 2)
	assert.Equal(t, 10, summary.Weeks[0].WeekNumber)
	assert.Equal(t, 20.0, summary.Weeks[0].Hours)
	assert.Equal(t, 11, summary.Weeks[1].WeekNumber)
}

func TestUserSummaries_TieBreakByName(t *testing.T) {
	e := New(language.English)

	records := []*domain.WeeklyRecord{
		record("u2", "zoe", "p1", "Apollo", 10, 2025, domain.DayHours{Monday: 8}),
		record("u1", "Ada", "p1", "Apollo", 10, 2025, domain.DayHours{Tuesday: 8}),
		record("u3", "Ben", "p1", "Apollo", 10, 2025, domain.DayHours{Wednesday: 8}),
	}

	got := e.UserSummaries(records, FullHours())

	require.Len(t, got, 3)
	// Equal hours, case-insensitive locale ordering decides
	assert.Equal(t, "Ada", got[0].UserName)
	assert.Equal(t, "Ben", got[1].UserName)
	assert.Equal(t, "zoe", got[2].UserName)
}

func TestUserSummaries_EmptyInput(t *testing.T) {
	e := New(language.English)
	assert.Empty(t, e.UserSummaries(nil, FullHours()))
}

func TestUserSummaries_RoundsOnceAtTheEnd(t *testing.T) {
	e := New(language.English)

	// Three times 0.333... style inputs would drift if rounded per step
	records := []*domain.WeeklyRecord{
		record("u1", "Ada", "p1", "Apollo", 10, 2025, domain.DayHours{Monday: 0.335}),
		record("u1", "Ada", "p1", "Apollo", 11, 2025, domain.DayHours{Monday: 0.335}),
	}

	got := e.UserSummaries(records, FullHours())

	require.Len(t, got, 1)
	assert.Equal(t, 0.67, got[0].TotalHours)
}

func TestProjectUtilizations(t *testing.T) {
	e := New(language.English)

	projects := []ProjectInfo{
		{ID: "p1", Name: "Apollo", AllocatedHours: 100},
		{ID: "p2", Name: "Borealis", AllocatedHours: 0},
		{ID: "p3", Name: "Cascade", AllocatedHours: 50},
	}
	records := []*domain.WeeklyRecord{
		record("u1", "Ada", "p1", "Apollo", 10, 2025, domain.DayHours{Monday: 8, Tuesday: 8, Wednesday: 8, Thursday: 8, Friday: 8}),
		record("u2", "Ben", "p1", "Apollo", 10, 2025, domain.DayHours{Monday: 8, Tuesday: 8, Wednesday: 8, Thursday: 8, Friday: 8}),
		record("u1", "Ada", "p1", "Apollo", 11, 2025, domain.DayHours{Monday: 8, Tuesday: 8, Wednesday: 8, Thursday: 8, Friday: 8}),
		record("u1", "Ada", "p2", "Borealis", 10, 2025, domain.DayHours{Monday: 4}),
	}

	got := e.ProjectUtilizations(records, projects, FullHours())

	require.Len(t, got, 3)

	apollo := got[0]
	assert.Equal(t, "Apollo", apollo.ProjectName)
	assert.Equal(t, 120.0, apollo.UsedHours)
	// Over-allocation is surfaced, not clamped
	assert.Equal(t, 120.0, apollo.Utilization)
	require.Len(t, apollo.Contributors, 2)
	assert.Equal(t, "Ada", apollo.Contributors[0].UserName)
	assert.Equal(t, 80.0, apollo.Contributors[0].Hours)

	borealis := got[1]
	assert.Equal(t, 4.0, borealis.UsedHours)
	// Zero allocation guards utilization to 0
	assert.Equal(t, 0.0, borealis.Utilization)

	// Projects with no hours still appear
	cascade := got[2]
	assert.Equal(t, "Cascade", cascade.ProjectName)
	assert.Zero(t, cascade.UsedHours)
	assert.Empty(t, cascade.Contributors)
}

func TestProjectUtilizations_EmptyInput(t *testing.T) {
	e := New(language.English)

	got := e.ProjectUtilizations(nil, []ProjectInfo{{ID: "p1", Name: "Apollo", AllocatedHours: 10}}, FullHours())

	require.Len(t, got, 1)
	assert.Zero(t, got[0].UsedHours)
	assert.Zero(t, got[0].Utilization)
}

func TestGroupWeeks(t *testing.T) {
	e := New(language.English)

	records := []*domain.WeeklyRecord{
		record("u1", "Ada", "p1", "Apollo", 10, 2025, domain.DayHours{Monday: 8}),
		record("u1", "Ada", "p2", "Borealis", 10, 2025, domain.DayHours{Tuesday: 4}),
		record("u1", "Ada", "p1", "Apollo", 11, 2025, domain.DayHours{Monday: 6}),
		record("u2", "Ben", "p1", "Apollo", 11, 2025, domain.DayHours{Monday: 2}),
	}

	got := e.GroupWeeks(records)

	require.Len(t, got, 3)

	// Most recent week first, then user name
	assert.Equal(t, 11, got[0].WeekNumber)
	assert.Equal(t, "Ada", got[0].UserName)
	assert.Equal(t, 6.0, got[0].TotalHours)

	assert.Equal(t, 11, got[1].WeekNumber)
	assert.Equal(t, "Ben", got[1].UserName)

	assert.Equal(t, 10, got[2].WeekNumber)
	assert.Equal(t, 12.0, got[2].TotalHours)
	assert.Len(t, got[2].Records, 2)
}

func TestGroupWeeks_Idempotent(t *testing.T) {
	e := New(language.English)

	records := []*domain.WeeklyRecord{
		record("u1", "Ada", "p1", "Apollo", 10, 2025, domain.DayHours{Monday: 8}),
		record("u2", "Ben", "p1", "Apollo", 10, 2025, domain.DayHours{Monday: 4}),
	}

	first := e.GroupWeeks(records)

	regrouped := make([]*domain.WeeklyRecord, 0)
	for _, g := range first {
		regrouped = append(regrouped, g.Records...)
	}
	second := e.GroupWeeks(regrouped)

	assert.Equal(t, first, second)
}
