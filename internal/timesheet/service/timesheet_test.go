package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/domain"
	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/service"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/errors"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/messaging"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/testutil"
)

func TestTimesheetService_SaveWeek(t *testing.T) {
	testutil.SkipIfShort(t)
	ctx := context.Background()
	ts := newTestServices(t)

	user := ts.user(t, ctx)
	project := ts.project(t, ctx)

	record, err := ts.timesheets.SaveWeek(ctx, user.ID, service.SaveWeekInput{
		ProjectID:  project.ID,
		Year:       2025,
		WeekNumber: 14,
		Hours:      domain.DayHours{Monday: 8, Tuesday: 8, Wednesday: 8, Thursday: 8, Friday: 8},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusDraft, record.Status)
	assert.Equal(t, 40.0, record.TotalHours())
	assert.ElementsMatch(t, []string{"2025-03", "2025-04"}, record.MonthHours.MonthKeys())
	assert.Equal(t, 8.0, domain.HoursForMonth(record, "2025-03"))
	assert.Equal(t, 32.0, domain.HoursForMonth(record, "2025-04"))

	ts.published.AssertEventPublished(t, messaging.EventTimesheetSaved)
}

func TestTimesheetService_SaveWeek_Submit(t *testing.T) {
	testutil.SkipIfShort(t)
	ctx := context.Background()
	ts := newTestServices(t)

	user := ts.user(t, ctx)
	project := ts.project(t, ctx)

	record, err := ts.timesheets.SaveWeek(ctx, user.ID, service.SaveWeekInput{
		ProjectID:  project.ID,
		Year:       2025,
		WeekNumber: 10,
		Hours:      domain.DayHours{Monday: 8, Tuesday: 8},
		Submit:     true,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusSubmitted, record.Status)
	require.NotNil(t, record.SubmittedAt)

	status := domain.StatusForMonth(record, "2025-03")
	require.NotNil(t, status)
	assert.Equal(t, domain.StatusSubmitted, *status)

	ts.published.AssertEventPublished(t, messaging.EventTimesheetSubmitted)
}

func TestTimesheetService_SaveWeek_CarriesBucketStatusForward(t *testing.T) {
	testutil.SkipIfShort(t)
	ctx := context.Background()
	ts := newTestServices(t)

	user := ts.user(t, ctx)
	project := ts.project(t, ctx)

	// submit a straddling week, then reject it to unlock editing
	record, err := ts.timesheets.SaveWeek(ctx, user.ID, service.SaveWeekInput{
		ProjectID:  project.ID,
		Year:       2025,
		WeekNumber: 14,
		Hours:      domain.DayHours{Monday: 8, Tuesday: 8, Wednesday: 8, Thursday: 8, Friday: 8},
		Submit:     true,
	})
	require.NoError(t, err)

	reviewer := ts.user(t, ctx, testutil.AsManager())
	_, err = ts.approvals.RejectWeek(ctx, record.ID, reviewer.ID, "wrong project")
	require.NoError(t, err)

	// change only the April days; the March bucket is untouched
	updated, err := ts.timesheets.SaveWeek(ctx, user.ID, service.SaveWeekInput{
		ProjectID:  project.ID,
		Year:       2025,
		WeekNumber: 14,
		Hours:      domain.DayHours{Monday: 8, Tuesday: 4, Wednesday: 8, Thursday: 8, Friday: 8},
	})
	require.NoError(t, err)

	march := domain.StatusForMonth(updated, "2025-03")
	require.NotNil(t, march)
	assert.Equal(t, domain.StatusRejected, *march)

	april := domain.StatusForMonth(updated, "2025-04")
	require.NotNil(t, april)
	assert.Equal(t, domain.StatusDraft, *april)
}

func TestTimesheetService_SaveWeek_ApprovedWeekLocked(t *testing.T) {
	testutil.SkipIfShort(t)
	ctx := context.Background()
	ts := newTestServices(t)

	user := ts.user(t, ctx)
	reviewer := ts.user(t, ctx, testutil.AsManager())
	project := ts.project(t, ctx)

	record, err := ts.timesheets.SaveWeek(ctx, user.ID, service.SaveWeekInput{
		ProjectID:  project.ID,
		Year:       2025,
		WeekNumber: 10,
		Hours:      domain.DayHours{Monday: 8},
		Submit:     true,
	})
	require.NoError(t, err)

	_, err = ts.approvals.ApproveWeek(ctx, record.ID, reviewer.ID)
	require.NoError(t, err)

	_, err = ts.timesheets.SaveWeek(ctx, user.ID, service.SaveWeekInput{
		ProjectID:  project.ID,
		Year:       2025,
		WeekNumber: 10,
		Hours:      domain.DayHours{Monday: 4},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConflict))
}

func TestTimesheetService_SaveWeek_InactiveProject(t *testing.T) {
	testutil.SkipIfShort(t)
	ctx := context.Background()
	ts := newTestServices(t)

	user := ts.user(t, ctx)
	project := ts.project(t, ctx, testutil.WithProjectStatus("archived"))

	_, err := ts.timesheets.SaveWeek(ctx, user.ID, service.SaveWeekInput{
		ProjectID:  project.ID,
		Year:       2025,
		WeekNumber: 10,
		Hours:      domain.DayHours{Monday: 8},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrBadRequest))
}

func TestTimesheetService_GetWeek(t *testing.T) {
	testutil.SkipIfShort(t)
	ctx := context.Background()
	ts := newTestServices(t)

	user := ts.user(t, ctx)
	apollo := ts.project(t, ctx, testutil.WithProjectName("Apollo"))
	borealis := ts.project(t, ctx, testutil.WithProjectName("Borealis"))

	for _, projectID := range []string{apollo.ID, borealis.ID} {
		_, err := ts.timesheets.SaveWeek(ctx, user.ID, service.SaveWeekInput{
			ProjectID:  projectID,
			Year:       2025,
			WeekNumber: 12,
			Hours:      domain.DayHours{Monday: 4},
		})
		require.NoError(t, err)
	}

	records, err := ts.timesheets.GetWeek(ctx, user.ID, 2025, 12)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Apollo", *records[0].ProjectName)
	assert.Equal(t, "Borealis", *records[1].ProjectName)
}

func TestTimesheetService_GetMonth(t *testing.T) {
	testutil.SkipIfShort(t)
	ctx := context.Background()
	ts := newTestServices(t)

	user := ts.user(t, ctx)
	project := ts.project(t, ctx)

	// week 14 straddles March and April; week 15 is pure April
	_, err := ts.timesheets.SaveWeek(ctx, user.ID, service.SaveWeekInput{
		ProjectID:  project.ID,
		Year:       2025,
		WeekNumber: 14,
		Hours:      domain.DayHours{Monday: 8, Tuesday: 8, Wednesday: 8, Thursday: 8, Friday: 8},
	})
	require.NoError(t, err)
	_, err = ts.timesheets.SaveWeek(ctx, user.ID, service.SaveWeekInput{
		ProjectID:  project.ID,
		Year:       2025,
		WeekNumber: 15,
		Hours:      domain.DayHours{Monday: 8, Tuesday: 8},
	})
	require.NoError(t, err)

	april, err := ts.timesheets.GetMonth(ctx, user.ID, "2025-04")
	require.NoError(t, err)
	require.Len(t, april.Entries, 2)
	assert.Equal(t, 48.0, april.TotalHours)

	march, err := ts.timesheets.GetMonth(ctx, user.ID, "2025-03")
	require.NoError(t, err)
	require.Len(t, march.Entries, 1)
	assert.Equal(t, 8.0, march.TotalHours)

	empty, err := ts.timesheets.GetMonth(ctx, user.ID, "2025-06")
	require.NoError(t, err)
	assert.Empty(t, empty.Entries)
	assert.Equal(t, 0.0, empty.TotalHours)
}
