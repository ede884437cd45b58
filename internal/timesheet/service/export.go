package service

import (
	"bytes"
	"context"
	"time"

	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/domain"
	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/events"
	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/export"
	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/repository"
	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/rollup"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/errors"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/logger"
)

// ExportService renders timesheet data into downloadable workbooks
type ExportService struct {
	recordRepo  *repository.RecordRepository
	projectRepo *repository.ProjectRepository
	engine      *rollup.Engine
	serializer  *export.Serializer
	publisher   *events.TimesheetEventPublisher
	logger      *logger.Logger
}

// NewExportService creates a new export service
func NewExportService(
	recordRepo *repository.RecordRepository,
	projectRepo *repository.ProjectRepository,
	engine *rollup.Engine,
	serializer *export.Serializer,
	publisher *events.TimesheetEventPublisher,
	log *logger.Logger,
) *ExportService {
	return &ExportService{
		recordRepo:  recordRepo,
		projectRepo: projectRepo,
		engine:      engine,
		serializer:  serializer,
		publisher:   publisher,
		logger:      log,
	}
}

// ProjectsExport builds the per-project workbook for one calendar month.
// Records are trimmed to the month's date window before rendering, so a
// week straddling the boundary only shows the days inside the month and
// the sheet totals agree with the summary sheet.
func (s *ExportService) ProjectsExport(ctx context.Context, monthKey, generatedBy string) (*bytes.Buffer, string, error) {
	monthStart, err := time.Parse("2006-01", monthKey)
	if err != nil {
		return nil, "", errors.BadRequest("month must be formatted YYYY-MM")
	}
	monthEnd := monthStart.AddDate(0, 1, -1)

	candidates, err := s.recordRepo.ListByMonth(ctx, monthKey)
	if err != nil {
		return nil, "", err
	}

	records := domain.FilterRange(candidates, monthStart, monthEnd)

	projects, err := s.projectRepo.ListActive(ctx)
	if err != nil {
		return nil, "", err
	}

	infos := make([]rollup.ProjectInfo, len(projects))
	for i, p := range projects {
		infos[i] = rollup.ProjectInfo{ID: p.ID, Name: p.Name, AllocatedHours: p.AllocatedHours}
	}

	utilizations := s.engine.ProjectUtilizations(records, infos, rollup.ForMonth(monthKey))

	byProject := make(map[string][]*domain.WeeklyRecord)
	for _, record := range records {
		byProject[record.ProjectID] = append(byProject[record.ProjectID], record)
	}

	buf, err := s.serializer.ProjectWorkbook(utilizations, byProject)
	if err != nil {
		return nil, "", err
	}

	s.publisher.PublishExportGenerated(ctx, "projects", monthKey, monthKey, len(byProject)+1, generatedBy)

	return buf, export.Filename("projects", time.Now()), nil
}

// UsersExport builds the per-user workbook for an inclusive date range.
// Records are trimmed to the range before rendering, so a week straddling
// a bound only shows the days inside it.
func (s *ExportService) UsersExport(ctx context.Context, start, end time.Time, generatedBy string) (*bytes.Buffer, string, error) {
	candidates, err := s.recordRepo.ListByMonths(ctx, domain.MonthKeysBetween(start, end))
	if err != nil {
		return nil, "", err
	}

	records := domain.FilterRange(candidates, start, end)
	summaries := s.engine.UserSummaries(records, rollup.FullHours())

	byUser := make(map[string][]*domain.WeeklyRecord)
	for _, record := range records {
		byUser[record.UserID] = append(byUser[record.UserID], record)
	}

	buf, err := s.serializer.UserWorkbook(summaries, byUser)
	if err != nil {
		return nil, "", err
	}

	s.publisher.PublishExportGenerated(ctx, "users",
		domain.DateOnly(start).Format("2006-01-02"),
		domain.DateOnly(end).Format("2006-01-02"),
		len(byUser)+1, generatedBy)

	return buf, export.Filename("users", time.Now()), nil
}
