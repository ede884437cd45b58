package service

import (
	"context"
	"time"

	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/domain"
	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/repository"
	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/rollup"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/logger"
)

// ReportService builds aggregated reporting views
type ReportService struct {
	recordRepo  *repository.RecordRepository
	projectRepo *repository.ProjectRepository
	engine      *rollup.Engine
	logger      *logger.Logger
}

// NewReportService creates a new report service
func NewReportService(
	recordRepo *repository.RecordRepository,
	projectRepo *repository.ProjectRepository,
	engine *rollup.Engine,
	log *logger.Logger,
) *ReportService {
	return &ReportService{
		recordRepo:  recordRepo,
		projectRepo: projectRepo,
		engine:      engine,
		logger:      log,
	}
}

// RangeReport is the aggregated view of an inclusive date range
type RangeReport struct {
	StartDate  string               `json:"start_date"`
	EndDate    string               `json:"end_date"`
	TotalHours float64              `json:"total_hours"`
	Users      []rollup.UserSummary `json:"users"`
}

// Range builds a report over an inclusive date range. Candidate records
// come from the month buckets touched by the range; days outside the
// bounds are trimmed before aggregating.
func (s *ReportService) Range(ctx context.Context, start, end time.Time) (*RangeReport, error) {
	report := &RangeReport{
		StartDate: domain.DateOnly(start).Format("2006-01-02"),
		EndDate:   domain.DateOnly(end).Format("2006-01-02"),
		Users:     []rollup.UserSummary{},
	}

	candidates, err := s.recordRepo.ListByMonths(ctx, domain.MonthKeysBetween(start, end))
	if err != nil {
		return nil, err
	}

	records := domain.FilterRange(candidates, start, end)

	var total float64
	for _, record := range records {
		total += record.DayHours.Total()
	}
	report.TotalHours = domain.Round2(total)
	report.Users = s.engine.UserSummaries(records, rollup.FullHours())

	return report, nil
}

// Utilization builds per-project utilization for one calendar month
func (s *ReportService) Utilization(ctx context.Context, monthKey string) ([]rollup.ProjectUtilization, error) {
	records, err := s.recordRepo.ListByMonth(ctx, monthKey)
	if err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]rollup.ProjectInfo, len(projects))
	for i, p := range projects {
		infos[i] = rollup.ProjectInfo{ID: p.ID, Name: p.Name, AllocatedHours: p.AllocatedHours}
	}

	return s.engine.ProjectUtilizations(records, infos, rollup.ForMonth(monthKey)), nil
}

// UserSummaries builds per-user totals for one calendar month
func (s *ReportService) UserSummaries(ctx context.Context, monthKey string) ([]rollup.UserSummary, error) {
	records, err := s.recordRepo.ListByMonth(ctx, monthKey)
	if err != nil {
		return nil, err
	}

	return s.engine.UserSummaries(records, rollup.ForMonth(monthKey)), nil
}
