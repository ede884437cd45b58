package service

import (
	"context"
	"time"

	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/domain"
	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/events"
	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/repository"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/errors"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/logger"
)

// TimesheetService handles weekly hour entry and month views
type TimesheetService struct {
	recordRepo  *repository.RecordRepository
	userRepo    *repository.UserRepository
	projectRepo *repository.ProjectRepository
	publisher   *events.TimesheetEventPublisher
	logger      *logger.Logger
}

// NewTimesheetService creates a new timesheet service
func NewTimesheetService(
	recordRepo *repository.RecordRepository,
	userRepo *repository.UserRepository,
	projectRepo *repository.ProjectRepository,
	publisher *events.TimesheetEventPublisher,
	log *logger.Logger,
) *TimesheetService {
	return &TimesheetService{
		recordRepo:  recordRepo,
		userRepo:    userRepo,
		projectRepo: projectRepo,
		publisher:   publisher,
		logger:      log,
	}
}

// SaveWeekInput carries one week of hours for a user and project
type SaveWeekInput struct {
	ProjectID  string
	Year       int
	WeekNumber int
	Hours      domain.DayHours
	Submit     bool
}

// SaveWeek stores a week of hours. The week is split into month buckets
// before persisting; statuses of unchanged buckets carry over from any
// previously stored version of the same week. An approved week cannot be
// modified.
func (s *TimesheetService) SaveWeek(ctx context.Context, userID string, input SaveWeekInput) (*domain.WeeklyRecord, error) {
	project, err := s.projectRepo.GetByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}
	if project.Status != "active" {
		return nil, errors.BadRequest("project is not active")
	}

	var prev domain.MonthHours
	existing, err := s.recordRepo.GetByUserProjectWeek(ctx, userID, input.ProjectID, input.Year, input.WeekNumber)
	if err != nil && !errors.Is(err, errors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		if existing.Status == domain.StatusApproved {
			return nil, errors.Conflict("approved timesheet cannot be modified")
		}
		prev = existing.MonthHours
	}

	record := &domain.WeeklyRecord{
		UserID:     userID,
		ProjectID:  input.ProjectID,
		Year:       input.Year,
		WeekNumber: input.WeekNumber,
		DayHours:   input.Hours,
		Status:     domain.StatusDraft,
		MonthHours: domain.SplitWeek(input.Hours, input.WeekNumber, input.Year, prev),
	}
	if existing != nil {
		record.ID = existing.ID
	}

	if input.Submit {
		now := time.Now().UTC()
		record.Status = domain.StatusSubmitted
		record.SubmittedAt = &now
		for key, fragment := range record.MonthHours {
			if fragment.Status == domain.StatusDraft {
				fragment.Status = domain.StatusSubmitted
				fragment.SubmittedAt = &now
				record.MonthHours[key] = fragment
			}
		}
	}

	if err := s.recordRepo.Upsert(ctx, record); err != nil {
		return nil, err
	}

	stored, err := s.recordRepo.GetByID(ctx, record.ID)
	if err != nil {
		return nil, err
	}

	if input.Submit {
		s.publisher.PublishSubmitted(ctx, stored)
	} else {
		s.publisher.PublishSaved(ctx, stored)
	}

	s.logger.Info().
		Str("user_id", userID).
		Str("project_id", input.ProjectID).
		Int("year", input.Year).
		Int("week", input.WeekNumber).
		Float64("total_hours", stored.TotalHours()).
		Bool("submitted", input.Submit).
		Msg("weekly timesheet saved")

	return stored, nil
}

// GetWeek lists a user's records for one week across projects
func (s *TimesheetService) GetWeek(ctx context.Context, userID string, year, week int) ([]*domain.WeeklyRecord, error) {
	return s.recordRepo.ListForUserWeek(ctx, userID, year, week)
}

// MonthEntry is one record's contribution to a month view
type MonthEntry struct {
	Record *domain.WeeklyRecord `json:"record"`
	Hours  float64              `json:"hours"`
	Status *domain.Status       `json:"status,omitempty"`
}

// MonthView is a user's timesheet for one calendar month. Hours come from
// the stored month buckets, so weeks straddling a month boundary only
// contribute the days that fall inside the month.
type MonthView struct {
	MonthKey   string       `json:"month"`
	TotalHours float64      `json:"total_hours"`
	Entries    []MonthEntry `json:"entries"`
}

// GetMonth builds a user's month view
func (s *TimesheetService) GetMonth(ctx context.Context, userID, monthKey string) (*MonthView, error) {
	records, err := s.recordRepo.ListByMonthForUser(ctx, userID, monthKey)
	if err != nil {
		return nil, err
	}

	view := &MonthView{MonthKey: monthKey, Entries: make([]MonthEntry, 0, len(records))}
	var total float64
	for _, record := range records {
		if !domain.IsInMonth(record, monthKey) {
			continue
		}
		hours := domain.HoursForMonth(record, monthKey)
		view.Entries = append(view.Entries, MonthEntry{
			Record: record,
			Hours:  hours,
			Status: domain.StatusForMonth(record, monthKey),
		})
		total += hours
	}
	view.TotalHours = domain.Round2(total)

	return view, nil
}
