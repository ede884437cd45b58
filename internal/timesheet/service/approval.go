package service

import (
	"context"
	"time"

	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/domain"
	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/events"
	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/repository"
	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/rollup"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/errors"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/logger"
)

// ApprovalService handles the review workflow on submitted weeks. Weeks
// are reviewed either whole or one month bucket at a time; the week
// status always follows from the bucket statuses.
type ApprovalService struct {
	recordRepo *repository.RecordRepository
	engine     *rollup.Engine
	publisher  *events.TimesheetEventPublisher
	logger     *logger.Logger
}

// NewApprovalService creates a new approval service
func NewApprovalService(
	recordRepo *repository.RecordRepository,
	engine *rollup.Engine,
	publisher *events.TimesheetEventPublisher,
	log *logger.Logger,
) *ApprovalService {
	return &ApprovalService{
		recordRepo: recordRepo,
		engine:     engine,
		publisher:  publisher,
		logger:     log,
	}
}

// ListPending lists submitted weeks awaiting review, grouped per user and week
func (s *ApprovalService) ListPending(ctx context.Context) ([]rollup.WeekGroup, error) {
	records, err := s.recordRepo.ListByStatus(ctx, domain.StatusSubmitted)
	if err != nil {
		return nil, err
	}

	return s.engine.GroupWeeks(records), nil
}

// ApproveWeek approves a submitted week and all of its month buckets
func (s *ApprovalService) ApproveWeek(ctx context.Context, recordID, reviewerID string) (*domain.WeeklyRecord, error) {
	record, err := s.recordRepo.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record.Status != domain.StatusSubmitted {
		return nil, errors.Conflict("only submitted timesheets can be approved")
	}

	now := time.Now().UTC()
	record.Status = domain.StatusApproved
	record.ApprovedBy = &reviewerID
	record.ApprovedAt = &now
	record.RejectionReason = nil
	for key, fragment := range record.MonthHours {
		fragment.Status = domain.StatusApproved
		fragment.ApprovedBy = &reviewerID
		fragment.ApprovedAt = &now
		fragment.RejectionReason = nil
		record.MonthHours[key] = fragment
	}

	if err := s.recordRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	s.publisher.PublishWeekApproved(ctx, record, reviewerID)
	s.logger.Info().
		Str("record_id", record.ID).
		Str("reviewer_id", reviewerID).
		Msg("weekly timesheet approved")

	return record, nil
}

// RejectWeek rejects a submitted week with a reason
func (s *ApprovalService) RejectWeek(ctx context.Context, recordID, reviewerID, reason string) (*domain.WeeklyRecord, error) {
	if reason == "" {
		return nil, errors.BadRequest("a rejection reason is required")
	}

	record, err := s.recordRepo.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record.Status != domain.StatusSubmitted {
		return nil, errors.Conflict("only submitted timesheets can be rejected")
	}

	record.Status = domain.StatusRejected
	record.ApprovedBy = nil
	record.ApprovedAt = nil
	record.RejectionReason = &reason
	for key, fragment := range record.MonthHours {
		fragment.Status = domain.StatusRejected
		fragment.ApprovedBy = nil
		fragment.ApprovedAt = nil
		fragment.RejectionReason = &reason
		record.MonthHours[key] = fragment
	}

	if err := s.recordRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	s.publisher.PublishWeekRejected(ctx, record, reviewerID, reason)
	s.logger.Info().
		Str("record_id", record.ID).
		Str("reviewer_id", reviewerID).
		Msg("weekly timesheet rejected")

	return record, nil
}

// ApproveMonth approves one month bucket of a submitted week. The week
// itself becomes approved once every bucket is approved.
func (s *ApprovalService) ApproveMonth(ctx context.Context, recordID, monthKey, reviewerID string) (*domain.WeeklyRecord, error) {
	record, err := s.recordRepo.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	fragment, ok := record.MonthHours[monthKey]
	if !ok {
		return nil, errors.NotFound("month bucket")
	}
	if fragment.Status != domain.StatusSubmitted {
		return nil, errors.Conflict("only submitted month buckets can be approved")
	}

	now := time.Now().UTC()
	fragment.Status = domain.StatusApproved
	fragment.ApprovedBy = &reviewerID
	fragment.ApprovedAt = &now
	fragment.RejectionReason = nil
	record.MonthHours[monthKey] = fragment

	s.reconcileWeekStatus(record, reviewerID, now)

	if err := s.recordRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	s.publisher.PublishMonthApproved(ctx, record, monthKey, reviewerID)
	s.logger.Info().
		Str("record_id", record.ID).
		Str("month", monthKey).
		Str("reviewer_id", reviewerID).
		Msg("month bucket approved")

	return record, nil
}

// RejectMonth rejects one month bucket of a submitted week with a reason.
// Any rejected bucket sends the whole week back to the user.
func (s *ApprovalService) RejectMonth(ctx context.Context, recordID, monthKey, reviewerID, reason string) (*domain.WeeklyRecord, error) {
	if reason == "" {
		return nil, errors.BadRequest("a rejection reason is required")
	}

	record, err := s.recordRepo.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	fragment, ok := record.MonthHours[monthKey]
	if !ok {
		return nil, errors.NotFound("month bucket")
	}
	if fragment.Status != domain.StatusSubmitted {
		return nil, errors.Conflict("only submitted month buckets can be rejected")
	}

	fragment.Status = domain.StatusRejected
	fragment.ApprovedBy = nil
	fragment.ApprovedAt = nil
	fragment.RejectionReason = &reason
	record.MonthHours[monthKey] = fragment

	record.Status = domain.StatusRejected
	record.ApprovedBy = nil
	record.ApprovedAt = nil
	record.RejectionReason = &reason

	if err := s.recordRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	s.publisher.PublishMonthRejected(ctx, record, monthKey, reviewerID, reason)
	s.logger.Info().
		Str("record_id", record.ID).
		Str("month", monthKey).
		Str("reviewer_id", reviewerID).
		Msg("month bucket rejected")

	return record, nil
}

// reconcileWeekStatus promotes the week to approved when no bucket is
// left unapproved.
func (s *ApprovalService) reconcileWeekStatus(record *domain.WeeklyRecord, reviewerID string, now time.Time) {
	for _, fragment := range record.MonthHours {
		if fragment.Status != domain.StatusApproved {
			return
		}
	}

	record.Status = domain.StatusApproved
	record.ApprovedBy = &reviewerID
	record.ApprovedAt = &now
	record.RejectionReason = nil
}
