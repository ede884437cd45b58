package events

import (
	"context"

	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/domain"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/logger"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/messaging"
)

// Publisher is the interface the service layer publishes through
type Publisher interface {
	Publish(ctx context.Context, eventType string, data interface{}) error
}

// TimesheetEventPublisher publishes timesheet lifecycle events
type TimesheetEventPublisher struct {
	publisher Publisher
	logger    *logger.Logger
}

// NewTimesheetEventPublisher creates a new timesheet event publisher
func NewTimesheetEventPublisher(rmq *messaging.RabbitMQ, log *logger.Logger) (*TimesheetEventPublisher, error) {
	publisher, err := messaging.NewPublisher(rmq, messaging.ExchangeTimesheetEvents, "timesheet-service", log)
	if err != nil {
		return nil, err
	}

	return &TimesheetEventPublisher{
		publisher: publisher,
		logger:    log,
	}, nil
}

// NewTimesheetEventPublisherWith wraps an existing publisher, used in tests
func NewTimesheetEventPublisherWith(publisher Publisher, log *logger.Logger) *TimesheetEventPublisher {
	return &TimesheetEventPublisher{publisher: publisher, logger: log}
}

// PublishSaved publishes a week saved event
func (p *TimesheetEventPublisher) PublishSaved(ctx context.Context, record *domain.WeeklyRecord) {
	if p == nil {
		return
	}

	data := messaging.TimesheetSavedEvent{
		RecordID:   record.ID,
		UserID:     record.UserID,
		ProjectID:  record.ProjectID,
		Year:       record.Year,
		WeekNumber: record.WeekNumber,
		TotalHours: record.TotalHours(),
	}

	if err := p.publisher.Publish(ctx, messaging.EventTimesheetSaved, data); err != nil {
		p.logger.Error().Err(err).Str("record_id", record.ID).Msg("failed to publish timesheet saved event")
	}
}

// PublishSubmitted publishes a week submitted event
func (p *TimesheetEventPublisher) PublishSubmitted(ctx context.Context, record *domain.WeeklyRecord) {
	if p == nil {
		return
	}

	userName := ""
	if record.UserName != nil {
		userName = *record.UserName
	}
	projectName := ""
	if record.ProjectName != nil {
		projectName = *record.ProjectName
	}

	data := messaging.TimesheetSubmittedEvent{
		RecordID:    record.ID,
		UserID:      record.UserID,
		UserName:    userName,
		ProjectID:   record.ProjectID,
		ProjectName: projectName,
		Year:        record.Year,
		WeekNumber:  record.WeekNumber,
		TotalHours:  record.TotalHours(),
		MonthKeys:   record.MonthHours.MonthKeys(),
	}

	if err := p.publisher.Publish(ctx, messaging.EventTimesheetSubmitted, data); err != nil {
		p.logger.Error().Err(err).Str("record_id", record.ID).Msg("failed to publish timesheet submitted event")
	}
}

// PublishWeekApproved publishes a week approved event
func (p *TimesheetEventPublisher) PublishWeekApproved(ctx context.Context, record *domain.WeeklyRecord, reviewerID string) {
	if p == nil {
		return
	}

	data := messaging.WeekApprovedEvent{
		RecordID:   record.ID,
		UserID:     record.UserID,
		ProjectID:  record.ProjectID,
		Year:       record.Year,
		WeekNumber: record.WeekNumber,
		ReviewerID: reviewerID,
	}

	if err := p.publisher.Publish(ctx, messaging.EventWeekApproved, data); err != nil {
		p.logger.Error().Err(err).Str("record_id", record.ID).Msg("failed to publish week approved event")
	}
}

// PublishWeekRejected publishes a week rejected event
func (p *TimesheetEventPublisher) PublishWeekRejected(ctx context.Context, record *domain.WeeklyRecord, reviewerID, reason string) {
	if p == nil {
		return
	}

	data := messaging.WeekRejectedEvent{
		RecordID:   record.ID,
		UserID:     record.UserID,
		ProjectID:  record.ProjectID,
		Year:       record.Year,
		WeekNumber: record.WeekNumber,
		ReviewerID: reviewerID,
		Reason:     reason,
	}

	if err := p.publisher.Publish(ctx, messaging.EventWeekRejected, data); err != nil {
		p.logger.Error().Err(err).Str("record_id", record.ID).Msg("failed to publish week rejected event")
	}
}

// PublishMonthApproved publishes a month fragment approved event
func (p *TimesheetEventPublisher) PublishMonthApproved(ctx context.Context, record *domain.WeeklyRecord, monthKey, reviewerID string) {
	if p == nil {
		return
	}

	data := messaging.MonthApprovedEvent{
		RecordID:   record.ID,
		UserID:     record.UserID,
		ProjectID:  record.ProjectID,
		MonthKey:   monthKey,
		ReviewerID: reviewerID,
	}

	if err := p.publisher.Publish(ctx, messaging.EventMonthApproved, data); err != nil {
		p.logger.Error().Err(err).Str("record_id", record.ID).Str("month", monthKey).Msg("failed to publish month approved event")
	}
}

// PublishMonthRejected publishes a month fragment rejected event
func (p *TimesheetEventPublisher) PublishMonthRejected(ctx context.Context, record *domain.WeeklyRecord, monthKey, reviewerID, reason string) {
	if p == nil {
		return
	}

	data := messaging.MonthRejectedEvent{
		RecordID:   record.ID,
		UserID:     record.UserID,
		ProjectID:  record.ProjectID,
		MonthKey:   monthKey,
		ReviewerID: reviewerID,
		Reason:     reason,
	}

	if err := p.publisher.Publish(ctx, messaging.EventMonthRejected, data); err != nil {
		p.logger.Error().Err(err).Str("record_id", record.ID).Str("month", monthKey).Msg("failed to publish month rejected event")
	}
}

// PublishExportGenerated publishes an export generated event
func (p *TimesheetEventPublisher) PublishExportGenerated(ctx context.Context, exportType, startDate, endDate string, sheetCount int, generatedBy string) {
	if p == nil {
		return
	}

	data := messaging.ExportGeneratedEvent{
		ExportType:  exportType,
		StartDate:   startDate,
		EndDate:     endDate,
		SheetCount:  sheetCount,
		GeneratedBy: generatedBy,
	}

	if err := p.publisher.Publish(ctx, messaging.EventExportGenerated, data); err != nil {
		p.logger.Error().Err(err).Str("export_type", exportType).Msg("failed to publish export generated event")
	}
}
