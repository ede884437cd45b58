package consumers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/febinsug/PDSL-eHATv5-sub000/internal/notify/repository"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/logger"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/messaging"
)

// TimesheetEventConsumer turns timesheet lifecycle events into in-app
// notifications: managers hear about submissions, users hear about the
// outcome of their review.
type TimesheetEventConsumer struct {
	consumer         *messaging.Consumer
	notificationRepo *repository.NotificationRepository
	recipientRepo    *repository.RecipientRepository
	logger           *logger.Logger
}

// NewTimesheetEventConsumer creates a new timesheet event consumer
func NewTimesheetEventConsumer(
	rmq *messaging.RabbitMQ,
	notificationRepo *repository.NotificationRepository,
	recipientRepo *repository.RecipientRepository,
	log *logger.Logger,
) (*TimesheetEventConsumer, error) {
	consumer, err := messaging.NewConsumer(rmq, "timesheet-service.notify", log)
	if err != nil {
		return nil, err
	}

	if err := consumer.Subscribe(messaging.ExchangeTimesheetEvents, "timesheet.#"); err != nil {
		return nil, err
	}

	c := &TimesheetEventConsumer{
		consumer:         consumer,
		notificationRepo: notificationRepo,
		recipientRepo:    recipientRepo,
		logger:           log,
	}

	consumer.RegisterHandler(messaging.EventTimesheetSubmitted, c.handleSubmitted)
	consumer.RegisterHandler(messaging.EventWeekApproved, c.handleWeekApproved)
	consumer.RegisterHandler(messaging.EventWeekRejected, c.handleWeekRejected)
	consumer.RegisterHandler(messaging.EventMonthApproved, c.handleMonthApproved)
	consumer.RegisterHandler(messaging.EventMonthRejected, c.handleMonthRejected)

	return c, nil
}

// Start starts consuming messages
func (c *TimesheetEventConsumer) Start(ctx context.Context) error {
	return c.consumer.Start(ctx)
}

func (c *TimesheetEventConsumer) handleSubmitted(ctx context.Context, event *messaging.Event) error {
	var data messaging.TimesheetSubmittedEvent
	if err := event.UnmarshalData(&data); err != nil {
		return err
	}

	managers, err := c.recipientRepo.ManagerIDs(ctx)
	if err != nil {
		return err
	}

	payload, _ := json.Marshal(data)
	message := fmt.Sprintf("%s submitted %.2f hours on %s for week %d/%d",
		data.UserName, data.TotalHours, data.ProjectName, data.WeekNumber, data.Year)

	for _, managerID := range managers {
		// the submitter does not need to hear about their own submission
		if managerID == data.UserID {
			continue
		}
		if err := c.notificationRepo.Create(ctx, &repository.Notification{
			RecipientID: managerID,
			Kind:        "timesheet_submitted",
			Message:     message,
			Payload:     payload,
		}); err != nil {
			return err
		}
	}

	c.logger.Info().
		Str("record_id", data.RecordID).
		Int("recipients", len(managers)).
		Msg("submission notifications created")

	return nil
}

func (c *TimesheetEventConsumer) handleWeekApproved(ctx context.Context, event *messaging.Event) error {
	var data messaging.WeekApprovedEvent
	if err := event.UnmarshalData(&data); err != nil {
		return err
	}

	payload, _ := json.Marshal(data)
	return c.notificationRepo.Create(ctx, &repository.Notification{
		RecipientID: data.UserID,
		Kind:        "week_approved",
		Message:     fmt.Sprintf("Your timesheet for week %d/%d was approved", data.WeekNumber, data.Year),
		Payload:     payload,
	})
}

func (c *TimesheetEventConsumer) handleWeekRejected(ctx context.Context, event *messaging.Event) error {
	var data messaging.WeekRejectedEvent
	if err := event.UnmarshalData(&data); err != nil {
		return err
	}

	payload, _ := json.Marshal(data)
	return c.notificationRepo.Create(ctx, &repository.Notification{
		RecipientID: data.UserID,
		Kind:        "week_rejected",
		Message:     fmt.Sprintf("Your timesheet for week %d/%d was rejected: %s", data.WeekNumber, data.Year, data.Reason),
		Payload:     payload,
	})
}

func (c *TimesheetEventConsumer) handleMonthApproved(ctx context.Context, event *messaging.Event) error {
	var data messaging.MonthApprovedEvent
	if err := event.UnmarshalData(&data); err != nil {
		return err
	}

	payload, _ := json.Marshal(data)
	return c.notificationRepo.Create(ctx, &repository.Notification{
		RecipientID: data.UserID,
		Kind:        "month_approved",
		Message:     fmt.Sprintf("Your hours for %s were approved", data.MonthKey),
		Payload:     payload,
	})
}

func (c *TimesheetEventConsumer) handleMonthRejected(ctx context.Context, event *messaging.Event) error {
	var data messaging.MonthRejectedEvent
	if err := event.UnmarshalData(&data); err != nil {
		return err
	}

	payload, _ := json.Marshal(data)
	return c.notificationRepo.Create(ctx, &repository.Notification{
		RecipientID: data.UserID,
		Kind:        "month_rejected",
		Message:     fmt.Sprintf("Your hours for %s were rejected: %s", data.MonthKey, data.Reason),
		Payload:     payload,
	})
}
