package messaging

import (
	"encoding/json"
	"fmt"
	"time"
)

// Event types
const (
	// Timesheet lifecycle events
	EventTimesheetSaved     = "timesheet.week.saved"
	EventTimesheetSubmitted = "timesheet.week.submitted"
	EventWeekApproved       = "timesheet.week.approved"
	EventWeekRejected       = "timesheet.week.rejected"
	EventMonthApproved      = "timesheet.month.approved"
	EventMonthRejected      = "timesheet.month.rejected"

	// Report events
	EventExportGenerated = "reports.export.generated"

	// Notification events
	EventNotificationCreated = "notify.notification.created"
)

// Exchange names
const (
	ExchangeTimesheetEvents = "timesheet.events"
	ExchangeNotifyEvents    = "notify.events"
)

// Event is the base event structure
type Event struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Source        string          `json:"source"`
	Timestamp     time.Time       `json:"timestamp"`
	CorrelationID string          `json:"correlation_id"`
	Data          json.RawMessage `json:"data"`
}

// NewEvent creates a new event with the given type and data
func NewEvent(eventType, source, correlationID string, data interface{}) (*Event, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:            GenerateEventID(),
		Type:          eventType,
		Source:        source,
		Timestamp:     time.Now().UTC(),
		CorrelationID: correlationID,
		Data:          dataBytes,
	}, nil
}

// UnmarshalData unmarshals the event data into the provided struct
func (e *Event) UnmarshalData(v interface{}) error {
	return json.Unmarshal(e.Data, v)
}

// Timesheet Events

// TimesheetSavedEvent is published when a weekly record is created or updated
type TimesheetSavedEvent struct {
	RecordID   string  `json:"record_id"`
	UserID     string  `json:"user_id"`
	ProjectID  string  `json:"project_id"`
	Year       int     `json:"year"`
	WeekNumber int     `json:"week_number"`
	TotalHours float64 `json:"total_hours"`
}

// TimesheetSubmittedEvent is published when a weekly record is submitted
// for approval
type TimesheetSubmittedEvent struct {
	RecordID    string   `json:"record_id"`
	UserID      string   `json:"user_id"`
	UserName    string   `json:"user_name"`
	ProjectID   string   `json:"project_id"`
	ProjectName string   `json:"project_name"`
	Year        int      `json:"year"`
	WeekNumber  int      `json:"week_number"`
	TotalHours  float64  `json:"total_hours"`
	MonthKeys   []string `json:"month_keys"`
}

// WeekApprovedEvent is published when a weekly record is approved
type WeekApprovedEvent struct {
	RecordID   string `json:"record_id"`
	UserID     string `json:"user_id"`
	ProjectID  string `json:"project_id"`
	Year       int    `json:"year"`
	WeekNumber int    `json:"week_number"`
	ReviewerID string `json:"reviewer_id"`
}

// WeekRejectedEvent is published when a weekly record is rejected
type WeekRejectedEvent struct {
	RecordID   string `json:"record_id"`
	UserID     string `json:"user_id"`
	ProjectID  string `json:"project_id"`
	Year       int    `json:"year"`
	WeekNumber int    `json:"week_number"`
	ReviewerID string `json:"reviewer_id"`
	Reason     string `json:"reason,omitempty"`
}

// MonthApprovedEvent is published when a single month fragment of a weekly
// record is approved
type MonthApprovedEvent struct {
	RecordID   string `json:"record_id"`
	UserID     string `json:"user_id"`
	ProjectID  string `json:"project_id"`
	MonthKey   string `json:"month_key"`
	ReviewerID string `json:"reviewer_id"`
}

// MonthRejectedEvent is published when a single month fragment of a weekly
// record is rejected
type MonthRejectedEvent struct {
	RecordID   string `json:"record_id"`
	UserID     string `json:"user_id"`
	ProjectID  string `json:"project_id"`
	MonthKey   string `json:"month_key"`
	ReviewerID string `json:"reviewer_id"`
	Reason     string `json:"reason,omitempty"`
}

// Report Events

// ExportGeneratedEvent is published when a workbook export is generated
type ExportGeneratedEvent struct {
	ExportType  string `json:"export_type"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	SheetCount  int    `json:"sheet_count"`
	GeneratedBy string `json:"generated_by"`
}

// Notification Events

// NotificationCreatedEvent is published when an in-app notification is stored
type NotificationCreatedEvent struct {
	NotificationID string `json:"notification_id"`
	RecipientID    string `json:"recipient_id"`
	Kind           string `json:"kind"`
	Message        string `json:"message"`
}

// GenerateEventID generates a unique event ID
func GenerateEventID() string {
	return fmt.Sprintf("%d-%d", time.Now().UnixNano(), time.Now().Nanosecond()%10000)
}
