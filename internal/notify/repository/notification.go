package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/database"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/errors"
)

// Notification is one in-app notification row
type Notification struct {
	ID          string          `db:"id" json:"id"`
	RecipientID string          `db:"recipient_id" json:"recipient_id"`
	Kind        string          `db:"kind" json:"kind"`
	Message     string          `db:"message" json:"message"`
	Payload     json.RawMessage `db:"payload" json:"payload,omitempty"`
	ReadAt      *time.Time      `db:"read_at" json:"read_at,omitempty"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

// NotificationRepository handles notification persistence
type NotificationRepository struct {
	db *database.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *database.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create creates a new notification
func (r *NotificationRepository) Create(ctx context.Context, n *Notification) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.Payload == nil {
		n.Payload = json.RawMessage("{}")
	}

	query := `
		INSERT INTO notifications (id, recipient_id, kind, message, payload)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		n.ID, n.RecipientID, n.Kind, n.Message, []byte(n.Payload),
	).Scan(&n.CreatedAt)
	if err != nil {
		return database.MapPQError(err)
	}

	return nil
}

// ListForRecipient lists a recipient's notifications, newest first
func (r *NotificationRepository) ListForRecipient(ctx context.Context, recipientID string, unreadOnly bool) ([]*Notification, error) {
	var notifications []*Notification

	query := `
		SELECT id, recipient_id, kind, message, payload, read_at, created_at
		FROM notifications
		WHERE recipient_id = $1
	`
	if unreadOnly {
		query += ` AND read_at IS NULL`
	}
	query += ` ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &notifications, query, recipientID); err != nil {
		return nil, err
	}

	return notifications, nil
}

// MarkRead marks a notification as read
func (r *NotificationRepository) MarkRead(ctx context.Context, id, recipientID string) error {
	query := `UPDATE notifications SET read_at = NOW() WHERE id = $1 AND recipient_id = $2 AND read_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, id, recipientID)
	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.NotFound("notification")
	}

	return nil
}

// UnreadCount counts a recipient's unread notifications
func (r *NotificationRepository) UnreadCount(ctx context.Context, recipientID string) (int64, error) {
	var count int64

	query := `SELECT COUNT(*) FROM notifications WHERE recipient_id = $1 AND read_at IS NULL`
	if err := r.db.GetContext(ctx, &count, query, recipientID); err != nil {
		return 0, err
	}

	return count, nil
}
