package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/domain"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/database"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/errors"
)

const recordColumns = `
	r.id, r.user_id, r.project_id, r.year, r.week_number,
	r.monday_hours, r.tuesday_hours, r.wednesday_hours, r.thursday_hours, r.friday_hours,
	r.status, r.month_hours, r.submitted_at, r.approved_by, r.approved_at, r.rejection_reason,
	r.created_at, r.updated_at,
	u.first_name || ' ' || u.last_name AS user_name,
	p.name AS project_name`

const recordJoins = `
	FROM weekly_records r
	JOIN users u ON u.id = r.user_id
	JOIN projects p ON p.id = r.project_id`

// RecordRepository handles weekly record persistence
type RecordRepository struct {
	db *database.DB
}

// NewRecordRepository creates a new record repository
func NewRecordRepository(db *database.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// Upsert inserts a weekly record or, when one already exists for the same
// user, project and week, replaces its hours, status and month buckets.
func (r *RecordRepository) Upsert(ctx context.Context, record *domain.WeeklyRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	query := `
		INSERT INTO weekly_records (
			id, user_id, project_id, year, week_number,
			monday_hours, tuesday_hours, wednesday_hours, thursday_hours, friday_hours,
			status, month_hours, submitted_at, approved_by, approved_at, rejection_reason
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT ON CONSTRAINT weekly_records_user_project_week DO UPDATE SET
			monday_hours = EXCLUDED.monday_hours,
			tuesday_hours = EXCLUDED.tuesday_hours,
			wednesday_hours = EXCLUDED.wednesday_hours,
			thursday_hours = EXCLUDED.thursday_hours,
			friday_hours = EXCLUDED.friday_hours,
			status = EXCLUDED.status,
			month_hours = EXCLUDED.month_hours,
			submitted_at = EXCLUDED.submitted_at,
			approved_by = EXCLUDED.approved_by,
			approved_at = EXCLUDED.approved_at,
			rejection_reason = EXCLUDED.rejection_reason,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		record.ID, record.UserID, record.ProjectID, record.Year, record.WeekNumber,
		record.Monday, record.Tuesday, record.Wednesday, record.Thursday, record.Friday,
		record.Status, record.MonthHours, record.SubmittedAt, record.ApprovedBy,
		record.ApprovedAt, record.RejectionReason,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return database.MapPQError(err)
	}

	return nil
}

// GetByID gets a weekly record by ID, with user and project names joined
func (r *RecordRepository) GetByID(ctx context.Context, id string) (*domain.WeeklyRecord, error) {
	var record domain.WeeklyRecord

	query := `SELECT` + recordColumns + recordJoins + ` WHERE r.id = $1`
	err := r.db.GetContext(ctx, &record, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("weekly record")
	}
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// GetByUserProjectWeek gets the single record for a user, project and week
func (r *RecordRepository) GetByUserProjectWeek(ctx context.Context, userID, projectID string, year, week int) (*domain.WeeklyRecord, error) {
	var record domain.WeeklyRecord

	query := `SELECT` + recordColumns + recordJoins + `
		WHERE r.user_id = $1 AND r.project_id = $2 AND r.year = $3 AND r.week_number = $4`
	err := r.db.GetContext(ctx, &record, query, userID, projectID, year, week)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("weekly record")
	}
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// ListForUserWeek lists all of a user's records for one week across projects
func (r *RecordRepository) ListForUserWeek(ctx context.Context, userID string, year, week int) ([]*domain.WeeklyRecord, error) {
	var records []*domain.WeeklyRecord

	query := `SELECT` + recordColumns + recordJoins + `
		WHERE r.user_id = $1 AND r.year = $2 AND r.week_number = $3
		ORDER BY p.name`
	if err := r.db.SelectContext(ctx, &records, query, userID, year, week); err != nil {
		return nil, err
	}

	return records, nil
}

// ListByMonth lists all records carrying hours in the given month bucket.
// Month membership is decided by the stored month_hours keys, never by the
// record's week number alone.
func (r *RecordRepository) ListByMonth(ctx context.Context, monthKey string) ([]*domain.WeeklyRecord, error) {
	var records []*domain.WeeklyRecord

	query := `SELECT` + recordColumns + recordJoins + `
		WHERE r.month_hours ? $1
		ORDER BY r.year, r.week_number, u.last_name, u.first_name`
	if err := r.db.SelectContext(ctx, &records, query, monthKey); err != nil {
		return nil, err
	}

	return records, nil
}

// ListByMonthForUser lists one user's records carrying hours in the month
func (r *RecordRepository) ListByMonthForUser(ctx context.Context, userID, monthKey string) ([]*domain.WeeklyRecord, error) {
	var records []*domain.WeeklyRecord

	query := `SELECT` + recordColumns + recordJoins + `
		WHERE r.user_id = $1 AND r.month_hours ? $2
		ORDER BY r.year, r.week_number, p.name`
	if err := r.db.SelectContext(ctx, &records, query, userID, monthKey); err != nil {
		return nil, err
	}

	return records, nil
}

// ListByMonths lists records carrying hours in any of the given month
// buckets. Used as the candidate set for date range reports: every record
// overlapping the range must touch at least one month inside it.
func (r *RecordRepository) ListByMonths(ctx context.Context, monthKeys []string) ([]*domain.WeeklyRecord, error) {
	if len(monthKeys) == 0 {
		return nil, nil
	}

	var records []*domain.WeeklyRecord

	query := `SELECT` + recordColumns + recordJoins + `
		WHERE r.month_hours ?| $1
		ORDER BY r.year, r.week_number, u.last_name, u.first_name`
	if err := r.db.SelectContext(ctx, &records, query, pq.Array(monthKeys)); err != nil {
		return nil, err
	}

	return records, nil
}

// ListByStatus lists records in the given week status, oldest first
func (r *RecordRepository) ListByStatus(ctx context.Context, status domain.Status) ([]*domain.WeeklyRecord, error) {
	var records []*domain.WeeklyRecord

	query := `SELECT` + recordColumns + recordJoins + `
		WHERE r.status = $1
		ORDER BY r.submitted_at NULLS LAST, r.year, r.week_number`
	if err := r.db.SelectContext(ctx, &records, query, status); err != nil {
		return nil, err
	}

	return records, nil
}

// Update writes the record's hours, status, month buckets and review
// metadata back. The week identity columns never change.
func (r *RecordRepository) Update(ctx context.Context, record *domain.WeeklyRecord) error {
	query := `
		UPDATE weekly_records SET
			monday_hours = $2, tuesday_hours = $3, wednesday_hours = $4,
			thursday_hours = $5, friday_hours = $6,
			status = $7, month_hours = $8,
			submitted_at = $9, approved_by = $10, approved_at = $11, rejection_reason = $12,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.Monday, record.Tuesday, record.Wednesday, record.Thursday, record.Friday,
		record.Status, record.MonthHours,
		record.SubmittedAt, record.ApprovedBy, record.ApprovedAt, record.RejectionReason,
	)
	if err != nil {
		return database.MapPQError(err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.NotFound("weekly record")
	}

	return nil
}

// Delete removes a weekly record
func (r *RecordRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM weekly_records WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.NotFound("weekly record")
	}

	return nil
}
