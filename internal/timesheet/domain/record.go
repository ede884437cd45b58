package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// MonthFragment is the portion of a weekly record's days that fall within
// one calendar month. It carries an approval lifecycle independent of the
// week-level status: a week spanning two months can be approved for one
// month and still pending for the other.
type MonthFragment struct {
	DayHours

	Status          Status     `json:"status"`
	SubmittedAt     *time.Time `json:"submitted_at,omitempty"`
	ApprovedBy      *string    `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
}

// MonthHours maps canonical "YYYY-MM" month keys to fragments. Absent keys
// mean no data for that month, never an error. It is persisted as a JSONB
// column.
type MonthHours map[string]MonthFragment

// Value implements driver.Valuer for JSONB storage
func (m MonthHours) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for JSONB storage
func (m *MonthHours) Scan(src interface{}) error {
	if src == nil {
		*m = MonthHours{}
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into MonthHours", src)
	}

	if len(data) == 0 {
		*m = MonthHours{}
		return nil
	}
	return json.Unmarshal(data, m)
}

// MonthKeys returns the fragment keys in ascending order. The "YYYY-MM"
// format makes lexicographic order chronological.
func (m MonthHours) MonthKeys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WeeklyRecord is one user's logged hours for one project for one week.
// The five day values are authoritative; TotalHours is always derived.
type WeeklyRecord struct {
	ID        string `json:"id" db:"id"`
	UserID    string `json:"user_id" db:"user_id"`
	ProjectID string `json:"project_id" db:"project_id"`
	Year      int    `json:"year" db:"year"`
	// WeekNumber is 1..53 in the simplified offset scheme of MondayOf,
	// not calendar-ISO week numbering.
	WeekNumber int `json:"week_number" db:"week_number"`

	DayHours

	Status          Status     `json:"status" db:"status"`
	MonthHours      MonthHours `json:"month_hours" db:"month_hours"`
	SubmittedAt     *time.Time `json:"submitted_at,omitempty" db:"submitted_at"`
	ApprovedBy      *string    `json:"approved_by,omitempty" db:"approved_by"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty" db:"approved_at"`
	RejectionReason *string    `json:"rejection_reason,omitempty" db:"rejection_reason"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	// Joined fields (populated by specific queries)
	UserName    *string `json:"user_name,omitempty" db:"user_name"`
	ProjectName *string `json:"project_name,omitempty" db:"project_name"`
}

// TotalHours returns the sum of the five day values rounded to two
// decimal places.
func (r *WeeklyRecord) TotalHours() float64 {
	return Round2(r.DayHours.Total())
}

// GroupKey returns the composite key grouping records that share the same
// user and week for approval-queue display.
func (r *WeeklyRecord) GroupKey() string {
	return fmt.Sprintf("%s-%d-%d", r.UserID, r.WeekNumber, r.Year)
}
