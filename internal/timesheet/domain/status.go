// Package domain holds the pure week-to-month splitting and aggregation
// core of the timesheet service. Everything in this package operates on
// in-memory data and carries no persistence or transport concerns.
package domain

// Status is the approval lifecycle state of a weekly record or of a single
// month fragment. Both levels share the same four-value set.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
)

// Valid reports whether s is one of the four known statuses
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// IsFinal reports whether s is a terminal review state
func (s Status) IsFinal() bool {
	return s == StatusApproved || s == StatusRejected
}
