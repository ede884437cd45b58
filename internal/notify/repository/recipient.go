package repository

import (
	"context"

	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/database"
)

// RecipientRepository resolves who should receive a notification
type RecipientRepository struct {
	db *database.DB
}

// NewRecipientRepository creates a new recipient repository
func NewRecipientRepository(db *database.DB) *RecipientRepository {
	return &RecipientRepository{db: db}
}

// ManagerIDs lists the IDs of all active managers
func (r *RecipientRepository) ManagerIDs(ctx context.Context) ([]string, error) {
	var ids []string

	query := `SELECT id FROM users WHERE status = 'active' AND is_manager = true`
	if err := r.db.SelectContext(ctx, &ids, query); err != nil {
		return nil, err
	}

	return ids, nil
}
