package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/database"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/errors"
)

// Project represents a project that hours are booked against
type Project struct {
	ID             string    `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Client         *string   `db:"client" json:"client,omitempty"`
	AllocatedHours float64   `db:"allocated_hours" json:"allocated_hours"`
	Status         string    `db:"status" json:"status"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

const projectColumns = `id, name, client, allocated_hours, status, created_at, updated_at`

// ProjectRepository handles project persistence
type ProjectRepository struct {
	db *database.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *database.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(ctx context.Context, project *Project) error {
	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	if project.Status == "" {
		project.Status = "active"
	}

	query := `
		INSERT INTO projects (id, name, client, allocated_hours, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		project.ID, project.Name, project.Client, project.AllocatedHours, project.Status,
	).Scan(&project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		return database.MapPQError(err)
	}

	return nil
}

// GetByID gets a project by ID
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*Project, error) {
	var project Project

	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	err := r.db.GetContext(ctx, &project, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("project")
	}
	if err != nil {
		return nil, err
	}

	return &project, nil
}

// ListActive lists active projects ordered by name
func (r *ProjectRepository) ListActive(ctx context.Context) ([]*Project, error) {
	var projects []*Project

	query := `SELECT ` + projectColumns + ` FROM projects WHERE status = 'active' ORDER BY name`
	if err := r.db.SelectContext(ctx, &projects, query); err != nil {
		return nil, err
	}

	return projects, nil
}

// List lists all projects ordered by name
func (r *ProjectRepository) List(ctx context.Context) ([]*Project, error) {
	var projects []*Project

	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY name`
	if err := r.db.SelectContext(ctx, &projects, query); err != nil {
		return nil, err
	}

	return projects, nil
}

// UpdateAllocatedHours sets a project's allocated hours budget
func (r *ProjectRepository) UpdateAllocatedHours(ctx context.Context, id string, hours float64) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE projects SET allocated_hours = $2, updated_at = NOW() WHERE id = $1`, id, hours)
	if err != nil {
		return database.MapPQError(err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.NotFound("project")
	}

	return nil
}
