package testutil

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserFixture represents test user data
type UserFixture struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         string
	IsManager    bool
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProjectFixture represents test project data
type ProjectFixture struct {
	ID             string
	Name           string
	Client         string
	AllocatedHours float64
	Status         string
	CreatedAt      time.Time
}

// WeeklyRecordFixture represents test weekly record data
type WeeklyRecordFixture struct {
	ID         string
	UserID     string
	ProjectID  string
	Year       int
	WeekNumber int
	Hours      [5]float64
	Status     string
	CreatedAt  time.Time
}

// FixtureFactory creates test fixtures with sensible defaults
type FixtureFactory struct {
	sequence int
}

// NewFixtureFactory creates a new fixture factory
func NewFixtureFactory() *FixtureFactory {
	return &FixtureFactory{sequence: 0}
}

// nextSeq returns the next sequence number for unique values
func (f *FixtureFactory) nextSeq() int {
	f.sequence++
	return f.sequence
}

// User creates a user fixture with defaults
func (f *FixtureFactory) User(opts ...func(*UserFixture)) UserFixture {
	seq := f.nextSeq()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)

	user := UserFixture{
		ID:           uuid.New().String(),
		Email:        fmt.Sprintf("user%d@test.ehat.io", seq),
		PasswordHash: string(hash),
		FirstName:    fmt.Sprintf("Test%d", seq),
		LastName:     "User",
		Role:         "employee",
		IsManager:    false,
		Status:       "active",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	for _, opt := range opts {
		opt(&user)
	}

	return user
}

// WithEmail sets the user email
func WithEmail(email string) func(*UserFixture) {
	return func(u *UserFixture) {
		u.Email = email
	}
}

// WithName sets the user's first and last name
func WithName(first, last string) func(*UserFixture) {
	return func(u *UserFixture) {
		u.FirstName = first
		u.LastName = last
	}
}

// WithStatus sets the user status
func WithStatus(status string) func(*UserFixture) {
	return func(u *UserFixture) {
		u.Status = status
	}
}

// WithPassword sets the user password (hashed)
func WithPassword(password string) func(*UserFixture) {
	return func(u *UserFixture) {
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		u.PasswordHash = string(hash)
	}
}

// AsManager marks the user as a manager
func AsManager() func(*UserFixture) {
	return func(u *UserFixture) {
		u.Role = "manager"
		u.IsManager = true
	}
}

// Project creates a project fixture with defaults
func (f *FixtureFactory) Project(opts ...func(*ProjectFixture)) ProjectFixture {
	seq := f.nextSeq()

	project := ProjectFixture{
		ID:             uuid.New().String(),
		Name:           fmt.Sprintf("Project %d", seq),
		Client:         fmt.Sprintf("Client %d", seq),
		AllocatedHours: 160,
		Status:         "active",
		CreatedAt:      time.Now(),
	}

	for _, opt := range opts {
		opt(&project)
	}

	return project
}

// WithProjectName sets the project name
func WithProjectName(name string) func(*ProjectFixture) {
	return func(p *ProjectFixture) {
		p.Name = name
	}
}

// WithAllocatedHours sets the project's allocated hours
func WithAllocatedHours(hours float64) func(*ProjectFixture) {
	return func(p *ProjectFixture) {
		p.AllocatedHours = hours
	}
}

// WithProjectStatus sets the project status
func WithProjectStatus(status string) func(*ProjectFixture) {
	return func(p *ProjectFixture) {
		p.Status = status
	}
}

// WeeklyRecord creates a weekly record fixture with defaults
func (f *FixtureFactory) WeeklyRecord(userID, projectID string, opts ...func(*WeeklyRecordFixture)) WeeklyRecordFixture {
	record := WeeklyRecordFixture{
		ID:         uuid.New().String(),
		UserID:     userID,
		ProjectID:  projectID,
		Year:       2025,
		WeekNumber: 10,
		Hours:      [5]float64{8, 8, 8, 8, 8},
		Status:     "draft",
		CreatedAt:  time.Now(),
	}

	for _, opt := range opts {
		opt(&record)
	}

	return record
}

// WithWeek sets the record's year and week number
func WithWeek(year, week int) func(*WeeklyRecordFixture) {
	return func(r *WeeklyRecordFixture) {
		r.Year = year
		r.WeekNumber = week
	}
}

// WithHours sets the record's five day hours
func WithHours(mon, tue, wed, thu, fri float64) func(*WeeklyRecordFixture) {
	return func(r *WeeklyRecordFixture) {
		r.Hours = [5]float64{mon, tue, wed, thu, fri}
	}
}

// WithRecordStatus sets the record status
func WithRecordStatus(status string) func(*WeeklyRecordFixture) {
	return func(r *WeeklyRecordFixture) {
		r.Status = status
	}
}

// DefaultTestUsers returns a set of standard test users
func DefaultTestUsers(factory *FixtureFactory) []UserFixture {
	return []UserFixture{
		factory.User(WithEmail("manager@acme.io"), WithName("Maria", "Keller"), AsManager()),
		factory.User(WithEmail("dev@acme.io"), WithName("Jonas", "Brandt")),
		factory.User(WithEmail("design@acme.io"), WithName("Aino", "Virtanen")),
		factory.User(WithEmail("inactive@acme.io"), WithName("Lea", "Novak"), WithStatus("inactive")),
	}
}
