package testutil

// TimesheetMigrations returns the DDL statements for the timesheet service
// schema. They mirror the production migrations and are applied once per
// integration suite.
func TimesheetMigrations() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'employee',
			is_manager BOOLEAN NOT NULL DEFAULT FALSE,
			status VARCHAR(50) NOT NULL DEFAULT 'active',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS projects (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			client VARCHAR(255),
			allocated_hours NUMERIC(8,2) NOT NULL DEFAULT 0,
			status VARCHAR(50) NOT NULL DEFAULT 'active',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS weekly_records (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL REFERENCES users(id),
			project_id UUID NOT NULL REFERENCES projects(id),
			year INT NOT NULL,
			week_number INT NOT NULL,
			monday_hours NUMERIC(5,2) NOT NULL DEFAULT 0,
			tuesday_hours NUMERIC(5,2) NOT NULL DEFAULT 0,
			wednesday_hours NUMERIC(5,2) NOT NULL DEFAULT 0,
			thursday_hours NUMERIC(5,2) NOT NULL DEFAULT 0,
			friday_hours NUMERIC(5,2) NOT NULL DEFAULT 0,
			status VARCHAR(20) NOT NULL DEFAULT 'draft',
			month_hours JSONB NOT NULL DEFAULT '{}',
			submitted_at TIMESTAMPTZ,
			approved_by UUID,
			approved_at TIMESTAMPTZ,
			rejection_reason TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT week_number_valid CHECK (week_number BETWEEN 1 AND 53),
			CONSTRAINT status_valid CHECK (status IN ('draft', 'submitted', 'approved', 'rejected')),
			CONSTRAINT monday_day_hours_range CHECK (monday_hours BETWEEN 0 AND 24),
			CONSTRAINT tuesday_day_hours_range CHECK (tuesday_hours BETWEEN 0 AND 24),
			CONSTRAINT wednesday_day_hours_range CHECK (wednesday_hours BETWEEN 0 AND 24),
			CONSTRAINT thursday_day_hours_range CHECK (thursday_hours BETWEEN 0 AND 24),
			CONSTRAINT friday_day_hours_range CHECK (friday_hours BETWEEN 0 AND 24),
			CONSTRAINT weekly_records_user_project_week UNIQUE (user_id, project_id, year, week_number)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_weekly_records_user_week
			ON weekly_records (user_id, year, week_number)`,

		`CREATE INDEX IF NOT EXISTS idx_weekly_records_status
			ON weekly_records (status)`,

		`CREATE INDEX IF NOT EXISTS idx_weekly_records_month_hours
			ON weekly_records USING GIN (month_hours)`,

		`CREATE TABLE IF NOT EXISTS notifications (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			recipient_id UUID NOT NULL,
			kind VARCHAR(50) NOT NULL,
			message TEXT NOT NULL,
			payload JSONB,
			read_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_notifications_recipient
			ON notifications (recipient_id, created_at DESC)`,
	}
}

// TruncateTables lists the tables cleared between integration tests, in
// dependency order.
func TruncateTables() []string {
	return []string{
		"notifications",
		"weekly_records",
		"projects",
		"users",
	}
}
