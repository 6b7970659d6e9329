package migration

import (
	"context"
	"fmt"

	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/database"
)

// Schema bootstrap. Every statement is idempotent so Apply can run on every
// startup without a migrations table.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		skills TEXT NOT NULL DEFAULT '',
		experience TEXT NOT NULL DEFAULT '',
		phone_number TEXT,
		location TEXT,
		resume_path TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id UUID PRIMARY KEY,
		provider TEXT NOT NULL,
		external_id TEXT NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		company TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		hr_email TEXT,
		url TEXT NOT NULL DEFAULT '#',
		posted_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (provider, external_id)
	)`,
	`CREATE TABLE IF NOT EXISTS applications (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id),
		job_id UUID NOT NULL REFERENCES jobs(id),
		status TEXT NOT NULL CHECK (status IN ('email_sent', 'failed', 'manual_apply_required')),
		generated_email_subject TEXT NOT NULL DEFAULT '',
		generated_email_body TEXT NOT NULL DEFAULT '',
		applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_user_status ON applications (user_id, status)`,
}

func Apply(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
