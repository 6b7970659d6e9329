package application

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	StatusEmailSent           = "email_sent"
	StatusFailed              = "failed"
	StatusManualApplyRequired = "manual_apply_required"
)

// Application links a user to a job they acted on. Rows are append-only:
// one per apply action, never updated or deleted.
type Application struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	JobID        uuid.UUID
	Status       string
	EmailSubject string
	EmailBody    string
	AppliedAt    time.Time
}

type Repository interface {
	Create(ctx context.Context, a Application) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Application, error)
	// ContactedJobIDs returns the job ids for which the user has an
	// application with status email_sent. failed and manual_apply_required
	// leave the job eligible to reappear in search results.
	ContactedJobIDs(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]struct{}, error)
}
