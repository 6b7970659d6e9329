package job

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

// PersistedJob is a normalized listing with its surrogate identifier. Rows are
// written once on first sighting of a (provider, external_id) pair and never
// refreshed afterwards.
type PersistedJob struct {
	ID          uuid.UUID
	Provider    string
	ExternalID  string
	Title       string
	Company     string
	Location    string
	Description string
	HREmail     string
	URL         string
	PostedAt    *time.Time
	CreatedAt   time.Time
}

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (PersistedJob, error)
	FindByProviderExternalID(ctx context.Context, provider, externalID string) (PersistedJob, error)
	Insert(ctx context.Context, j PersistedJob) error
}
