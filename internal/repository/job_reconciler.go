package repository

import (
	"context"
	"fmt"

	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/database"
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/domain/job"
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/provider"

	"github.com/google/uuid"
)

// JobReconciler merges an aggregated batch against the persisted store.
// Each listing is looked up by its (provider, external_id) key; unseen ones
// are inserted with a fresh surrogate id, seen ones are reused unchanged.
//
// The whole batch runs in one transaction: a persistence fault rolls
// everything back and fails the request, so the caller never receives a list
// that disagrees with the store. Insert-if-absent uses ON CONFLICT DO NOTHING
// followed by a re-select, which also makes a concurrent insert of the same
// key from another request benign.
type JobReconciler struct {
	db database.DB
}

func NewJobReconciler(db database.DB) *JobReconciler {
	return &JobReconciler{db: db}
}

func (r *JobReconciler) Reconcile(ctx context.Context, jobs []provider.NormalizedJob) ([]job.PersistedJob, error) {
	if len(jobs) == 0 {
		return []job.PersistedJob{}, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("reconcile: begin: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	out := make([]job.PersistedJob, 0, len(jobs))
	seen := make(map[string]job.PersistedJob, len(jobs))

	for _, n := range jobs {
		key := n.Provider + "\x00" + n.ExternalID
		if existing, ok := seen[key]; ok {
			out = append(out, existing)
			continue
		}

		if err := insertJob(ctx, tx, persistedFromNormalized(n)); err != nil {
			return nil, fmt.Errorf("reconcile: insert %s/%s: %w", n.Provider, n.ExternalID, err)
		}
		persisted, err := findJob(ctx, tx, n.Provider, n.ExternalID)
		if err != nil {
			return nil, fmt.Errorf("reconcile: load %s/%s: %w", n.Provider, n.ExternalID, err)
		}

		seen[key] = persisted
		out = append(out, persisted)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("reconcile: commit: %w", err)
	}
	return out, nil
}

func persistedFromNormalized(n provider.NormalizedJob) job.PersistedJob {
	return job.PersistedJob{
		ID:          uuid.New(),
		Provider:    n.Provider,
		ExternalID:  n.ExternalID,
		Title:       n.Title,
		Company:     n.Company,
		Location:    n.Location,
		Description: n.Description,
		HREmail:     n.HREmail,
		URL:         n.URL,
		PostedAt:    n.PostedAt,
	}
}
