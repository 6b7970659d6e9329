package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/domain/job"
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/domain/user"
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/provider"

	"github.com/google/uuid"
)

const searchCacheTTL = 5 * time.Minute

type SearchParams struct {
	Query    string
	Location string
	UserID   *uuid.UUID
}

// Searcher is the aggregation layer: fan out to all providers, join results.
type Searcher interface {
	Search(ctx context.Context, filter provider.JobFilter) []provider.NormalizedJob
}

// Reconciler merges an aggregated batch with the persisted store.
type Reconciler interface {
	Reconcile(ctx context.Context, jobs []provider.NormalizedJob) ([]job.PersistedJob, error)
}

// FilterInferencer turns a user profile plus a free-text query into a
// structured filter. Optional collaborator; any failure falls back to a
// filter built from the raw query.
type FilterInferencer interface {
	InferFilter(ctx context.Context, usr user.User, query string) (provider.JobFilter, error)
}

// ContactedJobSource reports which jobs a user already reached by email.
type ContactedJobSource interface {
	ContactedJobIDs(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]struct{}, error)
}

type JobSearchUsecase interface {
	SearchJobs(ctx context.Context, params SearchParams) ([]job.PersistedJob, error)
}

type JobSearch struct {
	searcher     Searcher
	reconciler   Reconciler
	users        user.Repository
	applications ContactedJobSource
	inferencer   FilterInferencer
	cache        SearchCache
	logger       *log.Logger
}

func NewJobSearchUsecase(
	searcher Searcher,
	reconciler Reconciler,
	users user.Repository,
	applications ContactedJobSource,
	inferencer FilterInferencer,
	cache SearchCache,
	logger *log.Logger,
) *JobSearch {
	if logger == nil {
		logger = log.Default()
	}
	return &JobSearch{
		searcher:     searcher,
		reconciler:   reconciler,
		users:        users,
		applications: applications,
		inferencer:   inferencer,
		cache:        cache,
		logger:       logger,
	}
}

// SearchJobs runs the full pipeline: build a filter, aggregate the providers,
// reconcile against the store, then drop jobs the user already contacted.
// An all-providers-empty batch is a valid empty result. Only a persistence
// fault fails the request.
func (u *JobSearch) SearchJobs(ctx context.Context, params SearchParams) ([]job.PersistedJob, error) {
	filter := u.buildFilter(ctx, params)

	batch := u.aggregate(ctx, filter)

	persisted, err := u.reconciler.Reconcile(ctx, batch)
	if err != nil {
		u.logger.Printf("[JobSearch] reconcile failed: %v", err)
		return nil, ErrInternal
	}

	if params.UserID == nil {
		return persisted, nil
	}

	contacted, err := u.applications.ContactedJobIDs(ctx, *params.UserID)
	if err != nil {
		u.logger.Printf("[JobSearch] contacted lookup failed: %v", err)
		return nil, ErrInternal
	}
	if len(contacted) == 0 {
		return persisted, nil
	}

	filtered := make([]job.PersistedJob, 0, len(persisted))
	for _, j := range persisted {
		if _, ok := contacted[j.ID]; ok {
			continue
		}
		filtered = append(filtered, j)
	}
	return filtered, nil
}

// buildFilter prefers the inference agent when the caller is a known user;
// otherwise, or when the agent fails or returns nothing, the filter is built
// from the raw query with the configured default title.
func (u *JobSearch) buildFilter(ctx context.Context, params SearchParams) provider.JobFilter {
	var filter provider.JobFilter

	if params.UserID != nil && u.inferencer != nil {
		usr, err := u.users.GetByID(ctx, *params.UserID)
		if err == nil {
			inferred, inferErr := u.inferencer.InferFilter(ctx, usr, params.Query)
			if inferErr != nil {
				u.logger.Printf("[JobSearch] filter inference failed, falling back: %v", inferErr)
			} else {
				filter = inferred
			}
		}
	}

	if filter.IsZero() {
		title := strings.TrimSpace(params.Query)
		if title == "" {
			title = provider.DefaultTitle
		}
		filter.Title = title
	}

	if params.Location != "" && filter.Location == "" {
		filter.Location = params.Location
	}

	return filter
}

// aggregate consults the short-lived provider-result cache before fanning
// out. Only the normalized batch is cached; reconciliation and the
// application-aware filter always run fresh.
func (u *JobSearch) aggregate(ctx context.Context, filter provider.JobFilter) []provider.NormalizedJob {
	key := JobsSearchCacheKey(filter)

	if u.cache != nil {
		var cached []provider.NormalizedJob
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			u.logger.Printf("[JobSearch] cache read failed: %v", err)
		} else if hit {
			return cached
		}
	}

	batch := u.searcher.Search(ctx, filter)

	if u.cache != nil && len(batch) > 0 {
		if err := u.cache.SetJSON(ctx, key, batch, searchCacheTTL); err != nil {
			u.logger.Printf("[JobSearch] cache write failed: %v", err)
		}
	}
	return batch
}
