package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/database"
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const jobColumns = `id, provider, external_id, COALESCE(title, ''), COALESCE(company, ''), COALESCE(location, ''),
	COALESCE(description, ''), COALESCE(hr_email, ''), COALESCE(url, '#'), posted_at, created_at`

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.PersistedJob, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	return scanJob(row)
}

func (r *PostgresJobRepository) FindByProviderExternalID(ctx context.Context, provider, externalID string) (job.PersistedJob, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE provider = $1 AND external_id = $2`,
		provider, externalID,
	)
	return scanJob(row)
}

func (r *PostgresJobRepository) Insert(ctx context.Context, j job.PersistedJob) error {
	return insertJob(ctx, r.db, j)
}

// executor is the common surface of database.DB and database.Tx, so the same
// statements serve both transactional and standalone paths.
type executor interface {
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	QueryRow(ctx context.Context, query string, args ...any) database.Row
}

// insertJob is insert-if-absent: an existing (provider, external_id) row is
// left untouched, stale field values included.
func insertJob(ctx context.Context, ex executor, j job.PersistedJob) error {
	_, err := ex.Exec(ctx,
		`INSERT INTO jobs (id, provider, external_id, title, company, location, description, hr_email, url, posted_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		 ON CONFLICT (provider, external_id) DO NOTHING`,
		j.ID, j.Provider, j.ExternalID, j.Title, j.Company, j.Location,
		j.Description, nullableText(j.HREmail), j.URL, j.PostedAt,
	)
	return err
}

func findJob(ctx context.Context, ex executor, provider, externalID string) (job.PersistedJob, error) {
	row := ex.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE provider = $1 AND external_id = $2`,
		provider, externalID,
	)
	return scanJob(row)
}

func scanJob(row database.Row) (job.PersistedJob, error) {
	var j job.PersistedJob
	err := row.Scan(
		&j.ID, &j.Provider, &j.ExternalID, &j.Title, &j.Company, &j.Location,
		&j.Description, &j.HREmail, &j.URL, &j.PostedAt, &j.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.PersistedJob{}, job.ErrNotFound
		}
		return job.PersistedJob{}, err
	}
	return j, nil
}

func nullableText(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return s
}
