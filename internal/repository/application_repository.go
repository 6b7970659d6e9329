package repository

import (
	"context"

	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/database"
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/domain/application"

	"github.com/google/uuid"
)

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, user_id, job_id, status, generated_email_subject, generated_email_body)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		a.ID, a.UserID, a.JobID, a.Status, a.EmailSubject, a.EmailBody,
	)
	return err
}

func (r *PostgresApplicationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]application.Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, job_id, status, COALESCE(generated_email_subject, ''), COALESCE(generated_email_body, ''), applied_at
		 FROM applications
		 WHERE user_id = $1
		 ORDER BY applied_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		var a application.Application
		if err := rows.Scan(&a.ID, &a.UserID, &a.JobID, &a.Status, &a.EmailSubject, &a.EmailBody, &a.AppliedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) ContactedJobIDs(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT job_id FROM applications WHERE user_id = $1 AND status = $2`,
		userID, application.StatusEmailSent,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uuid.UUID]struct{})
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
