package repository

import (
	"context"
	"errors"

	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/database"
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, name, email, password_hash, COALESCE(skills, ''), COALESCE(experience, ''),
	COALESCE(phone_number, ''), COALESCE(location, ''), COALESCE(resume_path, ''), created_at, updated_at`

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, u user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, skills, experience, phone_number, location, resume_path)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Skills, u.Experience,
		nullableText(u.PhoneNumber), nullableText(u.Location), nullableText(u.ResumePath),
	)
	return err
}

func (r *PostgresUserRepository) Update(ctx context.Context, u user.User) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET name = $2, email = $3, password_hash = $4, skills = $5, experience = $6,
			phone_number = $7, location = $8, resume_path = $9, updated_at = now()
		 WHERE id = $1`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Skills, u.Experience,
		nullableText(u.PhoneNumber), nullableText(u.Location), nullableText(u.ResumePath),
	)
	return err
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
	if err := row.Scan(&exists); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return exists, nil
}

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Skills, &u.Experience,
		&u.PhoneNumber, &u.Location, &u.ResumePath, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}
