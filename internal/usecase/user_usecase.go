package usecase

import (
	"context"
	"strings"

	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/domain/user"

	"github.com/google/uuid"
)

type UpdateProfileInput struct {
	Name        *string
	Skills      *string
	Experience  *string
	PhoneNumber *string
	Location    *string
	ResumePath  *string
}

type UserUsecase interface {
	GetMe(ctx context.Context, userID uuid.UUID) (user.User, error)
	UpdateMe(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.User, error)
}

type UserProfile struct {
	users user.Repository
}

func NewUserUsecase(users user.Repository) *UserProfile {
	return &UserProfile{users: users}
}

func (s *UserProfile) GetMe(ctx context.Context, userID uuid.UUID) (user.User, error) {
	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if err == user.ErrNotFound {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	return sanitize(usr), nil
}

func (s *UserProfile) UpdateMe(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.User, error) {
	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if err == user.ErrNotFound {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return user.User{}, ErrInvalidInput
		}
		usr.Name = name
	}
	if in.Skills != nil {
		usr.Skills = strings.TrimSpace(*in.Skills)
	}
	if in.Experience != nil {
		usr.Experience = strings.TrimSpace(*in.Experience)
	}
	if in.PhoneNumber != nil {
		usr.PhoneNumber = strings.TrimSpace(*in.PhoneNumber)
	}
	if in.Location != nil {
		usr.Location = strings.TrimSpace(*in.Location)
	}
	if in.ResumePath != nil {
		usr.ResumePath = strings.TrimSpace(*in.ResumePath)
	}

	if err := s.users.Update(ctx, usr); err != nil {
		return user.User{}, ErrInternal
	}

	updated, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, ErrInternal
	}
	return sanitize(updated), nil
}

func sanitize(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
