package dto

import (
	"time"

	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/domain/user"
)

type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Skills      string `json:"skills"`
	Experience  string `json:"experience"`
	PhoneNumber string `json:"phone_number"`
	Location    string `json:"location"`
	ResumePath  string `json:"resume_path"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type UpdateProfileRequest struct {
	Name        *string `json:"name"`
	Skills      *string `json:"skills"`
	Experience  *string `json:"experience"`
	PhoneNumber *string `json:"phone_number"`
	Location    *string `json:"location"`
	ResumePath  *string `json:"resume_path"`
}

type UserResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Skills      string `json:"skills"`
	Experience  string `json:"experience"`
	PhoneNumber string `json:"phone_number"`
	Location    string `json:"location"`
	ResumePath  string `json:"resume_path"`
	CreatedAt   string `json:"created_at"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthResponse struct {
	User   UserResponse  `json:"user"`
	Tokens TokenResponse `json:"tokens"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:          u.ID.String(),
		Name:        u.Name,
		Email:       u.Email,
		Skills:      u.Skills,
		Experience:  u.Experience,
		PhoneNumber: u.PhoneNumber,
		Location:    u.Location,
		ResumePath:  u.ResumePath,
		CreatedAt:   u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func NewAuthResponse(u user.User, access, refresh string) AuthResponse {
	return AuthResponse{
		User:   NewUserResponse(u),
		Tokens: TokenResponse{AccessToken: access, RefreshToken: refresh},
	}
}
