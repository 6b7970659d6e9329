package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Skills       string
	Experience   string
	PhoneNumber  string
	Location     string
	ResumePath   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
