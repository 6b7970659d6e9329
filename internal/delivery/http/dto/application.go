package dto

import (
	"time"

	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/domain/application"
)

type ApplyRequest struct {
	JobID string `json:"job_id"`
}

type ApplicationResponse struct {
	ID           string `json:"id"`
	JobID        string `json:"job_id"`
	Status       string `json:"status"`
	EmailSubject string `json:"email_subject,omitempty"`
	AppliedAt    string `json:"applied_at"`
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:           a.ID.String(),
		JobID:        a.JobID.String(),
		Status:       a.Status,
		EmailSubject: a.EmailSubject,
		AppliedAt:    a.AppliedAt.UTC().Format(time.RFC3339),
	}
}

func NewApplicationListResponse(apps []application.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, NewApplicationResponse(a))
	}
	return out
}
