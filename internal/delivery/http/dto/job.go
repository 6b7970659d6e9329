package dto

import (
	"time"

	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/domain/job"
)

type JobResponse struct {
	ID          string  `json:"id"`
	RapidAPIID  string  `json:"rapidapi_id"`
	Provider    string  `json:"provider"`
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	HREmail     string  `json:"hr_email"`
	URL         string  `json:"url"`
	PostedAt    *string `json:"posted_at"`
}

func NewJobResponse(j job.PersistedJob) JobResponse {
	var postedAt *string
	if j.PostedAt != nil {
		v := j.PostedAt.UTC().Format(time.RFC3339)
		postedAt = &v
	}

	return JobResponse{
		ID:          j.ID.String(),
		RapidAPIID:  j.ExternalID,
		Provider:    j.Provider,
		Title:       j.Title,
		Company:     j.Company,
		Location:    j.Location,
		Description: j.Description,
		HREmail:     j.HREmail,
		URL:         j.URL,
		PostedAt:    postedAt,
	}
}

func NewJobListResponse(jobs []job.PersistedJob) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobResponse(j))
	}
	return out
}
