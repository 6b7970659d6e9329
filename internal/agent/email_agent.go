package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/domain/job"
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/domain/user"
)

const outreachPrompt = `You are a career assistant writing a concise, professional cold-outreach email to a recruiter.

CANDIDATE:
- Name: %s
- Email: %s
- Phone: %s
- Skills: %s
- Experience: %s

JOB:
- Title: %s
- Company: %s
- Description (may be truncated): %s

Write a short email (under 200 words) expressing interest in the role, naming two or three of the candidate's most relevant skills, and mentioning that a resume is attached.
Return ONLY a valid JSON object: {"subject": "...", "body": "..."}`

const maxDescriptionChars = 4000

type draftResponse struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// DraftOutreach asks Gemini to write the outreach email. Errors are returned
// so the apply flow can use its deterministic fallback template.
func (c *Client) DraftOutreach(ctx context.Context, usr user.User, j job.PersistedJob) (string, string, error) {
	description := j.Description
	if len(description) > maxDescriptionChars {
		description = description[:maxDescriptionChars]
	}

	prompt := fmt.Sprintf(outreachPrompt,
		usr.Name, usr.Email, usr.PhoneNumber, usr.Skills, usr.Experience,
		j.Title, j.Company, description,
	)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return "", "", err
	}

	var draft draftResponse
	if err := json.Unmarshal([]byte(stripJSONFences(text)), &draft); err != nil {
		return "", "", fmt.Errorf("gemini: parse draft response: %w", err)
	}
	if draft.Subject == "" {
		draft.Subject = fmt.Sprintf("Application for %s", j.Title)
	}
	return draft.Subject, draft.Body, nil
}
