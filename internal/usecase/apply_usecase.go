package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/domain/application"
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/domain/job"
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/domain/user"

	"github.com/google/uuid"
)

// EmailDrafter writes a cold-outreach email for a user/job pair. Optional
// collaborator; a deterministic template takes over when it is absent or
// fails so applying never depends on the LLM being up.
type EmailDrafter interface {
	DraftOutreach(ctx context.Context, usr user.User, j job.PersistedJob) (subject, body string, err error)
}

// Mailer transports a drafted email with an optional attachment.
type Mailer interface {
	Send(to, subject, body, attachmentPath string) error
}

type ApplyUsecase interface {
	Apply(ctx context.Context, userID, jobID uuid.UUID) (application.Application, error)
	ListApplications(ctx context.Context, userID uuid.UUID) ([]application.Application, error)
}

type Apply struct {
	users        user.Repository
	jobs         job.Repository
	applications application.Repository
	drafter      EmailDrafter
	mailer       Mailer
	logger       *log.Logger
}

func NewApplyUsecase(
	users user.Repository,
	jobs job.Repository,
	applications application.Repository,
	drafter EmailDrafter,
	mailer Mailer,
	logger *log.Logger,
) *Apply {
	if logger == nil {
		logger = log.Default()
	}
	return &Apply{
		users:        users,
		jobs:         jobs,
		applications: applications,
		drafter:      drafter,
		mailer:       mailer,
		logger:       logger,
	}
}

// Apply records exactly one application per action. Jobs with a recruiter
// email get a drafted outreach message sent with the user's resume attached;
// a transport failure is recorded as status failed, not surfaced as an HTTP
// error. Jobs without one are recorded as manual_apply_required.
func (u *Apply) Apply(ctx context.Context, userID, jobID uuid.UUID) (application.Application, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if err == user.ErrNotFound {
			return application.Application{}, ErrNotFound
		}
		return application.Application{}, ErrInternal
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if err == job.ErrNotFound {
			return application.Application{}, ErrNotFound
		}
		return application.Application{}, ErrInternal
	}

	a := application.Application{
		ID:     uuid.New(),
		UserID: usr.ID,
		JobID:  j.ID,
	}

	if strings.TrimSpace(j.HREmail) != "" {
		subject, body := u.draft(ctx, usr, j)
		a.EmailSubject = subject
		a.EmailBody = body

		if err := u.mailer.Send(j.HREmail, subject, body, usr.ResumePath); err != nil {
			u.logger.Printf("[Apply] send to %s failed: %v", j.HREmail, err)
			a.Status = application.StatusFailed
		} else {
			a.Status = application.StatusEmailSent
		}
	} else {
		a.Status = application.StatusManualApplyRequired
		a.EmailBody = fmt.Sprintf("No recruiter email found. Please apply manually at %s", j.URL)
	}

	if err := u.applications.Create(ctx, a); err != nil {
		u.logger.Printf("[Apply] record application failed: %v", err)
		return application.Application{}, ErrInternal
	}
	return a, nil
}

func (u *Apply) ListApplications(ctx context.Context, userID uuid.UUID) ([]application.Application, error) {
	apps, err := u.applications.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return apps, nil
}

func (u *Apply) draft(ctx context.Context, usr user.User, j job.PersistedJob) (string, string) {
	if u.drafter != nil {
		subject, body, err := u.drafter.DraftOutreach(ctx, usr, j)
		if err == nil && strings.TrimSpace(body) != "" {
			return subject, body
		}
		if err != nil {
			u.logger.Printf("[Apply] drafting failed, using fallback template: %v", err)
		}
	}
	return fallbackDraft(usr, j)
}

func fallbackDraft(usr user.User, j job.PersistedJob) (string, string) {
	subject := fmt.Sprintf("Application for %s", j.Title)
	body := fmt.Sprintf(
		"Dear Hiring Team at %s,\n\n"+
			"I am writing to express my interest in the %s position. "+
			"My background: %s. Key skills: %s.\n\n"+
			"I would welcome the chance to discuss how I can contribute.\n\n"+
			"Best regards,\n%s\n%s",
		j.Company, j.Title, usr.Experience, usr.Skills, usr.Name, usr.Email,
	)
	return subject, body
}
