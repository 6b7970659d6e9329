package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/domain/application"
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/domain/job"
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/domain/user"

	"github.com/google/uuid"
)

type fakeJobRepo struct {
	jobs map[uuid.UUID]job.PersistedJob
}

func (f fakeJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.PersistedJob, error) {
	j, ok := f.jobs[id]
	if !ok {
		return job.PersistedJob{}, job.ErrNotFound
	}
	return j, nil
}
func (f fakeJobRepo) FindByProviderExternalID(context.Context, string, string) (job.PersistedJob, error) {
	return job.PersistedJob{}, job.ErrNotFound
}
func (f fakeJobRepo) Insert(context.Context, job.PersistedJob) error { return nil }

type fakeApplicationRepo struct {
	created   []application.Application
	createErr error
	listed    []application.Application
}

func (f *fakeApplicationRepo) Create(_ context.Context, a application.Application) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, a)
	return nil
}
func (f *fakeApplicationRepo) ListByUser(context.Context, uuid.UUID) ([]application.Application, error) {
	return f.listed, nil
}
func (f *fakeApplicationRepo) ContactedJobIDs(context.Context, uuid.UUID) (map[uuid.UUID]struct{}, error) {
	return nil, nil
}

type fakeDrafter struct {
	subject string
	body    string
	err     error
}

func (f fakeDrafter) DraftOutreach(context.Context, user.User, job.PersistedJob) (string, string, error) {
	return f.subject, f.body, f.err
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

type sentMail struct {
	to, subject, body, attachment string
}

func (f *fakeMailer) Send(to, subject, body, attachmentPath string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to, subject, body, attachmentPath})
	return nil
}

func applyFixtures(hrEmail string) (uuid.UUID, uuid.UUID, fakeUserRepo, fakeJobRepo) {
	userID := uuid.New()
	jobID := uuid.New()
	users := fakeUserRepo{users: map[uuid.UUID]user.User{userID: {
		ID: userID, Name: "Ada", Email: "ada@example.com", Skills: "Go", ResumePath: "/tmp/resume.pdf",
	}}}
	jobs := fakeJobRepo{jobs: map[uuid.UUID]job.PersistedJob{jobID: {
		ID: jobID, Title: "Go Developer", Company: "Acme", HREmail: hrEmail, URL: "https://example.com/j/1",
	}}}
	return userID, jobID, users, jobs
}

func TestApply_EmailSent(t *testing.T) {
	userID, jobID, users, jobs := applyFixtures("hr@acme.com")
	apps := &fakeApplicationRepo{}
	mail := &fakeMailer{}

	uc := NewApplyUsecase(users, jobs, apps, fakeDrafter{subject: "Hello", body: "I am interested."}, mail, testLogger())

	a, err := uc.Apply(context.Background(), userID, jobID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if a.Status != application.StatusEmailSent {
		t.Fatalf("status: %s", a.Status)
	}
	if len(mail.sent) != 1 {
		t.Fatalf("expected 1 mail, got %d", len(mail.sent))
	}
	if mail.sent[0].to != "hr@acme.com" || mail.sent[0].attachment != "/tmp/resume.pdf" {
		t.Fatalf("mail: %+v", mail.sent[0])
	}
	if len(apps.created) != 1 || apps.created[0].EmailSubject != "Hello" {
		t.Fatalf("recorded application: %+v", apps.created)
	}
}

func TestApply_SendFailureIsRecordedAsFailed(t *testing.T) {
	userID, jobID, users, jobs := applyFixtures("hr@acme.com")
	apps := &fakeApplicationRepo{}

	uc := NewApplyUsecase(users, jobs, apps, fakeDrafter{subject: "s", body: "b"}, &fakeMailer{err: errors.New("smtp refused")}, testLogger())

	a, err := uc.Apply(context.Background(), userID, jobID)
	if err != nil {
		t.Fatalf("send failure must not surface as error, got %v", err)
	}
	if a.Status != application.StatusFailed {
		t.Fatalf("status: %s", a.Status)
	}
	if len(apps.created) != 1 {
		t.Fatalf("failed application must still be recorded")
	}
}

func TestApply_NoRecruiterEmailRequiresManualApply(t *testing.T) {
	userID, jobID, users, jobs := applyFixtures("")
	apps := &fakeApplicationRepo{}
	mail := &fakeMailer{}

	uc := NewApplyUsecase(users, jobs, apps, nil, mail, testLogger())

	a, err := uc.Apply(context.Background(), userID, jobID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if a.Status != application.StatusManualApplyRequired {
		t.Fatalf("status: %s", a.Status)
	}
	if len(mail.sent) != 0 {
		t.Fatalf("no mail should be sent")
	}
	if !strings.Contains(a.EmailBody, "https://example.com/j/1") {
		t.Fatalf("manual-apply note should carry the listing url: %q", a.EmailBody)
	}
}

func TestApply_DrafterFailureFallsBackToTemplate(t *testing.T) {
	userID, jobID, users, jobs := applyFixtures("hr@acme.com")
	apps := &fakeApplicationRepo{}
	mail := &fakeMailer{}

	uc := NewApplyUsecase(users, jobs, apps, fakeDrafter{err: errors.New("model overloaded")}, mail, testLogger())

	a, err := uc.Apply(context.Background(), userID, jobID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if a.Status != application.StatusEmailSent {
		t.Fatalf("status: %s", a.Status)
	}
	if !strings.Contains(a.EmailSubject, "Go Developer") {
		t.Fatalf("fallback subject: %q", a.EmailSubject)
	}
	if !strings.Contains(a.EmailBody, "Acme") {
		t.Fatalf("fallback body: %q", a.EmailBody)
	}
}

func TestApply_UnknownUserOrJob(t *testing.T) {
	userID, jobID, users, jobs := applyFixtures("hr@acme.com")
	uc := NewApplyUsecase(users, jobs, &fakeApplicationRepo{}, nil, &fakeMailer{}, testLogger())

	if _, err := uc.Apply(context.Background(), uuid.New(), jobID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown user: expected ErrNotFound, got %v", err)
	}
	if _, err := uc.Apply(context.Background(), userID, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown job: expected ErrNotFound, got %v", err)
	}
}

func TestApply_RecordFailureIsInternal(t *testing.T) {
	userID, jobID, users, jobs := applyFixtures("")
	apps := &fakeApplicationRepo{createErr: errors.New("constraint violation")}

	uc := NewApplyUsecase(users, jobs, apps, nil, &fakeMailer{}, testLogger())

	if _, err := uc.Apply(context.Background(), userID, jobID); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestListApplications(t *testing.T) {
	userID := uuid.New()
	apps := &fakeApplicationRepo{listed: []application.Application{
		{ID: uuid.New(), UserID: userID, Status: application.StatusEmailSent},
	}}

	uc := NewApplyUsecase(fakeUserRepo{}, fakeJobRepo{}, apps, nil, &fakeMailer{}, testLogger())

	out, err := uc.ListApplications(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 application, got %d", len(out))
	}
}
