package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/database"
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/domain/job"
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/provider"

	"github.com/google/uuid"
)

// memDB implements database.DB over a map keyed by provider/external_id. It
// understands just the two statements the reconciler issues.
type memDB struct {
	rows map[string]job.PersistedJob

	execErr    error
	beginErr   error
	commits    int
	rollbacks  int
	insertions int
}

func newMemDB() *memDB {
	return &memDB{rows: map[string]job.PersistedJob{}}
}

func (m *memDB) Ping(context.Context) error { return nil }
func (m *memDB) Close() error               { return nil }

func (m *memDB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	if m.execErr != nil {
		return 0, m.execErr
	}
	if !strings.HasPrefix(strings.TrimSpace(query), "INSERT INTO jobs") {
		return 0, errors.New("unexpected exec: " + query)
	}

	j := job.PersistedJob{
		ID:         args[0].(uuid.UUID),
		Provider:   args[1].(string),
		ExternalID: args[2].(string),
		Title:      args[3].(string),
		Company:    args[4].(string),
		Location:   args[5].(string),
		CreatedAt:  time.Now().UTC(),
	}
	if s, ok := args[6].(string); ok {
		j.Description = s
	}
	if s, ok := args[7].(string); ok {
		j.HREmail = s
	}
	if s, ok := args[8].(string); ok {
		j.URL = s
	}
	if ts, ok := args[9].(*time.Time); ok {
		j.PostedAt = ts
	}

	key := j.Provider + "/" + j.ExternalID
	if _, exists := m.rows[key]; exists {
		return 0, nil
	}
	m.rows[key] = j
	m.insertions++
	return 1, nil
}

func (m *memDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, errors.New("not implemented")
}

func (m *memDB) QueryRow(_ context.Context, query string, args ...any) database.Row {
	j, ok := m.rows[args[0].(string)+"/"+args[1].(string)]
	if !ok {
		return memRow{err: job.ErrNotFound}
	}
	return memRow{job: j}
}

func (m *memDB) Begin(context.Context) (database.Tx, error) {
	if m.beginErr != nil {
		return nil, m.beginErr
	}
	return &memTx{db: m}, nil
}

type memTx struct {
	db   *memDB
	done bool
}

func (t *memTx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	return t.db.Exec(ctx, query, args...)
}

func (t *memTx) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	return t.db.Query(ctx, query, args...)
}

func (t *memTx) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return t.db.QueryRow(ctx, query, args...)
}

func (t *memTx) Commit(context.Context) error {
	t.done = true
	t.db.commits++
	return nil
}

func (t *memTx) Rollback(context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	t.db.rollbacks++
	return nil
}

type memRow struct {
	job job.PersistedJob
	err error
}

func (r memRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*uuid.UUID) = r.job.ID
	*dest[1].(*string) = r.job.Provider
	*dest[2].(*string) = r.job.ExternalID
	*dest[3].(*string) = r.job.Title
	*dest[4].(*string) = r.job.Company
	*dest[5].(*string) = r.job.Location
	*dest[6].(*string) = r.job.Description
	*dest[7].(*string) = r.job.HREmail
	*dest[8].(*string) = r.job.URL
	*dest[9].(**time.Time) = r.job.PostedAt
	*dest[10].(*time.Time) = r.job.CreatedAt
	return nil
}

func normalized(p, id, title string) provider.NormalizedJob {
	return provider.NormalizedJob{Provider: p, ExternalID: id, Title: title, Company: "Acme", URL: "#", Description: "d"}
}

func TestReconcile_EmptyBatch(t *testing.T) {
	db := newMemDB()
	r := NewJobReconciler(db)

	out, err := r.Reconcile(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty, got %d", len(out))
	}
	if db.commits != 0 {
		t.Fatalf("no transaction should run for an empty batch")
	}
}

func TestReconcile_InsertsNewAndReusesExisting(t *testing.T) {
	db := newMemDB()
	r := NewJobReconciler(db)

	first, err := r.Reconcile(context.Background(), []provider.NormalizedJob{
		normalized("linkedin", "1", "Go Developer"),
		normalized("jsearch", "1", "Go Developer"),
	})
	if err != nil {
		t.Fatalf("first reconcile: %v", err)
	}
	if len(first) != 2 || db.insertions != 2 {
		t.Fatalf("expected 2 inserts, got rows=%d inserts=%d", len(first), db.insertions)
	}
	if first[0].ID == first[1].ID {
		t.Fatalf("same external id under different providers must get distinct rows")
	}

	second, err := r.Reconcile(context.Background(), []provider.NormalizedJob{
		normalized("linkedin", "1", "Go Developer (retitled)"),
	})
	if err != nil {
		t.Fatalf("second reconcile: %v", err)
	}
	if len(second) != 1 {
		t.Fatalf("expected 1 row, got %d", len(second))
	}
	if second[0].ID != first[0].ID {
		t.Fatalf("existing row must keep its surrogate id")
	}
	if second[0].Title != "Go Developer" {
		t.Fatalf("existing row must keep its stored fields, got %q", second[0].Title)
	}
	if db.insertions != 2 {
		t.Fatalf("re-sighting must not insert, inserts=%d", db.insertions)
	}
}

func TestReconcile_DuplicateWithinBatch(t *testing.T) {
	db := newMemDB()
	r := NewJobReconciler(db)

	out, err := r.Reconcile(context.Background(), []provider.NormalizedJob{
		normalized("linkedin", "dup", "Go Developer"),
		normalized("linkedin", "dup", "Go Developer"),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("both occurrences must be returned, got %d", len(out))
	}
	if out[0].ID != out[1].ID {
		t.Fatalf("in-batch duplicates must resolve to the same row")
	}
	if db.insertions != 1 {
		t.Fatalf("expected a single insert, got %d", db.insertions)
	}
}

func TestReconcile_InsertFailureRollsBack(t *testing.T) {
	db := newMemDB()
	db.execErr = errors.New("disk full")
	r := NewJobReconciler(db)

	if _, err := r.Reconcile(context.Background(), []provider.NormalizedJob{normalized("linkedin", "1", "t")}); err == nil {
		t.Fatalf("expected error")
	}
	if db.commits != 0 || db.rollbacks != 1 {
		t.Fatalf("expected rollback, commits=%d rollbacks=%d", db.commits, db.rollbacks)
	}
}
