package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func newTestActiveJobs(t *testing.T, handler http.HandlerFunc) *ActiveJobs {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &ActiveJobs{
		key:     "test-key",
		host:    "activejobs.test",
		baseURL: srv.URL,
		timeout: 2 * time.Second,
		client:  srv.Client(),
		logger:  discardLogger(),
	}
}

func TestActiveJobs_Search_Normalizes(t *testing.T) {
	payload := `[
		{"id": "aj-1", "title": "Platform Engineer", "company_name": "Acme",
		 "location": "Austin, TX", "description": "Apply via talent@acme.com",
		 "url": "https://example.com/aj/1", "date_posted": "2025-05-20"},
		{"job_id": 99, "job_title": "SRE", "organization": "Globex",
		 "job_description": "on-call rotation", "posted_date": "2025-05-21T08:00:00Z"},
		{"id": "incomplete"}
	]`

	var gotQuery url.Values
	p := newTestActiveJobs(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(payload))
	})

	jobs := p.Search(context.Background(), JobFilter{
		Title:               "Engineer",
		DescriptionKeywords: "kubernetes",
		PostedAfter:         "2025-05-01",
		EmploymentType:      "FULL_TIME",
	})

	if gotQuery.Get("title_filter") != "Engineer" || gotQuery.Get("description_filter") != "kubernetes" {
		t.Fatalf("filter params: %v", gotQuery)
	}
	if gotQuery.Get("date_filter") != "2025-05-01" || gotQuery.Get("type_filter") != "FULL_TIME" {
		t.Fatalf("date/type params: %v", gotQuery)
	}
	if gotQuery.Has("remote") {
		t.Fatalf("remote should be absent")
	}

	if len(jobs) != 2 {
		t.Fatalf("expected 2 surviving jobs, got %d", len(jobs))
	}

	first := jobs[0]
	if first.Provider != "active_jobs" || first.ExternalID != "aj-1" {
		t.Fatalf("identity: %+v", first)
	}
	if first.HREmail != "talent@acme.com" {
		t.Fatalf("hr email: %q", first.HREmail)
	}
	if first.PostedAt == nil {
		t.Fatalf("bare date not parsed")
	}

	second := jobs[1]
	if second.ExternalID != "99" || second.Title != "SRE" || second.Company != "Globex" {
		t.Fatalf("alias fallbacks: %+v", second)
	}
	if second.URL != "#" {
		t.Fatalf("url placeholder: %q", second.URL)
	}
}

func TestActiveJobs_Search_MalformedBodyYieldsEmpty(t *testing.T) {
	p := newTestActiveJobs(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>gateway timeout</html>`))
	})

	if jobs := p.Search(context.Background(), JobFilter{Title: "Go"}); len(jobs) != 0 {
		t.Fatalf("expected empty result, got %d", len(jobs))
	}
}
