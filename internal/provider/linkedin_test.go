package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func newTestLinkedIn(t *testing.T, handler http.HandlerFunc) (*LinkedIn, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &LinkedIn{
		key:     "test-key",
		host:    "linkedin.test",
		baseURL: srv.URL,
		timeout: 2 * time.Second,
		client:  srv.Client(),
		logger:  discardLogger(),
	}, srv
}

func TestLinkedIn_Search_Normalizes(t *testing.T) {
	payload := `[
		{"id": 4017553958, "title": "Go Developer", "organization": "Acme",
		 "locations_derived": ["Berlin, Germany"],
		 "description_text": "Great role. Contact hiring@acme.dev",
		 "url": "https://example.com/j/1", "date_posted": "2025-06-01T10:30:00Z"},
		{"job_id": "x-2", "job_title": "Backend Engineer",
		 "company": {"name": "Globex"}, "location": "Remote"},
		{"id": "no-title-or-company", "description": "orphan"},
		{"title": "Missing ID", "organization": "Initech"}
	]`

	var gotQuery url.Values
	var gotKey, gotHost string
	p, _ := newTestLinkedIn(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotKey = r.Header.Get("x-rapidapi-key")
		gotHost = r.Header.Get("x-rapidapi-host")
		w.Write([]byte(payload))
	})

	jobs := p.Search(context.Background(), JobFilter{Title: "Go Developer", Location: "Berlin", Remote: "true"})

	if gotKey != "test-key" || gotHost != "linkedin.test" {
		t.Fatalf("auth headers: key=%q host=%q", gotKey, gotHost)
	}
	if gotQuery.Get("title_filter") != "Go Developer" || gotQuery.Get("location_filter") != "Berlin" {
		t.Fatalf("filter params: %v", gotQuery)
	}
	if gotQuery.Get("remote") != "true" || gotQuery.Get("description_type") != "text" {
		t.Fatalf("static params: %v", gotQuery)
	}

	if len(jobs) != 2 {
		t.Fatalf("expected 2 surviving jobs, got %d", len(jobs))
	}

	first := jobs[0]
	if first.Provider != "linkedin" || first.ExternalID != "4017553958" {
		t.Fatalf("identity: %+v", first)
	}
	if first.Company != "Acme" || first.Location != "Berlin, Germany" {
		t.Fatalf("fields: %+v", first)
	}
	if first.HREmail != "hiring@acme.dev" {
		t.Fatalf("hr email: %q", first.HREmail)
	}
	if first.PostedAt == nil {
		t.Fatalf("posted at not parsed")
	}

	second := jobs[1]
	if second.ExternalID != "x-2" || second.Company != "Globex" {
		t.Fatalf("alias fallbacks: %+v", second)
	}
	if second.Description != "No description" || second.URL != "#" {
		t.Fatalf("placeholders: %+v", second)
	}
}

func TestLinkedIn_Search_DefaultTitleOnEmptyFilter(t *testing.T) {
	var gotQuery url.Values
	p, _ := newTestLinkedIn(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`[]`))
	})

	jobs := p.Search(context.Background(), JobFilter{})

	if gotQuery.Get("title_filter") != DefaultTitle {
		t.Fatalf("expected default title, got %q", gotQuery.Get("title_filter"))
	}
	if len(jobs) != 0 {
		t.Fatalf("expected empty result, got %d", len(jobs))
	}
}

func TestLinkedIn_Search_LocationOnlySkipsDefaultTitle(t *testing.T) {
	var gotQuery url.Values
	p, _ := newTestLinkedIn(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`[]`))
	})

	p.Search(context.Background(), JobFilter{Location: "Jakarta"})

	if gotQuery.Has("title_filter") {
		t.Fatalf("title_filter should be absent, got %q", gotQuery.Get("title_filter"))
	}
	if gotQuery.Get("location_filter") != "Jakarta" {
		t.Fatalf("location_filter: %q", gotQuery.Get("location_filter"))
	}
}

func TestLinkedIn_Search_UpstreamErrorYieldsEmpty(t *testing.T) {
	p, _ := newTestLinkedIn(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	if jobs := p.Search(context.Background(), JobFilter{Title: "Go"}); len(jobs) != 0 {
		t.Fatalf("expected empty result on 429, got %d", len(jobs))
	}
}

func TestCompanyName(t *testing.T) {
	if got := companyName([]byte(`"Acme"`)); got != "Acme" {
		t.Fatalf("string shape: %q", got)
	}
	if got := companyName([]byte(`{"name":"Globex","id":7}`)); got != "Globex" {
		t.Fatalf("object shape: %q", got)
	}
	if got := companyName(nil); got != "" {
		t.Fatalf("missing: %q", got)
	}
}
