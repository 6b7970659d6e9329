package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func TestJSearchQuery(t *testing.T) {
	cases := []struct {
		filter JobFilter
		want   string
	}{
		{JobFilter{Title: "Go Developer", Location: "Berlin"}, "Go Developer in Berlin"},
		{JobFilter{Title: "Go Developer"}, "Go Developer"},
		{JobFilter{Location: "Berlin"}, DefaultTitle + " in Berlin"},
		{JobFilter{}, DefaultTitle},
	}

	for _, tc := range cases {
		if got := jsearchQuery(tc.filter); got != tc.want {
			t.Errorf("jsearchQuery(%+v) = %q, want %q", tc.filter, got, tc.want)
		}
	}
}

func TestJSearchEmploymentType(t *testing.T) {
	cases := map[string]string{
		"FULL_TIME":  "FULLTIME",
		"full_time":  "FULLTIME",
		"PART_TIME":  "PARTTIME",
		"CONTRACTOR": "CONTRACTOR",
		"INTERN":     "INTERN",
		"TEMPORARY":  "",
		"":           "",
	}
	for in, want := range cases {
		if got := jsearchEmploymentType(in); got != want {
			t.Errorf("jsearchEmploymentType(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestJSearchJobRequirements(t *testing.T) {
	cases := map[string]string{
		"under_3_years": "under_3_years_experience",
		"over_3_years":  "more_than_3_years_experience",
		"no_experience": "no_experience",
		"no_degree":     "no_degree",
		"senior":        "",
	}
	for in, want := range cases {
		if got := jsearchJobRequirements(in); got != want {
			t.Errorf("jsearchJobRequirements(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestJSearchDatePosted(t *testing.T) {
	for _, valid := range []string{"all", "today", "3days", "week", "month"} {
		if got := jsearchDatePosted(valid); got != valid {
			t.Errorf("jsearchDatePosted(%q) = %q", valid, got)
		}
	}
	if got := jsearchDatePosted("fortnight"); got != "" {
		t.Errorf("unknown bucket should be dropped, got %q", got)
	}
}

func TestJSearch_Search_Normalizes(t *testing.T) {
	payload := `{"status":"OK","data":[
		{"job_id": "js-1", "job_title": "Data Engineer", "employer_name": "Initech",
		 "job_city": "Denver", "job_country": "US",
		 "job_description": "Pipelines. Email recruiting@initech.com",
		 "job_apply_link": "https://example.com/js/1",
		 "job_posted_at_datetime_utc": "2025-06-02T00:00:00Z"},
		{"job_title": "No ID Role", "employer_name": "Acme"}
	]}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)

	p := &JSearch{
		key:     "test-key",
		host:    "jsearch.test",
		baseURL: srv.URL,
		timeout: 2 * time.Second,
		client:  srv.Client(),
		logger:  discardLogger(),
	}

	jobs := p.Search(context.Background(), JobFilter{Title: "Data Engineer", Location: "Denver"})

	if len(jobs) != 1 {
		t.Fatalf("expected 1 surviving job, got %d", len(jobs))
	}
	j := jobs[0]
	if j.Provider != "jsearch" || j.ExternalID != "js-1" {
		t.Fatalf("identity: %+v", j)
	}
	if j.Location != "Denver, US" {
		t.Fatalf("joined location: %q", j.Location)
	}
	if j.HREmail != "recruiting@initech.com" {
		t.Fatalf("hr email: %q", j.HREmail)
	}
}

func TestJSearch_Search_ParamMapping(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"data":[]}`))
	}))
	t.Cleanup(srv.Close)

	p := &JSearch{
		key:     "test-key",
		host:    "jsearch.test",
		baseURL: srv.URL,
		timeout: 2 * time.Second,
		client:  srv.Client(),
		logger:  discardLogger(),
	}

	p.Search(context.Background(), JobFilter{
		Title:            "Go Developer",
		Location:         "Berlin",
		Remote:           "true",
		DatePostedBucket: "week",
		ExperienceBucket: "under_3_years",
		EmploymentType:   "FULL_TIME",
	})

	if gotQuery.Get("query") != "Go Developer in Berlin" {
		t.Fatalf("query: %q", gotQuery.Get("query"))
	}
	if gotQuery.Get("work_from_home") != "true" {
		t.Fatalf("work_from_home: %q", gotQuery.Get("work_from_home"))
	}
	if gotQuery.Get("date_posted") != "week" {
		t.Fatalf("date_posted: %q", gotQuery.Get("date_posted"))
	}
	if gotQuery.Get("job_requirements") != "under_3_years_experience" {
		t.Fatalf("job_requirements: %q", gotQuery.Get("job_requirements"))
	}
	if gotQuery.Get("employment_types") != "FULLTIME" {
		t.Fatalf("employment_types: %q", gotQuery.Get("employment_types"))
	}
}
