package provider

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/config"
)

// JSearch queries the JSearch API on RapidAPI. Unlike the other two providers
// it takes a single free-text query plus enumerated refinements, so the
// unified filter is folded into "title in location" and the enum buckets are
// translated to JSearch's vocabulary.
type JSearch struct {
	key     string
	host    string
	baseURL string
	timeout time.Duration
	client  *http.Client
	logger  *log.Logger
}

func NewJSearch(cfg config.RapidAPIConfig, logger *log.Logger) *JSearch {
	if logger == nil {
		logger = log.Default()
	}
	return &JSearch{
		key:     cfg.Key,
		host:    cfg.JSearchHost,
		baseURL: "https://" + cfg.JSearchHost,
		timeout: cfg.ProviderTimeout,
		client:  &http.Client{},
		logger:  logger,
	}
}

func (p *JSearch) Name() string { return "jsearch" }

func (p *JSearch) Search(ctx context.Context, filter JobFilter) []NormalizedJob {
	params := url.Values{}
	params.Set("query", jsearchQuery(filter))
	params.Set("page", "1")
	params.Set("num_pages", "1")
	params.Set("country", "us")

	if filter.Remote == "true" {
		params.Set("work_from_home", "true")
	}
	if bucket := jsearchDatePosted(filter.DatePostedBucket); bucket != "" {
		params.Set("date_posted", bucket)
	}
	if req := jsearchJobRequirements(filter.ExperienceBucket); req != "" {
		params.Set("job_requirements", req)
	}
	if et := jsearchEmploymentType(filter.EmploymentType); et != "" {
		params.Set("employment_types", et)
	}

	body, err := rapidAPIGet(ctx, p.client, p.baseURL, p.host, "/search", p.key, params, p.timeout)
	if err != nil {
		p.logger.Printf("[Provider] jsearch: fetch failed: %v", err)
		return nil
	}

	items, err := decodeItems(body)
	if err != nil {
		p.logger.Printf("[Provider] jsearch: decode failed: %v", err)
		return nil
	}

	out := make([]NormalizedJob, 0, len(items))
	for _, raw := range items {
		var it jsearchItem
		if err := json.Unmarshal(raw, &it); err != nil {
			p.logger.Printf("[Provider] jsearch: skip malformed item: %v", err)
			continue
		}
		j := it.normalize()
		if !keepListing(j) {
			continue
		}
		out = append(out, j)
	}
	return out
}

func jsearchQuery(filter JobFilter) string {
	title := strings.TrimSpace(filter.Title)
	location := strings.TrimSpace(filter.Location)
	switch {
	case title == "" && location == "":
		return DefaultTitle
	case location == "":
		return title
	case title == "":
		return DefaultTitle + " in " + location
	default:
		return title + " in " + location
	}
}

func jsearchDatePosted(bucket string) string {
	switch bucket {
	case "all", "today", "3days", "week", "month":
		return bucket
	}
	return ""
}

func jsearchJobRequirements(bucket string) string {
	switch bucket {
	case "under_3_years":
		return "under_3_years_experience"
	case "over_3_years":
		return "more_than_3_years_experience"
	case "no_experience":
		return "no_experience"
	case "no_degree":
		return "no_degree"
	}
	return ""
}

// jsearchEmploymentType maps the unified enum (FULL_TIME, PART_TIME, ...) to
// JSearch's underscore-free subset; values JSearch does not know are dropped.
func jsearchEmploymentType(t string) string {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(t), "_", ""))
	switch normalized {
	case "FULLTIME", "PARTTIME", "CONTRACTOR", "INTERN":
		return normalized
	}
	return ""
}

type jsearchItem struct {
	JobID          flexID `json:"job_id"`
	JobTitle       string `json:"job_title"`
	EmployerName   string `json:"employer_name"`
	JobLocation    string `json:"job_location"`
	JobCity        string `json:"job_city"`
	JobCountry     string `json:"job_country"`
	JobDescription string `json:"job_description"`
	ApplyLink      string `json:"job_apply_link"`
	GoogleLink     string `json:"job_google_link"`
	PostedAtUTC    string `json:"job_posted_at_datetime_utc"`
}

func (it jsearchItem) normalize() NormalizedJob {
	location := it.JobLocation
	if location == "" && (it.JobCity != "" || it.JobCountry != "") {
		location = strings.TrimSuffix(strings.TrimPrefix(it.JobCity+", "+it.JobCountry, ", "), ", ")
	}

	return NormalizedJob{
		Provider:    "jsearch",
		ExternalID:  string(it.JobID),
		Title:       it.JobTitle,
		Company:     it.EmployerName,
		Location:    location,
		Description: firstNonEmpty(it.JobDescription, placeholderDescription),
		HREmail:     ExtractEmail(it.JobDescription),
		URL:         firstNonEmpty(it.ApplyLink, it.GoogleLink, placeholderURL),
		PostedAt:    parseTimestamp(it.PostedAtUTC),
	}
}
