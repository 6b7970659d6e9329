package provider

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/config"
)

// ActiveJobs queries the Active Jobs DB API on RapidAPI (active-ats-24h).
// Its filter vocabulary matches the unified one, so the mapping is mostly
// one-to-one.
type ActiveJobs struct {
	key     string
	host    string
	baseURL string
	timeout time.Duration
	client  *http.Client
	logger  *log.Logger
}

func NewActiveJobs(cfg config.RapidAPIConfig, logger *log.Logger) *ActiveJobs {
	if logger == nil {
		logger = log.Default()
	}
	return &ActiveJobs{
		key:     cfg.Key,
		host:    cfg.ActiveJobsHost,
		baseURL: "https://" + cfg.ActiveJobsHost,
		timeout: cfg.ProviderTimeout,
		client:  &http.Client{},
		logger:  logger,
	}
}

func (p *ActiveJobs) Name() string { return "active_jobs" }

func (p *ActiveJobs) Search(ctx context.Context, filter JobFilter) []NormalizedJob {
	params := url.Values{}
	params.Set("limit", "10")
	params.Set("offset", "0")
	params.Set("description_type", "text")

	title := filter.Title
	if title == "" && filter.Location == "" {
		title = DefaultTitle
	}
	if title != "" {
		params.Set("title_filter", title)
	}
	if filter.Location != "" {
		params.Set("location_filter", filter.Location)
	}
	if filter.DescriptionKeywords != "" {
		params.Set("description_filter", filter.DescriptionKeywords)
	}
	if filter.Remote == "true" {
		params.Set("remote", "true")
	}
	if filter.PostedAfter != "" {
		params.Set("date_filter", filter.PostedAfter)
	}
	if filter.EmploymentType != "" {
		params.Set("type_filter", filter.EmploymentType)
	}

	body, err := rapidAPIGet(ctx, p.client, p.baseURL, p.host, "/active-ats-24h", p.key, params, p.timeout)
	if err != nil {
		p.logger.Printf("[Provider] active_jobs: fetch failed: %v", err)
		return nil
	}

	items, err := decodeItems(body)
	if err != nil {
		p.logger.Printf("[Provider] active_jobs: decode failed: %v", err)
		return nil
	}

	out := make([]NormalizedJob, 0, len(items))
	for _, raw := range items {
		var it activeJobsItem
		if err := json.Unmarshal(raw, &it); err != nil {
			p.logger.Printf("[Provider] active_jobs: skip malformed item: %v", err)
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

type activeJobsItem struct {
	ID             flexID `json:"id"`
	JobID          flexID `json:"job_id"`
	Title          string `json:"title"`
	JobTitle       string `json:"job_title"`
	CompanyName    string `json:"company_name"`
	Organization   string `json:"organization"`
	Location       string `json:"location"`
	Description    string `json:"description"`
	JobDescription string `json:"job_description"`
	URL            string `json:"url"`
	DatePosted     string `json:"date_posted"`
	PostedDate     string `json:"posted_date"`
}

func (it activeJobsItem) normalize() NormalizedJob {
	description := firstNonEmpty(it.Description, it.JobDescription)

	return NormalizedJob{
		Provider:    "active_jobs",
		ExternalID:  firstNonEmpty(string(it.ID), string(it.JobID)),
		Title:       firstNonEmpty(it.Title, it.JobTitle),
		Company:     firstNonEmpty(it.CompanyName, it.Organization),
		Location:    it.Location,
		Description: firstNonEmpty(description, placeholderDescription),
		HREmail:     ExtractEmail(description),
		URL:         firstNonEmpty(it.URL, placeholderURL),
		PostedAt:    parseTimestamp(firstNonEmpty(it.DatePosted, it.PostedDate)),
	}
}
