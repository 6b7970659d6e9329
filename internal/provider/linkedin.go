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

// LinkedIn queries the LinkedIn job search API on RapidAPI (active-jb-24h).
type LinkedIn struct {
	key     string
	host    string
	baseURL string
	timeout time.Duration
	client  *http.Client
	logger  *log.Logger
}

func NewLinkedIn(cfg config.RapidAPIConfig, logger *log.Logger) *LinkedIn {
	if logger == nil {
		logger = log.Default()
	}
	return &LinkedIn{
		key:     cfg.Key,
		host:    cfg.LinkedInHost,
		baseURL: "https://" + cfg.LinkedInHost,
		timeout: cfg.ProviderTimeout,
		client:  &http.Client{},
		logger:  logger,
	}
}

func (p *LinkedIn) Name() string { return "linkedin" }

func (p *LinkedIn) Search(ctx context.Context, filter JobFilter) []NormalizedJob {
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

	body, err := rapidAPIGet(ctx, p.client, p.baseURL, p.host, "/active-jb-24h", p.key, params, p.timeout)
	if err != nil {
		p.logger.Printf("[Provider] linkedin: fetch failed: %v", err)
		return nil
	}

	items, err := decodeItems(body)
	if err != nil {
		p.logger.Printf("[Provider] linkedin: decode failed: %v", err)
		return nil
	}

	out := make([]NormalizedJob, 0, len(items))
	for _, raw := range items {
		var it linkedInItem
		if err := json.Unmarshal(raw, &it); err != nil {
			p.logger.Printf("[Provider] linkedin: skip malformed item: %v", err)
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

type linkedInItem struct {
	ID               flexID          `json:"id"`
	JobID            flexID          `json:"job_id"`
	Title            string          `json:"title"`
	JobTitle         string          `json:"job_title"`
	Organization     string          `json:"organization"`
	Company          json.RawMessage `json:"company"`
	Location         string          `json:"location"`
	LocationsDerived []string        `json:"locations_derived"`
	DescriptionText  string          `json:"description_text"`
	Description      string          `json:"description"`
	JobDescription   string          `json:"job_description"`
	URL              string          `json:"url"`
	CleanedURL       string          `json:"linkedin_job_url_cleaned"`
	DatePosted       string          `json:"date_posted"`
	PostedDate       string          `json:"posted_date"`
}

func (it linkedInItem) normalize() NormalizedJob {
	description := firstNonEmpty(it.DescriptionText, it.Description, it.JobDescription)

	location := it.Location
	if len(it.LocationsDerived) > 0 {
		location = firstNonEmpty(it.LocationsDerived[0], location)
	}

	return NormalizedJob{
		Provider:    "linkedin",
		ExternalID:  firstNonEmpty(string(it.ID), string(it.JobID)),
		Title:       firstNonEmpty(it.Title, it.JobTitle),
		Company:     firstNonEmpty(it.Organization, companyName(it.Company)),
		Location:    location,
		Description: firstNonEmpty(description, placeholderDescription),
		HREmail:     ExtractEmail(description),
		URL:         firstNonEmpty(it.URL, it.CleanedURL, placeholderURL),
		PostedAt:    parseTimestamp(firstNonEmpty(it.DatePosted, it.PostedDate)),
	}
}

// companyName accepts the two shapes the API has been seen to use for the
// company field: a plain string or an object with a name.
func companyName(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Name
	}
	return ""
}
