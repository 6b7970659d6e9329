package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTitle is substituted when a filter carries neither title nor
// location, so a provider call is never sent with zero constraints.
const DefaultTitle = "Software Engineer"

const (
	placeholderDescription = "No description"
	placeholderURL         = "#"
)

// JobFilter is the provider-independent search filter. It is built once per
// request (by the filter-inference agent or from the raw query) and read-only
// afterwards. Adapters drop the fields their provider has no vocabulary for.
// The JSON tags match the unified filter schema the inference agent emits;
// unknown keys in its output are ignored by unmarshalling.
type JobFilter struct {
	Title               string `json:"title"`
	Location            string `json:"location"`
	DescriptionKeywords string `json:"description_keywords"`
	Remote              string `json:"remote"`
	PostedAfter         string `json:"posted_after"`
	EmploymentType      string `json:"employment_type"`
	DatePostedBucket    string `json:"date_posted_bucket"`
	ExperienceBucket    string `json:"experience_bucket"`
}

func (f JobFilter) IsZero() bool {
	return f == JobFilter{}
}

// NormalizedJob is the canonical listing shape every adapter converges to.
// Display fields are never empty-for-missing in surprising ways: description
// falls back to "No description" and url to "#".
type NormalizedJob struct {
	Provider    string
	ExternalID  string
	Title       string
	Company     string
	Location    string
	Description string
	HREmail     string
	URL         string
	PostedAt    *time.Time
}

// Provider is one external job-listing source. Search never returns an error:
// transport, auth and parse failures degrade to an empty slice and are logged
// for operators.
type Provider interface {
	Name() string
	Search(ctx context.Context, filter JobFilter) []NormalizedJob
}

// keepListing is the uniform minimal-completeness policy: a listing survives
// normalization iff it carries an external id and a title or a company.
func keepListing(j NormalizedJob) bool {
	if strings.TrimSpace(j.ExternalID) == "" {
		return false
	}
	return strings.TrimSpace(j.Title) != "" || strings.TrimSpace(j.Company) != ""
}

// decodeItems accepts the two response shapes the providers are known to
// return: a bare JSON array, or an object with the array under "data".
func decodeItems(body []byte) ([]json.RawMessage, error) {
	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "[") {
		var items []json.RawMessage
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var wrapped struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, err
	}
	return wrapped.Data, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

// flexID tolerates providers that serialize identifiers as JSON numbers.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*f = flexID(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

// parseTimestamp handles the two formats seen in provider payloads: full
// RFC 3339 and bare dates.
func parseTimestamp(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if tm, err := time.Parse(time.RFC3339, s); err == nil {
		tm = tm.UTC()
		return &tm
	}
	if tm, err := time.Parse("2006-01-02", s); err == nil {
		tm = tm.UTC()
		return &tm
	}
	return nil
}

// rapidAPIGet issues a single authenticated GET with a bounded timeout. No
// retries: a failed call is this provider's empty contribution to the batch.
func rapidAPIGet(ctx context.Context, client *http.Client, baseURL, host, path, key string, params url.Values, timeout time.Duration) ([]byte, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	reqURL := strings.TrimRight(baseURL, "/") + path
	if enc := params.Encode(); enc != "" {
		reqURL += "?" + enc
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-rapidapi-key", key)
	req.Header.Set("x-rapidapi-host", host)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	return readAllLimit(resp.Body, 5<<20)
}

func readAllLimit(r io.Reader, max int64) ([]byte, error) {
	lr := &io.LimitedReader{R: r, N: max}
	b, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if lr.N <= 0 {
		return nil, fmt.Errorf("response too large")
	}
	return b, nil
}
