package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/domain/user"
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/provider"
)

const filterPrompt = `You are an expert search query optimizer for job search APIs.
Translate the user's natural language query and professional profile into a precise set of filters.

USER PROFILE:
- Skills: %s
- Experience: %s
- Preferred location: %s

USER QUERY: %q

AVAILABLE FILTERS (all string values):
- title: job title
- location: city or country
- description_keywords: keywords the description must mention
- remote: "true" when the user wants remote work
- posted_after: YYYY-MM-DD
- employment_type: one of CONTRACTOR, FULL_TIME, INTERN, OTHER, PART_TIME, TEMPORARY, VOLUNTEER
- date_posted_bucket: one of all, today, 3days, week, month
- experience_bucket: one of under_3_years, over_3_years, no_experience, no_degree

RULES:
1. If the query names a city or country, use it as location; otherwise use the preferred location from the profile.
2. If the query is empty, infer the most likely job title from skills and experience.
3. Use the profile skills to populate description_keywords.
4. Map the profile experience to experience_bucket (0-3 years -> under_3_years, 3+ years -> over_3_years, entry level -> no_experience).
5. Return ONLY a valid JSON object with the filter keys above. Omit keys you cannot fill.`

// InferFilter asks Gemini for a structured filter. Any failure is returned to
// the caller, which falls back to a filter built from the raw query.
func (c *Client) InferFilter(ctx context.Context, usr user.User, query string) (provider.JobFilter, error) {
	location := usr.Location
	if location == "" {
		location = "not specified"
	}
	prompt := fmt.Sprintf(filterPrompt, usr.Skills, usr.Experience, location, query)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return provider.JobFilter{}, err
	}

	var filter provider.JobFilter
	if err := json.Unmarshal([]byte(stripJSONFences(text)), &filter); err != nil {
		return provider.JobFilter{}, fmt.Errorf("gemini: parse filter response: %w", err)
	}
	return filter, nil
}
