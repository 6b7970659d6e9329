package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/provider"
)

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// JobsSearchCacheKey hashes the normalized filter, so equivalent filters that
// only differ in spacing or case share a cache entry.
func JobsSearchCacheKey(f provider.JobFilter) string {
	in := provider.JobFilter{
		Title:               normalizeSearchValue(f.Title),
		Location:            normalizeSearchValue(f.Location),
		DescriptionKeywords: normalizeSearchValue(f.DescriptionKeywords),
		Remote:              normalizeSearchValue(f.Remote),
		PostedAfter:         normalizeSearchValue(f.PostedAfter),
		EmploymentType:      normalizeSearchValue(f.EmploymentType),
		DatePostedBucket:    normalizeSearchValue(f.DatePostedBucket),
		ExperienceBucket:    normalizeSearchValue(f.ExperienceBucket),
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "jobs:search:" + hex.EncodeToString(sum[:])
}
