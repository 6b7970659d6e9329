package agent

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/config"
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/provider"
)

func TestStripJSONFences(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"```json\n{\"title\":\"Go\"}\n```", `{"title":"Go"}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{`{"already":"clean"}`, `{"already":"clean"}`},
		{"  \n```json\n[]\n```\n  ", "[]"},
	}

	for _, tc := range cases {
		if got := stripJSONFences(tc.in); got != tc.want {
			t.Errorf("stripJSONFences(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStrippedFilterResponseUnmarshals(t *testing.T) {
	raw := "```json\n{\"title\": \"Go Developer\", \"remote\": \"true\", \"unknown_key\": \"ignored\"}\n```"

	var filter provider.JobFilter
	if err := json.Unmarshal([]byte(stripJSONFences(raw)), &filter); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if filter.Title != "Go Developer" || filter.Remote != "true" {
		t.Fatalf("filter: %+v", filter)
	}
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	if _, err := NewClient(context.Background(), config.GeminiConfig{APIKey: "  "}); err == nil {
		t.Fatalf("expected error for missing api key")
	}
}
