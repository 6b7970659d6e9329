package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/config"

	"google.golang.org/genai"
)

// Client wraps the Gemini SDK for the two drafting concerns: translating a
// profile + query into provider filters and writing outreach emails. Both are
// optional collaborators; callers fall back to deterministic behavior when
// Gemini is unconfigured or down.
type Client struct {
	genai *genai.Client
	model string
}

func NewClient(ctx context.Context, cfg config.GeminiConfig) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("gemini: api key not configured")
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &Client{genai: gc, model: cfg.Model}, nil
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	result, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini: generate: %w", err)
	}
	return result.Text(), nil
}

// stripJSONFences removes the markdown code fences Gemini likes to wrap JSON
// responses in.
func stripJSONFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
