// Package gemini implements the TextGenerator port against Google's Gemini
// API, the model backend Lychee ships with by default.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModel is used when no model name is configured.
const DefaultModel = "gemini-2.0-flash"

// Client calls the Gemini API. It implements ports.TextGenerator and is safe
// for concurrent use; each Generate call opens and closes its own API client.
type Client struct {
	apiKey string
	model  string
}

// New creates a Gemini client. An empty model selects DefaultModel.
func New(apiKey, model string) *Client {
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	return &Client{
		apiKey: strings.TrimSpace(apiKey),
		model:  strings.TrimSpace(model),
	}
}

// LoadAPIKey resolves the Gemini API key from the environment. It checks
// GEMINI_API_KEY first; if unset, it reads the key from the file named by
// GEMINI_API_KEY_PATH.
func LoadAPIKey() (string, error) {
	if key := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); key != "" {
		return key, nil
	}
	if path := os.Getenv("GEMINI_API_KEY_PATH"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("GEMINI_API_KEY_PATH is set but unreadable: %w", err)
		}
		if key := strings.TrimSpace(string(raw)); key != "" {
			return key, nil
		}
		return "", fmt.Errorf("key file %s is empty", path)
	}
	return "", errors.New("neither GEMINI_API_KEY nor GEMINI_API_KEY_PATH is set")
}

// Generate sends the prompt to Gemini and returns the plain-text response.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("gemini: api key is empty")
	}

	cl, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	defer cl.Close()

	m := cl.GenerativeModel(c.model)
	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	txt := firstText(resp)
	if strings.TrimSpace(txt) == "" {
		return "", errors.New("gemini generate: empty response")
	}
	return txt, nil
}

// firstText concatenates the text parts of the first candidate.
func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String()
}
