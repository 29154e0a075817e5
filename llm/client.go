// Package llm wraps the Gemini completion service behind an explicitly
// constructed, injectable client. Configuration is checked once at
// construction; an unconfigured client reports Configured() == false and
// callers take their stub paths, which keeps the service-absent behavior
// testable without network access.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	defaultModel   = "gemini-2.0-flash"
	maxRetries     = 3
	initialBackoff = time.Second
	maxPromptChars = 30000
)

var ErrNotConfigured = errors.New("completion client not configured")

// Client is a capability object for the completion service
type Client struct {
	genaiClient *genai.Client
	model       string
}

// NewClient creates a completion client. An empty API key yields a valid but
// unconfigured client rather than an error, so absence of the service
// degrades gracefully at call sites.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if model == "" {
		model = defaultModel
	}
	if apiKey == "" {
		return &Client{model: model}, nil
	}

	genaiClient, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &Client{genaiClient: genaiClient, model: model}, nil
}

// NewClientFromEnv creates a client from GEMINI_API_KEY / GEMINI_MODEL
func NewClientFromEnv(ctx context.Context) (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set, completion service disabled")
	}
	return NewClient(ctx, apiKey, os.Getenv("GEMINI_MODEL"))
}

// Configured reports whether the completion service is usable
func (c *Client) Configured() bool {
	return c != nil && c.genaiClient != nil
}

// Complete generates free-form text for a prompt
func (c *Client) Complete(ctx context.Context, prompt string, temperature float32) (string, error) {
	return c.generate(ctx, prompt, temperature, "")
}

// CompleteJSON generates a response constrained to a JSON document
func (c *Client) CompleteJSON(ctx context.Context, prompt string, temperature float32) (string, error) {
	raw, err := c.generate(ctx, prompt, temperature, "application/json")
	if err != nil {
		return "", err
	}
	return stripCodeFences(raw), nil
}

func (c *Client) generate(ctx context.Context, prompt string, temperature float32, responseMIMEType string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	// Truncate prompt if too long to avoid context limits
	if len(prompt) > maxPromptChars {
		log.Printf("Warning: Prompt too long (%d chars), truncating to %d chars", len(prompt), maxPromptChars)
		prompt = prompt[:maxPromptChars] + "\n\n[Content truncated due to length...]"
	}

	model := c.genaiClient.GenerativeModel(c.model)
	model.SetTemperature(temperature)
	if responseMIMEType != "" {
		model.ResponseMIMEType = responseMIMEType
	}

	var lastErr error
	backoff := initialBackoff
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(backoff)
			backoff *= 2
		}

		resp, err := model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			lastErr = err
			continue
		}

		text, err := extractText(resp)
		if err != nil {
			lastErr = err
			continue
		}
		return text, nil
	}

	return "", fmt.Errorf("generation failed after %d attempts: %w", maxRetries, lastErr)
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("API returned no candidates")
	}

	var builder strings.Builder
	for i, candidate := range resp.Candidates {
		if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
			log.Printf("Warning: Candidate %d has no parts (finish reason: %v)", i, candidate.FinishReason)
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				builder.WriteString(string(text))
			}
		}
	}

	result := builder.String()
	if result == "" {
		return "", errors.New("API returned empty content")
	}
	return result, nil
}

// stripCodeFences removes markdown fences some models wrap JSON in despite
// the MIME type constraint
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}
