package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"clearpolicy-backend/models"
)

const openStatesBaseURL = "https://v3.openstates.org"

// OpenStatesClient queries the OpenStates state bill registry
type OpenStatesClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewOpenStatesClient creates a state registry client
func NewOpenStatesClient(apiKey string) *OpenStatesClient {
	return &OpenStatesClient{
		apiKey:     apiKey,
		baseURL:    openStatesBaseURL,
		httpClient: newHTTPClient(),
	}
}

// NewOpenStatesClientFromEnv creates a client configured from environment variables
func NewOpenStatesClientFromEnv() *OpenStatesClient {
	return NewOpenStatesClient(os.Getenv("OPENSTATES_API_KEY"))
}

// Search resolves a free-text query against the OpenStates full-text search
// and returns the best-matching bill, or (nil, nil) when nothing matches.
func (c *OpenStatesClient) Search(ctx context.Context, query string) (*models.BillRecord, error) {
	if c.apiKey == "" {
		return nil, nil
	}

	searchURL := fmt.Sprintf("%s/bills?q=%s&sort=updated_desc&per_page=5&include=abstracts",
		c.baseURL, url.QueryEscape(query))

	var payload struct {
		Results []struct {
			Identifier string `json:"identifier"`
			Title      string `json:"title"`
			Session    string `json:"session"`
			Subject    []string `json:"subject"`
			Abstracts  []struct {
				Abstract string `json:"abstract"`
			} `json:"abstracts"`
			LatestActionDescription string `json:"latest_action_description"`
			OpenstatesURL           string `json:"openstates_url"`
			Jurisdiction            struct {
				Name string `json:"name"`
			} `json:"jurisdiction"`
		} `json:"results"`
	}
	if err := c.getJSON(ctx, searchURL, &payload); err != nil {
		return nil, fmt.Errorf("openstates search failed: %w", err)
	}
	if len(payload.Results) == 0 {
		return nil, nil
	}

	best := payload.Results[0]
	record := &models.BillRecord{
		Identifier:   best.Identifier,
		Title:        best.Title,
		LatestAction: best.LatestActionDescription,
		Subjects:     best.Subject,
		Level:        models.LevelState,
		State:        strings.ToLower(best.Jurisdiction.Name),
		Session:      best.Session,
		URL:          best.OpenstatesURL,
	}
	if len(best.Abstracts) > 0 {
		record.Abstract = best.Abstracts[0].Abstract
	}
	return record, nil
}

func (c *OpenStatesClient) getJSON(ctx context.Context, url string, out interface{}) error {
	backoff := initialBackoff
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(backoff)
			backoff *= 2
		}

		req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("X-API-KEY", c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if attempt == maxRetries-1 {
				return fmt.Errorf("request failed after %d attempts: %w", maxRetries, err)
			}
			continue
		}

		if resp.StatusCode == http.StatusOK {
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			if err != nil {
				return fmt.Errorf("failed to decode response: %w", err)
			}
			return nil
		}

		resp.Body.Close()

		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return fmt.Errorf("API error: %d", resp.StatusCode)
		}

		if attempt == maxRetries-1 {
			return fmt.Errorf("API error after %d attempts: %d", maxRetries, resp.StatusCode)
		}
	}
	return fmt.Errorf("API unavailable")
}
