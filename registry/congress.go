package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"clearpolicy-backend/models"
)

const (
	congressBaseURL = "https://api.congress.gov/v3"
	defaultCongress = "118"
)

// federalBillRE recognizes federal bill identifiers like "H.R. 123" or "S. 45"
var federalBillRE = regexp.MustCompile(`(?i)\b(h\.?\s?r|s|h\.?\s?j\.?\s?res|s\.?\s?j\.?\s?res)\.?\s*(\d{1,5})\b`)

// CongressClient queries the Congress.gov bill registry
type CongressClient struct {
	apiKey     string
	congress   string
	baseURL    string
	httpClient *http.Client
}

// NewCongressClient creates a federal registry client
func NewCongressClient(apiKey string) *CongressClient {
	return &CongressClient{
		apiKey:     apiKey,
		congress:   defaultCongress,
		baseURL:    congressBaseURL,
		httpClient: newHTTPClient(),
	}
}

// NewCongressClientFromEnv creates a client configured from environment variables
func NewCongressClientFromEnv() *CongressClient {
	c := NewCongressClient(os.Getenv("CONGRESS_API_KEY"))
	if congress := os.Getenv("CONGRESS_NUMBER"); congress != "" {
		c.congress = congress
	}
	return c
}

// Search resolves a free-text query to a federal bill record. Queries that
// name no federal bill identifier are a miss, not an error - Congress.gov
// has no useful free-text search for this purpose.
func (c *CongressClient) Search(ctx context.Context, query string) (*models.BillRecord, error) {
	if c.apiKey == "" {
		return nil, nil
	}
	m := federalBillRE.FindStringSubmatch(query)
	if m == nil {
		return nil, nil
	}

	billType := normalizeBillType(m[1])
	billNumber := m[2]

	detailURL := fmt.Sprintf("%s/bill/%s/%s/%s?format=json&api_key=%s",
		c.baseURL, c.congress, billType, billNumber, c.apiKey)

	var detail struct {
		Bill struct {
			Number string `json:"number"`
			Title  string `json:"title"`
			Type   string `json:"type"`
			LatestAction struct {
				Text       string `json:"text"`
				ActionDate string `json:"actionDate"`
			} `json:"latestAction"`
			PolicyArea struct {
				Name string `json:"name"`
			} `json:"policyArea"`
		} `json:"bill"`
	}
	if err := c.getJSON(ctx, detailURL, &detail); err != nil {
		return nil, fmt.Errorf("congress bill lookup failed: %w", err)
	}
	if detail.Bill.Title == "" {
		return nil, nil
	}

	record := &models.BillRecord{
		Identifier:   fmt.Sprintf("%s %s", strings.ToUpper(detail.Bill.Type), detail.Bill.Number),
		Title:        detail.Bill.Title,
		LatestAction: detail.Bill.LatestAction.Text,
		Level:        models.LevelFederal,
		Session:      c.congress,
		URL:          fmt.Sprintf("https://www.congress.gov/bill/%sth-congress/%s/%s", c.congress, congressURLSlug(billType), billNumber),
	}
	if detail.Bill.PolicyArea.Name != "" {
		record.Subjects = []string{detail.Bill.PolicyArea.Name}
	}

	// The summary lives behind a second endpoint; its absence is not fatal.
	summaryURL := fmt.Sprintf("%s/bill/%s/%s/%s/summaries?format=json&api_key=%s",
		c.baseURL, c.congress, billType, billNumber, c.apiKey)
	var summaries struct {
		Summaries []struct {
			Text string `json:"text"`
		} `json:"summaries"`
	}
	if err := c.getJSON(ctx, summaryURL, &summaries); err == nil && len(summaries.Summaries) > 0 {
		record.Summary = stripHTMLTags(summaries.Summaries[len(summaries.Summaries)-1].Text)
	}

	return record, nil
}

func (c *CongressClient) getJSON(ctx context.Context, url string, out interface{}) error {
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

		// Don't retry on client errors
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return fmt.Errorf("API error: %d", resp.StatusCode)
		}

		if attempt == maxRetries-1 {
			return fmt.Errorf("API error after %d attempts: %d", maxRetries, resp.StatusCode)
		}
	}
	return fmt.Errorf("API unavailable")
}

func normalizeBillType(raw string) string {
	cleaned := strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(raw, ".", ""), " ", ""))
	switch cleaned {
	case "hr":
		return "hr"
	case "s":
		return "s"
	case "hjres":
		return "hjres"
	case "sjres":
		return "sjres"
	}
	return cleaned
}

func congressURLSlug(billType string) string {
	switch billType {
	case "hr":
		return "house-bill"
	case "s":
		return "senate-bill"
	case "hjres":
		return "house-joint-resolution"
	case "sjres":
		return "senate-joint-resolution"
	}
	return billType
}

var htmlTagRE = regexp.MustCompile(`<[^>]*>`)

func stripHTMLTags(s string) string {
	return strings.TrimSpace(htmlTagRE.ReplaceAllString(s, " "))
}
