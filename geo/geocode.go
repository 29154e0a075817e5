// Package geo resolves ZIP codes to places for local-impact context.
// Lookups are best-effort: a failure leaves the answer without local context
// rather than failing the request.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"time"
)

const zipBaseURL = "https://api.zippopotam.us/us"

// ZipCodeRE validates a five-digit U.S. ZIP code
var ZipCodeRE = regexp.MustCompile(`^\d{5}$`)

// Place is the resolved location for a ZIP code
type Place struct {
	ZipCode   string `json:"zip_code"`
	City      string `json:"city"`
	State     string `json:"state"`
	StateAbbr string `json:"state_abbr"`
}

// Client looks up U.S. places by ZIP code
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a geocoding client
func NewClient() *Client {
	return &Client{
		baseURL:    zipBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Lookup resolves a ZIP code to a place
func (c *Client) Lookup(ctx context.Context, zipCode string) (*Place, error) {
	if !ZipCodeRE.MatchString(zipCode) {
		return nil, fmt.Errorf("invalid zip code: %q", zipCode)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", fmt.Sprintf("%s/%s", c.baseURL, zipCode), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("zip lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("zip lookup error: %d", resp.StatusCode)
	}

	var payload struct {
		Places []struct {
			PlaceName string `json:"place name"`
			State     string `json:"state"`
			StateAbbr string `json:"state abbreviation"`
		} `json:"places"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(payload.Places) == 0 {
		return nil, fmt.Errorf("no place found for zip %s", zipCode)
	}

	return &Place{
		ZipCode:   zipCode,
		City:      payload.Places[0].PlaceName,
		State:     payload.Places[0].State,
		StateAbbr: payload.Places[0].StateAbbr,
	}, nil
}
