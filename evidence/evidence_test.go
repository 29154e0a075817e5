package evidence

import (
	"testing"

	"clearpolicy-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestGenuine(t *testing.T) {
	assert.True(t, Genuine(models.Citation{URL: "https://lao.ca.gov/ballot"}))
	assert.False(t, Genuine(models.Citation{URL: PlaceholderURL}))
	assert.False(t, Genuine(models.Citation{URL: ""}))
	assert.False(t, Genuine(models.Citation{URL: "  "}))
}

func TestSourceRatioEmptyInputs(t *testing.T) {
	assert.Equal(t, 0.0, SourceRatioFrom(nil, nil))
	assert.Equal(t, 0.0, SourceRatioFrom([]string{"", "  ", ""}, nil))
}

func TestSourceRatioLocatedCitations(t *testing.T) {
	sections := []string{"tldr text", "what text", "who text", "pros text", "cons text"}
	citations := []models.Citation{
		{Quote: "q1", URL: "https://lao.ca.gov", Location: models.LocationTLDR},
		{Quote: "q2", URL: "https://sos.ca.gov", Location: models.LocationWhat},
	}

	ratio := SourceRatioFrom(sections, citations)

	assert.InDelta(t, 0.4, ratio, 1e-9)
}

func TestSourceRatioPlaceholderNeverCounts(t *testing.T) {
	sections := []string{"tldr text", "what text", "", "", ""}
	citations := []models.Citation{
		{Quote: "q1", URL: PlaceholderURL, Location: models.LocationTLDR},
		{Quote: "q2", URL: PlaceholderURL, Location: models.LocationWhat},
	}

	assert.Equal(t, 0.0, SourceRatioFrom(sections, citations))
}

func TestSourceRatioIgnoresCitationsForEmptySections(t *testing.T) {
	sections := []string{"tldr text", "", "", "", ""}
	citations := []models.Citation{
		{Quote: "q1", URL: "https://lao.ca.gov", Location: models.LocationTLDR},
		{Quote: "q2", URL: "https://sos.ca.gov", Location: models.LocationCons}, // empty slot
	}

	assert.Equal(t, 1.0, SourceRatioFrom(sections, citations))
}

func TestSourceRatioHeuristicWithoutLocations(t *testing.T) {
	sections := []string{"tldr", "what", "who", "pros", "cons"}

	// Flat lists from live registries carry no location tags.
	flat := []models.Citation{
		{Quote: "q1", URL: "https://congress.gov/bill/1"},
		{Quote: "q2", URL: "https://congress.gov/bill/2"},
	}
	assert.InDelta(t, 0.4, SourceRatioFrom(sections, flat), 1e-9)

	// The heuristic is clipped so the score never exceeds 1.
	many := make([]models.Citation, 8)
	for i := range many {
		many[i] = models.Citation{Quote: "q", URL: "https://congress.gov/bill"}
	}
	assert.Equal(t, 1.0, SourceRatioFrom(sections, many))
}

func TestSourceRatioDuplicateLocationsCountOnce(t *testing.T) {
	sections := []string{"tldr", "what", "", "", ""}
	citations := []models.Citation{
		{Quote: "q1", URL: "https://lao.ca.gov", Location: models.LocationTLDR},
		{Quote: "q2", URL: "https://sos.ca.gov", Location: models.LocationTLDR},
	}

	assert.InDelta(t, 0.5, SourceRatioFrom(sections, citations), 1e-9)
}

func TestSourceRatioBounds(t *testing.T) {
	sections := []string{"a", "b", "c", "d", "e"}
	citations := []models.Citation{
		{URL: "https://lao.ca.gov", Location: models.LocationTLDR},
		{URL: PlaceholderURL, Location: models.LocationWhat},
		{URL: "", Location: models.LocationWho},
		{URL: "https://sos.ca.gov"},
	}

	ratio := SourceRatioFrom(sections, citations)

	assert.GreaterOrEqual(t, ratio, 0.0)
	assert.LessOrEqual(t, ratio, 1.0)
}
