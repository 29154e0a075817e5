// Package evidence scores how well an answer's sections are backed by
// genuine citations. The score is advisory display data only and must never
// block answer delivery.
package evidence

import (
	"strings"

	"clearpolicy-backend/models"
)

// PlaceholderURL is the reserved URL for citations that carry no real source.
// A citation pointing here never counts toward coverage.
const PlaceholderURL = "https://example.com"

// Genuine reports whether a citation is backed by a real, non-placeholder URL
func Genuine(c models.Citation) bool {
	url := strings.TrimSpace(c.URL)
	return url != "" && url != PlaceholderURL
}

// SourceRatioFrom computes the fraction of populated canonical sections that
// are covered by at least one genuine, correctly-located citation. Section
// texts map positionally to the five canonical slots (tldr, what, who, pros,
// cons). When no citation carries a location tag at all, it falls back to a
// heuristic based on overall citation genuineness. Always returns a value in
// [0, 1] and never panics.
func SourceRatioFrom(sectionTexts []string, citations []models.Citation) float64 {
	populated := make(map[models.CitationLocation]bool)
	for i, text := range sectionTexts {
		if i >= len(models.CitationLocations) {
			break
		}
		if strings.TrimSpace(text) != "" {
			populated[models.CitationLocations[i]] = true
		}
	}
	if len(populated) == 0 {
		return 0
	}

	located := false
	genuineCount := 0
	covered := make(map[models.CitationLocation]bool)
	for _, c := range citations {
		if c.Location != "" {
			located = true
		}
		if !Genuine(c) {
			continue
		}
		genuineCount++
		if c.Location != "" && populated[c.Location] {
			covered[c.Location] = true
		}
	}

	if !located {
		// Flat citation lists (live-registry data) get a count-based heuristic.
		if genuineCount > len(populated) {
			genuineCount = len(populated)
		}
		return float64(genuineCount) / float64(len(populated))
	}

	return float64(len(covered)) / float64(len(populated))
}
