package service

import (
	"strings"

	"clearpolicy-backend/models"
)

// SectionConfidence tags how a presentation section was produced
type SectionConfidence string

const (
	// ConfidenceVerified marks sections built from sourced provisions
	ConfidenceVerified SectionConfidence = "verified"
	// ConfidenceInferred marks argument framing, which is synthesized
	ConfidenceInferred SectionConfidence = "inferred"
)

// PresentationSection is one ordered block of the externally-consumed answer
type PresentationSection struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Content    string            `json:"content"`
	Confidence SectionConfidence `json:"confidence"`
}

// PresentationSource is a renumbered source in the wire taxonomy. [n]
// markers in section prose resolve positionally into this list.
type PresentationSource struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Domain   string `json:"domain"`
	Kind     string `json:"kind"`
	Verified bool   `json:"verified"`
}

// sourceKinds remaps the internal source type enum to the wire taxonomy
var sourceKinds = map[models.SourceType]string{
	models.SourceFederal: "gov-federal",
	models.SourceState:   "gov-state",
	models.SourceLocal:   "gov-local",
	models.SourceWeb:     "web",
}

// MapAnswer projects a canonical Answer into ordered presentation sections
// and renumbered sources. Pure: same Answer in, same sections out.
func MapAnswer(answer *models.Answer) ([]PresentationSection, []PresentationSource) {
	var sections []PresentationSection

	if answer.Sections.Summary != "" {
		sections = append(sections, PresentationSection{
			ID:         "summary",
			Title:      "Summary",
			Content:    answer.Sections.Summary,
			Confidence: ConfidenceVerified,
		})
	}
	if len(answer.Sections.KeyProvisions) > 0 {
		sections = append(sections, PresentationSection{
			ID:         "key-provisions",
			Title:      "Key Provisions",
			Content:    bulletList(answer.Sections.KeyProvisions),
			Confidence: ConfidenceVerified,
		})
	}
	if impact := answer.Sections.LocalImpact; impact != nil && impact.Content != "" {
		title := "Local Impact"
		if impact.Location != "" {
			title = "Local Impact: " + impact.Location
		}
		sections = append(sections, PresentationSection{
			ID:         "local-impact",
			Title:      title,
			Content:    impact.Content,
			Confidence: ConfidenceVerified,
		})
	}
	if len(answer.Sections.ArgumentsFor) > 0 {
		sections = append(sections, PresentationSection{
			ID:         "arguments-for",
			Title:      "Arguments For",
			Content:    bulletList(answer.Sections.ArgumentsFor),
			Confidence: ConfidenceInferred,
		})
	}
	if len(answer.Sections.ArgumentsAgainst) > 0 {
		sections = append(sections, PresentationSection{
			ID:         "arguments-against",
			Title:      "Arguments Against",
			Content:    bulletList(answer.Sections.ArgumentsAgainst),
			Confidence: ConfidenceInferred,
		})
	}

	if len(sections) == 0 {
		sections = append(sections, PresentationSection{
			ID:         "overview",
			Title:      "Overview",
			Content:    answer.FullTextSummary,
			Confidence: ConfidenceVerified,
		})
	}

	sources := make([]PresentationSource, 0, len(answer.Sources))
	for i, src := range answer.Sources {
		kind, ok := sourceKinds[src.Type]
		if !ok {
			kind = "web"
		}
		sources = append(sources, PresentationSource{
			ID:       i + 1,
			Title:    src.Title,
			URL:      src.URL,
			Domain:   src.Domain,
			Kind:     kind,
			Verified: src.Verified,
		})
	}

	return sections, sources
}

func bulletList(items []string) string {
	var builder strings.Builder
	for i, item := range items {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString("- ")
		builder.WriteString(item)
	}
	return builder.String()
}
