package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"clearpolicy-backend/evidence"
	"clearpolicy-backend/models"
	"clearpolicy-backend/registry"
)

// aiAnswerPayload is the strict schema the completion service must return.
// Every field is validated defensively - the service's types and
// required-ness are never trusted.
type aiAnswerPayload struct {
	PolicyName      string `json:"policy_name"`
	Level           string `json:"level"`
	Category        string `json:"category"`
	FullTextSummary string `json:"full_text_summary"`
	Sections        struct {
		Summary          string   `json:"summary"`
		KeyProvisions    []string `json:"key_provisions"`
		LocalImpact      string   `json:"local_impact"`
		ArgumentsFor     []string `json:"arguments_for"`
		ArgumentsAgainst []string `json:"arguments_against"`
	} `json:"sections"`
	Sources []struct {
		Title string `json:"title"`
		URL   string `json:"url"`
		Type  string `json:"type"`
	} `json:"sources"`
}

const answerSchemaInstruction = `Respond with ONLY a JSON object matching exactly this schema, no prose before or after:
{
  "policy_name": string,
  "level": "Federal" | "State" | "Local",
  "category": string,
  "full_text_summary": string (3-5 sentences, plain English),
  "sections": {
    "summary": string,
    "key_provisions": [string, ...],
    "local_impact": string (may be empty),
    "arguments_for": [string, ...],
    "arguments_against": [string, ...]
  },
  "sources": [{"title": string, "url": string, "type": "Federal" | "State" | "Local" | "Web"}]
}
Cite only sources you are confident exist. Do not invent URLs.`

// resolveCompletion is the last real synthesis tier: ask the completion
// service for a schema-constrained answer and validate every field.
func (s *AnswerService) resolveCompletion(ctx context.Context, query, zipCode string) (*GeneratePolicyAnswerResult, error) {
	if s.completion == nil || !s.completion.Configured() {
		return nil, nil
	}

	prompt := fmt.Sprintf(`You are a nonpartisan civic educator. Explain the policy a voter is asking about.

QUESTION: %s

%s`, query, answerSchemaInstruction)

	raw, err := s.completion.CompleteJSON(ctx, prompt, 0.2)
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}

	var payload aiAnswerPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("completion returned malformed JSON: %w", err)
	}

	answer := answerFromPayload(query, zipCode, payload)
	return &GeneratePolicyAnswerResult{Answer: answer, Summary: AnswerToSummary(answer)}, nil
}

// answerFromPayload builds a well-formed Answer from whatever the model
// returned, defaulting invalid enums and guaranteeing at least one source.
func answerFromPayload(query, zipCode string, payload aiAnswerPayload) *models.Answer {
	answer := &models.Answer{
		PolicyID:        "ai-" + slugify(firstNonEmpty(payload.PolicyName, query)),
		PolicyName:      firstNonEmpty(payload.PolicyName, query),
		Level:           parsePolicyLevel(payload.Level),
		Category:        firstNonEmpty(payload.Category, "General"),
		FullTextSummary: firstNonEmpty(payload.FullTextSummary, payload.Sections.Summary),
		Sections: models.AnswerSections{
			Summary:          payload.Sections.Summary,
			KeyProvisions:    cleanStrings(payload.Sections.KeyProvisions),
			ArgumentsFor:     cleanStrings(payload.Sections.ArgumentsFor),
			ArgumentsAgainst: cleanStrings(payload.Sections.ArgumentsAgainst),
		},
	}

	if payload.Sections.LocalImpact != "" && zipCode != "" {
		answer.Sections.LocalImpact = &models.LocalImpact{
			ZipCode: zipCode,
			Content: payload.Sections.LocalImpact,
		}
	}

	id := 1
	for _, src := range payload.Sources {
		title := strings.TrimSpace(src.Title)
		url := strings.TrimSpace(src.URL)
		if title == "" && url == "" {
			continue
		}
		answer.Sources = append(answer.Sources, models.AnswerSource{
			ID:       id,
			Title:    firstNonEmpty(title, url),
			URL:      url,
			Domain:   registry.DomainFromURL(url),
			Type:     parseSourceType(src.Type),
			Verified: false, // model-supplied sources are never marked verified
		})
		id++
	}
	if len(answer.Sources) == 0 {
		answer.Sources = models.AnswerSources{
			{
				ID:       1,
				Title:    "AI-generated summary (no source provided)",
				URL:      evidence.PlaceholderURL,
				Domain:   "example.com",
				Type:     models.SourceWeb,
				Verified: false,
			},
		}
	}

	return answer
}

func parsePolicyLevel(raw string) models.PolicyLevel {
	switch models.PolicyLevel(strings.TrimSpace(raw)) {
	case models.LevelFederal:
		return models.LevelFederal
	case models.LevelLocal:
		return models.LevelLocal
	case models.LevelState:
		return models.LevelState
	default:
		return models.LevelState
	}
}

func parseSourceType(raw string) models.SourceType {
	switch models.SourceType(strings.TrimSpace(raw)) {
	case models.SourceFederal:
		return models.SourceFederal
	case models.SourceState:
		return models.SourceState
	case models.SourceLocal:
		return models.SourceLocal
	default:
		return models.SourceWeb
	}
}

func cleanStrings(values []string) []string {
	var result []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func slugify(s string) string {
	var builder strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			builder.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			builder.WriteRune('-')
		}
	}
	slug := strings.Trim(builder.String(), "-")
	if len(slug) > 60 {
		slug = slug[:60]
	}
	return slug
}
