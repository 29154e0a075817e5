package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"

	"clearpolicy-backend/curated"
	"clearpolicy-backend/models"
)

// DisambiguationService decides whether a free-text query names a specific
// legal instrument or needs clarifying questions first. A deterministic
// pre-filter runs with zero network calls; only ambiguous queries reach the
// completion service, and any failure there degrades to "no clarification".
type DisambiguationService struct {
	completion CompletionClient
}

// DisambiguationServiceOption is a functional option for DisambiguationService
type DisambiguationServiceOption func(*DisambiguationService)

// DisambiguationWithCompletionClient sets the completion client
func DisambiguationWithCompletionClient(client CompletionClient) DisambiguationServiceOption {
	return func(s *DisambiguationService) {
		s.completion = client
	}
}

// NewDisambiguationService creates a new disambiguation service
func NewDisambiguationService(opts ...DisambiguationServiceOption) *DisambiguationService {
	s := &DisambiguationService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	// 4-digit years 1900-2099
	disambigYearRE = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)
	// bill identifiers like "H.R. 123", "S.B. 45", "A.B. 7"
	disambigBillRE = regexp.MustCompile(`(?i)\b[hsa]\.? ?[rbj]?\.? ?\d{1,5}\b`)
)

var instrumentWords = []string{"prop", "bill", "measure"}

var interrogativePrefixes = []string{
	"what is", "explain", "how does", "why", "who", "when",
	"arguments", "pros and cons",
}

// Disambiguate classifies a query. It never returns an error and never
// blocks the search pipeline: every failure mode collapses to passing the
// raw query through unchanged.
func (s *DisambiguationService) Disambiguate(ctx context.Context, query string) *models.Disambiguation {
	query = strings.TrimSpace(query)
	passthrough := &models.Disambiguation{NeedsClarification: false, RefinedQuery: query}

	if query == "" || s.isSpecific(query) {
		return passthrough
	}

	if s.completion == nil || !s.completion.Configured() {
		return passthrough
	}

	result, err := s.clarifyWithCompletion(ctx, query)
	if err != nil {
		log.Printf("Warning: disambiguation failed for %q, passing query through: %v", query, err)
		return passthrough
	}
	return result
}

// isSpecific is the deterministic fast path: any one signal means the query
// already names something searchable.
func (s *DisambiguationService) isSpecific(query string) bool {
	lower := strings.ToLower(query)

	if disambigYearRE.MatchString(query) {
		return true
	}
	if disambigBillRE.MatchString(query) {
		return true
	}
	if len(query) > 50 && strings.HasSuffix(query, "?") {
		return true
	}
	for _, prefix := range interrogativePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	for _, state := range curated.StateNames {
		if !strings.Contains(lower, state) {
			continue
		}
		for _, word := range instrumentWords {
			if strings.Contains(lower, word) {
				return true
			}
		}
	}
	return false
}

type aiClarifyPayload struct {
	NeedsClarification bool `json:"needs_clarification"`
	Questions          []struct {
		Question string   `json:"question"`
		Options  []string `json:"options"`
	} `json:"questions"`
	RefinedQuery string `json:"refined_query"`
}

func (s *DisambiguationService) clarifyWithCompletion(ctx context.Context, query string) (*models.Disambiguation, error) {
	prompt := fmt.Sprintf(`A user asked about a law or ballot measure but the query may be ambiguous: %q

Decide whether clarification is needed before searching. Respond with ONLY this JSON, no prose:
{
  "needs_clarification": boolean,
  "questions": [{"question": string, "options": [string, 2-4 concise items]}] (at most 2 questions),
  "refined_query": string (the query rewritten for search, when no clarification is needed)
}`, query)

	raw, err := s.completion.CompleteJSON(ctx, prompt, 0.1)
	if err != nil {
		return nil, err
	}

	var payload aiClarifyPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("malformed clarification JSON: %w", err)
	}

	result := &models.Disambiguation{
		NeedsClarification: payload.NeedsClarification,
		RefinedQuery:       strings.TrimSpace(payload.RefinedQuery),
	}
	if result.RefinedQuery == "" {
		result.RefinedQuery = query
	}
	if !payload.NeedsClarification {
		result.Questions = nil
		return result, nil
	}

	for _, q := range payload.Questions {
		question := strings.TrimSpace(q.Question)
		options := cleanStrings(q.Options)
		if question == "" || len(options) < 2 {
			continue
		}
		if len(options) > 4 {
			options = options[:4]
		}
		result.Questions = append(result.Questions, models.ClarifyingQuestion{
			Question: question,
			Options:  options,
		})
		if len(result.Questions) == 2 {
			break
		}
	}

	// A clarification verdict with no usable questions is malformed output
	if len(result.Questions) == 0 {
		result.NeedsClarification = false
	}
	return result, nil
}
