package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"clearpolicy-backend/curated"
	"clearpolicy-backend/evidence"
	"clearpolicy-backend/geo"
	"clearpolicy-backend/models"
)

// CompletionClient is the capability the answer pipeline needs from the
// completion service. An unconfigured client reports Configured() == false.
type CompletionClient interface {
	Configured() bool
	Complete(ctx context.Context, prompt string, temperature float32) (string, error)
	CompleteJSON(ctx context.Context, prompt string, temperature float32) (string, error)
}

// BillRegistry is a live legislative registry. A miss is (nil, nil).
type BillRegistry interface {
	Search(ctx context.Context, query string) (*models.BillRecord, error)
}

// PlaceLookup resolves ZIP codes to places for local-impact context
type PlaceLookup interface {
	Lookup(ctx context.Context, zipCode string) (*geo.Place, error)
}

// AnswerService synthesizes one normalized Answer per query by trying, in
// strict precedence order: curated summary, live registry record, completion
// fallback, stub. The order is a data-level invariant held in the resolver
// list, not nested conditionals.
type AnswerService struct {
	completion CompletionClient
	federal    BillRegistry
	state      BillRegistry
	places     PlaceLookup
}

// AnswerServiceOption is a functional option for AnswerService
type AnswerServiceOption func(*AnswerService)

// AnswerWithCompletionClient sets the completion client
func AnswerWithCompletionClient(client CompletionClient) AnswerServiceOption {
	return func(s *AnswerService) {
		s.completion = client
	}
}

// AnswerWithFederalRegistry sets the federal bill registry
func AnswerWithFederalRegistry(reg BillRegistry) AnswerServiceOption {
	return func(s *AnswerService) {
		s.federal = reg
	}
}

// AnswerWithStateRegistry sets the state bill registry
func AnswerWithStateRegistry(reg BillRegistry) AnswerServiceOption {
	return func(s *AnswerService) {
		s.state = reg
	}
}

// AnswerWithPlaceLookup sets the ZIP place lookup
func AnswerWithPlaceLookup(lookup PlaceLookup) AnswerServiceOption {
	return func(s *AnswerService) {
		s.places = lookup
	}
}

// NewAnswerService creates a new answer service
func NewAnswerService(opts ...AnswerServiceOption) *AnswerService {
	s := &AnswerService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	ErrEmptyQuery     = errors.New("query must not be empty")
	ErrInvalidZipCode = errors.New("zip code must be five digits")
)

// stubMarker labels every text field of a stub answer so degraded content is
// never mistaken for synthesized fact.
const stubMarker = "[unverified]"

// GeneratePolicyAnswerRequest represents a request to answer a policy query
type GeneratePolicyAnswerRequest struct {
	Query   string
	ZipCode string // optional
}

// GeneratePolicyAnswerResult carries the canonical answer plus its
// 12th-grade summary view with coverage score
type GeneratePolicyAnswerResult struct {
	Answer   *models.Answer
	Summary  models.SummaryLike
	Resolver string // which precedence tier produced the answer

	// curatedLevels holds hand-written per-level summaries when the answer
	// came from the curated table; other paths derive levels on demand.
	curatedLevels map[models.ReadingLevel]models.SummaryLike
}

// SummaryAt materializes the requested reading level only. Curated entries
// return their hand-written sub-summaries; everything else is derived from
// the authoritative 12th-grade base.
func (r *GeneratePolicyAnswerResult) SummaryAt(level models.ReadingLevel) models.SummaryLike {
	if s, ok := r.curatedLevels[level]; ok {
		return s
	}
	return SummaryAtLevel(r.Summary, level)
}

// answerResolver is one tier of the precedence chain; (nil, nil) is a miss
type answerResolver struct {
	name    string
	resolve func(ctx context.Context, query, zipCode string) (*GeneratePolicyAnswerResult, error)
}

// GeneratePolicyAnswer produces one well-formed Answer for a query. Upstream
// failures fall through the precedence chain and, in the worst case, the
// caller receives a clearly-marked stub rather than an error.
func (s *AnswerService) GeneratePolicyAnswer(
	ctx context.Context,
	req GeneratePolicyAnswerRequest,
) (*GeneratePolicyAnswerResult, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if req.ZipCode != "" && !geo.ZipCodeRE.MatchString(req.ZipCode) {
		return nil, ErrInvalidZipCode
	}

	resolvers := []answerResolver{
		{name: "curated", resolve: s.resolveCurated},
		{name: "registry", resolve: s.resolveRegistry},
		{name: "completion", resolve: s.resolveCompletion},
	}

	for _, r := range resolvers {
		result, err := r.resolve(ctx, query, req.ZipCode)
		if err != nil {
			log.Printf("Warning: %s resolver failed for %q: %v", r.name, query, err)
			continue
		}
		if result != nil {
			result.Resolver = r.name
			return result, nil
		}
	}

	return s.stubResult(query), nil
}

// resolveCurated translates a curated table hit into the Answer shape.
// Citations are reused verbatim from the curated entry.
func (s *AnswerService) resolveCurated(ctx context.Context, query, zipCode string) (*GeneratePolicyAnswerResult, error) {
	entry := curated.MatchQuery(query)
	if entry == nil {
		return nil, nil
	}

	base := entry.Base()
	answer := &models.Answer{
		PolicyID:        entry.PolicyID,
		PolicyName:      entry.PolicyName,
		Level:           entry.Level,
		Category:        entry.Category,
		FullTextSummary: base.TLDR,
		Sections: models.AnswerSections{
			Summary:          base.TLDR,
			KeyProvisions:    splitProvisions(base.WhatItDoes),
			ArgumentsFor:     []string{base.Pros},
			ArgumentsAgainst: []string{base.Cons},
		},
		Sources: entry.Sources,
	}
	answer.Sections.LocalImpact = s.localImpact(ctx, zipCode, entry.PolicyName)

	return &GeneratePolicyAnswerResult{
		Answer:        answer,
		Summary:       base,
		curatedLevels: entry.Summaries,
	}, nil
}

// resolveRegistry fans out to the state and federal registries concurrently.
// Each lookup is wrapped so a failure of one never aborts the other.
func (s *AnswerService) resolveRegistry(ctx context.Context, query, zipCode string) (*GeneratePolicyAnswerResult, error) {
	registries := []BillRegistry{s.federal, s.state}
	results := make(chan *models.BillRecord, len(registries))

	for _, reg := range registries {
		if reg == nil {
			results <- nil
			continue
		}
		go func(r BillRegistry) {
			record, err := r.Search(ctx, query)
			if err != nil {
				log.Printf("Warning: registry lookup failed for %q: %v", query, err)
				record = nil
			}
			results <- record
		}(reg)
	}

	var federal, state *models.BillRecord
	for range registries {
		record := <-results
		if record == nil {
			continue
		}
		if record.Level == models.LevelFederal {
			federal = record
		} else {
			state = record
		}
	}

	record := federal
	if record == nil {
		record = state
	}
	if record == nil || strings.TrimSpace(record.Text()) == "" {
		return nil, nil
	}

	answer := s.answerFromRecord(record)
	answer.Sections.LocalImpact = s.localImpact(ctx, zipCode, record.Title)

	summary := AnswerToSummary(answer)
	if stakeholders := Stakeholders(record); len(stakeholders) > 0 {
		summary.WhoAffected = "Most directly affected: " + strings.Join(stakeholders, ", ") + "."
		summary.SourceRatio = evidence.SourceRatioFrom(summary.SectionTexts(), summary.Citations)
	}

	return &GeneratePolicyAnswerResult{Answer: answer, Summary: summary}, nil
}

// localImpact resolves ZIP context; lookup failure just drops the section
func (s *AnswerService) localImpact(ctx context.Context, zipCode, policyName string) *models.LocalImpact {
	if zipCode == "" || s.places == nil {
		return nil
	}
	place, err := s.places.Lookup(ctx, zipCode)
	if err != nil {
		log.Printf("Warning: place lookup failed for %s: %v", zipCode, err)
		return nil
	}
	return &models.LocalImpact{
		ZipCode:  zipCode,
		Location: fmt.Sprintf("%s, %s", place.City, place.StateAbbr),
		Content:  fmt.Sprintf("If enacted, %s would apply in %s, %s as it does statewide or nationally.", policyName, place.City, place.State),
	}
}

// stubResult builds the guaranteed-delivery answer for total upstream failure
func (s *AnswerService) stubResult(query string) *GeneratePolicyAnswerResult {
	answer := &models.Answer{
		PolicyID:        "stub",
		PolicyName:      fmt.Sprintf("%s %s", query, stubMarker),
		Level:           models.LevelState,
		Category:        fmt.Sprintf("General %s", stubMarker),
		FullTextSummary: fmt.Sprintf("%s We could not retrieve verified information for %q right now. Please try again later or rephrase the question.", stubMarker, query),
		Sections: models.AnswerSections{
			Summary: fmt.Sprintf("%s No verified summary is available for this query.", stubMarker),
		},
		Sources: models.AnswerSources{
			{
				ID:       1,
				Title:    fmt.Sprintf("No verified source available %s", stubMarker),
				URL:      evidence.PlaceholderURL,
				Domain:   "example.com",
				Type:     models.SourceWeb,
				Verified: false,
			},
		},
	}
	return &GeneratePolicyAnswerResult{
		Answer:   answer,
		Summary:  AnswerToSummary(answer),
		Resolver: "stub",
	}
}

// splitProvisions breaks curated what-it-does prose into provision bullets
func splitProvisions(text string) []string {
	var provisions []string
	for _, s := range strings.Split(text, ". ") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "."))
		if s != "" {
			provisions = append(provisions, s)
		}
	}
	return provisions
}
