package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisambiguateSpecificQueriesPassThrough(t *testing.T) {
	// Deterministic fast path: no completion client required, no network.
	s := NewDisambiguationService()

	specific := []string{
		"California Prop 36 2024",
		"H.R. 50 voting rights",
		"What is the minimum wage law",
		"Explain rent control",
		"Texas prop 4",
		"Is the statewide ballot measure on housing density going to change single family zoning rules?",
	}

	for _, query := range specific {
		result := s.Disambiguate(context.Background(), query)
		assert.False(t, result.NeedsClarification, "query %q should pass through", query)
		assert.Equal(t, query, result.RefinedQuery)
		assert.Empty(t, result.Questions)
	}
}

func TestDisambiguateNoClientDegrades(t *testing.T) {
	// An ambiguous query with no completion client still passes through.
	s := NewDisambiguationService()

	result := s.Disambiguate(context.Background(), "the new tax thing")

	assert.False(t, result.NeedsClarification)
	assert.Equal(t, "the new tax thing", result.RefinedQuery)
}

func TestDisambiguateUnconfiguredClientDegrades(t *testing.T) {
	completion := &mockCompletion{configured: false}
	s := NewDisambiguationService(DisambiguationWithCompletionClient(completion))

	result := s.Disambiguate(context.Background(), "the new tax thing")

	assert.False(t, result.NeedsClarification)
	assert.Equal(t, 0, completion.jsonCalls)
}

func TestDisambiguateClarificationFromCompletion(t *testing.T) {
	completion := &mockCompletion{configured: true, response: `{
		"needs_clarification": true,
		"questions": [
			{"question": "Which tax measure do you mean?", "options": ["The 2024 sales tax measure", "The property tax cap", "Federal income tax changes"]},
			{"question": "Which state?", "options": ["California", "Texas"]}
		],
		"refined_query": ""
	}`}
	s := NewDisambiguationService(DisambiguationWithCompletionClient(completion))

	result := s.Disambiguate(context.Background(), "the new tax thing")

	assert.True(t, result.NeedsClarification)
	require.Len(t, result.Questions, 2)
	assert.Equal(t, "Which tax measure do you mean?", result.Questions[0].Question)
	assert.Len(t, result.Questions[0].Options, 3)
}

func TestDisambiguateDropsUnusableQuestions(t *testing.T) {
	// A clarification verdict whose questions all fail validation collapses
	// to no clarification.
	completion := &mockCompletion{configured: true, response: `{
		"needs_clarification": true,
		"questions": [
			{"question": "", "options": ["a", "b"]},
			{"question": "One option only?", "options": ["a"]}
		]
	}`}
	s := NewDisambiguationService(DisambiguationWithCompletionClient(completion))

	result := s.Disambiguate(context.Background(), "the new tax thing")

	assert.False(t, result.NeedsClarification)
	assert.Empty(t, result.Questions)
}

func TestDisambiguateCapsQuestionOptions(t *testing.T) {
	completion := &mockCompletion{configured: true, response: `{
		"needs_clarification": true,
		"questions": [
			{"question": "Which one?", "options": ["a", "b", "c", "d", "e", "f"]}
		]
	}`}
	s := NewDisambiguationService(DisambiguationWithCompletionClient(completion))

	result := s.Disambiguate(context.Background(), "the new tax thing")

	require.Len(t, result.Questions, 1)
	assert.Len(t, result.Questions[0].Options, 4)
}

func TestDisambiguateMalformedJSONDegrades(t *testing.T) {
	completion := &mockCompletion{configured: true, response: "not json at all"}
	s := NewDisambiguationService(DisambiguationWithCompletionClient(completion))

	result := s.Disambiguate(context.Background(), "the new tax thing")

	assert.False(t, result.NeedsClarification)
	assert.Equal(t, "the new tax thing", result.RefinedQuery)
}

func TestDisambiguateRefinedQueryUsed(t *testing.T) {
	completion := &mockCompletion{configured: true, response: `{
		"needs_clarification": false,
		"refined_query": "California sales tax measure 2024"
	}`}
	s := NewDisambiguationService(DisambiguationWithCompletionClient(completion))

	result := s.Disambiguate(context.Background(), "the new tax thing")

	assert.False(t, result.NeedsClarification)
	assert.Equal(t, "California sales tax measure 2024", result.RefinedQuery)
}

func TestDisambiguateEmptyQuery(t *testing.T) {
	completion := &mockCompletion{configured: true}
	s := NewDisambiguationService(DisambiguationWithCompletionClient(completion))

	result := s.Disambiguate(context.Background(), "  ")

	assert.False(t, result.NeedsClarification)
	assert.Equal(t, 0, completion.jsonCalls)
}
