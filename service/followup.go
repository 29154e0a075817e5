package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"clearpolicy-backend/models"
)

// maxHistoryTurns bounds how much prior conversation is folded into a
// follow-up prompt.
const maxHistoryTurns = 6

// GenerateFollowUpRequest represents a follow-up question within a conversation
type GenerateFollowUpRequest struct {
	Query   string
	ZipCode string // optional
	History []models.Message
}

// GenerateFollowUpResult carries the answer plus suggested next questions
type GenerateFollowUpResult struct {
	Answer             *models.Answer
	Summary            models.SummaryLike
	SuggestedQuestions []string
}

type aiFollowUpPayload struct {
	aiAnswerPayload
	SuggestedQuestions []string `json:"suggested_questions"`
}

// GenerateFollowUpAnswer answers a follow-up in the context of up to the
// last six conversation turns. It applies the same completion/stub fallback
// discipline as GeneratePolicyAnswer and always returns 1-3 suggestions.
func (s *AnswerService) GenerateFollowUpAnswer(
	ctx context.Context,
	req GenerateFollowUpRequest,
) (*GenerateFollowUpResult, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	if s.completion != nil && s.completion.Configured() {
		result, err := s.followUpFromCompletion(ctx, query, req.ZipCode, req.History)
		if err == nil {
			return result, nil
		}
		log.Printf("Warning: follow-up completion failed for %q: %v", query, err)
	}

	stub := s.stubResult(query)
	return &GenerateFollowUpResult{
		Answer:             stub.Answer,
		Summary:            stub.Summary,
		SuggestedQuestions: defaultSuggestions(),
	}, nil
}

func (s *AnswerService) followUpFromCompletion(
	ctx context.Context,
	query, zipCode string,
	history []models.Message,
) (*GenerateFollowUpResult, error) {
	prompt := fmt.Sprintf(`You are a nonpartisan civic educator continuing a conversation about public policy.

CONVERSATION SO FAR:
%s

FOLLOW-UP QUESTION: %s

%s
Additionally include "suggested_questions": an array of 1-3 short follow-up questions the user might ask next.`,
		formatHistory(history), query, answerSchemaInstruction)

	raw, err := s.completion.CompleteJSON(ctx, prompt, 0.3)
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}

	var payload aiFollowUpPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("completion returned malformed JSON: %w", err)
	}

	answer := answerFromPayload(query, zipCode, payload.aiAnswerPayload)
	return &GenerateFollowUpResult{
		Answer:             answer,
		Summary:            AnswerToSummary(answer),
		SuggestedQuestions: clampSuggestions(payload.SuggestedQuestions),
	}, nil
}

// formatHistory renders the last turns oldest-first for the prompt
func formatHistory(history []models.Message) string {
	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}
	if len(history) == 0 {
		return "(no prior turns)"
	}

	var builder strings.Builder
	for _, msg := range history {
		role := "User"
		if msg.Role == models.RoleAssistant {
			role = "Assistant"
		}
		content := msg.Content
		if len(content) > 800 {
			content = content[:800] + "..."
		}
		builder.WriteString(fmt.Sprintf("%s: %s\n", role, content))
	}
	return builder.String()
}

func clampSuggestions(suggestions []string) []string {
	cleaned := cleanStrings(suggestions)
	if len(cleaned) == 0 {
		return defaultSuggestions()
	}
	if len(cleaned) > 3 {
		cleaned = cleaned[:3]
	}
	return cleaned
}

func defaultSuggestions() []string {
	return []string{
		"What are the main arguments on each side?",
		"Who would this policy affect the most?",
	}
}
