package service

import (
	"testing"

	"clearpolicy-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDensestSentence(t *testing.T) {
	text := "This is a short intro. The bill establishes a grant program and requires every school district to report spending. Nothing else here."

	best := densestSentence(text)

	assert.Contains(t, best, "establishes a grant program")
	assert.True(t, len(best) <= 301)
}

func TestDensestSentenceEmptyText(t *testing.T) {
	assert.Equal(t, "", densestSentence(""))
}

func TestKeyProvisionsDocumentOrder(t *testing.T) {
	text := "The act establishes a new state fund. It also requires annual reporting by every agency. Finally it imposes a fee on permit applications. Filler words with no content of note."

	provisions := keyProvisions(text)

	require.NotEmpty(t, provisions)
	assert.LessOrEqual(t, len(provisions), 3)
	// Provisions come back in document order, not score order.
	assert.Contains(t, provisions[0], "establishes a new state fund")
}

func TestKeyProvisionsNoMatches(t *testing.T) {
	assert.Empty(t, keyProvisions("Lovely weather we are having today, truly wonderful."))
}

func TestStakeholders(t *testing.T) {
	record := &models.BillRecord{
		Title:    "School Facilities Bond",
		Summary:  "Authorizes bonds for school construction and water efficiency upgrades.",
		Subjects: []string{"Education"},
	}

	stakeholders := Stakeholders(record)

	assert.Contains(t, stakeholders, "students")
	assert.Contains(t, stakeholders, "water districts")

	// Duplicates across keyword entries are collapsed.
	seen := make(map[string]int)
	for _, s := range stakeholders {
		seen[s]++
		assert.Equal(t, 1, seen[s], s)
	}
}

func TestStakeholdersNoKeywords(t *testing.T) {
	record := &models.BillRecord{Title: "Generic Act", Summary: "Does generic things."}
	assert.Empty(t, Stakeholders(record))
}

func TestKeywordArguments(t *testing.T) {
	record := &models.BillRecord{
		Title:   "Retail Theft Act",
		Summary: "Addresses organized retail theft and related crime penalties.",
	}

	pros := keywordArguments(record, true)
	cons := keywordArguments(record, false)

	require.NotEmpty(t, pros)
	require.NotEmpty(t, cons)
	assert.LessOrEqual(t, len(pros), 3)

	// The same duplicate argument text never appears twice.
	assert.Equal(t, len(cons), len(uniqueStrings(cons)))
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

func TestAnswerFromRecord(t *testing.T) {
	s := NewAnswerService()
	record := &models.BillRecord{
		Identifier:   "AB 123",
		Title:        "School Funding Act",
		Summary:      "The act establishes a grant program for school districts. It requires annual audits of spending.",
		LatestAction: "Referred to committee.",
		Subjects:     []string{"Education"},
		Level:        models.LevelState,
		URL:          "https://legislature.example.gov/ab123",
	}

	answer := s.answerFromRecord(record)

	assert.Equal(t, "ab-123", answer.PolicyID)
	assert.Equal(t, "AB 123: School Funding Act", answer.PolicyName)
	assert.Equal(t, "Education", answer.Category)
	assert.Contains(t, answer.FullTextSummary, "Latest action: Referred to committee.")

	require.Len(t, answer.Sources, 1)
	assert.True(t, answer.Sources[0].Verified)
	assert.Equal(t, models.SourceState, answer.Sources[0].Type)
}
