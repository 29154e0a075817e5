package service

import (
	"testing"

	"clearpolicy-backend/evidence"
	"clearpolicy-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerToSummary(t *testing.T) {
	answer := &models.Answer{
		FullTextSummary: "Full text summary.",
		Sections: models.AnswerSections{
			Summary:          "Section summary.",
			KeyProvisions:    []string{"Provision one", "Provision two"},
			ArgumentsFor:     []string{"Pro"},
			ArgumentsAgainst: []string{"Con"},
		},
		Sources: models.AnswerSources{
			{ID: 1, Title: "Analysis", URL: "https://lao.ca.gov/analysis", Verified: true},
		},
	}

	summary := AnswerToSummary(answer)

	assert.Equal(t, models.ReadingLevel12, summary.Level)
	assert.Equal(t, "Section summary.", summary.TLDR)
	assert.Equal(t, "Provision one. Provision two", summary.WhatItDoes)
	assert.Equal(t, 1, summary.SourceCount)
	require.Len(t, summary.Citations, 1)
	assert.Greater(t, summary.SourceRatio, 0.0)
}

func TestAnswerToSummaryFallsBackToFullText(t *testing.T) {
	answer := &models.Answer{FullTextSummary: "Only full text."}

	summary := AnswerToSummary(answer)

	assert.Equal(t, "Only full text.", summary.TLDR)
}

func TestAnswerToSummaryPlaceholderSourceScoresZero(t *testing.T) {
	answer := &models.Answer{
		Sections: models.AnswerSections{Summary: "Section summary."},
		Sources: models.AnswerSources{
			{ID: 1, Title: "None", URL: evidence.PlaceholderURL},
		},
	}

	summary := AnswerToSummary(answer)

	assert.Equal(t, 0.0, summary.SourceRatio)
}

func TestSummaryAtLevelIdentityForBase(t *testing.T) {
	base := models.SummaryLike{
		Level: models.ReadingLevel12,
		TLDR:  "The measure allocates funds pursuant to the education statute.",
	}

	assert.Equal(t, base, SummaryAtLevel(base, models.ReadingLevel12))
}

func TestSummaryAtLevelDerivesSimplerText(t *testing.T) {
	base := models.SummaryLike{
		Level:       models.ReadingLevel12,
		TLDR:        "The measure reclassifies certain nonviolent theft offenses as misdemeanors when the value involved is nine hundred fifty dollars or less.",
		WhatItDoes:  "Reduces penalties for low-value theft and simple drug possession across the state.",
		WhoAffected: "People convicted of qualifying offenses and county jail systems.",
		Pros:        "Reduces prison crowding.",
		Cons:        "May weaken deterrence.",
		Citations: []models.Citation{
			{Quote: "q", URL: "https://lao.ca.gov/analysis", Location: models.LocationTLDR},
		},
		SourceCount: 1,
	}

	derived := SummaryAtLevel(base, models.ReadingLevel8)

	assert.Equal(t, models.ReadingLevel8, derived.Level)
	assert.Less(t, len(derived.TLDR), len(base.TLDR))
	// Citations travel with the derived view unchanged.
	assert.Equal(t, base.Citations, derived.Citations)
	assert.Equal(t, base.SourceCount, derived.SourceCount)

	// The base is never mutated.
	assert.Equal(t, models.ReadingLevel12, base.Level)
	assert.Contains(t, base.TLDR, "reclassifies certain nonviolent theft offenses")
}
