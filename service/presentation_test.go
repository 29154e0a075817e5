package service

import (
	"testing"

	"clearpolicy-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapAnswerOrdering(t *testing.T) {
	answer := &models.Answer{
		FullTextSummary: "Full summary.",
		Sections: models.AnswerSections{
			Summary:       "Short summary.",
			KeyProvisions: []string{"Provision one", "Provision two"},
			LocalImpact: &models.LocalImpact{
				ZipCode:  "94103",
				Location: "San Francisco, CA",
				Content:  "Applies locally.",
			},
			ArgumentsFor:     []string{"Pro one"},
			ArgumentsAgainst: []string{"Con one"},
		},
	}

	sections, _ := MapAnswer(answer)

	require.Len(t, sections, 5)
	ids := make([]string, len(sections))
	for i, s := range sections {
		ids[i] = s.ID
	}
	assert.Equal(t, []string{"summary", "key-provisions", "local-impact", "arguments-for", "arguments-against"}, ids)

	assert.Equal(t, "Local Impact: San Francisco, CA", sections[2].Title)
	assert.Equal(t, "- Provision one\n- Provision two", sections[1].Content)
}

func TestMapAnswerConfidenceTags(t *testing.T) {
	answer := &models.Answer{
		Sections: models.AnswerSections{
			Summary:          "Short summary.",
			ArgumentsFor:     []string{"Pro"},
			ArgumentsAgainst: []string{"Con"},
		},
	}

	sections, _ := MapAnswer(answer)

	require.Len(t, sections, 3)
	assert.Equal(t, ConfidenceVerified, sections[0].Confidence)
	// Argument framing is synthesized, never verbatim sourced.
	assert.Equal(t, ConfidenceInferred, sections[1].Confidence)
	assert.Equal(t, ConfidenceInferred, sections[2].Confidence)
}

func TestMapAnswerFallbackSection(t *testing.T) {
	answer := &models.Answer{FullTextSummary: "Only the full text exists."}

	sections, _ := MapAnswer(answer)

	require.Len(t, sections, 1)
	assert.Equal(t, "overview", sections[0].ID)
	assert.Equal(t, "Only the full text exists.", sections[0].Content)
}

func TestMapAnswerSourceRenumbering(t *testing.T) {
	answer := &models.Answer{
		Sections: models.AnswerSections{Summary: "s"},
		Sources: models.AnswerSources{
			{ID: 7, Title: "First", URL: "https://a.gov", Type: models.SourceFederal, Verified: true},
			{ID: 3, Title: "Second", URL: "https://b.gov", Type: models.SourceState},
			{ID: 9, Title: "Third", URL: "https://c.example", Type: models.SourceType("bogus")},
		},
	}

	_, sources := MapAnswer(answer)

	require.Len(t, sources, 3)
	assert.Equal(t, 1, sources[0].ID)
	assert.Equal(t, 2, sources[1].ID)
	assert.Equal(t, 3, sources[2].ID)

	assert.Equal(t, "gov-federal", sources[0].Kind)
	assert.Equal(t, "gov-state", sources[1].Kind)
	// Unknown source types land in the web bucket.
	assert.Equal(t, "web", sources[2].Kind)
}

func TestMapAnswerIsPure(t *testing.T) {
	answer := &models.Answer{
		Sections: models.AnswerSections{Summary: "s", KeyProvisions: []string{"p"}},
		Sources:  models.AnswerSources{{ID: 1, Title: "T", Type: models.SourceWeb}},
	}

	sectionsA, sourcesA := MapAnswer(answer)
	sectionsB, sourcesB := MapAnswer(answer)

	assert.Equal(t, sectionsA, sectionsB)
	assert.Equal(t, sourcesA, sourcesB)
}
