package curated

import (
	"testing"

	"clearpolicy-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  InstrumentRef
		ok    bool
	}{
		{
			name:  "proposition with state and year",
			query: "What does California Prop 47 from 2014 do?",
			want:  InstrumentRef{Type: TypeProposition, Number: 47, Year: 2014, State: "california"},
			ok:    true,
		},
		{
			name:  "full proposition spelling",
			query: "proposition 36",
			want:  InstrumentRef{Type: TypeProposition, Number: 36},
			ok:    true,
		},
		{
			name:  "house bill",
			query: "Tell me about H.R. 3684",
			want:  InstrumentRef{Type: TypeHouseBill, Number: 3684},
			ok:    true,
		},
		{
			name:  "senate bill with dots",
			query: "S.B. 9 housing",
			want:  InstrumentRef{Type: TypeSenateBill, Number: 9},
			ok:    true,
		},
		{
			name:  "no instrument",
			query: "how do tax laws work",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseQuery(tt.query)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestMatchQueryHit(t *testing.T) {
	entry := MatchQuery("What does California Prop 47 do?")

	require.NotNil(t, entry)
	assert.Equal(t, "ca-prop-47-2014", entry.PolicyID)
	assert.Equal(t, "california", entry.State)

	base := entry.Base()
	assert.Equal(t, models.ReadingLevel12, base.Level)
	assert.NotEmpty(t, base.TLDR)
	assert.NotEmpty(t, base.Citations)
}

func TestMatchYearMustAgree(t *testing.T) {
	// A query naming a conflicting year must not hit.
	assert.Nil(t, MatchQuery("California Prop 47 from 1999"))

	// Matching year hits.
	require.NotNil(t, MatchQuery("California Prop 47 2014"))

	// No year in the query matches any year in the table.
	require.NotNil(t, MatchQuery("Prop 36"))
}

func TestMatchIsStructuralOnly(t *testing.T) {
	// Title and content similarity alone never produce a hit.
	miss := Match(MatchInput{
		Title:    "Proposition 47 Analysis",
		Content:  "Reclassifies nonviolent theft offenses as misdemeanors",
		Subjects: []string{"criminal justice"},
	})
	assert.Nil(t, miss)

	hit := Match(MatchInput{Type: TypeProposition, Number: 47, Year: 2014})
	require.NotNil(t, hit)
	assert.Equal(t, "ca-prop-47-2014", hit.PolicyID)
}

func TestMatchParsesIdentifier(t *testing.T) {
	hit := Match(MatchInput{Identifier: "Prop. 36 (2024)"})

	require.NotNil(t, hit)
	assert.Equal(t, "ca-prop-36-2024", hit.PolicyID)
}

func TestCuratedEntriesHaveAllLevels(t *testing.T) {
	for _, query := range []string{"Prop 47", "Prop 36"} {
		entry := MatchQuery(query)
		require.NotNil(t, entry, query)
		for _, level := range []models.ReadingLevel{models.ReadingLevel5, models.ReadingLevel8, models.ReadingLevel12} {
			s, ok := entry.Summaries[level]
			require.True(t, ok, "%s missing level %s", entry.PolicyID, level)
			assert.NotEmpty(t, s.TLDR)
		}
		for _, src := range entry.Sources {
			assert.True(t, src.Verified, "%s curated sources must be verified", entry.PolicyID)
		}
	}
}
