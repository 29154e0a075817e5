package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerSourcesScanRoundTrip(t *testing.T) {
	sources := AnswerSources{
		{ID: 1, Title: "Analysis", URL: "https://lao.ca.gov", Domain: "lao.ca.gov", Type: SourceState, Verified: true},
	}

	value, err := sources.Value()
	require.NoError(t, err)

	var scanned AnswerSources
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, sources, scanned)
}

func TestAnswerSourcesScanNil(t *testing.T) {
	var scanned AnswerSources
	require.NoError(t, scanned.Scan(nil))
	assert.NotNil(t, scanned)
	assert.Empty(t, scanned)
}

func TestParseReadingLevel(t *testing.T) {
	level, ok := ParseReadingLevel("5")
	assert.True(t, ok)
	assert.Equal(t, ReadingLevel5, level)

	// Empty defaults to the authoritative 12th-grade level.
	level, ok = ParseReadingLevel("")
	assert.True(t, ok)
	assert.Equal(t, ReadingLevel12, level)

	_, ok = ParseReadingLevel("9")
	assert.False(t, ok)
}
