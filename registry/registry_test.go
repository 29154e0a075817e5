package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainFromURL(t *testing.T) {
	assert.Equal(t, "congress.gov", DomainFromURL("https://www.congress.gov/bill/117"))
	assert.Equal(t, "lao.ca.gov", DomainFromURL("https://lao.ca.gov/ballot"))
	assert.Equal(t, "", DomainFromURL("not a url"))
	assert.Equal(t, "", DomainFromURL(""))
}

func TestCongressSearchMissesWithoutAPIKey(t *testing.T) {
	c := NewCongressClient("")

	record, err := c.Search(context.Background(), "H.R. 3684")

	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestCongressSearchMissesWithoutBillIdentifier(t *testing.T) {
	// Free-text queries with no federal bill identifier never hit the API.
	c := NewCongressClient("test-key")

	record, err := c.Search(context.Background(), "infrastructure spending generally")

	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestFederalBillPattern(t *testing.T) {
	tests := []struct {
		query    string
		billType string
		number   string
		match    bool
	}{
		{"H.R. 3684", "hr", "3684", true},
		{"hr 50", "hr", "50", true},
		{"S. 1 voting rights", "s", "1", true},
		{"H.J. Res 24", "hjres", "24", true},
		{"proposition 47", "", "", false},
		{"minimum wage", "", "", false},
	}

	for _, tt := range tests {
		m := federalBillRE.FindStringSubmatch(tt.query)
		if !tt.match {
			assert.Nil(t, m, tt.query)
			continue
		}
		require.NotNil(t, m, tt.query)
		assert.Equal(t, tt.billType, normalizeBillType(m[1]), tt.query)
		assert.Equal(t, tt.number, m[2], tt.query)
	}
}

func TestNormalizeBillType(t *testing.T) {
	assert.Equal(t, "hr", normalizeBillType("H.R"))
	assert.Equal(t, "hr", normalizeBillType("h r"))
	assert.Equal(t, "s", normalizeBillType("S"))
	assert.Equal(t, "hjres", normalizeBillType("H.J. Res"))
}

func TestStripHTMLTags(t *testing.T) {
	out := stripHTMLTags("<p>This bill provides <b>funding</b>.</p>")
	assert.NotContains(t, out, "<")
	assert.NotContains(t, out, ">")
	assert.Contains(t, out, "This bill provides")

	assert.Equal(t, "plain", stripHTMLTags("plain"))
}

func TestOpenStatesSearchMissesWithoutAPIKey(t *testing.T) {
	c := NewOpenStatesClient("")

	record, err := c.Search(context.Background(), "housing bill")

	require.NoError(t, err)
	assert.Nil(t, record)
}
