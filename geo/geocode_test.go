package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZipCodeRE(t *testing.T) {
	assert.True(t, ZipCodeRE.MatchString("94103"))
	assert.False(t, ZipCodeRE.MatchString("9410"))
	assert.False(t, ZipCodeRE.MatchString("941033"))
	assert.False(t, ZipCodeRE.MatchString("94-103"))
	assert.False(t, ZipCodeRE.MatchString(""))
}

func TestLookupRejectsInvalidZip(t *testing.T) {
	c := NewClient()

	_, err := c.Lookup(context.Background(), "abc")
	assert.Error(t, err)
}

func TestLookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/94103", r.URL.Path)
		w.Write([]byte(`{"post code": "94103", "places": [{"place name": "San Francisco", "state": "California", "state abbreviation": "CA"}]}`))
	}))
	defer server.Close()

	c := NewClient()
	c.baseURL = server.URL

	place, err := c.Lookup(context.Background(), "94103")

	require.NoError(t, err)
	assert.Equal(t, "San Francisco", place.City)
	assert.Equal(t, "California", place.State)
	assert.Equal(t, "CA", place.StateAbbr)
	assert.Equal(t, "94103", place.ZipCode)
}

func TestLookupNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := NewClient()
	c.baseURL = server.URL

	_, err := c.Lookup(context.Background(), "00000")
	assert.Error(t, err)
}
