// Package registry provides clients for the live legislative registries.
// All clients soft-fail: a miss is (nil, nil) and callers treat errors as a
// fall-through, never as a fatal condition.
package registry

import (
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	maxRetries     = 3
	initialBackoff = time.Second
	requestTimeout = 15 * time.Second
)

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: requestTimeout}
}

// DomainFromURL extracts the bare host from a URL for display purposes
func DomainFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return strings.TrimPrefix(parsed.Host, "www.")
}
