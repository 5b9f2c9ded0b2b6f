package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("go-clip-sync/1.0")
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance whose
// requests carry userAgent. An empty userAgent keeps resty's default.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state. No client-wide timeout is
// set; callers bound each request through its context, which keeps
// long-lived streaming responses possible.
func NewHTTPClient(userAgent string) *HTTPClient {
	c := resty.New()
	if userAgent != "" {
		c.SetHeader("User-Agent", userAgent)
	}
	return &HTTPClient{Client: c}
}
