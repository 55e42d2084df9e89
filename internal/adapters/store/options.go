package store

import (
	"net/http"
	"time"
)

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithTimeout bounds a single store round trip.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}
