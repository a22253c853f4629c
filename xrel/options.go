package xrel

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Intended for tests; the real
// service lives at DefaultBaseURL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithFormat selects the payload representation requested from the API.
// The default is FormatJSON. The OAuth2 token endpoint is always JSON
// regardless of this setting.
func WithFormat(format Format) Option {
	return func(c *Client) {
		c.format = format
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client entirely.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the structured logger. The default logger discards
// everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithOAuthApp sets the OAuth2 application credentials used by the grant
// methods and the authorization URL builder.
func WithOAuthApp(app OAuthApp) Option {
	return func(c *Client) {
		c.oauth = app
	}
}

// WithToken seeds the client with an existing token, e.g. one persisted
// from an earlier session.
func WithToken(token *Token) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithRateLimitTracker injects a shared tracker. By default every client
// owns its own, so two clients never overwrite each other's view.
func WithRateLimitTracker(tracker *RateLimitTracker) Option {
	return func(c *Client) {
		if tracker != nil {
			c.rateLimit = tracker
		}
	}
}
