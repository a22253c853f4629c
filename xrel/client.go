package xrel

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is where the xREL v2 API lives.
const DefaultBaseURL = "https://api.xrel.to/v2/"

// Format selects the payload representation requested from the API.
type Format string

// Supported payload formats. Each endpoint path carries the format as a
// fixed suffix, chosen once per client.
const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// OAuthApp holds the OAuth2 application credentials issued by xREL.
// Scopes lists the capabilities the application was granted; the client
// checks them locally before calling scope-protected endpoints.
type OAuthApp struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	State        string
	Scopes       []string
}

// Client is the xREL API facade. It holds per-instance configuration and
// the shared request pipeline every endpoint method runs through.
//
// A Client is intended to be owned by one caller. Concurrent calls through
// the same Client are safe as long as the token is not swapped mid-flight;
// the rate-limit tracker tolerates concurrency with the caveats documented
// on RateLimitTracker.
type Client struct {
	baseURL    string
	format     Format
	httpClient *http.Client
	logger     zerolog.Logger
	oauth      OAuthApp
	token      *Token
	rateLimit  *RateLimitTracker
}

// New creates a client. The zero configuration talks JSON to the public
// API, logs nothing, and tracks rate limits per instance.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		format:     FormatJSON,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     zerolog.Nop(),
		rateLimit:  NewRateLimitTracker(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.baseURL = strings.TrimRight(c.baseURL, "/") + "/"
	return c
}

// RateLimit returns the tracker updated after every completed call.
func (c *Client) RateLimit() *RateLimitTracker {
	return c.rateLimit
}

// Token returns the token the client currently attaches to authenticated
// calls, or nil.
func (c *Client) Token() *Token {
	return c.token
}

// SetToken replaces the client's token. The grant methods call this
// themselves; callers only need it when restoring a persisted token.
func (c *Client) SetToken(token *Token) {
	c.token = token
}

// HasScope reports whether the application was granted the named scope.
// Scopes are advisory, client-side knowledge supplied at construction;
// the service still enforces them server-side.
func (c *Client) HasScope(scope string) bool {
	for _, s := range c.oauth.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}

// requireToken is the shared precondition for authenticated endpoints.
func (c *Client) requireToken() error {
	if c.token == nil || c.token.AccessToken == "" {
		return ErrMissingToken
	}
	return nil
}

// requireScope is the shared precondition for scope-protected endpoints.
func (c *Client) requireScope(scope string) error {
	if err := c.requireToken(); err != nil {
		return err
	}
	if !c.HasScope(scope) {
		return fmt.Errorf("%w: %s", ErrMissingScope, scope)
	}
	return nil
}

// endpoint builds the URL for an API resource, applying the configured
// format suffix.
func (c *Client) endpoint(resource string) string {
	return c.baseURL + resource + "." + string(c.format)
}

// get performs a GET against an API resource and decodes the response
// into out (which may be nil for endpoints without a payload).
func (c *Client) get(ctx context.Context, resource string, params url.Values, authed bool, out any) error {
	requestURL := c.endpoint(resource)
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	return c.do(req, authed, c.format, out)
}

// getBinary performs a GET for endpoints returning raw bytes (NFO images).
// Error responses still go through the normal classification, including the
// body sniff for errors hiding behind a 2xx.
func (c *Client) getBinary(ctx context.Context, resource string, params url.Values) ([]byte, error) {
	requestURL := c.endpoint(resource)
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	return c.doRaw(req, true)
}

// postForm performs a form-encoded POST against an API resource.
func (c *Client) postForm(ctx context.Context, resource string, form url.Values, authed bool, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(resource), strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(req, true, c.format, out)
}

// do sends the request and runs the response through the normalizer.
// format is explicit because the OAuth2 token endpoint is always JSON
// regardless of the configured payload format.
func (c *Client) do(req *http.Request, authed bool, format Format, out any) error {
	body, resp, err := c.send(req, authed)
	if err != nil {
		return err
	}
	return decodeResponse(resp.StatusCode, resp.Header, body, format, out, c.rateLimit)
}

func (c *Client) doRaw(req *http.Request, authed bool) ([]byte, error) {
	body, resp, err := c.send(req, authed)
	if err != nil {
		return nil, err
	}
	if err := decodeResponse(resp.StatusCode, resp.Header, body, c.format, nil, c.rateLimit); err != nil {
		return nil, err
	}
	return body, nil
}

// send performs the HTTP round trip and drains the body. Transport
// failures record an unknown status in the tracker before surfacing,
// so rate-limit introspection stays consistent after failed calls.
func (c *Client) send(req *http.Request, authed bool) ([]byte, *http.Response, error) {
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	if authed && c.token != nil {
		req.Header.Set("Authorization", "Bearer "+c.token.AccessToken)
	}

	c.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Bool("authenticated", authed).
		Msg("xREL API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.rateLimit.record(StatusUnknown, http.Header{})
		return nil, nil, newTransportError(err)
	}
	defer resp.Body.Close()

	body, err := readBody(resp)
	if err != nil {
		c.rateLimit.record(resp.StatusCode, resp.Header)
		return nil, nil, &ClientError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("failed to read response: %v", err),
			cause:      err,
		}
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Msg("xREL API response")

	return body, resp, nil
}
