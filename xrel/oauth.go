package xrel

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// OAuth2 grant types accepted by the token endpoint.
const (
	grantAuthorizationCode = "authorization_code"
	grantRefreshToken      = "refresh_token"
	grantClientCredentials = "client_credentials"
)

// AuthorizationURL builds the browser URL a user visits to authorize the
// application. After authorizing, the user is redirected to the configured
// redirect URI with a code to pass to ExchangeCode.
func (c *Client) AuthorizationURL() (string, error) {
	if c.oauth.ClientID == "" {
		return "", fmt.Errorf("%w: oauth client id", ErrMissingParameter)
	}

	params := url.Values{}
	params.Set("response_type", "code")
	params.Set("client_id", c.oauth.ClientID)
	if c.oauth.RedirectURI != "" {
		params.Set("redirect_uri", c.oauth.RedirectURI)
	}
	if c.oauth.State != "" {
		params.Set("state", c.oauth.State)
	}
	if len(c.oauth.Scopes) > 0 {
		params.Set("scope", strings.Join(c.oauth.Scopes, " "))
	}

	return c.baseURL + "oauth2/auth?" + params.Encode(), nil
}

// ExchangeCode redeems an authorization code for a token. The new token is
// stored on the client and returned.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*Token, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: code", ErrMissingParameter)
	}

	form := url.Values{}
	form.Set("grant_type", grantAuthorizationCode)
	form.Set("code", code)
	if c.oauth.RedirectURI != "" {
		form.Set("redirect_uri", c.oauth.RedirectURI)
	}

	return c.requestToken(ctx, form)
}

// RefreshToken redeems the refresh token of an earlier token for a fresh
// one. The old token value is left untouched; the client starts using the
// new one.
func (c *Client) RefreshToken(ctx context.Context, token *Token) (*Token, error) {
	if token == nil || token.RefreshToken == "" {
		return nil, fmt.Errorf("%w: refresh token", ErrMissingParameter)
	}

	form := url.Values{}
	form.Set("grant_type", grantRefreshToken)
	form.Set("refresh_token", token.RefreshToken)

	return c.requestToken(ctx, form)
}

// AppToken obtains an application-level token through the client_credentials
// grant. No user interaction happens and no refresh token is issued.
func (c *Client) AppToken(ctx context.Context) (*Token, error) {
	form := url.Values{}
	form.Set("grant_type", grantClientCredentials)
	if len(c.oauth.Scopes) > 0 {
		form.Set("scope", strings.Join(c.oauth.Scopes, " "))
	}

	return c.requestToken(ctx, form)
}

// requestToken POSTs to the token endpoint, which speaks JSON regardless of
// the configured payload format and carries no format suffix.
func (c *Client) requestToken(ctx context.Context, form url.Values) (*Token, error) {
	if c.oauth.ClientID == "" || c.oauth.ClientSecret == "" {
		return nil, fmt.Errorf("%w: oauth client credentials", ErrMissingParameter)
	}
	form.Set("client_id", c.oauth.ClientID)
	form.Set("client_secret", c.oauth.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var decoded tokenResponse
	if err := c.do(req, false, FormatJSON, &decoded); err != nil {
		return nil, err
	}

	token := decoded.token()
	c.token = token

	c.logger.Debug().
		Str("grant_type", form.Get("grant_type")).
		Int64("expires_in", token.ExpiresIn).
		Msg("Obtained xREL token")

	return token, nil
}
