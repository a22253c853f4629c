package xrel

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOAuthTestServer(t *testing.T, gotForm *url.Values) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/oauth2/token", r.URL.Path)
		require.NoError(t, r.ParseForm())
		*gotForm = r.PostForm
		w.Write([]byte(`{"access_token":"new-access","token_type":"Bearer","expires_in":86400,"refresh_token":"new-refresh"}`))
	}))
}

func oauthTestApp() OAuthApp {
	return OAuthApp{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURI:  "https://example.com/callback",
		State:        "csrf-token",
		Scopes:       []string{"viewnfo", "addproof"},
	}
}

func TestAuthorizationURL(t *testing.T) {
	client := New(WithOAuthApp(oauthTestApp()))

	rawURL, err := client.AuthorizationURL()
	require.NoError(t, err)

	parsed, err := url.Parse(rawURL)
	require.NoError(t, err)
	assert.Equal(t, "/v2/oauth2/auth", parsed.Path)

	query := parsed.Query()
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "client-id", query.Get("client_id"))
	assert.Equal(t, "https://example.com/callback", query.Get("redirect_uri"))
	assert.Equal(t, "csrf-token", query.Get("state"))
	assert.Equal(t, "viewnfo addproof", query.Get("scope"))
}

func TestAuthorizationURLRequiresClientID(t *testing.T) {
	client := New()
	_, err := client.AuthorizationURL()
	require.ErrorIs(t, err, ErrMissingParameter)
}

func TestExchangeCode(t *testing.T) {
	var gotForm url.Values
	server := newOAuthTestServer(t, &gotForm)
	defer server.Close()

	app := oauthTestApp()
	client := New(WithBaseURL(server.URL), WithOAuthApp(app))

	token, err := client.ExchangeCode(context.Background(), "auth-code")
	require.NoError(t, err)

	assert.Equal(t, "authorization_code", gotForm.Get("grant_type"))
	assert.Equal(t, "auth-code", gotForm.Get("code"))
	assert.Equal(t, "client-id", gotForm.Get("client_id"))
	assert.Equal(t, "client-secret", gotForm.Get("client_secret"))
	assert.Equal(t, "https://example.com/callback", gotForm.Get("redirect_uri"))

	assert.Equal(t, "new-access", token.AccessToken)
	assert.Equal(t, "new-refresh", token.RefreshToken)
	// The fresh token replaces the client's current one.
	assert.Same(t, token, client.Token())
}

func TestRefreshTokenProducesNewValue(t *testing.T) {
	var gotForm url.Values
	server := newOAuthTestServer(t, &gotForm)
	defer server.Close()

	client := New(WithBaseURL(server.URL), WithOAuthApp(oauthTestApp()))
	old := NewToken("old-access", "Bearer", 100, "old-refresh")
	client.SetToken(old)

	fresh, err := client.RefreshToken(context.Background(), old)
	require.NoError(t, err)

	assert.Equal(t, "refresh_token", gotForm.Get("grant_type"))
	assert.Equal(t, "old-refresh", gotForm.Get("refresh_token"))

	// Refresh never mutates the old token.
	assert.Equal(t, "old-access", old.AccessToken)
	assert.Equal(t, "old-refresh", old.RefreshToken)
	assert.NotSame(t, old, fresh)
	assert.Equal(t, "new-access", fresh.AccessToken)
}

func TestRefreshTokenRequiresRefreshToken(t *testing.T) {
	client := New(WithOAuthApp(oauthTestApp()))

	_, err := client.RefreshToken(context.Background(), nil)
	require.ErrorIs(t, err, ErrMissingParameter)

	_, err = client.RefreshToken(context.Background(), NewToken("a", "Bearer", 60, ""))
	require.ErrorIs(t, err, ErrMissingParameter)
}

func TestAppToken(t *testing.T) {
	var gotForm url.Values
	server := newOAuthTestServer(t, &gotForm)
	defer server.Close()

	client := New(WithBaseURL(server.URL), WithOAuthApp(oauthTestApp()))

	token, err := client.AppToken(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "client_credentials", gotForm.Get("grant_type"))
	assert.Equal(t, "viewnfo addproof", gotForm.Get("scope"))
	assert.NotEmpty(t, token.AccessToken)
}

func TestTokenEndpointIsAlwaysJSON(t *testing.T) {
	var gotForm url.Values
	server := newOAuthTestServer(t, &gotForm)
	defer server.Close()

	// Even an XML-configured client decodes the token endpoint as JSON.
	client := New(WithBaseURL(server.URL), WithOAuthApp(oauthTestApp()), WithFormat(FormatXML))
	token, err := client.AppToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new-access", token.AccessToken)
}

func TestExchangeCodeRequiresCredentials(t *testing.T) {
	client := New()
	_, err := client.ExchangeCode(context.Background(), "code")
	require.ErrorIs(t, err, ErrMissingParameter)
}
