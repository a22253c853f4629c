package xrel

import "time"

// timeNow is swapped out in tests.
var timeNow = time.Now

// Token is an OAuth2 bearer credential issued by the xREL token endpoint.
// Tokens are immutable: refreshing yields a new Token value and never
// mutates an existing one. The zero value is not a valid token; use
// NewToken or one of the Client's grant methods.
type Token struct {
	// AccessToken is the opaque credential sent as the bearer value.
	AccessToken string
	// TokenType is the credential type, "Bearer" for this API.
	TokenType string
	// ExpiresIn is the lifetime in seconds granted at issue time.
	ExpiresIn int64
	// RefreshToken is empty for tokens from the client_credentials grant.
	RefreshToken string

	created time.Time
}

// NewToken constructs a token from explicit fields, e.g. one the caller
// persisted from an earlier session. The creation time is set to now, so
// ExpiresIn should be the lifetime remaining from the caller's point of view.
func NewToken(accessToken, tokenType string, expiresIn int64, refreshToken string) *Token {
	return &Token{
		AccessToken:  accessToken,
		TokenType:    tokenType,
		ExpiresIn:    expiresIn,
		RefreshToken: refreshToken,
		created:      timeNow(),
	}
}

// RemainingValidity returns how long the token is still usable.
// Never negative; an expired token reports zero.
func (t *Token) RemainingValidity() time.Duration {
	expiry := t.created.Add(time.Duration(t.ExpiresIn) * time.Second)
	remaining := expiry.Sub(timeNow())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// RemainingSeconds returns RemainingValidity truncated to whole seconds.
func (t *Token) RemainingSeconds() int64 {
	return int64(t.RemainingValidity() / time.Second)
}

// Expired reports whether the token's lifetime has elapsed.
func (t *Token) Expired() bool {
	return t.RemainingValidity() == 0
}

// tokenResponse is the wire shape of the oauth2/token endpoint, which is
// JSON regardless of the client's configured format.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
}

func (r tokenResponse) token() *Token {
	return &Token{
		AccessToken:  r.AccessToken,
		TokenType:    r.TokenType,
		ExpiresIn:    r.ExpiresIn,
		RefreshToken: r.RefreshToken,
		created:      timeNow(),
	}
}
