package xrel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// withFakeClock pins the package clock to a fixed instant and returns a
// function to advance it.
func withFakeClock(t *testing.T) func(d time.Duration) {
	t.Helper()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = time.Now })

	return func(d time.Duration) { now = now.Add(d) }
}

func TestTokenRemainingValidity(t *testing.T) {
	advance := withFakeClock(t)

	token := NewToken("access", "Bearer", 3600, "refresh")
	assert.Equal(t, int64(3600), token.RemainingSeconds())
	assert.False(t, token.Expired())

	advance(30 * time.Minute)
	assert.Equal(t, int64(1800), token.RemainingSeconds())

	// One second past expiry: zero, never negative.
	advance(30*time.Minute + time.Second)
	assert.Equal(t, int64(0), token.RemainingSeconds())
	assert.True(t, token.Expired())

	advance(24 * time.Hour)
	assert.Equal(t, int64(0), token.RemainingSeconds())
}

func TestTokenFromResponse(t *testing.T) {
	advance := withFakeClock(t)

	decoded := tokenResponse{
		AccessToken:  "abc",
		TokenType:    "Bearer",
		ExpiresIn:    86400,
		RefreshToken: "def",
	}
	token := decoded.token()

	assert.Equal(t, "abc", token.AccessToken)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, "def", token.RefreshToken)
	assert.Equal(t, int64(86400), token.RemainingSeconds())

	advance(86401 * time.Second)
	assert.True(t, token.Expired())
}
