package xrel

import (
	"context"
	"net/url"
)

// ScopeViewNfo is required for the NFO image endpoints.
const ScopeViewNfo = "viewnfo"

// ReleaseNfo fetches the NFO image of a scene release as raw bytes.
// Requires an authenticated client whose application was granted the
// "viewnfo" scope; the check is local, advisory knowledge from
// construction time, and the service enforces it again server-side.
func (c *Client) ReleaseNfo(ctx context.Context, releaseID string) ([]byte, error) {
	return c.nfo(ctx, "nfo/release", releaseID)
}

// P2pReleaseNfo fetches the NFO image of a P2P release as raw bytes.
func (c *Client) P2pReleaseNfo(ctx context.Context, releaseID string) ([]byte, error) {
	return c.nfo(ctx, "nfo/p2p_rls", releaseID)
}

func (c *Client) nfo(ctx context.Context, resource, releaseID string) ([]byte, error) {
	if releaseID == "" {
		return nil, wrapMissing("release id")
	}
	if err := c.requireScope(ScopeViewNfo); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("id", releaseID)

	return c.getBinary(ctx, resource, params)
}
