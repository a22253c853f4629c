package xrel

import (
	"context"
	"net/url"
	"strconv"
)

// SearchResult is the envelope of the release search endpoint. The two
// slices are populated according to which categories the search included.
type SearchResult struct {
	Total       int          `json:"total" xml:"total"`
	Results     []Release    `json:"results,omitempty" xml:"results>item,omitempty"`
	P2pResults  []P2pRelease `json:"p2p_results,omitempty" xml:"p2p_results>item,omitempty"`
}

// SearchOptions configures a release search. At least one of Scene and P2P
// must be true.
type SearchOptions struct {
	Scene bool
	P2P   bool
	// Limit bounds the result count, clamped to 5-100; zero keeps the
	// server default.
	Limit int
}

// SearchReleases searches scene and/or P2P releases by free text.
func (c *Client) SearchReleases(ctx context.Context, query string, opts SearchOptions) (*SearchResult, error) {
	if query == "" {
		return nil, wrapMissing("search query")
	}
	if !opts.Scene && !opts.P2P {
		return nil, wrapMissing("search category (scene or p2p)")
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("scene", strconv.FormatBool(opts.Scene))
	params.Set("p2p", strconv.FormatBool(opts.P2P))
	if opts.Limit != 0 {
		params.Set("limit", strconv.Itoa(clampPerPage(opts.Limit)))
	}

	var result SearchResult
	if err := c.get(ctx, "search/releases", params, false, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ExtInfoSearchResult is the envelope of the ExtInfo search endpoint.
type ExtInfoSearchResult struct {
	Total   int       `json:"total" xml:"total"`
	Results []ExtInfo `json:"results,omitempty" xml:"results>item,omitempty"`
}

// SearchExtInfo searches creative works by free text, optionally limited to
// one type (movie, tv, game, console, software, xxx).
func (c *Client) SearchExtInfo(ctx context.Context, query, extInfoType string, limit int) (*ExtInfoSearchResult, error) {
	if query == "" {
		return nil, wrapMissing("search query")
	}

	params := url.Values{}
	params.Set("q", query)
	if extInfoType != "" {
		params.Set("type", extInfoType)
	}
	if limit != 0 {
		params.Set("limit", strconv.Itoa(clampPerPage(limit)))
	}

	var result ExtInfoSearchResult
	if err := c.get(ctx, "search/ext_info", params, false, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
