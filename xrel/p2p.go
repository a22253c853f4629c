package xrel

import (
	"context"
	"net/url"
)

// P2pReleaseInfo fetches a single P2P release by API id or dirname.
func (c *Client) P2pReleaseInfo(ctx context.Context, opts ReleaseInfoOptions) (*P2pRelease, error) {
	if opts.ID == "" && opts.Dirname == "" {
		return nil, wrapMissing("release id or dirname")
	}
	if opts.ID != "" && opts.Dirname != "" {
		return nil, ErrExclusiveParams
	}

	params := url.Values{}
	if opts.ID != "" {
		params.Set("id", opts.ID)
	} else {
		params.Set("dirname", opts.Dirname)
	}

	var release P2pRelease
	if err := c.get(ctx, "p2p/rls_info", params, false, &release); err != nil {
		return nil, err
	}
	return &release, nil
}

// P2pListOptions configures the P2P release listing. At most one of
// CategoryID, GroupID and ExtInfoID may be set; all empty lists everything.
type P2pListOptions struct {
	Page       int
	PerPage    int
	CategoryID string
	GroupID    string
	ExtInfoID  string
}

func (o P2pListOptions) selector() (key, value string, err error) {
	set := 0
	if o.CategoryID != "" {
		key, value = "category_id", o.CategoryID
		set++
	}
	if o.GroupID != "" {
		key, value = "group_id", o.GroupID
		set++
	}
	if o.ExtInfoID != "" {
		key, value = "ext_info_id", o.ExtInfoID
		set++
	}
	if set > 1 {
		return "", "", ErrExclusiveParams
	}
	return key, value, nil
}

// P2pReleases fetches a page of P2P releases.
func (c *Client) P2pReleases(ctx context.Context, opts P2pListOptions) (*PaginatedList[P2pRelease], error) {
	key, value, err := opts.selector()
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	setPaging(params, opts.Page, opts.PerPage)
	if key != "" {
		params.Set(key, value)
	}

	var page PaginatedList[P2pRelease]
	if err := c.get(ctx, "p2p/releases", params, false, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// P2pCategories lists the P2P release categories.
func (c *Client) P2pCategories(ctx context.Context) ([]P2pCategory, error) {
	var categories []P2pCategory
	if err := c.get(ctx, "p2p/categories", nil, false, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
