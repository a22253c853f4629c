package xrel

import (
	"context"
	"encoding/base64"
	"net/url"
	"strconv"
	"strings"
)

// ReleaseInfoOptions selects a scene release by API id or by dirname.
// Exactly one of the two must be set.
type ReleaseInfoOptions struct {
	ID      string
	Dirname string
}

// ReleaseInfo fetches a single scene release.
func (c *Client) ReleaseInfo(ctx context.Context, opts ReleaseInfoOptions) (*Release, error) {
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
		params.Set("id_type", "dirname")
		params.Set("id", opts.Dirname)
	}

	var release Release
	if err := c.get(ctx, "release/info", params, false, &release); err != nil {
		return nil, err
	}
	return &release, nil
}

// LatestOptions configures the latest-releases feed.
//
// Filter selects one of the server-side filters from ReleaseFilters, or the
// special value "overview". FavsFilter restricts the feed to the entries of
// the caller's favorite lists and needs an authenticated client; it cannot
// be combined with Filter.
type LatestOptions struct {
	// Page is the 1-based page number; values below 1 become 1.
	Page int
	// PerPage is the page size, clamped to 5-100; zero keeps the server default.
	PerPage int
	// Archive selects a past month in YYYY-MM form instead of the live feed.
	Archive string
	// Filter is a server-side filter id or "overview".
	Filter string
	// FavsFilter filters by the authenticated user's favorite lists.
	FavsFilter bool
}

// LatestReleases fetches a page of the latest scene releases.
func (c *Client) LatestReleases(ctx context.Context, opts LatestOptions) (*PaginatedList[Release], error) {
	if opts.Filter != "" && opts.FavsFilter {
		return nil, ErrExclusiveParams
	}
	if opts.FavsFilter {
		if err := c.requireToken(); err != nil {
			return nil, err
		}
	}

	params := url.Values{}
	setPaging(params, opts.Page, opts.PerPage)
	if opts.Archive != "" {
		params.Set("archive", opts.Archive)
	}
	if opts.Filter != "" {
		params.Set("filter", opts.Filter)
	}
	if opts.FavsFilter {
		params.Set("filter", "favs")
	}

	var page PaginatedList[Release]
	if err := c.get(ctx, "release/latest", params, opts.FavsFilter, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ReleaseFilters lists the server-side filters usable with LatestReleases.
func (c *Client) ReleaseFilters(ctx context.Context) ([]Filter, error) {
	var filters []Filter
	if err := c.get(ctx, "release/filters", nil, false, &filters); err != nil {
		return nil, err
	}
	return filters, nil
}

// ReleaseCategories lists the scene release categories.
func (c *Client) ReleaseCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.get(ctx, "release/categories", nil, false, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// BrowseOptions configures a category listing.
type BrowseOptions struct {
	Page    int
	PerPage int
	// ExtInfoType restricts results to releases of one ExtInfo type
	// (movie, tv, game, ...).
	ExtInfoType string
}

// BrowseCategory fetches a page of releases from one category.
func (c *Client) BrowseCategory(ctx context.Context, categoryName string, opts BrowseOptions) (*PaginatedList[Release], error) {
	if categoryName == "" {
		return nil, wrapMissing("category name")
	}

	params := url.Values{}
	params.Set("category_name", categoryName)
	setPaging(params, opts.Page, opts.PerPage)
	if opts.ExtInfoType != "" {
		params.Set("ext_info_type", opts.ExtInfoType)
	}

	var page PaginatedList[Release]
	if err := c.get(ctx, "release/browse_category", params, false, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ReleasesByExtInfo fetches the scene releases of one ExtInfo.
func (c *Client) ReleasesByExtInfo(ctx context.Context, extInfoID string, page, perPage int) (*PaginatedList[Release], error) {
	if extInfoID == "" {
		return nil, wrapMissing("ext_info id")
	}

	params := url.Values{}
	params.Set("ext_info_id", extInfoID)
	setPaging(params, page, perPage)

	var listing PaginatedList[Release]
	if err := c.get(ctx, "release/ext_info", params, false, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// ScopeAddProof is required for AddProof.
const ScopeAddProof = "addproof"

// ProofResult is the response to a proof upload.
type ProofResult struct {
	ProofURL string    `json:"proof_url" xml:"proof_url"`
	Releases []Release `json:"releases,omitempty" xml:"releases>item,omitempty"`
}

// AddProof uploads a proof picture for one or more releases. Requires an
// authenticated client whose application was granted the "addproof" scope;
// the scope check is local and advisory, the service enforces it too.
func (c *Client) AddProof(ctx context.Context, releaseIDs []string, image []byte) (*ProofResult, error) {
	if len(releaseIDs) == 0 {
		return nil, wrapMissing("release ids")
	}
	if len(image) == 0 {
		return nil, wrapMissing("proof image")
	}
	if err := c.requireScope(ScopeAddProof); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("ids", strings.Join(releaseIDs, ","))
	form.Set("image", base64.StdEncoding.EncodeToString(image))

	var result ProofResult
	if err := c.postForm(ctx, "release/addproof", form, true, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ArchiveMonth formats a year/month pair in the YYYY-MM form expected by
// LatestOptions.Archive.
func ArchiveMonth(year, month int) string {
	if month < 10 {
		return strconv.Itoa(year) + "-0" + strconv.Itoa(month)
	}
	return strconv.Itoa(year) + "-" + strconv.Itoa(month)
}
