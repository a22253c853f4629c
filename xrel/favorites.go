package xrel

import (
	"context"
	"net/url"
	"strconv"
)

// FavoriteLists fetches the authenticated user's favorite lists.
func (c *Client) FavoriteLists(ctx context.Context) ([]Favorite, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}

	var lists []Favorite
	if err := c.get(ctx, "favs/lists", nil, true, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

// FavoriteEntriesOptions configures a favorite-list entries fetch.
type FavoriteEntriesOptions struct {
	// IncludeReleases attaches the unread releases of each entry.
	IncludeReleases bool
	// IncludeExtInfo attaches full ExtInfo details instead of the compact form.
	IncludeExtInfo bool
}

// FavoriteListEntries fetches the ExtInfo entries of one favorite list.
func (c *Client) FavoriteListEntries(ctx context.Context, listID int64, opts FavoriteEntriesOptions) ([]ExtInfo, error) {
	if listID == 0 {
		return nil, wrapMissing("favorite list id")
	}
	if err := c.requireToken(); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("id", strconv.FormatInt(listID, 10))
	if opts.IncludeReleases {
		params.Set("get_releases", "true")
	}
	if opts.IncludeExtInfo {
		params.Set("get_ext_info", "true")
	}

	var entries []ExtInfo
	if err := c.get(ctx, "favs/list_entries", params, true, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// FavoriteChange is the response to add/remove/mark-read operations on a
// favorite list.
type FavoriteChange struct {
	FavList Favorite `json:"fav_list" xml:"fav_list"`
	ExtInfo *ExtInfo `json:"ext_info,omitempty" xml:"ext_info,omitempty"`
}

// AddFavoriteEntry adds an ExtInfo to a favorite list.
func (c *Client) AddFavoriteEntry(ctx context.Context, listID int64, extInfoID string) (*FavoriteChange, error) {
	return c.changeFavoriteEntry(ctx, "favs/list_addentry", listID, extInfoID)
}

// RemoveFavoriteEntry removes an ExtInfo from a favorite list.
func (c *Client) RemoveFavoriteEntry(ctx context.Context, listID int64, extInfoID string) (*FavoriteChange, error) {
	return c.changeFavoriteEntry(ctx, "favs/list_delentry", listID, extInfoID)
}

func (c *Client) changeFavoriteEntry(ctx context.Context, resource string, listID int64, extInfoID string) (*FavoriteChange, error) {
	if listID == 0 {
		return nil, wrapMissing("favorite list id")
	}
	if extInfoID == "" {
		return nil, wrapMissing("ext_info id")
	}
	if err := c.requireToken(); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("id", strconv.FormatInt(listID, 10))
	form.Set("ext_info_id", extInfoID)

	var change FavoriteChange
	if err := c.postForm(ctx, resource, form, true, &change); err != nil {
		return nil, err
	}
	return &change, nil
}

// MarkFavoriteEntryAsRead marks the releases of one list entry as read.
// The release may be a scene or a P2P release; the reference carries which.
func (c *Client) MarkFavoriteEntryAsRead(ctx context.Context, listID int64, release ReleaseRef) (*FavoriteChange, error) {
	if listID == 0 {
		return nil, wrapMissing("favorite list id")
	}
	if err := release.validate(); err != nil {
		return nil, err
	}
	if err := c.requireToken(); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("id", strconv.FormatInt(listID, 10))
	form.Set("release_id", release.ID)
	form.Set("type", string(release.Kind))

	var change FavoriteChange
	if err := c.postForm(ctx, "favs/list_markread", form, true, &change); err != nil {
		return nil, err
	}
	return &change, nil
}
