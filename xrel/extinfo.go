package xrel

import (
	"context"
	"net/url"
	"strconv"
)

// ExtInfoDetails fetches one ExtInfo. With an authenticated client the
// result includes the caller's own rating.
func (c *Client) ExtInfoDetails(ctx context.Context, extInfoID string) (*ExtInfo, error) {
	if extInfoID == "" {
		return nil, wrapMissing("ext_info id")
	}

	params := url.Values{}
	params.Set("id", extInfoID)

	var info ExtInfo
	authed := c.token != nil
	if err := c.get(ctx, "ext_info/info", params, authed, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// ExtInfoMediaItems fetches the media (images, trailers, ...) of an ExtInfo.
func (c *Client) ExtInfoMediaItems(ctx context.Context, extInfoID string) ([]ExtInfoMedia, error) {
	if extInfoID == "" {
		return nil, wrapMissing("ext_info id")
	}

	params := url.Values{}
	params.Set("id", extInfoID)

	var media []ExtInfoMedia
	if err := c.get(ctx, "ext_info/media", params, false, &media); err != nil {
		return nil, err
	}
	return media, nil
}

// RandomExtInfo fetches a random ExtInfo, optionally restricted to one
// type ("movie", "tv", "game", ...). An empty type means any.
func (c *Client) RandomExtInfo(ctx context.Context, extInfoType string) (*ExtInfo, error) {
	params := url.Values{}
	if extInfoType != "" {
		params.Set("type", extInfoType)
	}

	var info ExtInfo
	if err := c.get(ctx, "ext_info/random", params, false, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// RateExtInfo submits a 1-10 rating for an ExtInfo and returns the updated
// entity. Ratings are a hard constraint: out-of-range values are rejected
// locally, never clamped.
func (c *Client) RateExtInfo(ctx context.Context, extInfoID string, rating int) (*ExtInfo, error) {
	if extInfoID == "" {
		return nil, wrapMissing("ext_info id")
	}
	if rating < 1 || rating > 10 {
		return nil, ErrRatingOutOfRange
	}
	if err := c.requireToken(); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("id", extInfoID)
	form.Set("rating", strconv.Itoa(rating))

	var info ExtInfo
	if err := c.postForm(ctx, "ext_info/rate", form, true, &info); err != nil {
		return nil, err
	}
	return &info, nil
}
