package xrel

import (
	"context"
	"net/url"
	"strconv"
)

// CommentsOptions configures a comment listing.
type CommentsOptions struct {
	Page    int
	PerPage int
}

// Comments fetches the comments of a scene or P2P release.
func (c *Client) Comments(ctx context.Context, release ReleaseRef, opts CommentsOptions) (*PaginatedList[Comment], error) {
	if err := release.validate(); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("id", release.ID)
	params.Set("type", string(release.Kind))
	setPaging(params, opts.Page, opts.PerPage)

	var page PaginatedList[Comment]
	if err := c.get(ctx, "comments/get", params, false, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// NewComment is the payload for AddComment. A comment must carry text, a
// full rating (both video and audio), or both. Ratings are hard 1-10
// constraints; out-of-range values are rejected locally.
type NewComment struct {
	Text        string
	VideoRating int
	AudioRating int
}

func (n NewComment) validate() error {
	hasRating := n.VideoRating != 0 || n.AudioRating != 0
	if n.Text == "" && !hasRating {
		return wrapMissing("comment text or rating")
	}
	if hasRating {
		// Ratings only come as a pair.
		if n.VideoRating == 0 || n.AudioRating == 0 {
			return wrapMissing("both video and audio rating")
		}
		if n.VideoRating < 1 || n.VideoRating > 10 || n.AudioRating < 1 || n.AudioRating > 10 {
			return ErrRatingOutOfRange
		}
	}
	return nil
}

// AddComment posts a comment on a release and returns it as stored.
func (c *Client) AddComment(ctx context.Context, release ReleaseRef, comment NewComment) (*Comment, error) {
	if err := release.validate(); err != nil {
		return nil, err
	}
	if err := comment.validate(); err != nil {
		return nil, err
	}
	if err := c.requireToken(); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("id", release.ID)
	form.Set("type", string(release.Kind))
	if comment.Text != "" {
		form.Set("text", comment.Text)
	}
	if comment.VideoRating != 0 {
		form.Set("video_rating", strconv.Itoa(comment.VideoRating))
		form.Set("audio_rating", strconv.Itoa(comment.AudioRating))
	}

	var stored Comment
	if err := c.postForm(ctx, "comments/add", form, true, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}
