package xrel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// fetchConcurrency bounds how many pages are fetched in parallel.
const fetchConcurrency = 4

// AllLatestReleases fetches every page of the latest-releases feed,
// the first page synchronously and the remainder with bounded concurrency.
// Pages are returned in order. Fails entirely if any page fails; there are
// no partial results.
func (c *Client) AllLatestReleases(ctx context.Context, opts LatestOptions) ([]Release, error) {
	opts.Page = 1
	first, err := c.LatestReleases(ctx, opts)
	if err != nil {
		return nil, err
	}

	totalPages := first.Pagination.TotalPages
	if totalPages <= 1 {
		return first.List, nil
	}

	pages := make([][]Release, totalPages)
	pages[0] = first.List

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	for page := 2; page <= totalPages; page++ {
		page := page
		g.Go(func() error {
			pageOpts := opts
			pageOpts.Page = page
			result, err := c.LatestReleases(ctx, pageOpts)
			if err != nil {
				return err
			}
			pages[page-1] = result.List
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Release
	for _, page := range pages {
		all = append(all, page...)
	}

	c.logger.Debug().
		Int("pages", totalPages).
		Int("releases", len(all)).
		Msg("Fetched all latest release pages")

	return all, nil
}
