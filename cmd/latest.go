package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/relwatch/relwatch/filter"
	"github.com/relwatch/relwatch/xrel"
)

var (
	latestPage    int
	latestPerPage int
	latestArchive string
	latestFilter  string
	latestFavs    bool
	latestAll     bool
	filterExpr    string
	preset        string
)

// latestCmd represents the latest command
var latestCmd = &cobra.Command{
	Use:   "latest",
	Short: "List the latest scene releases",
	Long: `List the latest scene releases from xREL, optionally restricted to a
server-side filter or the entries of your favorite lists, and optionally
narrowed further by a local filter expression.`,
	RunE: runLatest,
}

func init() {
	rootCmd.AddCommand(latestCmd)

	latestCmd.Flags().IntVar(&latestPage, "page", 1, "page number")
	latestCmd.Flags().IntVar(&latestPerPage, "per-page", 25, "releases per page (5-100)")
	latestCmd.Flags().StringVar(&latestArchive, "archive", "", "past month to list, YYYY-MM")
	latestCmd.Flags().StringVar(&latestFilter, "server-filter", "", "server-side filter id (see 'relwatch filters')")
	latestCmd.Flags().BoolVar(&latestFavs, "favs", false, "only releases from your favorite lists (needs token)")
	latestCmd.Flags().BoolVarP(&latestAll, "all", "a", false, "fetch every page, not just one")
	latestCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "local filter expression")
	latestCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

func runLatest(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	expression, err := getFilterExpression(filterExpr, preset)
	if err != nil {
		return err
	}

	var localFilter *filter.Filter
	if expression != "" {
		localFilter, err = filter.Compile(expression)
		if err != nil {
			return fmt.Errorf("invalid filter: %w", err)
		}
	}

	opts := xrel.LatestOptions{
		Page:       latestPage,
		PerPage:    latestPerPage,
		Archive:    latestArchive,
		Filter:     latestFilter,
		FavsFilter: latestFavs,
	}

	var releases []xrel.Release
	if latestAll {
		releases, err = client.AllLatestReleases(ctx, opts)
		if err != nil {
			return fmt.Errorf("failed to fetch latest releases: %w", err)
		}
	} else {
		page, err := client.LatestReleases(ctx, opts)
		if err != nil {
			return fmt.Errorf("failed to fetch latest releases: %w", err)
		}
		releases = page.List
	}

	if localFilter != nil {
		before := len(releases)
		releases = localFilter.Apply(releases)
		logger.Debug().
			Int("before", before).
			Int("after", len(releases)).
			Str("filter", localFilter.Expression()).
			Msg("Applied local filter")
	}

	if len(releases) == 0 {
		fmt.Println("No releases found.")
		return nil
	}

	printReleases(releases)
	return nil
}

func printReleases(releases []xrel.Release) {
	fmt.Println(strings.Repeat("━", 100))
	fmt.Printf("%-20s %-60s %s\n", "TIME", "DIRNAME", "GROUP")
	fmt.Println(strings.Repeat("━", 100))

	for _, rls := range releases {
		dirname := rls.Dirname
		if len(dirname) > 58 {
			dirname = dirname[:55] + "..."
		}
		when := time.Unix(rls.Time, 0).Format("2006-01-02 15:04")
		fmt.Printf("%-20s %-60s %s\n", when, dirname, rls.GroupName)
	}
	fmt.Println(strings.Repeat("━", 100))
	fmt.Printf("%d releases\n", len(releases))
}

// filtersCmd lists the server-side filters usable with --server-filter
var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "List the server-side latest-release filters",
	RunE: func(cmd *cobra.Command, args []string) error {
		filters, err := client.ReleaseFilters(context.Background())
		if err != nil {
			return fmt.Errorf("failed to fetch filters: %w", err)
		}
		for _, f := range filters {
			fmt.Printf("%4d  %s\n", f.ID, f.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(filtersCmd)
}
