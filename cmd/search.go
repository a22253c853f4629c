package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relwatch/relwatch/xrel"
)

var (
	searchScene bool
	searchP2P   bool
	searchLimit int
	searchType  string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search releases by free text",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

// searchExtCmd searches creative works instead of releases
var searchExtCmd = &cobra.Command{
	Use:   "search-media <query>",
	Short: "Search movies, shows, games and other works",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearchExt,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(searchExtCmd)

	searchCmd.Flags().BoolVar(&searchScene, "scene", true, "include scene releases")
	searchCmd.Flags().BoolVar(&searchP2P, "p2p", false, "include P2P releases")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 25, "maximum results (5-100)")

	searchExtCmd.Flags().StringVar(&searchType, "type", "", "restrict to one type (movie, tv, game, ...)")
	searchExtCmd.Flags().IntVar(&searchLimit, "limit", 25, "maximum results (5-100)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	result, err := client.SearchReleases(context.Background(), args[0], xrel.SearchOptions{
		Scene: searchScene,
		P2P:   searchP2P,
		Limit: searchLimit,
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(result.Results) > 0 {
		fmt.Printf("Scene releases (%d):\n", len(result.Results))
		printReleases(result.Results)
	}
	for _, rls := range result.P2pResults {
		fmt.Printf("p2p  %s\n", rls.Dirname)
	}
	if result.Total == 0 {
		fmt.Println("No results.")
	}
	return nil
}

func runSearchExt(cmd *cobra.Command, args []string) error {
	result, err := client.SearchExtInfo(context.Background(), args[0], searchType, searchLimit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	for _, info := range result.Results {
		fmt.Printf("%-10s %-12s %s\n", info.ID, info.Type, info.Title)
	}
	if len(result.Results) == 0 {
		fmt.Println("No results.")
	}
	return nil
}
