package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relwatch/relwatch/xrel"
)

var (
	favsWithReleases bool
	favsMarkP2P      bool
)

// favsCmd represents the favorites command group
var favsCmd = &cobra.Command{
	Use:   "favs",
	Short: "Work with your favorite lists (needs token)",
}

var favsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show your favorite lists",
	RunE:  runFavsList,
}

var favsEntriesCmd = &cobra.Command{
	Use:   "entries <list-id>",
	Short: "Show the entries of one favorite list",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavsEntries,
}

var favsMarkReadCmd = &cobra.Command{
	Use:   "mark-read <list-id> <release-id>",
	Short: "Mark a release of a list entry as read",
	Args:  cobra.ExactArgs(2),
	RunE:  runFavsMarkRead,
}

func init() {
	rootCmd.AddCommand(favsCmd)
	favsCmd.AddCommand(favsListCmd)
	favsCmd.AddCommand(favsEntriesCmd)
	favsCmd.AddCommand(favsMarkReadCmd)

	favsEntriesCmd.Flags().BoolVar(&favsWithReleases, "releases", false, "include unread releases per entry")
	favsMarkReadCmd.Flags().BoolVar(&favsMarkP2P, "p2p", false, "the release id names a P2P release")
}

func runFavsList(cmd *cobra.Command, args []string) error {
	lists, err := client.FavoriteLists(context.Background())
	if err != nil {
		return fmt.Errorf("failed to fetch favorite lists: %w", err)
	}

	for _, list := range lists {
		fmt.Printf("%6d  %-30s %3d entries, %d unread\n", list.ID, list.Name, list.EntryCount, list.UnreadReleases)
	}
	if len(lists) == 0 {
		fmt.Println("No favorite lists.")
	}
	return nil
}

func runFavsEntries(cmd *cobra.Command, args []string) error {
	listID, err := parseListID(args[0])
	if err != nil {
		return err
	}

	entries, err := client.FavoriteListEntries(context.Background(), listID, xrel.FavoriteEntriesOptions{
		IncludeReleases: favsWithReleases,
	})
	if err != nil {
		return fmt.Errorf("failed to fetch entries: %w", err)
	}

	for _, entry := range entries {
		marker := " "
		if entry.Unread {
			marker = "*"
		}
		fmt.Printf("%s %-10s %-12s %s\n", marker, entry.ID, entry.Type, entry.Title)
	}
	return nil
}

func runFavsMarkRead(cmd *cobra.Command, args []string) error {
	listID, err := parseListID(args[0])
	if err != nil {
		return err
	}

	ref := xrel.SceneRef(args[1])
	if favsMarkP2P {
		ref = xrel.P2pRef(args[1])
	}

	change, err := client.MarkFavoriteEntryAsRead(context.Background(), listID, ref)
	if err != nil {
		return fmt.Errorf("failed to mark as read: %w", err)
	}

	logger.Info().
		Int64("list_id", change.FavList.ID).
		Str("release_id", args[1]).
		Msg("Marked release as read")
	return nil
}

func parseListID(arg string) (int64, error) {
	var listID int64
	if _, err := fmt.Sscanf(arg, "%d", &listID); err != nil || listID <= 0 {
		return 0, fmt.Errorf("invalid list id: %s", arg)
	}
	return listID, nil
}
