package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/relwatch/relwatch/xrel"
)

var (
	infoByDirname bool
	infoP2P       bool
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <id-or-dirname>",
	Short: "Show one release",
	Long: `Show a single release. By default the argument is treated as an API id;
pass --dirname to look it up by its directory name instead, or --p2p for
P2P releases.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

// mediaCmd shows a creative work with its media
var mediaCmd = &cobra.Command{
	Use:   "media <ext-info-id>",
	Short: "Show a movie/show/game and its media items",
	Args:  cobra.ExactArgs(1),
	RunE:  runMedia,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(mediaCmd)

	infoCmd.Flags().BoolVar(&infoByDirname, "dirname", false, "treat the argument as a dirname")
	infoCmd.Flags().BoolVar(&infoP2P, "p2p", false, "look up a P2P release")
}

func runInfo(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	opts := xrel.ReleaseInfoOptions{}
	if infoByDirname {
		opts.Dirname = args[0]
	} else {
		opts.ID = args[0]
	}

	if infoP2P {
		release, err := client.P2pReleaseInfo(ctx, opts)
		if err != nil {
			return fmt.Errorf("failed to fetch release: %w", err)
		}
		fmt.Printf("P2P release %s\n", release.Dirname)
		fmt.Printf("  id:        %s\n", release.ID)
		fmt.Printf("  group:     %s\n", release.GroupName)
		fmt.Printf("  published: %s\n", time.Unix(release.PubTime, 0).Format(time.RFC1123))
		if release.Category != nil {
			fmt.Printf("  category:  %s/%s\n", release.Category.MetaCat, release.Category.SubCat)
		}
		return nil
	}

	release, err := client.ReleaseInfo(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to fetch release: %w", err)
	}

	fmt.Printf("Release %s\n", release.Dirname)
	fmt.Printf("  id:    %s\n", release.ID)
	fmt.Printf("  group: %s\n", release.GroupName)
	fmt.Printf("  time:  %s\n", time.Unix(release.Time, 0).Format(time.RFC1123))
	if release.Size.Number > 0 {
		fmt.Printf("  size:  %d %s\n", release.Size.Number, release.Size.Unit)
	}
	if release.NukeReason != "" {
		fmt.Printf("  NUKED: %s\n", release.NukeReason)
	}
	if release.ExtInfo != nil {
		fmt.Printf("  work:  %s (%s)\n", release.ExtInfo.Title, release.ExtInfo.Type)
	}
	return nil
}

func runMedia(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	info, err := client.ExtInfoDetails(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch ext info: %w", err)
	}

	fmt.Printf("%s (%s)\n", info.Title, info.Type)
	if info.Genre != "" {
		fmt.Printf("  genre:  %s\n", info.Genre)
	}
	if info.Rating > 0 {
		fmt.Printf("  rating: %.1f (%d votes)\n", info.Rating, info.NumRatings)
	}

	media, err := client.ExtInfoMediaItems(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch media: %w", err)
	}
	for _, item := range media {
		url := item.URLFull
		if url == "" {
			url = item.VideoURL
		}
		fmt.Printf("  [%s] %s %s\n", item.Type, item.Description, url)
	}
	return nil
}
