package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// ratelimitCmd represents the ratelimit command
var ratelimitCmd = &cobra.Command{
	Use:   "ratelimit",
	Short: "Show the current API rate-limit state",
	Long: `Perform one cheap API call and print the rate-limit figures the service
reported on it. A value of -1 means the service did not report that figure.`,
	RunE: runRatelimit,
}

func init() {
	rootCmd.AddCommand(ratelimitCmd)
}

func runRatelimit(cmd *cobra.Command, args []string) error {
	// Any call works; categories is small and unauthenticated.
	if _, err := client.ReleaseCategories(context.Background()); err != nil {
		return fmt.Errorf("probe call failed: %w", err)
	}

	rl := client.RateLimit().Snapshot()
	fmt.Printf("limit:      %d requests/hour\n", rl.Limit)
	fmt.Printf("remaining:  %d\n", rl.Remaining)
	if rl.Reset >= 0 {
		fmt.Printf("resets at:  %s\n", time.Unix(rl.Reset, 0).Format(time.RFC1123))
	} else {
		fmt.Println("resets at:  unknown")
	}
	fmt.Printf("last call:  HTTP %d\n", rl.LastStatus)
	return nil
}
