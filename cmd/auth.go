package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relwatch/relwatch/xrel"
)

// authCmd represents the auth command group
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "OAuth2 flows for obtaining an access token",
	Long: `Obtain an xREL OAuth2 token. The token is printed for you to store;
relwatch keeps no state on disk. Pass it back with --access-token or the
RELWATCH_TOKEN environment variable.`,
}

var authURLCmd = &cobra.Command{
	Use:   "url",
	Short: "Print the browser URL to authorize this application",
	RunE: func(cmd *cobra.Command, args []string) error {
		authURL, err := client.AuthorizationURL()
		if err != nil {
			return err
		}
		fmt.Println(authURL)
		return nil
	},
}

var authExchangeCmd = &cobra.Command{
	Use:   "exchange <code>",
	Short: "Exchange an authorization code for a token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := client.ExchangeCode(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("token exchange failed: %w", err)
		}
		printToken(token.AccessToken, token.RefreshToken, token.RemainingSeconds())
		return nil
	},
}

var authRefreshCmd = &cobra.Command{
	Use:   "refresh <refresh-token>",
	Short: "Trade a refresh token for a fresh access token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Wrap the bare refresh token; the access part is unused here.
		old := xrel.NewToken("", "Bearer", 0, args[0])
		token, err := client.RefreshToken(context.Background(), old)
		if err != nil {
			return fmt.Errorf("token refresh failed: %w", err)
		}
		printToken(token.AccessToken, token.RefreshToken, token.RemainingSeconds())
		return nil
	},
}

var authAppCmd = &cobra.Command{
	Use:   "app-token",
	Short: "Obtain an application token (client_credentials, no user)",
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := client.AppToken(context.Background())
		if err != nil {
			return fmt.Errorf("failed to obtain app token: %w", err)
		}
		printToken(token.AccessToken, token.RefreshToken, token.RemainingSeconds())
		return nil
	},
}

var authWhoAmICmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the account behind the current token",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := client.UserInfo(context.Background())
		if err != nil {
			return fmt.Errorf("failed to fetch user: %w", err)
		}
		fmt.Printf("%s (id %s)\n", user.Name, user.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authURLCmd)
	authCmd.AddCommand(authExchangeCmd)
	authCmd.AddCommand(authRefreshCmd)
	authCmd.AddCommand(authAppCmd)
	authCmd.AddCommand(authWhoAmICmd)
}

func printToken(access, refresh string, remaining int64) {
	fmt.Printf("access_token:  %s\n", access)
	if refresh != "" {
		fmt.Printf("refresh_token: %s\n", refresh)
	}
	fmt.Printf("expires_in:    %ds\n", remaining)
}
