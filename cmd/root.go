package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/relwatch/relwatch/config"
	"github.com/relwatch/relwatch/xrel"
)

var (
	cfgFile     string
	accessToken string
	cfg         *config.Config
	logger      zerolog.Logger
	client      *xrel.Client
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "relwatch",
	Short: "A tool to follow scene and P2P releases through the xREL API",
	Long: `relwatch is a CLI tool for the xREL release catalog. It lists the latest
scene and P2P releases, searches the catalog, inspects releases and the works
behind them, and manages favorite lists for authenticated users.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&accessToken, "access-token", "", "OAuth2 access token for authenticated commands (env RELWATCH_TOKEN)")
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	opts := []xrel.Option{
		xrel.WithLogger(logger),
		xrel.WithTimeout(time.Duration(cfg.API.TimeoutSeconds) * time.Second),
	}

	if cfg.API.Format == "xml" {
		opts = append(opts, xrel.WithFormat(xrel.FormatXML))
	}

	if cfg.OAuth.ClientID != "" {
		opts = append(opts, xrel.WithOAuthApp(xrel.OAuthApp{
			ClientID:     cfg.OAuth.ClientID,
			ClientSecret: cfg.OAuth.ClientSecret,
			RedirectURI:  cfg.OAuth.RedirectURI,
			Scopes:       cfg.OAuth.Scopes,
		}))
	}

	// Token from flag or environment; the CLI never persists it itself.
	token := accessToken
	if token == "" {
		token = os.Getenv("RELWATCH_TOKEN")
	}
	if token != "" {
		opts = append(opts, xrel.WithToken(xrel.NewToken(token, "Bearer", 3600, "")))
	}

	client = xrel.New(opts...)
	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; colors only when writing to a real terminal
	noColor := !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// getFilterExpression resolves the --filter / --preset pair against the
// configured presets.
func getFilterExpression(filterExpr, preset string) (string, error) {
	if filterExpr != "" && preset != "" {
		return "", fmt.Errorf("--filter and --preset are mutually exclusive")
	}
	if preset != "" {
		expr, ok := cfg.Filters[preset]
		if !ok {
			return "", fmt.Errorf("unknown filter preset: %s", preset)
		}
		return expr, nil
	}
	return filterExpr, nil
}
