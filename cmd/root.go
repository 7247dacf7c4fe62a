package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rask0ln/hubgrab"
	"github.com/rask0ln/hubgrab/config"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *hubgrab.Client

	version   = "dev"
	buildTime = "unknown"

	// Command flags
	filterExpr string
	preset     string
	fetchAll   bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "hubgrab",
	Short: "A typed GitHub API client for listing and filtering repository data",
	Long: `hubgrab is a CLI for querying the GitHub REST API: list issues and
pull requests with server-side filters, follow pagination, and narrow
results further with client-side filter expressions.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion records the build metadata stamped in by the linker and
// exposes it through the --version flag.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
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

	rootCmd.AddCommand(testCmd)
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	client = hubgrab.NewClient(
		hubgrab.WithBaseURL(cfg.GitHub.URL),
		hubgrab.WithToken(cfg.GitHub.Token),
		hubgrab.WithUserAgent("hubgrab/"+version),
		hubgrab.WithLogger(logger),
	)

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
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

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; colors only when stderr is a real terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// splitRepo parses an "owner/repo" argument.
func splitRepo(arg string) (string, string, error) {
	parts := strings.SplitN(arg, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository %q: expected owner/repo", arg)
	}
	return parts[0], parts[1], nil
}

// getFilterExpression determines the client-side filter expression to
// use: flag > preset > config default > none.
func getFilterExpression() (string, error) {
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if presetFilter, ok := cfg.Filter.Presets[preset]; ok {
			return presetFilter, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return cfg.Filter.DefaultExpression, nil
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to the GitHub API",
	Long:  `Verify the configured endpoint and token by fetching the current rate limit.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing connection to %s...\n", cfg.GitHub.URL)

	ctx := context.Background()
	limits, err := hubgrab.Get[map[string]any](ctx, client, "/rate_limit", nil)
	if err != nil {
		return fmt.Errorf("connection test failed: %w", err)
	}

	fmt.Println("✓ Connection successful!")
	if rate, ok := (*limits)["rate"].(map[string]any); ok {
		fmt.Printf("- Rate limit: %v\n", rate["limit"])
		fmt.Printf("- Remaining:  %v\n", rate["remaining"])
	}
	if cfg.GitHub.Token == "" {
		fmt.Println("- Auth: anonymous (set github.token for higher limits)")
	} else {
		fmt.Println("- Auth: token")
	}

	return nil
}
