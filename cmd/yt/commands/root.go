package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/valksor/go-youtrack/internal/config"
	"github.com/valksor/go-youtrack/internal/log"
	"github.com/valksor/go-youtrack/youtrack"
)

var (
	cfg *config.Config

	// Global flags.
	verbose    bool
	jsonOutput bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "yt",
	Short: "YouTrack from the command line",
	Long: `yt talks to a YouTrack instance over its REST API.

It reads the instance URL and API token from .yt/config.yaml (in the home or
working directory) or from the YT_BASE_URL and YT_TOKEN environment variables.

Quick Start:
  yt issues --query "project: HD #Unresolved"
  yt issue HD-99
  yt issue create --project 0-0 --summary "Site is down"
  yt comment HD-99 "Fixed in the latest build"`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env first, so the config resolvers see its variables
		if err := config.LoadDotEnvFromCwd(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to load %s/%s: %v\n", config.YTDir, config.EnvFileName, err)
		}

		log.Configure(log.Options{
			Verbose: verbose,
		})

		var err error
		if configPath != "" {
			cfg, err = config.LoadFile(configPath)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		log.Debug("initialized", "verbose", verbose, "json", jsonOutput)
		return nil
	},
}

// Execute runs the root command with signal handling.
func Execute() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	return rootCmd.ExecuteContext(ctx)
}

// newAPIClient builds a client from the resolved configuration.
func newAPIClient() (*youtrack.Client, error) {
	baseURL, err := cfg.ResolveBaseURL()
	if err != nil {
		return nil, err
	}
	token, err := cfg.ResolveToken()
	if err != nil {
		return nil, err
	}
	return youtrack.NewClient(baseURL, token)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print raw JSON instead of formatted text")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config file")
}
