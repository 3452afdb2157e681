// Package cmd is presentation glue: it wires the config, client, cache
// and mutation controllers together and renders their output. No sync
// logic lives here.
package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hsiehdog/havenmind-front/internal/api"
	"github.com/hsiehdog/havenmind-front/internal/config"
	"github.com/hsiehdog/havenmind-front/internal/querycache"
)

var (
	cfg    *config.Config
	client *api.Client
	cache  *querycache.Cache
)

var rootCmd = &cobra.Command{
	Use:   "havenmind",
	Short: "HavenMind home-maintenance assistant",
	Long: `Terminal front end for the HavenMind home-maintenance assistant.
Without HAVENMIND_API_BASE_URL set it runs against a built-in mock dataset.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
			log.SetLevel(level)
		}

		client = api.NewClient(cfg.APIBaseURL)
		cache = querycache.New()
		if client.Mock() {
			log.Debug("no API base URL configured, using mock dataset")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if cache != nil {
			cache.Close()
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
