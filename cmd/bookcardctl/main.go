package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bookcard-io/bookcard-clients/internal/api"
	"github.com/bookcard-io/bookcard-clients/internal/config"
	"github.com/bookcard-io/bookcard-clients/pkg/version"
)

func init() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	cfgFile string
	debug   bool

	rootCmd = &cobra.Command{
		Use:   "bookcardctl",
		Short: "bookcardctl manages Bookcard download clients",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	initCmd = &cobra.Command{
		Use:   "init",
		Short: "Initialize a new config file",
		RunE:  runInit,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Show version information and check for updates",
		RunE: func(cmd *cobra.Command, args []string) error {
			return version.CheckForUpdates("bookcard-io", "bookcard-clients")
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	setupGroup := &cobra.Group{
		ID:    "setup",
		Title: "Configuration Commands:",
	}

	clientGroup := &cobra.Group{
		ID:    "clients",
		Title: "Download Client Commands:",
	}

	rootCmd.AddGroup(setupGroup, clientGroup)

	initCmd.GroupID = "setup"

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

// newAPIClient loads the configuration and builds the server client
// the subcommands share.
func newAPIClient() (*api.Client, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if cfg.APIKey == "" {
		log.Warn().Msg("no api key configured - requests may be rejected, run bookcardctl init")
	}
	return api.NewClient(cfg.ServerURL, cfg.APIKey, cfg.Timeout())
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := cfgFile
	if configPath == "" {
		path, err := config.DefaultPath()
		if err != nil {
			log.Error().Err(err).Msg("could not determine config path")
			return err
		}
		configPath = path
	}

	if _, err := os.Stat(configPath); err == nil {
		log.Error().Str("path", configPath).Msg("config file already exists")
		return fmt.Errorf("config file already exists at %s", configPath)
	}

	if dir := filepath.Dir(configPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Error().Err(err).Str("dir", dir).Msg("could not create config directory")
			return fmt.Errorf("could not create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(config.Default())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	configContent := `# bookcardctl configuration
#
# serverUrl points at your Bookcard server. The API key is found in
# the Bookcard web UI under Settings -> General.
#
# Values can also be supplied through the environment:
# BOOKCARD_SERVERURL, BOOKCARD_APIKEY, BOOKCARD_TIMEOUTSECONDS.

`
	configContent += string(data)

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	log.Info().Str("path", configPath).Msg("created new config file")
	log.Info().Msg("remember to edit the config file and add your Bookcard API key")
	return nil
}
