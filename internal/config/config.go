// Package config loads the bookcardctl configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds the connection settings for the Bookcard server.
type Config struct {
	// ServerURL is the base URL of the Bookcard server
	ServerURL string `yaml:"serverUrl" mapstructure:"serverUrl"`
	// APIKey is sent as X-Api-Key on every request
	APIKey string `yaml:"apiKey" mapstructure:"apiKey"`
	// TimeoutSeconds bounds each HTTP request made by the CLI
	TimeoutSeconds int `yaml:"timeoutSeconds" mapstructure:"timeoutSeconds"`
}

// Default returns the configuration written by `bookcardctl init`.
func Default() Config {
	return Config{
		ServerURL:      "http://localhost:8337",
		APIKey:         "",
		TimeoutSeconds: 30,
	}
}

// Timeout returns the configured request timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Load reads the configuration from the given file, or searches the
// current directory and ~/.config/bookcardctl/ when path is empty.
// BOOKCARD_* environment variables override file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("serverUrl", Default().ServerURL)
	v.SetDefault("timeoutSeconds", Default().TimeoutSeconds)
	v.SetEnvPrefix("bookcard")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "bookcardctl"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		// a missing config file is fine when searching: defaults and
		// environment variables still apply
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// DefaultPath returns ~/.config/bookcardctl/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "bookcardctl", "config.yaml"), nil
}
