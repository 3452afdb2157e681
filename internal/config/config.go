// Package config resolves the application configuration once at startup.
// The resolved value is passed into the sync layer as an explicit
// dependency; nothing below this package reads the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const appName = "havenmind"

// Config carries everything the client needs. APIBaseURL is the single
// setting that matters: its absence switches the whole process into mock
// mode. The choice is made here, once, and never re-evaluated.
type Config struct {
	APIBaseURL string `json:"apiBaseUrl" mapstructure:"api_base_url"`
	LogLevel   string `json:"logLevel" mapstructure:"log_level"`
}

// Mock reports whether the client should serve the built-in dataset.
func (c *Config) Mock() bool {
	return c.APIBaseURL == ""
}

// Load reads configuration from an optional .havenmind.json and the
// HAVENMIND_* environment, environment winning.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(fmt.Sprintf(".%s", appName))
	v.SetConfigType("json")
	v.AddConfigPath("$HOME")
	v.AddConfigPath(fmt.Sprintf("$HOME/.config/%s", appName))
	v.SetEnvPrefix(strings.ToUpper(appName))
	v.AutomaticEnv()

	v.SetDefault("api_base_url", "")
	v.SetDefault("log_level", "info")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.APIBaseURL = strings.TrimSpace(cfg.APIBaseURL)
	return cfg, nil
}
