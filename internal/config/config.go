package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	// Catalog API key, from the API_KEY environment variable.
	APIKey string

	// Submission session credential, from the SESSION_ID environment
	// variable.
	SessionID string

	// Retry pacing. Defaults match the observed service behavior; tests
	// zero them for determinism.
	AcceptDelay    time.Duration
	RejectDelay    time.Duration
	RateLimitDelay time.Duration
	ErrorDelay     time.Duration

	// CountRejectedAsAttempt makes a zero-accepted submission consume an
	// attempt slot instead of retrying it.
	CountRejectedAsAttempt bool
}

// Load reads configuration from the default config file locations and the
// environment.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile reads configuration like Load but from an explicit config file
// when path is non-empty. The default locations are optional; an explicit
// path must exist.
func LoadFile(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(configDir())
		v.AddConfigPath(".")
		_ = v.ReadInConfig()
	}

	v.SetDefault("accept_delay", "1s")
	v.SetDefault("reject_delay", "2s")
	v.SetDefault("rate_limit_delay", "5s")
	v.SetDefault("error_delay", "2s")
	v.SetDefault("count_rejected_as_attempt", false)

	// Credentials come from the environment under the service's own
	// variable names, no prefix.
	_ = v.BindEnv("api_key", "API_KEY")
	_ = v.BindEnv("session_id", "SESSION_ID")
	v.AutomaticEnv()

	return &Config{
		APIKey:                 v.GetString("api_key"),
		SessionID:              v.GetString("session_id"),
		AcceptDelay:            v.GetDuration("accept_delay"),
		RejectDelay:            v.GetDuration("reject_delay"),
		RateLimitDelay:         v.GetDuration("rate_limit_delay"),
		ErrorDelay:             v.GetDuration("error_delay"),
		CountRejectedAsAttempt: v.GetBool("count_rejected_as_attempt"),
	}, nil
}

// Validate checks that both credentials are present.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("API_KEY is not set")
	}
	if c.SessionID == "" {
		return fmt.Errorf("SESSION_ID is not set")
	}
	return nil
}

// configDir returns the configuration directory path.
func configDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(homeDir, ".config", "scrobloop")
}
