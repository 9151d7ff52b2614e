// Package config loads run configuration from file and environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything the pipeline needs beyond the input workbook.
// It is passed explicitly into the pipeline entry point; nothing reads it
// from ambient state.
type Config struct {
	// Endpoint is the model service POST target.
	Endpoint string `mapstructure:"endpoint"`
	// Headers are sent with every request, e.g. an Authorization bearer.
	Headers map[string]string `mapstructure:"headers"`
	// TimeoutSeconds bounds each submission request.
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
	// Dispatch controls whether envelopes are submitted at all; when
	// false only persistence to disk happens.
	Dispatch bool `mapstructure:"dispatch"`
	// LogLevel is a logrus level name.
	LogLevel string `mapstructure:"log_level"`
}

// Load reads configuration from an optional file path plus GRIDIN_*
// environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("endpoint", "")
	v.SetDefault("timeout_seconds", 30)
	v.SetDefault("dispatch", false)
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("GRIDIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field consistency.
func (c *Config) Validate() error {
	if c.Dispatch && c.Endpoint == "" {
		return errors.New("dispatch enabled but no endpoint configured")
	}
	if c.TimeoutSeconds < 0 {
		return errors.New("timeout_seconds must not be negative")
	}
	return nil
}
