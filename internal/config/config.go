// Package config loads telemetry reporter settings from file or
// environment in the usual viper search order.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the telemetry reporter configuration
type Config struct {
	FlushIntervalSeconds int  `mapstructure:"flush_interval_seconds"`
	DumpOnFlush          bool `mapstructure:"dump_on_flush"`
	Verbosity            int  `mapstructure:"verbosity"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		FlushIntervalSeconds: 30,    // periodic telemetry flush
		DumpOnFlush:          false, // text dump is diagnostic-only
		Verbosity:            0,     // warn
	}
}

// FlushInterval returns the flush interval as a duration, falling back
// to the default when the configured value is zero or negative.
func (c *Config) FlushInterval() time.Duration {
	if c.FlushIntervalSeconds <= 0 {
		return time.Duration(DefaultConfig().FlushIntervalSeconds) * time.Second
	}
	return time.Duration(c.FlushIntervalSeconds) * time.Second
}

// LoadConfig loads configuration from file or creates default config
func LoadConfig() (*Config, error) {
	config := DefaultConfig()

	// Set config file name and type
	viper.SetConfigName("dppmetrics")
	viper.SetConfigType("yaml")

	// Add config paths in order of priority
	if homeDir, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(homeDir, ".config", "dppmetrics"))
		viper.AddConfigPath(homeDir) // for .dppmetrics.yaml
	}
	viper.AddConfigPath("/etc/dppmetrics")
	viper.AddConfigPath(".")

	// Set environment variable prefix
	viper.SetEnvPrefix("DPPMETRICS")
	viper.AutomaticEnv()

	// Try to read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found - use defaults (not an error)
			return config, nil
		}
		// Config file was found but another error occurred (parse error, permission, etc.)
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal config
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves the current configuration to file
func SaveConfig(config *Config) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("cannot get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "dppmetrics")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, "dppmetrics.yaml")

	// Set values in viper
	viper.Set("flush_interval_seconds", config.FlushIntervalSeconds)
	viper.Set("dump_on_flush", config.DumpOnFlush)
	viper.Set("verbosity", config.Verbosity)

	// Write config file
	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("cannot write config file: %w", err)
	}

	return nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	if viper.ConfigFileUsed() != "" {
		return viper.ConfigFileUsed()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "~/.config/dppmetrics/dppmetrics.yaml"
	}

	return filepath.Join(homeDir, ".config", "dppmetrics", "dppmetrics.yaml")
}
