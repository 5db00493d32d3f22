// Package config loads the application configuration from a TOML file with
// environment variable overrides for deployment settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	// API server configuration
	Server ServerConfig `toml:"server"`

	// Salt cache configuration
	Salt SaltConfig `toml:"salt"`

	// Application configuration
	App AppConfig `toml:"app"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port           int    `toml:"port"`            // Listen port
	APIKey         string `toml:"api_key"`         // Static bearer token; empty disables auth
	RequestTimeout string `toml:"request_timeout"` // Per-request timeout (e.g., "30s")
}

// SaltConfig contains salt cache settings.
type SaltConfig struct {
	CacheFile string `toml:"cache_file"` // Path to the salt score snapshot
}

// AppConfig contains general application settings.
type AppConfig struct {
	DebugMode bool `toml:"debug_mode"` // Enable debug logging
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           8080,
			APIKey:         "",
			RequestTimeout: "30s",
		},
		Salt: SaltConfig{
			CacheFile: filepath.Join("data", "salt_cache.json"),
		},
		App: AppConfig{
			DebugMode: false,
		},
	}
}

// configPath returns the path to the configuration file.
func configPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".edh-companion")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.toml"), nil
}

// Load loads the configuration from disk, applying environment overrides.
// Returns the default config if no file exists.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()

	if data, err := os.ReadFile(path); err == nil {
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	config.applyEnv()
	return config, nil
}

// applyEnv lets deployment environments override file settings.
func (c *Config) applyEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil && p > 0 {
			c.Server.Port = p
		}
	}
	if key := os.Getenv("EDH_API_KEY"); key != "" {
		c.Server.APIKey = key
	}
	if file := os.Getenv("EDH_SALT_CACHE_FILE"); file != "" {
		c.Salt.CacheFile = file
	}
}

// Save writes the configuration to disk.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}
