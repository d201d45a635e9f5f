package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/gerunddev/orgbabel/internal/logger"
	"github.com/gerunddev/orgbabel/orgtable"
)

// Config holds defaults for the orgbabel command line
type Config struct {
	Encoding    string `yaml:"encoding"`
	DateFormat  string `yaml:"date_format,omitempty"`
	ActiveDates bool   `yaml:"active_dates"`
	AutoName    bool   `yaml:"auto_name"`
	LogLevel    string `yaml:"log_level"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Encoding:    orgtable.DefaultEncoding,
		DateFormat:  "",
		ActiveDates: false,
		AutoName:    false,
		LogLevel:    "warn",
	}
}

// ConfigPath returns the path to the config file
// Uses ~/.config on all platforms for consistency
// Can be overridden for testing
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to XDG if home dir unavailable
		return filepath.Join(xdg.ConfigHome, "orgbabel", "config.yaml")
	}
	return filepath.Join(home, ".config", "orgbabel", "config.yaml")
}

// Load reads configuration from the config file, falling back to defaults
func Load() (*Config, error) {
	return LoadFile(ConfigPath())
}

// LoadFile reads configuration from path; a missing file yields the defaults
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return default config if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Encoding == "" {
		cfg.Encoding = orgtable.DefaultEncoding
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to the config file
func (c *Config) Save() error {
	return c.SaveFile(ConfigPath())
}

// SaveFile writes configuration to configPath, creating its directory
func (c *Config) SaveFile(configPath string) error {
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if !orgtable.ValidEncoding(c.Encoding) {
		return fmt.Errorf("unknown encoding '%s'", c.Encoding)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level '%s': must be one of: debug, info, warn, error, fatal", c.LogLevel)
	}
	return nil
}
