package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultWidth is the inner width of the reveal box
	DefaultWidth = 40

	// DefaultDelayMS is the dramatic pause between stages
	DefaultDelayMS = 30
)

// Config represents the complete configuration for fanfare
type Config struct {
	// Presentation tuning
	Width   int  `toml:"width"`
	DelayMS int  `toml:"delay_ms"`
	NoColor bool `toml:"no_color"`
	Plain   bool `toml:"plain"`

	// Optional fields
	LogLevel string `toml:"log_level"`
	Verbose  bool   `toml:"verbose"` // CLI flag, not from config file
}

// Default returns a config with all defaults applied
func Default() *Config {
	return &Config{
		Width:   DefaultWidth,
		DelayMS: DefaultDelayMS,
	}
}

// Load loads configuration from fanfare.toml. A missing file is not an
// error: the performance must run with no setup at all, so defaults
// apply whenever no config is found.
//
// Load does not validate: flags may still override file values, so
// callers run Validate once the merge is complete.
func Load(startPath string) (*Config, error) {
	configPath, err := findConfigFile(startPath)
	if err != nil {
		return Default(), nil
	}

	configData, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if _, err := toml.Decode(string(configData), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// FindConfigFile returns the path of the fanfare.toml governing
// startPath, or an error if none exists. Watch mode uses this to know
// which file to follow.
func FindConfigFile(startPath string) (string, error) {
	return findConfigFile(startPath)
}

// findConfigFile searches for fanfare.toml starting from the given path
func findConfigFile(startPath string) (string, error) {
	// Convert to absolute path
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	// If startPath is a file, use it directly
	info, err := os.Stat(absPath)
	if err == nil && !info.IsDir() {
		return absPath, nil
	}

	// Search upward for fanfare.toml
	currentDir := absPath
	for {
		configPath := filepath.Join(currentDir, "fanfare.toml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		// Move to parent directory
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return "", fmt.Errorf("fanfare.toml not found")
}

// Validate checks that all tunables are within bounds
func (c *Config) Validate() error {
	var errors []string

	if c.Width < 20 || c.Width > 120 {
		errors = append(errors, fmt.Sprintf("width must be between 20 and 120, got %d", c.Width))
	}
	if c.DelayMS < 0 || c.DelayMS > 2000 {
		errors = append(errors, fmt.Sprintf("delay_ms must be between 0 and 2000, got %d", c.DelayMS))
	}
	if c.LogLevel != "" {
		switch strings.ToLower(c.LogLevel) {
		case "error", "warn", "info", "debug":
		default:
			errors = append(errors, fmt.Sprintf("invalid log_level: %s", c.LogLevel))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errors, ", "))
	}

	return nil
}
