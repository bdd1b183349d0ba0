package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the configuration file looked up in the working directory
// and then in the home directory.
const FileName = ".aicommit.json"

// Config is the root configuration structure.
type Config struct {
	Prompt  PromptConfig `json:"prompt"`
	Filters FilterConfig `json:"filters"`
	Output  OutputConfig `json:"output"`
}

// PromptConfig holds prompt assembly options.
type PromptConfig struct {
	Variations          int  `json:"variations"`          // Default: 1
	MinDescriptionChars int  `json:"minDescriptionChars"` // Default: 10
	MaxDescriptionChars int  `json:"maxDescriptionChars"` // Default: 72
	IncludeSummary      bool `json:"includeSummary"`      // Default: true
}

// FilterConfig holds diff filtering options.
type FilterConfig struct {
	Exclude []string `json:"exclude"` // Glob patterns of files left out of the annotated diff
}

// OutputConfig holds output options.
type OutputConfig struct {
	Format string `json:"format"` // console, json, csv, markdown, ci
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Prompt: PromptConfig{
			Variations:          1,
			MinDescriptionChars: 10,
			MaxDescriptionChars: 72,
			IncludeSummary:      true,
		},
		Filters: FilterConfig{
			Exclude: []string{},
		},
		Output: OutputConfig{
			Format: "console",
		},
	}
}

// Validate checks that option values are usable.
func (c *Config) Validate() error {
	if c.Prompt.Variations < 1 {
		return fmt.Errorf("prompt.variations must be at least 1, got %d", c.Prompt.Variations)
	}
	if c.Prompt.MinDescriptionChars < 1 {
		return fmt.Errorf("prompt.minDescriptionChars must be positive, got %d", c.Prompt.MinDescriptionChars)
	}
	if c.Prompt.MaxDescriptionChars < c.Prompt.MinDescriptionChars {
		return fmt.Errorf("prompt.maxDescriptionChars (%d) is less than prompt.minDescriptionChars (%d)",
			c.Prompt.MaxDescriptionChars, c.Prompt.MinDescriptionChars)
	}
	return nil
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		candidates := []string{FileName}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, FileName))
		} else if envHome := os.Getenv("HOME"); envHome != "" {
			candidates = append(candidates, filepath.Join(envHome, FileName))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
