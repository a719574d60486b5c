// Package config handles configuration loading and validation for todo.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/todolist/internal/ui"
)

// Config holds the application configuration.
type Config struct {
	Theme         string `yaml:"theme"`
	Input         Input  `yaml:"input"`
	Titles        Titles `yaml:"titles"`
	ProgressWidth int    `yaml:"progress_width"`
}

// Input configures the entry field.
type Input struct {
	Placeholder string `yaml:"placeholder"`
	CharLimit   int    `yaml:"char_limit"` // 0 means unlimited
}

// Titles are the labels of the two views.
type Titles struct {
	Pending string `yaml:"pending"`
	Done    string `yaml:"done"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme: ui.ThemeClassic,
		Input: Input{
			Placeholder: "What needs to be done?",
			CharLimit:   200,
		},
		Titles: Titles{
			Pending: "To do",
			Done:    "Done",
		},
		ProgressWidth: 28,
	}
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "todo", "config.yaml")
}

// Load reads the config file at path on top of the defaults. A missing
// file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Titles.Pending == "" {
		c.Titles.Pending = defaults.Titles.Pending
	}
	if c.Titles.Done == "" {
		c.Titles.Done = defaults.Titles.Done
	}
	if c.ProgressWidth == 0 {
		c.ProgressWidth = defaults.ProgressWidth
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Input.CharLimit < 0 {
		return fmt.Errorf("input.char_limit cannot be negative")
	}
	if c.ProgressWidth < 5 {
		return fmt.Errorf("progress_width must be at least 5")
	}

	return criterio.ValidateStruct(
		criterio.Run("theme", c.Theme, knownTheme),
	)
}

func knownTheme(name string) error {
	if !ui.IsTheme(name) {
		return fmt.Errorf("unknown theme %q (want one of %v)", name, ui.Themes)
	}
	return nil
}

// YAML renders the effective configuration.
func (c *Config) YAML() ([]byte, error) {
	b, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return b, nil
}
