// Package config loads fracalc settings from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/kbolino/fracalc"
)

// EnvVar names the environment variable that points at a config file.
const EnvVar = "FRACALC_CONFIG"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the calculator settings.
type Config struct {
	Prompt        string   `toml:"prompt" yaml:"prompt"`
	QuitWords     []string `toml:"quit_words" yaml:"quit_words"`
	Epsilon       float64  `toml:"epsilon" yaml:"epsilon"`
	MaxIterations int      `toml:"max_iterations" yaml:"max_iterations"`
	DecimalPlaces int      `toml:"decimal_places" yaml:"decimal_places"`
	Color         string   `toml:"color" yaml:"color"`
	HistoryFile   string   `toml:"history_file" yaml:"history_file"`
	LogLevel      string   `toml:"log_level" yaml:"log_level"`
	LogFormat     string   `toml:"log_format" yaml:"log_format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Prompt:        "> ",
		QuitWords:     []string{"q", "quit"},
		Epsilon:       fracalc.DefaultEpsilon,
		MaxIterations: fracalc.DefaultMaxIterations,
		DecimalPlaces: -1,
		Color:         ColorAuto,
		LogLevel:      "warn",
		LogFormat:     "text",
	}
}

// Load reads the file at path over the defaults. Files ending in .yaml or
// .yml are parsed as YAML, everything else as TOML. Environment variables in
// path and in history_file are expanded.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		_, err = toml.Decode(string(data), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.HistoryFile = os.ExpandEnv(cfg.HistoryFile)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by FRACALC_CONFIG, or else the first of
// ./fracalc.toml and $HOME/.config/fracalc/config.toml that exists. Without
// any file it returns the defaults.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}
	candidates := []string{"fracalc.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "fracalc", "config.toml"))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	var errs []error
	if c.Epsilon <= 0 || c.Epsilon >= 1 {
		errs = append(errs, fmt.Errorf("epsilon %g must be in (0, 1)", c.Epsilon))
	}
	if c.MaxIterations <= 0 {
		errs = append(errs, fmt.Errorf("max_iterations %d must be positive", c.MaxIterations))
	}
	if c.DecimalPlaces > 16 {
		errs = append(errs, fmt.Errorf("decimal_places %d must be at most 16", c.DecimalPlaces))
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, fmt.Errorf("color %q must be %s, %s or %s", c.Color, ColorAuto, ColorAlways, ColorNever))
	}
	if len(c.QuitWords) == 0 {
		errs = append(errs, errors.New("quit_words must not be empty"))
	}
	for _, w := range c.QuitWords {
		if strings.TrimSpace(w) == "" {
			errs = append(errs, errors.New("quit_words must not contain blank words"))
			break
		}
	}
	return errors.Join(errs...)
}

// Approximator returns the approximator described by c.
func (c *Config) Approximator() fracalc.Approximator {
	return fracalc.Approximator{Epsilon: c.Epsilon, MaxIterations: c.MaxIterations}
}
