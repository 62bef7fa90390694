// Package config handles loading and managing FarmSecure configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/farmsecure/farmsecure/pkg/scoring"
)

// Config is the top-level configuration for FarmSecure.
type Config struct {
	Scoring ScoringConfig `yaml:"scoring"`
	Display DisplayConfig `yaml:"display"`
	Logging LoggingConfig `yaml:"logging"`
	Batch   BatchConfig   `yaml:"batch"`
}

// ScoringConfig controls scoring behavior.
type ScoringConfig struct {
	Weights     map[string]int `yaml:"weights"`      // per-factor weight overrides
	InputPolicy string         `yaml:"input_policy"` // strict, clamp or passthrough
}

// DisplayConfig controls how results are rendered.
type DisplayConfig struct {
	Language string `yaml:"language"` // en, hi, te
	Output   string `yaml:"output"`   // text, json, markdown
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// BatchConfig controls parallel assessment.
type BatchConfig struct {
	Workers int `yaml:"workers"` // 0 = GOMAXPROCS
}

// Supported values for the enumerated settings.
var (
	Languages     = []string{"en", "hi", "te"}
	OutputFormats = []string{"text", "json", "markdown"}
	LogFormats    = []string{"json", "console"}
	LogLevels     = []string{"debug", "info", "warn", "error"}
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Scoring: ScoringConfig{
			Weights:     map[string]int{},
			InputPolicy: string(scoring.PolicyStrict),
		},
		Display: DisplayConfig{
			Language: "en",
			Output:   "text",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks enumerated settings and scoring weights.
func (c *Config) Validate() error {
	if _, err := c.Weights(); err != nil {
		return err
	}
	if _, err := scoring.ParseInputPolicy(c.Scoring.InputPolicy); err != nil {
		return err
	}
	if err := oneOf("display.language", c.Display.Language, Languages); err != nil {
		return err
	}
	if err := oneOf("display.output", c.Display.Output, OutputFormats); err != nil {
		return err
	}
	if err := oneOf("logging.level", c.Logging.Level, LogLevels); err != nil {
		return err
	}
	if err := oneOf("logging.format", c.Logging.Format, LogFormats); err != nil {
		return err
	}
	if c.Batch.Workers < 0 {
		return fmt.Errorf("batch.workers must be >= 0, got %d", c.Batch.Workers)
	}
	return nil
}

// Weights returns the default scoring weights with the configured overrides applied.
func (c *Config) Weights() (scoring.Weights, error) {
	return scoring.DefaultWeights().WithOverrides(c.Scoring.Weights)
}

// EngineOptions translates the scoring section into engine options.
func (c *Config) EngineOptions() ([]scoring.Option, error) {
	w, err := c.Weights()
	if err != nil {
		return nil, err
	}
	p, err := scoring.ParseInputPolicy(c.Scoring.InputPolicy)
	if err != nil {
		return nil, err
	}
	return []scoring.Option{scoring.WithWeights(w), scoring.WithPolicy(p)}, nil
}

// FindConfigFile looks for .farmsecure/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".farmsecure", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

func oneOf(field, v string, allowed []string) error {
	if v == "" {
		return nil
	}
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return fmt.Errorf("%s: unsupported value %q (want one of %v)", field, v, allowed)
}
