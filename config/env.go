package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// PreviewConfig configures the preview binary
type PreviewConfig struct {
	Generator GeneratorConfig

	// Seed 0 picks a time-based seed
	Seed  int64 `env:"ROGUE_SEED"`
	Depth int   `env:"ROGUE_DEPTH" envDefault:"1"`

	// Optional spawn table YAML replacing the embedded defaults
	TablesPath string `env:"ROGUE_TABLES"`
	Fullscreen bool   `env:"ROGUE_FULLSCREEN"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadPreviewConfig reads the preview configuration from the environment and
// validates it.
func LoadPreviewConfig() (PreviewConfig, error) {
	var cfg PreviewConfig
	if err := ParseEnv(&cfg); err != nil {
		return PreviewConfig{}, err
	}
	if err := cfg.Generator.Validate(); err != nil {
		return PreviewConfig{}, err
	}
	if cfg.Depth < 1 {
		return PreviewConfig{}, fmt.Errorf("ROGUE_DEPTH must be >= 1, got %d", cfg.Depth)
	}
	return cfg, nil
}
