package app

import (
	"errors"
	"fmt"
	"slices"

	"github.com/specialistvlad/puzzlegrid/internal/selector"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestPath string // hcl/yaml files, a file or a directory
	InputsPath   string // puzzle input files

	// Puzzles limits the run to the selected puzzles, in the given order.
	// Each entry is a puzzle name with an optional part, e.g. "guard[2]".
	Puzzles []string
	// Part runs a single part; 0 runs every part.
	Part        int
	SamplesOnly bool
	SkipSamples bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy with defaults applied.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputsPath == "" {
		return nil, errors.New("InputsPath is a required configuration field and cannot be empty")
	}
	if cfg.Part < 0 {
		return nil, fmt.Errorf("part must be 0 (all) or a positive part number, got %d", cfg.Part)
	}
	if _, err := selector.ParseAll(cfg.Puzzles); err != nil {
		return nil, err
	}
	if cfg.SamplesOnly && cfg.SkipSamples {
		return nil, errors.New("samples-only and skip-samples cannot be combined")
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if !slices.Contains(validLogLevels, cfg.LogLevel) {
		return nil, fmt.Errorf("invalid log level %q, want one of %v", cfg.LogLevel, validLogLevels)
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if !slices.Contains(validLogFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("invalid log format %q, want one of %v", cfg.LogFormat, validLogFormats)
	}

	return &cfg, nil
}
