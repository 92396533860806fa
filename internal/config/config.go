// Package config loads CLI configuration from a YAML file. The engine's
// style table and margins are a fixed contract and deliberately absent:
// only caller-side defaults live here.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-word2ieee/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrFieldTooLong   = errors.New("field exceeds maximum length")
)

// MaxPathLength bounds configured paths.
const MaxPathLength = 4096

// Config holds defaults the CLI applies when flags are absent.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Convert ConvertConfig `yaml:"convert"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // empty = same directory as the input
}

// ConvertConfig defines conversion defaults.
type ConvertConfig struct {
	TwoColumn bool `yaml:"twoColumn"` // default for --two-column
}

// Validate checks field bounds. Called by LoadConfig, but available for
// consumers who construct Config manually.
func (c *Config) Validate() error {
	if len(c.Output.DefaultDir) > MaxPathLength {
		return fmt.Errorf("%w: output.defaultDir (%d > %d)",
			ErrFieldTooLong, len(c.Output.DefaultDir), MaxPathLength)
	}
	return nil
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
