// Package config loads the optional kwtables.yml run configuration found at
// the root of a data repository.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the configuration file looked up at the validation root.
const DefaultFileName = "kwtables.yml"

// Config holds run configuration. The zero value is a valid configuration.
type Config struct {
	// Workers bounds per-file pipeline concurrency; 0 means one worker per CPU.
	Workers int `yaml:"workers"`
	// Languages restricts validation to the listed natural-language codes.
	Languages []string `yaml:"languages"`
	// Skip lists path glob patterns excluded from discovery.
	Skip []string `yaml:"skip"`
}

// Load reads and parses the configuration file from the given filesystem.
// A missing file yields the zero configuration, not an error.
func Load(fsys fs.FS, name string) (*Config, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config file %s: %w", name, err)
	}
	return Parse(data)
}

// Parse parses YAML configuration data.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("parse config: workers must be non-negative, got %d", cfg.Workers)
	}
	return &cfg, nil
}
