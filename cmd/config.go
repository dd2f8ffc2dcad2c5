package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig holds the run-level configuration for a population run,
// loadable from a YAML file and overridable by individual CLI flags.
type RunConfig struct {
	Population int     `yaml:"population"`
	Seed       int64   `yaml:"seed"`
	Horizon    float64 `yaml:"horizon"`
	LogLevel   string  `yaml:"log_level"`
}

// LoadRunConfig reads and parses a YAML run configuration file.
func LoadRunConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run config: %w", err)
	}
	var cfg RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing run config: %w", err)
	}
	return &cfg, nil
}
