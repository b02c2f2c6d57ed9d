// Package config loads the settings of the treebench driver.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Input      string `yaml:"input"`
	Lines      int    `yaml:"lines"`
	Output     string `yaml:"output"`
	Seed       uint64 `yaml:"seed"`
	TraceLevel string `yaml:"trace_level"`
}

// DefaultConfig returns the settings used when no configuration file exists.
func DefaultConfig() Config {
	return Config{
		Lines:      1000,
		Output:     "output.txt",
		Seed:       1,
		TraceLevel: "Error",
	}
}

// Load reads a YAML configuration from path on top of the defaults. A missing
// file is not an error.
func Load(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return config, nil
}

// Validate checks the settings needed for a benchmark run.
func (c Config) Validate() error {
	if c.Input == "" {
		return errors.New("no input file given")
	}
	if c.Lines <= 0 {
		return fmt.Errorf("number of lines must be positive, got %d", c.Lines)
	}
	if c.Output == "" {
		return errors.New("no output file given")
	}
	return nil
}
