// Package config loads the optional YAML configuration file with the
// defaults for output and processing behavior. All fields have sensible
// zero-value defaults, so running without a config file is the common case.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Output struct {
		Top int `yaml:"top" json:"top" jsonschema:"default=100,minimum=1,description=Maximum number of ranked sequences printed per unit"`
	} `yaml:"output" json:"output" jsonschema:"description=Output configuration"`

	Processing struct {
		Workers    int      `yaml:"workers" json:"workers" jsonschema:"default=1,minimum=1,description=Default worker count when --threads is not given"`
		Extensions []string `yaml:"extensions" json:"extensions" jsonschema:"default=.txt,description=Accepted input file extensions"`
	} `yaml:"processing" json:"processing" jsonschema:"description=Processing configuration"`
}

// Default returns the configuration used when no config file is given
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// Load reads configuration from a YAML file, expanding environment
// variables in its content before parsing
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Output.Top == 0 {
		c.Output.Top = 100
	}
	if c.Processing.Workers == 0 {
		c.Processing.Workers = 1
	}
	if len(c.Processing.Extensions) == 0 {
		c.Processing.Extensions = []string{".txt"}
	}
}

func (c *Config) validate() error {
	if c.Output.Top < 1 {
		return fmt.Errorf("output.top must be positive, got %d", c.Output.Top)
	}
	if c.Processing.Workers < 1 {
		return fmt.Errorf("processing.workers must be positive, got %d", c.Processing.Workers)
	}
	for _, ext := range c.Processing.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}
	return nil
}
