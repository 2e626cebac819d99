// Package config loads the bench configuration: which binary to drive,
// which structures to feed it, and where results land.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the bench configuration file.
type Config struct {
	// Binary is the instrumented RNAView executable to bench.
	Binary string `yaml:"binary"`
	// Args are extra arguments passed before each input path.
	Args []string `yaml:"args,omitempty"`
	// Inputs are the structure files to bench, one bench case each.
	Inputs []string `yaml:"inputs"`
	// Runs is the number of measured runs per input.
	Runs int `yaml:"runs"`
	// Warmup is the number of discarded runs before measurement.
	Warmup int `yaml:"warmup"`
	// TimeoutSeconds bounds a single run; zero disables the bound.
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`
	// HistoryDB is the SQLite file bench runs are archived to.
	// Empty disables the archive.
	HistoryDB string `yaml:"history_db,omitempty"`
	// Revision overrides the auto-detected git revision recorded with
	// each archived run.
	Revision string `yaml:"revision,omitempty"`
}

// Load reads, defaults, and validates the configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Runs == 0 {
		c.Runs = 3
	}
}

func (c *Config) validate() error {
	if c.Binary == "" {
		return fmt.Errorf("binary is required")
	}
	if len(c.Inputs) == 0 {
		return fmt.Errorf("at least one input is required")
	}
	if c.Runs < 1 {
		return fmt.Errorf("runs must be >= 1, got %d", c.Runs)
	}
	if c.Warmup < 0 {
		return fmt.Errorf("warmup must be >= 0, got %d", c.Warmup)
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must be >= 0, got %d", c.TimeoutSeconds)
	}
	return nil
}
