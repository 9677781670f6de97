// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config loads the named sequences foldcheck operates on.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"code.hybscloud.com/fold"
)

var (
	// ErrNoSequences is returned when a file defines no sequences.
	ErrNoSequences = errors.New("config: no sequences defined")

	// ErrUnnamedSequence is returned for a sequence without a name.
	ErrUnnamedSequence = errors.New("config: sequence without name")

	// ErrDuplicateSequence is returned when two sequences share a name.
	ErrDuplicateSequence = errors.New("config: duplicate sequence name")
)

// Sequence is a named list of numbers. An empty list is allowed.
type Sequence struct {
	Name   string    `yaml:"name"`
	Values []float64 `yaml:"values"`
}

// Seq returns the values as a foldable sequence without copying.
func (s Sequence) Seq() fold.Seq[float64] {
	return fold.Of(s.Values...)
}

// Config is the content of a foldcheck YAML file.
type Config struct {
	Sequences []Sequence `yaml:"sequences"`
}

// Load reads and validates the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	slog.Debug("config loaded", "path", path, "sequences", len(cfg.Sequences))
	return cfg, nil
}

// Parse decodes and validates YAML content.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that there is at least one sequence and that names are
// present and unique.
func (c *Config) Validate() error {
	if len(c.Sequences) == 0 {
		return ErrNoSequences
	}
	seen := make(map[string]bool, len(c.Sequences))
	for i, s := range c.Sequences {
		if s.Name == "" {
			return fmt.Errorf("sequence %d: %w", i, ErrUnnamedSequence)
		}
		if seen[s.Name] {
			return fmt.Errorf("sequence %q: %w", s.Name, ErrDuplicateSequence)
		}
		seen[s.Name] = true
	}
	return nil
}
