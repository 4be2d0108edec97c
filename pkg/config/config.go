// Package config loads the optional recall.yaml file that tunes store
// dispatch and error reporting.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	recallerrors "github.com/go-drift/recall/pkg/errors"
	"github.com/go-drift/recall/pkg/reactive"
)

// FileName is the name of the configuration file.
const FileName = "recall.yaml"

// Config represents the optional recall.yaml configuration.
type Config struct {
	// Dispatch is the store dispatch policy: "immediate" or "queued".
	Dispatch string `yaml:"dispatch,omitempty"`
	// Recover makes stores recover panics raised by updaters.
	Recover bool `yaml:"recover,omitempty"`
	// Debug enables verbose error output and write tracing.
	Debug bool `yaml:"debug,omitempty"`
}

// LoadOptional reads recall.yaml from dir if present. A missing file yields
// the default configuration.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return Parse(data)
}

// Parse decodes and validates a configuration document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	c.Dispatch = strings.ToLower(strings.TrimSpace(c.Dispatch))
	if _, err := reactive.ParseDispatchPolicy(c.Dispatch); err != nil {
		return &recallerrors.StoreError{
			Op:    "config.Validate",
			Kind:  recallerrors.KindConfig,
			Field: "dispatch",
			Err:   err,
		}
	}
	return nil
}

// StoreOptions returns the store options described by the configuration.
func (c *Config) StoreOptions() []reactive.Option {
	policy, _ := reactive.ParseDispatchPolicy(c.Dispatch)
	return []reactive.Option{
		reactive.WithDispatch(policy),
		reactive.WithRecover(c.Recover),
	}
}

// Apply installs a LogHandler matching the Debug setting and toggles write
// tracing.
func (c *Config) Apply() {
	recallerrors.SetHandler(&recallerrors.LogHandler{Verbose: c.Debug})
	reactive.SetDebugMode(c.Debug)
}
