// Package config handles configuration loading and validation for the
// nev-ttl tool. Configuration is optional: every field has a default and
// command-line flags override the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/sweeney/nev-ttl/internal/ttl"
)

// Config holds the complete tool configuration.
type Config struct {
	// DataDir is prepended to relative recording paths, so sessions can
	// be referenced by name. Empty means paths are used as given.
	DataDir string `toml:"data_dir"`

	// Load holds defaults for the core load operation.
	Load LoadConfig `toml:"load"`

	// Store holds pulse database settings.
	Store StoreConfig `toml:"store"`

	// Publish holds MQTT settings.
	Publish PublishConfig `toml:"publish"`

	// Serve holds result server settings.
	Serve ServeConfig `toml:"serve"`
}

// LoadConfig holds defaults for the core load operation.
type LoadConfig struct {
	// TimeUnit is "seconds" or "microseconds".
	TimeUnit string `toml:"time_unit"`

	// FindPulses enables per-channel pulse extraction.
	FindPulses bool `toml:"find_pulses"`
}

// StoreConfig holds pulse database settings.
type StoreConfig struct {
	Path string `toml:"path"`
}

// PublishConfig holds MQTT settings.
type PublishConfig struct {
	Broker string `toml:"broker"`
	Topic  string `toml:"topic"`
}

// ServeConfig holds result server settings.
type ServeConfig struct {
	HTTPAddr string `toml:"http_addr"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Load: LoadConfig{
			TimeUnit:   string(ttl.UnitSeconds),
			FindPulses: true,
		},
		Store: StoreConfig{
			Path: "pulses.db",
		},
		Publish: PublishConfig{
			Broker: "tcp://localhost:1883",
		},
		Serve: ServeConfig{
			HTTPAddr: ":8080",
		},
	}
}

// Load reads the TOML file at path over the defaults and validates the
// result. An empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration eagerly, before any load runs.
func (c *Config) Validate() error {
	switch ttl.TimeUnit(c.Load.TimeUnit) {
	case ttl.UnitSeconds, ttl.UnitMicroseconds:
	default:
		return fmt.Errorf("load.time_unit %q: %w", c.Load.TimeUnit, ttl.ErrBadTimeUnit)
	}
	if c.DataDir != "" {
		info, err := os.Stat(c.DataDir)
		if err != nil {
			return fmt.Errorf("data_dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("data_dir %s is not a directory", c.DataDir)
		}
	}
	return nil
}

// ResolveSource turns a recording path into an absolute-enough path:
// relative paths are joined onto DataDir when one is configured.
func (c *Config) ResolveSource(path string) string {
	if c.DataDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.DataDir, path)
}

// Options returns the core load options for this configuration.
func (c *Config) Options() ttl.Options {
	return ttl.Options{
		Unit:       ttl.TimeUnit(c.Load.TimeUnit),
		FindPulses: c.Load.FindPulses,
	}
}
