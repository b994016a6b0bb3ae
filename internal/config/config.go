package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/xyproto/env/v2"

	"github.com/homier/chainmap"
	"github.com/homier/chainmap/internal/logutil"
)

const (
	EnvCapacity        = "CHAINMAP_CAPACITY"
	EnvExpectedEntries = "CHAINMAP_EXPECTED_ENTRIES"
	EnvLogLevel        = "CHAINMAP_LOG_LEVEL"
	EnvLogFile         = "CHAINMAP_LOG_FILE"
)

// Config holds the demo command settings.
type Config struct {
	// Initial number of buckets. Zero picks one from ExpectedEntries, or the
	// library default.
	Capacity        int `toml:"capacity"`
	ExpectedEntries int `toml:"expected-entries"`

	Log logutil.LogConfig `toml:"log"`
}

func Default() Config {
	return Config{
		Log: logutil.DefaultLogConfig(),
	}
}

// Load reads the TOML file at path, if any, then applies environment
// overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// applyEnv re-reads the process environment, so variables set after an
// earlier Load are picked up.
func (c *Config) applyEnv() error {
	env.Load()

	var err error
	if c.Capacity, err = envInt(EnvCapacity, c.Capacity); err != nil {
		return err
	}

	if c.ExpectedEntries, err = envInt(EnvExpectedEntries, c.ExpectedEntries); err != nil {
		return err
	}

	c.Log.Level = env.Str(EnvLogLevel, c.Log.Level)
	c.Log.Filename = env.Str(EnvLogFile, c.Log.Filename)

	return nil
}

// envInt returns def when name is unset and fails on a value that is not
// an integer.
func envInt(name string, def int) (int, error) {
	if !env.Has(name) {
		return def, nil
	}

	v, err := strconv.Atoi(strings.TrimSpace(env.Str(name)))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}

	return v, nil
}

func (c Config) Validate() error {
	if c.Capacity < 0 {
		return fmt.Errorf("capacity must not be negative, got %d", c.Capacity)
	}

	if c.ExpectedEntries < 0 {
		return fmt.Errorf("expected-entries must not be negative, got %d", c.ExpectedEntries)
	}

	return c.Log.Validate()
}

// MapCapacity resolves the capacity handed to chainmap.New.
func (c Config) MapCapacity() int {
	switch {
	case c.Capacity > 0:
		return c.Capacity
	case c.ExpectedEntries > 0:
		return chainmap.CapacityFor(c.ExpectedEntries)
	default:
		return chainmap.DefaultCapacity
	}
}
