package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables consulted by Load.
const (
	EnvConfig   = "EMD_STEGANO_CONFIG"
	EnvLogLevel = "EMD_STEGANO_LOG_LEVEL"
)

// Config is the complete emd-stegano configuration.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	// Default: info
	LogLevel string `yaml:"log_level"`

	// OutputSuffix is inserted before the extension of the cover image to
	// name the stego image when no output path is given.
	// Default: _EMD
	OutputSuffix string `yaml:"output_suffix"`

	// Search configures the blind group-size sweep.
	Search SearchConfig `yaml:"search"`
}

// SearchConfig configures the blind group-size sweep.
type SearchConfig struct {
	// MinGroupSize is the first group size tried.
	// Default: 2
	MinGroupSize int `yaml:"min_group_size"`

	// MaxGroupSize is the exclusive upper bound of the sweep.
	// Default: 20
	MaxGroupSize int `yaml:"max_group_size"`

	// Tolerance is the printable fraction a window needs to match.
	// Default: 0.90
	Tolerance float64 `yaml:"tolerance"`

	// Workers bounds how many group sizes are scanned at once.
	// Default: number of CPUs
	Workers int `yaml:"workers"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:     "info",
		OutputSuffix: "_EMD",
		Search: SearchConfig{
			MinGroupSize: 2,
			MaxGroupSize: 20,
			Tolerance:    0.90,
			Workers:      runtime.NumCPU(),
		},
	}
}

// Load resolves the configuration file from path, falling back to
// EMD_STEGANO_CONFIG, and applies environment overrides. An empty path with
// no environment variable yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
	}

	cfg := Default()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile merges the YAML file at path over c.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	var errs []error

	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.OutputSuffix == "" {
		errs = append(errs, errors.New("output_suffix must not be empty"))
	}
	if c.Search.MinGroupSize < 1 {
		errs = append(errs, fmt.Errorf("search.min_group_size must be >= 1, got %d", c.Search.MinGroupSize))
	}
	if c.Search.MaxGroupSize <= c.Search.MinGroupSize {
		errs = append(errs, fmt.Errorf("search.max_group_size (%d) must be greater than min_group_size (%d)",
			c.Search.MaxGroupSize, c.Search.MinGroupSize))
	}
	if c.Search.Tolerance <= 0 || c.Search.Tolerance > 1 {
		errs = append(errs, fmt.Errorf("search.tolerance must be in (0, 1], got %g", c.Search.Tolerance))
	}
	if c.Search.Workers < 1 {
		errs = append(errs, fmt.Errorf("search.workers must be >= 1, got %d", c.Search.Workers))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// ParseLevel maps a level name to its slog level. Matching ignores case.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", name)
}
