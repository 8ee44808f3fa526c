// Package config loads userdir settings from defaults, a YAML file, the
// environment and command-line flags, in increasing order of precedence.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rshade/userdir/internal/cache"
	"github.com/rshade/userdir/internal/directory"
	"github.com/rshade/userdir/internal/logging"
)

// Defaults.
const (
	DefaultPageSize      = 5
	DefaultBreakpoint    = 100
	DefaultOutputFormat  = "table"
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "json"
	configFileName       = "config.yaml"
	logFileName          = "userdir.log"
	outputTypeFile       = logging.OutputFile
	configFilePermission = 0o600
)

// Config is the complete userdir configuration.
type Config struct {
	Source  SourceConfig  `yaml:"source"`
	Cache   CacheConfig   `yaml:"cache"`
	View    ViewConfig    `yaml:"view"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// SourceConfig describes where users are fetched from.
type SourceConfig struct {
	// Endpoint is the users list URL.
	Endpoint string `yaml:"endpoint" validate:"required,url"`

	// Timeout bounds the HTTP request. Zero means no timeout.
	Timeout time.Duration `yaml:"timeout" validate:"gte=0"`
}

// CacheConfig controls how long a fetch result is reused within one run.
type CacheConfig struct {
	Enabled bool `yaml:"enabled"`

	// StaleTime is how long a fetched list is served before the next
	// refresh goes back to the network.
	StaleTime TTL `yaml:"stale_time" split_words:"true" validate:"ttl"`
}

// ViewConfig holds the initial view state.
type ViewConfig struct {
	// PageSize is the initial number of users per page.
	PageSize int `yaml:"page_size" split_words:"true" validate:"oneof=5 10 15"`

	// Breakpoint is the terminal width, in columns, above which the table
	// layout is used instead of cards.
	Breakpoint int `yaml:"breakpoint" validate:"min=20,max=1000"`
}

// OutputConfig controls non-interactive output.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" split_words:"true" validate:"oneof=table json ndjson"`
}

// LoggingConfig controls logging.
type LoggingConfig struct {
	Level  string `yaml:"level"  validate:"oneof=trace debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json console"`
	File   string `yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	logFile := ""
	if dir, err := GetConfigDir(); err == nil {
		logFile = filepath.Join(dir, "logs", logFileName)
	}
	return &Config{
		Source: SourceConfig{
			Endpoint: directory.DefaultEndpoint,
		},
		Cache: CacheConfig{
			Enabled:   true,
			StaleTime: TTL(cache.DefaultTTL),
		},
		View: ViewConfig{
			PageSize:   DefaultPageSize,
			Breakpoint: DefaultBreakpoint,
		},
		Output: OutputConfig{
			DefaultFormat: DefaultOutputFormat,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
			File:   logFile,
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (if it exists)
// and USERDIR_* environment variables, then validates it.
// An empty path means the default config file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		defaultPath, err := ConfigPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	if _, err := os.Stat(path); err == nil {
		if mergeErr := MergeYAMLFile(cfg, path); mergeErr != nil {
			return nil, mergeErr
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// New loads the default configuration, falling back to built-in defaults
// (with a logged warning) if the file or environment is invalid.
func New() *Config {
	cfg, err := Load("")
	if err != nil {
		logging.FromContext(context.Background()).Warn().
			Str("component", "config").
			Err(err).
			Msg("invalid configuration, using defaults")
		return Default()
	}
	return cfg
}

// Save writes cfg as YAML to path, creating the parent directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if writeErr := os.WriteFile(path, data, configFilePermission); writeErr != nil {
		return fmt.Errorf("writing config %s: %w", path, writeErr)
	}
	return nil
}
