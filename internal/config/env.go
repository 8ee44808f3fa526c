package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment override, e.g. USERDIR_SOURCE_ENDPOINT.
const EnvPrefix = "USERDIR"

// ApplyEnv overlays USERDIR_* environment variables onto cfg. Variables that
// are not set leave the current values untouched.
func ApplyEnv(cfg *Config) error {
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return fmt.Errorf("reading %s_* environment: %w", EnvPrefix, err)
	}
	return nil
}
