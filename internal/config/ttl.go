package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rshade/userdir/internal/cache"
)

// TTL is a cache lifetime. YAML and USERDIR_* values accept whole seconds
// ("300") or a duration string ("5m", "1h30m").
type TTL time.Duration

// Duration returns t as a time.Duration.
func (t TTL) Duration() time.Duration {
	return time.Duration(t)
}

func (t TTL) String() string {
	return time.Duration(t).String()
}

// MarshalYAML writes the duration string form.
func (t TTL) MarshalYAML() (any, error) {
	return t.String(), nil
}

// UnmarshalYAML reads a scalar through cache.ParseTTL.
func (t *TTL) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: stale time must be a scalar", node.Line)
	}
	return t.Decode(node.Value)
}

// Decode implements envconfig.Decoder.
func (t *TTL) Decode(value string) error {
	d, err := cache.ParseTTL(value)
	if err != nil {
		return err
	}
	*t = TTL(d)
	return nil
}

// validateTTL backs the "ttl" validation tag.
func validateTTL(d time.Duration) bool {
	return cache.ValidateTTL(d) == nil
}
