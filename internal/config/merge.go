package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names.
const (
	keySource  = "source"
	keyCache   = "cache"
	keyView    = "view"
	keyOutput  = "output"
	keyLogging = "logging"
)

// knownTopLevelKeys lists the YAML keys that correspond to exported Config fields.
// Keys not in this list are silently ignored during merge.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var knownTopLevelKeys = map[string]bool{
	keySource:  true,
	keyCache:   true,
	keyView:    true,
	keyOutput:  true,
	keyLogging: true,
}

// MergeYAMLFile loads a YAML file and merges it onto target. Within a known
// section only the keys present in the file change; everything else keeps its
// current value.
func MergeYAMLFile(target *Config, path string) error {
	if target == nil {
		return errors.New("nil target *Config in MergeYAMLFile")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var overlay map[string]interface{}
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing config YAML from %s: %w", path, err)
	}

	// Empty or comment-only file: nothing to merge.
	if len(overlay) == 0 {
		return nil
	}

	for key, value := range overlay {
		if !knownTopLevelKeys[key] {
			continue
		}

		// Re-marshal the single section so we can unmarshal it onto the
		// strongly-typed target field.
		sectionBytes, marshalErr := yaml.Marshal(value)
		if marshalErr != nil {
			return fmt.Errorf("re-marshalling config section %q: %w", key, marshalErr)
		}

		if err = mergeSection(target, key, sectionBytes); err != nil {
			return fmt.Errorf("applying config section %q: %w", key, err)
		}
	}

	return nil
}

// mergeSection decodes data onto the matching field of target. yaml.v3 only
// assigns the struct fields present in data.
func mergeSection(target *Config, key string, data []byte) error {
	switch key {
	case keySource:
		return yaml.Unmarshal(data, &target.Source)
	case keyCache:
		return yaml.Unmarshal(data, &target.Cache)
	case keyView:
		return yaml.Unmarshal(data, &target.View)
	case keyOutput:
		return yaml.Unmarshal(data, &target.Output)
	case keyLogging:
		return yaml.Unmarshal(data, &target.Logging)
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
}
