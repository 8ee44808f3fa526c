package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rshade/userdir/internal/config"
)

func TestConfigInit_CreatesDefaultFile(t *testing.T) {
	isolateCLI(t)

	out, err := executeCLI(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized successfully")

	path, err := config.ConfigPath()
	require.NoError(t, err)
	assert.Contains(t, out, path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultPageSize, cfg.View.PageSize)
}

func TestConfigInit_ExistingFile(t *testing.T) {
	isolateCLI(t)

	_, err := executeCLI(t, "config", "init")
	require.NoError(t, err)

	_, err = executeCLI(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = executeCLI(t, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigInit_ExplicitPath(t *testing.T) {
	isolateCLI(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")

	out, err := executeCLI(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.FileExists(t, path)
}

func TestConfigShow_ReflectsOverrides(t *testing.T) {
	isolateCLI(t)
	t.Setenv("USERDIR_VIEW_PAGE_SIZE", "10")

	out, err := executeCLI(t, "config", "show")
	require.NoError(t, err)

	var shown config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &shown))
	assert.Equal(t, 10, shown.View.PageSize)
	assert.Equal(t, config.Default().Source.Endpoint, shown.Source.Endpoint)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		args    []string
		wantErr string
		wantOut []string
	}{
		{
			name:    "valid file",
			content: "view:\n  page_size: 10\n",
			wantOut: []string{"Configuration is valid"},
		},
		{
			name:    "verbose details",
			content: "view:\n  page_size: 15\n",
			args:    []string{"--verbose"},
			wantOut: []string{"Configuration is valid", "Page size: 15", "Query cache: stale after"},
		},
		{
			name:    "page size outside the enum",
			content: "view:\n  page_size: 7\n",
			wantErr: "View.PageSize must be one of [5 10 15], got 7",
		},
		{
			name:    "malformed YAML",
			content: "view: [unclosed\n",
			wantErr: "parsing config YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateCLI(t)
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			args := append([]string{"--config", path, "config", "validate"}, tt.args...)
			out, err := executeCLI(t, args...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.wantOut {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	isolateCLI(t)

	out, err := executeCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "userdir")
	assert.Contains(t, out, "development build")

	out, err = executeCLI(t, "version", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, "0.1.0-dev")
	assert.True(t, json.Valid([]byte(out)))
}
