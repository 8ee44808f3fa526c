package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/userdir/internal/config"
	"github.com/rshade/userdir/internal/directory"
	"github.com/rshade/userdir/internal/logging"
)

// isolate points the config directory at a temp dir so the developer's own
// ~/.userdir never leaks into a test.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("USERDIR_HOME", home)
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// writeFile is a test helper that writes YAML content to a temp file
// and returns its path.
func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDefault(t *testing.T) {
	home := isolate(t)

	cfg := config.Default()

	assert.Equal(t, directory.DefaultEndpoint, cfg.Source.Endpoint)
	assert.Zero(t, cfg.Source.Timeout)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Cache.StaleTime.Duration())
	assert.Equal(t, 5, cfg.View.PageSize)
	assert.Equal(t, 100, cfg.View.Breakpoint)
	assert.Equal(t, "table", cfg.Output.DefaultFormat)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, filepath.Join(home, "logs", "userdir.log"), cfg.Logging.File)
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_DefaultPathInConfigDir(t *testing.T) {
	home := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("view:\n  page_size: 15\n"), 0600))

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.View.PageSize)
}

func TestLoad_FileKeepsUnsetKeys(t *testing.T) {
	isolate(t)
	path := writeFile(t, `
source:
  timeout: 3s
view:
  page_size: 10
unknown_section:
  foo: bar
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, cfg.Source.Timeout)
	assert.Equal(t, directory.DefaultEndpoint, cfg.Source.Endpoint, "endpoint not in file keeps default")
	assert.Equal(t, 10, cfg.View.PageSize)
	assert.Equal(t, 100, cfg.View.Breakpoint, "breakpoint not in file keeps default")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	path := writeFile(t, `
source:
  endpoint: http://file.example/users
view:
  page_size: 10
logging:
  level: warn
`)
	t.Setenv("USERDIR_SOURCE_ENDPOINT", "http://env.example/users")
	t.Setenv("USERDIR_VIEW_PAGE_SIZE", "15")
	t.Setenv("USERDIR_CACHE_STALE_TIME", "30s")
	t.Setenv("USERDIR_OUTPUT_DEFAULT_FORMAT", "ndjson")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://env.example/users", cfg.Source.Endpoint)
	assert.Equal(t, 15, cfg.View.PageSize)
	assert.Equal(t, 30*time.Second, cfg.Cache.StaleTime.Duration())
	assert.Equal(t, "ndjson", cfg.Output.DefaultFormat)
	assert.Equal(t, "warn", cfg.Logging.Level, "file value survives when env is unset")
}

func TestLoad_InvalidEnv(t *testing.T) {
	isolate(t)
	t.Setenv("USERDIR_VIEW_PAGE_SIZE", "lots")

	_, err := config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "USERDIR_*")
}

func TestLoad_InvalidYAML(t *testing.T) {
	isolate(t)
	path := writeFile(t, "view: [unterminated")

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config YAML")
}

func TestValidate(t *testing.T) {
	isolate(t)

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantMsg string
	}{
		{
			name:    "page size outside choices",
			mutate:  func(c *config.Config) { c.View.PageSize = 7 },
			wantMsg: "View.PageSize must be one of [5 10 15]",
		},
		{
			name:    "endpoint not a url",
			mutate:  func(c *config.Config) { c.Source.Endpoint = "not a url" },
			wantMsg: "Source.Endpoint must be a URL",
		},
		{
			name:    "empty endpoint",
			mutate:  func(c *config.Config) { c.Source.Endpoint = "" },
			wantMsg: "Source.Endpoint is required",
		},
		{
			name:    "unknown output format",
			mutate:  func(c *config.Config) { c.Output.DefaultFormat = "xml" },
			wantMsg: "Output.DefaultFormat must be one of",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *config.Config) { c.Logging.Format = "text" },
			wantMsg: "Logging.Format must be one of",
		},
		{
			name:    "stale time too short",
			mutate:  func(c *config.Config) { c.Cache.StaleTime = config.TTL(time.Millisecond) },
			wantMsg: "Cache.StaleTime must be between 1s and 24h0m0s, got 1ms",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *config.Config) { c.Source.Timeout = -time.Second },
			wantMsg: "Source.Timeout failed gte",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestSave_ThenLoad(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := config.Default()
	cfg.View.PageSize = 10
	cfg.Cache.StaleTime = config.TTL(90 * time.Second)
	require.NoError(t, cfg.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	if os.PathSeparator == '/' {
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	}

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestMergeYAMLFile(t *testing.T) {
	t.Run("nil target", func(t *testing.T) {
		err := config.MergeYAMLFile(nil, "unused")
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.MergeYAMLFile(config.Default(), filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading config file")
	})

	t.Run("comment only file is a no-op", func(t *testing.T) {
		isolate(t)
		target := config.Default()
		require.NoError(t, config.MergeYAMLFile(target, writeFile(t, "# nothing here\n")))
		assert.Equal(t, config.Default(), target)
	})

	t.Run("section with wrong shape", func(t *testing.T) {
		err := config.MergeYAMLFile(config.Default(), writeFile(t, "view: hello\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `applying config section "view"`)
	})
}

func TestGlobalConfig(t *testing.T) {
	isolate(t)

	cfg := config.GetGlobalConfig()
	require.NotNil(t, cfg)
	assert.Same(t, cfg, config.GetGlobalConfig())

	config.ResetGlobalConfigForTest()
	assert.NotSame(t, cfg, config.GetGlobalConfig())
}

func TestLoadGlobalConfig(t *testing.T) {
	isolate(t)

	require.NoError(t, config.LoadGlobalConfig(writeFile(t, "output:\n  default_format: json\nlogging:\n  level: debug\n")))
	assert.Equal(t, "json", config.GetDefaultOutputFormat())
	assert.Equal(t, "debug", config.GetGlobalConfig().Logging.Level)

	err := config.LoadGlobalConfig(writeFile(t, "view:\n  page_size: 3\n"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Equal(t, "json", config.GetDefaultOutputFormat(), "failed load keeps previous config")
}

func TestGetConfigDir(t *testing.T) {
	t.Run("USERDIR_HOME wins", func(t *testing.T) {
		t.Setenv("USERDIR_HOME", "/custom/home")
		dir, err := config.GetConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/custom/home", dir)
	})

	t.Run("falls back to home directory", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("USERDIR_HOME", "")
		t.Setenv("HOME", home)
		t.Setenv("USERPROFILE", home)

		dir, err := config.GetConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".userdir"), dir)

		path, err := config.ConfigPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".userdir", "config.yaml"), path)
	})
}

func TestEnsureLogDir(t *testing.T) {
	home := isolate(t)

	require.NoError(t, config.EnsureLogDir())

	stat, err := os.Stat(filepath.Join(home, "logs"))
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}

func TestEnsureLogDir_NoFileConfigured(t *testing.T) {
	isolate(t)
	config.GetGlobalConfig().Logging.File = ""

	assert.NoError(t, config.EnsureLogDir())
}

func TestToLoggingConfig(t *testing.T) {
	tests := []struct {
		name string
		in   config.LoggingConfig
		want logging.Config
	}{
		{
			name: "file configured",
			in:   config.LoggingConfig{Level: "debug", Format: "json", File: "/tmp/userdir.log"},
			want: logging.Config{Level: "debug", Format: "json", Output: logging.OutputFile, File: "/tmp/userdir.log"},
		},
		{
			name: "no file means stderr",
			in:   config.LoggingConfig{Level: "info", Format: "console"},
			want: logging.Config{Level: "info", Format: "console", Output: logging.OutputStderr},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.ToLoggingConfig())
		})
	}
}

func TestLoad_StaleTimeFormats(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		env     string
		want    time.Duration
		wantErr string
	}{
		{name: "yaml whole seconds", yaml: "cache:\n  stale_time: 300\n", want: 5 * time.Minute},
		{name: "yaml duration string", yaml: "cache:\n  stale_time: 1h30m\n", want: 90 * time.Minute},
		{name: "env whole seconds", env: "45", want: 45 * time.Second},
		{name: "env overrides yaml", yaml: "cache:\n  stale_time: 10m\n", env: "2m", want: 2 * time.Minute},
		{name: "yaml below minimum", yaml: "cache:\n  stale_time: 0\n", wantErr: "TTL must be between"},
		{name: "yaml not a duration", yaml: "cache:\n  stale_time: soon\n", wantErr: "invalid TTL format"},
		{name: "yaml not a scalar", yaml: "cache:\n  stale_time: [1, 2]\n", wantErr: "stale time must be a scalar"},
		{name: "env above maximum", env: "48h", wantErr: "USERDIR_*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			path := ""
			if tt.yaml != "" {
				path = writeFile(t, tt.yaml)
			}
			if tt.env != "" {
				t.Setenv("USERDIR_CACHE_STALE_TIME", tt.env)
			}

			cfg, err := config.Load(path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Cache.StaleTime.Duration())
		})
	}
}

func TestTTL_YAMLRoundTrip(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := config.Default()
	cfg.Cache.StaleTime = config.TTL(150 * time.Second)
	require.NoError(t, cfg.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "stale_time: 2m30s")
}
