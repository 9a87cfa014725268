package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(old))
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, LogLevelInfo, cfg.LogLevel)
	assert.Equal(t, LogFormatText, cfg.LogFormat)
	assert.False(t, cfg.Quiet)
	assert.Equal(t, "xml", cfg.Format)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid defaults",
			mutate: func(*Config) {},
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: "invalid log level",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.LogFormat = "xml" },
			wantErr: "invalid log format",
		},
		{
			name:    "bad default format",
			mutate:  func(c *Config) { c.Format = "yaml" },
			wantErr: "invalid default format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfig_EffectiveLogLevel(t *testing.T) {
	cfg := Default()
	assert.Equal(t, LogLevelInfo, cfg.EffectiveLogLevel())

	cfg.Quiet = true
	assert.Equal(t, LogLevelError, cfg.EffectiveLogLevel())
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(nil, "")
	require.NoError(t, err)

	assert.Equal(t, LogLevelInfo, cfg.LogLevel)
	assert.Equal(t, "xml", cfg.Format)
	assert.Empty(t, cfg.ConfigFile)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log-level: debug\nformat: csv\n"), 0o644)) //nolint:gosec // test

	cfg, err := Load(nil, path)
	require.NoError(t, err)

	assert.Equal(t, LogLevelDebug, cfg.LogLevel)
	assert.Equal(t, "csv", cfg.Format)
	assert.Equal(t, path, cfg.ConfigFile)
}

func TestLoad_ExplicitConfigFileMissing(t *testing.T) {
	_, err := Load(nil, filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoad_AutoDiscovery(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".sitemapgen.yaml"), []byte("format: json\n"), 0o644)) //nolint:gosec // test
	chdir(t, dir)

	cfg, err := Load(nil, "")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
}

func TestLoad_Environment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SITEMAPGEN_LOG_LEVEL", "warn")

	cfg, err := Load(nil, "")
	require.NoError(t, err)
	assert.Equal(t, LogLevelWarn, cfg.LogLevel)
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log-level: debug\n"), 0o644)) //nolint:gosec // test

	cmd := &cobra.Command{Use: "test"}
	cmd.PersistentFlags().String("log-level", "info", "")
	require.NoError(t, cmd.PersistentFlags().Set("log-level", "error"))

	cfg, err := Load(cmd, path)
	require.NoError(t, err)
	assert.Equal(t, LogLevelError, cfg.LogLevel)
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: yaml\n"), 0o644)) //nolint:gosec // test

	_, err := Load(nil, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid default format")
}

func TestContextRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Format = "csv"

	ctx := NewContext(context.Background(), cfg)
	assert.Same(t, cfg, FromContext(ctx))

	// Fallback when no config is attached.
	assert.Equal(t, Default(), FromContext(context.Background()))
}
