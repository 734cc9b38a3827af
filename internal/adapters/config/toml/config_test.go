package toml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadExplicitFileMustExist(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoadMergesFileAndEnvironment(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SHELLCHAT_MAILBOX_CAPACITY", "4")

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
listen = "127.0.0.1:9000"

[sessions]
max = 5

[websocket]
listen = ":9001"

[log]
format = "json"
`), 0o600))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Listen)
	assert.Equal(t, 5, cfg.Sessions.Max)
	assert.Equal(t, 4, cfg.Mailbox.Capacity)
	assert.Equal(t, ":9001", cfg.WebSocket.Listen)
	assert.Equal(t, DefaultWebSocketPath, cfg.WebSocket.Path)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, DefaultShellPath, cfg.Shell.Path)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[sessions]\nmax = 0\n"), 0o600))

	_, err := Load(viper.New(), path)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{name: "defaults", mutate: func(*Config) {}, ok: true},
		{name: "websocket only", mutate: func(c *Config) { c.Listen = ""; c.WebSocket.Listen = ":9001" }, ok: true},
		{name: "no listener", mutate: func(c *Config) { c.Listen = "" }},
		{name: "zero mailbox", mutate: func(c *Config) { c.Mailbox.Capacity = 0 }},
		{name: "relative ws path", mutate: func(c *Config) { c.WebSocket.Path = "ws" }},
		{name: "unknown log format", mutate: func(c *Config) { c.Log.Format = "xml" }},
		{name: "future version", mutate: func(c *Config) { c.Version = currentSchemaVersion + 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
		})
	}
}

func TestWriteIsAtomicAndRespectsOverwrite(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir := filepath.Join(t.TempDir(), "nested")
	path := filepath.Join(dir, "config.toml")

	cfg := Default()
	cfg.Sessions.Max = 12
	require.NoError(t, Write(path, cfg, false))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(configFileMode), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	err = Write(path, Default(), false)
	require.ErrorIs(t, err, ErrConfigExists)

	loaded, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 12, loaded.Sessions.Max)

	require.NoError(t, Write(path, Default(), true))
	loaded, err = Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, Default(), loaded)
}
