package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, int64(4<<20), cfg.Server.MaxBodyBytes)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 10_000, cfg.Cache.Size)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
server:
  addr: ":9999"
  read_timeout: 5s
  max_body_bytes: 1024
cache:
  enabled: false
log:
  level: debug
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, int64(1024), cfg.Server.MaxBodyBytes)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Untouched fields keep their defaults.
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 10_000, cfg.Cache.Size)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SANANMUUNNOS_ADDR", ":7777")
	t.Setenv("SANANMUUNNOS_LOG_LEVEL", "warn")
	t.Setenv("SANANMUUNNOS_MAX_BODY_BYTES", "2048")
	t.Setenv("SANANMUUNNOS_CACHE_SIZE", "50")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":7777", cfg.Server.Addr)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, int64(2048), cfg.Server.MaxBodyBytes)
	assert.Equal(t, 50, cfg.Cache.Size)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \":9999\"\n"), 0o644))
	t.Setenv("SANANMUUNNOS_ADDR", ":7777")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7777", cfg.Server.Addr)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a mapping"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)

	t.Setenv("SANANMUUNNOS_MAX_BODY_BYTES", "not-a-number")
	_, err = Load("")
	assert.Error(t, err)
}
