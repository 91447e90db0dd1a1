package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return dir
}

func TestLoadWithEnv_FromFile(t *testing.T) {
	dir := writeConfig(t, `
env:
  serviceName: carrental
  log:
    level: debug
database:
  path: /tmp/test.db
  busyTimeoutMillis: 5000
auth:
  pbkdf2Iterations: 1000
`)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(cwd, dir)
	require.NoError(t, err)

	cfg, err := LoadWithEnv[Config]("test", rel)
	require.NoError(t, err)

	assert.Equal(t, "carrental", cfg.Env.ServiceName)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
	assert.Equal(t, "/tmp/test.db", cfg.Database.Path)
	assert.Equal(t, 5000, cfg.Database.BusyTimeoutMillis)
	assert.Equal(t, 1000, cfg.Auth.PBKDF2Iterations)
}

func TestLoadWithEnv_EnvOverride(t *testing.T) {
	dir := writeConfig(t, `
database:
  path: /tmp/from-file.db
`)

	t.Setenv("DATABASE_PATH", "/tmp/from-env.db")

	cwd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(cwd, dir)
	require.NoError(t, err)

	cfg, err := LoadWithEnv[Config]("test", rel)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/from-env.db", cfg.Database.Path)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.Error(t, err)
}
