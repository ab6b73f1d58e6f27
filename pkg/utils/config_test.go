package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edgedata/pkg/datafactory"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
datafactory:
  run_one_datapoint: true
  seed: 99
probe:
  threads: 2
  field: description
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.True(t, cfg.DataFactory.RunOneDatapoint)
	assert.Equal(t, uint64(99), cfg.DataFactory.Seed)
	assert.Equal(t, 3, cfg.DataFactory.MinLength, "unset keys keep defaults")
	assert.Equal(t, 2, cfg.Probe.Threads)
	assert.Equal(t, "description", cfg.Probe.Field)
	assert.Equal(t, "POST", cfg.Probe.Method)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "probe: [not, a, map]"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "probe:\n  timeout: soon\n"))
	assert.ErrorContains(t, err, "probe timeout")

	_, err = LoadConfig(writeConfig(t, "datafactory:\n  min_length: 10\n  max_length: 2\n"))
	assert.ErrorContains(t, err, "length range")

	_, err = LoadConfig(writeConfig(t, "datafactory:\n  max_length: 300\n"))
	assert.ErrorIs(t, err, datafactory.ErrInvalidArgument)

	cfg, err := LoadConfig(writeConfig(t, "datafactory:\n  max_length: 241\n"))
	require.NoError(t, err)
	assert.Equal(t, datafactory.MaxRandomLength, cfg.DataFactory.MaxLength)
}

func TestApplyEnv(t *testing.T) {
	cfg := DefaultConfig()

	t.Setenv(EnvRunOneDatapoint, "true")
	t.Setenv(EnvSeed, "12")
	require.NoError(t, cfg.ApplyEnv())
	assert.True(t, cfg.DataFactory.RunOneDatapoint)
	assert.Equal(t, uint64(12), cfg.DataFactory.Seed)

	t.Setenv(EnvRunOneDatapoint, "maybe")
	assert.Error(t, cfg.ApplyEnv())
}

func TestDurations(t *testing.T) {
	p := DefaultConfig().Probe

	timeout, err := p.TimeoutDuration()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, timeout)

	p.Delay = ""
	delay, err := p.DelayDuration()
	require.NoError(t, err)
	assert.Zero(t, delay)
}

func TestWriteFilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.json")
	require.NoError(t, WriteFile(path, []byte("{}")))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	assert.True(t, FileExists(path))
}
