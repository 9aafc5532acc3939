package mlfq

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	var nilConfig *Config
	assert.NoError(t, nilConfig.Validate())
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
clock:
  minCeiling: 50
  maxCeiling: 60
scheduler:
  ioChance: 0.1
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Clock.MinCeiling)
	assert.Equal(t, 60, cfg.Clock.MaxCeiling)
	assert.Equal(t, 0.1, cfg.Scheduler.IOChance)
	// 没写的保持默认
	assert.Equal(t, 2, cfg.Clock.MinQuantum)
	assert.Equal(t, 10, cfg.Population.MaxProcs)
	assert.Equal(t, 3, cfg.Scheduler.UnblockAttempts)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("clock: [1, 2"), 0o644))
	_, err = LoadConfig(path)
	assert.Error(t, err)

	path = filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("clock:\n  maxCeiling: 5\n"), 0o644))
	_, err = LoadConfig(path)
	assert.ErrorContains(t, err, "clock.ceiling")
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Population.MaxPriority = 11
	cfg.Scheduler.IOChance = 1.5
	cfg.Scheduler.UnblockAttempts = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "population.priority")
	assert.ErrorContains(t, err, "scheduler.ioChance")
	assert.ErrorContains(t, err, "scheduler.unblockAttempts")
}
