package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_ReadsYAML(t *testing.T) {
	path := writeConfigFile(t, `
balancer:
  tolerance: 1e-8
  max_denominator: 500
log:
  level: debug
  format: console
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.InDelta(t, 1e-8, cfg.Balancer.Tolerance, 0)
	assert.EqualValues(t, 500, cfg.Balancer.MaxDenominator)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	// Unset sections fall back to defaults.
	assert.InDelta(t, DefaultRedoxThreshold, cfg.Classifier.RedoxThreshold, 0)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	path := writeConfigFile(t, `
log:
  level: chatty
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFromEnv_DefaultsOnly(t *testing.T) {
	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.InDelta(t, DefaultBalancerTolerance, cfg.Balancer.Tolerance, 0)
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
}

func TestLoadFromEnv_Override(t *testing.T) {
	t.Setenv("REACTIONIQ_LOG_LEVEL", "warn")
	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestMustLoad_PanicsOnError(t *testing.T) {
	assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "absent.yaml")) })
}
