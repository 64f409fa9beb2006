package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv(_envConfigFile, "")

	provider, err := NewConfig()
	require.NoError(t, err)

	var idleMinutes int64
	require.NoError(t, provider.Get("daemon.idleTimeoutMinutes").Populate(&idleMinutes))
	assert.Equal(t, int64(5), idleMinutes)

	var command []string
	require.NoError(t, provider.Get("analyzer.command").Populate(&command))
	assert.Equal(t, []string{"ty", "server"}, command)

	var fallback []string
	require.NoError(t, provider.Get("analyzer.fallbackCommand").Populate(&fallback))
	assert.Equal(t, []string{"uvx", "ty", "server"}, fallback)

	var maxWarm int
	require.NoError(t, provider.Get("pool.maxWarmWorkspaces").Populate(&maxWarm))
	assert.Equal(t, 8, maxWarm)
}

func TestNewConfigLogLevelFromEnv(t *testing.T) {
	t.Setenv(_envConfigFile, "")
	t.Setenv("TYFIND_LOG_LEVEL", "debug")

	provider, err := NewConfig()
	require.NoError(t, err)

	var logging LoggingConfig
	require.NoError(t, provider.Get("logging").Populate(&logging))
	assert.Equal(t, "debug", logging.Level)
}

func TestNewConfigUserFileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tyfind.yaml")
	require.NoError(t, os.WriteFile(path, []byte("daemon:\n  idleTimeoutMinutes: 42\n"), 0o644))
	t.Setenv(_envConfigFile, path)

	provider, err := NewConfig()
	require.NoError(t, err)

	var idleMinutes int64
	require.NoError(t, provider.Get("daemon.idleTimeoutMinutes").Populate(&idleMinutes))
	assert.Equal(t, int64(42), idleMinutes)

	// Untouched keys keep their defaults.
	var timeoutSeconds int64
	require.NoError(t, provider.Get("daemon.requestTimeoutSeconds").Populate(&timeoutSeconds))
	assert.Equal(t, int64(30), timeoutSeconds)
}

func TestNewConfigMissingUserFile(t *testing.T) {
	t.Setenv(_envConfigFile, filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := NewConfig()
	assert.Error(t, err)
}
