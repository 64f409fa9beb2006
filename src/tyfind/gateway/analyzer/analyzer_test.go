package analyzer

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally/v4"
	"github.com/tyfind/tyfind/src/tyfind/internal/executor"
	"github.com/tyfind/tyfind/src/tyfind/internal/fs"
	"go.uber.org/config"
	"go.uber.org/zap"
)

func spawnerProvider(t *testing.T, analyzerCfg map[string]interface{}) config.Provider {
	t.Helper()
	provider, err := config.NewYAML(config.Static(map[string]interface{}{
		"analyzer": analyzerCfg,
	}))
	require.NoError(t, err)
	return provider
}

func TestNewSpawner(t *testing.T) {
	t.Run("reads commands from config", func(t *testing.T) {
		provider := spawnerProvider(t, map[string]interface{}{
			"command":         []string{"ty", "server"},
			"fallbackCommand": []string{"uvx", "ty", "server"},
		})

		s, err := NewSpawner(Params{
			Config:   provider,
			Logger:   zap.NewNop().Sugar(),
			FS:       fs.New(),
			Executor: executor.NewExecutor(),
			Stats:    tally.NoopScope,
		})
		require.NoError(t, err)

		impl := s.(*spawner)
		assert.Equal(t, []string{"ty", "server"}, impl.command)
		assert.Equal(t, []string{"uvx", "ty", "server"}, impl.fallback)
	})

	t.Run("missing command errors", func(t *testing.T) {
		provider := spawnerProvider(t, map[string]interface{}{
			"command": []string{},
		})

		_, err := NewSpawner(Params{
			Config:   provider,
			Logger:   zap.NewNop().Sugar(),
			FS:       fs.New(),
			Executor: executor.NewExecutor(),
			Stats:    tally.NoopScope,
		})
		assert.Error(t, err)
	})
}

func TestSpawnFallback(t *testing.T) {
	var started []string
	exec0 := executor.NewExecutor(executor.WithStartFunc(func(cmd *exec.Cmd) error {
		started = append(started, cmd.Args[0])
		if cmd.Args[0] == "ty" {
			return errors.New("executable file not found in $PATH")
		}
		// Pretend the fallback launched; the process is never actually
		// started, so waiting on it fails at once, the exit watcher closes
		// the connection, and the handshake below fails fast.
		return nil
	}))

	provider := spawnerProvider(t, map[string]interface{}{
		"command":         []string{"ty", "server"},
		"fallbackCommand": []string{"uvx", "ty", "server"},
	})
	s, err := NewSpawner(Params{
		Config:   provider,
		Logger:   zap.NewNop().Sugar(),
		FS:       fs.New(),
		Executor: exec0,
		Stats:    tally.NoopScope,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = s.Spawn(ctx, t.TempDir(), nil)
	assert.Error(t, err)
	assert.Equal(t, []string{"ty", "uvx"}, started)
}

func TestSpawnBothInvocationsFail(t *testing.T) {
	exec0 := executor.NewExecutor(executor.WithStartFunc(func(cmd *exec.Cmd) error {
		return errors.New("executable file not found in $PATH")
	}))

	provider := spawnerProvider(t, map[string]interface{}{
		"command":         []string{"ty", "server"},
		"fallbackCommand": []string{"uvx", "ty", "server"},
	})
	s, err := NewSpawner(Params{
		Config:   provider,
		Logger:   zap.NewNop().Sugar(),
		FS:       fs.New(),
		Executor: exec0,
		Stats:    tally.NoopScope,
	})
	require.NoError(t, err)

	_, err = s.Spawn(context.Background(), t.TempDir(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "uvx")
}
