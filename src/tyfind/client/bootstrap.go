package client

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/tyfind/tyfind/src/tyfind/internal/endpoint"
	"go.uber.org/zap"
)

const (
	// _startupRetries times _startupRetryDelay is the total startup budget.
	_startupRetries    = 20
	_startupRetryDelay = 100 * time.Millisecond

	// _probeTimeout bounds a single connect attempt while polling.
	_probeTimeout = 500 * time.Millisecond
)

// EnsureRunning returns a connected session, starting a daemon first if none
// is reachable. Concurrent invocations may each spawn a candidate daemon;
// only the process that wins the endpoint bind survives, so at most one
// daemon results and every invocation converges on it.
func EnsureRunning(ctx context.Context, logger *zap.SugaredLogger) (*Client, error) {
	ep := DefaultEndpoint()
	if !ep.Supported() {
		return nil, endpoint.ErrUnsupported
	}

	if c, err := Connect(ctx, ep); err == nil {
		return c, nil
	}

	// Connect failed: either no daemon, or a stale socket from a crash. A
	// stale socket owned by this user may be unlinked; anything else is left
	// alone and the spawn below will lose its bind.
	if err := ep.Reclaim(); err != nil {
		logger.Debugw("endpoint reclaim skipped", "error", err)
	}

	logger.Debugw("starting daemon", "endpoint", ep.Path())
	if err := spawnDaemon(); err != nil {
		return nil, fmt.Errorf("starting daemon: %w", err)
	}

	for i := 0; i < _startupRetries; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(_startupRetryDelay):
		}

		probeCtx, cancel := context.WithTimeout(ctx, _probeTimeout)
		c, err := Connect(probeCtx, ep)
		cancel()
		if err == nil {
			return c, nil
		}
		logger.Debugw("daemon not ready", "attempt", i+1, "error", err)
	}

	return nil, fmt.Errorf("daemon failed to start within %v",
		_startupRetries*_startupRetryDelay)
}

// spawnDaemon launches `tyfind daemon run` detached from the terminal so the
// CLI can exit without waiting. Standard streams go to the null device; the
// daemon logs through its own configuration.
func spawnDaemon() error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locating executable: %w", err)
	}

	cmd := exec.Command(exe, "daemon", "run")
	detach(cmd)

	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
