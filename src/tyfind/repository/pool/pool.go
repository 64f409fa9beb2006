// Package pool maps workspace keys to warm analyzer clients. Entries are
// created lazily, shared by concurrent requests, and evicted once idle.
package pool

import (
	"context"
	"sync"
	"time"

	tally "github.com/uber-go/tally/v4"
	"github.com/tyfind/tyfind/src/tyfind/gateway/analyzer"
	"github.com/tyfind/tyfind/src/tyfind/internal/errors"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const _configKeyMaxWarm = "pool.maxWarmWorkspaces"

// Module is an fx module providing the pool.
var Module = fx.Provide(New)

// Repository is the workspace-keyed store of warm analyzer clients.
type Repository interface {
	// GetOrCreate returns the client for a workspace, spawning one if
	// necessary. Concurrent callers for the same workspace share one spawn.
	// The returned release func marks the request finished and must be
	// called exactly once; entries with unreleased requests are never
	// evicted.
	GetOrCreate(ctx context.Context, workspace string) (analyzer.Client, func(), error)
	// Evict removes the entry for a workspace and closes its client.
	Evict(ctx context.Context, workspace string)
	// CleanupIdle removes entries idle for longer than threshold and returns
	// how many were removed. Entries with in-flight requests are skipped and
	// reconsidered on the next sweep.
	CleanupIdle(ctx context.Context, threshold time.Duration) int
	// Count returns the number of warm entries.
	Count() int
	// Workspaces lists the warm workspace keys in arbitrary order.
	Workspaces() []string
	// Shutdown closes every client, draining the pool.
	Shutdown(ctx context.Context) error
}

// entry tracks one warm client. ready is closed once creation finishes;
// latecomers wait on it instead of racing to spawn a duplicate child.
type entry struct {
	ready      chan struct{}
	client     analyzer.Client
	createErr  error
	lastAccess time.Time
	inflight   int
}

// Params define values to be used by the pool.
type Params struct {
	fx.In

	Config  config.Provider
	Spawner analyzer.Spawner
	Logger  *zap.SugaredLogger
	Stats   tally.Scope
}

type repository struct {
	mu      sync.Mutex
	entries map[string]*entry

	spawner analyzer.Spawner
	logger  *zap.SugaredLogger
	stats   tally.Scope
	maxWarm int

	// now is swappable for tests.
	now func() time.Time
}

// New returns a Repository backed by the given spawner.
func New(p Params) (Repository, error) {
	var maxWarm int
	if err := p.Config.Get(_configKeyMaxWarm).Populate(&maxWarm); err != nil {
		return nil, err
	}

	return &repository{
		entries: make(map[string]*entry),
		spawner: p.Spawner,
		logger:  p.Logger,
		stats:   p.Stats.SubScope("pool"),
		maxWarm: maxWarm,
		now:     time.Now,
	}, nil
}

func (r *repository) GetOrCreate(ctx context.Context, workspace string) (analyzer.Client, func(), error) {
	r.mu.Lock()
	if e, ok := r.entries[workspace]; ok {
		e.inflight++
		e.lastAccess = r.now()
		r.mu.Unlock()

		<-e.ready
		if e.createErr != nil {
			r.release(workspace, e)
			return nil, nil, e.createErr
		}
		return e.client, func() { r.release(workspace, e) }, nil
	}

	// First caller for this workspace: publish a placeholder under the lock,
	// then spawn outside it. The spawn is slow (child start + initialize) and
	// must not block unrelated workspaces.
	e := &entry{
		ready:      make(chan struct{}),
		lastAccess: r.now(),
		inflight:   1,
	}
	r.entries[workspace] = e
	r.evictOverCapLocked(ctx, workspace)
	r.mu.Unlock()

	client, err := r.spawner.Spawn(ctx, workspace, func() { r.Evict(context.Background(), workspace) })

	r.mu.Lock()
	e.client = client
	e.createErr = err
	if err != nil {
		delete(r.entries, workspace)
	}
	r.updateGaugeLocked()
	r.mu.Unlock()
	close(e.ready)

	if err != nil {
		r.release(workspace, e)
		return nil, nil, errors.AnalyzerUnavailable("spawning analyzer for %s: %v", workspace, err)
	}
	return client, func() { r.release(workspace, e) }, nil
}

func (r *repository) release(workspace string, e *entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.inflight--
	e.lastAccess = r.now()
}

func (r *repository) Evict(ctx context.Context, workspace string) {
	r.mu.Lock()
	e, ok := r.entries[workspace]
	if ok {
		delete(r.entries, workspace)
	}
	r.updateGaugeLocked()
	r.mu.Unlock()

	if !ok {
		return
	}
	r.stats.Counter("evictions").Inc(1)
	r.closeEntry(ctx, workspace, e)
}

func (r *repository) CleanupIdle(ctx context.Context, threshold time.Duration) int {
	now := r.now()

	r.mu.Lock()
	expired := make(map[string]*entry)
	for workspace, e := range r.entries {
		if e.inflight > 0 {
			continue
		}
		if now.Sub(e.lastAccess) > threshold {
			expired[workspace] = e
			delete(r.entries, workspace)
		}
	}
	r.updateGaugeLocked()
	r.mu.Unlock()

	for workspace, e := range expired {
		r.stats.Counter("evictions").Inc(1)
		r.closeEntry(ctx, workspace, e)
	}
	return len(expired)
}

func (r *repository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *repository) Workspaces() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]string, 0, len(r.entries))
	for workspace := range r.entries {
		keys = append(keys, workspace)
	}
	return keys
}

func (r *repository) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	drained := r.entries
	r.entries = make(map[string]*entry)
	r.updateGaugeLocked()
	r.mu.Unlock()

	var err error
	for workspace, e := range drained {
		err = multierr.Append(err, r.closeClient(ctx, workspace, e))
	}
	return err
}

// evictOverCapLocked enforces the warm-workspace cap by dropping the
// least-recently-used idle entry. Busy entries are left alone even when the
// pool is over cap. Caller holds r.mu.
func (r *repository) evictOverCapLocked(ctx context.Context, justAdded string) {
	if r.maxWarm <= 0 || len(r.entries) <= r.maxWarm {
		return
	}

	var oldestKey string
	var oldest *entry
	for workspace, e := range r.entries {
		if workspace == justAdded || e.inflight > 0 {
			continue
		}
		if oldest == nil || e.lastAccess.Before(oldest.lastAccess) {
			oldestKey, oldest = workspace, e
		}
	}
	if oldest == nil {
		return
	}

	delete(r.entries, oldestKey)
	r.stats.Counter("evictions").Inc(1)
	go r.closeEntry(ctx, oldestKey, oldest)
}

func (r *repository) closeEntry(ctx context.Context, workspace string, e *entry) {
	if err := r.closeClient(ctx, workspace, e); err != nil {
		r.logger.Warnw("closing analyzer", "workspace", workspace, "error", err)
	}
}

func (r *repository) closeClient(ctx context.Context, workspace string, e *entry) error {
	<-e.ready
	if e.client == nil {
		return nil
	}
	r.logger.Infow("closing analyzer", "workspace", workspace)
	return e.client.Close(ctx)
}

func (r *repository) updateGaugeLocked() {
	r.stats.Gauge("warm_workspaces").Update(float64(len(r.entries)))
}
