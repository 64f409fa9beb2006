// Package daemon implements the tyfind daemon's business logic: one handler
// per RPC method, connection/session accounting, the idle shutdown timer, and
// the teardown sequence.
package daemon

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	"github.com/tyfind/tyfind/src/tyfind/entity"
	"github.com/tyfind/tyfind/src/tyfind/internal/fs"
	"github.com/tyfind/tyfind/src/tyfind/model"
	"github.com/tyfind/tyfind/src/tyfind/repository/pool"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	// Configuration keys
	_idleTimeoutMinutesKey = "daemon.idleTimeoutMinutes"
	_evictionMinutesKey    = "pool.idleEvictionMinutes"
	_requestTimeoutKey     = "daemon.requestTimeoutSeconds"

	// _sweepInterval is the cadence of the idle-eviction sweep.
	_sweepInterval = time.Minute

	// _shutdownReplyGrace lets the shutdown acknowledgement flush before the
	// process starts tearing down.
	_shutdownReplyGrace = 200 * time.Millisecond
)

// Controller orchestrates the business logic for each request.
type Controller interface {
	Ping(ctx context.Context) (*model.PingResult, error)
	Hover(ctx context.Context, params *model.HoverParams) (*model.HoverResult, error)
	Definition(ctx context.Context, params *model.DefinitionParams) (*model.DefinitionResult, error)
	References(ctx context.Context, params *model.ReferencesParams) (*model.ReferencesResult, error)
	WorkspaceSymbols(ctx context.Context, params *model.WorkspaceSymbolsParams) (*model.WorkspaceSymbolsResult, error)
	DocumentSymbols(ctx context.Context, params *model.DocumentSymbolsParams) (*model.DocumentSymbolsResult, error)
	Inspect(ctx context.Context, params *model.InspectParams) (*model.InspectResult, error)
	Shutdown(ctx context.Context) (*model.ShutdownResult, error)

	// RequestTimeout returns the budget for one request, honouring a
	// client-supplied hint.
	RequestTimeout(hintMS uint32) time.Duration

	// Session management, driven by the connection layer.
	InitSession(ctx context.Context, conn *jsonrpc2.Conn) (uuid.UUID, error)
	EndSession(ctx context.Context, id uuid.UUID) error
}

// Params are inbound parameters to initialize a new controller.
type Params struct {
	fx.In

	Shutdowner fx.Shutdowner
	Lifecycle  fx.Lifecycle
	Pool       pool.Repository
	Logger     *zap.SugaredLogger
	Config     config.Provider
	FS         fs.TyfindFS
	Stats      tally.Scope
}

type controller struct {
	pool       pool.Repository
	shutdowner fx.Shutdowner
	logger     *zap.SugaredLogger
	fs         fs.TyfindFS
	stats      tally.Scope

	idleTimeout       time.Duration
	evictionThreshold time.Duration
	requestTimeout    time.Duration
	startTime         time.Time

	idleTimer   *time.Timer
	idleTimerMu sync.Mutex

	sessionsMu sync.Mutex
	sessions   map[uuid.UUID]*entity.Session

	sweepStop chan struct{}
}

// New constructs a new top-level controller for the service.
func New(p Params) (Controller, error) {
	var idleMinutes, evictionMinutes, timeoutSeconds int64
	if err := p.Config.Get(_idleTimeoutMinutesKey).Populate(&idleMinutes); err != nil || idleMinutes == 0 {
		return nil, fmt.Errorf("unable to get idle timeout from config: %w", err)
	}
	if err := p.Config.Get(_evictionMinutesKey).Populate(&evictionMinutes); err != nil || evictionMinutes == 0 {
		return nil, fmt.Errorf("unable to get eviction threshold from config: %w", err)
	}
	if err := p.Config.Get(_requestTimeoutKey).Populate(&timeoutSeconds); err != nil || timeoutSeconds == 0 {
		return nil, fmt.Errorf("unable to get request timeout from config: %w", err)
	}

	c := &controller{
		pool:       p.Pool,
		shutdowner: p.Shutdowner,
		logger:     p.Logger,
		fs:         p.FS,
		stats:      p.Stats,

		idleTimeout:       time.Duration(idleMinutes) * time.Minute,
		evictionThreshold: time.Duration(evictionMinutes) * time.Minute,
		requestTimeout:    time.Duration(timeoutSeconds) * time.Second,
		startTime:         time.Now(),

		sessions:  make(map[uuid.UUID]*entity.Session),
		sweepStop: make(chan struct{}),
	}
	c.refreshIdleTimer(context.Background())

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go c.sweepLoop()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(c.sweepStop)
			return c.pool.Shutdown(ctx)
		},
	})

	return c, nil
}

// RequestTimeout caps client hints at four times the configured default so a
// single request cannot pin a connection indefinitely.
func (c *controller) RequestTimeout(hintMS uint32) time.Duration {
	if hintMS == 0 {
		return c.requestTimeout
	}
	hinted := time.Duration(hintMS) * time.Millisecond
	if limit := 4 * c.requestTimeout; hinted > limit {
		return limit
	}
	return hinted
}

// InitSession registers a new connection and refreshes the idle timer.
func (c *controller) InitSession(ctx context.Context, conn *jsonrpc2.Conn) (uuid.UUID, error) {
	defer c.refreshIdleTimer(ctx)

	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	c.sessionsMu.Lock()
	c.sessions[id] = &entity.Session{UUID: id, Conn: conn, Started: time.Now()}
	c.stats.Gauge("active_connections").Update(float64(len(c.sessions)))
	c.sessionsMu.Unlock()

	return id, nil
}

// EndSession cleans up after a closed connection.
func (c *controller) EndSession(ctx context.Context, id uuid.UUID) error {
	defer c.refreshIdleTimer(ctx)

	c.sessionsMu.Lock()
	delete(c.sessions, id)
	c.stats.Gauge("active_connections").Update(float64(len(c.sessions)))
	c.sessionsMu.Unlock()

	return nil
}

func (c *controller) sessionCount() int {
	c.sessionsMu.Lock()
	defer c.sessionsMu.Unlock()
	return len(c.sessions)
}

// refreshIdleTimer ensures that the service shuts down after a defined
// inactivity period with no connections.
func (c *controller) refreshIdleTimer(ctx context.Context) {
	c.idleTimerMu.Lock()
	defer c.idleTimerMu.Unlock()

	// First call initializes a new timer and leaves it running prior to the
	// first connection.
	if c.idleTimer == nil {
		c.idleTimer = time.NewTimer(c.idleTimeout)
		go func() {
			<-c.idleTimer.C
			c.logger.Info("idle timeout reached, shutting down")
			if err := c.shutdowner.Shutdown(); err != nil {
				os.Exit(1)
			}
		}()
		return
	}

	// Subsequent calls stop the timer and reset it only once no connections
	// are active.
	c.idleTimer.Stop()
	if c.sessionCount() == 0 {
		c.idleTimer.Reset(c.idleTimeout)
	}
}

// sweepLoop periodically evicts analyzer clients that have been idle past the
// eviction threshold.
func (c *controller) sweepLoop() {
	ticker := time.NewTicker(_sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.sweepStop:
			return
		case <-ticker.C:
			if removed := c.pool.CleanupIdle(context.Background(), c.evictionThreshold); removed > 0 {
				c.logger.Infow("evicted idle analyzers", "count", removed)
			}
		}
	}
}
