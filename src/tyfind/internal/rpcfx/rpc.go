// Package rpcfx accepts framed JSON-RPC connections on the per-user Unix
// socket and hands each one to the registered connection manager.
package rpcfx

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/gofrs/uuid"
	"github.com/tyfind/tyfind/src/tyfind/internal/endpoint"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// _bindAttempts bounds the stale-socket reclaim loop so two racing daemons
// cannot flap unlinking each other's sockets.
const _bindAttempts = 2

// _probeTimeout is how long a bind-conflict probe waits for the incumbent
// daemon to accept.
const _probeTimeout = 500 * time.Millisecond

// Module is an fx module to handle JSON-RPC requests.
var Module = fx.Provide(New)

// RPCModule represents a module to manage JSON-RPC requests.
type RPCModule interface {
	OnStart(ctx context.Context) error
	ServeStream(ctx context.Context, conn jsonrpc2.Conn) error
	RegisterConnectionManager(connectionManager ConnectionManager) error
}

// Router serves as the interface through which handling of requests will be
// implemented.
type Router interface {
	HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error
	UUID() uuid.UUID
}

// ConnectionManager will manage each active connection and its corresponding
// Router throughout the lifecycle of a connection.
type ConnectionManager interface {
	NewConnection(ctx context.Context, conn *jsonrpc2.Conn) (router Router, err error)
	RemoveConnection(ctx context.Context, id uuid.UUID)
}

// ErrAlreadyRunning reports that another live daemon owns the endpoint.
var ErrAlreadyRunning = errors.New("another daemon is already serving this endpoint")

type module struct {
	connectionMgr ConnectionManager
	endpoint      endpoint.Endpoint
	ln            net.Listener
	logger        *zap.SugaredLogger
	shutdowner    fx.Shutdowner
}

// Params define values to be used by the RPC module.
type Params struct {
	fx.In

	Endpoint   endpoint.Endpoint
	Lifecycle  fx.Lifecycle
	Logger     *zap.SugaredLogger
	Shutdowner fx.Shutdowner
}

// New creates a new server to handle JSON-RPC requests on the per-user
// endpoint.
func New(p Params) (RPCModule, error) {
	if p.Lifecycle == nil || p.Endpoint == nil {
		return nil, errors.New("required parameters are missing")
	}

	m := module{
		endpoint:   p.Endpoint,
		logger:     p.Logger,
		shutdowner: p.Shutdowner,
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: m.OnStart,
		OnStop:  m.onStop,
	})

	return &m, nil
}

// OnStart binds the endpoint and then begins handling incoming connections.
func (m *module) OnStart(ctx context.Context) error {
	if err := m.setup(); err != nil {
		if errors.Is(err, ErrAlreadyRunning) {
			// A concurrent bootstrap won the bind race; this process has
			// nothing to serve.
			m.logger.Info("daemon already running, exiting")
			return m.shutdowner.Shutdown()
		}
		return err
	}

	go m.start()
	return nil
}

// ServeStream is called for each new connection. Requests received via the
// connection are routed to the handler and answered via its replier.
func (m *module) ServeStream(ctx context.Context, conn jsonrpc2.Conn) error {
	if m.connectionMgr == nil {
		m.logger.Errorf("cannot serve connection, no connection manager set")
		return errors.New("cannot serve connection, no connection manager set")
	}

	handler, err := m.connectionMgr.NewConnection(ctx, &conn)
	if err != nil {
		return err
	}
	m.logger.Debugw("client connected", zap.Stringer("uuid", handler.UUID()))
	conn.Go(ctx, handler.HandleReq)

	// Block until the connection closes.
	<-conn.Done()

	m.connectionMgr.RemoveConnection(ctx, handler.UUID())
	m.logger.Debugw("client disconnected", zap.Stringer("uuid", handler.UUID()))

	return conn.Err()
}

// RegisterConnectionManager sets the connection manager, which keeps track of
// current active connections and provides a Router implementation.
func (m *module) RegisterConnectionManager(connectionMgr ConnectionManager) error {
	if m.connectionMgr != nil {
		return errors.New("cannot register a duplicate connection manager")
	}
	m.connectionMgr = connectionMgr
	return nil
}

// setup binds the Unix socket. The bind is the serialization point between
// racing daemons: the loser distinguishes a live incumbent (probe connect
// succeeds) from a stale socket (probe fails; reclaim and retry once).
func (m *module) setup() error {
	if !m.endpoint.Supported() {
		return endpoint.ErrUnsupported
	}

	path := m.endpoint.Path()

	var bindErr error
	for attempt := 0; attempt < _bindAttempts; attempt++ {
		ln, err := net.Listen("unix", path)
		if err == nil {
			m.ln = ln
			return m.endpoint.Secure()
		}
		bindErr = err

		conn, probeErr := net.DialTimeout("unix", path, _probeTimeout)
		if probeErr == nil {
			conn.Close()
			return ErrAlreadyRunning
		}

		// The socket is stale; reclaim it if we own it and retry the bind.
		if reclaimErr := m.endpoint.Reclaim(); reclaimErr != nil {
			return multierr.Append(bindErr, reclaimErr)
		}
	}
	return bindErr
}

// start begins serving connections.
func (m *module) start() {
	m.logger.Infow("started JSON-RPC inbound", zap.String("address", m.endpoint.Path()))
	if err := jsonrpc2.Serve(context.Background(), m.ln, m, 0); err != nil && !errors.Is(err, net.ErrClosed) {
		m.logger.Errorw("acceptor failed", "error", err)
		m.shutdowner.Shutdown()
	}
}

// onStop closes the listener and removes the endpoint from the filesystem.
func (m *module) onStop(ctx context.Context) error {
	var err error
	if m.ln != nil {
		err = multierr.Append(err, m.ln.Close())
		err = multierr.Append(err, m.endpoint.Remove())
	}
	return err
}
