// Package daemon wires the RPC inbound to the daemon controller.
package daemon

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	controller "github.com/tyfind/tyfind/src/tyfind/controller/daemon"
	"github.com/tyfind/tyfind/src/tyfind/entity"
	"github.com/tyfind/tyfind/src/tyfind/internal/rpcfx"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/zap"
)

// Handler represents the daemon's JSON-RPC API surface.
type Handler interface {
	ConnectionManager() rpcfx.ConnectionManager
}

type handler struct {
	daemon            controller.Controller
	connectionManager rpcfx.ConnectionManager
}

// New constructs a new daemon Handler and registers its connection manager
// with the RPC inbound.
func New(ctrl controller.Controller, rpcmod rpcfx.RPCModule, stats tally.Scope, logger *zap.SugaredLogger) (Handler, error) {
	c := jsonRPCConnectionManager{
		ctrl:   ctrl,
		stats:  stats.SubScope("json_rpc"),
		logger: logger,
	}
	if err := rpcmod.RegisterConnectionManager(&c); err != nil {
		return nil, err
	}

	return &handler{
		daemon:            ctrl,
		connectionManager: &c,
	}, nil
}

func (h *handler) ConnectionManager() rpcfx.ConnectionManager {
	return h.connectionManager
}

type jsonRPCConnectionManager struct {
	ctrl   controller.Controller
	stats  tally.Scope
	logger *zap.SugaredLogger
}

// NewConnection will store a new connection and return a router that includes
// its UUID.
func (c *jsonRPCConnectionManager) NewConnection(ctx context.Context, conn *jsonrpc2.Conn) (rpcfx.Router, error) {
	id, err := c.ctrl.InitSession(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("error while creating new connection: %w", err)
	}

	r := jsonRPCRouter{
		daemon: c.ctrl,
		uuid:   id,
		stats:  c.stats,
		logger: c.logger,
	}

	return &r, nil
}

// RemoveConnection cleans up a closed connection.
func (c *jsonRPCConnectionManager) RemoveConnection(ctx context.Context, id uuid.UUID) {
	ctx = context.WithValue(ctx, entity.SessionContextKey, id)
	c.ctrl.EndSession(ctx, id)
}
