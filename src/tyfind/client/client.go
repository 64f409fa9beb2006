// Package client is the CLI-side library for talking to the tyfind daemon:
// it locates the endpoint, bootstraps a daemon when none is running, and
// exposes one typed call per RPC method.
package client

import (
	"context"
	"net"
	"time"

	"github.com/tyfind/tyfind/src/tyfind/internal/core"
	"github.com/tyfind/tyfind/src/tyfind/internal/endpoint"
	"github.com/tyfind/tyfind/src/tyfind/internal/fs"
	"github.com/tyfind/tyfind/src/tyfind/mapper"
	"github.com/tyfind/tyfind/src/tyfind/model"
	"go.lsp.dev/jsonrpc2"
)

// _defaultCallTimeout bounds a single request when the caller's context
// carries no deadline of its own.
const _defaultCallTimeout = 30 * time.Second

// Client is one connection to the daemon. The CLI uses one request per
// connection, so a Client is cheap and short-lived.
type Client struct {
	conn    jsonrpc2.Conn
	netConn net.Conn
}

// Connect dials an already-running daemon at the per-user endpoint.
func Connect(ctx context.Context, ep endpoint.Endpoint) (*Client, error) {
	if !ep.Supported() {
		return nil, endpoint.ErrUnsupported
	}

	var d net.Dialer
	netConn, err := d.DialContext(ctx, "unix", ep.Path())
	if err != nil {
		return nil, err
	}

	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(netConn))
	// The daemon never initiates requests; the handler exists only to pump
	// the read loop that routes responses back to Call. The loop must
	// outlive the dial context, which may be a short connect probe.
	conn.Go(context.Background(), jsonrpc2.MethodNotFoundHandler)

	return &Client{conn: conn, netConn: netConn}, nil
}

// Close releases the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Ping checks daemon health.
func (c *Client) Ping(ctx context.Context) (*model.PingResult, error) {
	var result model.PingResult
	if err := c.call(ctx, model.MethodPing, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Hover fetches hover information at a zero-based position.
func (c *Client) Hover(ctx context.Context, params *model.HoverParams) (*model.HoverResult, error) {
	var result model.HoverResult
	if err := c.call(ctx, model.MethodHover, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Definition resolves the definition locations for a position.
func (c *Client) Definition(ctx context.Context, params *model.DefinitionParams) (*model.DefinitionResult, error) {
	var result model.DefinitionResult
	if err := c.call(ctx, model.MethodDefinition, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// References lists every reference to the symbol at a position.
func (c *Client) References(ctx context.Context, params *model.ReferencesParams) (*model.ReferencesResult, error) {
	var result model.ReferencesResult
	if err := c.call(ctx, model.MethodReferences, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// WorkspaceSymbols searches symbols across the workspace.
func (c *Client) WorkspaceSymbols(ctx context.Context, params *model.WorkspaceSymbolsParams) (*model.WorkspaceSymbolsResult, error) {
	var result model.WorkspaceSymbolsResult
	if err := c.call(ctx, model.MethodWorkspaceSymbols, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DocumentSymbols fetches the outline of one file.
func (c *Client) DocumentSymbols(ctx context.Context, params *model.DocumentSymbolsParams) (*model.DocumentSymbolsResult, error) {
	var result model.DocumentSymbolsResult
	if err := c.call(ctx, model.MethodDocumentSymbols, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Inspect combines hover and optional references into one round trip.
func (c *Client) Inspect(ctx context.Context, params *model.InspectParams) (*model.InspectResult, error) {
	var result model.InspectResult
	if err := c.call(ctx, model.MethodInspect, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Shutdown asks the daemon to stop. The acknowledgement arrives before the
// daemon begins teardown.
func (c *Client) Shutdown(ctx context.Context) (*model.ShutdownResult, error) {
	var result model.ShutdownResult
	if err := c.call(ctx, model.MethodShutdown, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) call(ctx context.Context, method string, params, result interface{}) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, _defaultCallTimeout)
		defer cancel()
	}

	if _, err := c.conn.Call(ctx, method, params, result); err != nil {
		return mapper.WireToError(err)
	}
	return nil
}

// DefaultEndpoint returns the per-user endpoint the CLI and daemon agree on.
func DefaultEndpoint() endpoint.Endpoint {
	if provider, err := core.NewConfig(); err == nil {
		if ep, err := endpoint.New(endpoint.Params{Config: provider, FS: fs.New()}); err == nil {
			return ep
		}
	}
	return endpoint.NewWithFS(fs.New())
}
