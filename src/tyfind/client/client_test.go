//go:build unix

package client

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyfind/tyfind/src/tyfind/internal/endpoint"
	"github.com/tyfind/tyfind/src/tyfind/internal/errors"
	"github.com/tyfind/tyfind/src/tyfind/internal/fs"
	"github.com/tyfind/tyfind/src/tyfind/model"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/config"
)

func testEndpoint(t *testing.T) endpoint.Endpoint {
	t.Helper()
	provider, err := config.NewYAML(config.Static(map[string]interface{}{
		"daemon": map[string]interface{}{"socketDir": t.TempDir()},
	}))
	require.NoError(t, err)

	ep, err := endpoint.New(endpoint.Params{Config: provider, FS: fs.New()})
	require.NoError(t, err)
	return ep
}

// startFakeDaemon serves scripted JSON-RPC responses at the endpoint.
func startFakeDaemon(t *testing.T, ep endpoint.Endpoint, handler jsonrpc2.Handler) {
	t.Helper()

	ln, err := net.Listen("unix", ep.Path())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go jsonrpc2.Serve(ctx, ln, jsonrpc2.HandlerServer(handler), 0)
	t.Cleanup(func() {
		cancel()
		ln.Close()
	})
}

func TestConnectNoDaemon(t *testing.T) {
	_, err := Connect(context.Background(), testEndpoint(t))
	assert.Error(t, err)
}

func TestPing(t *testing.T) {
	ep := testEndpoint(t)
	startFakeDaemon(t, ep, func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		require.Equal(t, model.MethodPing, req.Method())
		return reply(ctx, model.PingResult{Status: "running", ActiveWorkspaces: 2}, nil)
	})

	c, err := Connect(context.Background(), ep)
	require.NoError(t, err)
	defer c.Close()

	result, err := c.Ping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "running", result.Status)
	assert.Equal(t, 2, result.ActiveWorkspaces)
}

func TestHover(t *testing.T) {
	ep := testEndpoint(t)
	startFakeDaemon(t, ep, func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		require.Equal(t, model.MethodHover, req.Method())
		return reply(ctx, model.HoverResult{Hover: &model.HoverInfo{Contents: "def foo() -> int"}}, nil)
	})

	c, err := Connect(context.Background(), ep)
	require.NoError(t, err)
	defer c.Close()

	result, err := c.Hover(context.Background(), &model.HoverParams{
		Workspace: "/tmp/ws",
		File:      "/tmp/ws/a.py",
		Line:      0,
		Column:    4,
	})
	require.NoError(t, err)
	require.NotNil(t, result.Hover)
	assert.Equal(t, "def foo() -> int", result.Hover.Contents)
}

func TestErrorMapping(t *testing.T) {
	ep := testEndpoint(t)
	startFakeDaemon(t, ep, func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		return reply(ctx, nil, jsonrpc2.NewError(jsonrpc2.Code(-32002), "file not found: /tmp/ws/missing.py"))
	})

	c, err := Connect(context.Background(), ep)
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Definition(context.Background(), &model.DefinitionParams{Workspace: "/tmp/ws", File: "/tmp/ws/missing.py"})
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, errors.CodeOf(err))
	assert.Contains(t, err.Error(), "missing.py")
}

func TestShutdownAcknowledged(t *testing.T) {
	ep := testEndpoint(t)
	startFakeDaemon(t, ep, func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		return reply(ctx, model.ShutdownResult{Acknowledged: true}, nil)
	})

	c, err := Connect(context.Background(), ep)
	require.NoError(t, err)
	defer c.Close()

	result, err := c.Shutdown(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Acknowledged)
}

func TestCallWithoutDeadlineCompletes(t *testing.T) {
	ep := testEndpoint(t)
	startFakeDaemon(t, ep, func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		return reply(ctx, model.PingResult{Status: "running"}, nil)
	})

	c, err := Connect(context.Background(), ep)
	require.NoError(t, err)
	defer c.Close()

	// A context without a deadline must still complete promptly.
	start := time.Now()
	_, err = c.Ping(context.Background())
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}
