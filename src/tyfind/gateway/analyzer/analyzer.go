// Package analyzer owns the LSP connection to one ty server child per
// workspace: spawning, the initialize handshake, open-document bookkeeping,
// and request/response traffic over the child's standard streams.
package analyzer

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"

	tally "github.com/uber-go/tally/v4"
	"github.com/tyfind/tyfind/src/tyfind/internal/executor"
	"github.com/tyfind/tyfind/src/tyfind/internal/fs"
	"github.com/tyfind/tyfind/src/tyfind/model"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_configKeyCommand         = "analyzer.command"
	_configKeyFallbackCommand = "analyzer.fallbackCommand"
)

// Module is an fx module providing the analyzer spawner.
var Module = fx.Provide(NewSpawner)

// Client is a warm LSP connection to the analyzer serving one workspace. All
// requests for a workspace funnel through its single client; the child's
// stdin pipe is the serialization point, so spawning additional children for
// the same workspace gains nothing.
type Client interface {
	// Workspace returns the canonical workspace key this client serves.
	Workspace() string
	// Alive reports whether the child process is still serving requests.
	Alive() bool
	// OpenDocument announces the file to the analyzer if it has not been
	// announced yet. Announcing is idempotent; content is read from disk at
	// call time.
	OpenDocument(ctx context.Context, path string) error

	Hover(ctx context.Context, file string, line, column uint32) (*model.HoverInfo, error)
	Definition(ctx context.Context, file string, line, column uint32) ([]model.Location, error)
	References(ctx context.Context, file string, line, column uint32, includeDeclaration bool) ([]model.Location, error)
	WorkspaceSymbols(ctx context.Context, query string) ([]model.SymbolInformation, error)
	DocumentSymbols(ctx context.Context, file string) ([]model.DocumentSymbol, error)

	// Close performs the LSP shutdown sequence and reaps the child, killing
	// it if it does not exit within the grace window.
	Close(ctx context.Context) error
}

// Spawner creates analyzer clients. onExit runs once when the child
// terminates for any reason, including kill; the pool uses it to evict the
// dead entry promptly.
type Spawner interface {
	Spawn(ctx context.Context, workspace string, onExit func()) (Client, error)
}

// Params define values to be used by the spawner.
type Params struct {
	fx.In

	Config   config.Provider
	Logger   *zap.SugaredLogger
	FS       fs.TyfindFS
	Executor executor.Executor
	Stats    tally.Scope
}

type spawner struct {
	command  []string
	fallback []string
	logger   *zap.SugaredLogger
	fs       fs.TyfindFS
	executor executor.Executor
	stats    tally.Scope
}

// NewSpawner reads the analyzer invocation from configuration.
func NewSpawner(p Params) (Spawner, error) {
	var command, fallback []string
	if err := p.Config.Get(_configKeyCommand).Populate(&command); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKeyCommand, err)
	}
	if err := p.Config.Get(_configKeyFallbackCommand).Populate(&fallback); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKeyFallbackCommand, err)
	}
	if len(command) == 0 {
		return nil, fmt.Errorf("missing field %q in config", _configKeyCommand)
	}

	return &spawner{
		command:  command,
		fallback: fallback,
		logger:   p.Logger,
		fs:       p.FS,
		executor: p.Executor,
		stats:    p.Stats.SubScope("analyzer"),
	}, nil
}

// Spawn launches the analyzer child for a workspace and completes the LSP
// initialize handshake before returning. If the primary invocation cannot be
// started, the fallback invocation is tried once; both are equivalent once
// launched.
func (s *spawner) Spawn(ctx context.Context, workspace string, onExit func()) (Client, error) {
	cmd, pipe, err := s.launch(workspace, s.command)
	if err != nil && len(s.fallback) > 0 {
		s.logger.Infow("primary analyzer invocation failed, trying fallback",
			"workspace", workspace, "error", err)
		s.stats.Counter("spawn_fallback").Inc(1)
		cmd, pipe, err = s.launch(workspace, s.fallback)
	}
	if err != nil {
		s.stats.Counter("spawn_failure").Inc(1)
		return nil, err
	}
	s.stats.Counter("spawn_success").Inc(1)

	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(pipe))
	c := newClient(workspace, conn, s.logger, s.fs, s.stats)
	c.watch(cmd, onExit)

	if err := c.initialize(ctx); err != nil {
		c.Close(context.Background())
		return nil, fmt.Errorf("initializing analyzer for %s: %w", workspace, err)
	}

	return c, nil
}

// launch starts one candidate invocation with pipes attached and stderr
// drained into the log.
func (s *spawner) launch(workspace string, argv []string) (*exec.Cmd, stdioPipe, error) {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = workspace

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, stdioPipe{}, fmt.Errorf("opening analyzer stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, stdioPipe{}, fmt.Errorf("opening analyzer stdout: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, stdioPipe{}, fmt.Errorf("opening analyzer stderr: %w", err)
	}

	if err := s.executor.Start(cmd); err != nil {
		return nil, stdioPipe{}, fmt.Errorf("starting %q: %w", argv[0], err)
	}

	go s.drainStderr(workspace, stderr)

	return cmd, stdioPipe{reader: stdout, writer: stdin}, nil
}

func (s *spawner) drainStderr(workspace string, r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		s.logger.Debugw("analyzer stderr", "workspace", workspace, "line", scanner.Text())
	}
}
