package analyzer

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"os"
	"os/exec"
	"sync"
	"time"

	tally "github.com/uber-go/tally/v4"
	"github.com/tyfind/tyfind/src/tyfind/internal/errors"
	"github.com/tyfind/tyfind/src/tyfind/internal/fs"
	"github.com/tyfind/tyfind/src/tyfind/mapper"
	"github.com/tyfind/tyfind/src/tyfind/model"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	// _shutdownGrace bounds the LSP shutdown/exit exchange on teardown.
	_shutdownGrace = 2 * time.Second
	// _reapGrace is how long the child gets to exit before it is killed.
	_reapGrace = 2 * time.Second
)

// _warmupDelays spaces the retries used when the analyzer answers before it
// has finished indexing a freshly opened document or workspace.
var _warmupDelays = []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 400 * time.Millisecond}

type client struct {
	workspace string
	conn      jsonrpc2.Conn
	logger    *zap.SugaredLogger
	fs        fs.TyfindFS
	stats     tally.Scope

	proc   *os.Process
	exited chan struct{}

	closeOnce sync.Once
	closeErr  error

	mu    sync.Mutex
	open  map[uri.URI]struct{}
	alive bool
}

// newClient wraps an established jsonrpc2 connection. The caller is
// responsible for calling initialize before issuing requests.
func newClient(workspace string, conn jsonrpc2.Conn, logger *zap.SugaredLogger, tfs fs.TyfindFS, stats tally.Scope) *client {
	c := &client{
		workspace: workspace,
		conn:      conn,
		logger:    logger,
		fs:        tfs,
		stats:     stats,
		exited:    make(chan struct{}),
		open:      make(map[uri.URI]struct{}),
		alive:     true,
	}
	conn.Go(context.Background(), c.handleServerMessage)
	return c
}

// handleServerMessage consumes traffic the analyzer initiates. Notifications
// (diagnostics, progress) are discarded; server-initiated calls are answered
// with method-not-found since this daemon is a minimal client.
func (c *client) handleServerMessage(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	if _, ok := req.(*jsonrpc2.Call); !ok {
		c.logger.Debugw("discarding analyzer notification", "method", req.Method())
		return nil
	}
	return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
}

// watch observes the child's exit in a dedicated goroutine so an unexpected
// death promptly tears down the connection and evicts the pool entry. Every
// pending call fails once the connection closes.
func (c *client) watch(cmd *exec.Cmd, onExit func()) {
	c.proc = cmd.Process
	go func() {
		err := cmd.Wait()
		c.mu.Lock()
		wasAlive := c.alive
		c.alive = false
		c.mu.Unlock()

		c.conn.Close()
		close(c.exited)

		if wasAlive {
			c.logger.Infow("analyzer exited", "workspace", c.workspace, "error", err)
		}
		if onExit != nil {
			onExit()
		}
	}()
}

// initialize performs the LSP handshake, announcing only the capabilities the
// daemon's method surface needs.
func (c *client) initialize(ctx context.Context) error {
	params := &protocol.InitializeParams{
		ProcessID: int32(os.Getpid()),
		RootURI:   mapper.FileURI(c.workspace),
		Capabilities: protocol.ClientCapabilities{
			TextDocument: &protocol.TextDocumentClientCapabilities{
				Hover: &protocol.HoverTextDocumentClientCapabilities{
					ContentFormat: []protocol.MarkupKind{protocol.Markdown, protocol.PlainText},
				},
				Definition: &protocol.DefinitionTextDocumentClientCapabilities{
					LinkSupport: true,
				},
				References: &protocol.ReferencesTextDocumentClientCapabilities{},
				DocumentSymbol: &protocol.DocumentSymbolClientCapabilities{
					HierarchicalDocumentSymbolSupport: true,
				},
			},
			Workspace: &protocol.WorkspaceClientCapabilities{
				Symbol: &protocol.WorkspaceSymbolClientCapabilities{},
			},
		},
	}

	var result protocol.InitializeResult
	if _, err := c.conn.Call(ctx, protocol.MethodInitialize, params, &result); err != nil {
		return c.mapCallError(ctx, protocol.MethodInitialize, err)
	}
	if err := c.conn.Notify(ctx, protocol.MethodInitialized, &protocol.InitializedParams{}); err != nil {
		return c.mapCallError(ctx, protocol.MethodInitialized, err)
	}
	return nil
}

func (c *client) Workspace() string {
	return c.workspace
}

func (c *client) Alive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.alive
}

// OpenDocument sends didOpen for a file not yet announced. The document set
// is marked before notifying so concurrent callers converge on one didOpen;
// the mark is rolled back if the notification cannot be written.
func (c *client) OpenDocument(ctx context.Context, path string) error {
	docURI := mapper.FileURI(path)

	c.mu.Lock()
	if _, ok := c.open[docURI]; ok {
		c.mu.Unlock()
		return nil
	}
	c.open[docURI] = struct{}{}
	c.mu.Unlock()

	text, err := c.fs.ReadFile(path)
	if err != nil {
		c.forgetDocument(docURI)
		return errors.NotFound("file", path)
	}

	params := &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        docURI,
			LanguageID: protocol.LanguageIdentifier("python"),
			Version:    1,
			Text:       string(text),
		},
	}
	if err := c.conn.Notify(ctx, protocol.MethodTextDocumentDidOpen, params); err != nil {
		c.forgetDocument(docURI)
		return c.mapCallError(ctx, protocol.MethodTextDocumentDidOpen, err)
	}
	return nil
}

func (c *client) forgetDocument(docURI uri.URI) {
	c.mu.Lock()
	delete(c.open, docURI)
	c.mu.Unlock()
}

// Hover retries a null answer a few times: right after didOpen the analyzer
// may not have finished analysing the document yet.
func (c *client) Hover(ctx context.Context, file string, line, column uint32) (*model.HoverInfo, error) {
	if err := c.OpenDocument(ctx, file); err != nil {
		return nil, err
	}

	params := &protocol.HoverParams{
		TextDocumentPositionParams: positionParams(file, line, column),
	}

	hover, err := c.hoverOnce(ctx, params)
	if err != nil || hover != nil {
		return hover, err
	}
	for _, delay := range _warmupDelays {
		if err := sleepCtx(ctx, delay); err != nil {
			return nil, errors.Timeout(protocol.MethodTextDocumentHover)
		}
		hover, err = c.hoverOnce(ctx, params)
		if err != nil || hover != nil {
			return hover, err
		}
	}
	return nil, nil
}

func (c *client) hoverOnce(ctx context.Context, params *protocol.HoverParams) (*model.HoverInfo, error) {
	raw, err := c.call(ctx, protocol.MethodTextDocumentHover, params)
	if err != nil {
		return nil, err
	}
	return mapper.HoverFromRaw(raw)
}

func (c *client) Definition(ctx context.Context, file string, line, column uint32) ([]model.Location, error) {
	if err := c.OpenDocument(ctx, file); err != nil {
		return nil, err
	}

	params := &protocol.DefinitionParams{
		TextDocumentPositionParams: positionParams(file, line, column),
	}
	raw, err := c.call(ctx, protocol.MethodTextDocumentDefinition, params)
	if err != nil {
		return nil, err
	}
	return mapper.LocationsFromRaw(raw)
}

func (c *client) References(ctx context.Context, file string, line, column uint32, includeDeclaration bool) ([]model.Location, error) {
	if err := c.OpenDocument(ctx, file); err != nil {
		return nil, err
	}

	params := &protocol.ReferenceParams{
		TextDocumentPositionParams: positionParams(file, line, column),
		Context: protocol.ReferenceContext{
			IncludeDeclaration: includeDeclaration,
		},
	}
	raw, err := c.call(ctx, protocol.MethodTextDocumentReferences, params)
	if err != nil {
		return nil, err
	}
	return mapper.LocationsFromRaw(raw)
}

// WorkspaceSymbols retries an empty answer during workspace indexing, for the
// same reason Hover retries a null one.
func (c *client) WorkspaceSymbols(ctx context.Context, query string) ([]model.SymbolInformation, error) {
	params := &protocol.WorkspaceSymbolParams{Query: query}

	symbols, err := c.workspaceSymbolsOnce(ctx, params)
	if err != nil || len(symbols) > 0 {
		return symbols, err
	}
	for _, delay := range _warmupDelays {
		if err := sleepCtx(ctx, delay); err != nil {
			return nil, errors.Timeout(protocol.MethodWorkspaceSymbol)
		}
		symbols, err = c.workspaceSymbolsOnce(ctx, params)
		if err != nil || len(symbols) > 0 {
			return symbols, err
		}
	}
	return symbols, nil
}

func (c *client) workspaceSymbolsOnce(ctx context.Context, params *protocol.WorkspaceSymbolParams) ([]model.SymbolInformation, error) {
	raw, err := c.call(ctx, protocol.MethodWorkspaceSymbol, params)
	if err != nil {
		return nil, err
	}
	return mapper.SymbolsFromRaw(raw)
}

func (c *client) DocumentSymbols(ctx context.Context, file string) ([]model.DocumentSymbol, error) {
	if err := c.OpenDocument(ctx, file); err != nil {
		return nil, err
	}

	params := &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: mapper.FileURI(file)},
	}
	raw, err := c.call(ctx, protocol.MethodTextDocumentDocumentSymbol, params)
	if err != nil {
		return nil, err
	}
	return mapper.DocumentSymbolsFromRaw(raw)
}

// Close sends the LSP shutdown sequence, closes the pipes, and reaps the
// child. Pending calls complete with an analyzer-unavailable error once the
// connection closes.
func (c *client) Close(ctx context.Context) error {
	c.closeOnce.Do(func() {
		var err error

		if c.Alive() {
			shutdownCtx, cancel := context.WithTimeout(ctx, _shutdownGrace)
			if _, callErr := c.conn.Call(shutdownCtx, protocol.MethodShutdown, nil, nil); callErr != nil {
				err = multierr.Append(err, callErr)
			} else if notifyErr := c.conn.Notify(shutdownCtx, protocol.MethodExit, nil); notifyErr != nil {
				err = multierr.Append(err, notifyErr)
			}
			cancel()
		}

		c.mu.Lock()
		c.alive = false
		c.mu.Unlock()
		c.conn.Close()

		if c.proc != nil {
			select {
			case <-c.exited:
			case <-time.After(_reapGrace):
				err = multierr.Append(err, c.proc.Kill())
				<-c.exited
			}
		}

		c.closeErr = err
	})
	return c.closeErr
}

// call issues one request and returns the raw result for shape-tolerant
// decoding.
func (c *client) call(ctx context.Context, method string, params interface{}) (json.RawMessage, error) {
	if !c.Alive() {
		return nil, errors.AnalyzerUnavailable("analyzer for %s has terminated", c.workspace)
	}

	c.stats.Tagged(map[string]string{"method": method}).Counter("requests").Inc(1)

	var raw json.RawMessage
	if _, err := c.conn.Call(ctx, method, params, &raw); err != nil {
		return nil, c.mapCallError(ctx, method, err)
	}
	return raw, nil
}

// mapCallError folds transport and analyzer failures into the taxonomy.
func (c *client) mapCallError(ctx context.Context, method string, err error) error {
	if ctx.Err() != nil {
		return errors.Timeout(method)
	}

	var wireErr *jsonrpc2.Error
	if stderrors.As(err, &wireErr) {
		return errors.AnalyzerFailed("%s: %s", method, wireErr.Message)
	}
	if !c.Alive() {
		return errors.AnalyzerUnavailable("analyzer for %s has terminated", c.workspace)
	}
	return errors.AnalyzerFailed("%s: %v", method, err)
}

func positionParams(file string, line, column uint32) protocol.TextDocumentPositionParams {
	return protocol.TextDocumentPositionParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: mapper.FileURI(file)},
		Position:     protocol.Position{Line: line, Character: column},
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
