package daemon

import (
	"context"
	"path/filepath"
	"time"

	"github.com/tyfind/tyfind/src/tyfind/gateway/analyzer"
	"github.com/tyfind/tyfind/src/tyfind/internal/errors"
	"github.com/tyfind/tyfind/src/tyfind/internal/workspace"
	"github.com/tyfind/tyfind/src/tyfind/model"
)

// Ping reports daemon health without touching any analyzer.
func (c *controller) Ping(ctx context.Context) (*model.PingResult, error) {
	return &model.PingResult{
		Status:           "running",
		UptimeSeconds:    uint64(time.Since(c.startTime).Seconds()),
		ActiveWorkspaces: c.pool.Count(),
		CacheSize:        0,
	}, nil
}

func (c *controller) Hover(ctx context.Context, params *model.HoverParams) (*model.HoverResult, error) {
	client, file, release, err := c.clientForFile(ctx, params.Workspace, params.File)
	if err != nil {
		return nil, err
	}
	defer release()

	hover, err := client.Hover(ctx, file, params.Line, params.Column)
	if err != nil {
		return nil, err
	}
	return &model.HoverResult{Hover: hover}, nil
}

func (c *controller) Definition(ctx context.Context, params *model.DefinitionParams) (*model.DefinitionResult, error) {
	client, file, release, err := c.clientForFile(ctx, params.Workspace, params.File)
	if err != nil {
		return nil, err
	}
	defer release()

	locations, err := client.Definition(ctx, file, params.Line, params.Column)
	if err != nil {
		return nil, err
	}
	return &model.DefinitionResult{Locations: locations}, nil
}

func (c *controller) References(ctx context.Context, params *model.ReferencesParams) (*model.ReferencesResult, error) {
	client, file, release, err := c.clientForFile(ctx, params.Workspace, params.File)
	if err != nil {
		return nil, err
	}
	defer release()

	locations, err := client.References(ctx, file, params.Line, params.Column, params.IncludeDeclaration)
	if err != nil {
		return nil, err
	}
	return &model.ReferencesResult{Locations: locations}, nil
}

func (c *controller) WorkspaceSymbols(ctx context.Context, params *model.WorkspaceSymbolsParams) (*model.WorkspaceSymbolsResult, error) {
	ws, err := c.resolveWorkspace(params.Workspace)
	if err != nil {
		return nil, err
	}

	client, release, err := c.pool.GetOrCreate(ctx, ws)
	if err != nil {
		return nil, err
	}
	defer release()

	symbols, err := client.WorkspaceSymbols(ctx, params.Query)
	if err != nil {
		return nil, err
	}
	if params.Limit > 0 && len(symbols) > params.Limit {
		symbols = symbols[:params.Limit]
	}
	return &model.WorkspaceSymbolsResult{Symbols: symbols}, nil
}

func (c *controller) DocumentSymbols(ctx context.Context, params *model.DocumentSymbolsParams) (*model.DocumentSymbolsResult, error) {
	client, file, release, err := c.clientForFile(ctx, params.Workspace, params.File)
	if err != nil {
		return nil, err
	}
	defer release()

	symbols, err := client.DocumentSymbols(ctx, file)
	if err != nil {
		return nil, err
	}
	return &model.DocumentSymbolsResult{Symbols: symbols}, nil
}

// Inspect combines hover and optionally references into one request. The two
// analyzer calls are sequential: the child's stdin is a single pipe and
// interleaving buys nothing.
func (c *controller) Inspect(ctx context.Context, params *model.InspectParams) (*model.InspectResult, error) {
	client, file, release, err := c.clientForFile(ctx, params.Workspace, params.File)
	if err != nil {
		return nil, err
	}
	defer release()

	hover, err := client.Hover(ctx, file, params.Line, params.Column)
	if err != nil {
		return nil, err
	}

	references := []model.Location{}
	if params.IncludeReferences {
		if references, err = client.References(ctx, file, params.Line, params.Column, true); err != nil {
			return nil, err
		}
	}
	return &model.InspectResult{Hover: hover, References: references}, nil
}

// Shutdown acknowledges the request, then tears the process down once the
// reply has had a moment to flush.
func (c *controller) Shutdown(ctx context.Context) (*model.ShutdownResult, error) {
	c.logger.Info("shutdown requested")

	time.AfterFunc(_shutdownReplyGrace, func() {
		c.idleTimerMu.Lock()
		defer c.idleTimerMu.Unlock()
		// Zero out the timer to trigger immediate shutdown.
		c.idleTimer.Reset(0)
	})

	return &model.ShutdownResult{Acknowledged: true}, nil
}

// resolveWorkspace validates and canonicalises a workspace key. A path that
// is not an existing directory never spawns an analyzer.
func (c *controller) resolveWorkspace(path string) (string, error) {
	exists, err := c.fs.DirExists(path)
	if err != nil {
		return "", errors.Internal("checking workspace %s: %v", path, err)
	}
	if !exists {
		return "", errors.NotFound("workspace", path)
	}
	return workspace.Canonicalize(path)
}

// resolveFile anchors a relative file path at the workspace root and checks
// that it is readable.
func (c *controller) resolveFile(ws, file string) (string, error) {
	if !filepath.IsAbs(file) {
		file = filepath.Join(ws, file)
	}
	exists, err := c.fs.FileExists(file)
	if err != nil {
		return "", errors.Internal("checking file %s: %v", file, err)
	}
	if !exists {
		return "", errors.NotFound("file", file)
	}
	return file, nil
}

// clientForFile is the common prologue of every file-addressed handler:
// validate the workspace and file, then lease the workspace's analyzer.
func (c *controller) clientForFile(ctx context.Context, ws, file string) (analyzer.Client, string, func(), error) {
	resolvedWS, err := c.resolveWorkspace(ws)
	if err != nil {
		return nil, "", nil, err
	}
	resolvedFile, err := c.resolveFile(resolvedWS, file)
	if err != nil {
		return nil, "", nil, err
	}

	client, release, err := c.pool.GetOrCreate(ctx, resolvedWS)
	if err != nil {
		return nil, "", nil, err
	}
	return client, resolvedFile, release, nil
}
