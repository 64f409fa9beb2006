package cli

import (
	"context"
	"path/filepath"

	tally "github.com/uber-go/tally/v4"
	"github.com/tyfind/tyfind/src/tyfind/client"
	"github.com/tyfind/tyfind/src/tyfind/gateway/analyzer"
	"github.com/tyfind/tyfind/src/tyfind/internal/core"
	"github.com/tyfind/tyfind/src/tyfind/internal/executor"
	"github.com/tyfind/tyfind/src/tyfind/internal/fs"
	"github.com/tyfind/tyfind/src/tyfind/model"
)

// runner is the slice of the daemon client the query commands need. The
// in-process fallback satisfies it with a one-shot analyzer so every command
// also works without a daemon when --no-daemon is given; it is not selected
// automatically when the daemon is unreachable or unsupported.
type runner interface {
	Hover(ctx context.Context, params *model.HoverParams) (*model.HoverResult, error)
	Definition(ctx context.Context, params *model.DefinitionParams) (*model.DefinitionResult, error)
	References(ctx context.Context, params *model.ReferencesParams) (*model.ReferencesResult, error)
	WorkspaceSymbols(ctx context.Context, params *model.WorkspaceSymbolsParams) (*model.WorkspaceSymbolsResult, error)
	DocumentSymbols(ctx context.Context, params *model.DocumentSymbolsParams) (*model.DocumentSymbolsResult, error)
	Inspect(ctx context.Context, params *model.InspectParams) (*model.InspectResult, error)
	Close() error
}

func newRunner(ctx context.Context, opts *rootOptions, workspaceRoot string) (runner, error) {
	if opts.noDaemon {
		return newLocalRunner(ctx, opts, workspaceRoot)
	}
	return client.EnsureRunning(ctx, opts.logger())
}

// localRunner drives a private analyzer child for the duration of one CLI
// invocation, paying the full startup cost the daemon exists to avoid.
type localRunner struct {
	analyzer  analyzer.Client
	workspace string
}

func newLocalRunner(ctx context.Context, opts *rootOptions, workspaceRoot string) (*localRunner, error) {
	provider, err := core.NewConfig()
	if err != nil {
		return nil, err
	}

	spawner, err := analyzer.NewSpawner(analyzer.Params{
		Config:   provider,
		Logger:   opts.logger(),
		FS:       fs.New(),
		Executor: executor.NewExecutor(),
		Stats:    tally.NoopScope,
	})
	if err != nil {
		return nil, err
	}

	c, err := spawner.Spawn(ctx, workspaceRoot, nil)
	if err != nil {
		return nil, err
	}
	return &localRunner{analyzer: c, workspace: workspaceRoot}, nil
}

func (l *localRunner) Hover(ctx context.Context, params *model.HoverParams) (*model.HoverResult, error) {
	hover, err := l.analyzer.Hover(ctx, l.abs(params.File), params.Line, params.Column)
	if err != nil {
		return nil, err
	}
	return &model.HoverResult{Hover: hover}, nil
}

func (l *localRunner) Definition(ctx context.Context, params *model.DefinitionParams) (*model.DefinitionResult, error) {
	locations, err := l.analyzer.Definition(ctx, l.abs(params.File), params.Line, params.Column)
	if err != nil {
		return nil, err
	}
	return &model.DefinitionResult{Locations: locations}, nil
}

func (l *localRunner) References(ctx context.Context, params *model.ReferencesParams) (*model.ReferencesResult, error) {
	locations, err := l.analyzer.References(ctx, l.abs(params.File), params.Line, params.Column, params.IncludeDeclaration)
	if err != nil {
		return nil, err
	}
	return &model.ReferencesResult{Locations: locations}, nil
}

func (l *localRunner) WorkspaceSymbols(ctx context.Context, params *model.WorkspaceSymbolsParams) (*model.WorkspaceSymbolsResult, error) {
	symbols, err := l.analyzer.WorkspaceSymbols(ctx, params.Query)
	if err != nil {
		return nil, err
	}
	if params.Limit > 0 && len(symbols) > params.Limit {
		symbols = symbols[:params.Limit]
	}
	return &model.WorkspaceSymbolsResult{Symbols: symbols}, nil
}

func (l *localRunner) DocumentSymbols(ctx context.Context, params *model.DocumentSymbolsParams) (*model.DocumentSymbolsResult, error) {
	symbols, err := l.analyzer.DocumentSymbols(ctx, l.abs(params.File))
	if err != nil {
		return nil, err
	}
	return &model.DocumentSymbolsResult{Symbols: symbols}, nil
}

func (l *localRunner) Inspect(ctx context.Context, params *model.InspectParams) (*model.InspectResult, error) {
	hover, err := l.analyzer.Hover(ctx, l.abs(params.File), params.Line, params.Column)
	if err != nil {
		return nil, err
	}
	references := []model.Location{}
	if params.IncludeReferences {
		if references, err = l.analyzer.References(ctx, l.abs(params.File), params.Line, params.Column, true); err != nil {
			return nil, err
		}
	}
	return &model.InspectResult{Hover: hover, References: references}, nil
}

// abs anchors relative file arguments at the workspace root, matching what
// the daemon does server-side.
func (l *localRunner) abs(file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(l.workspace, file)
}

func (l *localRunner) Close() error {
	return l.analyzer.Close(context.Background())
}
