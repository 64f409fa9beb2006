// Package app assembles the tyfind daemon.
package app

import (
	"context"
	"time"

	tally "github.com/uber-go/tally/v4"
	"github.com/tyfind/tyfind/src/tyfind/handler"
	"github.com/tyfind/tyfind/src/tyfind/internal/core"
	"github.com/tyfind/tyfind/src/tyfind/internal/endpoint"
	"github.com/tyfind/tyfind/src/tyfind/internal/executor"
	"github.com/tyfind/tyfind/src/tyfind/internal/fs"
	"github.com/tyfind/tyfind/src/tyfind/internal/rpcfx"
	"go.uber.org/fx"
)

// Module defines the tyfind daemon application module.
var Module = fx.Options(
	handler.Module, // inbounds
	rpcfx.Module,
	endpoint.Module,
	fs.Module,
	executor.Module,
	core.ConfigModule,
	core.LoggerModule,
	fx.Provide(func(lc fx.Lifecycle) tally.Scope {
		rs, closer := tally.NewRootScope(tally.ScopeOptions{
			Tags: map[string]string{
				"service": "tyfind-daemon",
			},
		}, 1*time.Second)

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})

		return rs
	}),
)
