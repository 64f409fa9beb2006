package handler

import (
	controller "github.com/tyfind/tyfind/src/tyfind/controller/daemon"
	"github.com/tyfind/tyfind/src/tyfind/gateway/analyzer"
	daemonhandler "github.com/tyfind/tyfind/src/tyfind/handler/daemon"
	"github.com/tyfind/tyfind/src/tyfind/repository/pool"
	"go.uber.org/fx"
)

// Module provides the daemon server into an Fx application.
var Module = fx.Options(
	analyzer.Module,
	pool.Module,
	fx.Provide(controller.New),
	fx.Provide(daemonhandler.New),
	fx.Invoke(func(h daemonhandler.Handler) {}),
	fx.Invoke(func(c controller.Controller) {}),
)
