package daemon

import (
	"context"
	"encoding/json"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	controller "github.com/tyfind/tyfind/src/tyfind/controller/daemon"
	"github.com/tyfind/tyfind/src/tyfind/entity"
	"github.com/tyfind/tyfind/src/tyfind/internal/errors"
	"github.com/tyfind/tyfind/src/tyfind/mapper"
	"github.com/tyfind/tyfind/src/tyfind/model"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/zap"
)

type jsonRPCRouter struct {
	daemon controller.Controller
	uuid   uuid.UUID
	stats  tally.Scope
	logger *zap.SugaredLogger
}

// HandleReq handles routing for a single request. Responses on one
// connection are written in request order; the CLI sends one request per
// connection so there is no in-flight overlap to manage.
func (r *jsonRPCRouter) HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	ctx = context.WithValue(ctx, entity.SessionContextKey, r.uuid)

	call, ok := req.(*jsonrpc2.Call)
	if !ok {
		// A request without an id cannot be answered; the protocol between
		// CLI and daemon never uses notifications.
		r.logger.Warnw("dropping notification", "method", req.Method())
		return nil
	}

	r.stats.Tagged(map[string]string{"method": call.Method()}).Counter("requests").Inc(1)

	result, err := r.dispatch(ctx, call)
	if err != nil {
		r.stats.Tagged(map[string]string{"method": call.Method()}).Counter("errors").Inc(1)
	}
	return reply(ctx, result, mapper.ErrorToWire(err))
}

func (r *jsonRPCRouter) UUID() uuid.UUID {
	return r.uuid
}

// dispatch validates parameters, applies the request budget, and invokes the
// matching controller method. A panicking handler is reported as an internal
// error instead of taking down the connection.
func (r *jsonRPCRouter) dispatch(ctx context.Context, call *jsonrpc2.Call) (result interface{}, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Errorw("handler panic", "method", call.Method(), "panic", rec)
			result, err = nil, errors.Internal("handler panic in %s", call.Method())
		}
	}()

	switch call.Method() {
	case model.MethodPing:
		return r.daemon.Ping(ctx)

	case model.MethodShutdown:
		return r.daemon.Shutdown(ctx)

	case model.MethodHover:
		var params model.HoverParams
		if err := r.positionParams(call, &params); err != nil {
			return nil, err
		}
		return r.timed(ctx, call.Method(), params.TimeoutMS, func(ctx context.Context) (interface{}, error) {
			return r.daemon.Hover(ctx, &params)
		})

	case model.MethodDefinition:
		var params model.DefinitionParams
		if err := r.positionParams(call, &params); err != nil {
			return nil, err
		}
		return r.timed(ctx, call.Method(), params.TimeoutMS, func(ctx context.Context) (interface{}, error) {
			return r.daemon.Definition(ctx, &params)
		})

	case model.MethodReferences:
		var params model.ReferencesParams
		if err := unmarshalParams(call, &params); err != nil {
			return nil, err
		}
		if err := requirePosition(&params.PositionParams); err != nil {
			return nil, err
		}
		return r.timed(ctx, call.Method(), params.TimeoutMS, func(ctx context.Context) (interface{}, error) {
			return r.daemon.References(ctx, &params)
		})

	case model.MethodWorkspaceSymbols:
		var params model.WorkspaceSymbolsParams
		if err := unmarshalParams(call, &params); err != nil {
			return nil, err
		}
		if params.Workspace == "" {
			return nil, errors.InvalidRequest("missing required parameter: workspace")
		}
		return r.timed(ctx, call.Method(), params.TimeoutMS, func(ctx context.Context) (interface{}, error) {
			return r.daemon.WorkspaceSymbols(ctx, &params)
		})

	case model.MethodDocumentSymbols:
		var params model.DocumentSymbolsParams
		if err := unmarshalParams(call, &params); err != nil {
			return nil, err
		}
		if params.Workspace == "" {
			return nil, errors.InvalidRequest("missing required parameter: workspace")
		}
		if params.File == "" {
			return nil, errors.InvalidRequest("missing required parameter: file")
		}
		return r.timed(ctx, call.Method(), params.TimeoutMS, func(ctx context.Context) (interface{}, error) {
			return r.daemon.DocumentSymbols(ctx, &params)
		})

	case model.MethodInspect:
		var params model.InspectParams
		if err := unmarshalParams(call, &params); err != nil {
			return nil, err
		}
		if err := requirePosition(&params.PositionParams); err != nil {
			return nil, err
		}
		return r.timed(ctx, call.Method(), params.TimeoutMS, func(ctx context.Context) (interface{}, error) {
			return r.daemon.Inspect(ctx, &params)
		})

	default:
		return nil, errors.MethodNotFound(call.Method())
	}
}

// timed runs fn under the per-request budget and reports an exceeded budget
// as a timeout regardless of how the underlying failure surfaced.
func (r *jsonRPCRouter) timed(ctx context.Context, method string, hintMS uint32, fn func(ctx context.Context) (interface{}, error)) (interface{}, error) {
	ctx, cancel := context.WithTimeout(ctx, r.daemon.RequestTimeout(hintMS))
	defer cancel()

	result, err := fn(ctx)
	if err != nil && ctx.Err() == context.DeadlineExceeded {
		return nil, errors.Timeout(method)
	}
	return result, err
}

func (r *jsonRPCRouter) positionParams(call *jsonrpc2.Call, params *model.PositionParams) error {
	if err := unmarshalParams(call, params); err != nil {
		return err
	}
	return requirePosition(params)
}

func unmarshalParams(call *jsonrpc2.Call, out interface{}) error {
	raw := call.Params()
	if len(raw) == 0 {
		return errors.InvalidRequest("missing parameters for %s", call.Method())
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.InvalidRequest("malformed parameters for %s: %v", call.Method(), err)
	}
	return nil
}

func requirePosition(params *model.PositionParams) error {
	if params.Workspace == "" {
		return errors.InvalidRequest("missing required parameter: workspace")
	}
	if params.File == "" {
		return errors.InvalidRequest("missing required parameter: file")
	}
	return nil
}
