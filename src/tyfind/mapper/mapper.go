// Package mapper converts between context values, wire errors, and the loose
// JSON shapes the analyzer produces.
package mapper

import (
	"context"
	"encoding/json"
	stderrors "errors"

	"github.com/gofrs/uuid"
	"github.com/tyfind/tyfind/src/tyfind/entity"
	"github.com/tyfind/tyfind/src/tyfind/internal/errors"
	"go.lsp.dev/jsonrpc2"
)

// ContextToSessionUUID extracts the session UUID stored in the context.
func ContextToSessionUUID(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctx.Value(entity.SessionContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("no session UUID on context")
	}
	return id, nil
}

// ErrorToWire converts an internal error into the jsonrpc2 error that will be
// serialised onto the connection, carrying the taxonomy code and optional
// structured data.
func ErrorToWire(err error) error {
	if err == nil {
		return nil
	}

	rpcErr := errors.AsRPC(err)
	wireErr := jsonrpc2.NewError(jsonrpc2.Code(rpcErr.Code), rpcErr.Message)
	if rpcErr.Data != nil {
		if raw, marshalErr := json.Marshal(rpcErr.Data); marshalErr == nil {
			wireErr.Data = (*json.RawMessage)(&raw)
		}
	}
	return wireErr
}

// WireToError converts a jsonrpc2 error received from the daemon back into
// the typed taxonomy. Errors that are not jsonrpc2 errors, such as transport
// failures, are returned unchanged.
func WireToError(err error) error {
	if err == nil {
		return nil
	}

	var wireErr *jsonrpc2.Error
	if stderrors.As(err, &wireErr) {
		return &errors.RPCError{Code: int32(wireErr.Code), Message: wireErr.Message}
	}
	return err
}

// ToZeroBased converts the CLI's one-based line/column pair to the zero-based
// coordinates used on the wire, saturating at zero.
func ToZeroBased(line, column uint32) (uint32, uint32) {
	if line > 0 {
		line--
	}
	if column > 0 {
		column--
	}
	return line, column
}
