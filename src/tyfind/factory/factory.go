// Package factory provides user-defined factories for test data.
package factory

import (
	"math/rand"

	"github.com/gofrs/uuid"
	"github.com/tyfind/tyfind/src/tyfind/model"
	"go.lsp.dev/jsonrpc2"
)

// UUID is a user-defined factory for a random uuid.UUID.
func UUID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

// JSONRPCRequest is a user-defined factory for a JSON-RPC request containing
// the specified method and parameters.
func JSONRPCRequest(method string, params interface{}) jsonrpc2.Request {
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), method, params)
	return req
}

// Range returns a random model.Range.
func Range() model.Range {
	start := model.Position{Line: uint32(rand.Intn(100)), Character: uint32(rand.Intn(100))}
	end := model.Position{Line: start.Line + uint32(rand.Intn(100)), Character: uint32(rand.Intn(100))}

	if start.Line == end.Line && start.Character > end.Character {
		end.Character = start.Character + uint32(rand.Intn(100))
	}

	return model.Range{
		Start: start,
		End:   end,
	}
}

// Location returns a location within the given file URI.
func Location(uri string) model.Location {
	return model.Location{URI: uri, Range: Range()}
}
