// Package model contains the wire types exchanged between the tyfind CLI and
// the daemon. Both sides speak JSON-RPC 2.0 framed with Content-Length
// headers, the same framing the analyzer child uses.
package model

// Method names accepted by the daemon. Anything else is answered with
// CodeMethodNotFound.
const (
	MethodPing             = "ping"
	MethodHover            = "hover"
	MethodDefinition       = "definition"
	MethodReferences       = "references"
	MethodWorkspaceSymbols = "workspace_symbols"
	MethodDocumentSymbols  = "document_symbols"
	MethodInspect          = "inspect"
	MethodShutdown         = "shutdown"
)

// PositionParams is the common parameter shape for requests that address a
// position within a file. Line and Column are zero-based; the CLI converts
// from its one-based view before sending.
type PositionParams struct {
	Workspace string `json:"workspace"`
	File      string `json:"file"`
	Line      uint32 `json:"line"`
	Column    uint32 `json:"column"`

	// TimeoutMS optionally overrides the daemon's per-request timeout.
	TimeoutMS uint32 `json:"timeout_ms,omitempty"`
}

// HoverParams are the parameters to the "hover" method.
type HoverParams = PositionParams

// DefinitionParams are the parameters to the "definition" method.
type DefinitionParams = PositionParams

// ReferencesParams are the parameters to the "references" method.
type ReferencesParams struct {
	PositionParams

	IncludeDeclaration bool `json:"include_declaration,omitempty"`
}

// WorkspaceSymbolsParams are the parameters to the "workspace_symbols" method.
type WorkspaceSymbolsParams struct {
	Workspace string `json:"workspace"`
	Query     string `json:"query"`
	Limit     int    `json:"limit,omitempty"`
	TimeoutMS uint32 `json:"timeout_ms,omitempty"`
}

// DocumentSymbolsParams are the parameters to the "document_symbols" method.
type DocumentSymbolsParams struct {
	Workspace string `json:"workspace"`
	File      string `json:"file"`
	TimeoutMS uint32 `json:"timeout_ms,omitempty"`
}

// InspectParams are the parameters to the "inspect" method, which combines
// hover and optionally references into one round trip.
type InspectParams struct {
	PositionParams

	IncludeReferences bool `json:"include_references,omitempty"`
}

// Position is a zero-based line/character pair.
type Position struct {
	Line      uint32 `json:"line"`
	Character uint32 `json:"character"`
}

// Range is a half-open [start, end) span within a document.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Location names a range within a file.
type Location struct {
	URI   string `json:"uri"`
	Range Range  `json:"range"`
}

// HoverInfo is the flattened hover payload: markdown or plain text contents
// plus the range the hover applies to, when the analyzer reported one.
type HoverInfo struct {
	Contents string `json:"contents"`
	Range    *Range `json:"range,omitempty"`
}

// SymbolInformation is a flat symbol record from a workspace-wide query.
type SymbolInformation struct {
	Name          string   `json:"name"`
	Kind          int64    `json:"kind"`
	ContainerName string   `json:"container_name,omitempty"`
	Location      Location `json:"location"`
}

// DocumentSymbol is one node of the hierarchical per-file outline.
type DocumentSymbol struct {
	Name           string           `json:"name"`
	Detail         string           `json:"detail,omitempty"`
	Kind           int64            `json:"kind"`
	Range          Range            `json:"range"`
	SelectionRange Range            `json:"selection_range"`
	Children       []DocumentSymbol `json:"children,omitempty"`
}

// PingResult reports daemon health.
type PingResult struct {
	Status           string `json:"status"`
	UptimeSeconds    uint64 `json:"uptime_seconds"`
	ActiveWorkspaces int    `json:"active_workspaces"`
	CacheSize        int    `json:"cache_size"`
}

// HoverResult carries the hover payload; Hover is nil when the analyzer had
// nothing to say about the position.
type HoverResult struct {
	Hover *HoverInfo `json:"hover,omitempty"`
}

// DefinitionResult lists the locations defining the symbol at the queried
// position.
type DefinitionResult struct {
	Locations []Location `json:"locations"`
}

// ReferencesResult lists every location referencing the queried symbol.
type ReferencesResult struct {
	Locations []Location `json:"locations"`
}

// WorkspaceSymbolsResult lists symbols matching a workspace-wide query.
type WorkspaceSymbolsResult struct {
	Symbols []SymbolInformation `json:"symbols"`
}

// DocumentSymbolsResult is the hierarchical outline of one file.
type DocumentSymbolsResult struct {
	Symbols []DocumentSymbol `json:"symbols"`
}

// InspectResult combines hover with an optional reference listing.
type InspectResult struct {
	Hover      *HoverInfo `json:"hover,omitempty"`
	References []Location `json:"references"`
}

// ShutdownResult acknowledges an orderly shutdown request. The response is
// written before teardown begins.
type ShutdownResult struct {
	Acknowledged bool `json:"acknowledged"`
}
