package mapper

import (
	"encoding/json"
	"strings"

	"github.com/tyfind/tyfind/src/tyfind/internal/errors"
	"github.com/tyfind/tyfind/src/tyfind/model"
	"go.lsp.dev/uri"
)

// The analyzer's responses are loosely typed at the wire: a definition may be
// a single Location, an array of Locations, or an array of LocationLinks, and
// hover contents come in four historical shapes. Each decoder below accepts
// every shape the protocol permits and maps anything else to an
// analyzer-failed error rather than panicking a handler.

// FileURI converts an absolute file path to a file:// URI.
func FileURI(path string) uri.URI {
	return uri.File(path)
}

// looseHover mirrors protocol.Hover without committing to a contents shape.
type looseHover struct {
	Contents json.RawMessage `json:"contents"`
	Range    *model.Range    `json:"range,omitempty"`
}

// looseLocationLink carries the LocationLink fields needed to flatten it into
// a Location.
type looseLocationLink struct {
	TargetURI            string       `json:"targetUri"`
	TargetSelectionRange *model.Range `json:"targetSelectionRange"`
	TargetRange          *model.Range `json:"targetRange"`
}

// HoverFromRaw decodes a textDocument/hover result. A null result is a valid
// "nothing to show" answer and maps to nil.
func HoverFromRaw(raw json.RawMessage) (*model.HoverInfo, error) {
	if isNull(raw) {
		return nil, nil
	}

	var hover looseHover
	if err := json.Unmarshal(raw, &hover); err != nil {
		return nil, errors.AnalyzerFailed("unexpected hover payload: %v", err)
	}

	contents, err := flattenHoverContents(hover.Contents)
	if err != nil {
		return nil, err
	}
	return &model.HoverInfo{Contents: contents, Range: hover.Range}, nil
}

// flattenHoverContents accepts the four shapes LSP permits for hover
// contents: a bare string, a MarkupContent object, a MarkedString object, or
// an array of either.
func flattenHoverContents(raw json.RawMessage) (string, error) {
	if isNull(raw) {
		return "", nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}

	var markup struct {
		Value *string `json:"value"`
	}
	if err := json.Unmarshal(raw, &markup); err == nil && markup.Value != nil {
		return *markup.Value, nil
	}

	var parts []json.RawMessage
	if err := json.Unmarshal(raw, &parts); err == nil {
		flattened := make([]string, 0, len(parts))
		for _, part := range parts {
			value, err := flattenHoverContents(part)
			if err != nil {
				return "", err
			}
			flattened = append(flattened, value)
		}
		return strings.Join(flattened, "\n"), nil
	}

	return "", errors.AnalyzerFailed("unexpected hover contents shape")
}

// LocationsFromRaw decodes a definition or references result: null, a single
// Location, an array of Locations, or an array of LocationLinks.
func LocationsFromRaw(raw json.RawMessage) ([]model.Location, error) {
	if isNull(raw) {
		return []model.Location{}, nil
	}

	var single model.Location
	if err := json.Unmarshal(raw, &single); err == nil && single.URI != "" {
		return []model.Location{single}, nil
	}

	var many []json.RawMessage
	if err := json.Unmarshal(raw, &many); err != nil {
		return nil, errors.AnalyzerFailed("unexpected location payload: %v", err)
	}

	locations := make([]model.Location, 0, len(many))
	for _, item := range many {
		var loc model.Location
		if err := json.Unmarshal(item, &loc); err == nil && loc.URI != "" {
			locations = append(locations, loc)
			continue
		}

		var link looseLocationLink
		if err := json.Unmarshal(item, &link); err == nil && link.TargetURI != "" {
			r := link.TargetSelectionRange
			if r == nil {
				r = link.TargetRange
			}
			if r == nil {
				r = &model.Range{}
			}
			locations = append(locations, model.Location{URI: link.TargetURI, Range: *r})
			continue
		}

		return nil, errors.AnalyzerFailed("unexpected location entry shape")
	}
	return locations, nil
}

// looseSymbolInformation mirrors protocol.SymbolInformation.
type looseSymbolInformation struct {
	Name          string         `json:"name"`
	Kind          int64          `json:"kind"`
	ContainerName string         `json:"containerName,omitempty"`
	Location      model.Location `json:"location"`
}

// SymbolsFromRaw decodes a workspace/symbol result.
func SymbolsFromRaw(raw json.RawMessage) ([]model.SymbolInformation, error) {
	if isNull(raw) {
		return []model.SymbolInformation{}, nil
	}

	var loose []looseSymbolInformation
	if err := json.Unmarshal(raw, &loose); err != nil {
		return nil, errors.AnalyzerFailed("unexpected workspace symbol payload: %v", err)
	}

	symbols := make([]model.SymbolInformation, 0, len(loose))
	for _, s := range loose {
		symbols = append(symbols, model.SymbolInformation{
			Name:          s.Name,
			Kind:          s.Kind,
			ContainerName: s.ContainerName,
			Location:      s.Location,
		})
	}
	return symbols, nil
}

// looseDocumentSymbol mirrors protocol.DocumentSymbol, including nesting.
type looseDocumentSymbol struct {
	Name           string                `json:"name"`
	Detail         string                `json:"detail,omitempty"`
	Kind           int64                 `json:"kind"`
	Range          model.Range           `json:"range"`
	SelectionRange model.Range           `json:"selectionRange"`
	Location       *model.Location       `json:"location,omitempty"`
	Children       []looseDocumentSymbol `json:"children,omitempty"`
}

// DocumentSymbolsFromRaw decodes a textDocument/documentSymbol result. The
// server may answer with hierarchical DocumentSymbols or with flat
// SymbolInformation records; the flat shape is lifted into childless nodes.
func DocumentSymbolsFromRaw(raw json.RawMessage) ([]model.DocumentSymbol, error) {
	if isNull(raw) {
		return []model.DocumentSymbol{}, nil
	}

	var loose []looseDocumentSymbol
	if err := json.Unmarshal(raw, &loose); err != nil {
		return nil, errors.AnalyzerFailed("unexpected document symbol payload: %v", err)
	}

	return documentSymbols(loose), nil
}

func documentSymbols(loose []looseDocumentSymbol) []model.DocumentSymbol {
	symbols := make([]model.DocumentSymbol, 0, len(loose))
	for _, s := range loose {
		sym := model.DocumentSymbol{
			Name:           s.Name,
			Detail:         s.Detail,
			Kind:           s.Kind,
			Range:          s.Range,
			SelectionRange: s.SelectionRange,
		}
		// Flat SymbolInformation records carry a location instead of ranges.
		if s.Location != nil && sym.Range == (model.Range{}) {
			sym.Range = s.Location.Range
			sym.SelectionRange = s.Location.Range
		}
		if len(s.Children) > 0 {
			sym.Children = documentSymbols(s.Children)
		}
		symbols = append(symbols, sym)
	}
	return symbols
}

func isNull(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return len(trimmed) == 0 || trimmed == "null"
}
