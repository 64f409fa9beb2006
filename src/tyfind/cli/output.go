package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/tyfind/tyfind/src/tyfind/model"
)

// Formatter renders results as human-readable text or as JSON.
type Formatter struct {
	json bool

	header *color.Color
	loc    *color.Color
	dim    *color.Color
}

// NewFormatter builds a formatter for the named format.
func NewFormatter(format string) (*Formatter, error) {
	switch format {
	case "text":
		return &Formatter{
			header: color.New(color.Bold),
			loc:    color.New(color.FgCyan),
			dim:    color.New(color.Faint),
		}, nil
	case "json":
		return &Formatter{json: true}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want text or json)", format)
	}
}

func (f *Formatter) Hover(hover *model.HoverInfo, query string) string {
	if f.json {
		return marshal(map[string]interface{}{"query": query, "hover": hover})
	}
	if hover == nil {
		return f.dim.Sprintf("No hover information at %s", query)
	}

	var b strings.Builder
	b.WriteString(f.header.Sprintf("Hover @ %s", query))
	b.WriteString("\n")
	b.WriteString(strings.TrimSpace(hover.Contents))
	return b.String()
}

func (f *Formatter) Locations(kind string, locations []model.Location, query string) string {
	if f.json {
		return marshal(map[string]interface{}{"query": query, "locations": locations})
	}
	if len(locations) == 0 {
		return f.dim.Sprintf("No %s found for %s", strings.ToLower(kind), query)
	}

	var b strings.Builder
	b.WriteString(f.header.Sprintf("%s for %s (%d)", kind, query, len(locations)))
	for _, loc := range locations {
		b.WriteString("\n  ")
		b.WriteString(f.loc.Sprint(formatLocation(loc)))
	}
	return b.String()
}

func (f *Formatter) Symbols(symbols []model.SymbolInformation, query string) string {
	if f.json {
		return marshal(map[string]interface{}{"query": query, "symbols": symbols})
	}
	if len(symbols) == 0 {
		return f.dim.Sprintf("No symbols matching %q", query)
	}

	var b strings.Builder
	b.WriteString(f.header.Sprintf("Symbols matching %q (%d)", query, len(symbols)))
	for _, s := range symbols {
		b.WriteString("\n  ")
		b.WriteString(fmt.Sprintf("%-12s %s", symbolKindName(s.Kind), s.Name))
		if s.ContainerName != "" {
			b.WriteString(f.dim.Sprintf(" (in %s)", s.ContainerName))
		}
		b.WriteString("  ")
		b.WriteString(f.loc.Sprint(formatLocation(s.Location)))
	}
	return b.String()
}

func (f *Formatter) Outline(symbols []model.DocumentSymbol, file string) string {
	if f.json {
		return marshal(map[string]interface{}{"file": file, "symbols": symbols})
	}
	if len(symbols) == 0 {
		return f.dim.Sprintf("No symbols in %s", file)
	}

	var b strings.Builder
	b.WriteString(f.header.Sprintf("Outline of %s", file))
	f.writeOutline(&b, symbols, 1)
	return b.String()
}

func (f *Formatter) writeOutline(b *strings.Builder, symbols []model.DocumentSymbol, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, s := range symbols {
		b.WriteString("\n")
		b.WriteString(indent)
		b.WriteString(fmt.Sprintf("%-12s %s", symbolKindName(s.Kind), s.Name))
		b.WriteString(f.dim.Sprintf("  :%d", s.SelectionRange.Start.Line+1))
		if len(s.Children) > 0 {
			f.writeOutline(b, s.Children, depth+1)
		}
	}
}

func (f *Formatter) Inspect(result *model.InspectResult, query string) string {
	if f.json {
		return marshal(map[string]interface{}{"query": query, "hover": result.Hover, "references": result.References})
	}

	var b strings.Builder
	b.WriteString(f.Hover(result.Hover, query))
	if len(result.References) > 0 {
		b.WriteString("\n\n")
		b.WriteString(f.Locations("References", result.References, query))
	}
	return b.String()
}

func (f *Formatter) Ping(result *model.PingResult) string {
	if f.json {
		return marshal(result)
	}
	return fmt.Sprintf("Daemon %s: uptime %ds, %d warm workspace(s)",
		result.Status, result.UptimeSeconds, result.ActiveWorkspaces)
}

// formatLocation renders path:line:column with one-based coordinates for
// humans.
func formatLocation(loc model.Location) string {
	path := strings.TrimPrefix(loc.URI, "file://")
	return fmt.Sprintf("%s:%d:%d", path, loc.Range.Start.Line+1, loc.Range.Start.Character+1)
}

// symbolKindName names the LSP SymbolKind values the ty analyzer produces.
func symbolKindName(kind int64) string {
	names := map[int64]string{
		1: "file", 2: "module", 3: "namespace", 4: "package", 5: "class",
		6: "method", 7: "property", 8: "field", 9: "constructor", 10: "enum",
		11: "interface", 12: "function", 13: "variable", 14: "constant",
		15: "string", 16: "number", 17: "boolean", 18: "array", 19: "object",
		20: "key", 21: "null", 22: "enum-member", 23: "struct", 24: "event",
		25: "operator", 26: "type-param",
	}
	if name, ok := names[kind]; ok {
		return name
	}
	return fmt.Sprintf("kind-%d", kind)
}

func marshal(v interface{}) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(data)
}
