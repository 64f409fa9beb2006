package mapper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyfind/tyfind/src/tyfind/internal/errors"
	"github.com/tyfind/tyfind/src/tyfind/model"
)

func TestHoverFromRaw(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		want     *model.HoverInfo
		wantCode int32
	}{
		{
			name: "null result",
			raw:  `null`,
			want: nil,
		},
		{
			name: "markup contents",
			raw:  `{"contents":{"kind":"markdown","value":"def foo() -> int"}}`,
			want: &model.HoverInfo{Contents: "def foo() -> int"},
		},
		{
			name: "scalar contents",
			raw:  `{"contents":"int"}`,
			want: &model.HoverInfo{Contents: "int"},
		},
		{
			name: "marked string contents",
			raw:  `{"contents":{"language":"python","value":"x: str"}}`,
			want: &model.HoverInfo{Contents: "x: str"},
		},
		{
			name: "array contents",
			raw:  `{"contents":["first",{"language":"python","value":"second"}]}`,
			want: &model.HoverInfo{Contents: "first\nsecond"},
		},
		{
			name: "contents with range",
			raw:  `{"contents":"int","range":{"start":{"line":1,"character":2},"end":{"line":1,"character":5}}}`,
			want: &model.HoverInfo{
				Contents: "int",
				Range: &model.Range{
					Start: model.Position{Line: 1, Character: 2},
					End:   model.Position{Line: 1, Character: 5},
				},
			},
		},
		{
			name:     "garbage",
			raw:      `42`,
			wantCode: errors.CodeAnalyzerFailed,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			hover, err := HoverFromRaw(json.RawMessage(tt.raw))
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, errors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, hover)
		})
	}
}

func TestLocationsFromRaw(t *testing.T) {
	location := `{"uri":"file:///tmp/ws/a.py","range":{"start":{"line":0,"character":4},"end":{"line":0,"character":7}}}`
	link := `{"targetUri":"file:///tmp/ws/b.py","targetRange":{"start":{"line":3,"character":0},"end":{"line":9,"character":0}},"targetSelectionRange":{"start":{"line":3,"character":6},"end":{"line":3,"character":9}}}`

	tests := []struct {
		name     string
		raw      string
		wantURIs []string
		wantCode int32
	}{
		{
			name:     "null",
			raw:      `null`,
			wantURIs: []string{},
		},
		{
			name:     "single location object",
			raw:      location,
			wantURIs: []string{"file:///tmp/ws/a.py"},
		},
		{
			name:     "location array",
			raw:      `[` + location + `]`,
			wantURIs: []string{"file:///tmp/ws/a.py"},
		},
		{
			name:     "location link array",
			raw:      `[` + link + `]`,
			wantURIs: []string{"file:///tmp/ws/b.py"},
		},
		{
			name:     "empty array",
			raw:      `[]`,
			wantURIs: []string{},
		},
		{
			name:     "garbage",
			raw:      `"nope"`,
			wantCode: errors.CodeAnalyzerFailed,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			locations, err := LocationsFromRaw(json.RawMessage(tt.raw))
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, errors.CodeOf(err))
				return
			}
			require.NoError(t, err)

			uris := make([]string, 0, len(locations))
			for _, loc := range locations {
				uris = append(uris, loc.URI)
			}
			assert.Equal(t, tt.wantURIs, uris)
		})
	}
}

func TestLocationsFromRawLinkSelectionRange(t *testing.T) {
	raw := `[{"targetUri":"file:///tmp/ws/b.py","targetRange":{"start":{"line":3,"character":0},"end":{"line":9,"character":0}},"targetSelectionRange":{"start":{"line":3,"character":6},"end":{"line":3,"character":9}}}]`

	locations, err := LocationsFromRaw(json.RawMessage(raw))
	require.NoError(t, err)
	require.Len(t, locations, 1)

	// The selection range (the name itself) wins over the full range.
	assert.Equal(t, uint32(3), locations[0].Range.Start.Line)
	assert.Equal(t, uint32(6), locations[0].Range.Start.Character)
}

func TestSymbolsFromRaw(t *testing.T) {
	raw := `[{"name":"foo","kind":12,"containerName":"a","location":{"uri":"file:///tmp/ws/a.py","range":{"start":{"line":0,"character":4},"end":{"line":0,"character":7}}}}]`

	symbols, err := SymbolsFromRaw(json.RawMessage(raw))
	require.NoError(t, err)
	require.Len(t, symbols, 1)
	assert.Equal(t, "foo", symbols[0].Name)
	assert.Equal(t, int64(12), symbols[0].Kind)
	assert.Equal(t, "a", symbols[0].ContainerName)
	assert.Equal(t, "file:///tmp/ws/a.py", symbols[0].Location.URI)
}

func TestDocumentSymbolsFromRaw(t *testing.T) {
	t.Run("hierarchical", func(t *testing.T) {
		raw := `[{"name":"Animal","kind":5,"range":{"start":{"line":0,"character":0},"end":{"line":10,"character":0}},"selectionRange":{"start":{"line":0,"character":6},"end":{"line":0,"character":12}},"children":[{"name":"speak","kind":6,"range":{"start":{"line":2,"character":4},"end":{"line":4,"character":0}},"selectionRange":{"start":{"line":2,"character":8},"end":{"line":2,"character":13}}}]}]`

		symbols, err := DocumentSymbolsFromRaw(json.RawMessage(raw))
		require.NoError(t, err)
		require.Len(t, symbols, 1)
		assert.Equal(t, "Animal", symbols[0].Name)
		require.Len(t, symbols[0].Children, 1)
		assert.Equal(t, "speak", symbols[0].Children[0].Name)
	})

	t.Run("flat symbol information", func(t *testing.T) {
		raw := `[{"name":"foo","kind":12,"location":{"uri":"file:///tmp/ws/a.py","range":{"start":{"line":0,"character":4},"end":{"line":0,"character":7}}}}]`

		symbols, err := DocumentSymbolsFromRaw(json.RawMessage(raw))
		require.NoError(t, err)
		require.Len(t, symbols, 1)
		assert.Equal(t, "foo", symbols[0].Name)
		assert.Equal(t, uint32(4), symbols[0].Range.Start.Character)
	})

	t.Run("null", func(t *testing.T) {
		symbols, err := DocumentSymbolsFromRaw(json.RawMessage(`null`))
		require.NoError(t, err)
		assert.Empty(t, symbols)
	})
}
