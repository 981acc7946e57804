package opencode

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/opencode-ai/themegen/internal/color"
	"github.com/opencode-ai/themegen/internal/helix"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioTheme = `
string = "red"
comment = { fg = "red", modifiers = ["italic"] }
variable = "unknownColor"
"ui.background" = { bg = "base" }
"ui.text" = { fg = "#cdd6f4" }
"ui.selection" = { fg = "red" }

[palette]
red = "#ff0000"
base = "#1e1e2e"
amber = "#f9e2af"
`

func build(t *testing.T, text string) (Document, *color.Resolver) {
	t.Helper()
	theme, err := helix.Parse([]byte(text))
	require.NoError(t, err)
	resolver := color.NewResolver(theme.Palette, zerolog.Nop())
	return Build(theme, resolver), resolver
}

func TestBuildScenario(t *testing.T) {
	doc, resolver := build(t, scenarioTheme)

	assert.Equal(t, SchemaURL, doc.Schema)
	assert.Equal(t, map[string]string{"red": "#ff0000", "base": "#1e1e2e", "amber": "#f9e2af"}, doc.Defs)

	assert.Equal(t, "#FF0000", doc.Theme["syntaxString"])
	assert.Equal(t, "#FF0000", doc.Theme["syntaxComment"])
	assert.Equal(t, "#FF0000", doc.Theme["textMuted"])
	assert.Equal(t, "#1E1E2E", doc.Theme["background"])
	assert.Equal(t, "#1E1E2E", doc.Theme["selectedListItemText"])
	assert.Equal(t, "#CDD6F4", doc.Theme["text"])
	assert.Equal(t, "#CDD6F4", doc.Theme["markdownText"])

	// Unresolved reference.
	assert.Equal(t, Unset, doc.Theme["syntaxVariable"])
	require.Len(t, resolver.Warnings(), 1)
	assert.Equal(t, "unknownColor", resolver.Warnings()[0].Ref)

	// Scope absent from the theme.
	assert.Equal(t, Unset, doc.Theme["syntaxKeyword"])
	// Channel never set: ui.selection only has a foreground.
	assert.Equal(t, Unset, doc.Theme["primary"])
	// No source at all.
	assert.Equal(t, Unset, doc.Theme["markdownEmph"])
	assert.Equal(t, Unset, doc.Theme["secondary"])

	assert.Len(t, doc.Theme, Table.Len())
	mapped, unset := doc.Counts()
	assert.Equal(t, 8, mapped)
	assert.Equal(t, Table.Len()-8, unset)
}

func TestGenerateFormat(t *testing.T) {
	theme, err := helix.Parse([]byte(scenarioTheme))
	require.NoError(t, err)

	out, err := Generate(theme, color.NewResolver(theme.Palette, zerolog.Nop()))
	require.NoError(t, err)

	text := string(out)
	assert.True(t, strings.HasPrefix(text, "{\n  \"$schema\": \"https://opencode.ai/theme.json\",\n  \"defs\": {\n    \"amber\": \"#f9e2af\",\n    \"base\": \"#1e1e2e\",\n    \"red\": \"#ff0000\"\n  },\n  \"theme\": {\n    \"accent\": \"none\",\n"), text)
	assert.True(t, strings.HasSuffix(text, "}\n"))

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Len(t, decoded, 3)
}

func TestGenerateIdempotent(t *testing.T) {
	theme, err := helix.Parse([]byte(scenarioTheme))
	require.NoError(t, err)

	first, err := Generate(theme, color.NewResolver(theme.Palette, zerolog.Nop()))
	require.NoError(t, err)
	second, err := Generate(theme, color.NewResolver(theme.Palette, zerolog.Nop()))
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second))
}

func TestGenerateEmptyTheme(t *testing.T) {
	doc, resolver := build(t, "")

	assert.NotNil(t, doc.Defs)
	for key, value := range doc.Theme {
		assert.Equal(t, Unset, value, key)
	}
	assert.Empty(t, resolver.Warnings())

	out, err := Render(doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), "\"defs\": {},")
}

func TestRenderDoesNotEscapeHTML(t *testing.T) {
	out, err := Render(Document{Schema: SchemaURL, Defs: map[string]string{"a<b": "#000000"}, Theme: map[string]string{}})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"a<b"`)
}

func TestTableUnsetFields(t *testing.T) {
	var unset []string
	for _, entry := range Table.Entries() {
		if !entry.HasSource() {
			unset = append(unset, entry.Target)
		}
	}

	assert.Equal(t, []string{
		"diffAddedBg",
		"diffAddedLineNumberBg",
		"diffRemovedBg",
		"diffRemovedLineNumberBg",
		"markdownEmph",
		"markdownStrong",
		"secondary",
		"success",
	}, unset)
}
