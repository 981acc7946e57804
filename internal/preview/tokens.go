package preview

import (
	"strings"

	"github.com/opencode-ai/themegen/internal/helix"
	"github.com/opencode-ai/themegen/internal/mapping"
)

// Tokens defines the semantic color roles used to frame a preview.
type Tokens struct {
	Background string
	Panel      string
	Text       string
	TextMuted  string
	Border     string
	Accent     string
	Error      string
	Warning    string
}

// FallbackTokens fill roles a theme leaves unset.
var FallbackTokens = Tokens{
	Background: "#0B0F14",
	Panel:      "#121821",
	Text:       "#E6EDF3",
	TextMuted:  "#8B9AAE",
	Border:     "#223043",
	Accent:     "#5B8DEF",
	Error:      "#F85149",
	Warning:    "#D29922",
}

type tokenSource struct {
	field   *string
	scope   string
	channel mapping.Channel
}

// DeriveTokens resolves preview roles from the theme's UI scopes.
func DeriveTokens(theme *helix.Theme, resolver mapping.ColorResolver) Tokens {
	tokens := FallbackTokens
	sources := []tokenSource{
		{&tokens.Background, "ui.background", mapping.ChannelBackground},
		{&tokens.Panel, "ui.cursorline", mapping.ChannelBackground},
		{&tokens.Text, "ui.text", mapping.ChannelForeground},
		{&tokens.TextMuted, "comment", mapping.ChannelForeground},
		{&tokens.Border, "ui.window", mapping.ChannelForeground},
		{&tokens.Accent, "ui.cursor", mapping.ChannelBackground},
		{&tokens.Error, "error", mapping.ChannelForeground},
		{&tokens.Warning, "warning", mapping.ChannelForeground},
	}
	for _, src := range sources {
		if value := resolveScope(theme, resolver, src.scope, src.channel); value != "" {
			*src.field = value
		}
	}
	return tokens
}

// ScopeStyle finds the style for scope, falling back to its dotted parents
// the way Helix does ("keyword.control.repeat" → "keyword.control" → "keyword").
func ScopeStyle(theme *helix.Theme, scope string) (helix.Style, string, bool) {
	for name := scope; name != ""; {
		if _, ok := theme.Lookup(name); ok {
			return theme.Style(name), name, true
		}
		idx := strings.LastIndex(name, ".")
		if idx < 0 {
			break
		}
		name = name[:idx]
	}
	return helix.Style{}, "", false
}

func resolveScope(theme *helix.Theme, resolver mapping.ColorResolver, scope string, channel mapping.Channel) string {
	_, matched, ok := ScopeStyle(theme, scope)
	if !ok {
		return ""
	}
	entry := mapping.Entry{Target: scope, Source: matched, Channel: channel}
	return mapping.Apply(entry, theme, resolver).Color(channel)
}
