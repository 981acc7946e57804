package mapping

import (
	"strings"

	"github.com/opencode-ai/themegen/internal/helix"
)

// ColorResolver resolves a palette reference or literal to a hex color.
type ColorResolver interface {
	Resolve(value string) (string, bool)
}

// Resolved is the output of applying an entry. Empty fields are absent.
type Resolved struct {
	Foreground string `json:"foreground,omitempty" yaml:"foreground,omitempty"`
	Background string `json:"background,omitempty" yaml:"background,omitempty"`
	FontStyle  string `json:"fontStyle,omitempty" yaml:"fontStyle,omitempty"`
}

// IsZero reports whether nothing resolved.
func (r Resolved) IsZero() bool {
	return r.Foreground == "" && r.Background == "" && r.FontStyle == ""
}

// Color returns the value of a single-color channel.
func (r Resolved) Color(channel Channel) string {
	switch channel {
	case ChannelForeground:
		return r.Foreground
	case ChannelBackground:
		return r.Background
	default:
		return ""
	}
}

// Apply normalizes the entry's source scope and resolves the channels it reads.
// Entries without a source and scopes missing from the theme resolve to nothing.
func Apply(entry Entry, theme *helix.Theme, resolver ColorResolver) Resolved {
	if !entry.HasSource() {
		return Resolved{}
	}

	style := theme.Style(entry.Source)

	var out Resolved
	switch entry.Channel {
	case ChannelForeground:
		out.Foreground = resolve(resolver, style.Foreground)
	case ChannelBackground:
		out.Background = resolve(resolver, style.Background)
	case ChannelStyle:
		out.Foreground = resolve(resolver, style.Foreground)
		out.Background = resolve(resolver, style.Background)
		out.FontStyle = FontStyle(style.Modifiers)
	}
	return out
}

func resolve(resolver ColorResolver, value string) string {
	if value == "" {
		return ""
	}
	hex, ok := resolver.Resolve(value)
	if !ok {
		return ""
	}
	return hex
}

// fontStyles maps Helix modifiers to TextMate font styles.
var fontStyles = map[string]string{
	"bold":        "bold",
	"italic":      "italic",
	"underline":   "underline",
	"crossed_out": "strikethrough",
}

// FontStyle translates modifiers in order, dropping unknown ones, and joins
// them with spaces. It returns "" when nothing translates.
func FontStyle(modifiers []string) string {
	if len(modifiers) == 0 {
		return ""
	}

	styles := make([]string, 0, len(modifiers))
	for _, modifier := range modifiers {
		if style, ok := fontStyles[modifier]; ok {
			styles = append(styles, style)
		}
	}
	return strings.Join(styles, " ")
}
