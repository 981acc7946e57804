// Package preview renders a terminal preview of a Helix theme with lipgloss.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/themegen/internal/color"
	"github.com/opencode-ai/themegen/internal/helix"
	"github.com/opencode-ai/themegen/internal/mapping"
)

// Styles contains lipgloss styles derived from preview tokens.
type Styles struct {
	Tokens  Tokens
	Title   lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Panel   lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// BuildStyles converts tokens into lipgloss styles.
func BuildStyles(tokens Tokens) Styles {
	return Styles{
		Tokens: tokens,
		Title:  lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Accent)).Bold(true),
		Text:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.TextMuted)),
		Panel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(tokens.Text)).
			Background(lipgloss.Color(tokens.Background)).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(tokens.Border)).
			Padding(0, 1),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Warning)),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Error)),
	}
}

// Span is a run of sample text highlighted with a scope.
type Span struct {
	Text  string
	Scope string
}

// SampleCode is the snippet shown in the syntax section.
var SampleCode = [][]Span{
	{{"// greet the caller", "comment"}},
	{{"fn", "keyword.function"}, {" ", ""}, {"greet", "function"}, {"(", "punctuation.bracket"}, {"name", "variable.parameter"}, {": ", "punctuation"}, {"&str", "type"}, {") {", "punctuation.bracket"}},
	{{"    let", "keyword.storage"}, {" count ", "variable"}, {"=", "operator"}, {" ", ""}, {"42", "constant.numeric"}, {";", "punctuation"}},
	{{"    for", "keyword.control.repeat"}, {" _ ", "variable"}, {"in", "keyword"}, {" ", ""}, {"0", "constant.numeric"}, {"..", "operator"}, {"count", "variable"}, {" {", "punctuation.bracket"}},
	{{"        println!", "function.macro"}, {"(", "punctuation.bracket"}, {`"hello, {}"`, "string"}, {", ", "punctuation"}, {"name", "variable.parameter"}, {");", "punctuation.bracket"}},
	{{"    }", "punctuation.bracket"}},
	{{"    ", ""}, {"self", "variable.builtin"}, {".", "punctuation"}, {"done", "variable.other.member"}, {" = ", "operator"}, {"true", "constant.builtin.boolean"}, {";", "punctuation"}},
	{{"}", "punctuation.bracket"}},
}

// Options controls preview output.
type Options struct {
	Name string
	// Width caps the panel width; zero means unbounded.
	Width int
}

// Render builds the full preview: palette swatches, then highlighted sample code.
func Render(theme *helix.Theme, resolver mapping.ColorResolver, opts Options) string {
	styles := BuildStyles(DeriveTokens(theme, resolver))

	var b strings.Builder
	title := opts.Name
	if title == "" {
		title = "theme"
	}
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n\n")

	b.WriteString(styles.Muted.Render("palette"))
	b.WriteString("\n")
	b.WriteString(renderPalette(theme, styles))
	b.WriteString("\n")

	b.WriteString(styles.Muted.Render("syntax"))
	b.WriteString("\n")
	panel := styles.Panel
	if opts.Width > 0 {
		panel = panel.MaxWidth(opts.Width)
	}
	b.WriteString(panel.Render(renderSample(theme, resolver, styles)))
	b.WriteString("\n")
	return b.String()
}

func renderPalette(theme *helix.Theme, styles Styles) string {
	names := theme.PaletteNames()
	if len(names) == 0 {
		return styles.Muted.Render("  (empty)") + "\n"
	}

	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}

	var b strings.Builder
	for _, name := range names {
		value := theme.Palette[name]
		c, err := color.ParseHex(value)
		if err != nil {
			fmt.Fprintf(&b, "  %s  %-*s  %s\n", styles.Error.Render("  ??  "), width, name, styles.Error.Render(value))
			continue
		}
		hex := strings.ToUpper(c.Hex())
		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(hex)).
			Foreground(lipgloss.Color(labelColor(hex))).
			Render(" " + hex[1:] + " ")

		ratio, _ := color.Contrast(hex, styles.Tokens.Background)
		fmt.Fprintf(&b, "  %s  %-*s  %s\n", swatch, width, name, styles.Muted.Render(fmt.Sprintf("%.2f:1", ratio)))
	}
	return b.String()
}

// labelColor picks black or white, whichever reads better on hex.
func labelColor(hex string) string {
	black, errBlack := color.Contrast("#000000", hex)
	white, errWhite := color.Contrast("#FFFFFF", hex)
	if errBlack != nil || errWhite != nil || white >= black {
		return "#FFFFFF"
	}
	return "#000000"
}

func renderSample(theme *helix.Theme, resolver mapping.ColorResolver, styles Styles) string {
	lines := make([]string, 0, len(SampleCode))
	for _, spans := range SampleCode {
		var line strings.Builder
		for _, span := range spans {
			line.WriteString(spanStyle(theme, resolver, styles, span.Scope).Render(span.Text))
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

func spanStyle(theme *helix.Theme, resolver mapping.ColorResolver, styles Styles, scope string) lipgloss.Style {
	style := styles.Text
	if scope == "" {
		return style
	}
	_, matched, ok := ScopeStyle(theme, scope)
	if !ok {
		return style
	}

	resolved := mapping.Apply(mapping.Entry{Target: scope, Source: matched, Channel: mapping.ChannelStyle}, theme, resolver)
	if resolved.Foreground != "" {
		style = style.Foreground(lipgloss.Color(resolved.Foreground))
	}
	if resolved.Background != "" {
		style = style.Background(lipgloss.Color(resolved.Background))
	}
	for _, fs := range strings.Fields(resolved.FontStyle) {
		switch fs {
		case "bold":
			style = style.Bold(true)
		case "italic":
			style = style.Italic(true)
		case "underline":
			style = style.Underline(true)
		case "strikethrough":
			style = style.Strikethrough(true)
		}
	}
	return style
}
