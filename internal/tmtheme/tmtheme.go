// Package tmtheme renders Helix themes as TextMate plist themes.
package tmtheme

import (
	"strings"

	"github.com/opencode-ai/themegen/internal/color"
	"github.com/opencode-ai/themegen/internal/helix"
	"github.com/opencode-ai/themegen/internal/mapping"
)

// ColorSpace is the only color space the generated themes declare.
const ColorSpace = "sRGB"

// Meta holds the theme metadata written at the top of the plist.
type Meta struct {
	Author        string `json:"author" yaml:"author"`
	Name          string `json:"name" yaml:"name"`
	SemanticClass string `json:"semanticClass" yaml:"semanticClass"`
}

// DefaultMeta derives metadata from a theme directory name such as
// "pop-dark". background is the resolved editor background, used to pick
// between the dark and light semantic class; pass "" when unknown.
func DefaultMeta(name, background string) Meta {
	display := DisplayName(name)
	appearance := "dark"
	if background != "" {
		if c, err := color.ParseHex(background); err == nil {
			if l, _, _ := c.Lab(); l > 0.5 {
				appearance = "light"
			}
		}
	}
	return Meta{
		Author:        display + " Theme",
		Name:          display,
		SemanticClass: "theme." + appearance + "." + name,
	}
}

// DisplayName turns "pop-dark" or "pop_dark" into "Pop Dark".
func DisplayName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, part := range parts {
		runes := []rune(part)
		parts[i] = strings.ToUpper(string(runes[0])) + string(runes[1:])
	}
	return strings.Join(parts, " ")
}

// Setting is one key of the global settings dict.
type Setting struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Rule is one scope rule of the settings array.
type Rule struct {
	Name     string           `json:"name" yaml:"name"`
	Scope    string           `json:"scope" yaml:"scope"`
	Settings mapping.Resolved `json:"settings" yaml:"settings"`
}

// Document is a fully resolved tmTheme, ready to render.
type Document struct {
	Meta    Meta      `json:"meta" yaml:"meta"`
	Globals []Setting `json:"globals" yaml:"globals"`
	Rules   []Rule    `json:"rules" yaml:"rules"`
}

// Build resolves the global and rule tables against theme.
// Globals and rules that resolve to nothing are left out.
func Build(meta Meta, theme *helix.Theme, resolver mapping.ColorResolver) Document {
	doc := Document{Meta: meta}

	for _, entry := range Globals.Entries() {
		value := mapping.Apply(entry, theme, resolver).Color(entry.Channel)
		if value == "" {
			continue
		}
		doc.Globals = append(doc.Globals, Setting{Key: entry.Target, Value: value})
	}

	for _, entry := range Rules.Entries() {
		resolved := mapping.Apply(entry, theme, resolver)
		if resolved.IsZero() {
			continue
		}
		doc.Rules = append(doc.Rules, Rule{
			Name:     entry.Name(),
			Scope:    entry.Target,
			Settings: resolved,
		})
	}

	return doc
}

// Generate builds and renders the tmTheme document for theme.
func Generate(meta Meta, theme *helix.Theme, resolver mapping.ColorResolver) ([]byte, error) {
	return Render(Build(meta, theme, resolver)), nil
}
