// Package opencode renders Helix themes as opencode JSON themes.
package opencode

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/opencode-ai/themegen/internal/helix"
	"github.com/opencode-ai/themegen/internal/mapping"
)

const (
	// SchemaURL is the JSON schema every opencode theme declares.
	SchemaURL = "https://opencode.ai/theme.json"
	// Unset marks a theme field with no resolved color.
	Unset = "none"
)

// Document is an opencode theme. Map keys serialize in sorted order.
type Document struct {
	Schema string            `json:"$schema" yaml:"$schema"`
	Defs   map[string]string `json:"defs" yaml:"defs"`
	Theme  map[string]string `json:"theme" yaml:"theme"`
}

// Build copies the palette into defs and resolves every table field,
// falling back to Unset.
func Build(theme *helix.Theme, resolver mapping.ColorResolver) Document {
	doc := Document{
		Schema: SchemaURL,
		Defs:   make(map[string]string, len(theme.Palette)),
		Theme:  make(map[string]string, Table.Len()),
	}

	for name, hex := range theme.Palette {
		doc.Defs[name] = hex
	}

	for _, entry := range Table.Entries() {
		value := mapping.Apply(entry, theme, resolver).Color(entry.Channel)
		if value == "" {
			value = Unset
		}
		doc.Theme[entry.Target] = value
	}

	return doc
}

// Generate builds and renders the opencode theme for theme.
func Generate(theme *helix.Theme, resolver mapping.ColorResolver) ([]byte, error) {
	return Render(Build(theme, resolver))
}

// Render serializes doc with two-space indentation and a trailing newline.
func Render(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode opencode theme: %w", err)
	}
	return buf.Bytes(), nil
}

// Counts returns how many fields resolved and how many fell back to Unset.
func (d Document) Counts() (mapped, unset int) {
	for _, value := range d.Theme {
		if value == Unset {
			unset++
		} else {
			mapped++
		}
	}
	return mapped, unset
}
