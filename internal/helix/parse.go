package helix

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Load reads and parses a Helix theme file.
func Load(path string) (*Theme, error) {
	if strings.TrimSpace(path) == "" {
		return nil, &ParseError{Op: "read", Err: errors.New("theme path is required")}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Op: "read", Err: err}
	}

	theme, err := Parse(data)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = path
			return nil, parseErr
		}
		return nil, &ParseError{Path: path, Op: "parse", Err: err}
	}
	return theme, nil
}

// Parse decodes theme TOML. The top-level palette table becomes the palette;
// every other top-level key becomes a scope.
func Parse(data []byte) (*Theme, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Op: "parse", Err: err}
	}

	theme := &Theme{
		Palette: make(map[string]string),
		Scopes:  make(map[string]Value, len(raw)),
	}

	for key, value := range raw {
		if key == PaletteKey {
			palette, err := parsePalette(value)
			if err != nil {
				return nil, &ParseError{Op: "parse", Err: err}
			}
			theme.Palette = palette
			continue
		}
		theme.Scopes[key] = parseValue(value)
	}

	return theme, nil
}

func parsePalette(value any) (map[string]string, error) {
	table, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s must be a table, got %T", PaletteKey, value)
	}

	palette := make(map[string]string, len(table))
	for name, color := range table {
		if hex, ok := color.(string); ok {
			palette[name] = hex
		}
	}
	return palette, nil
}

func parseValue(value any) Value {
	switch v := value.(type) {
	case string:
		return Reference(v)
	case map[string]any:
		return FromStyle(parseStyle(v))
	default:
		return Unknown(v)
	}
}

func parseStyle(table map[string]any) Style {
	var style Style
	style.Foreground, _ = table["fg"].(string)
	style.Background, _ = table["bg"].(string)

	if items, ok := table["modifiers"].([]any); ok {
		for _, item := range items {
			if modifier, ok := item.(string); ok {
				style.Modifiers = append(style.Modifiers, modifier)
			}
		}
	}

	if underline, ok := table["underline"].(map[string]any); ok {
		color, _ := underline["color"].(string)
		kind, _ := underline["style"].(string)
		if color != "" || kind != "" {
			style.Underline = &Underline{Color: color, Style: kind}
		}
	}

	return style
}
