package color

import (
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// PaletteIssue describes a palette entry whose value is not a usable hex color.
type PaletteIssue struct {
	Name    string `json:"name" yaml:"name"`
	Value   string `json:"value" yaml:"value"`
	Message string `json:"message" yaml:"message"`
}

// ValidatePalette checks that every palette value parses as a hex color.
// Issues are returned sorted by name.
func ValidatePalette(palette map[string]string) []PaletteIssue {
	names := make([]string, 0, len(palette))
	for name := range palette {
		names = append(names, name)
	}
	sort.Strings(names)

	var issues []PaletteIssue
	for _, name := range names {
		value := palette[name]
		if _, err := ParseHex(value); err != nil {
			issues = append(issues, PaletteIssue{
				Name:    name,
				Value:   value,
				Message: err.Error(),
			})
		}
	}
	return issues
}

// ParseHex parses a "#rrggbb" or "#rgb" color.
func ParseHex(value string) (colorful.Color, error) {
	c, err := colorful.Hex(value)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid hex color %q", value)
	}
	return c, nil
}

// Contrast returns the WCAG contrast ratio between two hex colors.
func Contrast(fg, bg string) (float64, error) {
	a, err := ParseHex(fg)
	if err != nil {
		return 0, err
	}
	b, err := ParseHex(bg)
	if err != nil {
		return 0, err
	}

	la, lb := relativeLuminance(a), relativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05), nil
}

func relativeLuminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
