// Package helix provides loading and normalization of Helix editor themes.
package helix

import (
	"slices"
	"sort"
)

// PaletteKey is the reserved top-level table holding named colors.
const PaletteKey = "palette"

// Kind identifies which shape a scope value was declared with.
type Kind int

const (
	// KindUnknown covers absent scopes and values that are neither a string nor a table.
	KindUnknown Kind = iota
	// KindReference is a bare string: a palette name or literal hex foreground.
	KindReference
	// KindStyle is a style table with fg, bg, modifiers and underline fields.
	KindStyle
)

func (k Kind) String() string {
	switch k {
	case KindReference:
		return "reference"
	case KindStyle:
		return "style"
	default:
		return "unknown"
	}
}

// Underline describes the underline sub-style of a scope.
type Underline struct {
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
	Style string `json:"style,omitempty" yaml:"style,omitempty"`
}

// Style is the uniform shape every scope value normalizes to.
// Empty strings and nil slices mean the field is absent.
type Style struct {
	Foreground string     `json:"fg,omitempty" yaml:"fg,omitempty"`
	Background string     `json:"bg,omitempty" yaml:"bg,omitempty"`
	Modifiers  []string   `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
	Underline  *Underline `json:"underline,omitempty" yaml:"underline,omitempty"`
}

// IsZero reports whether no field of the style is set.
func (s Style) IsZero() bool {
	return s.Foreground == "" && s.Background == "" && len(s.Modifiers) == 0 && s.Underline == nil
}

// Value is a scope value as declared in the theme source.
// The zero Value is an absent scope.
type Value struct {
	kind  Kind
	ref   string
	style Style
	raw   any
}

// Reference builds a bare-string scope value.
func Reference(ref string) Value {
	return Value{kind: KindReference, ref: ref}
}

// FromStyle builds a style-table scope value.
func FromStyle(style Style) Value {
	return Value{kind: KindStyle, style: style}
}

// Unknown wraps a value of an unsupported type so it survives parsing.
func Unknown(raw any) Value {
	return Value{kind: KindUnknown, raw: raw}
}

// Kind returns the declared shape of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Ref returns the bare string of a reference value.
func (v Value) Ref() (string, bool) {
	if v.kind != KindReference {
		return "", false
	}
	return v.ref, true
}

// Record returns the style table of a style value.
func (v Value) Record() (Style, bool) {
	if v.kind != KindStyle {
		return Style{}, false
	}
	return cloneStyle(v.style), true
}

// Raw returns the original value of an unknown-kind value.
func (v Value) Raw() any {
	return v.raw
}

// Style normalizes the value. See Normalize.
func (v Value) Style() Style {
	return Normalize(v)
}

// Normalize converts any scope value into a Style.
// A reference becomes a foreground-only style, a style table passes through,
// and absent or unknown values yield the zero Style.
func Normalize(v Value) Style {
	switch v.kind {
	case KindReference:
		return Style{Foreground: v.ref}
	case KindStyle:
		return cloneStyle(v.style)
	default:
		return Style{}
	}
}

func cloneStyle(s Style) Style {
	out := Style{
		Foreground: s.Foreground,
		Background: s.Background,
		Modifiers:  slices.Clone(s.Modifiers),
	}
	if s.Underline != nil {
		underline := *s.Underline
		out.Underline = &underline
	}
	return out
}

// Theme is a parsed Helix theme. It is not modified after parsing.
type Theme struct {
	Palette map[string]string
	Scopes  map[string]Value
}

// Lookup returns the value declared for scope.
func (t *Theme) Lookup(scope string) (Value, bool) {
	if t == nil || t.Scopes == nil {
		return Value{}, false
	}
	value, ok := t.Scopes[scope]
	return value, ok
}

// Style returns the normalized style for scope; missing scopes yield the zero Style.
func (t *Theme) Style(scope string) Style {
	value, _ := t.Lookup(scope)
	return Normalize(value)
}

// ScopeNames returns all scope names in sorted order.
func (t *Theme) ScopeNames() []string {
	if t == nil {
		return nil
	}
	return sortedKeys(t.Scopes)
}

// PaletteNames returns all palette color names in sorted order.
func (t *Theme) PaletteNames() []string {
	if t == nil {
		return nil
	}
	return sortedKeys(t.Palette)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
