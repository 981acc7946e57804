package targets

import (
	"github.com/opencode-ai/themegen/internal/mapping"
	"github.com/opencode-ai/themegen/internal/opencode"
	"github.com/opencode-ai/themegen/internal/tmtheme"
)

// Builtin target names.
const (
	TmThemeName  = "tmtheme"
	OpenCodeName = "opencode"
)

// TmTheme writes TextMate plist themes.
type TmTheme struct {
	// File overrides the output file name. Default: theme.tmTheme.
	File string
	// Meta overrides the derived metadata field by field.
	Meta tmtheme.Meta
}

func (t *TmTheme) Name() string { return TmThemeName }

func (t *TmTheme) Description() string {
	return "TextMate plist theme (bat, Sublime Text)"
}

func (t *TmTheme) FileName() string {
	if t.File != "" {
		return t.File
	}
	return "theme.tmTheme"
}

// Document builds the resolved plist document for in.
func (t *TmTheme) Document(in Input) tmtheme.Document {
	doc := tmtheme.Build(tmtheme.Meta{}, in.Theme, in.Resolver)

	var background string
	for _, setting := range doc.Globals {
		if setting.Key == "background" {
			background = setting.Value
		}
	}

	meta := tmtheme.DefaultMeta(in.Name, background)
	if t.Meta.Author != "" {
		meta.Author = t.Meta.Author
	}
	if t.Meta.Name != "" {
		meta.Name = t.Meta.Name
	}
	if t.Meta.SemanticClass != "" {
		meta.SemanticClass = t.Meta.SemanticClass
	}
	doc.Meta = meta
	return doc
}

func (t *TmTheme) Render(in Input) ([]byte, error) {
	return tmtheme.Render(t.Document(in)), nil
}

func (t *TmTheme) Explain(in Input) []Row {
	rows := make([]Row, 0, tmtheme.Globals.Len()+tmtheme.Rules.Len())
	for _, entry := range tmtheme.Globals.Entries() {
		resolved := mapping.Apply(entry, in.Theme, in.Resolver)
		rows = append(rows, Row{
			Table:    "globals",
			Entry:    entry,
			Resolved: resolved,
			Value:    resolved.Color(entry.Channel),
		})
	}
	for _, entry := range tmtheme.Rules.Entries() {
		resolved := mapping.Apply(entry, in.Theme, in.Resolver)
		rows = append(rows, Row{
			Table:    "rules",
			Entry:    entry,
			Resolved: resolved,
			Value:    formatResolved(resolved),
		})
	}
	return rows
}

func formatResolved(r mapping.Resolved) string {
	value := r.Foreground
	if r.Background != "" {
		if value != "" {
			value += " "
		}
		value += "on " + r.Background
	}
	if r.FontStyle != "" {
		if value != "" {
			value += " "
		}
		value += "(" + r.FontStyle + ")"
	}
	return value
}

// OpenCode writes opencode JSON themes.
type OpenCode struct {
	// File overrides the output file name. Default: opencode.json.
	File string
}

func (o *OpenCode) Name() string { return OpenCodeName }

func (o *OpenCode) Description() string {
	return "opencode terminal theme JSON"
}

func (o *OpenCode) FileName() string {
	if o.File != "" {
		return o.File
	}
	return "opencode.json"
}

func (o *OpenCode) Render(in Input) ([]byte, error) {
	return opencode.Generate(in.Theme, in.Resolver)
}

func (o *OpenCode) Explain(in Input) []Row {
	rows := make([]Row, 0, opencode.Table.Len())
	for _, entry := range opencode.Table.Entries() {
		resolved := mapping.Apply(entry, in.Theme, in.Resolver)
		value := resolved.Color(entry.Channel)
		if value == "" {
			value = opencode.Unset
		}
		rows = append(rows, Row{
			Table:    "theme",
			Entry:    entry,
			Resolved: resolved,
			Value:    value,
		})
	}
	return rows
}

// Options configures the builtin registry.
type Options struct {
	Outputs map[string]string
	TmTheme tmtheme.Meta
}

// NewBuiltinRegistry returns a registry holding every builtin target.
func NewBuiltinRegistry(opts Options) *Registry {
	registry := NewRegistry()
	registry.MustRegister(&TmTheme{File: opts.Outputs[TmThemeName], Meta: opts.TmTheme})
	registry.MustRegister(&OpenCode{File: opts.Outputs[OpenCodeName]})
	return registry
}
