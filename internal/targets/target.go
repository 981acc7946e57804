// Package targets defines the output formats themegen can generate.
package targets

import (
	"github.com/opencode-ai/themegen/internal/helix"
	"github.com/opencode-ai/themegen/internal/mapping"
)

// Input is everything a target needs to render one theme.
type Input struct {
	// Name is the theme directory name, e.g. "pop-dark".
	Name     string
	Theme    *helix.Theme
	Resolver mapping.ColorResolver
}

// Row describes one mapping entry and what it resolved to.
type Row struct {
	Table    string           `json:"table" yaml:"table"`
	Entry    mapping.Entry    `json:"entry" yaml:"entry"`
	Resolved mapping.Resolved `json:"resolved" yaml:"resolved"`
	// Value is what the target writes for the entry; empty when omitted.
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

// Target renders a theme into one output format.
type Target interface {
	// Name is the identifier used in configuration and on the command line.
	Name() string
	// Description is a one-line human summary.
	Description() string
	// FileName is the output file written inside the theme directory.
	FileName() string
	// Render produces the output document.
	Render(in Input) ([]byte, error)
	// Explain resolves every mapping entry without rendering.
	Explain(in Input) []Row
}
