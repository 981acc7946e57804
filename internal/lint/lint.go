// Package lint checks a Helix theme for problems that degrade generated themes.
package lint

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/themegen/internal/color"
	"github.com/opencode-ai/themegen/internal/helix"
	"github.com/opencode-ai/themegen/internal/mapping"
)

// Severity ranks an issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Issue kinds.
const (
	KindPalette      = "palette"
	KindReference    = "reference"
	KindValue        = "value"
	KindMissingScope = "missing-scope"
)

// Issue is one lint finding.
type Issue struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Kind     string   `json:"kind" yaml:"kind"`
	Subject  string   `json:"subject" yaml:"subject"`
	Message  string   `json:"message" yaml:"message"`
}

// Report is the result of checking one theme.
type Report struct {
	Issues []Issue `json:"issues" yaml:"issues"`
}

// Count returns the number of issues with severity s.
func (r Report) Count(s Severity) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == s {
			n++
		}
	}
	return n
}

// Failed reports whether the report should fail a run. Warnings only fail
// in strict mode.
func (r Report) Failed(strict bool) bool {
	if r.Count(SeverityError) > 0 {
		return true
	}
	return strict && r.Count(SeverityWarning) > 0
}

// Check validates the palette, every color reference in every scope, and
// that the scopes read by tables exist in the theme.
func Check(theme *helix.Theme, tables ...*mapping.Table) Report {
	var issues []Issue

	for _, problem := range color.ValidatePalette(theme.Palette) {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Kind:     KindPalette,
			Subject:  problem.Name,
			Message:  problem.Message,
		})
	}

	resolver := color.NewResolver(theme.Palette, zerolog.Nop())
	for _, scope := range theme.ScopeNames() {
		value, _ := theme.Lookup(scope)
		if value.Kind() == helix.KindUnknown {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Kind:     KindValue,
				Subject:  scope,
				Message:  fmt.Sprintf("unsupported value %v; scope is ignored", value.Raw()),
			})
			continue
		}

		style := helix.Normalize(value)
		refs := []struct{ field, ref string }{
			{"fg", style.Foreground},
			{"bg", style.Background},
		}
		if style.Underline != nil {
			refs = append(refs, struct{ field, ref string }{"underline.color", style.Underline.Color})
		}
		for _, r := range refs {
			if r.ref == "" {
				continue
			}
			if strings.HasPrefix(r.ref, "#") {
				if _, err := color.ParseHex(r.ref); err != nil {
					issues = append(issues, Issue{
						Severity: SeverityWarning,
						Kind:     KindReference,
						Subject:  scope,
						Message:  fmt.Sprintf("%s literal %q is not a hex color", r.field, r.ref),
					})
				}
				continue
			}
			if _, ok := resolver.Resolve(r.ref); !ok {
				issues = append(issues, Issue{
					Severity: SeverityWarning,
					Kind:     KindReference,
					Subject:  scope,
					Message:  fmt.Sprintf("%s references unknown color %q", r.field, r.ref),
				})
			}
		}
	}

	seen := make(map[string]bool)
	for _, table := range tables {
		for _, source := range table.Sources() {
			if seen[source] {
				continue
			}
			seen[source] = true
			if _, ok := theme.Lookup(source); !ok {
				issues = append(issues, Issue{
					Severity: SeverityInfo,
					Kind:     KindMissingScope,
					Subject:  source,
					Message:  "scope is not defined; mapped keys fall back to unset",
				})
			}
		}
	}

	slices.SortStableFunc(issues, func(a, b Issue) int {
		return cmp.Or(
			cmp.Compare(severityRank(a.Severity), severityRank(b.Severity)),
			strings.Compare(a.Kind, b.Kind),
			strings.Compare(a.Subject, b.Subject),
		)
	})
	return Report{Issues: issues}
}

func severityRank(s Severity) int {
	switch s {
	case SeverityError:
		return 0
	case SeverityWarning:
		return 1
	default:
		return 2
	}
}
