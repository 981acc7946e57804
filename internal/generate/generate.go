// Package generate runs the theme conversion pipeline: load the Helix theme,
// render every selected target, and write the outputs.
package generate

import (
	"context"
	"fmt"
	"os"

	"github.com/opencode-ai/themegen/internal/color"
	"github.com/opencode-ai/themegen/internal/helix"
	"github.com/opencode-ai/themegen/internal/targets"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Options controls a single run.
type Options struct {
	// Targets selects targets by name; empty runs every registered target.
	Targets []string
	// DryRun renders outputs without writing them.
	DryRun bool
}

// Output describes one rendered target.
type Output struct {
	Target  string `json:"target" yaml:"target"`
	Path    string `json:"path" yaml:"path"`
	Bytes   int    `json:"bytes" yaml:"bytes"`
	Written bool   `json:"written" yaml:"written"`

	data []byte
}

// Data returns the rendered document.
func (o Output) Data() []byte {
	return o.data
}

// Result summarizes a run.
type Result struct {
	Name     string          `json:"name" yaml:"name"`
	Input    string          `json:"input" yaml:"input"`
	Palette  int             `json:"palette" yaml:"palette"`
	Scopes   int             `json:"scopes" yaml:"scopes"`
	Outputs  []Output        `json:"outputs" yaml:"outputs"`
	Warnings []color.Warning `json:"warnings" yaml:"warnings"`
}

// Generator converts Helix themes into every registered target format.
type Generator struct {
	layout   Layout
	registry *targets.Registry
	logger   zerolog.Logger
}

// New creates a generator.
func New(layout Layout, registry *targets.Registry, logger zerolog.Logger) *Generator {
	return &Generator{
		layout:   layout,
		registry: registry,
		logger:   logger,
	}
}

// Layout returns the generator's file layout.
func (g *Generator) Layout() Layout {
	return g.layout
}

// Load parses the named theme and returns it with a fresh resolver.
func (g *Generator) Load(name string) (*helix.Theme, *color.Resolver, error) {
	if err := ValidateName(name); err != nil {
		return nil, nil, err
	}

	path := g.layout.InputPath(name)
	theme, err := helix.Load(path)
	if err != nil {
		return nil, nil, err
	}

	g.logger.Debug().
		Str("theme", name).
		Str("path", path).
		Int("palette", len(theme.Palette)).
		Int("scopes", len(theme.Scopes)).
		Msg("loaded theme")

	return theme, color.NewResolver(theme.Palette, g.logger), nil
}

// Run loads the named theme, renders the selected targets in order and
// writes their files concurrently. A malformed theme or failed write aborts
// the run; unresolved colors only produce warnings.
func (g *Generator) Run(ctx context.Context, name string, opts Options) (*Result, error) {
	selected, err := g.registry.Select(opts.Targets)
	if err != nil {
		return nil, err
	}

	theme, resolver, err := g.Load(name)
	if err != nil {
		return nil, err
	}

	in := targets.Input{Name: name, Theme: theme, Resolver: resolver}
	result := &Result{
		Name:    name,
		Input:   g.layout.InputPath(name),
		Palette: len(theme.Palette),
		Scopes:  len(theme.Scopes),
		Outputs: make([]Output, 0, len(selected)),
	}

	for _, target := range selected {
		data, err := target.Render(in)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", target.Name(), err)
		}
		result.Outputs = append(result.Outputs, Output{
			Target: target.Name(),
			Path:   g.layout.OutputPath(name, target.FileName()),
			Bytes:  len(data),
			data:   data,
		})
	}
	result.Warnings = resolver.Warnings()

	if opts.DryRun {
		return result, nil
	}

	if err := g.write(ctx, result.Outputs); err != nil {
		return nil, err
	}
	for i := range result.Outputs {
		result.Outputs[i].Written = true
	}

	g.logger.Info().
		Str("theme", name).
		Int("outputs", len(result.Outputs)).
		Int("warnings", len(result.Warnings)).
		Msg("generated theme")

	return result, nil
}

func (g *Generator) write(ctx context.Context, outputs []Output) error {
	group, ctx := errgroup.WithContext(ctx)
	for _, output := range outputs {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := os.WriteFile(output.Path, output.data, 0644); err != nil {
				return fmt.Errorf("write %s output %s: %w", output.Target, output.Path, err)
			}
			g.logger.Debug().Str("target", output.Target).Str("path", output.Path).Msg("wrote output")
			return nil
		})
	}
	return group.Wait()
}
