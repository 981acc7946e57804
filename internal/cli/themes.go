package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/themegen/internal/config"
	"github.com/opencode-ai/themegen/internal/generate"
	"github.com/opencode-ai/themegen/internal/helix"
	"github.com/opencode-ai/themegen/internal/logging"
	"github.com/opencode-ai/themegen/internal/targets"
	"github.com/opencode-ai/themegen/internal/tmtheme"
)

// themeNameArg requires exactly one theme name, printing usage otherwise.
func themeNameArg(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return generate.ValidateName(args[0])
	}
	_ = cmd.Usage()
	if len(args) == 0 {
		return generate.ErrThemeNameRequired
	}
	return fmt.Errorf("expected one theme name, got %d arguments", len(args))
}

func currentConfig() *config.Config {
	if cfg := GetConfig(); cfg != nil {
		return cfg
	}
	return config.DefaultConfig()
}

func layoutFor(cfg *config.Config) generate.Layout {
	return generate.Layout{ThemesDir: cfg.ThemesDir, InputFile: cfg.InputFile}
}

func registryFor(cfg *config.Config) *targets.Registry {
	return targets.NewBuiltinRegistry(targets.Options{
		Outputs: cfg.Outputs,
		TmTheme: tmtheme.Meta{
			Author:        cfg.TmTheme.Author,
			Name:          cfg.TmTheme.Name,
			SemanticClass: cfg.TmTheme.SemanticClass,
		},
	})
}

func newGenerator(cfg *config.Config) *generate.Generator {
	return generate.New(layoutFor(cfg), registryFor(cfg), logging.Component("generate"))
}

// themeError turns a missing input file into guidance for creating it.
func themeError(err error, name string, layout generate.Layout) error {
	var parseErr *helix.ParseError
	if errors.As(err, &parseErr) && errors.Is(err, fs.ErrNotExist) {
		return &PreflightError{
			Message:  fmt.Sprintf("theme %q not found", name),
			Hint:     fmt.Sprintf("expected a Helix theme at %s", layout.InputPath(name)),
			NextStep: "themegen new " + name,
			Err:      err,
		}
	}
	return err
}
