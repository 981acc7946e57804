package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/themegen/internal/generate"
)

var (
	generateTargets []string
	generateDryRun  bool
)

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringSliceVarP(&generateTargets, "target", "t", nil, "target to generate (repeatable; default: configured targets)")
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "render outputs without writing them")
}

var generateCmd = &cobra.Command{
	Use:   "generate <name>",
	Short: "Generate target themes from a Helix theme",
	Long: `Generate reads themes/<name>/helix.toml and writes one file per target
into the same directory: theme.tmTheme and opencode.json by default.`,
	Example: `  themegen generate pop-dark
  themegen generate pop-dark --target opencode
  themegen generate pop-dark --dry-run --json`,
	Args: themeNameArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, args[0])
	},
}

func runGenerate(cmd *cobra.Command, name string) error {
	cfg := currentConfig()
	gen := newGenerator(cfg)

	selected := generateTargets
	if len(selected) == 0 {
		selected = cfg.Targets
	}

	step := startProgress(fmt.Sprintf("Generating %s", name))
	result, err := gen.Run(cmd.Context(), name, generate.Options{
		Targets: selected,
		DryRun:  generateDryRun,
	})
	if err != nil {
		step.Fail(err)
		return themeError(err, name, gen.Layout())
	}
	step.Done()

	if IsStructuredOutput() {
		return WriteOutput(cmd.OutOrStdout(), result)
	}

	out := cmd.OutOrStdout()
	for _, output := range result.Outputs {
		verb := "Wrote"
		if !output.Written {
			verb = "Would write"
		}
		fmt.Fprintf(out, "%s %s (%d bytes)\n", verb, output.Path, output.Bytes)
	}
	if n := len(result.Warnings); n > 0 {
		fmt.Fprintf(out, "%d unresolved color reference(s); run `themegen lint %s` for details\n", n, name)
	}
	return nil
}
