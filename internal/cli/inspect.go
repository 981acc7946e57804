package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/themegen/internal/targets"
)

var inspectTargets []string

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringSliceVarP(&inspectTargets, "target", "t", nil, "target to inspect (repeatable; default: configured targets)")
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <name>",
	Short: "Show how each target key resolves",
	Long: `Inspect lists every mapping entry of the selected targets together with
the Helix scope it reads and the value it resolves to. Nothing is written.`,
	Example: `  themegen inspect pop-dark --target tmtheme
  themegen inspect pop-dark --target opencode --yaml`,
	Args: themeNameArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect(cmd, args[0])
	},
}

// InspectRow is one resolved mapping entry of one target.
type InspectRow struct {
	Target      string `json:"target" yaml:"target"`
	targets.Row `yaml:",inline"`
}

func runInspect(cmd *cobra.Command, name string) error {
	cfg := currentConfig()
	gen := newGenerator(cfg)

	selected := inspectTargets
	if len(selected) == 0 {
		selected = cfg.Targets
	}
	list, err := registryFor(cfg).Select(selected)
	if err != nil {
		return err
	}

	theme, resolver, err := gen.Load(name)
	if err != nil {
		return themeError(err, name, gen.Layout())
	}

	var rows []InspectRow
	for _, target := range list {
		in := targets.Input{Name: name, Theme: theme, Resolver: resolver}
		for _, row := range target.Explain(in) {
			rows = append(rows, InspectRow{Target: target.Name(), Row: row})
		}
	}

	if IsStructuredOutput() {
		return WriteOutput(cmd.OutOrStdout(), rows)
	}

	table := make([][]string, 0, len(rows))
	for _, row := range rows {
		table = append(table, []string{
			row.Target,
			row.Table,
			row.Entry.Name(),
			orDash(sourceLabel(row)),
			orDash(row.Value),
		})
	}
	if err := writeTable(cmd.OutOrStdout(), []string{"TARGET", "TABLE", "KEY", "SOURCE", "VALUE"}, table); err != nil {
		return err
	}
	if warnings := resolver.Warnings(); len(warnings) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d unresolved color reference(s)\n", len(warnings))
	}
	return nil
}

func sourceLabel(row InspectRow) string {
	if !row.Entry.HasSource() {
		return ""
	}
	return fmt.Sprintf("%s (%s)", row.Entry.Source, row.Entry.Channel)
}
