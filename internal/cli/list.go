package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List themes in the themes directory",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		layout := layoutFor(currentConfig())

		names, err := layout.ListThemes()
		if err != nil {
			return err
		}

		if IsStructuredOutput() {
			if names == nil {
				names = []string{}
			}
			return WriteOutput(cmd.OutOrStdout(), names)
		}

		if len(names) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No themes found in %s\n", layout.ThemesDir)
			return nil
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}
