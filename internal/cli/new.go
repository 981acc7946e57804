package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/themegen/internal/logging"
	"github.com/opencode-ai/themegen/internal/scaffold"
)

var newForce bool

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().BoolVarP(&newForce, "force", "f", false, "overwrite an existing theme file")
}

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a Helix theme from the starter template",
	Args:  themeNameArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		layout := layoutFor(currentConfig())
		path := layout.InputPath(name)

		if err := scaffold.Create(path, name, newForce); err != nil {
			if errors.Is(err, scaffold.ErrThemeExists) {
				return &PreflightError{
					Message:  fmt.Sprintf("theme %q already exists", name),
					Hint:     "use --force to overwrite " + path,
					NextStep: "themegen generate " + name,
					Err:      err,
				}
			}
			return err
		}

		logger := logging.Component("new")
		logger.Info().Str("theme", name).Str("path", path).Msg("theme created")

		if IsStructuredOutput() {
			return WriteOutput(cmd.OutOrStdout(), map[string]string{"name": name, "path": path})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
		fmt.Fprintf(cmd.OutOrStdout(), "Next: edit the palette, then run `themegen generate %s`\n", name)
		return nil
	},
}
