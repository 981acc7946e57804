package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/opencode-ai/themegen/internal/preview"
	"github.com/opencode-ai/themegen/internal/tmtheme"
)

func init() {
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview <name>",
	Short: "Preview a theme's palette and syntax colors in the terminal",
	Long: `Preview renders palette swatches with their contrast against the theme
background, followed by a highlighted code sample. Without a terminal the
output is plain text.`,
	Args: themeNameArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPreview(cmd, args[0])
	},
}

func runPreview(cmd *cobra.Command, name string) error {
	gen := newGenerator(currentConfig())

	theme, resolver, err := gen.Load(name)
	if err != nil {
		return themeError(err, name, gen.Layout())
	}

	if IsNonInteractive() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	out := preview.Render(theme, resolver, preview.Options{
		Name:  tmtheme.DisplayName(name),
		Width: terminalWidth(),
	})
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
