package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/themegen/internal/helix"
	"github.com/opencode-ai/themegen/internal/lint"
	"github.com/opencode-ai/themegen/internal/opencode"
	"github.com/opencode-ai/themegen/internal/tmtheme"
)

var lintStrict bool

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().BoolVar(&lintStrict, "strict", false, "treat warnings as errors")
}

var lintCmd = &cobra.Command{
	Use:   "lint <name>",
	Short: "Check a Helix theme for problems",
	Long: `Lint validates palette colors, reports color references that do not
resolve, and lists scopes the targets read but the theme does not define.
Errors fail the command; warnings fail it only with --strict.`,
	Args: themeNameArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLint(cmd, args[0])
	},
}

// LintResult is the structured output of lint.
type LintResult struct {
	Name string `json:"name" yaml:"name"`
	lint.Report `yaml:",inline"`
	Errors   int `json:"errors" yaml:"errors"`
	Warnings int `json:"warnings" yaml:"warnings"`
}

func runLint(cmd *cobra.Command, name string) error {
	layout := layoutFor(currentConfig())

	theme, err := helix.Load(layout.InputPath(name))
	if err != nil {
		return themeError(err, name, layout)
	}

	report := lint.Check(theme, tmtheme.Globals, tmtheme.Rules, opencode.Table)
	result := LintResult{
		Name:     name,
		Report:   report,
		Errors:   report.Count(lint.SeverityError),
		Warnings: report.Count(lint.SeverityWarning),
	}

	if IsStructuredOutput() {
		if err := WriteOutput(cmd.OutOrStdout(), result); err != nil {
			return err
		}
	} else {
		rows := make([][]string, 0, len(report.Issues))
		for _, issue := range report.Issues {
			rows = append(rows, []string{string(issue.Severity), issue.Kind, issue.Subject, issue.Message})
		}
		if len(rows) > 0 {
			if err := writeTable(cmd.OutOrStdout(), []string{"SEVERITY", "KIND", "SUBJECT", "MESSAGE"}, rows); err != nil {
				return err
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d error(s), %d warning(s)\n", name, result.Errors, result.Warnings)
	}

	if report.Failed(lintStrict) {
		return fmt.Errorf("lint %s: %d error(s), %d warning(s)", name, result.Errors, result.Warnings)
	}
	return nil
}
