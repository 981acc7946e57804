package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/themegen/internal/generate"
	"github.com/opencode-ai/themegen/internal/lint"
	"github.com/opencode-ai/themegen/internal/opencode"
	"github.com/opencode-ai/themegen/internal/scaffold"
)

// executeCLI runs the root command in an isolated working directory.
func executeCLI(t *testing.T, themesDir string, args ...string) (string, error) {
	t.Helper()

	resetCommandFlags(rootCmd)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	original := progressOut
	progressOut = io.Discard
	t.Cleanup(func() { progressOut = original })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--themes-dir", themesDir, "--quiet"))

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func resetCommandFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if slice, ok := f.Value.(pflag.SliceValue); ok {
			_ = slice.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetCommandFlags(child)
	}
}

func writeTheme(t *testing.T, themesDir, name, data string) {
	t.Helper()
	dir := filepath.Join(themesDir, name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "helix.toml"), []byte(data), 0644))
}

func TestGenerateRequiresName(t *testing.T) {
	out, err := executeCLI(t, t.TempDir(), "generate")
	require.ErrorIs(t, err, generate.ErrThemeNameRequired)
	require.Contains(t, out, "Usage:")
}

func TestGenerateRejectsPathNames(t *testing.T) {
	_, err := executeCLI(t, t.TempDir(), "generate", "../escape")
	require.ErrorIs(t, err, generate.ErrInvalidThemeName)
}

func TestNewThenGenerate(t *testing.T) {
	themesDir := t.TempDir()

	out, err := executeCLI(t, themesDir, "new", "pop-dark")
	require.NoError(t, err)
	require.Contains(t, out, "Created "+filepath.Join(themesDir, "pop-dark", "helix.toml"))

	out, err = executeCLI(t, themesDir, "generate", "pop-dark")
	require.NoError(t, err)
	require.Contains(t, out, "Wrote "+filepath.Join(themesDir, "pop-dark", "theme.tmTheme"))
	require.Contains(t, out, "Wrote "+filepath.Join(themesDir, "pop-dark", "opencode.json"))
	require.NotContains(t, out, "unresolved")

	data, err := os.ReadFile(filepath.Join(themesDir, "pop-dark", "opencode.json"))
	require.NoError(t, err)
	var doc opencode.Document
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Equal(t, "#1E1E2E", doc.Theme["background"])

	plist, err := os.ReadFile(filepath.Join(themesDir, "pop-dark", "theme.tmTheme"))
	require.NoError(t, err)
	require.Contains(t, string(plist), "<string>Pop Dark</string>")
	require.Contains(t, string(plist), "<string>theme.dark.pop-dark</string>")
}

func TestNewRefusesExistingTheme(t *testing.T) {
	themesDir := t.TempDir()
	writeTheme(t, themesDir, "taken", "")

	_, err := executeCLI(t, themesDir, "new", "taken")
	require.ErrorIs(t, err, scaffold.ErrThemeExists)

	var preflight *PreflightError
	require.ErrorAs(t, err, &preflight)
	require.Contains(t, preflight.Hint, "--force")

	_, err = executeCLI(t, themesDir, "new", "taken", "--force")
	require.NoError(t, err)
}

func TestGenerateMissingTheme(t *testing.T) {
	_, err := executeCLI(t, t.TempDir(), "generate", "ghost")
	require.ErrorIs(t, err, fs.ErrNotExist)

	var preflight *PreflightError
	require.ErrorAs(t, err, &preflight)
	require.Equal(t, "themegen new ghost", preflight.NextStep)
}

func TestGenerateDryRunJSON(t *testing.T) {
	themesDir := t.TempDir()
	writeTheme(t, themesDir, "mini", `
"ui.background" = { bg = "bg" }
comment = "nope"

[palette]
bg = "#000000"
`)

	out, err := executeCLI(t, themesDir, "generate", "mini", "--dry-run", "--target", "opencode", "--json")
	require.NoError(t, err)

	var result generate.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Outputs, 1)
	require.Equal(t, "opencode", result.Outputs[0].Target)
	require.False(t, result.Outputs[0].Written)
	// textMuted and syntaxComment both read the comment scope.
	require.Len(t, result.Warnings, 2)
	for _, warning := range result.Warnings {
		require.Equal(t, "nope", warning.Ref)
	}

	_, err = os.Stat(filepath.Join(themesDir, "mini", "opencode.json"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestGenerateUnknownTarget(t *testing.T) {
	themesDir := t.TempDir()
	writeTheme(t, themesDir, "mini", "")

	_, err := executeCLI(t, themesDir, "generate", "mini", "--target", "vscode")
	require.Error(t, err)
	require.Contains(t, err.Error(), "vscode")
}

func TestInspectJSON(t *testing.T) {
	themesDir := t.TempDir()
	writeTheme(t, themesDir, "mini", `
"ui.background" = { bg = "bg" }

[palette]
bg = "#101010"
`)

	out, err := executeCLI(t, themesDir, "inspect", "mini", "--target", "opencode", "--json")
	require.NoError(t, err)

	var rows []InspectRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, opencode.Table.Len())

	values := make(map[string]string, len(rows))
	for _, row := range rows {
		require.Equal(t, "opencode", row.Target)
		values[row.Entry.Target] = row.Value
	}
	require.Equal(t, "#101010", values["background"])
	require.Equal(t, opencode.Unset, values["primary"])
}

func TestInspectTable(t *testing.T) {
	themesDir := t.TempDir()
	writeTheme(t, themesDir, "mini", `
"ui.background" = { bg = "#101010" }
`)

	out, err := executeCLI(t, themesDir, "inspect", "mini", "--target", "tmtheme")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.True(t, strings.HasPrefix(lines[0], "TARGET"))
	require.Contains(t, out, "ui.background (bg)")
	require.Contains(t, out, "#101010")
}

func TestLint(t *testing.T) {
	themesDir := t.TempDir()
	writeTheme(t, themesDir, "warned", `
comment = "missing"

[palette]
grey = "#777777"
`)
	writeTheme(t, themesDir, "broken", `
[palette]
grey = "grey"
`)

	out, err := executeCLI(t, themesDir, "lint", "warned")
	require.NoError(t, err)
	require.Contains(t, out, "warned: 0 error(s), 1 warning(s)")

	_, err = executeCLI(t, themesDir, "lint", "warned", "--strict")
	require.Error(t, err)

	out, err = executeCLI(t, themesDir, "lint", "broken", "--json")
	require.Error(t, err)

	var result LintResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Equal(t, 1, result.Errors)
	require.Equal(t, lint.KindPalette, result.Issues[0].Kind)
}

func TestTargetsAndList(t *testing.T) {
	themesDir := t.TempDir()
	writeTheme(t, themesDir, "b-theme", "")
	writeTheme(t, themesDir, "a-theme", "")

	out, err := executeCLI(t, themesDir, "targets", "--json")
	require.NoError(t, err)

	var infos []TargetInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 2)
	require.Equal(t, "opencode", infos[0].Name)
	require.Equal(t, "opencode.json", infos[0].File)
	require.True(t, infos[0].Enabled)
	require.Equal(t, "tmtheme", infos[1].Name)

	out, err = executeCLI(t, themesDir, "list")
	require.NoError(t, err)
	require.Equal(t, "a-theme\nb-theme\n", out)
}

func TestPreviewPlainText(t *testing.T) {
	themesDir := t.TempDir()
	writeTheme(t, themesDir, "mini", `
"ui.background" = { bg = "bg" }
keyword = "accent"

[palette]
bg = "#101010"
accent = "#ff8800"
`)

	out, err := executeCLI(t, themesDir, "preview", "mini", "--non-interactive")
	require.NoError(t, err)
	require.Contains(t, out, "Mini")
	require.Contains(t, out, "accent")
	require.Contains(t, out, "FF8800")
	require.NotContains(t, out, "\x1b[")
}

func TestJSONAndJSONLConflict(t *testing.T) {
	_, err := executeCLI(t, t.TempDir(), "targets", "--json", "--jsonl")
	require.Error(t, err)
}

func TestPreflightErrorFormat(t *testing.T) {
	cause := errors.New("boom")
	err := &PreflightError{Message: "theme missing", Hint: "create it", NextStep: "themegen new x", Err: cause}

	require.Equal(t, "theme missing: boom\nHint: create it\nNext: themegen new x", err.Error())
	require.ErrorIs(t, err, cause)
}
