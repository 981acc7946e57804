// Package cli provides the themegen command-line interface.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/themegen/internal/config"
	"github.com/opencode-ai/themegen/internal/logging"
)

var (
	cfgFile        string
	logLevel       string
	logFormat      string
	themesDir      string
	jsonOutput     bool
	jsonlOutput    bool
	yamlOutput     bool
	noProgress     bool
	quiet          bool
	nonInteractive bool

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "themegen",
	Short: "Generate TextMate and opencode themes from Helix themes",
	Long: `themegen converts a Helix editor theme (helix.toml) into a TextMate
plist theme (for bat and Sublime-style highlighters) and an opencode
JSON theme.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/themegen/config.yaml)")
	flags.StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	flags.StringVar(&logFormat, "log-format", "", "log format: console or json")
	flags.StringVar(&themesDir, "themes-dir", "", "directory holding one subdirectory per theme")
	flags.BoolVar(&jsonOutput, "json", false, "output JSON")
	flags.BoolVar(&jsonlOutput, "jsonl", false, "output JSON lines")
	flags.BoolVar(&yamlOutput, "yaml", false, "output YAML")
	flags.BoolVar(&noProgress, "no-progress", false, "disable progress output")
	flags.BoolVarP(&quiet, "quiet", "q", false, "only log errors")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never assume a terminal")
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// GetConfig returns the loaded configuration, or nil before a command runs.
func GetConfig() *config.Config {
	return appConfig
}

func initConfig(cmd *cobra.Command) error {
	if jsonOutput && jsonlOutput {
		return fmt.Errorf("--json and --jsonl are mutually exclusive")
	}

	opts := []config.Option{config.WithOverrides(flagOverrides(cmd))}
	if cfgFile != "" {
		opts = append(opts, config.WithConfigFile(cfgFile))
	}

	cfg, err := config.Load(opts...)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := cfg.Logging.Level
	if quiet {
		level = "error"
	}
	if err := logging.Init(logging.Config{Level: level, Format: cfg.Logging.Format}, os.Stderr); err != nil {
		return err
	}

	appConfig = cfg
	return nil
}

// flagOverrides maps explicitly set flags onto config keys.
func flagOverrides(cmd *cobra.Command) map[string]any {
	overrides := make(map[string]any)
	flags := cmd.Flags()
	if flags.Changed("themes-dir") {
		overrides["themes_dir"] = themesDir
	}
	if flags.Changed("log-level") {
		overrides["logging.level"] = logLevel
	}
	if flags.Changed("log-format") {
		overrides["logging.format"] = logFormat
	}
	return overrides
}
