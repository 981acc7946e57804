// Package config loads themegen configuration.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Config is the resolved themegen configuration.
type Config struct {
	// ThemesDir holds one directory per theme. Default: "themes".
	ThemesDir string `mapstructure:"themes_dir" yaml:"themes_dir"`

	// InputFile is the Helix theme file inside each theme directory.
	// Default: "helix.toml".
	InputFile string `mapstructure:"input_file" yaml:"input_file"`

	// Targets lists the generators run by default, by name.
	Targets []string `mapstructure:"targets" yaml:"targets"`

	// Outputs maps a target name to its output file name.
	Outputs map[string]string `mapstructure:"outputs" yaml:"outputs"`

	TmTheme TmThemeConfig `mapstructure:"tmtheme" yaml:"tmtheme"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// TmThemeConfig overrides the plist metadata. Empty fields are derived from
// the theme name.
type TmThemeConfig struct {
	Author        string `mapstructure:"author" yaml:"author"`
	Name          string `mapstructure:"name" yaml:"name"`
	SemanticClass string `mapstructure:"semantic_class" yaml:"semantic_class"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Target names known to the default configuration.
const (
	TargetTmTheme  = "tmtheme"
	TargetOpenCode = "opencode"
)

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		ThemesDir: "themes",
		InputFile: "helix.toml",
		Targets:   []string{TargetTmTheme, TargetOpenCode},
		Outputs: map[string]string{
			TargetTmTheme:  "theme.tmTheme",
			TargetOpenCode: "opencode.json",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// OutputFile returns the configured output file for target, or "".
func (c *Config) OutputFile(target string) string {
	if c == nil || c.Outputs == nil {
		return ""
	}
	return c.Outputs[target]
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.ThemesDir) == "" {
		errs = append(errs, errors.New("themes_dir is required"))
	}
	if strings.TrimSpace(c.InputFile) == "" {
		errs = append(errs, errors.New("input_file is required"))
	}
	if strings.ContainsAny(c.InputFile, `/\`) {
		errs = append(errs, fmt.Errorf("input_file %q must be a file name, not a path", c.InputFile))
	}
	for target, file := range c.Outputs {
		if strings.TrimSpace(file) == "" {
			errs = append(errs, fmt.Errorf("outputs.%s is empty", target))
			continue
		}
		if strings.ContainsAny(file, `/\`) {
			errs = append(errs, fmt.Errorf("outputs.%s %q must be a file name, not a path", target, file))
		}
	}
	return errors.Join(errs...)
}
