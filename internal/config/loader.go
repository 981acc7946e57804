package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	envPrefix         = "THEMEGEN"
	projectConfigName = ".themegen.yaml"
)

type loadSettings struct {
	configFile    string
	workingDir    string
	userConfigDir string
	overrides     map[string]any
}

// Option configures Load.
type Option func(*loadSettings)

// WithConfigFile loads an explicit config file instead of the user config.
// The file must exist.
func WithConfigFile(path string) Option {
	return func(s *loadSettings) {
		s.configFile = path
	}
}

// WithWorkingDir overrides the directory used for project config discovery.
func WithWorkingDir(dir string) Option {
	return func(s *loadSettings) {
		s.workingDir = dir
	}
}

// WithUserConfigDir overrides the user config directory.
func WithUserConfigDir(dir string) Option {
	return func(s *loadSettings) {
		s.userConfigDir = dir
	}
}

// WithOverrides sets keys that take precedence over every other source,
// typically from command-line flags.
func WithOverrides(overrides map[string]any) Option {
	return func(s *loadSettings) {
		if s.overrides == nil {
			s.overrides = make(map[string]any, len(overrides))
		}
		for key, value := range overrides {
			s.overrides[key] = value
		}
	}
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/themegen or ~/.config/themegen.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "themegen")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "themegen")
	}
	return filepath.Join(home, ".config", "themegen")
}

// Load resolves configuration with the precedence:
// defaults < user config < project config < environment < overrides.
func Load(opts ...Option) (*Config, error) {
	settings := loadSettings{}
	for _, opt := range opts {
		opt(&settings)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if settings.configFile != "" {
		if _, err := os.Stat(settings.configFile); err != nil {
			return nil, fmt.Errorf("config file %s: %w", settings.configFile, err)
		}
		if err := mergeConfigFile(v, settings.configFile); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	} else {
		userDir := settings.userConfigDir
		if userDir == "" {
			userDir = DefaultConfigDir()
		}
		if err := mergeConfigFile(v, filepath.Join(userDir, "config.yaml")); err != nil {
			return nil, fmt.Errorf("load user config: %w", err)
		}
	}

	workingDir := settings.workingDir
	if workingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("determine working directory: %w", err)
		}
		workingDir = wd
	}
	projectPath, err := findProjectConfig(workingDir)
	if err != nil {
		return nil, err
	}
	if err := mergeConfigFile(v, projectPath); err != nil {
		return nil, fmt.Errorf("load project config: %w", err)
	}

	for key, value := range settings.overrides {
		v.Set(key, value)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("themes_dir", defaults.ThemesDir)
	v.SetDefault("input_file", defaults.InputFile)
	v.SetDefault("targets", defaults.Targets)
	for target, file := range defaults.Outputs {
		v.SetDefault("outputs."+target, file)
	}
	v.SetDefault("tmtheme.author", "")
	v.SetDefault("tmtheme.name", "")
	v.SetDefault("tmtheme.semantic_class", "")
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
}

func mergeConfigFile(v *viper.Viper, path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// findProjectConfig walks up from startDir looking for .themegen.yaml.
func findProjectConfig(startDir string) (string, error) {
	dir := startDir
	for {
		candidate := filepath.Join(dir, projectConfigName)
		info, err := os.Stat(candidate)
		if err == nil {
			if info.IsDir() {
				return "", fmt.Errorf("config path %s is a directory", candidate)
			}
			return candidate, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("stat %s: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
