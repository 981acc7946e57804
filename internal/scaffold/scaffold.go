// Package scaffold creates new theme directories from the bundled starter theme.
package scaffold

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/opencode-ai/themegen/internal/tmtheme"
)

//go:embed builtin/starter.toml
var builtinFS embed.FS

// ErrThemeExists is returned when the target file exists and overwriting was not requested.
var ErrThemeExists = errors.New("theme already exists")

// Starter renders the starter theme for name.
func Starter(name string) ([]byte, error) {
	data, err := builtinFS.ReadFile("builtin/starter.toml")
	if err != nil {
		return nil, fmt.Errorf("read builtin starter theme: %w", err)
	}

	parsed, err := template.New("starter").Option("missingkey=error").Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse starter theme: %w", err)
	}

	var out strings.Builder
	vars := map[string]string{
		"Name":    name,
		"Display": tmtheme.DisplayName(name),
	}
	if err := parsed.Execute(&out, vars); err != nil {
		return nil, fmt.Errorf("render starter theme: %w", err)
	}
	return []byte(out.String()), nil
}

// Create writes the starter theme to path, creating parent directories.
func Create(path, name string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrThemeExists, path)
		}
	}

	data, err := Starter(name)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create theme dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
