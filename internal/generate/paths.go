package generate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	// ErrThemeNameRequired is returned when no theme name is given.
	ErrThemeNameRequired = errors.New("theme name is required")
	// ErrInvalidThemeName is returned for names that are not a single directory.
	ErrInvalidThemeName = errors.New("invalid theme name")
)

// Layout locates theme directories and the files inside them.
type Layout struct {
	// ThemesDir holds one directory per theme.
	ThemesDir string
	// InputFile is the Helix theme file name inside each theme directory.
	InputFile string
}

// ValidateName checks that name is a single path element.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrThemeNameRequired
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fmt.Errorf("%w %q: must be a directory name under the themes directory", ErrInvalidThemeName, name)
	}
	return nil
}

// ThemeDir returns the directory of the named theme.
func (l Layout) ThemeDir(name string) string {
	return filepath.Join(l.ThemesDir, name)
}

// InputPath returns the Helix theme file of the named theme.
func (l Layout) InputPath(name string) string {
	return filepath.Join(l.ThemeDir(name), l.InputFile)
}

// OutputPath returns where a target's file for the named theme is written.
func (l Layout) OutputPath(name, file string) string {
	return filepath.Join(l.ThemeDir(name), file)
}

// ListThemes returns the names of theme directories that contain an input file, sorted.
func (l Layout) ListThemes() ([]string, error) {
	entries, err := os.ReadDir(l.ThemesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read themes dir %s: %w", l.ThemesDir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		info, err := os.Stat(l.InputPath(entry.Name()))
		if err != nil || info.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}

	sort.Strings(names)
	return names, nil
}
