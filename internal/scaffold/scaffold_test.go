package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opencode-ai/themegen/internal/color"
	"github.com/opencode-ai/themegen/internal/helix"
)

func TestStarterParses(t *testing.T) {
	data, err := Starter("pop-dark")
	if err != nil {
		t.Fatalf("Starter: %v", err)
	}
	if !strings.HasPrefix(string(data), "# Pop Dark: a Helix theme.") {
		t.Fatalf("unexpected header: %q", strings.SplitN(string(data), "\n", 2)[0])
	}

	theme, err := helix.Parse(data)
	if err != nil {
		t.Fatalf("starter theme does not parse: %v", err)
	}
	if issues := color.ValidatePalette(theme.Palette); len(issues) > 0 {
		t.Fatalf("starter palette has issues: %+v", issues)
	}

	for _, scope := range theme.ScopeNames() {
		style := theme.Style(scope)
		for _, ref := range []string{style.Foreground, style.Background} {
			if ref == "" || strings.HasPrefix(ref, "#") {
				continue
			}
			if _, ok := theme.Palette[ref]; !ok {
				t.Errorf("scope %s references unknown color %q", scope, ref)
			}
		}
	}
}

func TestCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themes", "pop-dark", "helix.toml")

	if err := Create(path, "pop-dark", false); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("theme not written: %v", err)
	}

	if err := os.WriteFile(path, []byte("custom"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	err := Create(path, "pop-dark", false)
	if !errors.Is(err, ErrThemeExists) {
		t.Fatalf("expected ErrThemeExists, got %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "custom" {
		t.Fatal("existing theme was modified without force")
	}

	if err := Create(path, "pop-dark", true); err != nil {
		t.Fatalf("Create with force: %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) == "custom" {
		t.Fatal("force did not overwrite")
	}
}
