package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestInitJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(Config{Level: "warn", Format: "json"}, &buf); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() { _ = Init(Config{}, nil) })

	logger := Component("resolver")
	logger.Info().Msg("hidden")
	logger.Warn().Str("ref", "nope").Msg("unknown color reference")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info message should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, `"component":"resolver"`) {
		t.Fatalf("expected component field, got %s", out)
	}
	if !strings.Contains(out, `"ref":"nope"`) {
		t.Fatalf("expected ref field, got %s", out)
	}
}

func TestInitConsole(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(Config{Level: "DEBUG"}, &buf); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() { _ = Init(Config{}, nil) })

	logger := Component("cli")
	logger.Debug().Msg("loaded theme")
	if !strings.Contains(buf.String(), "loaded theme") {
		t.Fatalf("expected console output, got %q", buf.String())
	}
}

func TestInitErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"bad level", Config{Level: "loud"}},
		{"bad format", Config{Format: "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Init(tt.cfg, &bytes.Buffer{}); err == nil {
				t.Fatalf("expected error for %+v", tt.cfg)
			}
		})
	}
}
