// Package color resolves theme color references to hex values.
package color

import (
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Warning records a color reference that could not be resolved.
type Warning struct {
	Ref     string `json:"ref" yaml:"ref"`
	Message string `json:"message" yaml:"message"`
}

// Resolver turns palette names and literal hex strings into uppercased hex colors.
type Resolver struct {
	palette map[string]string
	logger  zerolog.Logger

	mu       sync.Mutex
	warnings []Warning
}

// NewResolver creates a resolver over palette. Unresolved references are
// logged to logger at warn level and recorded.
func NewResolver(palette map[string]string, logger zerolog.Logger) *Resolver {
	return &Resolver{
		palette: palette,
		logger:  logger,
	}
}

// Resolve returns the hex color for value. Literal colors start with '#' and
// never consult the palette. Empty and unresolvable values report false.
func (r *Resolver) Resolve(value string) (string, bool) {
	if value == "" {
		return "", false
	}

	if strings.HasPrefix(value, "#") {
		return strings.ToUpper(value), true
	}

	if hex, ok := r.palette[value]; ok && hex != "" {
		return strings.ToUpper(hex), true
	}

	r.warn(value)
	return "", false
}

// Warnings returns the unresolved references seen so far, in order.
func (r *Resolver) Warnings() []Warning {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Warning, len(r.warnings))
	copy(out, r.warnings)
	return out
}

func (r *Resolver) warn(ref string) {
	message := "unknown color reference: " + ref

	r.mu.Lock()
	r.warnings = append(r.warnings, Warning{Ref: ref, Message: message})
	r.mu.Unlock()

	r.logger.Warn().Str("ref", ref).Msg("unknown color reference")
}
