package targets

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownTarget is returned when a target name is not registered.
var ErrUnknownTarget = errors.New("unknown target")

// Registry holds the available targets by name.
type Registry struct {
	mu      sync.RWMutex
	targets map[string]Target
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		targets: make(map[string]Target),
	}
}

// Register adds a target.
// Returns an error if a target with the same name is already registered.
func (r *Registry) Register(target Target) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := target.Name()
	if _, exists := r.targets[name]; exists {
		return fmt.Errorf("target %q already registered", name)
	}

	r.targets[name] = target
	return nil
}

// MustRegister adds a target, panicking on error.
func (r *Registry) MustRegister(target Target) {
	if err := r.Register(target); err != nil {
		panic(err)
	}
}

// Get retrieves a target by name.
// Returns nil if the target is not found.
func (r *Registry) Get(name string) Target {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.targets[name]
}

// List returns all targets sorted by name.
func (r *Registry) List() []Target {
	r.mu.RLock()
	defer r.mu.RUnlock()

	targets := make([]Target, 0, len(r.targets))
	for _, target := range r.targets {
		targets = append(targets, target)
	}
	sort.Slice(targets, func(i, j int) bool {
		return targets[i].Name() < targets[j].Name()
	})
	return targets
}

// Names returns the registered target names, sorted.
func (r *Registry) Names() []string {
	targets := r.List()
	names := make([]string, len(targets))
	for i, target := range targets {
		names[i] = target.Name()
	}
	return names
}

// Select returns the named targets in the given order, skipping duplicates.
// An empty selection returns every registered target.
func (r *Registry) Select(names []string) ([]Target, error) {
	if len(names) == 0 {
		return r.List(), nil
	}

	selected := make([]Target, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		target := r.Get(name)
		if target == nil {
			return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownTarget, name, r.Names())
		}
		selected = append(selected, target)
	}
	return selected, nil
}
