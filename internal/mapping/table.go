// Package mapping provides the declarative tables that map target theme keys
// to Helix scopes, and the logic that applies them.
package mapping

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Channel selects which part of a scope style feeds a target key.
type Channel string

const (
	// ChannelForeground reads the resolved foreground color.
	ChannelForeground Channel = "fg"
	// ChannelBackground reads the resolved background color.
	ChannelBackground Channel = "bg"
	// ChannelStyle reads foreground, background and font style together.
	ChannelStyle Channel = "style"
)

// Valid reports whether c is a known channel.
func (c Channel) Valid() bool {
	switch c {
	case ChannelForeground, ChannelBackground, ChannelStyle:
		return true
	default:
		return false
	}
}

// Entry maps one target key to a source scope.
// An entry without Source always renders as the target format's unset value.
type Entry struct {
	Target  string  `json:"target" yaml:"target"`
	Source  string  `json:"source,omitempty" yaml:"source,omitempty"`
	Channel Channel `json:"channel,omitempty" yaml:"channel,omitempty"`
	Label   string  `json:"label,omitempty" yaml:"label,omitempty"`
}

// HasSource reports whether the entry reads from a scope.
func (e Entry) HasSource() bool {
	return e.Source != ""
}

// Name returns the label, falling back to the target key.
func (e Entry) Name() string {
	if e.Label != "" {
		return e.Label
	}
	return e.Target
}

// EntryError describes an invalid table entry.
type EntryError struct {
	Index   int
	Target  string
	Message string
}

func (e *EntryError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("mapping entry %d (%s): %s", e.Index, e.Target, e.Message)
	}
	return fmt.Sprintf("mapping entry %d: %s", e.Index, e.Message)
}

// Table is an immutable, sorted and deduplicated list of entries.
type Table struct {
	entries []Entry
	index   map[string]int
}

// NewTable validates, sorts and deduplicates entries.
//
// Entries are ordered by target, then source, then channel, then label, so
// the declaration order of the literal never affects output. When a target
// repeats, the first entry in that order wins.
func NewTable(entries ...Entry) (*Table, error) {
	for i, entry := range entries {
		if strings.TrimSpace(entry.Target) == "" {
			return nil, &EntryError{Index: i, Message: "target is required"}
		}
		if entry.HasSource() && !entry.Channel.Valid() {
			return nil, &EntryError{Index: i, Target: entry.Target, Message: fmt.Sprintf("invalid channel %q", entry.Channel)}
		}
	}

	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, compareEntries)

	table := &Table{
		entries: make([]Entry, 0, len(sorted)),
		index:   make(map[string]int, len(sorted)),
	}
	for _, entry := range sorted {
		if _, exists := table.index[entry.Target]; exists {
			continue
		}
		table.index[entry.Target] = len(table.entries)
		table.entries = append(table.entries, entry)
	}

	return table, nil
}

// MustTable is NewTable for package-level tables; it panics on invalid entries.
func MustTable(entries ...Entry) *Table {
	table, err := NewTable(entries...)
	if err != nil {
		panic(err)
	}
	return table
}

func compareEntries(a, b Entry) int {
	return cmp.Or(
		strings.Compare(a.Target, b.Target),
		strings.Compare(a.Source, b.Source),
		strings.Compare(string(a.Channel), string(b.Channel)),
		strings.Compare(a.Label, b.Label),
	)
}

// Entries returns a copy of the entries in table order.
func (t *Table) Entries() []Entry {
	return slices.Clone(t.entries)
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Lookup returns the entry for target.
func (t *Table) Lookup(target string) (Entry, bool) {
	i, ok := t.index[target]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Targets returns the target keys in table order.
func (t *Table) Targets() []string {
	targets := make([]string, len(t.entries))
	for i, entry := range t.entries {
		targets[i] = entry.Target
	}
	return targets
}

// Sources returns the distinct source scopes referenced by the table, sorted.
func (t *Table) Sources() []string {
	seen := make(map[string]struct{}, len(t.entries))
	sources := make([]string, 0, len(t.entries))
	for _, entry := range t.entries {
		if !entry.HasSource() {
			continue
		}
		if _, ok := seen[entry.Source]; ok {
			continue
		}
		seen[entry.Source] = struct{}{}
		sources = append(sources, entry.Source)
	}
	slices.Sort(sources)
	return sources
}
