package mapping

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTableSortsByTarget(t *testing.T) {
	table, err := NewTable(
		Entry{Target: "text", Source: "ui.text", Channel: ChannelForeground},
		Entry{Target: "accent", Source: "ui.cursor", Channel: ChannelBackground},
		Entry{Target: "secondary"},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"accent", "secondary", "text"}, table.Targets())
	assert.Equal(t, 3, table.Len())
}

func TestNewTableDedupPrecedence(t *testing.T) {
	table, err := NewTable(
		Entry{Target: "diffAdded", Source: "diff.plus", Channel: ChannelForeground},
		Entry{Target: "border", Source: "ui.window", Channel: ChannelForeground},
		Entry{Target: "diffAdded", Source: "diff.delta", Channel: ChannelForeground},
		Entry{Target: "diffAdded"},
	)
	require.NoError(t, err)

	require.Equal(t, []string{"border", "diffAdded"}, table.Targets())

	// An empty source sorts before any scope name.
	entry, ok := table.Lookup("diffAdded")
	require.True(t, ok)
	assert.Equal(t, "", entry.Source)

	table, err = NewTable(
		Entry{Target: "diffAdded", Source: "diff.plus", Channel: ChannelForeground},
		Entry{Target: "diffAdded", Source: "diff.delta", Channel: ChannelForeground},
	)
	require.NoError(t, err)
	entry, _ = table.Lookup("diffAdded")
	assert.Equal(t, "diff.delta", entry.Source)
	assert.Equal(t, 1, table.Len())
}

func TestNewTableTieBreaksOnChannelAndLabel(t *testing.T) {
	table := MustTable(
		Entry{Target: "x", Source: "s", Channel: ChannelStyle, Label: "B"},
		Entry{Target: "x", Source: "s", Channel: ChannelStyle, Label: "A"},
		Entry{Target: "x", Source: "s", Channel: ChannelForeground, Label: "C"},
	)

	entry, _ := table.Lookup("x")
	assert.Equal(t, ChannelForeground, entry.Channel)

	table = MustTable(
		Entry{Target: "x", Source: "s", Channel: ChannelStyle, Label: "B"},
		Entry{Target: "x", Source: "s", Channel: ChannelStyle, Label: "A"},
	)
	entry, _ = table.Lookup("x")
	assert.Equal(t, "A", entry.Label)
}

func TestNewTableIndependentOfDeclarationOrder(t *testing.T) {
	entries := []Entry{
		{Target: "a", Source: "one", Channel: ChannelForeground},
		{Target: "b", Source: "two", Channel: ChannelBackground},
		{Target: "b", Source: "three", Channel: ChannelBackground},
		{Target: "c"},
		{Target: "d", Source: "four", Channel: ChannelStyle, Label: "Four"},
		{Target: "a", Source: "five", Channel: ChannelForeground},
	}
	want := MustTable(entries...).Entries()

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		shuffled := slices.Clone(entries)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		require.Equal(t, want, MustTable(shuffled...).Entries())
	}
}

func TestNewTableValidation(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
	}{
		{"empty target", Entry{Source: "comment", Channel: ChannelForeground}},
		{"blank target", Entry{Target: "  "}},
		{"missing channel", Entry{Target: "x", Source: "comment"}},
		{"bad channel", Entry{Target: "x", Source: "comment", Channel: "underline"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(Entry{Target: "ok"}, tt.entry)
			var entryErr *EntryError
			require.True(t, errors.As(err, &entryErr), "expected EntryError, got %v", err)
			assert.Equal(t, 1, entryErr.Index)
		})
	}

	assert.Panics(t, func() { MustTable(Entry{}) })
}

func TestTableEntriesIsCopy(t *testing.T) {
	table := MustTable(Entry{Target: "a", Source: "s", Channel: ChannelForeground})

	entries := table.Entries()
	entries[0].Target = "mutated"

	assert.Equal(t, []string{"a"}, table.Targets())
}

func TestTableSources(t *testing.T) {
	table := MustTable(
		Entry{Target: "a", Source: "ui.text", Channel: ChannelForeground},
		Entry{Target: "b", Source: "comment", Channel: ChannelForeground},
		Entry{Target: "c", Source: "ui.text", Channel: ChannelForeground},
		Entry{Target: "d"},
	)

	assert.Equal(t, []string{"comment", "ui.text"}, table.Sources())
}

func TestEntryName(t *testing.T) {
	assert.Equal(t, "Comments", Entry{Target: "comment", Label: "Comments"}.Name())
	assert.Equal(t, "comment", Entry{Target: "comment"}.Name())
}
