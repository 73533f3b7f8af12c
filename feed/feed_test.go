package feed

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedEvictsOldest(t *testing.T) {
	f := New(3)
	for i := 0; i < 5; i++ {
		f.Post(Event, fmt.Sprint(i))
	}
	entries := f.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "2", entries[0].Text)
	assert.Equal(t, "4", entries[2].Text)

	last, ok := f.Last()
	require.True(t, ok)
	assert.Equal(t, Entry{Level: Event, Text: "4"}, last)
}

func TestFeedEntriesIsCopy(t *testing.T) {
	f := New(2)
	f.Post(Wrong, "a")
	entries := f.Entries()
	entries[0].Text = "mutated"
	assert.Equal(t, "a", f.Entries()[0].Text)
}

func TestBacklogBounded(t *testing.T) {
	b := NewBacklog(2)
	assert.True(t, b.Push("one"))
	assert.True(t, b.Push("two"))
	assert.False(t, b.Push("three"))
	assert.Equal(t, 2, b.Len())

	line, ok := b.Pop()
	require.True(t, ok)
	assert.Equal(t, "one", line)
	line, _ = b.Pop()
	assert.Equal(t, "two", line)
	_, ok = b.Pop()
	assert.False(t, ok)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "correct", Correct.String())
	assert.Equal(t, "unknown", Level(9).String())
}
