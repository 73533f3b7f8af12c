// Package feed is the narration log shown to the player and the backlogs of
// headlines waiting for a turn boundary.
package feed

// Level is the severity of a narration line
type Level int

const (
	External Level = iota // Town news, not caused directly by the player this turn
	Event                 // Neutral happenings in the shop
	Correct               // A sale
	Wrong                 // A mishap
)

var levelNames = [...]string{"external", "event", "correct", "wrong"}

func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "unknown"
	}
	return levelNames[l]
}

// Entry is one narration line
type Entry struct {
	Level Level
	Text  string
}

// Feed keeps the most recent narration lines, oldest first
type Feed struct {
	limit   int
	entries []Entry
}

// New returns a feed holding at most limit entries
func New(limit int) *Feed {
	if limit < 1 {
		limit = 1
	}
	return &Feed{limit: limit, entries: make([]Entry, 0, limit)}
}

// Post appends an entry, evicting the oldest past the limit
func (f *Feed) Post(level Level, text string) Entry {
	e := Entry{Level: level, Text: text}
	if len(f.entries) == f.limit {
		copy(f.entries, f.entries[1:])
		f.entries = f.entries[:f.limit-1]
	}
	f.entries = append(f.entries, e)
	return e
}

// Entries returns a copy of the retained entries, oldest first
func (f *Feed) Entries() []Entry {
	out := make([]Entry, len(f.entries))
	copy(out, f.entries)
	return out
}

// Len returns the number of retained entries
func (f *Feed) Len() int {
	return len(f.entries)
}

// Last returns the newest entry
func (f *Feed) Last() (Entry, bool) {
	if len(f.entries) == 0 {
		return Entry{}, false
	}
	return f.entries[len(f.entries)-1], true
}
