package render

import (
	"time"

	"github.com/lixenwraith/junk-mart/events"
	"github.com/lixenwraith/junk-mart/feed"
)

// FeedView mirrors the narration posted by the engine for the feed panel
type FeedView struct {
	lines *feed.Feed
}

// NewFeedView keeps the newest limit lines
func NewFeedView(limit int) *FeedView {
	return &FeedView{lines: feed.New(limit)}
}

// EventTypes implements events.Handler
func (f *FeedView) EventTypes() []events.EventType {
	return []events.EventType{events.EventNewsPosted}
}

// HandleEvent implements events.Handler
func (f *FeedView) HandleEvent(_ time.Time, ev events.GameEvent) {
	if p, ok := ev.Payload.(*events.NewsPayload); ok {
		f.lines.Post(p.Entry.Level, p.Entry.Text)
	}
}

// Tail returns up to n of the newest lines, oldest first
func (f *FeedView) Tail(n int) []feed.Entry {
	entries := f.lines.Entries()
	if n < len(entries) {
		entries = entries[len(entries)-n:]
	}
	return entries
}
