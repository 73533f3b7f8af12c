package engine

import (
	"log/slog"

	"github.com/lixenwraith/junk-mart/constants"
	"github.com/lixenwraith/junk-mart/core"
	"github.com/lixenwraith/junk-mart/effect"
	"github.com/lixenwraith/junk-mart/events"
	"github.com/lixenwraith/junk-mart/feed"
	"github.com/lixenwraith/junk-mart/grid"
	"github.com/lixenwraith/junk-mart/item"
	"github.com/lixenwraith/junk-mart/ledger"
	"github.com/lixenwraith/junk-mart/rng"
)

// Request is what the current customer wants
type Request struct {
	Phrase string
	Item   item.Item
}

// ActiveItem is the item being presented and the visual that shows it
type ActiveItem struct {
	Item   item.Item
	Handle core.Handle
	Found  string // Phrase used when the box was opened
}

// TurnState is everything a turn mutates
// It has exactly one owner; handlers receive it by pointer and nothing else writes it
type TurnState struct {
	Queue   Queue
	Grid    *grid.Grid
	Ledger  *ledger.Ledger
	Effects *effect.Registry
	Feed    *feed.Feed

	Requested     *Request
	Active        *ActiveItem
	PrevRequested *item.Item

	// Customer is the turn counter, gating tiers and the finale
	Customer int
	// LastSuccess records whether this turn's resolution was a correct sale
	LastSuccess bool

	GlobalNews *feed.Backlog
	WarNews    *feed.Backlog
	War        bool
	Won        bool

	// Hovered is the chest under the pointer while idle
	Hovered *core.GridPos
	// Lifted is the chest currently raised by hover, 0 when none
	Lifted core.Handle

	Visual events.VisualState

	Rand   *rng.Rand
	Events *events.EventQueue
	Log    *slog.Logger

	tick       uint64
	nextHandle core.Handle
}

// NewTurnState builds a fresh playthrough state with a shuffled grid
// r and q must be non-nil; log may be nil
func NewTurnState(r *rng.Rand, q *events.EventQueue, log *slog.Logger) *TurnState {
	if log == nil {
		log = slog.Default()
	}
	return &TurnState{
		Grid:       grid.New(r),
		Ledger:     ledger.New(0),
		Effects:    effect.NewRegistry(),
		Feed:       feed.New(constants.FeedLength),
		Customer:   1,
		GlobalNews: feed.NewBacklog(constants.GlobalNewsBacklog),
		WarNews:    feed.NewBacklog(constants.WarNewsBacklog),
		Visual:     events.VisualState{GlobalLights: true},
		Rand:       r,
		Events:     q,
		Log:        log,
		nextHandle: constants.ChestCount + 1,
	}
}

// Busy reports whether a turn is in progress
func (ts *TurnState) Busy() bool {
	return !ts.Queue.Empty()
}

func (ts *TurnState) allocHandle() core.Handle {
	h := ts.nextHandle
	ts.nextHandle++
	return h
}

func (ts *TurnState) emit(t events.EventType, payload any) {
	ts.Events.Push(events.GameEvent{Type: t, Payload: payload, Tick: ts.tick})
}

func (ts *TurnState) post(level feed.Level, text string) {
	entry := ts.Feed.Post(level, text)
	ts.emit(events.EventNewsPosted, &events.NewsPayload{Entry: entry})
}

func (ts *TurnState) sound(s core.SoundType) {
	ts.emit(events.EventSoundRequest, &events.SoundRequestPayload{Sound: s})
}

// publishVisual recomputes the global look from the live effects and emits it on change
func (ts *TurnState) publishVisual() {
	next := events.VisualState{
		Distortion:   ts.Effects.Active(effect.VisualDistortion),
		GlobalLights: !ts.Effects.Active(effect.LightsOut),
	}
	if !next.GlobalLights {
		next.PointerLight = 1
	}
	if next == ts.Visual {
		return
	}
	ts.Visual = next
	ts.emit(events.EventVisualState, &events.VisualStatePayload{State: next})
}

// drawRequest brings in the next customer for the current turn
func (ts *TurnState) drawRequest() {
	var exclude []item.Item
	if ts.PrevRequested != nil {
		exclude = append(exclude, *ts.PrevRequested)
	}
	it := item.Draw(ts.Rand, ts.Customer, exclude...)
	ts.Requested = &Request{Phrase: it.Request(ts.Rand), Item: it}
	ts.post(feed.Event, arrivalLine(ts.Rand, ts.Customer, ts.Requested.Phrase))
	ts.sound(core.SoundDoor)
	ts.Log.Debug("customer arrived", "turn", ts.Customer, "wants", it)
}
