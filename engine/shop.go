package engine

import (
	"errors"
	"log/slog"
	"math"
	"strings"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/junk-mart/constants"
	"github.com/lixenwraith/junk-mart/core"
	"github.com/lixenwraith/junk-mart/events"
	"github.com/lixenwraith/junk-mart/feed"
	"github.com/lixenwraith/junk-mart/grid"
	"github.com/lixenwraith/junk-mart/rng"
	"github.com/lixenwraith/junk-mart/status"
	"github.com/lixenwraith/junk-mart/tween"
)

var (
	ErrNoRand   = errors.New("engine: random source is required")
	ErrNoEvents = errors.New("engine: event queue is required")
)

// Config holds the collaborators of a Shop
type Config struct {
	Rand   *rng.Rand
	Events *events.EventQueue

	// Status receives published metrics, optional
	Status *status.Registry
	// Logger defaults to slog.Default
	Logger *slog.Logger
}

// Shop is the turn controller: it owns the TurnState, turns input into turn
// scripts and drives the queue one step per Tick
// All methods must be called from the same goroutine
type Shop struct {
	state   *TurnState
	started bool

	// Last floor position reported by the front-end, replayed when a turn ends
	pointerX, pointerY float64
	pointerSeen        bool

	// Cached metric pointers, nil without a registry
	statBalance    *atomic.Int64
	statTurn       *atomic.Int64
	statTarget     *atomic.Int64
	statTicks      *atomic.Int64
	statQueueDepth *atomic.Int64
	statBusy       *atomic.Bool
	statWar        *atomic.Bool
	statWon        *atomic.Bool
	statRequest    *status.Text
	statEffects    *status.Text
}

// New creates a shop with a freshly shuffled grid
func New(cfg Config) (*Shop, error) {
	if cfg.Rand == nil {
		return nil, ErrNoRand
	}
	if cfg.Events == nil {
		return nil, ErrNoEvents
	}

	s := &Shop{state: NewTurnState(cfg.Rand, cfg.Events, cfg.Logger)}
	if reg := cfg.Status; reg != nil {
		s.statBalance = reg.Ints.Get(status.KeyBalance)
		s.statTurn = reg.Ints.Get(status.KeyTurn)
		s.statTarget = reg.Ints.Get(status.KeyTarget)
		s.statTicks = reg.Ints.Get(status.KeyTicks)
		s.statQueueDepth = reg.Ints.Get(status.KeyQueueDepth)
		s.statBusy = reg.Bools.Get(status.KeyBusy)
		s.statWar = reg.Bools.Get(status.KeyWar)
		s.statWon = reg.Bools.Get(status.KeyWon)
		s.statRequest = reg.Strings.Get(status.KeyRequest)
		s.statEffects = reg.Strings.Get(status.KeyEffects)
		s.statTarget.Store(constants.TurnTarget)
	}
	return s, nil
}

// Start posts the tutorial and brings in the first customer
// Calling it again is a no-op
func (s *Shop) Start() {
	if s.started {
		return
	}
	s.started = true
	ts := s.state
	for _, line := range tutorialLines {
		ts.post(feed.Event, line)
	}
	ts.drawRequest()
	ts.emit(events.EventVisualState, &events.VisualStatePayload{State: ts.Visual})
	ts.Log.Info("shop opened", "seed", ts.Rand.Seed())
	s.publish()
}

// State exposes the turn state for inspection by tools and tests
func (s *Shop) State() *TurnState {
	return s.state
}

// Busy reports whether a turn is in progress; input is ignored while busy
func (s *Shop) Busy() bool {
	return s.state.Busy()
}

// Tick advances the current turn by dt
// When the turn ends the chest under the resting pointer is lifted again,
// since the front-end only reports pointer motion across cells
func (s *Shop) Tick(dt time.Duration) {
	wasBusy := s.state.Busy()
	s.state.Step(dt)
	if wasBusy && !s.state.Busy() && s.pointerSeen {
		s.PointerMoved(s.pointerX, s.pointerY)
	}
	if s.statTicks != nil {
		s.statTicks.Add(1)
	}
	s.publish()
}

// PointerToGrid maps a point on the shop floor to the chest under it
func PointerToGrid(x, y float64) (core.GridPos, bool) {
	if x < constants.PointerMinX || x >= constants.PointerMaxX ||
		y < constants.PointerMinY || y >= constants.PointerMaxY {
		return core.GridPos{}, false
	}
	p := core.GridPos{
		X: int(math.Floor((x - constants.PointerMinX) / constants.ChestSpacing)),
		Y: int(math.Floor((y - constants.PointerMinY) / constants.ChestSpacing)),
	}
	return p, grid.Valid(p)
}

// PointerMoved updates hover feedback for a floor position
func (s *Shop) PointerMoved(x, y float64) {
	s.pointerX, s.pointerY, s.pointerSeen = x, y, true
	ts := s.state
	if ts.Busy() {
		return
	}

	pos, ok := PointerToGrid(x, y)
	if !ok {
		s.lower()
		ts.Hovered = nil
		return
	}
	if ts.Hovered != nil && *ts.Hovered == pos {
		return
	}

	s.lower()
	chest, _ := ts.Grid.Get(pos)
	ts.animate(tween.Lift(chest.Handle, tween.ChestPos(pos), constants.HoverHeight))
	ts.Lifted = chest.Handle
	ts.Hovered = &pos
}

// lower drops the hover-lifted chest back into its slot
func (s *Shop) lower() {
	ts := s.state
	if ts.Lifted == 0 {
		return
	}
	if pos, ok := ts.Grid.Find(ts.Lifted); ok {
		ts.animate(tween.Lift(ts.Lifted, tween.ChestPos(pos).WithZ(constants.HoverHeight), 0))
	}
	ts.Lifted = 0
}

// PointerReleased starts a turn on the hovered chest
// It returns false when the click was ignored
func (s *Shop) PointerReleased() bool {
	ts := s.state
	if ts.Busy() || !s.started {
		return false
	}
	if ts.Hovered == nil || ts.Hovered.IsFront() {
		return false
	}

	sel := *ts.Hovered
	ts.Hovered = nil
	ts.Queue.Push(TurnScript(sel)...)
	ts.Log.Debug("turn started", "turn", ts.Customer, "chest", sel)
	s.publish()
	return true
}

func (s *Shop) publish() {
	if s.statBalance == nil {
		return
	}
	ts := s.state
	s.statBalance.Store(int64(ts.Ledger.Balance()))
	s.statTurn.Store(int64(ts.Customer))
	s.statQueueDepth.Store(int64(ts.Queue.Len()))
	s.statBusy.Store(ts.Busy())
	s.statWar.Store(ts.War)
	s.statWon.Store(ts.Won)

	if ts.Requested != nil {
		s.statRequest.Store(ts.Requested.Phrase)
	} else {
		s.statRequest.Store("")
	}

	kinds := ts.Effects.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	if _, changed := s.statEffects.Swap(strings.Join(names, status.EffectSep)); changed {
		ts.Log.Debug("effects changed", "active", names)
	}
}
