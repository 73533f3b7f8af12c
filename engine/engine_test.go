package engine

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/junk-mart/constants"
	"github.com/lixenwraith/junk-mart/core"
	"github.com/lixenwraith/junk-mart/effect"
	"github.com/lixenwraith/junk-mart/events"
	"github.com/lixenwraith/junk-mart/feed"
	"github.com/lixenwraith/junk-mart/grid"
	"github.com/lixenwraith/junk-mart/item"
	"github.com/lixenwraith/junk-mart/ledger"
	"github.com/lixenwraith/junk-mart/rng"
	"github.com/lixenwraith/junk-mart/tween"
)

var scriptOrder = []string{
	"SwapWithFirst",
	"MoveCameraToFirstChest",
	"PresentItem",
	"ResolveRequest",
	"HideItem",
	"MoveCameraToRest",
	"ResolveStatusEffects",
	"EndOfTurn",
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestState(t *testing.T, seed uint64) *TurnState {
	t.Helper()
	return NewTurnState(rng.New(seed), events.NewEventQueue(), quietLogger())
}

func kindName(in Instruction) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", in), "engine.")
}

// chestWith returns a non-front slot holding it, moving the front copy out if needed
func chestWith(t *testing.T, ts *TurnState, it item.Item) core.GridPos {
	t.Helper()
	for _, p := range grid.Positions() {
		if p.IsFront() {
			continue
		}
		if c, _ := ts.Grid.Get(p); c.Item == it {
			return p
		}
	}
	alt := core.GridPos{X: 1}
	require.NoError(t, ts.Grid.Swap(core.Front, alt))
	c, _ := ts.Grid.Get(alt)
	require.Equal(t, it, c.Item)
	return alt
}

// drain ticks until the queue is empty, calling observe with the head before each tick
func drain(t *testing.T, ts *TurnState, dt time.Duration, observe func(front Instruction)) {
	t.Helper()
	for i := 0; !ts.Queue.Empty(); i++ {
		require.Less(t, i, 1_000_000, "queue never drained")
		front, _ := ts.Queue.Front()
		if observe != nil {
			observe(front)
		}
		ts.Step(dt)
	}
}

// stepUntil ticks until the head is of the named kind
func stepUntil(t *testing.T, ts *TurnState, dt time.Duration, name string) {
	t.Helper()
	for i := 0; ; i++ {
		require.Less(t, i, 1_000_000, "never reached %s", name)
		front, ok := ts.Queue.Front()
		require.True(t, ok, "queue drained before %s", name)
		if kindName(front) == name {
			return
		}
		ts.Step(dt)
	}
}

func entriesAt(f *feed.Feed, level feed.Level) []string {
	var out []string
	for _, e := range f.Entries() {
		if e.Level == level {
			out = append(out, e.Text)
		}
	}
	return out
}

func consumeOf(q *events.EventQueue, t events.EventType) []events.GameEvent {
	var out []events.GameEvent
	for _, ev := range q.Consume() {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

func TestQueueOperations(t *testing.T) {
	var q Queue
	assert.True(t, q.Empty())
	_, ok := q.Front()
	assert.False(t, ok)
	q.PopFront()
	q.ReplaceFront(EndOfTurn{})
	assert.Equal(t, 0, q.Len())

	q.Push(PresentItem{}, HideItem{})
	front, ok := q.Front()
	require.True(t, ok)
	assert.Equal(t, PresentItem{}, front)

	q.ReplaceFront(Wait{Remaining: time.Second})
	assert.Equal(t, []Instruction{Wait{Remaining: time.Second}, HideItem{}}, q.Snapshot())

	q.PopFront()
	q.PopFront()
	assert.True(t, q.Empty())
}

func TestTurnOrderIndependentOfFrameRate(t *testing.T) {
	for _, dt := range []time.Duration{time.Millisecond, 16 * time.Millisecond, 33 * time.Millisecond, 250 * time.Millisecond, 3 * time.Second} {
		t.Run(dt.String(), func(t *testing.T) {
			ts := newTestState(t, 7)
			ts.drawRequest()
			ts.Queue.Push(TurnScript(core.GridPos{X: 2, Y: 1})...)

			var seen []string
			drain(t, ts, dt, func(front Instruction) {
				if _, ok := front.(Wait); !ok {
					seen = append(seen, kindName(front))
				}
			})
			assert.Equal(t, scriptOrder, seen)
		})
	}
}

func TestHeadOnlyMutation(t *testing.T) {
	ts := newTestState(t, 11)
	ts.drawRequest()
	ts.Effects.Enable(effect.Diarrhea, 2)
	ts.Queue.Push(TurnScript(core.GridPos{X: 4, Y: 3})...)

	for i := 0; !ts.Queue.Empty(); i++ {
		require.Less(t, i, 100_000)
		before := ts.Queue.Snapshot()
		ts.Step(20 * time.Millisecond)
		after := ts.Queue.Snapshot()

		switch len(after) {
		case len(before):
			assert.Equal(t, before[1:], after[1:], "tick %d touched more than the head", i)
		case len(before) - 1:
			assert.Equal(t, before[1:], after, "tick %d popped more than the head", i)
		default:
			t.Fatalf("tick %d changed queue length from %d to %d", i, len(before), len(after))
		}
	}
}

func TestActiveItemLifecycle(t *testing.T) {
	ts := newTestState(t, 3)
	ts.drawRequest()
	ts.Queue.Push(TurnScript(core.GridPos{X: 1, Y: 2})...)

	presented := false
	drain(t, ts, 50*time.Millisecond, func(front Instruction) {
		switch front.(type) {
		case SwapWithFirst, MoveCameraToFirstChest, PresentItem:
			assert.Nil(t, ts.Active, "item visible before presentation")
		case ResolveRequest, HideItem, MoveCameraToRest:
			assert.NotNil(t, ts.Active, "item missing during presentation")
			presented = true
		case ResolveStatusEffects:
			assert.NotNil(t, ts.Active)
		case EndOfTurn:
			assert.Nil(t, ts.Active, "item survived into EndOfTurn")
		}
	})
	assert.True(t, presented)
	assert.Nil(t, ts.Active)
}

func TestWaitMatchesIssuedAnimations(t *testing.T) {
	ts := newTestState(t, 5)
	ts.Queue.Push(SwapWithFirst{Pos: core.GridPos{X: 3, Y: 2}}, MoveCameraToFirstChest{}, PresentItem{})

	for range 3 {
		ts.Events.Consume()
		ts.Step(0)

		var anims []tween.Animation
		for _, ev := range consumeOf(ts.Events, events.EventAnimate) {
			anims = append(anims, ev.Payload.(*events.AnimatePayload).Animation)
		}
		require.NotEmpty(t, anims)

		front, ok := ts.Queue.Front()
		require.True(t, ok)
		w, isWait := front.(Wait)
		require.True(t, isWait)
		assert.Equal(t, tween.Longest(anims...)+constants.WaitSlack, w.Remaining)
		ts.Queue.PopFront()
	}
}

func TestSwapCarriesHandlesAndCrossesArcs(t *testing.T) {
	ts := newTestState(t, 9)
	sel := core.GridPos{X: 2, Y: 3}
	front := ts.Grid.Front()
	picked, _ := ts.Grid.Get(sel)

	ts.Queue.Push(SwapWithFirst{Pos: sel})
	ts.Step(0)

	assert.Equal(t, picked, ts.Grid.Front())
	got, _ := ts.Grid.Get(sel)
	assert.Equal(t, front, got)

	anims := consumeOf(ts.Events, events.EventAnimate)
	require.Len(t, anims, 2)
	low := anims[0].Payload.(*events.AnimatePayload).Animation
	high := anims[1].Payload.(*events.AnimatePayload).Animation
	assert.Equal(t, front.Handle, low.Handle)
	assert.Equal(t, picked.Handle, high.Handle)
	assert.InDelta(t, constants.SwapFrontHeight, low.Legs[0].To.Z, 1e-9)
	assert.InDelta(t, constants.SwapSelectedHeight, high.Legs[0].To.Z, 1e-9)
}

// Customer asks for a burger and gets one
func TestScenarioCorrectSale(t *testing.T) {
	ts := newTestState(t, 21)
	ts.Requested = &Request{Phrase: "food", Item: item.Burger}
	sel := chestWith(t, ts, item.Burger)
	ts.Queue.Push(TurnScript(sel)...)

	stepUntil(t, ts, 10*time.Millisecond, "HideItem")

	base := int64(item.Burger.GainBase())
	balance := int64(ts.Ledger.Balance())
	assert.GreaterOrEqual(t, balance, base-base/constants.JitterDivisor)
	assert.LessOrEqual(t, balance, base+base/constants.JitterDivisor)
	assert.Nil(t, ts.Requested)
	require.NotNil(t, ts.PrevRequested)
	assert.Equal(t, item.Burger, *ts.PrevRequested)
	assert.Len(t, entriesAt(ts.Feed, feed.Correct), 1)
	assert.Empty(t, entriesAt(ts.Feed, feed.Wrong))
	assert.True(t, ts.LastSuccess)

	drain(t, ts, 10*time.Millisecond, nil)
	assert.Equal(t, 2, ts.Customer)
	require.NotNil(t, ts.Requested)
	assert.Equal(t, item.Screwdriver, ts.Requested.Item, "early tier must skip the item just sold")
}

// Nobody is waiting when a gun comes out of the chest
func TestScenarioMisfire(t *testing.T) {
	ts := newTestState(t, 33)
	sel := chestWith(t, ts, item.Gun)
	ts.Queue.Push(TurnScript(sel)...)

	stepUntil(t, ts, 10*time.Millisecond, "HideItem")

	assert.Equal(t, ledger.Money(-constants.MisfirePenalty), ts.Ledger.Balance())
	assert.Equal(t, misfireLines, entriesAt(ts.Feed, feed.Wrong))
	n, ok := ts.Effects.Remaining(effect.Reshuffle)
	require.True(t, ok)
	assert.Equal(t, constants.ReshuffleTurns, n)

	before := ts.Grid.Counts()
	drain(t, ts, 10*time.Millisecond, nil)
	assert.Equal(t, ledger.Money(-constants.MisfirePenalty), ts.Ledger.Balance())
	assert.Equal(t, before, ts.Grid.Counts())
	assert.Equal(t, 2, ts.Customer)
	assert.NotNil(t, ts.Requested)
}

// A click during a turn is dropped without touching hover state
func TestScenarioClickWhileBusy(t *testing.T) {
	s, err := New(Config{Rand: rng.New(4), Events: events.NewEventQueue(), Logger: quietLogger()})
	require.NoError(t, err)
	s.Start()

	ts := s.State()
	hovered := core.GridPos{X: 3, Y: 3}
	ts.Hovered = &hovered
	ts.Queue.Push(Wait{Remaining: time.Second})

	assert.False(t, s.PointerReleased())
	assert.Equal(t, 1, ts.Queue.Len())
	require.NotNil(t, ts.Hovered)
	assert.Equal(t, hovered, *ts.Hovered)

	p := tween.ChestPos(core.GridPos{X: 1, Y: 1})
	s.PointerMoved(p.X, p.Y)
	assert.Equal(t, hovered, *ts.Hovered, "hover must not follow the pointer while busy")
}

// Diarrhea may send the customer home, and always costs extra time
func TestScenarioDiarrheaPass(t *testing.T) {
	var cancelled, persisted int
	for seed := uint64(1); seed <= 60; seed++ {
		ts := newTestState(t, seed)
		ts.Requested = &Request{Phrase: "pills", Item: item.Pill}
		ts.Active = &ActiveItem{Item: item.Gun, Handle: 99}
		ts.Effects.Enable(effect.Diarrhea, constants.DiarrheaTurns)
		ts.Queue.Push(ResolveStatusEffects{})

		ts.Step(0)

		front, ok := ts.Queue.Front()
		require.True(t, ok)
		assert.Equal(t, Wait{Remaining: constants.EffectPace + constants.DiarrheaExtraWait}, front)

		last, _ := ts.Feed.Last()
		assert.Equal(t, feed.Wrong, last.Level)
		if ts.Requested == nil {
			cancelled++
			assert.Contains(t, diarrheaCancelLines, last.Text)
		} else {
			persisted++
			assert.Contains(t, diarrheaLines, last.Text)
		}
	}
	assert.Positive(t, cancelled)
	assert.Positive(t, persisted)
}

func TestViolatedPreconditionIsLoggedNoOp(t *testing.T) {
	for _, in := range []Instruction{ResolveRequest{}, HideItem{}, SwapWithFirst{Pos: core.Front}, SwapWithFirst{Pos: core.GridPos{X: 9}}} {
		t.Run(in.String(), func(t *testing.T) {
			var buf bytes.Buffer
			ts := NewTurnState(rng.New(1), events.NewEventQueue(), slog.New(slog.NewTextHandler(&buf, nil)))
			ts.Requested = &Request{Phrase: "guns", Item: item.Gun}
			ts.Queue.Push(in, EndOfTurn{})

			ts.Step(time.Second)

			front, _ := ts.Queue.Front()
			assert.Equal(t, EndOfTurn{}, front)
			assert.Equal(t, ledger.Money(0), ts.Ledger.Balance())
			assert.Equal(t, 0, ts.Feed.Len())
			assert.Contains(t, buf.String(), "turn step skipped")
			assert.Contains(t, buf.String(), in.String())
		})
	}
}

func TestPresentRefusesSecondItem(t *testing.T) {
	ts := newTestState(t, 1)
	ts.Active = &ActiveItem{Item: item.Pill, Handle: 50}
	ts.Queue.Push(PresentItem{})
	ts.Step(0)

	assert.True(t, ts.Queue.Empty())
	assert.Equal(t, core.Handle(50), ts.Active.Handle)
	assert.Empty(t, consumeOf(ts.Events, events.EventSpawnVisual))
}

func TestEffectLivesExactlyNPasses(t *testing.T) {
	ts := newTestState(t, 2)
	ts.Effects.Enable(effect.LightsOut, constants.LightsOutTurns)

	for pass := 1; pass <= constants.LightsOutTurns; pass++ {
		ts.Queue.Push(ResolveStatusEffects{})
		ts.Step(0)
		assert.True(t, ts.Effects.Active(effect.LightsOut), "pass %d", pass)
		assert.False(t, ts.Visual.GlobalLights)
		assert.Equal(t, 1.0, ts.Visual.PointerLight)
		assert.True(t, ts.Queue.Empty(), "continuous effects are not paced")
	}

	ts.Events.Consume()
	ts.Queue.Push(ResolveStatusEffects{})
	ts.Step(0)

	assert.False(t, ts.Effects.Active(effect.LightsOut))
	assert.True(t, ts.Visual.GlobalLights)
	assert.Zero(t, ts.Visual.PointerLight)
	last, _ := ts.Feed.Last()
	assert.Equal(t, endedLines[effect.LightsOut], last.Text)

	states := consumeOf(ts.Events, events.EventVisualState)
	require.Len(t, states, 1)
	assert.Equal(t, events.VisualState{GlobalLights: true}, states[0].Payload.(*events.VisualStatePayload).State)
}

func TestReshuffleFiresOnceThenExpiresSilently(t *testing.T) {
	ts := newTestState(t, 8)
	ts.Effects.Enable(effect.Reshuffle, constants.ReshuffleTurns)
	before := ts.Grid.Counts()

	ts.Queue.Push(ResolveStatusEffects{})
	ts.Step(0)
	assert.Len(t, consumeOf(ts.Events, events.EventAnimate), constants.ChestCount)
	assert.Equal(t, before, ts.Grid.Counts())
	front, ok := ts.Queue.Front()
	require.True(t, ok)
	assert.Greater(t, front.(Wait).Remaining, constants.EffectPace)

	ts.Queue.PopFront()
	ts.Queue.Push(ResolveStatusEffects{})
	ts.Step(0)
	assert.False(t, ts.Effects.Active(effect.Reshuffle))
	assert.True(t, ts.Queue.Empty())
	assert.Empty(t, consumeOf(ts.Events, events.EventAnimate))
	assert.Equal(t, 0, ts.Feed.Len())
}

func TestCancerBillsEveryPass(t *testing.T) {
	ts := newTestState(t, 6)
	require.True(t, ts.Effects.Toggle(effect.Cancer))

	for pass := 1; pass <= 3; pass++ {
		before := ts.Ledger.Balance()
		ts.Queue.Push(ResolveStatusEffects{})
		ts.Step(0)

		bill := int64(before - ts.Ledger.Balance())
		assert.GreaterOrEqual(t, bill, int64(constants.CancerTreatmentBase-constants.CancerTreatmentBase/constants.JitterDivisor))
		assert.LessOrEqual(t, bill, int64(constants.CancerTreatmentBase+constants.CancerTreatmentBase/constants.JitterDivisor))
		assert.Equal(t, Wait{Remaining: constants.EffectPace}, mustFront(t, ts))
		ts.Queue.PopFront()
	}
	assert.True(t, ts.Effects.Active(effect.Cancer))
}

func mustFront(t *testing.T, ts *TurnState) Instruction {
	t.Helper()
	front, ok := ts.Queue.Front()
	require.True(t, ok)
	return front
}

func TestEndOfTurnReminderKeepsCustomer(t *testing.T) {
	ts := newTestState(t, 1)
	ts.Customer = 7
	ts.Requested = &Request{Phrase: "a pill", Item: item.Pill}
	ts.Queue.Push(EndOfTurn{})
	ts.Step(0)

	assert.Equal(t, 7, ts.Customer)
	assert.Equal(t, item.Pill, ts.Requested.Item)
	last, _ := ts.Feed.Last()
	assert.Equal(t, reminderLine("a pill"), last.Text)

	done := consumeOf(ts.Events, events.EventTurnComplete)
	require.Len(t, done, 1)
	assert.Equal(t, 7, done[0].Payload.(*events.TurnCompletePayload).Turn)
}

func TestFinaleHoldsUntilSuccess(t *testing.T) {
	ts := newTestState(t, 1)
	ts.Customer = constants.FinaleTurn
	ts.Queue.Push(EndOfTurn{})
	ts.Step(0)

	assert.Equal(t, constants.FinaleTurn, ts.Customer)
	require.NotNil(t, ts.Requested)
	assert.Equal(t, item.Barrel, ts.Requested.Item)

	ts.Requested = nil
	ts.LastSuccess = true
	ts.Queue.Push(EndOfTurn{})
	ts.Step(0)
	assert.Equal(t, constants.FinaleTurn+1, ts.Customer)
	assert.False(t, ts.LastSuccess)
	assert.Contains(t, item.Tier(ts.Customer), ts.Requested.Item)
}

func TestBarrelSaleStartsWarAndWins(t *testing.T) {
	ts := newTestState(t, 12)
	ts.Customer = constants.FinaleTurn
	ts.Requested = &Request{Phrase: "a radioactive barrel", Item: item.Barrel}
	ts.Active = &ActiveItem{Item: item.Barrel, Handle: 77, Found: "radioactive barrels"}
	ts.Queue.Push(ResolveRequest{})
	ts.Step(0)

	assert.True(t, ts.War)
	assert.False(t, ts.Won)
	assert.Equal(t, constants.WarNewsBacklog, ts.WarNews.Len())
	assert.Zero(t, ts.GlobalNews.Len(), "the special item has no headline")

	wins := 0
	for turn := 1; turn <= len(warLines); turn++ {
		ts.Queue.PopFront()
		ts.Queue.Push(EndOfTurn{})
		ts.Step(0)
		wins += len(consumeOf(ts.Events, events.EventWin))
		assert.Equal(t, turn == len(warLines), ts.Won, "turn %d", turn)
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, warLines, entriesAt(ts.Feed, feed.External))

	// A second sale does not rearm the war
	ts.Requested = &Request{Phrase: "a barrel", Item: item.Barrel}
	ts.Active = &ActiveItem{Item: item.Barrel, Handle: 78}
	ts.Queue.Push(ResolveRequest{})
	ts.Step(0)
	assert.Zero(t, ts.WarNews.Len())
}

func TestCureOnlyAnnouncesActiveEffect(t *testing.T) {
	// Find seeds where the pill rolls the cure outcome
	var checked int
	for seed := uint64(1); seed <= 200 && checked < 2; seed++ {
		if item.Pill.SideEffect(rng.New(seed)).Outcome != item.CureEffect {
			continue
		}
		for _, sick := range []bool{false, true} {
			ts := newTestState(t, seed)
			ts.Requested = &Request{Phrase: "guns", Item: item.Gun}
			ts.Active = &ActiveItem{Item: item.Pill, Handle: 60, Found: "pills"}
			// The mismatch draws the side effect first, so replay from the same seed
			ts.Rand = rng.New(seed)
			if sick {
				ts.Effects.Enable(effect.Diarrhea, 2)
			}
			ts.Queue.Push(ResolveRequest{})
			ts.Step(0)

			assert.False(t, ts.Effects.Active(effect.Diarrhea))
			texts := make([]string, 0)
			for _, e := range ts.Feed.Entries() {
				texts = append(texts, e.Text)
			}
			if sick {
				assert.Contains(t, texts, cureLine)
			} else {
				assert.NotContains(t, texts, cureLine)
			}
		}
		checked++
	}
	assert.Positive(t, checked)
}

// Only effects that can run out have a wear-off line; Cancer leaves through the toggle
func TestEndedLinesCoverTimedEffects(t *testing.T) {
	var kinds []effect.Kind
	for k := range endedLines {
		kinds = append(kinds, k)
	}
	assert.ElementsMatch(t, []effect.Kind{effect.LightsOut, effect.VisualDistortion, effect.Diarrhea}, kinds)

	ts := newTestState(t, 9)
	require.True(t, ts.Effects.Toggle(effect.Cancer))
	for range 3 {
		_, expired := ts.Effects.Advance()
		assert.NotContains(t, expired, effect.Cancer)
	}
	assert.True(t, ts.Effects.Active(effect.Cancer))
}
