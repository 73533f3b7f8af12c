package engine

import (
	"github.com/lixenwraith/junk-mart/constants"
	"github.com/lixenwraith/junk-mart/core"
	"github.com/lixenwraith/junk-mart/effect"
	"github.com/lixenwraith/junk-mart/feed"
	"github.com/lixenwraith/junk-mart/item"
	"github.com/lixenwraith/junk-mart/ledger"
)

func (ts *TurnState) resolveRequest() {
	if ts.Active == nil {
		ts.skip(ResolveRequest{}, "no item presented")
		return
	}

	switch {
	case ts.Requested == nil:
		ts.misfire()
	case ts.Requested.Item == ts.Active.Item:
		ts.sell()
	default:
		ts.mismatch()
	}
	ts.Queue.ReplaceFront(Wait{Remaining: constants.ReadDelay})
}

// misfire handles an item resolved with nobody waiting for it
func (ts *TurnState) misfire() {
	ts.LastSuccess = false
	ts.Ledger.Add(-constants.MisfirePenalty)
	for _, line := range misfireLines {
		ts.post(feed.Wrong, line)
	}
	ts.Effects.Enable(effect.Reshuffle, constants.ReshuffleTurns)
	ts.sound(core.SoundError)
	ts.Log.Warn("item resolved without a customer", "item", ts.Active.Item, "turn", ts.Customer)
}

func (ts *TurnState) sell() {
	it := ts.Active.Item
	gain := it.Gain(ts.Rand)
	ts.Ledger.Add(gain)
	ts.post(feed.Correct, saleLine(ts.Active.Found, gain))
	ts.sound(core.SoundCoin)

	prev := it
	ts.PrevRequested = &prev
	ts.Requested = nil
	ts.LastSuccess = true

	switch {
	case it.Special() && !ts.War:
		ts.War = true
		for _, line := range warLines {
			ts.WarNews.Push(line)
		}
		ts.Log.Info("war armed", "turn", ts.Customer)
	case ts.Rand.Chance(constants.GlobalNewsChance):
		if headline, ok := it.Headline(ts.Rand); ok && !ts.GlobalNews.Push(headline) {
			ts.Log.Debug("headline dropped, backlog full", "item", it)
		}
	}
	ts.Log.Debug("sale", "item", it, "gain", gain, "balance", ts.Ledger.Balance())
}

func (ts *TurnState) mismatch() {
	ts.LastSuccess = false
	ts.post(feed.Wrong, mismatchLine(ts.Requested.Phrase, ts.Active.Found))
	ts.sound(core.SoundError)

	se := ts.Active.Item.SideEffect(ts.Rand)
	switch se.Outcome {
	case item.NoEffect:
		ts.post(feed.Wrong, se.Text)
	case item.MoneyLoss:
		ts.Ledger.Add(-ledger.Money(se.Loss))
		ts.post(feed.Wrong, se.Text)
	case item.EnableEffect:
		ts.Effects.Enable(se.Effect, se.Turns)
		ts.post(feed.Wrong, se.Text)
	case item.CureEffect:
		ts.post(feed.Wrong, se.Text)
		if ts.Effects.Remove(se.Effect) {
			ts.post(feed.Event, cureLine)
			ts.publishVisual()
		}
	case item.ToggleEffect:
		if ts.Effects.Toggle(se.Effect) {
			ts.post(feed.Wrong, cancerOnLine)
		} else {
			ts.post(feed.Event, cancerOffLine)
		}
	case item.CancelRequest:
		ts.Requested = nil
		ts.post(feed.Wrong, se.Text)
	}
	ts.Log.Debug("mismatch", "found", ts.Active.Item, "outcome", se.Outcome, "balance", ts.Ledger.Balance())
}
