package engine

import (
	"time"

	"github.com/lixenwraith/junk-mart/constants"
	"github.com/lixenwraith/junk-mart/core"
	"github.com/lixenwraith/junk-mart/effect"
	"github.com/lixenwraith/junk-mart/events"
	"github.com/lixenwraith/junk-mart/feed"
	"github.com/lixenwraith/junk-mart/item"
	"github.com/lixenwraith/junk-mart/rng"
	"github.com/lixenwraith/junk-mart/tween"
)

func (ts *TurnState) resolveStatusEffects() {
	if ts.Active != nil {
		ts.emit(events.EventDespawnVisual, &events.DespawnVisualPayload{Handle: ts.Active.Handle})
		ts.Active = nil
	} else {
		ts.Log.Warn("no presented item to despawn", "turn", ts.Customer)
	}

	live, expired := ts.Effects.Advance()

	var fired int
	var extra time.Duration

	for _, k := range expired {
		line, ok := endedLines[k]
		if !ok {
			continue
		}
		ts.post(feed.Event, line)
		ts.sound(core.SoundChime)
		fired++
		ts.Log.Debug("effect ended", "effect", k)
	}

	for _, k := range live {
		switch k {
		case effect.Diarrhea:
			fired++
			extra += constants.DiarrheaExtraWait
			ts.diarrhea()
		case effect.Cancer:
			fired++
			bill := item.RandomMoney(ts.Rand, constants.CancerTreatmentBase)
			ts.Ledger.Add(-bill)
			ts.post(feed.Event, cancerBillLine(bill))
		case effect.Reshuffle:
			fired++
			extra += ts.reshuffle()
		}
	}

	// LightsOut and VisualDistortion are continuous and live in the visual state
	ts.publishVisual()

	wait := time.Duration(fired)*constants.EffectPace + extra
	if wait <= 0 {
		ts.Queue.PopFront()
		return
	}
	ts.Queue.ReplaceFront(Wait{Remaining: wait})
}

func (ts *TurnState) diarrhea() {
	if ts.Requested != nil && ts.Rand.Chance(constants.DiarrheaCancelChance) {
		ts.Requested = nil
		ts.post(feed.Wrong, rng.Pick(ts.Rand, diarrheaCancelLines))
		return
	}
	ts.post(feed.Wrong, rng.Pick(ts.Rand, diarrheaLines))
}

// reshuffle permutes every chest and returns the wait covering the flights
func (ts *TurnState) reshuffle() time.Duration {
	moves := ts.Grid.Reshuffle(ts.Rand)
	anims := make([]tween.Animation, 0, len(moves))
	for _, m := range moves {
		height := ts.Rand.FloatRange(constants.ReshuffleMinHeight, constants.ReshuffleMaxHeight)
		anims = append(anims, tween.MoveBetween(m.Handle, tween.ChestPos(m.From), tween.ChestPos(m.To), height))
	}
	ts.sound(core.SoundRumble)
	ts.Log.Debug("grid reshuffled", "moves", len(moves))
	return ts.animate(anims...)
}
