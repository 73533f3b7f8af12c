package engine

import (
	"github.com/lixenwraith/junk-mart/constants"
	"github.com/lixenwraith/junk-mart/core"
	"github.com/lixenwraith/junk-mart/events"
	"github.com/lixenwraith/junk-mart/feed"
)

func (ts *TurnState) endOfTurn() {
	if line, ok := ts.GlobalNews.Pop(); ok {
		ts.post(feed.External, line)
	}
	if line, ok := ts.WarNews.Pop(); ok {
		ts.post(feed.External, line)
		if ts.War && !ts.Won && ts.WarNews.Len() == 0 {
			ts.Won = true
			ts.post(feed.Event, winLine)
			ts.sound(core.SoundFanfare)
			ts.emit(events.EventWin, nil)
			ts.Log.Info("shop won", "turn", ts.Customer, "balance", ts.Ledger.Balance())
		}
	}

	if ts.Requested != nil {
		ts.post(feed.Event, reminderLine(ts.Requested.Phrase))
	} else {
		// The finale customer keeps coming back until the sale succeeds
		if ts.Customer != constants.FinaleTurn || ts.LastSuccess {
			ts.Customer++
		}
		ts.drawRequest()
	}
	ts.LastSuccess = false

	ts.emit(events.EventTurnComplete, &events.TurnCompletePayload{Turn: ts.Customer, Balance: ts.Ledger.Balance()})
	ts.Log.Debug("turn complete", "turn", ts.Customer, "balance", ts.Ledger.Balance(), "effects", ts.Effects.Len())
	ts.Queue.PopFront()
}
