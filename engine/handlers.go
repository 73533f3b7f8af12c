package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/junk-mart/constants"
	"github.com/lixenwraith/junk-mart/core"
	"github.com/lixenwraith/junk-mart/events"
	"github.com/lixenwraith/junk-mart/feed"
	"github.com/lixenwraith/junk-mart/tween"
)

// Step advances the front of the queue by one tick of dt
// Exactly one handler runs, chosen by the head's variant; the rest of the queue is inert
func (ts *TurnState) Step(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	ts.tick++

	front, ok := ts.Queue.Front()
	if !ok {
		return
	}

	switch in := front.(type) {
	case Wait:
		ts.wait(in, dt)
	case SwapWithFirst:
		ts.swapWithFirst(in)
	case MoveCameraToFirstChest:
		ts.moveCamera(tween.CameraRest, tween.CameraFront)
	case MoveCameraToRest:
		ts.moveCamera(tween.CameraFront, tween.CameraRest)
	case PresentItem:
		ts.presentItem()
	case ResolveRequest:
		ts.resolveRequest()
	case HideItem:
		ts.hideItem()
	case ResolveStatusEffects:
		ts.resolveStatusEffects()
	case EndOfTurn:
		ts.endOfTurn()
	default:
		panic(fmt.Sprintf("engine: unhandled instruction %T", front))
	}
}

// animate starts the animations and returns the pacing wait that covers all of them
func (ts *TurnState) animate(anims ...tween.Animation) time.Duration {
	for _, a := range anims {
		ts.emit(events.EventAnimate, &events.AnimatePayload{Animation: a})
	}
	return tween.Longest(anims...) + constants.WaitSlack
}

// skip drops the front step after a violated precondition
func (ts *TurnState) skip(in Instruction, reason string) {
	ts.Log.Warn("turn step skipped", "instruction", in.String(), "reason", reason, "turn", ts.Customer)
	ts.Queue.PopFront()
}

func (ts *TurnState) wait(in Wait, dt time.Duration) {
	remaining := in.Remaining - dt
	if remaining <= 0 {
		ts.Queue.PopFront()
		return
	}
	ts.Queue.ReplaceFront(Wait{Remaining: remaining})
}

func (ts *TurnState) swapWithFirst(in SwapWithFirst) {
	sel, ok := ts.Grid.Get(in.Pos)
	if !ok || in.Pos.IsFront() {
		ts.skip(in, "selection is not a swappable chest")
		return
	}
	front := ts.Grid.Front()

	frontPos := tween.ChestPos(core.Front)
	selPos := tween.ChestPos(in.Pos)
	selStart := selPos
	if ts.Lifted == sel.Handle {
		selStart = selPos.WithZ(constants.HoverHeight)
		ts.Lifted = 0
	}

	if err := ts.Grid.Swap(core.Front, in.Pos); err != nil {
		ts.skip(in, err.Error())
		return
	}

	d := ts.animate(
		tween.MoveBetween(front.Handle, frontPos, selPos, constants.SwapFrontHeight),
		tween.MoveBetween(sel.Handle, selStart, frontPos, constants.SwapSelectedHeight),
	)
	ts.sound(core.SoundWhoosh)
	ts.Queue.ReplaceFront(Wait{Remaining: d})
}

func (ts *TurnState) moveCamera(from, to tween.Pose) {
	d := ts.animate(tween.CameraMove(from, to))
	ts.Queue.ReplaceFront(Wait{Remaining: d})
}

func (ts *TurnState) presentItem() {
	if ts.Active != nil {
		ts.skip(PresentItem{}, "an item is already presented")
		return
	}

	chest := ts.Grid.Front()
	h := ts.allocHandle()
	ts.Active = &ActiveItem{Item: chest.Item, Handle: h, Found: chest.Item.Found(ts.Rand)}

	ts.emit(events.EventSpawnVisual, &events.SpawnVisualPayload{
		Handle: h,
		Item:   chest.Item,
		Pos:    tween.ChestPos(core.Front),
	})
	d := ts.animate(tween.Present(h))
	ts.sound(core.SoundBell)
	ts.post(feed.Event, foundLine(ts.Active.Found))
	ts.Queue.ReplaceFront(Wait{Remaining: d})
}

func (ts *TurnState) hideItem() {
	if ts.Active == nil {
		ts.skip(HideItem{}, "no item presented")
		return
	}
	d := ts.animate(tween.Hide(ts.Active.Handle))
	ts.Queue.ReplaceFront(Wait{Remaining: d})
}
