// Package tween describes fire-and-forget animations. The turn engine emits
// them and paces itself by their Duration; the renderer plays them back by
// sampling. Both sides read the same numbers, so a wait can never drift
// from the animation it covers.
package tween

import (
	"time"

	"github.com/lixenwraith/junk-mart/core"
	"github.com/lixenwraith/junk-mart/vmath"
)

// Leg is one eased straight-line segment
type Leg struct {
	From, To vmath.Vec3F
	Duration time.Duration
	Ease     vmath.Ease
}

// Animation moves one visual (or the camera) through sequential legs
// Camera animations also carry a pitch track spanning the whole duration
type Animation struct {
	Handle core.Handle
	Camera bool
	Legs   []Leg

	PitchFrom, PitchTo float64
}

// Duration is the total playback time
func (a Animation) Duration() time.Duration {
	var d time.Duration
	for _, l := range a.Legs {
		d += l.Duration
	}
	return d
}

// End is the final position
func (a Animation) End() vmath.Vec3F {
	if len(a.Legs) == 0 {
		return vmath.Vec3F{}
	}
	return a.Legs[len(a.Legs)-1].To
}

// Sample returns position and pitch after elapsed playback time
func (a Animation) Sample(elapsed time.Duration) (pos vmath.Vec3F, pitch float64, done bool) {
	total := a.Duration()
	if len(a.Legs) == 0 {
		return vmath.Vec3F{}, a.PitchTo, true
	}
	if elapsed >= total {
		return a.End(), a.PitchTo, true
	}
	if elapsed < 0 {
		elapsed = 0
	}

	if total > 0 {
		p := vmath.EaseQuadInOut.Apply(float64(elapsed) / float64(total))
		pitch = vmath.Lerp(a.PitchFrom, a.PitchTo, p)
	}

	remaining := elapsed
	for _, l := range a.Legs {
		if remaining < l.Duration {
			t := l.Ease.Apply(float64(remaining) / float64(l.Duration))
			return vmath.V3FLerp(l.From, l.To, t), pitch, false
		}
		remaining -= l.Duration
	}
	return a.End(), a.PitchTo, true
}

// Longest returns the duration of the slowest animation in a concurrent group
func Longest(anims ...Animation) time.Duration {
	var d time.Duration
	for _, a := range anims {
		if ad := a.Duration(); ad > d {
			d = ad
		}
	}
	return d
}
