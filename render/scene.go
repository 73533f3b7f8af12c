// Package render is the terminal front-end: it plays back the engine's
// animations on a top-down projection of the shop floor and draws the HUD
// and the news feed with tcell.
package render

import (
	"log/slog"
	"sort"
	"time"

	"github.com/lixenwraith/junk-mart/core"
	"github.com/lixenwraith/junk-mart/events"
	"github.com/lixenwraith/junk-mart/grid"
	"github.com/lixenwraith/junk-mart/item"
	"github.com/lixenwraith/junk-mart/tween"
	"github.com/lixenwraith/junk-mart/vmath"
)

// Visual is a drawable snapshot of one chest or presented item
type Visual struct {
	Handle    core.Handle
	Item      item.Item
	Presented bool // Item floating out of the front chest rather than a closed chest
	Pos       vmath.Vec3F
}

type playback struct {
	anim  tween.Animation
	start time.Time
}

type visual struct {
	Visual
	play *playback
}

// Scene holds every visual the engine refers to by handle and plays their animations
// It is driven from the render goroutine only
type Scene struct {
	visuals map[core.Handle]*visual
	camera  tween.Pose
	camPlay *playback
	state   events.VisualState
	log     *slog.Logger
}

// NewScene seeds one closed chest visual per grid slot
func NewScene(g *grid.Grid, log *slog.Logger) *Scene {
	if log == nil {
		log = slog.Default()
	}
	s := &Scene{
		visuals: make(map[core.Handle]*visual, len(grid.Positions())+1),
		camera:  tween.CameraRest,
		state:   events.VisualState{GlobalLights: true},
		log:     log,
	}
	for _, p := range grid.Positions() {
		c, _ := g.Get(p)
		s.visuals[c.Handle] = &visual{Visual: Visual{Handle: c.Handle, Item: c.Item, Pos: tween.ChestPos(p)}}
	}
	return s
}

// EventTypes implements events.Handler
func (s *Scene) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventAnimate,
		events.EventSpawnVisual,
		events.EventDespawnVisual,
		events.EventVisualState,
	}
}

// HandleEvent implements events.Handler, now is the frame time the event is applied at
func (s *Scene) HandleEvent(now time.Time, ev events.GameEvent) {
	switch ev.Type {
	case events.EventAnimate:
		p, ok := ev.Payload.(*events.AnimatePayload)
		if !ok {
			return
		}
		s.play(now, p.Animation)
	case events.EventSpawnVisual:
		p, ok := ev.Payload.(*events.SpawnVisualPayload)
		if !ok {
			return
		}
		s.visuals[p.Handle] = &visual{Visual: Visual{Handle: p.Handle, Item: p.Item, Presented: true, Pos: p.Pos}}
	case events.EventDespawnVisual:
		p, ok := ev.Payload.(*events.DespawnVisualPayload)
		if !ok {
			return
		}
		if _, exists := s.visuals[p.Handle]; !exists {
			s.log.Debug("despawn of unknown visual", "handle", p.Handle)
		}
		delete(s.visuals, p.Handle)
	case events.EventVisualState:
		if p, ok := ev.Payload.(*events.VisualStatePayload); ok {
			s.state = p.State
		}
	}
}

// play starts an animation, replacing any still running on the same target
func (s *Scene) play(now time.Time, a tween.Animation) {
	pb := &playback{anim: a, start: now}
	if a.Camera {
		s.camPlay = pb
		return
	}
	v, ok := s.visuals[a.Handle]
	if !ok {
		s.log.Debug("animation for unknown visual", "handle", a.Handle)
		return
	}
	v.play = pb
}

// Advance samples all running animations at now and retires finished ones
func (s *Scene) Advance(now time.Time) {
	for _, v := range s.visuals {
		if v.play == nil {
			continue
		}
		pos, _, done := v.play.anim.Sample(now.Sub(v.play.start))
		v.Pos = pos
		if done {
			v.play = nil
		}
	}
	if s.camPlay != nil {
		pos, pitch, done := s.camPlay.anim.Sample(now.Sub(s.camPlay.start))
		s.camera = tween.Pose{Pos: pos, Pitch: pitch}
		if done {
			s.camPlay = nil
		}
	}
}

// Visuals returns the visuals in draw order: lowest first, presented items last
func (s *Scene) Visuals() []Visual {
	out := make([]Visual, 0, len(s.visuals))
	for _, v := range s.visuals {
		out = append(out, v.Visual)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Presented != b.Presented {
			return !a.Presented
		}
		if a.Pos.Z != b.Pos.Z {
			return a.Pos.Z < b.Pos.Z
		}
		return a.Handle < b.Handle
	})
	return out
}

// Visual returns the current snapshot of one handle
func (s *Scene) Visual(h core.Handle) (Visual, bool) {
	v, ok := s.visuals[h]
	if !ok {
		return Visual{}, false
	}
	return v.Visual, true
}

// Camera returns the current camera pose
func (s *Scene) Camera() tween.Pose {
	return s.camera
}

// Focus is 0 with the camera at rest and 1 when it looks at the front chest
func (s *Scene) Focus() float64 {
	span := tween.CameraFront.Pitch - tween.CameraRest.Pitch
	if span == 0 {
		return 0
	}
	return vmath.Clamp((s.camera.Pitch-tween.CameraRest.Pitch)/span, 0, 1)
}

// State returns the last published visual state
func (s *Scene) State() events.VisualState {
	return s.state
}

// Animating returns the number of animations still playing
func (s *Scene) Animating() int {
	n := 0
	for _, v := range s.visuals {
		if v.play != nil {
			n++
		}
	}
	if s.camPlay != nil {
		n++
	}
	return n
}
