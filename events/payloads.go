package events

import (
	"github.com/lixenwraith/junk-mart/core"
	"github.com/lixenwraith/junk-mart/feed"
	"github.com/lixenwraith/junk-mart/item"
	"github.com/lixenwraith/junk-mart/ledger"
	"github.com/lixenwraith/junk-mart/tween"
	"github.com/lixenwraith/junk-mart/vmath"
)

// SoundRequestPayload contains the cue to play
type SoundRequestPayload struct {
	Sound core.SoundType
}

// AnimatePayload contains the animation to start immediately
type AnimatePayload struct {
	Animation tween.Animation
}

// SpawnVisualPayload contains a new item visual
type SpawnVisualPayload struct {
	Handle core.Handle
	Item   item.Item
	Pos    vmath.Vec3F
}

// DespawnVisualPayload names the visual to remove
type DespawnVisualPayload struct {
	Handle core.Handle
}

// NewsPayload contains one narration line
type NewsPayload struct {
	Entry feed.Entry
}

// VisualState is the global look requested from the renderer
type VisualState struct {
	Distortion   bool    // Full-screen distortion filter
	GlobalLights bool    // Ambient and ceiling lights
	PointerLight float64 // Intensity of the light following the pointer, 0 = off
}

// VisualStatePayload contains the complete visual state after a change
type VisualStatePayload struct {
	State VisualState
}

// TurnCompletePayload summarizes a finished turn
type TurnCompletePayload struct {
	Turn    int
	Balance ledger.Money
}
