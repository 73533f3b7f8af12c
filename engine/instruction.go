package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/junk-mart/core"
)

// Instruction is one step of a turn script
// The set of implementations is closed; the dispatcher in Step switches over all of them
type Instruction interface {
	instruction()
	String() string
}

// Wait holds the queue until Remaining has elapsed
type Wait struct {
	Remaining time.Duration
}

// SwapWithFirst exchanges the chest at Pos with the front chest
type SwapWithFirst struct {
	Pos core.GridPos
}

// MoveCameraToFirstChest pans the camera onto the front chest
type MoveCameraToFirstChest struct{}

// MoveCameraToRest pans the camera back to the overview pose
type MoveCameraToRest struct{}

// PresentItem raises the front chest's item toward the camera
type PresentItem struct{}

// HideItem sinks the presented item back into its chest
type HideItem struct{}

// ResolveRequest settles the presented item against the customer's request
type ResolveRequest struct{}

// ResolveStatusEffects runs one countdown pass of the status effects
type ResolveStatusEffects struct{}

// EndOfTurn drains news, brings in the next customer and closes the turn
type EndOfTurn struct{}

func (Wait) instruction()                   {}
func (SwapWithFirst) instruction()          {}
func (MoveCameraToFirstChest) instruction() {}
func (MoveCameraToRest) instruction()       {}
func (PresentItem) instruction()            {}
func (HideItem) instruction()               {}
func (ResolveRequest) instruction()         {}
func (ResolveStatusEffects) instruction()   {}
func (EndOfTurn) instruction()              {}

func (w Wait) String() string                 { return fmt.Sprintf("Wait(%v)", w.Remaining) }
func (s SwapWithFirst) String() string        { return fmt.Sprintf("SwapWithFirst%v", s.Pos) }
func (MoveCameraToFirstChest) String() string { return "MoveCameraToFirstChest" }
func (MoveCameraToRest) String() string       { return "MoveCameraToRest" }
func (PresentItem) String() string            { return "PresentItem" }
func (HideItem) String() string               { return "HideItem" }
func (ResolveRequest) String() string         { return "ResolveRequest" }
func (ResolveStatusEffects) String() string   { return "ResolveStatusEffects" }
func (EndOfTurn) String() string              { return "EndOfTurn" }

// TurnScript returns the ordered steps of a full turn for the chest at sel
func TurnScript(sel core.GridPos) []Instruction {
	return []Instruction{
		SwapWithFirst{Pos: sel},
		MoveCameraToFirstChest{},
		PresentItem{},
		ResolveRequest{},
		HideItem{},
		MoveCameraToRest{},
		ResolveStatusEffects{},
		EndOfTurn{},
	}
}
