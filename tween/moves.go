package tween

import (
	"math"

	"github.com/lixenwraith/junk-mart/constants"
	"github.com/lixenwraith/junk-mart/core"
	"github.com/lixenwraith/junk-mart/vmath"
)

// Pose is a camera placement
// Pitch is measured from looking straight down; π/2 looks along the floor
type Pose struct {
	Pos   vmath.Vec3F
	Pitch float64
}

var (
	// CameraRest overlooks the whole grid from above the shop floor
	CameraRest = Pose{
		Pos:   vmath.Vec3F{X: constants.CameraRestX, Y: constants.CameraRestY, Z: constants.CameraRestZ},
		Pitch: math.Atan2(-constants.CameraRestY, constants.CameraRestZ),
	}

	// CameraFront looks straight at the front chest
	CameraFront = Pose{
		Pos:   vmath.Vec3F{X: constants.CameraFrontX, Y: constants.CameraFrontY, Z: constants.CameraFrontZ},
		Pitch: math.Pi / 2,
	}
)

// ChestPos returns the resting world position of a grid slot
func ChestPos(p core.GridPos) vmath.Vec3F {
	return vmath.Vec3F{
		X: constants.ChestOriginX + float64(p.X)*constants.ChestSpacing,
		Y: constants.ChestOriginY + float64(p.Y)*constants.ChestSpacing,
	}
}

// Lift raises or lowers a visual in place to height
func Lift(h core.Handle, start vmath.Vec3F, height float64) Animation {
	return Animation{
		Handle: h,
		Legs: []Leg{{
			From: start, To: start.WithZ(height),
			Duration: constants.LiftDuration, Ease: vmath.EaseQuadInOut,
		}},
	}
}

// MoveBetween carries a visual along a lift, travel-at-height, lower arc
func MoveBetween(h core.Handle, start, end vmath.Vec3F, maxHeight float64) Animation {
	aboveStart := start.WithZ(maxHeight)
	aboveEnd := end.WithZ(maxHeight)
	return Animation{
		Handle: h,
		Legs: []Leg{
			{From: start, To: aboveStart, Duration: constants.ArcRiseDuration, Ease: vmath.EaseQuadInOut},
			{From: aboveStart, To: aboveEnd, Duration: constants.ArcTravelDuration, Ease: vmath.EaseQuadInOut},
			{From: aboveEnd, To: end, Duration: constants.ArcDropDuration, Ease: vmath.EaseQuadInOut},
		},
	}
}

// CameraMove pans the camera between poses with paired position and pitch tracks
func CameraMove(from, to Pose) Animation {
	return Animation{
		Camera: true,
		Legs: []Leg{{
			From: from.Pos, To: to.Pos,
			Duration: constants.CameraMoveDuration, Ease: vmath.EaseQuadInOut,
		}},
		PitchFrom: from.Pitch,
		PitchTo:   to.Pitch,
	}
}

// Present floats an item up out of the front chest
func Present(h core.Handle) Animation {
	start := ChestPos(core.Front)
	return Animation{
		Handle: h,
		Legs: []Leg{{
			From: start, To: start.WithZ(constants.PresentHeight),
			Duration: constants.PresentDuration, Ease: vmath.EaseQuadInOut,
		}},
	}
}

// Hide sinks a presented item back into the front chest
func Hide(h core.Handle) Animation {
	start := ChestPos(core.Front)
	return Animation{
		Handle: h,
		Legs: []Leg{{
			From: start.WithZ(constants.PresentHeight), To: start,
			Duration: constants.HideDuration, Ease: vmath.EaseQuadInOut,
		}},
	}
}
