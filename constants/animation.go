package constants

import "time"

// Chest motion
const (
	LiftDuration      = 200 * time.Millisecond
	ArcRiseDuration   = 200 * time.Millisecond
	ArcTravelDuration = 500 * time.Millisecond
	ArcDropDuration   = 200 * time.Millisecond

	// HoverHeight is how far a hovered chest rises
	HoverHeight = 0.5

	// SwapFrontHeight and SwapSelectedHeight give the two swapped chests crossing arcs
	SwapFrontHeight    = 1.2
	SwapSelectedHeight = 2.4

	// Reshuffle arc heights are drawn per chest from [min, max)
	ReshuffleMinHeight = 1.0
	ReshuffleMaxHeight = 3.5
)

// Item presentation
const (
	PresentDuration = 600 * time.Millisecond
	HideDuration    = 400 * time.Millisecond

	// PresentHeight is the height the item floats at in front of the camera
	PresentHeight = 1.0
)

// Camera
const (
	CameraMoveDuration = 1000 * time.Millisecond

	CameraRestX = 0.0
	CameraRestY = -8.0
	CameraRestZ = 17.0

	CameraFrontX = -2.4
	CameraFrontY = -5.0
	CameraFrontZ = 1.0
)
