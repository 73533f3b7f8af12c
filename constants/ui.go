package constants

// Terminal layout
const (
	// ChestCellWidth/Height is the terminal footprint of one chest
	ChestCellWidth  = 12
	ChestCellHeight = 4

	// HUDHeight is the number of rows above the grid
	HUDHeight = 2

	// FeedMinRows is the minimum feed panel height below the grid
	FeedMinRows = 6

	// SpotlightRadius is the lit radius in cells around the pointer during LightsOut
	SpotlightRadius = 8
)

// World to terminal projection
const (
	// LiftRowsPerUnit is how many rows one world unit of height raises a visual
	LiftRowsPerUnit = 2.0

	// FloorTopMargin is the number of rows kept free above the floor for lifted chests
	FloorTopMargin = 3

	// DistortionAmplitude is the maximum horizontal row shift in cells
	DistortionAmplitude = 2

	// DarkFactor scales colors outside the pointer spotlight when the lights are out
	DarkFactor = 0.15

	// FocusDimFactor scales the floor while the camera looks at the front chest
	FocusDimFactor = 0.45
)
