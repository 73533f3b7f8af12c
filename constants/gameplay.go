package constants

import "time"

// Grid layout
const (
	GridWidth  = 5
	GridHeight = 4
	ChestCount = GridWidth * GridHeight

	// ChestSpacing is the world distance between neighbouring chest centers
	ChestSpacing = 1.2

	// ChestOriginX/Y is the world position of chest (0,0)
	ChestOriginX = -2.4
	ChestOriginY = -1.8

	// Pointer bounds on the shop floor plane, half-open
	PointerMinX = -2.9
	PointerMaxX = 2.9
	PointerMinY = -2.3
	PointerMaxY = 2.3
)

// Initial grid population per item kind (sums to ChestCount)
const (
	BurgerCount      = 6
	ScrewdriverCount = 6
	GunCount         = 4
	PillCount        = 3
	BarrelCount      = 1
)

// Turn tiers
const (
	// EarlyTierLast is the last turn of the early-game candidate set
	EarlyTierLast = 5

	// TurnTarget is the number of regular turns before the finale
	TurnTarget = 20

	// FinaleTurn requests the special item and holds until it is sold
	FinaleTurn = TurnTarget + 1
)

// Economy
const (
	// JitterDivisor bounds payouts to base ± base/JitterDivisor
	JitterDivisor = 20

	// MisfirePenalty is charged when an item is resolved with nobody waiting
	MisfirePenalty = 5000

	// CancerTreatmentBase is the per-turn bill while Cancer is active
	CancerTreatmentBase = 150

	// GlobalNewsChance is the probability that a sale ends up in the newspaper
	GlobalNewsChance = 0.35

	// DiarrheaCancelChance is the per-turn chance that the customer gives up waiting
	DiarrheaCancelChance = 0.5
)

// Status effect durations in turns
const (
	DiarrheaTurns   = 3
	DistortionTurns = 5
	LightsOutTurns  = 5
	ReshuffleTurns  = 1
)

// Feed and backlogs
const (
	// FeedLength is the number of narration lines kept for display
	FeedLength = 20

	// GlobalNewsBacklog bounds pending headlines; extra headlines are dropped
	GlobalNewsBacklog = 8

	// WarNewsBacklog holds the scripted escalation
	WarNewsBacklog = 4
)

// Pacing
const (
	// WaitSlack is added to every animation wait so the tween always finishes first
	WaitSlack = 100 * time.Millisecond

	// ReadDelay holds the camera on the presented item after resolution text is posted
	ReadDelay = 1500 * time.Millisecond

	// EffectPace is the wait added per status effect that fired a paced consequence
	EffectPace = 800 * time.Millisecond

	// DiarrheaExtraWait is the bathroom break added every turn Diarrhea is active
	DiarrheaExtraWait = 1500 * time.Millisecond
)
