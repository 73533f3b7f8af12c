package item

import (
	"github.com/lixenwraith/junk-mart/constants"
	"github.com/lixenwraith/junk-mart/rng"
)

var (
	earlyTier  = []Item{Burger, Screwdriver}
	midTier    = []Item{Burger, Screwdriver, Gun, Pill}
	finaleTier = []Item{Barrel}
)

// Tier returns the candidate set for a turn number
func Tier(turn int) []Item {
	switch {
	case turn >= 1 && turn <= constants.EarlyTierLast:
		return earlyTier
	case turn > constants.EarlyTierLast && turn <= constants.TurnTarget:
		return midTier
	case turn == constants.FinaleTurn:
		return finaleTier
	default:
		return midTier
	}
}

// Draw picks the next requested item for a turn
// Excluded items are skipped unless nothing else is left, so a value is always returned
func Draw(r *rng.Rand, turn int, exclude ...Item) Item {
	tier := Tier(turn)
	candidates := make([]Item, 0, len(tier))
	for _, it := range tier {
		if !contains(exclude, it) {
			candidates = append(candidates, it)
		}
	}
	if len(candidates) == 0 {
		candidates = tier
	}
	return rng.Pick(r, candidates)
}

func contains(items []Item, it Item) bool {
	for _, x := range items {
		if x == it {
			return true
		}
	}
	return false
}
