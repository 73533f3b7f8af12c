package main

import (
	"fmt"

	"github.com/lixenwraith/junk-mart/core"
	"github.com/lixenwraith/junk-mart/engine"
	"github.com/lixenwraith/junk-mart/grid"
	"github.com/lixenwraith/junk-mart/rng"
)

// Policy chooses the chest to open for the current turn
type Policy func(ts *engine.TurnState) core.GridPos

// openable lists every slot but the front
func openable() []core.GridPos {
	var out []core.GridPos
	for _, p := range grid.Positions() {
		if !p.IsFront() {
			out = append(out, p)
		}
	}
	return out
}

// Oracle opens a chest holding the requested item when one is off the front slot
func Oracle(fallback *rng.Rand) Policy {
	random := Random(fallback)
	return func(ts *engine.TurnState) core.GridPos {
		if ts.Requested != nil {
			for _, p := range openable() {
				if c, _ := ts.Grid.Get(p); c.Item == ts.Requested.Item {
					return p
				}
			}
		}
		return random(ts)
	}
}

// Random opens any non-front chest
func Random(r *rng.Rand) Policy {
	slots := openable()
	return func(*engine.TurnState) core.GridPos {
		return slots[r.IntN(len(slots))]
	}
}

// Contrary never opens a chest with the requested item if it can avoid it
func Contrary(r *rng.Rand) Policy {
	return func(ts *engine.TurnState) core.GridPos {
		var wrong []core.GridPos
		for _, p := range openable() {
			if c, _ := ts.Grid.Get(p); ts.Requested == nil || c.Item != ts.Requested.Item {
				wrong = append(wrong, p)
			}
		}
		if len(wrong) == 0 {
			return openable()[0]
		}
		return wrong[r.IntN(len(wrong))]
	}
}

// PolicyByName resolves a -policy flag value
func PolicyByName(name string, r *rng.Rand) (Policy, error) {
	switch name {
	case "oracle":
		return Oracle(r), nil
	case "random":
		return Random(r), nil
	case "contrary":
		return Contrary(r), nil
	default:
		return nil, fmt.Errorf("unknown policy %q (oracle, random, contrary)", name)
	}
}
