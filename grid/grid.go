// Package grid is the fixed 5x4 field of chests.
package grid

import (
	"fmt"

	"github.com/lixenwraith/junk-mart/constants"
	"github.com/lixenwraith/junk-mart/core"
	"github.com/lixenwraith/junk-mart/item"
	"github.com/lixenwraith/junk-mart/rng"
)

// Chest is one slot's content and the visual that shows it
type Chest struct {
	Handle core.Handle
	Item   item.Item
}

// Move is one chest relocation produced by a reshuffle
type Move struct {
	Handle   core.Handle
	From, To core.GridPos
}

// Grid owns exactly ChestCount chests for the whole playthrough
type Grid struct {
	slots [constants.GridWidth][constants.GridHeight]Chest
}

// Population is the initial multiset of chest contents
var Population = map[item.Item]int{
	item.Burger:      constants.BurgerCount,
	item.Screwdriver: constants.ScrewdriverCount,
	item.Gun:         constants.GunCount,
	item.Pill:        constants.PillCount,
	item.Barrel:      constants.BarrelCount,
}

// New fills the grid with a shuffled Population
// Chest handles are 1..ChestCount in slot order
func New(r *rng.Rand) *Grid {
	contents := make([]item.Item, 0, constants.ChestCount)
	for _, it := range item.All {
		for i := 0; i < Population[it]; i++ {
			contents = append(contents, it)
		}
	}
	if len(contents) != constants.ChestCount {
		panic(fmt.Sprintf("grid: population holds %d items, want %d", len(contents), constants.ChestCount))
	}
	r.Shuffle(len(contents), func(i, j int) { contents[i], contents[j] = contents[j], contents[i] })

	g := &Grid{}
	for i, p := range Positions() {
		g.slots[p.X][p.Y] = Chest{Handle: core.Handle(i + 1), Item: contents[i]}
	}
	return g
}

// Positions lists every slot, column-major from the front
func Positions() []core.GridPos {
	out := make([]core.GridPos, 0, constants.ChestCount)
	for x := 0; x < constants.GridWidth; x++ {
		for y := 0; y < constants.GridHeight; y++ {
			out = append(out, core.GridPos{X: x, Y: y})
		}
	}
	return out
}

// Valid reports whether p addresses a slot
func Valid(p core.GridPos) bool {
	return p.X >= 0 && p.X < constants.GridWidth && p.Y >= 0 && p.Y < constants.GridHeight
}

// Get returns the chest at p
func (g *Grid) Get(p core.GridPos) (Chest, bool) {
	if !Valid(p) {
		return Chest{}, false
	}
	return g.slots[p.X][p.Y], true
}

// Front returns the chest in the presentation slot
func (g *Grid) Front() Chest {
	return g.slots[0][0]
}

// Swap exchanges the chests at a and b
func (g *Grid) Swap(a, b core.GridPos) error {
	if !Valid(a) || !Valid(b) {
		return fmt.Errorf("swap %v with %v: position out of grid", a, b)
	}
	g.slots[a.X][a.Y], g.slots[b.X][b.Y] = g.slots[b.X][b.Y], g.slots[a.X][a.Y]
	return nil
}

// Reshuffle applies a random permutation of all chests to all slots
// The returned moves include chests that land back on their own slot
func (g *Grid) Reshuffle(r *rng.Rand) []Move {
	positions := Positions()
	perm := r.Perm(len(positions))

	var next [constants.GridWidth][constants.GridHeight]Chest
	moves := make([]Move, 0, len(positions))
	for i, from := range positions {
		to := positions[perm[i]]
		c := g.slots[from.X][from.Y]
		next[to.X][to.Y] = c
		moves = append(moves, Move{Handle: c.Handle, From: from, To: to})
	}
	g.slots = next
	return moves
}

// Find returns the slot currently holding handle h
func (g *Grid) Find(h core.Handle) (core.GridPos, bool) {
	for _, p := range Positions() {
		if g.slots[p.X][p.Y].Handle == h {
			return p, true
		}
	}
	return core.GridPos{}, false
}

// Counts returns the multiset of contents
func (g *Grid) Counts() map[item.Item]int {
	counts := make(map[item.Item]int, item.Count)
	for _, p := range Positions() {
		counts[g.slots[p.X][p.Y].Item]++
	}
	return counts
}
