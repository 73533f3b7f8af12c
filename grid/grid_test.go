package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/junk-mart/constants"
	"github.com/lixenwraith/junk-mart/core"
	"github.com/lixenwraith/junk-mart/rng"
)

func handles(g *Grid) map[core.Handle]core.GridPos {
	out := map[core.Handle]core.GridPos{}
	for _, p := range Positions() {
		c, _ := g.Get(p)
		out[c.Handle] = p
	}
	return out
}

func TestNewPopulation(t *testing.T) {
	g := New(rng.New(1))
	assert.Equal(t, Population, g.Counts())
	hs := handles(g)
	assert.Len(t, hs, constants.ChestCount)
	for h := core.Handle(1); h <= constants.ChestCount; h++ {
		assert.Contains(t, hs, h)
	}
}

func TestSwap(t *testing.T) {
	g := New(rng.New(2))
	sel := core.GridPos{X: 3, Y: 2}
	front := g.Front()
	chosen, _ := g.Get(sel)

	require.NoError(t, g.Swap(core.Front, sel))
	assert.Equal(t, chosen, g.Front())
	got, _ := g.Get(sel)
	assert.Equal(t, front, got)

	assert.Error(t, g.Swap(core.Front, core.GridPos{X: 5, Y: 0}))
	assert.Error(t, g.Swap(core.GridPos{X: -1}, core.Front))
}

func TestReshuffleIsBijection(t *testing.T) {
	r := rng.New(3)
	g := New(r)
	before := g.Counts()
	beforeHandles := handles(g)

	for round := 0; round < 20; round++ {
		moves := g.Reshuffle(r)
		require.Len(t, moves, constants.ChestCount)

		targets := map[core.GridPos]bool{}
		for _, m := range moves {
			require.Equal(t, beforeHandles[m.Handle], m.From)
			require.False(t, targets[m.To], "slot %v targeted twice", m.To)
			targets[m.To] = true
			got, _ := g.Get(m.To)
			require.Equal(t, m.Handle, got.Handle)
		}
		require.Len(t, targets, constants.ChestCount)
		require.Equal(t, before, g.Counts())

		beforeHandles = handles(g)
		require.Len(t, beforeHandles, constants.ChestCount)
	}
}

func TestFindAndValid(t *testing.T) {
	g := New(rng.New(4))
	c, _ := g.Get(core.GridPos{X: 2, Y: 1})
	p, ok := g.Find(c.Handle)
	require.True(t, ok)
	assert.Equal(t, core.GridPos{X: 2, Y: 1}, p)
	_, ok = g.Find(0)
	assert.False(t, ok)

	assert.True(t, Valid(core.GridPos{X: 4, Y: 3}))
	assert.False(t, Valid(core.GridPos{X: 4, Y: 4}))
	_, ok = g.Get(core.GridPos{X: 0, Y: -1})
	assert.False(t, ok)
}
