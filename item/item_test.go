package item

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/junk-mart/constants"
	"github.com/lixenwraith/junk-mart/effect"
	"github.com/lixenwraith/junk-mart/rng"
)

func TestDrawNeverReturnsExcluded(t *testing.T) {
	r := rng.New(1)
	for turn := 1; turn <= 40; turn++ {
		tier := Tier(turn)
		for _, prev := range tier {
			for i := 0; i < 50; i++ {
				got := Draw(r, turn, prev)
				require.Contains(t, tier, got)
				if len(tier) > 1 {
					require.NotEqual(t, prev, got, "turn %d", turn)
				}
			}
		}
	}
}

func TestDrawFinaleIgnoresExclusion(t *testing.T) {
	r := rng.New(2)
	assert.Equal(t, Barrel, Draw(r, constants.FinaleTurn, Barrel))
	assert.Equal(t, Barrel, Draw(r, constants.FinaleTurn))
}

func TestTiers(t *testing.T) {
	assert.ElementsMatch(t, []Item{Burger, Screwdriver}, Tier(1))
	assert.ElementsMatch(t, []Item{Burger, Screwdriver}, Tier(5))
	assert.ElementsMatch(t, []Item{Burger, Screwdriver, Gun, Pill}, Tier(6))
	assert.ElementsMatch(t, []Item{Burger, Screwdriver, Gun, Pill}, Tier(20))
	assert.Equal(t, []Item{Barrel}, Tier(21))
	assert.ElementsMatch(t, []Item{Burger, Screwdriver, Gun, Pill}, Tier(22))
	assert.ElementsMatch(t, []Item{Burger, Screwdriver, Gun, Pill}, Tier(0))
}

func TestDrawCoversTier(t *testing.T) {
	r := rng.New(3)
	seen := map[Item]bool{}
	for i := 0; i < 400; i++ {
		seen[Draw(r, 10)] = true
	}
	assert.Len(t, seen, 4)
}

func TestGainWithinJitter(t *testing.T) {
	r := rng.New(4)
	for _, it := range All {
		base := int64(it.GainBase())
		for i := 0; i < 200; i++ {
			g := int64(it.Gain(r))
			require.GreaterOrEqual(t, g, base-base/20)
			require.LessOrEqual(t, g, base+base/20)
		}
	}
}

func TestSideEffectsAreWellFormed(t *testing.T) {
	r := rng.New(5)
	for _, it := range All {
		outcomes := map[Outcome]bool{}
		for i := 0; i < 300; i++ {
			se := it.SideEffect(r)
			outcomes[se.Outcome] = true
			switch se.Outcome {
			case MoneyLoss:
				require.Positive(t, se.Loss)
				require.Contains(t, se.Text, "$")
			case EnableEffect:
				require.Positive(t, se.Turns)
				require.NotEmpty(t, se.Text)
			case ToggleEffect:
				require.Equal(t, effect.Cancer, se.Effect)
			case CureEffect:
				require.Equal(t, effect.Diarrhea, se.Effect)
			default:
				require.NotEmpty(t, se.Text)
			}
		}
		assert.Equal(t, expectedOutcomes[it], outcomes, "every bucket of %s reachable", it)
	}
}

var expectedOutcomes = map[Item]map[Outcome]bool{
	Barrel:      {ToggleEffect: true, MoneyLoss: true, EnableEffect: true, CancelRequest: true},
	Burger:      {EnableEffect: true, MoneyLoss: true, CancelRequest: true, NoEffect: true},
	Gun:         {MoneyLoss: true, CancelRequest: true, NoEffect: true},
	Pill:        {EnableEffect: true, CureEffect: true, MoneyLoss: true},
	Screwdriver: {MoneyLoss: true, CancelRequest: true, EnableEffect: true},
}

func TestHeadlines(t *testing.T) {
	r := rng.New(6)
	_, ok := Barrel.Headline(r)
	assert.False(t, ok)
	for _, it := range []Item{Burger, Gun, Pill, Screwdriver} {
		h, ok := it.Headline(r)
		require.True(t, ok)
		assert.NotEmpty(t, strings.TrimSpace(h))
	}
}

func TestPhrases(t *testing.T) {
	r := rng.New(7)
	for _, it := range All {
		assert.NotEmpty(t, it.Request(r))
		assert.NotEmpty(t, it.Found(r))
	}
	assert.True(t, Barrel.Special())
	assert.False(t, Burger.Special())
}
