// Package item is the catalog of everything a chest can hold: phrasing,
// payouts, mishaps and the headlines a sale can cause.
package item

import (
	"github.com/lixenwraith/junk-mart/constants"
	"github.com/lixenwraith/junk-mart/ledger"
	"github.com/lixenwraith/junk-mart/rng"
)

// Item is the closed set of chest contents
type Item int

const (
	Barrel Item = iota
	Burger
	Gun
	Pill
	Screwdriver
	Count
)

// All lists every item in declaration order
var All = [Count]Item{Barrel, Burger, Gun, Pill, Screwdriver}

var names = [Count]string{"barrel", "burger", "gun", "pill", "screwdriver"}

func (i Item) String() string {
	if i < 0 || i >= Count {
		return "unknown"
	}
	return names[i]
}

// Special reports whether selling the item escalates into the war
func (i Item) Special() bool {
	return i == Barrel
}

var requestPhrases = [Count][]string{
	Barrel:      {"a radioactive barrel", "a barrel with radioactive goo"},
	Burger:      {"a shipment of burgers", "food", "edibles"},
	Gun:         {"guns", "pieces that go bang bang", "weapons"},
	Pill:        {"a pill", "pills", "drugs"},
	Screwdriver: {"a screwdriver", "screwdrivers"},
}

var foundPhrases = [Count][]string{
	Barrel:      {"radioactive barrels", "barrels with radioactive goo", "barrels with the nuclear trefoil sign"},
	Burger:      {"burgers", "junk food", "food"},
	Gun:         {"guns", "pistols", "firearms"},
	Pill:        {"pills", "drugs", "medicine"},
	Screwdriver: {"screwdrivers"},
}

var gainBase = [Count]int64{
	Barrel:      8_000_000,
	Burger:      10,
	Gun:         300,
	Pill:        400,
	Screwdriver: 10,
}

// Request returns how a customer asks for the item
func (i Item) Request(r *rng.Rand) string {
	return rng.Pick(r, requestPhrases[i])
}

// Found returns how the player describes finding the item
func (i Item) Found(r *rng.Rand) string {
	return rng.Pick(r, foundPhrases[i])
}

// GainBase is the undisturbed sale price
func (i Item) GainBase() ledger.Money {
	return ledger.Money(gainBase[i])
}

// Gain draws a jittered sale price
func (i Item) Gain(r *rng.Rand) ledger.Money {
	return RandomMoney(r, gainBase[i])
}

// RandomMoney jitters base by up to ±5%
func RandomMoney(r *rng.Rand, base int64) ledger.Money {
	return ledger.Money(r.Jitter(base, constants.JitterDivisor))
}
