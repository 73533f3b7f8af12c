// Package rng provides the injectable seeded generator behind every random
// decision of the shop: request draws, side effects and reshuffles.
package rng

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"time"
)

// Rand is a deterministic PCG generator
// Not safe for concurrent use; the turn engine is its only owner
type Rand struct {
	seed uint64
	r    *rand.Rand
}

// New returns a generator for seed; seed 0 draws one from the wall clock
func New(seed uint64) *Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	// Non-cryptographic PRNG is intentional for replayable runs.
	// #nosec G404
	return &Rand{
		seed: seed,
		r:    rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b"))),
	}
}

func seedWord(seed uint64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// Seed returns the seed the generator was built from, for replay logs
func (r *Rand) Seed() uint64 {
	return r.seed
}

// IntN returns a value in [0, n); n <= 0 returns 0
func (r *Rand) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// IntRange returns a value in [lo, hi] inclusive
func (r *Rand) IntRange(lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	return lo + r.r.Int64N(hi-lo+1)
}

// Float64 returns a value in [0, 1)
func (r *Rand) Float64() float64 {
	return r.r.Float64()
}

// FloatRange returns a value in [lo, hi)
func (r *Rand) FloatRange(lo, hi float64) float64 {
	return lo + r.r.Float64()*(hi-lo)
}

// Chance reports true with probability p
func (r *Rand) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Perm returns a random permutation of [0, n)
func (r *Rand) Perm(n int) []int {
	return r.r.Perm(n)
}

// Shuffle randomizes the order of n elements through swap
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	r.r.Shuffle(n, swap)
}

// Jitter returns base ± base/divisor, uniform and inclusive
// Integer division truncates toward zero
func (r *Rand) Jitter(base, divisor int64) int64 {
	if divisor <= 0 {
		return base
	}
	spread := base / divisor
	if spread < 0 {
		spread = -spread
	}
	return base + r.IntRange(-spread, spread)
}
