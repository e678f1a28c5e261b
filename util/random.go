package util

import (
	"math/rand/v2"

	"github.com/taigrr/colorhash"
)

// IntBetween returns a uniformly distributed integer in [lo, hi].
// It panics if hi < lo.
func IntBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

// WeightedIndex picks an index of weights with probability proportional to
// its weight. Negative weights count as zero. It returns -1 when no weight is
// positive.
func WeightedIndex(rng *rand.Rand, weights []float64) int {
	var total float64
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}

	target := rng.Float64() * total
	var cumulative float64
	last := -1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cumulative += w
		last = i
		if target < cumulative {
			return i
		}
	}
	// Float rounding can leave target a hair above the final sum.
	return last
}

// NewRand returns a PCG-backed source seeded with seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SeedFromPhrase derives a stable seed from an arbitrary phrase.
func SeedFromPhrase(phrase string) uint64 {
	return uint64(colorhash.HashString(phrase))
}
