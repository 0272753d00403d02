package qsearch

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

/*
ProbabilityMap is the address-register marginal: index a holds the
probability of measuring address a. Entries are non-negative and sum to 1
within tolerance for any simulated circuit.
*/
type ProbabilityMap []float64

// Sum returns the total probability, which callers may assert ≈ 1.
func (pm ProbabilityMap) Sum() float64 {
	return floats.Sum(pm)
}

// Best returns the most probable address, -1 for an empty map.
func (pm ProbabilityMap) Best() int {
	if len(pm) == 0 {
		return -1
	}
	return floats.MaxIdx(pm)
}

// Sample collapses the distribution to one address by cumulative
// probability, simulating a measurement shot.
func (pm ProbabilityMap) Sample(r *rand.Rand) int {
	if len(pm) == 0 {
		return -1
	}

	x := r.Float64() * floats.Sum(pm)
	cumulative := 0.0
	for address, p := range pm {
		cumulative += p
		if x <= cumulative {
			return address
		}
	}
	return len(pm) - 1
}

// Tally draws shots measurement samples and counts hits per address.
func (pm ProbabilityMap) Tally(shots int, r *rand.Rand) []int {
	counts := make([]int, len(pm))
	for s := 0; s < shots; s++ {
		if a := pm.Sample(r); a >= 0 {
			counts[a]++
		}
	}
	return counts
}
