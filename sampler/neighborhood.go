package sampler

import (
	"math/rand"

	"github.com/stereoglue/stereoglue/grid"
)

// NeighborhoodGuided draws a spatially coherent minimal sample: one anchor
// point is chosen uniformly from the pool, and the remaining points are
// drawn preferentially from the anchor's grid-cell neighborhood (first its
// own cell, then its 8-connected neighbor cells), falling back to a uniform
// draw over the whole pool when the neighborhood is exhausted.
type NeighborhoodGuided struct {
	seed    int64
	rng     *rand.Rand
	graph   *grid.Graph
	scratch []int
}

// NewNeighborhoodGuided builds a sampler that consults g for neighbor
// lookups; g must have been built over the same pool this sampler draws
// from.
func NewNeighborhoodGuided(seed int64, g *grid.Graph) *NeighborhoodGuided {
	return &NeighborhoodGuided{seed: seed, rng: rngFromSeed(seed), graph: g}
}

// Initialize resets the RNG to its seed.
func (n *NeighborhoodGuided) Initialize(poolSize int) {
	n.rng = rngFromSeed(n.seed)
	if cap(n.scratch) < poolSize {
		n.scratch = make([]int, poolSize)
	}
}

// Sample draws an anchor uniformly, then fills the rest of the sample from
// the anchor's grid neighborhood, falling back to uniform draws over the
// remaining pool once the neighborhood is exhausted. The result is always
// pairwise distinct.
func (n *NeighborhoodGuided) Sample(poolSize, k int, out []int) ([]int, bool) {
	if k > poolSize {
		return out, false
	}
	if cap(out) < k {
		out = make([]int, k)
	}
	out = out[:k]

	anchor := n.rng.Intn(poolSize)
	out[0] = anchor
	if k == 1 {
		return out, true
	}

	taken := make(map[int]bool, k)
	taken[anchor] = true

	neighbors := n.graph.Neighbors8(anchor)
	// Shuffle neighbors so repeated samples around the same anchor differ.
	for i := len(neighbors) - 1; i > 0; i-- {
		j := n.rng.Intn(i + 1)
		neighbors[i], neighbors[j] = neighbors[j], neighbors[i]
	}

	filled := 1
	for _, idx := range neighbors {
		if filled == k {
			break
		}
		if !taken[idx] {
			taken[idx] = true
			out[filled] = idx
			filled++
		}
	}

	// Fall back to uniform draws over the whole pool for any remaining slots.
	for filled < k {
		candidate := n.rng.Intn(poolSize)
		if !taken[candidate] {
			taken[candidate] = true
			out[filled] = candidate
			filled++
		}
	}
	return out, true
}
