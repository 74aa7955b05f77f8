package sampler

import "math/rand"

// Uniform draws samples without replacement from [0, poolSize) using a
// deterministically-seeded RNG. Same seed and same sequence of Sample calls
// always produce the same draws.
type Uniform struct {
	seed    int64
	rng     *rand.Rand
	scratch []int
}

// NewUniform constructs a Uniform sampler with the given seed. seed == 0
// resolves to a fixed default seed so zero-value Settings stay reproducible.
func NewUniform(seed int64) *Uniform {
	return &Uniform{seed: seed, rng: rngFromSeed(seed)}
}

// Initialize resets the sampler's RNG to its seed, so repeated estimation
// calls against the same Uniform instance stay independent of call order.
func (u *Uniform) Initialize(poolSize int) {
	u.rng = rngFromSeed(u.seed)
	if cap(u.scratch) < poolSize {
		u.scratch = make([]int, poolSize)
	}
}

// Sample draws k pairwise-distinct indices from [0, poolSize).
func (u *Uniform) Sample(poolSize, k int, out []int) ([]int, bool) {
	if k > poolSize {
		return out, false
	}
	drawn := partialFisherYates(poolSize, k, u.rng, u.scratch)
	if cap(out) < k {
		out = make([]int, k)
	}
	out = out[:k]
	copy(out, drawn)
	return out, true
}
