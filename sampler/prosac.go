package sampler

import "math/rand"

// PROSAC draws minimal samples progressively: early calls are restricted to
// a small window of the highest-quality points (by ascending quality score —
// lower is better, per spec §3's ScoreTable convention), and the window
// widens toward the full pool as more samples are drawn, converging to
// uniform sampling in the limit. This is the simplified linear-growth
// variant of Chum & Matas's progressive sampling: the window grows by one
// point per call rather than by the closed-form Tn recurrence, trading a
// slower early convergence for a much simpler, still-monotone growth rule.
type PROSAC struct {
	seed    int64
	rng     *rand.Rand
	order   []int // indices into the pool, best quality first
	window  int   // current progressive window size
	scratch []int
}

// NewPROSAC builds a PROSAC sampler from per-point quality scores (lower is
// better — the match-score convention). len(quality) is the pool size;
// order is derived once here and reused by every Initialize/Sample call.
func NewPROSAC(seed int64, quality []float64) *PROSAC {
	order := make([]int, len(quality))
	for i := range order {
		order[i] = i
	}
	// Stable ascending sort by quality (insertion sort: pool sizes here are
	// the per-call correspondence counts, typically small to moderate, and
	// stability matters for deterministic tie-breaking on equal quality).
	for i := 1; i < len(order); i++ {
		j := i
		for j > 0 && quality[order[j-1]] > quality[order[j]] {
			order[j-1], order[j] = order[j], order[j-1]
			j--
		}
	}
	return &PROSAC{seed: seed, rng: rngFromSeed(seed), order: order}
}

// Initialize resets the progressive window to the minimal size and resets
// the RNG to its seed.
func (p *PROSAC) Initialize(poolSize int) {
	p.rng = rngFromSeed(p.seed)
	p.window = 0
	if cap(p.scratch) < poolSize {
		p.scratch = make([]int, poolSize)
	}
}

// Sample draws k indices: the window's newest point is always included (the
// standard PROSAC guarantee that progress is made as the window grows), the
// remaining k-1 are drawn uniformly from the rest of the window.
func (p *PROSAC) Sample(poolSize, k int, out []int) ([]int, bool) {
	if k > poolSize || k == 0 {
		return out, false
	}
	if p.window < k {
		p.window = k
	}
	if p.window > poolSize {
		p.window = poolSize
	}

	if cap(out) < k {
		out = make([]int, k)
	}
	out = out[:k]

	// Always include the boundary point order[window-1].
	out[0] = p.order[p.window-1]
	rest := partialFisherYates(p.window-1, k-1, p.rng, p.scratch)
	for i, idx := range rest {
		out[i+1] = p.order[idx]
	}

	if p.window < poolSize {
		p.window++
	}
	return out, true
}
