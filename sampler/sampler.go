package sampler

// Sampler draws minimal (or non-minimal) index sets for the main estimator
// loop. Implementations are not safe for concurrent use by multiple
// goroutines; the main loop owns exactly one Sampler per estimation call
// (use deriveRNG to hand parallel workers their own independent streams
// instead of sharing a Sampler).
type Sampler interface {
	// Initialize resets internal state (progressive window, derived RNG
	// streams) for a pool of the given size.
	Initialize(poolSize int)

	// Sample draws k pairwise-distinct indices from [0, poolSize) into out,
	// resizing out if necessary, and returns the (possibly reallocated)
	// slice along with whether the draw succeeded. It returns false,
	// unchanged semantics undefined, when k > poolSize.
	Sample(poolSize, k int, out []int) ([]int, bool)
}

// Kind enumerates the closed set of sampler variants named in
// RANSACSettings.sampler (spec §6).
type Kind int

const (
	// UniformKind samples uniformly without replacement.
	UniformKind Kind = iota
	// PROSACKind biases early draws toward higher-quality matches.
	PROSACKind
	// NeighborhoodGuidedKind biases draws toward spatially coherent points.
	NeighborhoodGuidedKind
)
