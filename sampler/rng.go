package sampler

import "math/rand"

// defaultSeed is the fixed "zero" seed used when a caller passes seed == 0,
// kept stable so default-seeded runs stay reproducible across versions.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand: seed == 0 maps to
// defaultSeed, any other value is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using a SplitMix64-style avalanche finalizer, so that independent
// streams (e.g. one per parallel scoring worker) decorrelate even when the
// stream ids are small consecutive integers.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveRNG creates an independent deterministic RNG stream from a base RNG
// and a stream identifier, consuming one value from base to decorrelate
// consecutive derivations. If base is nil, defaultSeed is used as the
// parent. Callers use this to hand each parallel scoring worker or each
// local-optimization restart its own non-shared *rand.Rand.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultSeed
	} else {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// DeriveSeed is the exported form of deriveSeed.
func DeriveSeed(parent int64, stream uint64) int64 {
	return deriveSeed(parent, stream)
}

// DeriveRNG is the exported form of deriveRNG, used by callers outside this
// package (the root estimation loop) to give each local-optimization call
// its own deterministic, decorrelated RNG stream derived from one shared
// base seed.
func DeriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	return deriveRNG(base, stream)
}

// RNGFromSeed is the exported form of rngFromSeed.
func RNGFromSeed(seed int64) *rand.Rand {
	return rngFromSeed(seed)
}

// partialFisherYates draws k pairwise-distinct indices from [0, n) into out,
// using the first k steps of a Fisher-Yates shuffle over a scratch
// permutation buffer. It is the work horse behind Uniform sampling.
func partialFisherYates(n, k int, rng *rand.Rand, scratch []int) []int {
	if cap(scratch) < n {
		scratch = make([]int, n)
	}
	scratch = scratch[:n]
	for i := 0; i < n; i++ {
		scratch[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		scratch[i], scratch[j] = scratch[j], scratch[i]
	}
	return scratch[:k]
}
