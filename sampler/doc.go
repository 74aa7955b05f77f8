// Package sampler draws minimal (and, for local optimization, non-minimal)
// index sets for the RANSAC main loop.
//
// What:
//
//   - Uniform: sample-without-replacement from [0, N) using a fast,
//     deterministically-seeded integer RNG.
//   - PROSAC: progressive sampling that starts from the highest-quality
//     matches (by ascending match score — lower is better, per spec §3) and
//     widens its working pool toward the full range as iterations advance,
//     collapsing to uniform sampling in the limit.
//   - NeighborhoodGuided: draws a spatially coherent sample by anchoring on
//     one uniformly-chosen point and preferring its grid-cell neighbors for
//     the remaining draws, falling back to uniform when neighbors run out.
//
// All three satisfy the Sampler interface: Initialize(poolSize) resets
// internal progressive/derived state; Sample(poolSize, k, out) draws k
// pairwise-distinct indices into out and reports whether it succeeded
// (false when k > poolSize).
//
// Determinism:
//
//   - Every sampler is constructed with an integer seed; the same seed
//     produces the same sequence of draws. DeriveRNG follows the teacher's
//     tsp/rng.go SplitMix64 stream-derivation idiom to derive independent
//     *rand.Rand streams from one base generator; the root estimation loop
//     uses it to seed each local-optimization call. Samplers themselves are
//     only ever driven from a single goroutine.
package sampler
