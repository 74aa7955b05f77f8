// Package termination computes how many sampling iterations a RANSAC-style
// loop should run given the current best inlier ratio, and reports whether
// a given iteration count has reached that bound. The formula is the
// standard RANSAC confidence bound:
//
//	N = log(1 - confidence) / log(1 - inlierRatio^sampleSize)
//
// clamped to [minIterations, maxIterations]. A PROSAC-aware variant uses
// the same bound but reports no termination until the progressive
// sampler's window has grown to cover the whole pool; from then on it
// behaves exactly like the standard criterion.
package termination
