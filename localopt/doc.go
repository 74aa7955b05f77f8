// Package localopt implements the local-optimization stage: given a model
// that has just produced a strictly-improved Score, try to refine it
// further using its own inlier set before the main sampling loop resumes.
// Both optimizers are no-ops when the inlier set is smaller than the
// estimator's non-minimal sample size, and both are monotone: they only
// ever return a model at least as good (by geom.Score.Less) as the one
// they were given, falling back to the input unchanged otherwise.
//
// NestedRANSAC repeats a small inner RANSAC over the inlier set itself
// (grounded on the teacher's `tsp` package running a bounded sub-search
// inside a larger search, and on `flow`'s small fixed-iteration inner
// loops). IRLS (iteratively reweighted least squares) repeatedly refits
// with per-correspondence weights derived from the previous iteration's
// residuals, down-weighting points that fit poorly without discarding
// them outright.
package localopt
