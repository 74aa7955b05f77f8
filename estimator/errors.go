package estimator

import "errors"

// ErrTooFewPoints is returned when a correspondence slice is shorter than
// the solver's required sample size.
var ErrTooFewPoints = errors.New("estimator: too few correspondences for sample size")

// ErrDegenerate is returned when a minimal or non-minimal sample is
// algebraically degenerate for the requested geometry (e.g. all source
// points collinear for a homography, or a rank-deficient design matrix).
var ErrDegenerate = errors.New("estimator: degenerate correspondence sample")

// ErrSingular is returned when the normalization or solve step collapses to
// a singular system (zero-spread point set, NaN/Inf propagation).
var ErrSingular = errors.New("estimator: singular linear system")
