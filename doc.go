// Package stereoglue fits a two-view geometric model (homography,
// fundamental matrix, or essential matrix) from multi-match point
// correspondences using a RANSAC-family robust estimator with pluggable
// sampling, scoring, local optimization, and termination strategies.
//
// The call surface is a single function, Estimate, taking two caller-owned
// point clouds (geom.DataMatrix), an optional multi-match correspondence
// table (geom.MatchTable/geom.ScoreTable — 1-to-1 matches are assumed when
// absent, per geom.Identity), an optional pair of camera intrinsics
// (required, and validated, only when Settings.ProblemType is
// geom.Essential), and a Settings value built from functional options. It
// returns a Result carrying the best model found, its Score, its
// deduplicated inlier set, and the iteration count, or an Error tagged with
// one of the Kind values InvalidInput, InsufficientData or Cancelled. A run
// that never finds a valid model returns a nil error and a Result whose
// Status is StatusNoModelFound.
//
// Internally Estimate runs the state progression Initializing -> Iterating
// -> Optimizing -> Reporting: Initializing validates inputs, normalizes
// Essential correspondences through the supplied intrinsics, and builds the
// sampler/estimator/scorer/optimizer/termination components named by
// Settings; Iterating repeatedly draws a minimal sample, fits candidate
// models, scores them (scoring fanned out across Settings.CoreNumber
// workers) and local-optimizes every strictly-improving model found via
// Settings.OptimizerKind; Reporting runs Settings.FinalOptimizerKind once
// more on the overall winner and builds the final Result once the
// termination criterion fires or the iteration cap is reached. If ctx is
// cancelled, Estimate returns the best model so far with StatusCancelled
// and a Cancelled error, without the final optimization.
//
// Minimal-sample drawing is always sequential and depends only on
// Settings.Seed and the iteration index, so the sequence of candidate
// models considered never depends on Settings.CoreNumber. Local
// optimization's RNG stream is still derived from the iteration index at
// which a model last improved, and that index advances in CoreNumber-sized
// batches, so the exact optimized model (and therefore the final Result)
// is not guaranteed to be bit-identical across different CoreNumber
// values — only the candidate sequence is. Reproducibility across worker
// counts is not a guarantee this package makes.
package stereoglue
