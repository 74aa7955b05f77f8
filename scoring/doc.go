// Package scoring implements the multi-match scoring contract: given a
// candidate Model, a MatchTable of up to K candidate destinations per
// source row, and an Estimator able to compute per-correspondence
// residuals, produce a single deduplicated InlierSet (at most one inlier
// destination per source row) and a totally ordered geom.Score.
//
// Two scorers are provided, both grounded in the classical robust-cost
// literature and implemented as a closed set dispatched by Kind, mirroring
// the teacher's enum-plus-switch idiom:
//
//   - Truncated (MSAC): a truncated quadratic cost. Each inlier contributes
//     threshold^2 - residual to the aggregate quality (0 for a
//     threshold-boundary fit, up to threshold^2 for an exact fit); outliers
//     contribute 0. This rewards both inlier count and fit tightness in a
//     single scalar, unlike plain RANSAC's inlier-count-only cost.
//   - MAGSAC: a simplified marginalization over a small ladder of noise
//     scales between threshold/levels and threshold, approximating the
//     full marginalized-likelihood integral MAGSAC performs analytically.
//     Avoids hand-picking a single inlier threshold at the cost of a
//     coarser approximation; documented as a simplification in DESIGN.md.
//
// Both scorers resolve multi-match ambiguity identically: for each source
// row, the candidate destination with the smallest residual is chosen (lowest
// destination index breaks ties), and only that single candidate can become
// the row's inlier.
package scoring
