// Package estimator abstracts the minimal/non-minimal solver family for one
// of the three supported geometries (homography, fundamental, essential).
// Per spec §1, the algebraic derivation of each minimal solver is standard
// and treated as an external collaborator; what this package owns is the
// Estimator contract (sample sizes, candidate generation, residuals,
// validity checks) and the linear-algebra plumbing (normalization, SVD-based
// DLT solves) that wires gonum.org/v1/gonum/mat into that contract, grounded
// on other_examples' viamrobotics-rdk rimage/transform homography solver
// (EstimateLeastSquaresHomography, getNormalizationMatrix, mat.SVD usage).
//
// What:
//
//   - Correspondence: one (src_x, src_y, dst_x, dst_y) point pair, the unit
//     the estimator consumes — callers translate MatchPair indices into
//     Correspondence values by reading the caller-owned DataMatrix rows.
//   - Estimator: Kind, SampleSize, NonMinimalSampleSize, EstimateMinimal,
//     EstimateNonMinimal, Residual, IsValidModel — exactly the contract in
//     spec §4.3.
//   - NewHomography / NewFundamental / NewEssential construct the three
//     closed-set implementations; New(kind) dispatches between them by
//     a single switch, per the design notes' preference for compile-time
//     dispatch over open interface registries.
//
// Numerics:
//
//   - Homography and fundamental solvers apply Hartley normalization
//     (translate centroid to origin, scale to mean distance sqrt(2)) before
//     the DLT/8-point linear solve, exactly as the grounding file computes
//     getNormalizationMatrix from column mean/stddev.
//   - All minimal/non-minimal solves factor the design matrix with
//     mat.SVD(mat.SVDFull) and take the right-singular vector for the
//     smallest singular value as the homogeneous solution, then un-normalize.
//     The 7-point fundamental solve instead takes the two smallest
//     right-singular vectors and combines them through the roots of a cubic.
package estimator
