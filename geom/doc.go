// Package geom defines the dense numeric data model shared by every stage of
// the StereoGlue estimator: point clouds (DataMatrix), multi-match candidate
// tables (MatchTable/ScoreTable), the fitted model container (Model), and the
// total-order quality record returned by scoring (Score).
//
// What:
//
//   - DataMatrix: a row-major, flat-backed table of float64 observations.
//     Source and destination point clouds are DataMatrix values with at
//     least two columns (x, y); extra columns carry auxiliary per-point
//     features.
//   - MatchTable / ScoreTable: a source-count × K table of destination row
//     indices and their per-candidate similarity scores (lower is better).
//   - MatchPair: one (source row, destination row) correspondence.
//   - Model: a fixed 3×3 parameter block tagged with its geometry kind.
//   - Score: aggregate quality + inlier count + optional likelihood sum,
//     totally ordered with an invalid sentinel below every valid score.
//
// Why:
//
//   - Keeping these types dependency-free of the estimator/sampler/scoring
//     packages lets all of them import geom without a cycle, mirroring how
//     the teacher's matrix package is importable from algorithms built on
//     top of it (tsp, converters) without those algorithms living inside it.
//
// Lifecycle:
//
//   - DataMatrix, MatchTable and ScoreTable are caller-owned: the estimator
//     only borrows them for the duration of one Estimate call and never
//     mutates them.
package geom
