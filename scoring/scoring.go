package scoring

import (
	"math"

	"github.com/stereoglue/stereoglue/estimator"
	"github.com/stereoglue/stereoglue/geom"
)

// Kind names the closed set of scorers.
type Kind int

const (
	// TruncatedKind is the MSAC truncated-quadratic-cost scorer.
	TruncatedKind Kind = iota
	// MAGSACKind is the simplified marginalized-likelihood scorer.
	MAGSACKind
)

// Scorer evaluates a candidate model against the multi-match correspondence
// table and returns its quality plus the deduplicated inlier set.
type Scorer interface {
	Kind() Kind

	// Score evaluates model against every source row in matches, using est
	// to compute residuals. threshold is a plain inlier distance: its square
	// is compared against the estimator's residual (for Homography the
	// residual is a squared pixel distance, so threshold is in pixels).
	Score(src, dst *geom.DataMatrix, matches *geom.MatchTable, matchScores *geom.ScoreTable,
		model geom.Model, est estimator.Estimator, threshold float64) (geom.Score, geom.InlierSet, error)
}

// New dispatches to the closed set of scorer implementations by kind.
func New(kind Kind) Scorer {
	switch kind {
	case MAGSACKind:
		return NewMAGSAC()
	default:
		return NewTruncated()
	}
}

// bestCandidate scans row i's up-to-K candidate destinations and returns the
// column with the smallest residual, along with that residual and the
// resolved destination index. Ties on residual are broken by the lowest
// destination index, matching spec's multi-match tie-break rule. ok is
// false when the row has no valid candidates (entries outside
// [0, dst.Rows()) are skipped).
func bestCandidate(src, dst *geom.DataMatrix, matches *geom.MatchTable, row int, model geom.Model, est estimator.Estimator) (dstIdx int, residual float64, ok bool) {
	best := math.Inf(1)
	bestDst := geom.NoMatch
	sx, sy := src.XY(row)
	for col := 0; col < matches.K(); col++ {
		if !matches.Valid(row, col, dst.Rows()) {
			continue
		}
		d := matches.At(row, col)
		dx, dy := dst.XY(d)
		r := est.Residual(model, estimator.Correspondence{SrcX: sx, SrcY: sy, DstX: dx, DstY: dy})
		if r < best || (r == best && d < bestDst) {
			best = r
			bestDst = d
		}
	}
	if bestDst == geom.NoMatch {
		return geom.NoMatch, math.Inf(1), false
	}
	return bestDst, best, true
}
