package scoring

import (
	"github.com/stereoglue/stereoglue/estimator"
	"github.com/stereoglue/stereoglue/geom"
)

// Truncated implements the MSAC truncated-quadratic-cost scorer.
type Truncated struct{}

// NewTruncated constructs a Truncated (MSAC) scorer.
func NewTruncated() *Truncated { return &Truncated{} }

func (Truncated) Kind() Kind { return TruncatedKind }

func (Truncated) Score(src, dst *geom.DataMatrix, matches *geom.MatchTable, matchScores *geom.ScoreTable,
	model geom.Model, est estimator.Estimator, threshold float64) (geom.Score, geom.InlierSet, error) {
	if threshold <= 0 {
		return geom.InvalidScore, nil, ErrInvalidThreshold
	}
	if matches.Rows() != src.Rows() {
		return geom.InvalidScore, nil, ErrShapeMismatch
	}

	thresholdSq := threshold * threshold
	inliers := make(geom.InlierSet, 0, matches.Rows())
	var quality float64

	for row := 0; row < matches.Rows(); row++ {
		dstIdx, residual, ok := bestCandidate(src, dst, matches, row, model, est)
		if !ok || residual > thresholdSq {
			continue
		}
		quality += thresholdSq - residual
		inliers = append(inliers, geom.MatchPair{Src: row, Dst: dstIdx})
	}

	return geom.Score{Quality: quality, Inliers: len(inliers), Valid: true}, inliers, nil
}
