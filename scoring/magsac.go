package scoring

import (
	"github.com/stereoglue/stereoglue/estimator"
	"github.com/stereoglue/stereoglue/geom"
)

// magsacLevels is the number of noise-scale levels the marginalization
// ladder samples between threshold/magsacLevels and threshold.
const magsacLevels = 10

// MAGSAC implements a simplified marginalized-likelihood scorer: instead of
// committing to one inlier threshold, it integrates a truncated-quadratic
// cost over a ladder of candidate thresholds from threshold/magsacLevels up
// to threshold, approximating MAGSAC's closed-form marginalization over the
// noise scale sigma. A correspondence is still only counted as an inlier
// (for InlierSet / Score.Inliers purposes) against the caller's single
// threshold; the marginalization only changes how its contribution to
// Quality and Likelihood is weighted.
type MAGSAC struct{}

// NewMAGSAC constructs a MAGSAC scorer.
func NewMAGSAC() *MAGSAC { return &MAGSAC{} }

func (MAGSAC) Kind() Kind { return MAGSACKind }

func (MAGSAC) Score(src, dst *geom.DataMatrix, matches *geom.MatchTable, matchScores *geom.ScoreTable,
	model geom.Model, est estimator.Estimator, threshold float64) (geom.Score, geom.InlierSet, error) {
	if threshold <= 0 {
		return geom.InvalidScore, nil, ErrInvalidThreshold
	}
	if matches.Rows() != src.Rows() {
		return geom.InvalidScore, nil, ErrShapeMismatch
	}

	thresholdSq := threshold * threshold
	inliers := make(geom.InlierSet, 0, matches.Rows())
	var quality, likelihood float64

	for row := 0; row < matches.Rows(); row++ {
		dstIdx, residual, ok := bestCandidate(src, dst, matches, row, model, est)
		if !ok || residual > thresholdSq {
			continue
		}
		inliers = append(inliers, geom.MatchPair{Src: row, Dst: dstIdx})

		var marginal float64
		for l := 1; l <= magsacLevels; l++ {
			levelThreshold := threshold * float64(l) / float64(magsacLevels)
			levelThresholdSq := levelThreshold * levelThreshold
			if residual <= levelThresholdSq {
				marginal += levelThresholdSq - residual
			}
		}
		marginal /= float64(magsacLevels)
		quality += marginal
		likelihood += marginal
	}

	return geom.Score{Quality: quality, Inliers: len(inliers), Likelihood: likelihood, Valid: true}, inliers, nil
}
