package localopt

import (
	"math/rand"

	"github.com/stereoglue/stereoglue/estimator"
	"github.com/stereoglue/stereoglue/geom"
	"github.com/stereoglue/stereoglue/scoring"
)

// irlsIterations is the maximum number of reweight-refit rounds IRLS runs
// before giving up on further improvement.
const irlsIterations = 5

// IRLS (iteratively reweighted least squares) refits the model against its
// own inlier set repeatedly, each round deriving a per-correspondence
// weight from the previous round's residual (a Cauchy-style weight,
// threshold^2/(threshold^2+residual), which down-weights poorly-fitting
// points continuously rather than the hard in/out cut a single non-minimal
// refit would apply). Stops as soon as a round fails to strictly improve
// the score.
type IRLS struct{}

// NewIRLS constructs an IRLS optimizer. It holds no state.
func NewIRLS() *IRLS { return &IRLS{} }

func (IRLS) Kind() Kind { return IRLSKind }

func (IRLS) Optimize(
	src, dst *geom.DataMatrix, matches *geom.MatchTable, matchScores *geom.ScoreTable,
	model geom.Model, score geom.Score, inliers geom.InlierSet,
	est estimator.Estimator, scorer scoring.Scorer, threshold float64, rng *rand.Rand,
) (geom.Model, geom.Score, geom.InlierSet) {
	need := est.NonMinimalSampleSize()
	if len(inliers) < need {
		return model, score, inliers
	}

	thresholdSq := threshold * threshold
	bestModel, bestScore, bestInliers := model, score, inliers

	for iter := 0; iter < irlsIterations; iter++ {
		corr := correspondencesFromInliers(src, dst, bestInliers)
		weights := make([]float64, len(corr))
		for i, c := range corr {
			r := est.Residual(bestModel, c)
			weights[i] = thresholdSq / (thresholdSq + r)
		}

		candidate, err := est.EstimateNonMinimal(corr, weights)
		if err != nil || !est.IsValidModel(candidate) {
			break
		}
		candidateScore, candidateInliers, err := scorer.Score(src, dst, matches, matchScores, candidate, est, threshold)
		if err != nil || !candidateScore.Valid {
			break
		}
		if !bestScore.Less(candidateScore) {
			break
		}
		bestModel, bestScore, bestInliers = candidate, candidateScore, candidateInliers
	}
	return bestModel, bestScore, bestInliers
}
