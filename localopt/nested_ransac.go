package localopt

import (
	"math/rand"

	"github.com/stereoglue/stereoglue/estimator"
	"github.com/stereoglue/stereoglue/geom"
	"github.com/stereoglue/stereoglue/scoring"
)

// NestedRANSAC repeatedly draws a non-minimal subset of the current inlier
// set, re-estimates a model from it, and rescores against the full match
// table, keeping the best model seen across all inner iterations (including
// the one it started with).
type NestedRANSAC struct {
	settings Settings
}

// NewNestedRANSAC constructs a NestedRANSAC optimizer configured by settings.
// A zero Settings falls back to DefaultSettings.
func NewNestedRANSAC(settings Settings) *NestedRANSAC {
	if settings.MaxIterations <= 0 {
		settings.MaxIterations = DefaultSettings().MaxIterations
	}
	if settings.SampleSizeMultiplier <= 0 {
		settings.SampleSizeMultiplier = DefaultSettings().SampleSizeMultiplier
	}
	return &NestedRANSAC{settings: settings}
}

func (NestedRANSAC) Kind() Kind { return NestedRANSACKind }

func (n *NestedRANSAC) Optimize(
	src, dst *geom.DataMatrix, matches *geom.MatchTable, matchScores *geom.ScoreTable,
	model geom.Model, score geom.Score, inliers geom.InlierSet,
	est estimator.Estimator, scorer scoring.Scorer, threshold float64, rng *rand.Rand,
) (geom.Model, geom.Score, geom.InlierSet) {
	need := est.NonMinimalSampleSize()
	if len(inliers) < need {
		return model, score, inliers
	}

	bestModel, bestScore, bestInliers := model, score, inliers

	// k = min(sample_size_multiplier * non_minimal_size, |inliers|-1)
	subsetSize := n.settings.SampleSizeMultiplier * need
	if subsetSize > len(inliers)-1 {
		subsetSize = len(inliers) - 1
	}
	if subsetSize < need {
		subsetSize = need
	}

	perm := make([]int, len(inliers))
	for iter := 0; iter < n.settings.MaxIterations; iter++ {
		for i := range perm {
			perm[i] = i
		}
		rng.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })

		subset := make(geom.InlierSet, subsetSize)
		for i := 0; i < subsetSize; i++ {
			subset[i] = inliers[perm[i]]
		}
		corr := correspondencesFromInliers(src, dst, subset)

		candidate, err := est.EstimateNonMinimal(corr, nil)
		if err != nil || !est.IsValidModel(candidate) {
			continue
		}
		candidateScore, candidateInliers, err := scorer.Score(src, dst, matches, matchScores, candidate, est, threshold)
		if err != nil || !candidateScore.Valid {
			continue
		}
		if bestScore.Less(candidateScore) {
			bestModel, bestScore, bestInliers = candidate, candidateScore, candidateInliers
		}
	}
	return bestModel, bestScore, bestInliers
}
