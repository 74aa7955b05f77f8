package localopt

import (
	"math/rand"

	"github.com/stereoglue/stereoglue/estimator"
	"github.com/stereoglue/stereoglue/geom"
	"github.com/stereoglue/stereoglue/scoring"
)

// Kind names the closed set of local optimizers.
type Kind int

const (
	// NestedRANSACKind re-samples non-minimal subsets of the current
	// inlier set and re-estimates from each.
	NestedRANSACKind Kind = iota
	// IRLSKind refits with residual-derived weights, iterated to
	// convergence or a fixed iteration cap.
	IRLSKind
)

// Optimizer refines a model using its own inlier set. It must never return
// a model strictly worse than the one it was given.
type Optimizer interface {
	Kind() Kind

	Optimize(
		src, dst *geom.DataMatrix, matches *geom.MatchTable, matchScores *geom.ScoreTable,
		model geom.Model, score geom.Score, inliers geom.InlierSet,
		est estimator.Estimator, scorer scoring.Scorer, threshold float64, rng *rand.Rand,
	) (geom.Model, geom.Score, geom.InlierSet)
}

// Settings configures NestedRANSAC's inner re-sampling (local_optimization_settings).
type Settings struct {
	// MaxIterations is the number of inner re-samples NestedRANSAC draws
	// from the current inlier set per call.
	MaxIterations int
	// SampleSizeMultiplier scales the non-minimal sample size to produce
	// NestedRANSAC's inner subset size k = min(SampleSizeMultiplier *
	// non-minimal size, |inliers|-1).
	SampleSizeMultiplier int
}

// DefaultSettings returns NestedRANSAC's named defaults: 50 inner
// iterations, a 7x non-minimal-size subset multiplier.
func DefaultSettings() Settings {
	return Settings{MaxIterations: 50, SampleSizeMultiplier: 7}
}

// New dispatches to the closed set of optimizer implementations by kind.
// settings configures NestedRANSAC; IRLS ignores it (it has no exposed
// tuning knobs beyond its fixed convergence cap).
func New(kind Kind, settings Settings) Optimizer {
	switch kind {
	case IRLSKind:
		return NewIRLS()
	default:
		return NewNestedRANSAC(settings)
	}
}

// correspondencesFromInliers builds the Correspondence slice an Estimator
// expects from an InlierSet, reading coordinates out of the caller-owned
// point clouds.
func correspondencesFromInliers(src, dst *geom.DataMatrix, inliers geom.InlierSet) []estimator.Correspondence {
	out := make([]estimator.Correspondence, len(inliers))
	for i, p := range inliers {
		sx, sy := src.XY(p.Src)
		dx, dy := dst.XY(p.Dst)
		out[i] = estimator.Correspondence{SrcX: sx, SrcY: sy, DstX: dx, DstY: dy}
	}
	return out
}
