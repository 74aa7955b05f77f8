package estimator

import "github.com/stereoglue/stereoglue/geom"

// Correspondence is one source/destination point pair in pixel (or
// normalized camera, for Essential) coordinates. Callers assemble these from
// a MatchTable row and the source/destination DataMatrix rows; the
// estimator package itself never touches MatchTable/ScoreTable.
type Correspondence struct {
	SrcX, SrcY float64
	DstX, DstY float64
}

// Estimator is the minimal/non-minimal solver contract for one geometry.
// Implementations are stateless with respect to a particular estimation
// run: all three constructors return a ready-to-use value with no further
// setup, so the same Estimator can be shared across concurrent workers.
type Estimator interface {
	// Kind reports which geometry this estimator solves for.
	Kind() geom.ProblemType

	// SampleSize is the minimal number of correspondences the geometry's
	// algebraic constraints require (4 homography, 7 fundamental, 5
	// essential).
	SampleSize() int

	// NonMinimalSampleSize is the number of correspondences
	// EstimateNonMinimal expects for a well-conditioned least-squares
	// solve; callers must pass at least this many.
	NonMinimalSampleSize() int

	// EstimateMinimal produces zero or more candidate models from exactly
	// SampleSize() correspondences. Some geometries (fundamental, via the
	// 7-point algorithm) yield more than one algebraically valid model from
	// a single minimal sample; callers must score every candidate.
	EstimateMinimal(corr []Correspondence) ([]geom.Model, error)

	// EstimateNonMinimal produces a single refined model from an
	// over-determined correspondence set. weights is optional (nil means
	// unweighted least squares); when non-nil it must have len(corr)
	// entries and is used as the IRLS per-row weight.
	EstimateNonMinimal(corr []Correspondence, weights []float64) (geom.Model, error)

	// Residual is the per-correspondence error of a model: squared
	// symmetric transfer error (pixels squared) for Homography, Sampson
	// distance for Fundamental and Essential.
	Residual(m geom.Model, c Correspondence) float64

	// IsValidModel rejects algebraically degenerate models (singular,
	// NaN/Inf, or geometry-specific rank violations) before they are
	// scored.
	IsValidModel(m geom.Model) bool
}

// New dispatches to the closed set of estimator implementations by kind.
// This mirrors the teacher's preference for a single switch over an open
// registry: adding a fourth geometry means adding a case here, not a
// plugin point.
func New(kind geom.ProblemType) Estimator {
	switch kind {
	case geom.Fundamental:
		return NewFundamental()
	case geom.Essential:
		return NewEssential()
	default:
		return NewHomography()
	}
}
