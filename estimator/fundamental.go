package estimator

import (
	"math"

	"github.com/stereoglue/stereoglue/geom"
)

// Fundamental solves for the 3x3 fundamental matrix relating two
// uncalibrated views. The minimal solver is the classical 7-point algorithm
// (rank-2 null space of a 7x9 design matrix, up to three real roots of the
// resulting cubic); the non-minimal solver is the normalized 8-point
// algorithm. Both apply Hartley normalization before solving, same as
// Homography.
type Fundamental struct{}

// NewFundamental constructs a Fundamental estimator.
func NewFundamental() *Fundamental { return &Fundamental{} }

func (Fundamental) Kind() geom.ProblemType     { return geom.Fundamental }
func (Fundamental) SampleSize() int            { return 7 }
func (Fundamental) NonMinimalSampleSize() int  { return 8 }

func designRow9(x, y, u, v, w float64) [9]float64 {
	return [9]float64{u * x, u * y, u * w, v * x, v * y, v * w, w * x, w * y, w * w}
}

func (f *Fundamental) EstimateMinimal(corr []Correspondence) ([]geom.Model, error) {
	n := len(corr)
	if n < f.SampleSize() {
		return nil, ErrTooFewPoints
	}
	srcX := make([]float64, n)
	srcY := make([]float64, n)
	dstX := make([]float64, n)
	dstY := make([]float64, n)
	for i, c := range corr {
		srcX[i], srcY[i] = c.SrcX, c.SrcY
		dstX[i], dstY[i] = c.DstX, c.DstY
	}
	tSrc, ok := computeNormalization(srcX, srcY)
	if !ok {
		return nil, ErrSingular
	}
	tDst, ok := computeNormalization(dstX, dstY)
	if !ok {
		return nil, ErrSingular
	}

	a := mat9Rows(corr, tSrc, tDst)
	// Null space of the 7x9 system has dimension 2 (generically): factor
	// with a full SVD and take the two smallest-singular-value right
	// vectors as basis F1, F2.
	f1, f2, ok := nullSpace2(a, n)
	if !ok {
		return nil, ErrSingular
	}

	roots := solveCubicForLambda(f1, f2)
	models := make([]geom.Model, 0, len(roots))
	for _, lambda := range roots {
		var combo [9]float64
		for i := range combo {
			combo[i] = f1[i] + lambda*f2[i]
		}
		combo = enforceRank2(combo)
		fFull := unnormalizeF(combo, tSrc, tDst)
		if !finite9(fFull) {
			continue
		}
		model := geom.Model{Kind: geom.Fundamental}
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				model.Set(r, c, fFull[r*3+c])
			}
		}
		models = append(models, model)
	}
	if len(models) == 0 {
		return nil, ErrDegenerate
	}
	return models, nil
}

func (f *Fundamental) EstimateNonMinimal(corr []Correspondence, weights []float64) (geom.Model, error) {
	n := len(corr)
	if n < f.SampleSize() {
		return geom.Model{}, ErrTooFewPoints
	}
	if weights != nil && len(weights) != n {
		return geom.Model{}, ErrTooFewPoints
	}
	srcX := make([]float64, n)
	srcY := make([]float64, n)
	dstX := make([]float64, n)
	dstY := make([]float64, n)
	for i, c := range corr {
		srcX[i], srcY[i] = c.SrcX, c.SrcY
		dstX[i], dstY[i] = c.DstX, c.DstY
	}
	tSrc, ok := computeNormalization(srcX, srcY)
	if !ok {
		return geom.Model{}, ErrSingular
	}
	tDst, ok := computeNormalization(dstX, dstY)
	if !ok {
		return geom.Model{}, ErrSingular
	}

	rows := make([]float64, 0, n*9)
	for i, c := range corr {
		x, y := tSrc.apply(c.SrcX, c.SrcY)
		u, v := tDst.apply(c.DstX, c.DstY)
		row := designRow9(x, y, u, v, 1)
		w := 1.0
		if weights != nil {
			w = math.Sqrt(math.Max(weights[i], 0))
		}
		for _, val := range row {
			rows = append(rows, val*w)
		}
	}

	f9, ok := nullVector9(rows, n)
	if !ok {
		return geom.Model{}, ErrSingular
	}
	f9 = enforceRank2(f9)
	fFull := unnormalizeF(f9, tSrc, tDst)
	if !finite9(fFull) {
		return geom.Model{}, ErrSingular
	}
	model := geom.Model{Kind: geom.Fundamental}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			model.Set(r, c, fFull[r*3+c])
		}
	}
	return model, nil
}

// Residual is the Sampson distance, the first-order approximation to
// reprojection error for epipolar-constraint models.
func (f *Fundamental) Residual(m geom.Model, c Correspondence) float64 {
	return sampsonDistance(m, c)
}

// IsValidModel rejects non-finite matrices and anything whose smallest
// singular value has not collapsed close to zero (the rank-2 constraint).
func (f *Fundamental) IsValidModel(m geom.Model) bool {
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
	if norm < 1e-12 {
		return false
	}
	return smallestSingularValue3x3(mm)/norm < 1e-3
}

func frobeniusNorm(m [9]float64) float64 {
	var sum float64
	for _, v := range m {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// sampsonDistance computes the Sampson approximation for either a
// fundamental or essential matrix model, shared by both geometries since
// the formula only depends on the 3x3 matrix and the point pair.
func sampsonDistance(m geom.Model, c Correspondence) float64 {
	var mm [9]float64
	for r := 0; r < 3; r++ {
		for col := 0; col < 3; col++ {
			mm[r*3+col] = m.At(r, col)
		}
	}
	x1 := [3]float64{c.SrcX, c.SrcY, 1}
	x2 := [3]float64{c.DstX, c.DstY, 1}

	fx1x, fx1y, fx1z := mul3x3Vec3(mm, x1[0], x1[1], x1[2])
	fx1 := [3]float64{fx1x, fx1y, fx1z}

	mt := transpose3x3(mm)
	ftx2x, ftx2y, ftx2z := mul3x3Vec3(mt, x2[0], x2[1], x2[2])
	ftx2 := [3]float64{ftx2x, ftx2y, ftx2z}

	num := x2[0]*fx1[0] + x2[1]*fx1[1] + x2[2]*fx1[2]
	denom := fx1[0]*fx1[0] + fx1[1]*fx1[1] + ftx2[0]*ftx2[0] + ftx2[1]*ftx2[1]
	if denom < 1e-15 {
		return math.Inf(1)
	}
	return num * num / denom
}

func transpose3x3(m [9]float64) [9]float64 {
	return [9]float64{m[0], m[3], m[6], m[1], m[4], m[7], m[2], m[5], m[8]}
}

func mat9Rows(corr []Correspondence, tSrc, tDst normTransform) []float64 {
	rows := make([]float64, 0, len(corr)*9)
	for _, c := range corr {
		x, y := tSrc.apply(c.SrcX, c.SrcY)
		u, v := tDst.apply(c.DstX, c.DstY)
		row := designRow9(x, y, u, v, 1)
		rows = append(rows, row[:]...)
	}
	return rows
}

func unnormalizeF(fNorm [9]float64, tSrc, tDst normTransform) [9]float64 {
	// F = Tdst^T * Fnorm * Tsrc
	tDstMat := tDst.matrix()
	tDstT := transpose3x3(tDstMat)
	tSrcMat := tSrc.matrix()
	return mul3x3(mul3x3(tDstT, fNorm), tSrcMat)
}
