package estimator

import (
	"math"

	"github.com/stereoglue/stereoglue/geom"
)

// Homography solves for a 3x3 planar projective transform via the Direct
// Linear Transform, grounded on the viamrobotics-rdk
// EstimateLeastSquaresHomography reference: Hartley-normalize both point
// sets, build the 2n x 9 design matrix, take its smallest right-singular
// vector, un-normalize.
type Homography struct{}

// NewHomography constructs a Homography estimator. It holds no state.
func NewHomography() *Homography { return &Homography{} }

func (Homography) Kind() geom.ProblemType { return geom.Homography }
func (Homography) SampleSize() int        { return 4 }
func (Homography) NonMinimalSampleSize() int { return 6 }

func (h *Homography) EstimateMinimal(corr []Correspondence) ([]geom.Model, error) {
	m, err := h.solve(corr)
	if err != nil {
		return nil, err
	}
	return []geom.Model{m}, nil
}

func (h *Homography) EstimateNonMinimal(corr []Correspondence, weights []float64) (geom.Model, error) {
	return h.solveWeighted(corr, weights)
}

func (h *Homography) solve(corr []Correspondence) (geom.Model, error) {
	return h.solveWeighted(corr, nil)
}

func (h *Homography) solveWeighted(corr []Correspondence, weights []float64) (geom.Model, error) {
	n := len(corr)
	if n < h.SampleSize() {
		return geom.Model{}, ErrTooFewPoints
	}
	if weights != nil && len(weights) != n {
		return geom.Model{}, ErrTooFewPoints
	}
	if isCollinear(corr) {
		return geom.Model{}, ErrDegenerate
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

	rows := make([]float64, 0, 2*n*9)
	for i := 0; i < n; i++ {
		x, y := tSrc.apply(srcX[i], srcY[i])
		u, v := tDst.apply(dstX[i], dstY[i])
		w := 1.0
		if weights != nil {
			w = math.Sqrt(math.Max(weights[i], 0))
		}
		rows = append(rows,
			w*(-x), w*(-y), w*(-1), 0, 0, 0, w*u*x, w*u*y, w*u,
			0, 0, 0, w*(-x), w*(-y), w*(-1), w*v*x, w*v*y, w*v,
		)
	}

	h9, ok := nullVector9(rows, 2*n)
	if !ok {
		return geom.Model{}, ErrSingular
	}
	normH := [9]float64{h9[0], h9[1], h9[2], h9[3], h9[4], h9[5], h9[6], h9[7], h9[8]}

	// Un-normalize: H = Tdst^-1 * Hnorm * Tsrc
	tDstMat := tDst.matrix()
	tDstInv, ok := invert3x3(tDstMat)
	if !ok {
		return geom.Model{}, ErrSingular
	}
	tSrcMat := tSrc.matrix()
	hFull := mul3x3(mul3x3(tDstInv, normH), tSrcMat)

	if !finite9(hFull) {
		return geom.Model{}, ErrSingular
	}
	if hFull[8] != 0 {
		scale := 1.0 / hFull[8]
		for i := range hFull {
			hFull[i] *= scale
		}
	}

	model := geom.Model{Kind: geom.Homography}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			model.Set(r, c, hFull[r*3+c])
		}
	}
	return model, nil
}

// Residual is the symmetric transfer error: the squared pixel distance of
// forward-projecting src through the model plus back-projecting dst through
// the model's inverse, matching spec's "symmetric transfer error" default
// for homography.
func (h *Homography) Residual(m geom.Model, c Correspondence) float64 {
	var mm [9]float64
	for r := 0; r < 3; r++ {
		for col := 0; col < 3; col++ {
			mm[r*3+col] = m.At(r, col)
		}
	}
	px, py, pw := mul3x3Vec3(mm, c.SrcX, c.SrcY, 1)
	if pw == 0 {
		return math.Inf(1)
	}
	fx, fy := px/pw, py/pw
	fwdErr := math.Hypot(fx-c.DstX, fy-c.DstY)

	inv, ok := invert3x3(mm)
	if !ok {
		return math.Inf(1)
	}
	qx, qy, qw := mul3x3Vec3(inv, c.DstX, c.DstY, 1)
	if qw == 0 {
		return math.Inf(1)
	}
	bx, by := qx/qw, qy/qw
	bwdErr := math.Hypot(bx-c.SrcX, by-c.SrcY)

	return fwdErr*fwdErr + bwdErr*bwdErr
}

// IsValidModel rejects non-finite or numerically singular homographies.
func (h *Homography) IsValidModel(m geom.Model) bool {
	var mm [9]float64
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			mm[r*3+c] = m.At(r, c)
		}
	}
	if !finite9(mm) {
		return false
	}
	_, ok := invert3x3(mm)
	return ok
}

// isCollinear reports whether all source points lie on (or very near) the
// line through the first two (or the first two coincide), the classical
// homography-DLT degeneracy: a planar homography cannot be determined from
// collinear support points. Destination points are not checked, and a
// subset of three collinear points among non-collinear ones is not
// reported.
func isCollinear(corr []Correspondence) bool {
	if len(corr) < 3 {
		return false
	}
	x0, y0 := corr[0].SrcX, corr[0].SrcY
	x1, y1 := corr[1].SrcX, corr[1].SrcY
	dx1, dy1 := x1-x0, y1-y0
	baseLen := math.Hypot(dx1, dy1)
	if baseLen < 1e-12 {
		return true
	}
	for _, c := range corr[2:] {
		dx2, dy2 := c.SrcX-x0, c.SrcY-y0
		cross := dx1*dy2 - dy1*dx2
		// Normalize by the base segment length so the threshold is in
		// pixel-area units rather than raw cross-product magnitude.
		if math.Abs(cross)/baseLen < 1e-9 {
			continue
		}
		return false
	}
	return true
}
