package geom

// Intrinsics is a row-major 3x3 camera calibration matrix, in the same
// layout as Model.Values. Essential-matrix fitting requires one per view so
// pixel coordinates can be converted to normalized camera coordinates
// before the epipolar-constraint linear algebra applies.
type Intrinsics [9]float64

// invert3x3 returns the inverse of a row-major 3x3 matrix via the cofactor
// method, or ok=false if it is singular.
func invert3x3(m [9]float64) (inv [9]float64, ok bool) {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[3], m[4], m[5]
	g, h, i := m[6], m[7], m[8]

	det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	if det == 0 {
		return inv, false
	}
	invDet := 1 / det

	inv[0] = (e*i - f*h) * invDet
	inv[1] = (c*h - b*i) * invDet
	inv[2] = (b*f - c*e) * invDet
	inv[3] = (f*g - d*i) * invDet
	inv[4] = (a*i - c*g) * invDet
	inv[5] = (c*d - a*f) * invDet
	inv[6] = (d*h - e*g) * invDet
	inv[7] = (b*g - a*h) * invDet
	inv[8] = (a*e - b*d) * invDet
	return inv, true
}

// NormalizeByIntrinsics returns a copy of m with its (x, y) columns mapped
// from pixel coordinates to normalized camera coordinates via k^-1: for each
// row, [x' y' w']^T = k^-1 * [x y 1]^T, then (x'/w', y'/w'). Columns beyond
// the first two are copied unchanged. Returns ErrSingularIntrinsics if k is
// not invertible.
func NormalizeByIntrinsics(m *DataMatrix, k Intrinsics) (*DataMatrix, error) {
	kInv, ok := invert3x3([9]float64(k))
	if !ok {
		return nil, ErrSingularIntrinsics
	}
	out, err := NewDataMatrix(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	for row := 0; row < m.Rows(); row++ {
		x, y := m.XY(row)
		w := kInv[6]*x + kInv[7]*y + kInv[8]
		nx := (kInv[0]*x + kInv[1]*y + kInv[2]) / w
		ny := (kInv[3]*x + kInv[4]*y + kInv[5]) / w
		out.data[row*out.cols] = nx
		out.data[row*out.cols+1] = ny
		for col := 2; col < m.Cols(); col++ {
			v, _ := m.At(row, col)
			out.data[row*out.cols+col] = v
		}
	}
	return out, nil
}
