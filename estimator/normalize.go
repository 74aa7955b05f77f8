package estimator

import "math"

// normTransform is a 2D similarity transform: translate by (-cx,-cy) then
// scale by s. Applying it to a point set moves its centroid to the origin
// and its mean distance from the origin to sqrt(2), the classical Hartley
// normalization used to condition DLT-style linear solves.
type normTransform struct {
	cx, cy float64
	s      float64
}

func (t normTransform) apply(x, y float64) (float64, float64) {
	return (x - t.cx) * t.s, (y - t.cy) * t.s
}

// matrix returns the 3x3 homogeneous normalization matrix [[s,0,-s*cx],
// [0,s,-s*cy],[0,0,1]], used to un-normalize a solved homography/fundamental
// matrix back into pixel coordinates.
func (t normTransform) matrix() [9]float64 {
	return [9]float64{
		t.s, 0, -t.s * t.cx,
		0, t.s, -t.s * t.cy,
		0, 0, 1,
	}
}

// computeNormalization derives the Hartley normalization for a set of
// (x,y) points, grounded on getNormalizationMatrix from the viamrobotics-rdk
// homography solver: mean-center, then scale so the average distance from
// the origin is sqrt(2).
func computeNormalization(xs, ys []float64) (normTransform, bool) {
	n := len(xs)
	if n == 0 {
		return normTransform{}, false
	}
	var sx, sy float64
	for i := 0; i < n; i++ {
		sx += xs[i]
		sy += ys[i]
	}
	cx, cy := sx/float64(n), sy/float64(n)

	var sumDist float64
	for i := 0; i < n; i++ {
		dx, dy := xs[i]-cx, ys[i]-cy
		sumDist += math.Hypot(dx, dy)
	}
	meanDist := sumDist / float64(n)
	if meanDist < 1e-12 || math.IsNaN(meanDist) || math.IsInf(meanDist, 0) {
		return normTransform{}, false
	}
	return normTransform{cx: cx, cy: cy, s: math.Sqrt2 / meanDist}, true
}

// mul3x3Vec3 multiplies a row-major 3x3 matrix by a column vector.
func mul3x3Vec3(m [9]float64, x, y, w float64) (float64, float64, float64) {
	return m[0]*x + m[1]*y + m[2]*w,
		m[3]*x + m[4]*y + m[5]*w,
		m[6]*x + m[7]*y + m[8]*w
}

// mul3x3 multiplies two row-major 3x3 matrices: a*b.
func mul3x3(a, b [9]float64) [9]float64 {
	var out [9]float64
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += a[r*3+k] * b[k*3+c]
			}
			out[r*3+c] = sum
		}
	}
	return out
}

// invert3x3 inverts a row-major 3x3 matrix via the cofactor method. Used to
// invert a normalization matrix when un-normalizing solved models.
func invert3x3(m [9]float64) ([9]float64, bool) {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[3], m[4], m[5]
	g, h, i := m[6], m[7], m[8]

	det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	if math.Abs(det) < 1e-15 {
		return [9]float64{}, false
	}
	invDet := 1.0 / det
	return [9]float64{
		(e*i - f*h) * invDet, (c*h - b*i) * invDet, (b*f - c*e) * invDet,
		(f*g - d*i) * invDet, (a*i - c*g) * invDet, (c*d - a*f) * invDet,
		(d*h - e*g) * invDet, (b*g - a*h) * invDet, (a*e - b*d) * invDet,
	}, true
}
