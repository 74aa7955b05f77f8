package estimator

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// nullSpace2 factors an n x 9 design matrix (n == 7 for the minimal
// fundamental solve) and returns the two right-singular vectors with the
// smallest singular values, the rank-2 null-space basis {F1, F2} of the
// classical 7-point algorithm.
func nullSpace2(rows []float64, n int) (f1, f2 [9]float64, ok bool) {
	a := mat.NewDense(n, 9, rows)
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDFull) {
		return f1, f2, false
	}
	var v mat.Dense
	svd.VTo(&v)
	for i := 0; i < 9; i++ {
		f1[i] = v.At(i, 8)
		f2[i] = v.At(i, 7)
	}
	if !finite9(f1) || !finite9(f2) {
		return f1, f2, false
	}
	return f1, f2, true
}

func det3x3(m [9]float64) float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// solveCubicForLambda returns the real roots of det(F1 + lambda*F2) == 0.
// The 7-point algorithm reduces to exactly this cubic; it has one or three
// real roots, each giving one candidate fundamental matrix.
func solveCubicForLambda(f1, f2 [9]float64) []float64 {
	eval := func(lambda float64) float64 {
		var combo [9]float64
		for i := range combo {
			combo[i] = f1[i] + lambda*f2[i]
		}
		return det3x3(combo)
	}

	d0 := eval(0)
	d1 := eval(1)
	dm1 := eval(-1)
	d2 := eval(2)

	c0 := d0
	c2 := (d1+dm1)/2 - c0
	r := d2 - c0 - 4*c2
	c3 := (r - (d1 - dm1)) / 6
	c1 := (d1-dm1)/2 - c3

	return realCubicRoots(c3, c2, c1, c0)
}

// realCubicRoots returns the real roots of a*x^3+b*x^2+c*x+d == 0 via
// Cardano's formula, falling back to the quadratic/linear case when the
// leading coefficient has collapsed to (near) zero.
func realCubicRoots(a, b, c, d float64) []float64 {
	const eps = 1e-12
	if math.Abs(a) < eps {
		return realQuadraticRoots(b, c, d)
	}
	// Normalize to x^3 + Bx^2 + Cx + D == 0.
	B, C, D := b/a, c/a, d/a

	// Depress: x = t - B/3 -> t^3 + p t + q == 0.
	p := C - B*B/3
	q := 2*B*B*B/27 - B*C/3 + D
	shift := B / 3

	disc := (q*q)/4 + (p*p*p)/27
	const tiny = 1e-14
	switch {
	case disc > tiny:
		sqrtDisc := math.Sqrt(disc)
		u := math.Cbrt(-q/2 + sqrtDisc)
		v := math.Cbrt(-q/2 - sqrtDisc)
		return []float64{u + v - shift}
	case disc < -tiny:
		// Three distinct real roots (trigonometric form).
		r := math.Sqrt(-p * p * p / 27)
		phi := math.Acos(clamp(-q/(2*r), -1, 1))
		t := 2 * math.Sqrt(-p/3)
		roots := make([]float64, 3)
		for k := 0; k < 3; k++ {
			roots[k] = t*math.Cos((phi+2*math.Pi*float64(k))/3) - shift
		}
		return roots
	default:
		// disc ~ 0: a double root and a simple root.
		u := math.Cbrt(-q / 2)
		return []float64{2*u - shift, -u - shift}
	}
}

func realQuadraticRoots(b, c, d float64) []float64 {
	if math.Abs(b) < 1e-12 {
		if math.Abs(c) < 1e-12 {
			return nil
		}
		return []float64{-d / c}
	}
	disc := c*c - 4*b*d
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	return []float64{(-c + sq) / (2 * b), (-c - sq) / (2 * b)}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
