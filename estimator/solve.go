package estimator

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// nullVector9 factors an n x 9 design matrix with a full SVD and returns the
// right-singular vector associated with the smallest singular value, the
// standard homogeneous-linear-system solution used by both the DLT
// homography solve and the 8-point fundamental solve. Grounded on the
// mat.SVD / svd.VTo usage in the viamrobotics-rdk homography solver.
func nullVector9(rows []float64, n int) ([9]float64, bool) {
	a := mat.NewDense(n, 9, rows)

	var svd mat.SVD
	ok := svd.Factorize(a, mat.SVDFull)
	if !ok {
		return [9]float64{}, false
	}
	var v mat.Dense
	svd.VTo(&v)

	// Singular values are returned in descending order; the last column of
	// V is the smallest-singular-value right-singular vector.
	var out [9]float64
	for i := 0; i < 9; i++ {
		out[i] = v.At(i, 8)
	}
	if !finite9(out) {
		return [9]float64{}, false
	}
	return out, true
}

func finite9(v [9]float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// enforceRank2 zeros the smallest singular value of a 3x3 matrix, the usual
// fundamental/essential matrix rank constraint (det F == 0).
func enforceRank2(m [9]float64) [9]float64 {
	a := mat.NewDense(3, 3, m[:])
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDFull) {
		return m
	}
	sv := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	sv[2] = 0

	sigma := mat.NewDense(3, 3, nil)
	sigma.Set(0, 0, sv[0])
	sigma.Set(1, 1, sv[1])
	sigma.Set(2, 2, 0)

	var tmp, result mat.Dense
	tmp.Mul(&u, sigma)
	result.Mul(&tmp, v.T())

	var out [9]float64
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r*3+c] = result.At(r, c)
		}
	}
	return out
}

// enforceEssential projects a 3x3 matrix onto the essential-matrix manifold:
// singular values (s, s, 0) with s the average of the top two singular
// values of the input, the standard normalization used after a linear
// essential-matrix solve.
func enforceEssential(m [9]float64) [9]float64 {
	a := mat.NewDense(3, 3, m[:])
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDFull) {
		return m
	}
	sv := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	s := (sv[0] + sv[1]) / 2
	sigma := mat.NewDense(3, 3, nil)
	sigma.Set(0, 0, s)
	sigma.Set(1, 1, s)
	sigma.Set(2, 2, 0)

	var tmp, result mat.Dense
	tmp.Mul(&u, sigma)
	result.Mul(&tmp, v.T())

	var out [9]float64
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r*3+c] = result.At(r, c)
		}
	}
	return out
}

// smallestSingularValue3x3 returns the smallest singular value of a 3x3
// matrix, used by IsValidModel to reject near-singular fundamental/essential
// candidates and to measure how well rank-2 enforcement held.
func smallestSingularValue3x3(m [9]float64) float64 {
	a := mat.NewDense(3, 3, m[:])
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDNone) {
		return math.NaN()
	}
	sv := svd.Values(nil)
	return sv[2]
}
