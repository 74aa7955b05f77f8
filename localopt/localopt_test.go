package localopt_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stereoglue/stereoglue/estimator"
	"github.com/stereoglue/stereoglue/geom"
	"github.com/stereoglue/stereoglue/localopt"
	"github.com/stereoglue/stereoglue/scoring"
)

func applyH(h [9]float64, x, y float64) (float64, float64) {
	px := h[0]*x + h[1]*y + h[2]
	py := h[3]*x + h[4]*y + h[5]
	pw := h[6]*x + h[7]*y + h[8]
	return px / pw, py / pw
}

func noisyHomographySetup(t *testing.T, n int, noise float64) (*geom.DataMatrix, *geom.DataMatrix, *geom.MatchTable, *geom.ScoreTable, geom.Model) {
	t.Helper()
	h := [9]float64{1.1, 0.05, 5, -0.02, 0.95, -3, 0.0003, 0.0001, 1}
	rng := rand.New(rand.NewSource(99))
	srcRows := make([][]float64, n)
	dstRows := make([][]float64, n)
	for i := 0; i < n; i++ {
		x := rng.Float64() * 100
		y := rng.Float64() * 100
		dx, dy := applyH(h, x, y)
		dx += (rng.Float64()*2 - 1) * noise
		dy += (rng.Float64()*2 - 1) * noise
		srcRows[i] = []float64{x, y}
		dstRows[i] = []float64{dx, dy}
	}
	src, err := geom.NewDataMatrixFromRows(srcRows)
	require.NoError(t, err)
	dst, err := geom.NewDataMatrixFromRows(dstRows)
	require.NoError(t, err)
	matches, err := geom.Identity(n)
	require.NoError(t, err)
	scores, err := geom.UniformScores(matches)
	require.NoError(t, err)
	return src, dst, matches, scores, geom.Model{Kind: geom.Homography, Values: h}
}

func TestNestedRANSACNeverWorsensScore(t *testing.T) {
	src, dst, matches, matchScores, model := noisyHomographySetup(t, 40, 1.5)
	est := estimator.NewHomography()
	scorer := scoring.New(scoring.TruncatedKind)

	baseScore, inliers, err := scorer.Score(src, dst, matches, matchScores, model, est, 3.0)
	require.NoError(t, err)
	require.True(t, baseScore.Valid)

	opt := localopt.New(localopt.NestedRANSACKind, localopt.DefaultSettings())
	_, newScore, _ := opt.Optimize(src, dst, matches, matchScores, model, baseScore, inliers, est, scorer, 3.0, rand.New(rand.NewSource(1)))
	assert.False(t, newScore.Less(baseScore))
}

func TestIRLSNeverWorsensScoreAndIsNoOpBelowSampleSize(t *testing.T) {
	src, dst, matches, matchScores, model := noisyHomographySetup(t, 20, 0.8)
	est := estimator.NewHomography()
	scorer := scoring.New(scoring.TruncatedKind)

	baseScore, inliers, err := scorer.Score(src, dst, matches, matchScores, model, est, 2.0)
	require.NoError(t, err)

	opt := localopt.New(localopt.IRLSKind, localopt.DefaultSettings())
	_, newScore, _ := opt.Optimize(src, dst, matches, matchScores, model, baseScore, inliers, est, scorer, 2.0, rand.New(rand.NewSource(2)))
	assert.False(t, newScore.Less(baseScore))

	tooFew := inliers[:3]
	outModel, outScore, outInliers := opt.Optimize(src, dst, matches, matchScores, model, baseScore, tooFew, est, scorer, 2.0, rand.New(rand.NewSource(2)))
	assert.Equal(t, model, outModel)
	assert.Equal(t, baseScore, outScore)
	assert.Equal(t, tooFew, outInliers)
}
