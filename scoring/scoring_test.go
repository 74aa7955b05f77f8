package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stereoglue/stereoglue/estimator"
	"github.com/stereoglue/stereoglue/geom"
	"github.com/stereoglue/stereoglue/scoring"
)

func identityModel() geom.Model {
	return geom.Model{Kind: geom.Homography, Values: [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}}
}

func buildPoints(t *testing.T, pts [][2]float64) *geom.DataMatrix {
	t.Helper()
	rows := make([][]float64, len(pts))
	for i, p := range pts {
		rows[i] = []float64{p[0], p[1]}
	}
	m, err := geom.NewDataMatrixFromRows(rows)
	require.NoError(t, err)
	return m
}

func TestTruncatedScoresExactInliers(t *testing.T) {
	src := buildPoints(t, [][2]float64{{0, 0}, {1, 1}, {2, 2}, {100, 100}})
	dst := buildPoints(t, [][2]float64{{0, 0}, {1, 1}, {2, 2}, {50, 50}}) // last row is an outlier
	matches, err := geom.Identity(4)
	require.NoError(t, err)
	scores, err := geom.UniformScores(matches)
	require.NoError(t, err)

	e := estimator.NewHomography()
	s := scoring.New(scoring.TruncatedKind)
	score, inliers, err := s.Score(src, dst, matches, scores, identityModel(), e, 1.0)
	require.NoError(t, err)
	assert.True(t, score.Valid)
	assert.Equal(t, 3, score.Inliers)
	assert.Len(t, inliers, 3)
	for _, p := range inliers {
		assert.Less(t, p.Src, 3)
	}
}

func TestTruncatedRejectsShapeMismatch(t *testing.T) {
	src := buildPoints(t, [][2]float64{{0, 0}, {1, 1}})
	dst := buildPoints(t, [][2]float64{{0, 0}})
	matches, err := geom.NewMatchTable(1, 1)
	require.NoError(t, err)
	scores, err := geom.UniformScores(matches)
	require.NoError(t, err)

	e := estimator.NewHomography()
	s := scoring.New(scoring.TruncatedKind)
	_, _, err = s.Score(src, dst, matches, scores, identityModel(), e, 1.0)
	assert.ErrorIs(t, err, scoring.ErrShapeMismatch)
}

func TestMultiMatchPicksLowestResidualAndTieBreaksOnIndex(t *testing.T) {
	src := buildPoints(t, [][2]float64{{0, 0}})
	dst := buildPoints(t, [][2]float64{{0, 0}, {0, 0}, {5, 5}})
	matches, err := geom.NewMatchTable(1, 3)
	require.NoError(t, err)
	matches.Set(0, 0, 1) // dst 1, residual 0
	matches.Set(0, 1, 0) // dst 0, residual 0 (tie -> lower index wins)
	matches.Set(0, 2, 2) // dst 2, residual large
	scores, err := geom.UniformScores(matches)
	require.NoError(t, err)

	e := estimator.NewHomography()
	s := scoring.New(scoring.TruncatedKind)
	_, inliers, err := s.Score(src, dst, matches, scores, identityModel(), e, 1.0)
	require.NoError(t, err)
	require.Len(t, inliers, 1)
	assert.Equal(t, 0, inliers[0].Dst)
}

func TestMAGSACProducesLikelihoodAndAtLeastAsManyInliersAsTruncated(t *testing.T) {
	src := buildPoints(t, [][2]float64{{0, 0}, {1, 1}, {2, 2}})
	dst := buildPoints(t, [][2]float64{{0, 0}, {1.05, 1.05}, {2, 2}})
	matches, err := geom.Identity(3)
	require.NoError(t, err)
	scores, err := geom.UniformScores(matches)
	require.NoError(t, err)

	e := estimator.NewHomography()
	truncated := scoring.New(scoring.TruncatedKind)
	magsac := scoring.New(scoring.MAGSACKind)

	tScore, _, err := truncated.Score(src, dst, matches, scores, identityModel(), e, 0.2)
	require.NoError(t, err)
	mScore, _, err := magsac.Score(src, dst, matches, scores, identityModel(), e, 0.2)
	require.NoError(t, err)

	assert.Equal(t, tScore.Inliers, mScore.Inliers)
	assert.Greater(t, mScore.Likelihood, 0.0)
}
