package estimator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stereoglue/stereoglue/estimator"
	"github.com/stereoglue/stereoglue/geom"
)

// applyH applies a row-major 3x3 homography to a point.
func applyH(h [9]float64, x, y float64) (float64, float64) {
	px := h[0]*x + h[1]*y + h[2]
	py := h[3]*x + h[4]*y + h[5]
	pw := h[6]*x + h[7]*y + h[8]
	return px / pw, py / pw
}

func TestHomographyRecoversKnownTransform(t *testing.T) {
	h := [9]float64{
		1.2, 0.1, 10,
		-0.05, 0.9, 20,
		0.0005, 0.0002, 1,
	}
	src := [][2]float64{{0, 0}, {100, 0}, {100, 100}, {0, 100}, {50, 50}, {30, 70}}
	corr := make([]estimator.Correspondence, len(src))
	for i, p := range src {
		dx, dy := applyH(h, p[0], p[1])
		corr[i] = estimator.Correspondence{SrcX: p[0], SrcY: p[1], DstX: dx, DstY: dy}
	}

	e := estimator.NewHomography()
	models, err := e.EstimateMinimal(corr[:4])
	require.NoError(t, err)
	require.Len(t, models, 1)

	want := geom.Model{Kind: geom.Homography, Values: h}
	assert.Less(t, geom.FrobeniusDistance(models[0], want), 1e-6)

	refined, err := e.EstimateNonMinimal(corr, nil)
	require.NoError(t, err)
	assert.Less(t, geom.FrobeniusDistance(refined, want), 1e-6)
}

func TestHomographyResidualZeroForExactFit(t *testing.T) {
	h := [9]float64{1, 0, 5, 0, 1, -3, 0, 0, 1}
	model := geom.Model{Kind: geom.Homography, Values: h}
	e := estimator.NewHomography()
	c := estimator.Correspondence{SrcX: 10, SrcY: 20, DstX: 15, DstY: 17}
	assert.InDelta(t, 0, e.Residual(model, c), 1e-9)
}

func TestHomographyRejectsCollinearSample(t *testing.T) {
	e := estimator.NewHomography()
	corr := []estimator.Correspondence{
		{SrcX: 0, SrcY: 0, DstX: 0, DstY: 0},
		{SrcX: 1, SrcY: 0, DstX: 1, DstY: 0},
		{SrcX: 2, SrcY: 0, DstX: 2, DstY: 0},
		{SrcX: 3, SrcY: 0, DstX: 3, DstY: 0},
	}
	_, err := e.EstimateMinimal(corr)
	require.Error(t, err)
}

func TestHomographyIsValidModel(t *testing.T) {
	e := estimator.NewHomography()
	assert.True(t, e.IsValidModel(geom.Model{Kind: geom.Homography, Values: [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}}))
	assert.False(t, e.IsValidModel(geom.Model{Kind: geom.Homography, Values: [9]float64{math.NaN(), 0, 0, 0, 1, 0, 0, 0, 1}}))
	assert.False(t, e.IsValidModel(geom.Model{Kind: geom.Homography, Values: [9]float64{}}))
}
