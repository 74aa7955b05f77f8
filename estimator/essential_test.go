package estimator_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stereoglue/stereoglue/estimator"
)

func syntheticEssentialCorrespondences(n int) []estimator.Correspondence {
	rng := rand.New(rand.NewSource(3))
	corr := make([]estimator.Correspondence, 0, n)
	baseline := 0.3
	for len(corr) < n {
		X := rng.Float64()*4 - 2
		Y := rng.Float64()*4 - 2
		Z := rng.Float64()*3 + 3
		x1, y1 := X/Z, Y/Z
		x2, y2 := (X-baseline)/Z, Y/Z
		corr = append(corr, estimator.Correspondence{SrcX: x1, SrcY: y1, DstX: x2, DstY: y2})
	}
	return corr
}

func TestEssentialNonMinimalProducesValidModel(t *testing.T) {
	corr := syntheticEssentialCorrespondences(20)
	e := estimator.NewEssential()
	model, err := e.EstimateNonMinimal(corr, nil)
	require.NoError(t, err)
	require.True(t, e.IsValidModel(model))
}

func TestEssentialMinimalTooFewPoints(t *testing.T) {
	e := estimator.NewEssential()
	_, err := e.EstimateMinimal(make([]estimator.Correspondence, 4))
	require.Error(t, err)
}
