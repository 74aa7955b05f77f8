package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stereoglue/stereoglue/geom"
)

func TestScoreOrdering(t *testing.T) {
	low := geom.Score{Valid: true, Quality: 1, Inliers: 10}
	high := geom.Score{Valid: true, Quality: 2, Inliers: 5}
	assert.True(t, low.Less(high))
	assert.False(t, high.Less(low))

	tieA := geom.Score{Valid: true, Quality: 1, Inliers: 5}
	tieB := geom.Score{Valid: true, Quality: 1, Inliers: 6}
	assert.True(t, tieA.Less(tieB))

	assert.True(t, geom.InvalidScore.Less(low))
	assert.False(t, low.Less(geom.InvalidScore))
}

func TestModelNormalizedAndFrobenius(t *testing.T) {
	a := geom.Model{Kind: geom.Homography, Values: [9]float64{2, 0, 0, 0, 2, 0, 0, 0, 2}}
	b := geom.Model{Kind: geom.Homography, Values: [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}}
	d := geom.FrobeniusDistance(a, b)
	assert.InDelta(t, 0, d, 1e-9)
}

func TestInlierSetSourceIndices(t *testing.T) {
	set := geom.InlierSet{{Src: 3, Dst: 1}, {Src: 7, Dst: 2}}
	assert.Equal(t, []int{3, 7}, set.SourceIndices())
}

func TestMatchTableIdentity(t *testing.T) {
	tbl, err := geom.Identity(4)
	assert.NoError(t, err)
	assert.Equal(t, 1, tbl.K())
	for i := 0; i < 4; i++ {
		assert.Equal(t, i, tbl.At(i, 0))
	}
}
