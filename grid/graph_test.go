package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stereoglue/stereoglue/geom"
	"github.com/stereoglue/stereoglue/grid"
)

func TestBuildZeroDivisions(t *testing.T) {
	m, err := geom.NewDataMatrixFromRows([][]float64{{0, 0}, {1, 1}})
	require.NoError(t, err)
	_, err = grid.Build(m, nil, 0)
	assert.ErrorIs(t, err, grid.ErrInvalidDivisions)
}

func TestBuildNonFinite(t *testing.T) {
	// DataMatrix.Set rejects non-finite values, so the Inf goes in through
	// the row constructor, which copies values unchecked.
	m, err := geom.NewDataMatrixFromRows([][]float64{{0, 0}, {math.Inf(1), 1}})
	require.NoError(t, err)
	_, err = grid.Build(m, nil, 4)
	assert.ErrorIs(t, err, grid.ErrNonFinite)
}

func TestBuildDegenerateExtent(t *testing.T) {
	m, err := geom.NewDataMatrixFromRows([][]float64{{1, 1}, {1, 1}, {1, 1}})
	require.NoError(t, err)
	_, err = grid.Build(m, nil, 4)
	assert.ErrorIs(t, err, grid.ErrDegenerateExtent)
}

func TestBuildAndNeighbors(t *testing.T) {
	// 4 points spread across a unit square, 2 divisions -> 4 cells.
	m, err := geom.NewDataMatrixFromRows([][]float64{
		{0.1, 0.1}, // cell (0,0)
		{0.2, 0.2}, // cell (0,0)
		{0.9, 0.9}, // cell (1,1)
		{0.6, 0.1}, // cell (1,0)
	})
	require.NoError(t, err)

	g, err := grid.Build(m, nil, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, g.DivisionCount())
	assert.Equal(t, 3, g.FilledCellCount())

	nbrs := g.Neighbors(0)
	assert.Equal(t, []int{1}, nbrs)

	nbrs3 := g.Neighbors(2)
	assert.Empty(t, nbrs3)
}

func TestBoundaryPointClampsIntoLastCell(t *testing.T) {
	m, err := geom.NewDataMatrixFromRows([][]float64{{0, 0}, {1, 1}})
	require.NoError(t, err)
	g, err := grid.Build(m, nil, 2)
	require.NoError(t, err)
	// both points are corners; (1,1) must land in the last cell, not overflow.
	nbrs := g.Neighbors(1)
	assert.Empty(t, nbrs)
	assert.Equal(t, 2, g.FilledCellCount())
}

func TestCellSizes(t *testing.T) {
	m, err := geom.NewDataMatrixFromRows([][]float64{{0, 0}, {0.1, 0.1}, {0.9, 0.9}})
	require.NoError(t, err)
	g, err := grid.Build(m, nil, 2)
	require.NoError(t, err)
	sizes := g.CellSizes()
	assert.Len(t, sizes, 2)
	assert.Equal(t, float64(2), sizes[0])
	assert.Equal(t, float64(1), sizes[1])
}

func TestDestinationIndexing(t *testing.T) {
	// Two source points so the source bounding box has non-zero extent.
	src, err := geom.NewDataMatrixFromRows([][]float64{{0.1, 0.1}, {0.9, 0.9}})
	require.NoError(t, err)
	dst, err := geom.NewDataMatrixFromRows([][]float64{{0.2, 0.2}, {0.9, 0.9}})
	require.NoError(t, err)
	g, err := grid.Build(src, dst, 2)
	require.NoError(t, err)
	cell := g.Cells()
	total := 0
	for _, c := range cell {
		total += len(c.DestIdx)
	}
	assert.Equal(t, 2, total)
}
