package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stereoglue/stereoglue/geom"
)

func TestDataMatrixBasic(t *testing.T) {
	m, err := geom.NewDataMatrix(3, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1.5))
	require.NoError(t, m.Set(0, 1, -2.0))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)

	x, y := m.XY(0)
	assert.Equal(t, 1.5, x)
	assert.Equal(t, -2.0, y)

	_, err = m.At(5, 0)
	assert.ErrorIs(t, err, geom.ErrOutOfRange)

	err = m.Set(0, 0, math.NaN())
	assert.ErrorIs(t, err, geom.ErrNaNInf)
}

func TestNewDataMatrixInvalidDims(t *testing.T) {
	_, err := geom.NewDataMatrix(0, 2)
	assert.ErrorIs(t, err, geom.ErrInvalidDimensions)
}

func TestDataMatrixFromRowsShapeMismatch(t *testing.T) {
	_, err := geom.NewDataMatrixFromRows([][]float64{{1, 2}, {1}})
	assert.ErrorIs(t, err, geom.ErrShapeMismatch)
}

func TestDataMatrixBounds(t *testing.T) {
	m, err := geom.NewDataMatrixFromRows([][]float64{{0, 0}, {1, 2}, {-1, 3}})
	require.NoError(t, err)
	minX, minY, maxX, maxY, err := m.Bounds()
	require.NoError(t, err)
	assert.Equal(t, -1.0, minX)
	assert.Equal(t, 0.0, minY)
	assert.Equal(t, 1.0, maxX)
	assert.Equal(t, 3.0, maxY)
}

func TestDataMatrixFinite(t *testing.T) {
	m, err := geom.NewDataMatrix(1, 2)
	require.NoError(t, err)
	assert.True(t, m.Finite())
}
