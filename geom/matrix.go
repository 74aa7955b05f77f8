package geom

import (
	"fmt"
	"math"
)

// DataMatrix is a dense, row-major table of float64 observations. Rows index
// observations (points); columns index channels (x, y, and any auxiliary
// features such as scale, orientation, or descriptor distance).
//
// DataMatrix is the concrete type backing source and destination point
// clouds throughout the estimator. All matrices participating in one
// estimation call share the row indexing they claim to: a match row index
// references the source row of the same index.
type DataMatrix struct {
	rows, cols int
	data       []float64 // flat backing storage, length rows*cols, row-major
}

// NewDataMatrix allocates a rows×cols DataMatrix initialized to zero.
// Returns ErrInvalidDimensions if either dimension is non-positive.
func NewDataMatrix(rows, cols int) (*DataMatrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &DataMatrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// NewDataMatrixFromRows builds a DataMatrix from row-major Go slices. All
// rows must share the same length; returns ErrShapeMismatch otherwise.
func NewDataMatrixFromRows(rows [][]float64) (*DataMatrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	m, err := NewDataMatrix(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, ErrShapeMismatch
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}
	return m, nil
}

// Rows returns the number of observations.
func (m *DataMatrix) Rows() int { return m.rows }

// Cols returns the number of channels.
func (m *DataMatrix) Cols() int { return m.cols }

func (m *DataMatrix) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, fmt.Errorf("DataMatrix.At(%d,%d): %w", row, col, ErrOutOfRange)
	}
	return row*m.cols + col, nil
}

// At returns the value at (row, col), bounds-checked.
func (m *DataMatrix) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set writes value at (row, col). Returns ErrNaNInf if value is non-finite.
func (m *DataMatrix) Set(row, col int, value float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("DataMatrix.Set(%d,%d): %w", row, col, ErrNaNInf)
	}
	m.data[idx] = value
	return nil
}

// RawAt reads (row, col) without bounds checks, for hot-loop use by callers
// that have already validated shape once per call (scoring, residuals).
// Like XY, it neither allocates nor returns an error.
func (m *DataMatrix) RawAt(row, col int) float64 {
	return m.data[row*m.cols+col]
}

// XY returns the first two columns of row i, the (x, y) coordinate every
// point cloud is required to carry.
func (m *DataMatrix) XY(i int) (x, y float64) {
	return m.data[i*m.cols], m.data[i*m.cols+1]
}

// Row copies row i into dst, growing dst if necessary, and returns it.
func (m *DataMatrix) Row(i int, dst []float64) []float64 {
	if cap(dst) < m.cols {
		dst = make([]float64, m.cols)
	}
	dst = dst[:m.cols]
	copy(dst, m.data[i*m.cols:(i+1)*m.cols])
	return dst
}

// Finite reports whether every entry of m is a finite float64. Used during
// input validation (InvalidInput per spec §7) before an estimation starts.
func (m *DataMatrix) Finite() bool {
	for _, v := range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Bounds computes the axis-aligned bounding box over the first two columns.
// Returns ErrTooFewColumns if m has fewer than 2 columns.
func (m *DataMatrix) Bounds() (minX, minY, maxX, maxY float64, err error) {
	if m.cols < 2 {
		return 0, 0, 0, 0, ErrTooFewColumns
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for i := 0; i < m.rows; i++ {
		x, y := m.XY(i)
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	return minX, minY, maxX, maxY, nil
}
