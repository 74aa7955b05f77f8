package grid

import (
	"math"
	"sort"

	"github.com/stereoglue/stereoglue/geom"
)

// Cell holds the source and destination point indices assigned to one grid
// cell. Empty cells are never stored; Graph.Cells() only reports filled
// cells, mirroring gridgraph's convention of skipping "water" cells below
// LandThreshold.
type Cell struct {
	SourceIdx []int
	DestIdx   []int
}

// Graph is a uniform grid partition over a source point cloud (and,
// optionally, a destination point cloud sharing the same pixel frame). It is
// built once and is immutable thereafter; it borrows nothing from the
// matrices passed to Build once construction returns.
type Graph struct {
	divisions        int
	minX, minY       float64
	cellW, cellH     float64
	cellOfSource     []int
	cells            map[int]*Cell
	filledCellCount  int
}

// Build constructs a Graph from source (and optionally destination, which
// may be nil) over a divisions×divisions uniform grid. The bounding box is
// computed from source's (x, y) columns only, per spec §4.1. Returns
// ErrInvalidDivisions when divisions == 0, ErrNonFinite when any coordinate
// is non-finite, ErrDegenerateExtent when the bounding box collapses on an
// axis.
//
// Complexity: O(N) where N = source.Rows() + destination.Rows().
func Build(source, destination *geom.DataMatrix, divisions int) (*Graph, error) {
	if divisions == 0 {
		return nil, ErrInvalidDivisions
	}
	if !source.Finite() {
		return nil, ErrNonFinite
	}
	if destination != nil && !destination.Finite() {
		return nil, ErrNonFinite
	}

	minX, minY, maxX, maxY, err := source.Bounds()
	if err != nil {
		return nil, err
	}
	extentX, extentY := maxX-minX, maxY-minY
	if extentX <= 0 || extentY <= 0 {
		return nil, ErrDegenerateExtent
	}

	g := &Graph{
		divisions: divisions,
		minX:      minX,
		minY:      minY,
		cellW:     extentX / float64(divisions),
		cellH:     extentY / float64(divisions),
		cells:     make(map[int]*Cell),
	}

	g.cellOfSource = make([]int, source.Rows())
	for i := 0; i < source.Rows(); i++ {
		x, y := source.XY(i)
		id := g.cellID(x, y)
		g.cellOfSource[i] = id
		c := g.cellFor(id)
		c.SourceIdx = append(c.SourceIdx, i)
	}

	if destination != nil {
		for i := 0; i < destination.Rows(); i++ {
			x, y := destination.XY(i)
			id := g.cellID(x, y)
			c := g.cellFor(id)
			c.DestIdx = append(c.DestIdx, i)
		}
	}

	g.filledCellCount = len(g.cells)
	return g, nil
}

func (g *Graph) cellFor(id int) *Cell {
	c, ok := g.cells[id]
	if !ok {
		c = &Cell{}
		g.cells[id] = c
	}
	return c
}

// cellID computes the row-major linear cell index for point (x, y),
// clamping boundary points at the maximum extent into the last row/column
// instead of overflowing the grid.
func (g *Graph) cellID(x, y float64) int {
	col := int(math.Floor((x - g.minX) / g.cellW))
	row := int(math.Floor((y - g.minY) / g.cellH))
	if col >= g.divisions {
		col = g.divisions - 1
	}
	if col < 0 {
		col = 0
	}
	if row >= g.divisions {
		row = g.divisions - 1
	}
	if row < 0 {
		row = 0
	}
	return row*g.divisions + col
}

// DivisionCount returns the grid's division count per axis.
func (g *Graph) DivisionCount() int { return g.divisions }

// FilledCellCount returns the number of non-empty cells.
func (g *Graph) FilledCellCount() int { return g.filledCellCount }

// Cells returns the mapping from cell id to its member source/destination
// indices. The returned map must be treated as read-only.
func (g *Graph) Cells() map[int]*Cell { return g.cells }

// CellSizes returns, for each filled cell in ascending cell-id order, the
// number of source points it holds — the cell's occupancy.
func (g *Graph) CellSizes() []float64 {
	ids := make([]int, 0, len(g.cells))
	for id := range g.cells {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	sizes := make([]float64, len(ids))
	for i, id := range ids {
		sizes[i] = float64(len(g.cells[id].SourceIdx))
	}
	return sizes
}

// Neighbors returns the source indices sharing pointIdx's cell, excluding
// pointIdx itself.
func (g *Graph) Neighbors(pointIdx int) []int {
	return g.neighbors(pointIdx, false)
}

// Neighbors8 returns the source indices in pointIdx's cell and its
// 8-connected neighbor cells, excluding pointIdx itself.
func (g *Graph) Neighbors8(pointIdx int) []int {
	return g.neighbors(pointIdx, true)
}

func (g *Graph) neighbors(pointIdx int, wide bool) []int {
	id := g.cellOfSource[pointIdx]
	row, col := id/g.divisions, id%g.divisions

	var out []int
	collect := func(r, c int) {
		if r < 0 || r >= g.divisions || c < 0 || c >= g.divisions {
			return
		}
		cell, ok := g.cells[r*g.divisions+c]
		if !ok {
			return
		}
		for _, s := range cell.SourceIdx {
			if s != pointIdx {
				out = append(out, s)
			}
		}
	}

	if !wide {
		collect(row, col)
		return out
	}
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			collect(row+dr, col+dc)
		}
	}
	return out
}
