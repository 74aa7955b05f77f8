package grid

import "errors"

// Sentinel errors for the grid package.
var (
	// ErrInvalidDivisions indicates division_count == 0.
	ErrInvalidDivisions = errors.New("grid: division count must be > 0")

	// ErrNonFinite indicates a source (or destination) coordinate was NaN
	// or +/-Inf.
	ErrNonFinite = errors.New("grid: non-finite coordinate")

	// ErrDegenerateExtent indicates the source matrix's bounding box has
	// zero extent on an axis (every point shares the same x or y), which
	// would make cell size zero.
	ErrDegenerateExtent = errors.New("grid: degenerate point cloud extent")
)
