// Package grid builds a uniform spatial partition over a source (and
// optionally destination) point cloud, used by the neighborhood-guided
// sampler to bias minimal samples toward spatially coherent
// correspondences.
//
// What:
//
//   - Graph wraps a bounding box computed from the source matrix (x, y),
//     divided into divisions×divisions cells. Cell size is
//     extent_axis / divisions on each axis independently.
//   - Each point is assigned to cell_id = floor((p - origin) / cellSize),
//     linearized row-major; points at the maximum extent clamp into the
//     last cell instead of overflowing it.
//   - Build is O(N); Neighbors(i) returns the source indices sharing i's
//     cell (and, optionally, its 8-connected neighbor cells).
//
// Why:
//
//   - A uniform grid over the point cloud is the classic constant-time
//     neighbor lookup used by PROSAC-style and locally-optimized RANSAC
//     variants; adapted here from gridgraph's integer land/water grid
//     (same bounding-box-into-cells mechanism, connected-component BFS
//     swapped for a flat index-to-indices map since the estimator never
//     needs graph connectivity, only cell membership).
//
// Lifetime:
//
//   - A Graph borrows the matrix it was built from only during Build; after
//     Build returns, cell membership is copied into the Graph's own slices
//     and the source matrix is no longer referenced. Callers must not mutate
//     the source matrix between Build and any subsequent read of the same
//     point coordinates, or Graph's cell assignment goes stale.
package grid
