// Package grid provides the shared 2-D primitives used by every solver
// component: the continuous Domain with its floor-based coordinate↔cell
// mapping, dense row-major float64 grids, and 4/8-neighbor connectivity.
//
// What:
//
//   - Domain describes a rectangular extent (Width × Height) discretized by a
//     positive cell Spacing into nx = ⌊Width/Spacing⌋+1 columns and
//     ny = ⌊Height/Spacing⌋+1 rows.
//   - Locate maps a continuous point to its enclosing cell by truncation
//     toward the lower-left cell, never rounding. Field construction,
//     wavefront propagation, and path extraction all share this single
//     mapping to avoid off-by-one divergence.
//   - Grid is a dense ny × nx buffer of float64 cells, row-major by the
//     vertical axis: index = y*nx + x.
//   - Connectivity selects orthogonal (Conn4) or diagonal-inclusive (Conn8)
//     neighbor offsets.
//
// Why:
//
//   - Speed fields and travel-time fields are both plain dense grids; one
//     type serves both.
//   - A single, tested truncation mapping keeps all three solver stages
//     addressing the same cells.
//
// Complexity:
//
//   - All index arithmetic: O(1).
//   - Grid Clone/Fill/Min/Max: O(nx×ny).
//
// Errors:
//
//   - ErrBadSpacing: non-positive cell spacing.
//   - ErrBadExtent: non-positive domain width or height.
//   - ErrEmptyGrid: a grid with no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
package grid
