// Package planner is the solver facade: it owns the configuration, the
// obstacle collection, and the two grids, and wires the three solver stages
// into single-call path queries.
//
// What:
//
//   - Planner holds a validated Config, an obstacle.Set, optional start/end
//     points, and the owned speed and travel-time grids.
//   - Obstacle mutations (AddRectangle/AddCircle/Remove/Update) invalidate
//     the speed grid; it is rebuilt wholesale on the next query, never
//     patched in place.
//   - Plan runs propagation from the end point and extraction from the start
//     point, from scratch on every call. Missing endpoints yield an empty
//     path rather than an error.
//   - Snapshot captures domain size, spacing, obstacle speed, smoothing
//     radius, extraction mode, the obstacle list, and both endpoints as a
//     JSON-ready record; Restore reconstructs an equivalent Planner from it.
//
// Why:
//
//   - Wholesale replacement avoids aliasing and partial-update races at the
//     cost of full recomputation per change; interactive callers should
//     debounce parameter edits rather than expect in-solver cancellation.
//   - A Planner is single-threaded and synchronous: every call runs to
//     completion, and concurrent callers need independent instances or
//     external serialization.
//
// Errors:
//
//   - Configuration errors surface from the grid and field packages before
//     any grid is allocated.
//   - Propagation and extraction errors pass through unchanged
//     (wavefront.ErrOutOfBounds and friends); all of them are recoverable
//     by adjusting inputs and retrying.
package planner
