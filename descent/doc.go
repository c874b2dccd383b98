// Package descent extracts minimum-travel-time paths from a computed
// travel-time field by greedy gradient descent toward the field's source.
//
// What:
//
//   - Two extraction modes, a configuration choice over one algorithm:
//
//     ModeDiscrete   — step cell-to-cell. Each step inspects the current
//     cell's 8 neighbors (plus itself) and moves to the strictly smallest
//     travel time; waypoints are cell origins. Stops within one cell of the
//     destination index, appending the exact destination point.
//
//     ModeContinuous — keep a continuous cursor starting at the exact start
//     point. Each iteration finds the best neighbor direction of the
//     enclosing cell exactly as in discrete mode, then advances the cursor
//     by half a cell spacing per axis in that direction, clamped to
//     [0, extent−spacing]. Stops once the cursor is within 1.5×spacing of
//     the destination, appending the exact destination point.
//
//   - Both modes are bounded by nx×ny steps, so extraction terminates on any
//     field shape, plateaus and degenerate cycles included.
//
//   - A single relaxation pass can nudge every interior waypoint by
//     α·(next−prev) — a Catmull-Rom-style tangent nudge, not a true spline.
//     Endpoints are never moved, and paths shorter than 3 points pass
//     through untouched. Continuous mode applies it by default; discrete
//     mode opts in.
//
// Why:
//
//   - A local minimum or plateau means the destination cannot be improved
//     toward from here; extraction halts and the truncated path is reported
//     as incomplete (Result.Complete == false), never as an error.
//   - A missing or out-of-bounds start yields an empty path, not an error:
//     both are expected interactive input states.
//
// Complexity:
//
//   - Extract: O(nx×ny) worst case (step budget), O(path) memory.
//
// Errors:
//
//   - ErrNilField: no travel-time field was supplied.
//   - ErrBadMode: unknown extraction mode.
//   - ErrBadSmoothFactor: smoothing factor outside [0, 0.5).
package descent
