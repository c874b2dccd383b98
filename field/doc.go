// Package field builds the speed field: a deterministic mapping from the
// obstacle list and the smoothing parameters to a dense grid of traversal
// speeds in (0, 1].
//
// What:
//
//   - Every cell starts at full speed 1.
//   - Rectangle obstacles stamp ObstacleSpeed into every cell whose
//     continuous coordinate falls within their closed bounds (hard edge).
//   - Circle obstacles stamp ObstacleSpeed within their radius and a linear
//     ramp max(ObstacleSpeed, (d−r)/SmoothRadius) in the transition band
//     r < d ≤ r+SmoothRadius.
//   - Obstacles stamp unconditionally, in list order: a later obstacle's
//     cells overwrite an earlier one's, including a free-space ramp raising a
//     previously slowed cell. This ordering sensitivity is part of the
//     contract and must not be "fixed".
//   - When ⌊SmoothRadius/Spacing⌋ > 0, a single 3×3 box-filter pass averages
//     every interior cell (rows/cols 1..n−2) over its 8 neighbors and itself,
//     reading pre-pass values; border cells are left unmodified. The pass can
//     raise a slow edge cell toward 1, eroding obstacle boundaries by one
//     cell — intentional, not a bug.
//
// Why:
//
//   - The wavefront propagator charges 1/speed per unit distance, so the
//     field is the sole coupling between obstacle geometry and travel time.
//   - Rebuilding wholesale on every change keeps the grid free of
//     partial-update aliasing.
//
// Complexity:
//
//   - Build: O(nx×ny) over stamped footprints plus the smoothing pass.
//
// Guarantees:
//
//   - Rebuilding with identical inputs yields a bit-identical grid.
//   - Every cell stays within (0, 1].
//
// Errors:
//
//   - ErrBadObstacleSpeed: ObstacleSpeed outside (0, 1).
//   - ErrBadSmoothRadius: negative SmoothRadius.
//   - Domain validation errors from package grid.
package field
