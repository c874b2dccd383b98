// Package wavefront computes travel-time fields: the minimum weighted-graph
// distance from a single source cell to every reachable cell of a speed
// grid.
//
// The propagator runs exact Dijkstra over the 8-connected grid graph, not a
// PDE upwind scheme. Edge weights charge the destination cell's speed:
// Spacing/speed for axis-aligned steps and Spacing·√2/speed for diagonal
// steps, so traversing into a slow cell always costs the slow rate
// regardless of direction. The resulting field is a grid-graph approximation
// of geodesic travel time; accuracy depends on the spacing and the
// 45°-quantized 8-direction stencil.
//
// It processes cells in order of increasing travel time using a min-heap
// priority queue with the lazy-decrease-key pattern: improved distances push
// duplicate entries, and stale entries are discarded when popped. Relaxation
// uses strict "<" comparison, so the final field does not depend on
// tie-breaking among equal-distance entries.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for V = nx×ny cells and E ≤ 8V edges.
//   - Space: O(V + E) for the field and the heap under lazy-decrease-key.
//
// Options:
//
//   - WithConnectivity(c): Conn8 (default) or Conn4 stencil.
//   - WithMaxTime(t): stop expanding once the frontier exceeds t.
//
// Errors:
//
//   - ErrOutOfBounds: the source point maps outside the grid. No field is
//     produced; the caller may adjust the point and retry.
//   - ErrEmptyGrid: the speed grid has no cells.
//   - ErrGridMismatch: the speed grid does not match the domain dimensions.
//   - ErrNonPositiveSpeed: the speed grid carries a cell ≤ 0, which would
//     make an edge weight infinite or negative.
//
// Unreachable cells (fully enclosed by zero-width barriers) remain at +Inf;
// that is a valid result, not an error.
package wavefront
