// Package wavefront implements single-source travel-time propagation over a
// speed grid using Dijkstra's algorithm on the connected grid graph.
package wavefront

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/eikonal/grid"
)

// Propagate computes the travel-time field over the speed grid with the
// wavefront source at the given continuous point (the destination of a path
// query, so extraction can descend from any start).
//
// Returns:
//
//   - field: travel time per cell; +Inf marks unreachable cells.
//   - err:   a sentinel error if the inputs are invalid or the source maps
//     outside the grid. No partially propagated field is ever returned.
//
// Preconditions and validation (in order):
//  1. dom must validate (grid.ErrBadExtent / grid.ErrBadSpacing).
//  2. speed must be non-nil and non-empty (ErrEmptyGrid).
//  3. speed dimensions must match dom (ErrGridMismatch).
//  4. every speed cell must be > 0 (ErrNonPositiveSpeed).
//  5. source must map into the grid (ErrOutOfBounds).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Propagate(dom grid.Domain, speed *grid.Grid, source orb.Point, opts ...Option) (*Field, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the domain before touching the grid.
	if err := dom.Validate(); err != nil {
		return nil, err
	}

	// 3) Validate the speed grid shape.
	if speed == nil || speed.Len() == 0 {
		return nil, ErrEmptyGrid
	}
	if speed.NX() != dom.NX() || speed.NY() != dom.NY() {
		return nil, fmt.Errorf("%w: grid %d×%d, domain %d×%d",
			ErrGridMismatch, speed.NX(), speed.NY(), dom.NX(), dom.NY())
	}

	// 4) Pre-scan for non-positive speeds. Fail fast: a cell ≤ 0 would turn
	//    an edge weight infinite or negative and break the relaxation.
	if speed.Min() <= 0 {
		return nil, ErrNonPositiveSpeed
	}

	// 5) Map the source point; out-of-bounds is a recoverable input error.
	sx, sy, ok := dom.Locate(source)
	if !ok {
		return nil, fmt.Errorf("%w: (%g, %g)", ErrOutOfBounds, source.X(), source.Y())
	}

	// 6) Initialize every travel time to +Inf except the source cell.
	times, err := dom.NewGrid()
	if err != nil {
		return nil, err
	}
	times.Fill(math.Inf(1))
	times.Set(sx, sy, 0)

	r := &runner{
		cfg:   cfg,
		speed: speed,
		times: times,
		// Axis-aligned and diagonal step lengths; divided by the destination
		// cell's speed during relaxation.
		straight: dom.Spacing,
		diagonal: dom.Spacing * math.Sqrt2,
	}
	r.run(times.Index(sx, sy))

	return &Field{dom: dom, source: source, times: times}, nil
}

// runner holds the mutable state for a single propagation.
type runner struct {
	cfg      Options
	speed    *grid.Grid // read-only within Propagate
	times    *grid.Grid // travel times under construction
	straight float64    // weight numerator for 4-direction steps
	diagonal float64    // weight numerator for 8-direction steps
	pq       cellPQ     // min-heap of candidate frontier entries
}

// run executes the main Dijkstra loop from the seeded source cell.
//
// Loop invariants:
//
//   - Every popped entry whose time matches the cell's recorded best is
//     final (non-negative weights).
//   - Stale duplicates (time greater than the recorded best) are discarded.
//   - Relaxation updates strictly smaller times only, so equal-cost ties
//     never churn the heap and the final field is tie-break insensitive.
func (r *runner) run(sourceIdx int) {
	offsets := r.cfg.Conn.Offsets()

	heap.Init(&r.pq)
	heap.Push(&r.pq, cellItem{index: sourceIdx, time: 0})

	for r.pq.Len() > 0 {
		// 1) Pop the smallest-time frontier entry.
		item := heap.Pop(&r.pq).(cellItem)
		x, y := r.times.Coordinate(item.index)

		// 2) Discard stale entries from the lazy-decrease-key pattern.
		if item.time > r.times.At(x, y) {
			continue
		}

		// 3) Relax all neighbors, charging the destination cell's speed.
		for _, d := range offsets {
			nx, ny := x+d[0], y+d[1]
			if !r.times.InBounds(nx, ny) {
				continue
			}

			step := r.straight
			if d[0] != 0 && d[1] != 0 {
				step = r.diagonal
			}
			cand := item.time + step/r.speed.At(nx, ny)

			// Candidates past the time cap are never written, so capped
			// cells stay +Inf and report unreached.
			if cand > r.cfg.MaxTime {
				continue
			}

			if cand < r.times.At(nx, ny) {
				r.times.Set(nx, ny, cand)
				heap.Push(&r.pq, cellItem{index: r.times.Index(nx, ny), time: cand})
			}
		}
	}
}
