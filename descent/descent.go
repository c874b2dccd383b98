// Package descent implements gradient-descent path extraction over
// travel-time fields.
package descent

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/eikonal/grid"
	"github.com/katalvlaran/eikonal/wavefront"
)

// Extract walks the travel-time field from the start point toward the
// field's source (the destination of the path query) and returns the
// waypoint sequence.
//
// A missing enclosing cell for the start (out of grid bounds) yields an
// empty, incomplete Result with no error: it is an expected input state.
// Extraction never exceeds nx×ny steps.
//
// Complexity: O(nx×ny) worst case.
func Extract(f *wavefront.Field, start orb.Point, opts Options) (Result, error) {
	// 1) Validate inputs.
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	if f == nil {
		return Result{}, ErrNilField
	}

	// 2) An out-of-bounds start yields an empty path, not an error.
	sx, sy, ok := f.Domain().Locate(start)
	if !ok {
		return Result{Path: orb.LineString{}}, nil
	}

	// 3) Walk the field in the selected mode.
	var path orb.LineString
	if opts.Mode == ModeContinuous {
		path = extractContinuous(f, start)
	} else {
		path = extractDiscrete(f, sx, sy)
	}

	// 4) Completeness: did the walk actually close on the destination? The
	//    exact destination point is appended on arrival, so matching within
	//    tolerance distinguishes arrival from a truncated walk.
	res := Result{
		Path:     path,
		Complete: len(path) > 0 && planar.Distance(path[len(path)-1], f.Source()) <= arrivalTolerance,
	}

	// 5) Cosmetic smoothing: always in continuous mode, opt-in in discrete.
	//    Endpoints are never moved, so completeness is unaffected.
	if opts.Mode == ModeContinuous || opts.Smooth {
		res.Path = relax(res.Path, opts.SmoothFactor)
	}

	return res, nil
}

// extractDiscrete steps cell-to-cell from (sx, sy) toward the source cell,
// recording cell origins as waypoints.
func extractDiscrete(f *wavefront.Field, sx, sy int) orb.LineString {
	dom := f.Domain()
	gx, gy, _ := dom.Locate(f.Source())
	offsets := grid.Conn8.Offsets()

	x, y := sx, sy
	path := make(orb.LineString, 0, 16)
	budget := f.Times().Len()

	for step := 0; step < budget; step++ {
		path = append(path, dom.CellOrigin(x, y))

		// Arrived once within one cell of the destination index; the exact
		// destination point closes the path.
		if abs(x-gx) <= 1 && abs(y-gy) <= 1 {
			return append(path, f.Source())
		}

		// Inspect the 8 neighbors plus the cell itself; move only on strict
		// improvement.
		bx, by, improved := bestNeighbor(f, x, y, offsets)
		if !improved {
			break // local minimum or plateau: no further improvement
		}
		x, y = bx, by
	}

	return path
}

// extractContinuous advances a continuous cursor by half a cell spacing per
// axis in the best neighbor direction of the enclosing cell.
func extractContinuous(f *wavefront.Field, start orb.Point) orb.LineString {
	dom := f.Domain()
	goal := f.Source()
	offsets := grid.Conn8.Offsets()

	arrive := arrivalRadiusCells * dom.Spacing
	stride := cursorStepCells * dom.Spacing
	maxX := dom.Width - dom.Spacing
	maxY := dom.Height - dom.Spacing

	cur := start
	path := orb.LineString{cur}
	budget := f.Times().Len()

	for step := 0; step < budget; step++ {
		if planar.Distance(cur, goal) < arrive {
			return append(path, goal)
		}

		x, y, ok := dom.Locate(cur)
		if !ok {
			break // clamping keeps the cursor inside the domain
		}
		bx, by, improved := bestNeighbor(f, x, y, offsets)
		if !improved {
			break
		}

		cur = orb.Point{
			clamp(cur.X()+float64(bx-x)*stride, 0, maxX),
			clamp(cur.Y()+float64(by-y)*stride, 0, maxY),
		}
		path = append(path, cur)
	}

	return path
}

// bestNeighbor returns the in-bounds neighbor of (x, y) with the strictly
// smallest travel time. improved is false when no neighbor beats the cell
// itself.
func bestNeighbor(f *wavefront.Field, x, y int, offsets [][2]int) (bx, by int, improved bool) {
	best := f.At(x, y)
	bx, by = x, y
	for _, d := range offsets {
		nx, ny := x+d[0], y+d[1]
		if !f.Times().InBounds(nx, ny) {
			continue
		}
		if t := f.At(nx, ny); t < best {
			best, bx, by = t, nx, ny
		}
	}

	return bx, by, bx != x || by != y
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
