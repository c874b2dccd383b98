// Package field implements the speed-field builder: obstacle geometry in,
// dense grid of traversal speeds out.
package field

import (
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/eikonal/grid"
	"github.com/katalvlaran/eikonal/obstacle"
)

// tracer writes to the trace with key 'eikonal.field'.
func tracer() tracing.Trace {
	return tracing.Select("eikonal.field")
}

// Build constructs the speed grid for the domain from the obstacle list.
//
// Stamping runs in list order with unconditional writes (last-write-wins per
// cell), then a single 3×3 box-filter pass smooths the interior when
// ⌊SmoothRadius/Spacing⌋ > 0. See the package documentation for the exact
// per-shape rules.
//
// The returned grid is freshly allocated on every call; callers own it.
// Building twice with identical inputs yields bit-identical grids.
//
// Complexity: O(nx×ny) time and memory.
func Build(dom grid.Domain, obstacles []obstacle.Obstacle, opts Options) (*grid.Grid, error) {
	// 1) Reject invalid configuration before any grid allocation.
	if err := dom.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	// 2) Start from free space everywhere.
	g, err := dom.NewGrid()
	if err != nil {
		return nil, err
	}
	g.Fill(1)

	// 3) Stamp obstacles in list order. Later footprints overwrite earlier
	//    ones unconditionally.
	for _, ob := range obstacles {
		switch sh := ob.Shape.(type) {
		case obstacle.Rectangle:
			stampRectangle(dom, g, sh, opts)
		case obstacle.Circle:
			stampCircle(dom, g, sh, opts)
		}
	}

	// 4) One smoothing pass over the interior, borders untouched.
	if int(math.Floor(opts.SmoothRadius/dom.Spacing)) > 0 {
		boxSmooth(g)
	}

	tracer().Debugf("built %d×%d speed field from %d obstacle(s)", g.NX(), g.NY(), len(obstacles))

	return g, nil
}

// stampRectangle sets every cell whose continuous coordinate falls within the
// closed rectangle bounds to ObstacleSpeed. Hard edge, no falloff.
func stampRectangle(dom grid.Domain, g *grid.Grid, r obstacle.Rectangle, opts Options) {
	// Index window covering the footprint; the closed-bounds predicate below
	// filters the fringe cells whose origin lies just outside.
	x0 := clampIndex(int(math.Floor(r.X/dom.Spacing)), g.NX())
	x1 := clampIndex(int(math.Floor((r.X+r.Width)/dom.Spacing)), g.NX())
	y0 := clampIndex(int(math.Floor(r.Y/dom.Spacing)), g.NY())
	y1 := clampIndex(int(math.Floor((r.Y+r.Height)/dom.Spacing)), g.NY())

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if r.Contains(dom.CellOrigin(x, y)) {
				g.Set(x, y, opts.ObstacleSpeed)
			}
		}
	}
}

// stampCircle sets cells within the radius to ObstacleSpeed and writes the
// linear ramp max(ObstacleSpeed, (d−r)/SmoothRadius) into the transition
// band. All writes are unconditional within the footprint.
func stampCircle(dom grid.Domain, g *grid.Grid, c obstacle.Circle, opts Options) {
	center := orb.Point{c.CX, c.CY}
	reach := c.Radius + opts.SmoothRadius

	x0 := clampIndex(int(math.Floor((c.CX-reach)/dom.Spacing)), g.NX())
	x1 := clampIndex(int(math.Floor((c.CX+reach)/dom.Spacing)), g.NX())
	y0 := clampIndex(int(math.Floor((c.CY-reach)/dom.Spacing)), g.NY())
	y1 := clampIndex(int(math.Floor((c.CY+reach)/dom.Spacing)), g.NY())

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			d := planar.Distance(dom.CellOrigin(x, y), center)
			switch {
			case d <= c.Radius:
				g.Set(x, y, opts.ObstacleSpeed)
			case opts.SmoothRadius > 0 && d <= reach:
				g.Set(x, y, math.Max(opts.ObstacleSpeed, (d-c.Radius)/opts.SmoothRadius))
			}
		}
	}
}

// boxSmooth applies one 3×3 box-filter pass to every interior cell, averaging
// the 8 neighbors and the cell itself. It reads from an immutable snapshot of
// the pre-pass grid, so the result is independent of traversal order. Border
// rows and columns are left unmodified.
func boxSmooth(g *grid.Grid) {
	if g.NX() < 3 || g.NY() < 3 {
		return // no interior cells
	}
	src := g.Clone()
	for y := 1; y < g.NY()-1; y++ {
		for x := 1; x < g.NX()-1; x++ {
			sum := 0.0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					sum += src.At(x+dx, y+dy)
				}
			}
			g.Set(x, y, sum/9)
		}
	}
}

// clampIndex clamps i into [0, n-1].
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}

	return i
}
