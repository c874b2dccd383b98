package wavefront_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eikonal/field"
	"github.com/katalvlaran/eikonal/grid"
	"github.com/katalvlaran/eikonal/obstacle"
	"github.com/katalvlaran/eikonal/wavefront"
)

// freeSpeed returns a unit-speed grid for the domain.
func freeSpeed(t *testing.T, dom grid.Domain) *grid.Grid {
	t.Helper()
	g, err := dom.NewGrid()
	require.NoError(t, err)
	g.Fill(1)

	return g
}

//----------------------------------------------------------------------------//
// Validation tests
//----------------------------------------------------------------------------//

// TestPropagate_Validation walks the precondition ladder in order.
func TestPropagate_Validation(t *testing.T) {
	dom := grid.Domain{Width: 4, Height: 4, Spacing: 1}
	speed := freeSpeed(t, dom)

	t.Run("BadDomain", func(t *testing.T) {
		_, err := wavefront.Propagate(grid.Domain{Width: 4, Height: 4}, speed, orb.Point{0, 0})
		assert.ErrorIs(t, err, grid.ErrBadSpacing)
	})

	t.Run("NilGrid", func(t *testing.T) {
		_, err := wavefront.Propagate(dom, nil, orb.Point{0, 0})
		assert.ErrorIs(t, err, wavefront.ErrEmptyGrid)
	})

	t.Run("Mismatch", func(t *testing.T) {
		small, err := grid.New(2, 2)
		require.NoError(t, err)
		small.Fill(1)
		_, err = wavefront.Propagate(dom, small, orb.Point{0, 0})
		assert.ErrorIs(t, err, wavefront.ErrGridMismatch)
	})

	t.Run("NonPositiveSpeed", func(t *testing.T) {
		bad := freeSpeed(t, dom)
		bad.Set(1, 1, 0)
		_, err := wavefront.Propagate(dom, bad, orb.Point{0, 0})
		assert.ErrorIs(t, err, wavefront.ErrNonPositiveSpeed)
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		_, err := wavefront.Propagate(dom, speed, orb.Point{2, 9})
		assert.ErrorIs(t, err, wavefront.ErrOutOfBounds)
	})
}

//----------------------------------------------------------------------------//
// Free-space propagation
//----------------------------------------------------------------------------//

// TestPropagate_FreeSpaceOctile checks that with speed ≡ 1 propagation
// reduces to shortest path in the 8-connected grid: straight steps cost the
// spacing, diagonal steps cost spacing·√2, and the distance to (dx, dy) is
// the octile metric |dx−dy| + min(dx,dy)·√2.
func TestPropagate_FreeSpaceOctile(t *testing.T) {
	dom := grid.Domain{Width: 4, Height: 4, Spacing: 1}
	f, err := wavefront.Propagate(dom, freeSpeed(t, dom), orb.Point{0, 0})
	require.NoError(t, err)

	assert.Equal(t, 0.0, f.At(0, 0), "source cell")
	assert.InDelta(t, 3, f.At(3, 0), 1e-9, "pure horizontal run")
	assert.InDelta(t, 4, f.At(0, 4), 1e-9, "pure vertical run")
	assert.InDelta(t, 2*math.Sqrt2, f.At(2, 2), 1e-9, "pure diagonal run")
	assert.InDelta(t, 2+math.Sqrt2, f.At(3, 1), 1e-9, "mixed run")

	// Octile never undershoots Euclidean and overshoots by at most ~8.24%.
	for y := 0; y < dom.NY(); y++ {
		for x := 0; x < dom.NX(); x++ {
			euclid := math.Hypot(float64(x), float64(y))
			got := f.At(x, y)
			assert.GreaterOrEqual(t, got, euclid-1e-9, "cell (%d,%d)", x, y)
			assert.LessOrEqual(t, got, euclid*1.0824+1e-9, "cell (%d,%d)", x, y)
		}
	}
}

// TestPropagate_BellmanOptimality verifies that every reached non-source cell
// satisfies t[c] = min over in-bound neighbors of t[n] + w(n→c), i.e. travel
// time is non-decreasing along every shortest-path tree edge.
func TestPropagate_BellmanOptimality(t *testing.T) {
	dom := grid.Domain{Width: 6, Height: 6, Spacing: 0.5}
	obstacles := []obstacle.Obstacle{
		{ID: "r", Shape: obstacle.Rectangle{X: 2, Y: 2, Width: 2, Height: 2}},
		{ID: "c", Shape: obstacle.Circle{CX: 1, CY: 4, Radius: 0.8}},
	}
	speed, err := field.Build(dom, obstacles, field.Options{ObstacleSpeed: 0.001, SmoothRadius: 0})
	require.NoError(t, err)

	f, err := wavefront.Propagate(dom, speed, orb.Point{5.5, 5.5})
	require.NoError(t, err)

	sx, sy, _ := dom.Locate(orb.Point{5.5, 5.5})
	for y := 0; y < dom.NY(); y++ {
		for x := 0; x < dom.NX(); x++ {
			if (x == sx && y == sy) || !f.Reached(x, y) {
				continue
			}
			best := math.Inf(1)
			for _, d := range grid.Conn8.Offsets() {
				nx, ny := x+d[0], y+d[1]
				if !speed.InBounds(nx, ny) {
					continue
				}
				step := dom.Spacing
				if d[0] != 0 && d[1] != 0 {
					step = dom.Spacing * math.Sqrt2
				}
				best = math.Min(best, f.At(nx, ny)+step/speed.At(x, y))
			}
			assert.InDelta(t, best, f.At(x, y), 1e-9, "cell (%d,%d) violates optimality", x, y)
		}
	}
}

//----------------------------------------------------------------------------//
// Obstacles and options
//----------------------------------------------------------------------------//

// TestPropagate_BlockingWall places a full-height near-impassable wall
// between source and target: crossing must cost far more than the
// unobstructed straight-line equivalent.
func TestPropagate_BlockingWall(t *testing.T) {
	dom := grid.Domain{Width: 10, Height: 8, Spacing: 0.2}
	wall := []obstacle.Obstacle{
		{ID: "w", Shape: obstacle.Rectangle{X: 4.6, Y: 0, Width: 0.4, Height: 8}},
	}
	speed, err := field.Build(dom, wall, field.Options{ObstacleSpeed: 0.001, SmoothRadius: 0})
	require.NoError(t, err)

	source := orb.Point{1, 4}
	blocked, err := wavefront.Propagate(dom, speed, source)
	require.NoError(t, err)
	free, err := wavefront.Propagate(dom, freeSpeed(t, dom), source)
	require.NoError(t, err)

	// Target on the far side of the wall.
	tx, ty, ok := dom.Locate(orb.Point{9, 4})
	require.True(t, ok)
	require.True(t, blocked.Reached(tx, ty), "slow cells are near-impassable, not disconnecting")
	assert.Greater(t, blocked.At(tx, ty), 10*free.At(tx, ty),
		"crossing the wall must dwarf the unobstructed travel time")
}

// TestPropagate_Conn4 drops the diagonal stencil: the diagonal cell costs
// two straight steps.
func TestPropagate_Conn4(t *testing.T) {
	dom := grid.Domain{Width: 4, Height: 4, Spacing: 1}
	f, err := wavefront.Propagate(dom, freeSpeed(t, dom), orb.Point{0, 0},
		wavefront.WithConnectivity(grid.Conn4))
	require.NoError(t, err)

	assert.InDelta(t, 2, f.At(1, 1), 1e-9)
	assert.InDelta(t, 8, f.At(4, 4), 1e-9)
}

// TestPropagate_MaxTime leaves every cell whose travel time would exceed the
// cap unreached, including the first ring past it.
func TestPropagate_MaxTime(t *testing.T) {
	dom := grid.Domain{Width: 10, Height: 10, Spacing: 1}
	f, err := wavefront.Propagate(dom, freeSpeed(t, dom), orb.Point{0, 0},
		wavefront.WithMaxTime(3))
	require.NoError(t, err)

	assert.True(t, f.Reached(3, 0), "cell exactly at the cap")
	assert.InDelta(t, 3, f.At(3, 0), 1e-9)

	// The frontier must not spill over: neighbors of in-cap cells whose
	// candidate time exceeds the cap stay +Inf.
	assert.False(t, f.Reached(4, 0), "first straight cell past the cap")
	assert.True(t, math.IsInf(f.At(4, 0), 1))
	assert.False(t, f.Reached(3, 1), "octile time 2+√2 exceeds the cap")
	assert.False(t, f.Reached(9, 9), "cell far beyond the cap")
}

// TestPropagate_SourceCharging verifies the asymmetric weighting: stepping
// into a slow cell costs the slow rate, stepping out of it costs the fast
// destination rate.
func TestPropagate_SourceCharging(t *testing.T) {
	// Single-row domain: ⌊0.4/0.5⌋+1 = 1, so only straight steps exist.
	dom := grid.Domain{Width: 2, Height: 0.4, Spacing: 0.5}
	speed, err := grid.FromRows([][]float64{
		{1, 0.5, 1, 1, 1},
	})
	require.NoError(t, err)

	f, err := wavefront.Propagate(dom, speed, orb.Point{0, 0})
	require.NoError(t, err)

	// Into the slow cell: 0.5/0.5 = 1. Out of it into a fast cell: 0.5/1.
	assert.InDelta(t, 1.0, f.At(1, 0), 1e-9)
	assert.InDelta(t, 1.5, f.At(2, 0), 1e-9)
}
