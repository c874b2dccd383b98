package grid

import (
	"math"

	"github.com/paulmach/orb"
)

// Domain describes a rectangular extent in continuous coordinates and the
// spacing of the grid lines discretizing it. The zero value is invalid; call
// Validate before allocating grids from it.
type Domain struct {
	Width   float64 // horizontal extent, must be > 0
	Height  float64 // vertical extent, must be > 0
	Spacing float64 // distance between adjacent grid lines, must be > 0
}

// Validate reports whether the domain can be discretized.
// Returns ErrBadExtent for a non-positive extent and ErrBadSpacing for a
// non-positive spacing. Complexity: O(1).
func (d Domain) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return ErrBadExtent
	}
	if d.Spacing <= 0 {
		return ErrBadSpacing
	}

	return nil
}

// NX returns the number of grid columns: ⌊Width/Spacing⌋ + 1.
func (d Domain) NX() int {
	return int(math.Floor(d.Width/d.Spacing)) + 1
}

// NY returns the number of grid rows: ⌊Height/Spacing⌋ + 1.
func (d Domain) NY() int {
	return int(math.Floor(d.Height/d.Spacing)) + 1
}

// Locate maps a continuous point to its enclosing cell by truncation toward
// the lower-left cell: x = ⌊p.X/Spacing⌋, y = ⌊p.Y/Spacing⌋. ok is false when
// the resulting cell lies outside the grid. Complexity: O(1).
func (d Domain) Locate(p orb.Point) (x, y int, ok bool) {
	x = int(math.Floor(p.X() / d.Spacing))
	y = int(math.Floor(p.Y() / d.Spacing))

	return x, y, x >= 0 && x < d.NX() && y >= 0 && y < d.NY()
}

// CellOrigin returns the continuous coordinate of cell (x, y): the lower-left
// grid-line intersection (x*Spacing, y*Spacing). Complexity: O(1).
func (d Domain) CellOrigin(x, y int) orb.Point {
	return orb.Point{float64(x) * d.Spacing, float64(y) * d.Spacing}
}

// Bound returns the continuous extent of the domain as an orb.Bound anchored
// at the origin.
func (d Domain) Bound() orb.Bound {
	return orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{d.Width, d.Height}}
}

// NewGrid allocates a zero-filled NY × NX grid for the domain.
// Returns the validation error of the domain, if any.
// Complexity: O(nx×ny) time and memory.
func (d Domain) NewGrid() (*Grid, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return New(d.NX(), d.NY())
}
