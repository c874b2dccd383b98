// Package grid stores dense rectangular float64 buffers used for both speed
// fields (values in (0,1]) and travel-time fields (non-negative or +Inf).
package grid

import (
	"gonum.org/v1/gonum/floats"
)

// Grid is a dense ny × nx buffer of float64 cells, row-major by the vertical
// axis: cells[y*nx+x]. It is mutable; solver components replace grids
// wholesale rather than patching them incrementally.
type Grid struct {
	nx, ny int
	cells  []float64
}

// New allocates a zero-filled nx × ny grid.
// Returns ErrEmptyGrid when either dimension is not positive.
// Complexity: O(nx×ny) time and memory.
func New(nx, ny int) (*Grid, error) {
	if nx <= 0 || ny <= 0 {
		return nil, ErrEmptyGrid
	}

	return &Grid{nx: nx, ny: ny, cells: make([]float64, nx*ny)}, nil
}

// FromRows constructs a grid from a non-empty, rectangular 2D slice, deep
// copying the input to ensure the grid owns its buffer.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(nx×ny) time and memory.
func FromRows(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	ny, nx := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != nx {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid{nx: nx, ny: ny, cells: make([]float64, nx*ny)}
	for y := 0; y < ny; y++ {
		copy(g.cells[y*nx:(y+1)*nx], rows[y])
	}

	return g, nil
}

// NX returns the number of columns.
func (g *Grid) NX() int { return g.nx }

// NY returns the number of rows.
func (g *Grid) NY() int { return g.ny }

// Len returns the total number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (x, y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.nx && y >= 0 && y < g.ny
}

// At returns the value stored at cell (x, y).
func (g *Grid) At(x, y int) float64 {
	return g.cells[y*g.nx+x]
}

// Set stores v at cell (x, y).
func (g *Grid) Set(x, y int, v float64) {
	g.cells[y*g.nx+x] = v
}

// Index maps (x, y) to a row-major index: y*NX + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.nx + x
}

// Coordinate converts a row-major index back to (x, y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.nx, idx / g.nx
}

// Fill sets every cell to v. Complexity: O(nx×ny).
func (g *Grid) Fill(v float64) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Clone returns a deep copy of the grid. Complexity: O(nx×ny).
func (g *Grid) Clone() *Grid {
	c := &Grid{nx: g.nx, ny: g.ny, cells: make([]float64, len(g.cells))}
	copy(c.cells, g.cells)

	return c
}

// Min returns the smallest cell value. Complexity: O(nx×ny).
func (g *Grid) Min() float64 {
	return floats.Min(g.cells)
}

// Max returns the largest cell value. Complexity: O(nx×ny).
func (g *Grid) Max() float64 {
	return floats.Max(g.cells)
}

// Rows returns the grid as a fresh ny × nx 2D slice, one allocation per row.
// Mutating the result does not affect the grid. Complexity: O(nx×ny).
func (g *Grid) Rows() [][]float64 {
	rows := make([][]float64, g.ny)
	for y := 0; y < g.ny; y++ {
		rows[y] = make([]float64, g.nx)
		copy(rows[y], g.cells[y*g.nx:(y+1)*g.nx])
	}

	return rows
}
