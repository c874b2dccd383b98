// Package grid defines shared types, connectivity offsets, and sentinel
// errors for the grid subpackage of github.com/katalvlaran/eikonal.
package grid

import (
	"errors"
)

// Sentinel errors for grid and domain construction.
var (
	// ErrBadSpacing indicates a non-positive cell spacing.
	ErrBadSpacing = errors.New("grid: cell spacing must be positive")
	// ErrBadExtent indicates a non-positive domain width or height.
	ErrBadExtent = errors.New("grid: domain extent must be positive")
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including
// diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// conn4Offsets and conn8Offsets hold the precomputed (dx, dy) neighbor
// offsets. They must never be mutated by callers.
var (
	conn4Offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	conn8Offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Offsets returns the neighbor offsets for the connectivity as (dx, dy)
// pairs. Should be used in all adjacency traversals to avoid branching.
// Complexity: O(1).
func (c Connectivity) Offsets() [][2]int {
	if c == Conn8 {
		return conn8Offsets
	}

	return conn4Offsets
}
