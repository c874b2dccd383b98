// Package wavefront defines options, sentinel errors, and the travel-time
// Field result for the propagator of github.com/katalvlaran/eikonal.
package wavefront

import (
	"errors"
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/eikonal/grid"
)

// Sentinel errors returned by the propagator.
var (
	// ErrOutOfBounds indicates that the source point maps outside the grid.
	ErrOutOfBounds = errors.New("wavefront: source point lies outside the grid")

	// ErrEmptyGrid indicates a speed grid with no cells.
	ErrEmptyGrid = errors.New("wavefront: speed grid must have at least one cell")

	// ErrGridMismatch indicates a speed grid whose dimensions disagree with
	// the domain discretization.
	ErrGridMismatch = errors.New("wavefront: speed grid dimensions do not match the domain")

	// ErrNonPositiveSpeed indicates a speed cell ≤ 0 in the input grid.
	ErrNonPositiveSpeed = errors.New("wavefront: speed grid contains a non-positive cell")

	// ErrBadMaxTime indicates a negative MaxTime option value.
	ErrBadMaxTime = errors.New("wavefront: MaxTime must be non-negative")
)

// Options configures the propagator.
//
// Conn    – neighbor stencil; Conn8 reproduces the solver contract, Conn4 is
// available for coarser, orthogonal-only wavefronts.
// MaxTime – cap on the travel time to explore; cells beyond it stay +Inf.
// Default is +Inf (explore every reachable cell).
type Options struct {
	Conn    grid.Connectivity
	MaxTime float64
}

// Option represents a functional option for configuring Propagate.
type Option func(*Options)

// WithConnectivity selects the neighbor stencil.
func WithConnectivity(c grid.Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}

// WithMaxTime caps the travel time to explore. Cells whose time would exceed
// the cap remain unreached. Must pass a non-negative value; negative values
// panic with ErrBadMaxTime.
func WithMaxTime(t float64) Option {
	return func(o *Options) {
		if t < 0 {
			panic(ErrBadMaxTime.Error())
		}
		o.MaxTime = t
	}
}

// DefaultOptions returns Options with the 8-connected stencil and no time
// cap.
func DefaultOptions() Options {
	return Options{
		Conn:    grid.Conn8,
		MaxTime: math.Inf(1),
	}
}

// Field is a computed travel-time field. It is valid only for the source it
// was computed from; a new source requires a fresh propagation, while a new
// query start point does not.
type Field struct {
	dom    grid.Domain
	source orb.Point
	times  *grid.Grid
}

// Domain returns the domain the field was discretized from.
func (f *Field) Domain() grid.Domain { return f.dom }

// Source returns the continuous point the wavefront expanded from.
func (f *Field) Source() orb.Point { return f.source }

// Times returns the underlying travel-time grid. Callers must treat it as
// read-only; the field owns the buffer.
func (f *Field) Times() *grid.Grid { return f.times }

// At returns the travel time of cell (x, y); +Inf means unreached.
func (f *Field) At(x, y int) float64 { return f.times.At(x, y) }

// Reached reports whether cell (x, y) was reached by the wavefront.
func (f *Field) Reached(x, y int) bool { return !math.IsInf(f.times.At(x, y), 1) }
