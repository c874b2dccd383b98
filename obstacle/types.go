// Package obstacle defines the sealed shape variant, sentinel errors, and
// the Obstacle record for the obstacle subpackage of
// github.com/katalvlaran/eikonal.
package obstacle

import (
	"errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Sentinel errors for obstacle operations.
var (
	// ErrUnknownObstacle indicates that no obstacle carries the given identifier.
	ErrUnknownObstacle = errors.New("obstacle: no obstacle with the given identifier")
	// ErrDuplicateID indicates an attempt to insert an identifier twice.
	ErrDuplicateID = errors.New("obstacle: identifier already present in the set")
	// ErrNilShape indicates a nil shape was supplied.
	ErrNilShape = errors.New("obstacle: shape must be non-nil")
	// ErrBadShape indicates a shape with non-positive dimensions.
	ErrBadShape = errors.New("obstacle: shape dimensions must be positive")
	// ErrBadShapeType indicates a serialized record with an unknown type tag.
	ErrBadShapeType = errors.New("obstacle: unknown shape type tag")
)

// JSON type tags of the shape variant.
const (
	// TypeRectangle tags serialized Rectangle shapes.
	TypeRectangle = "rectangle"
	// TypeCircle tags serialized Circle shapes.
	TypeCircle = "circle"
)

// Shape is the closed obstacle variant: Rectangle or Circle. The unexported
// method seals the interface so no further variants can appear outside this
// package.
type Shape interface {
	// Bound returns the axis-aligned bounding box of the shape.
	Bound() orb.Bound
	// Contains reports whether p lies inside the shape (closed boundaries).
	Contains(p orb.Point) bool
	// Validate reports ErrBadShape for non-positive dimensions.
	Validate() error

	sealed()
}

// Rectangle is an axis-aligned rectangle anchored at its lower-left origin.
type Rectangle struct {
	X, Y          float64 // lower-left origin
	Width, Height float64 // extents, must be > 0
}

// Bound returns the rectangle itself as an orb.Bound.
func (r Rectangle) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{r.X, r.Y},
		Max: orb.Point{r.X + r.Width, r.Y + r.Height},
	}
}

// Contains reports whether p lies within the closed rectangle bounds.
func (r Rectangle) Contains(p orb.Point) bool {
	return p.X() >= r.X && p.X() <= r.X+r.Width &&
		p.Y() >= r.Y && p.Y() <= r.Y+r.Height
}

// Validate reports ErrBadShape unless both extents are positive.
func (r Rectangle) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return ErrBadShape
	}

	return nil
}

func (Rectangle) sealed() {}

// Circle is a disc described by its center and radius.
type Circle struct {
	CX, CY float64 // center
	Radius float64 // must be > 0
}

// Bound returns the axis-aligned bounding box of the disc.
func (c Circle) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{c.CX - c.Radius, c.CY - c.Radius},
		Max: orb.Point{c.CX + c.Radius, c.CY + c.Radius},
	}
}

// Contains reports whether p lies within the closed disc.
func (c Circle) Contains(p orb.Point) bool {
	return planar.Distance(orb.Point{c.CX, c.CY}, p) <= c.Radius
}

// Validate reports ErrBadShape unless the radius is positive.
func (c Circle) Validate() error {
	if c.Radius <= 0 {
		return ErrBadShape
	}

	return nil
}

func (Circle) sealed() {}

// Obstacle pairs a shape with its unique identifier. Identifiers are assigned
// by Set.Add and remain stable across shape updates.
type Obstacle struct {
	ID    string
	Shape Shape
}
