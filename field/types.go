// Package field defines the options and sentinel errors of the speed-field
// builder of github.com/katalvlaran/eikonal.
package field

import (
	"errors"
)

// Sentinel errors for speed-field construction.
var (
	// ErrBadObstacleSpeed indicates an obstacle speed outside the open interval (0, 1).
	ErrBadObstacleSpeed = errors.New("field: obstacle speed must lie in (0, 1)")
	// ErrBadSmoothRadius indicates a negative smoothing radius.
	ErrBadSmoothRadius = errors.New("field: smooth radius must be non-negative")
)

// Defaults for speed-field construction.
const (
	// DefaultObstacleSpeed is the traversal speed inside obstacles. Small but
	// strictly positive: obstacles are near-impassable, never disconnecting.
	DefaultObstacleSpeed = 0.001
	// DefaultSmoothRadius is the width of the circle transition band and the
	// trigger for the 3×3 box-filter pass.
	DefaultSmoothRadius = 0.3
)

// Options contains the tunable parameters of the speed-field builder.
//
// Fields:
//   - ObstacleSpeed — per-cell speed inside an obstacle footprint; must lie
//     in (0, 1). 1 would erase obstacles; 0 would make edge weights infinite.
//   - SmoothRadius  — width of the linear ramp around circle obstacles and,
//     when ⌊SmoothRadius/Spacing⌋ > 0, the trigger of the box-filter pass;
//     must be ≥ 0.
type Options struct {
	ObstacleSpeed float64
	SmoothRadius  float64
}

// DefaultOptions returns Options with the default obstacle speed and
// smoothing radius.
func DefaultOptions() Options {
	return Options{
		ObstacleSpeed: DefaultObstacleSpeed,
		SmoothRadius:  DefaultSmoothRadius,
	}
}

// Validate reports the first violated option constraint, if any.
func (o Options) Validate() error {
	if o.ObstacleSpeed <= 0 || o.ObstacleSpeed >= 1 {
		return ErrBadObstacleSpeed
	}
	if o.SmoothRadius < 0 {
		return ErrBadSmoothRadius
	}

	return nil
}
