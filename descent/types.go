// Package descent defines the extraction modes, options, sentinel errors,
// and the Result type for the path extractor of
// github.com/katalvlaran/eikonal.
package descent

import (
	"errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Sentinel errors for path extraction.
var (
	// ErrNilField indicates that no travel-time field was supplied.
	ErrNilField = errors.New("descent: travel-time field must be non-nil")
	// ErrBadMode indicates an unknown extraction mode.
	ErrBadMode = errors.New("descent: unknown extraction mode")
	// ErrBadSmoothFactor indicates a smoothing factor outside [0, 0.5).
	ErrBadSmoothFactor = errors.New("descent: smooth factor must lie in [0, 0.5)")
)

// Mode selects how the extractor advances along the travel-time surface.
type Mode int

const (
	// ModeDiscrete steps cell-to-cell; waypoints are cell origins.
	ModeDiscrete Mode = iota
	// ModeContinuous advances a continuous cursor by half a cell spacing per
	// step and smooths the result by default.
	ModeContinuous
)

// Mode string forms, used in serialized snapshots.
const (
	modeDiscreteName   = "discrete"
	modeContinuousName = "continuous"
)

// String returns the snapshot form of the mode.
func (m Mode) String() string {
	if m == ModeContinuous {
		return modeContinuousName
	}

	return modeDiscreteName
}

// ParseMode maps a snapshot string back to a Mode.
// Returns ErrBadMode for unknown names.
func ParseMode(s string) (Mode, error) {
	switch s {
	case modeDiscreteName:
		return ModeDiscrete, nil
	case modeContinuousName:
		return ModeContinuous, nil
	default:
		return 0, ErrBadMode
	}
}

// Extraction constants.
const (
	// DefaultSmoothFactor is the tangent-nudge strength α of the relaxation
	// pass.
	DefaultSmoothFactor = 0.25

	// arrivalRadiusCells is the continuous-mode stop distance in cell
	// spacings.
	arrivalRadiusCells = 1.5

	// cursorStepCells is the continuous-mode advance per axis in cell
	// spacings.
	cursorStepCells = 0.5

	// arrivalTolerance decides whether the final waypoint matches the
	// destination, i.e. whether the path is complete.
	arrivalTolerance = 1e-9
)

// Options configures path extraction.
//
// Fields:
//   - Mode         — ModeDiscrete or ModeContinuous.
//   - Smooth       — apply the relaxation pass in discrete mode too.
//     Continuous mode always smooths.
//   - SmoothFactor — tangent-nudge strength α; must lie in [0, 0.5) so a
//     waypoint never crosses its neighbors.
type Options struct {
	Mode         Mode
	Smooth       bool
	SmoothFactor float64
}

// DefaultOptions returns Options for discrete extraction without smoothing,
// at the default smoothing strength when enabled.
func DefaultOptions() Options {
	return Options{
		Mode:         ModeDiscrete,
		Smooth:       false,
		SmoothFactor: DefaultSmoothFactor,
	}
}

// Validate reports the first violated option constraint, if any.
func (o Options) Validate() error {
	if o.Mode != ModeDiscrete && o.Mode != ModeContinuous {
		return ErrBadMode
	}
	if o.SmoothFactor < 0 || o.SmoothFactor >= 0.5 {
		return ErrBadSmoothFactor
	}

	return nil
}

// Result is an extracted path.
//
// Path is ordered from start to destination. Complete reports whether the
// final waypoint matches the destination: false means extraction halted at a
// local minimum or exhausted its step budget before arriving ("path
// incomplete" — the destination is unreachable from the start, or the field
// is degenerate). An empty path with Complete=false means the start was
// missing or out of bounds.
type Result struct {
	Path     orb.LineString
	Complete bool
}

// Length returns the total planar length of the path.
func (r Result) Length() float64 {
	return planar.Length(r.Path)
}
