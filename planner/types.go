// Package planner defines the Config record and the sentinel errors of the
// solver facade of github.com/katalvlaran/eikonal.
package planner

import (
	"errors"

	"github.com/katalvlaran/eikonal/descent"
	"github.com/katalvlaran/eikonal/field"
	"github.com/katalvlaran/eikonal/grid"
)

// Sentinel errors for the planner facade.
var (
	// ErrNoDestination indicates a travel-time query before SetEnd.
	ErrNoDestination = errors.New("planner: destination must be set before propagation")
)

// Config fixes the domain geometry and the solver tunables for the lifetime
// of a Planner. Changing any of them means constructing a new Planner;
// obstacles and endpoints stay mutable.
//
// Fields:
//   - DomainWidth, DomainHeight — continuous extent, must be > 0.
//   - CellSpacing   — grid-line spacing, must be > 0.
//   - ObstacleSpeed — traversal speed inside obstacle footprints, in (0, 1).
//   - SmoothRadius  — circle ramp width and box-filter trigger, ≥ 0.
//   - Mode          — path extraction mode for Plan.
type Config struct {
	DomainWidth   float64
	DomainHeight  float64
	CellSpacing   float64
	ObstacleSpeed float64
	SmoothRadius  float64
	Mode          descent.Mode
}

// DefaultConfig returns the reference configuration: a 10×8 domain at 0.1
// spacing with the default obstacle speed and smoothing radius, extracting
// discrete paths.
func DefaultConfig() Config {
	return Config{
		DomainWidth:   10,
		DomainHeight:  8,
		CellSpacing:   0.1,
		ObstacleSpeed: field.DefaultObstacleSpeed,
		SmoothRadius:  field.DefaultSmoothRadius,
		Mode:          descent.ModeDiscrete,
	}
}

// Domain returns the grid domain described by the configuration.
func (c Config) Domain() grid.Domain {
	return grid.Domain{Width: c.DomainWidth, Height: c.DomainHeight, Spacing: c.CellSpacing}
}

// FieldOptions returns the speed-field builder options described by the
// configuration.
func (c Config) FieldOptions() field.Options {
	return field.Options{ObstacleSpeed: c.ObstacleSpeed, SmoothRadius: c.SmoothRadius}
}

// Validate reports the first violated configuration constraint, if any.
// Domain, builder, and mode constraints are checked in that order, with the
// sentinel errors of their owning packages.
func (c Config) Validate() error {
	if err := c.Domain().Validate(); err != nil {
		return err
	}
	if err := c.FieldOptions().Validate(); err != nil {
		return err
	}
	if c.Mode != descent.ModeDiscrete && c.Mode != descent.ModeContinuous {
		return descent.ErrBadMode
	}

	return nil
}
