// Package planner wires the speed-field builder, the wavefront propagator,
// and the path extractor behind a single stateful facade.
package planner

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/paulmach/orb"

	"github.com/katalvlaran/eikonal/descent"
	"github.com/katalvlaran/eikonal/field"
	"github.com/katalvlaran/eikonal/grid"
	"github.com/katalvlaran/eikonal/obstacle"
	"github.com/katalvlaran/eikonal/wavefront"
)

// tracer writes to the trace with key 'eikonal.planner'.
func tracer() tracing.Trace {
	return tracing.Select("eikonal.planner")
}

// Planner owns the solver state: configuration, obstacle set, endpoints, and
// the cached speed and travel-time grids. Mutations invalidate the caches;
// queries rebuild them lazily and wholesale, never patching in place.
//
// Planner is not safe for concurrent use.
type Planner struct {
	cfg   Config
	obs   *obstacle.Set
	start *orb.Point
	end   *orb.Point

	speed *grid.Grid       // nil until the next SpeedField call
	tt    *wavefront.Field // nil until the next TravelTime call
}

// New returns a Planner for the given configuration with no obstacles and no
// endpoints. Returns the first configuration validation error, if any.
func New(cfg Config) (*Planner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Planner{cfg: cfg, obs: obstacle.NewSet()}, nil
}

// Config returns the immutable configuration of the planner.
func (p *Planner) Config() Config { return p.cfg }

//----------------------------------------------------------------------------//
// Obstacle mutations
//----------------------------------------------------------------------------//

// AddRectangle adds an axis-aligned rectangle obstacle and returns its
// assigned identifier.
func (p *Planner) AddRectangle(r obstacle.Rectangle) (string, error) {
	id, err := p.obs.Add(r)
	if err != nil {
		return "", err
	}
	p.invalidate()

	return id, nil
}

// AddCircle adds a circular obstacle and returns its assigned identifier.
func (p *Planner) AddCircle(c obstacle.Circle) (string, error) {
	id, err := p.obs.Add(c)
	if err != nil {
		return "", err
	}
	p.invalidate()

	return id, nil
}

// Remove deletes the obstacle with the given identifier.
// Returns obstacle.ErrUnknownObstacle if no obstacle carries it.
func (p *Planner) Remove(id string) error {
	if err := p.obs.Remove(id); err != nil {
		return err
	}
	p.invalidate()

	return nil
}

// Update replaces the shape of an existing obstacle, keeping its identifier
// and its position in the stamping order.
func (p *Planner) Update(id string, sh obstacle.Shape) error {
	if err := p.obs.Update(id, sh); err != nil {
		return err
	}
	p.invalidate()

	return nil
}

// Obstacles returns the current obstacle list in stamping order.
func (p *Planner) Obstacles() []obstacle.Obstacle { return p.obs.List() }

// ObstaclesAt returns the obstacles containing p, in stamping order. Useful
// for hit testing under a pointer.
func (p *Planner) ObstaclesAt(pt orb.Point) []obstacle.Obstacle { return p.obs.At(pt) }

//----------------------------------------------------------------------------//
// Endpoints
//----------------------------------------------------------------------------//

// SetStart places the path start point. The cached travel-time field stays
// valid: it depends only on the destination.
func (p *Planner) SetStart(pt orb.Point) {
	p.start = &pt
}

// SetEnd places the path destination and drops the cached travel-time field.
func (p *Planner) SetEnd(pt orb.Point) {
	p.end = &pt
	p.tt = nil
}

// ClearEndpoints removes both endpoints and drops the cached travel-time
// field. Obstacles and the speed field are unaffected.
func (p *Planner) ClearEndpoints() {
	p.start, p.end = nil, nil
	p.tt = nil
}

// Start returns the start point, if set.
func (p *Planner) Start() (orb.Point, bool) {
	if p.start == nil {
		return orb.Point{}, false
	}

	return *p.start, true
}

// End returns the destination point, if set.
func (p *Planner) End() (orb.Point, bool) {
	if p.end == nil {
		return orb.Point{}, false
	}

	return *p.end, true
}

//----------------------------------------------------------------------------//
// Queries
//----------------------------------------------------------------------------//

// SpeedField returns the speed grid for the current obstacle set, rebuilding
// it if a mutation invalidated the cache. Callers must treat the grid as
// read-only; the planner owns it until the next mutation.
func (p *Planner) SpeedField() (*grid.Grid, error) {
	if p.speed != nil {
		return p.speed, nil
	}

	g, err := field.Build(p.cfg.Domain(), p.obs.List(), p.cfg.FieldOptions())
	if err != nil {
		return nil, err
	}
	p.speed = g
	tracer().Debugf("rebuilt speed field: %d obstacle(s)", p.obs.Len())

	return g, nil
}

// TravelTime returns the travel-time field from the current destination,
// propagating it if the cache is stale. Returns ErrNoDestination before
// SetEnd; propagation errors pass through unchanged.
func (p *Planner) TravelTime() (*wavefront.Field, error) {
	if p.end == nil {
		return nil, ErrNoDestination
	}
	if p.tt != nil {
		return p.tt, nil
	}

	speed, err := p.SpeedField()
	if err != nil {
		return nil, err
	}
	f, err := wavefront.Propagate(p.cfg.Domain(), speed, *p.end)
	if err != nil {
		return nil, err
	}
	p.tt = f

	return f, nil
}

// Plan extracts the path from the start point to the destination over the
// current obstacle set.
//
// A missing endpoint yields an empty, incomplete Result with no error: the
// query is well-formed, there is just nothing to plan yet. Field, propagation,
// and extraction errors pass through unchanged.
func (p *Planner) Plan() (descent.Result, error) {
	// 1) Nothing to plan without both endpoints.
	if p.start == nil || p.end == nil {
		return descent.Result{Path: orb.LineString{}}, nil
	}

	// 2) Reuse or rebuild the travel-time field from the destination.
	f, err := p.TravelTime()
	if err != nil {
		return descent.Result{}, err
	}

	// 3) Walk downhill from the start.
	opts := descent.DefaultOptions()
	opts.Mode = p.cfg.Mode
	res, err := descent.Extract(f, *p.start, opts)
	if err != nil {
		return descent.Result{}, err
	}
	tracer().Debugf("planned path: %d waypoint(s), complete=%t", len(res.Path), res.Complete)

	return res, nil
}

// invalidate drops both cached grids after an obstacle mutation.
func (p *Planner) invalidate() {
	p.speed = nil
	p.tt = nil
}
