package planner

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/eikonal/descent"
	"github.com/katalvlaran/eikonal/obstacle"
)

// Snapshot is the serializable state of a Planner: configuration, obstacles
// in stamping order, and the optional endpoints. Points encode as [x, y]
// coordinate pairs; obstacles as tagged records (see the obstacle package).
// The derived grids are not captured, they are rebuilt on demand after
// Restore.
type Snapshot struct {
	Width         float64             `json:"width"`
	Height        float64             `json:"height"`
	CellSpacing   float64             `json:"cellSpacing"`
	ObstacleSpeed float64             `json:"obstacleSpeed"`
	SmoothRadius  float64             `json:"smoothRadius"`
	Mode          string              `json:"mode"`
	Obstacles     []obstacle.Obstacle `json:"obstacles,omitempty"`
	Start         *orb.Point          `json:"start,omitempty"`
	End           *orb.Point          `json:"end,omitempty"`
}

// Snapshot captures the current planner state. The result shares no mutable
// state with the planner and can be marshaled with encoding/json as is.
func (p *Planner) Snapshot() Snapshot {
	s := Snapshot{
		Width:         p.cfg.DomainWidth,
		Height:        p.cfg.DomainHeight,
		CellSpacing:   p.cfg.CellSpacing,
		ObstacleSpeed: p.cfg.ObstacleSpeed,
		SmoothRadius:  p.cfg.SmoothRadius,
		Mode:          p.cfg.Mode.String(),
		Obstacles:     p.obs.List(),
	}
	if p.start != nil {
		pt := *p.start
		s.Start = &pt
	}
	if p.end != nil {
		pt := *p.end
		s.End = &pt
	}

	return s
}

// Restore reconstructs a Planner from a snapshot, preserving obstacle
// identifiers and stamping order. Returns the first configuration, mode, or
// obstacle validation error encountered.
func Restore(s Snapshot) (*Planner, error) {
	mode, err := descent.ParseMode(s.Mode)
	if err != nil {
		return nil, err
	}

	p, err := New(Config{
		DomainWidth:   s.Width,
		DomainHeight:  s.Height,
		CellSpacing:   s.CellSpacing,
		ObstacleSpeed: s.ObstacleSpeed,
		SmoothRadius:  s.SmoothRadius,
		Mode:          mode,
	})
	if err != nil {
		return nil, err
	}

	for _, ob := range s.Obstacles {
		if _, err := p.obs.Insert(ob); err != nil {
			return nil, fmt.Errorf("restore obstacle: %w", err)
		}
	}
	if s.Start != nil {
		p.SetStart(*s.Start)
	}
	if s.End != nil {
		p.SetEnd(*s.End)
	}

	return p, nil
}
