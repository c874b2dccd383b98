package obstacle

import (
	"fmt"

	"github.com/dhconnelly/rtreego"
	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// rtree branching factors. Obstacle sets are interactive-scale (tens of
// shapes), so a shallow tree is sufficient.
const (
	rtreeMinBranch = 2
	rtreeMaxBranch = 8
)

// pointQueryExtent is the side length of the degenerate query box used for
// point-hit searches; rtreego requires strictly positive rectangle extents.
const pointQueryExtent = 1e-9

// entry wraps an obstacle for R-tree storage. The same *entry pointer is
// inserted and deleted, as rtreego identifies stored objects by pointer.
type entry struct {
	ob   Obstacle
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *entry) Bounds() rtreego.Rect {
	return e.rect
}

// Set is an identified obstacle collection preserving insertion order. The
// zero value is not usable; construct with NewSet. Set is not safe for
// concurrent use, matching the single-caller model of the solver.
type Set struct {
	order []*entry
	byID  map[string]*entry
	tree  *rtreego.Rtree
}

// NewSet returns an empty obstacle set.
func NewSet() *Set {
	return &Set{
		byID: make(map[string]*entry),
		tree: rtreego.NewTree(2, rtreeMinBranch, rtreeMaxBranch),
	}
}

// Add validates the shape, assigns a fresh unique identifier, and appends the
// obstacle to the set. Returns the assigned identifier.
// Complexity: O(log n) for the R-tree insert.
func (s *Set) Add(sh Shape) (string, error) {
	return s.Insert(Obstacle{ID: uuid.NewString(), Shape: sh})
}

// Insert adds an obstacle carrying an explicit identifier, preserving it.
// Used by snapshot restoration; Add is the usual entry point.
// Returns ErrDuplicateID if the identifier is already present.
func (s *Set) Insert(ob Obstacle) (string, error) {
	if ob.Shape == nil {
		return "", ErrNilShape
	}
	if err := ob.Shape.Validate(); err != nil {
		return "", err
	}
	if ob.ID == "" {
		ob.ID = uuid.NewString()
	}
	if _, exists := s.byID[ob.ID]; exists {
		return "", fmt.Errorf("%w: %s", ErrDuplicateID, ob.ID)
	}

	e := &entry{ob: ob, rect: spatialRect(ob.Shape.Bound())}
	s.order = append(s.order, e)
	s.byID[ob.ID] = e
	s.tree.Insert(e)

	return ob.ID, nil
}

// Remove deletes the obstacle with the given identifier.
// Returns ErrUnknownObstacle if no obstacle carries it.
// Complexity: O(n) list compaction plus O(log n) R-tree delete.
func (s *Set) Remove(id string) error {
	e, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownObstacle, id)
	}
	delete(s.byID, id)
	s.tree.Delete(e)
	for i, cur := range s.order {
		if cur == e {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return nil
}

// Update replaces the shape of an existing obstacle in place, keeping its
// identifier and its position in the stamping order.
// Returns ErrUnknownObstacle if no obstacle carries the identifier.
func (s *Set) Update(id string, sh Shape) error {
	if sh == nil {
		return ErrNilShape
	}
	if err := sh.Validate(); err != nil {
		return err
	}
	e, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownObstacle, id)
	}

	// Re-index under the new bounding box.
	s.tree.Delete(e)
	e.ob.Shape = sh
	e.rect = spatialRect(sh.Bound())
	s.tree.Insert(e)

	return nil
}

// Get returns the obstacle with the given identifier.
func (s *Set) Get(id string) (Obstacle, bool) {
	e, ok := s.byID[id]
	if !ok {
		return Obstacle{}, false
	}

	return e.ob, true
}

// Len returns the number of obstacles in the set.
func (s *Set) Len() int {
	return len(s.order)
}

// List returns the obstacles in insertion order. The slice is fresh; the
// obstacles share the immutable shapes.
func (s *Set) List() []Obstacle {
	out := make([]Obstacle, len(s.order))
	for i, e := range s.order {
		out[i] = e.ob
	}

	return out
}

// At returns the obstacles whose shape contains p, in insertion order.
// Candidates come from the R-tree; exact containment filters them.
// Complexity: O(log n + k) for k candidates.
func (s *Set) At(p orb.Point) []Obstacle {
	box, err := rtreego.NewRect(
		rtreego.Point{p.X(), p.Y()},
		[]float64{pointQueryExtent, pointQueryExtent},
	)
	if err != nil {
		return nil
	}

	candidates := candidateSet(s.tree.SearchIntersect(box))

	var hits []Obstacle
	for _, e := range s.order {
		if _, ok := candidates[e]; !ok {
			continue
		}
		if e.ob.Shape.Contains(p) {
			hits = append(hits, e.ob)
		}
	}

	return hits
}

// Within returns the obstacles whose bounding box intersects b, in insertion
// order. Complexity: O(log n + k).
func (s *Set) Within(b orb.Bound) []Obstacle {
	candidates := candidateSet(s.tree.SearchIntersect(spatialRect(b)))

	var hits []Obstacle
	for _, e := range s.order {
		if _, ok := candidates[e]; ok {
			hits = append(hits, e.ob)
		}
	}

	return hits
}

// candidateSet indexes R-tree search results by entry pointer so hits can be
// reported in insertion order rather than tree order.
func candidateSet(results []rtreego.Spatial) map[*entry]struct{} {
	set := make(map[*entry]struct{}, len(results))
	for _, r := range results {
		if e, ok := r.(*entry); ok {
			set[e] = struct{}{}
		}
	}

	return set
}

// spatialRect converts an orb.Bound into an rtreego.Rect, flooring each
// extent at pointQueryExtent because rtreego rejects zero-size rectangles.
func spatialRect(b orb.Bound) rtreego.Rect {
	lengths := []float64{
		max(b.Max.X()-b.Min.X(), pointQueryExtent),
		max(b.Max.Y()-b.Min.Y(), pointQueryExtent),
	}
	rect, err := rtreego.NewRect(rtreego.Point{b.Min.X(), b.Min.Y()}, lengths)
	if err != nil {
		// Unreachable: lengths are strictly positive by construction.
		panic(fmt.Sprintf("obstacle: invalid spatial rect: %v", err))
	}

	return rect
}
