package obstacle_test

import (
	"encoding/json"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eikonal/obstacle"
)

//----------------------------------------------------------------------------//
// Shape tests
//----------------------------------------------------------------------------//

// TestShapeContains exercises closed-boundary containment for both variants.
func TestShapeContains(t *testing.T) {
	rect := obstacle.Rectangle{X: 3, Y: 2, Width: 2, Height: 1.5}
	assert.True(t, rect.Contains(orb.Point{3, 2}), "lower-left corner is inside (closed bounds)")
	assert.True(t, rect.Contains(orb.Point{5, 3.5}), "upper-right corner is inside (closed bounds)")
	assert.True(t, rect.Contains(orb.Point{4, 3}), "interior point")
	assert.False(t, rect.Contains(orb.Point{5.01, 3}), "point beyond width")

	circ := obstacle.Circle{CX: 2, CY: 6, Radius: 0.8}
	assert.True(t, circ.Contains(orb.Point{2, 6}), "center")
	assert.True(t, circ.Contains(orb.Point{2.8, 6}), "boundary point (closed)")
	assert.False(t, circ.Contains(orb.Point{2.81, 6}), "just outside the radius")
}

// TestShapeValidate rejects non-positive dimensions.
func TestShapeValidate(t *testing.T) {
	assert.ErrorIs(t, obstacle.Rectangle{Width: 0, Height: 1}.Validate(), obstacle.ErrBadShape)
	assert.ErrorIs(t, obstacle.Rectangle{Width: 1, Height: -2}.Validate(), obstacle.ErrBadShape)
	assert.ErrorIs(t, obstacle.Circle{Radius: 0}.Validate(), obstacle.ErrBadShape)
	assert.NoError(t, obstacle.Rectangle{Width: 1, Height: 1}.Validate())
	assert.NoError(t, obstacle.Circle{Radius: 0.5}.Validate())
}

//----------------------------------------------------------------------------//
// Set tests
//----------------------------------------------------------------------------//

// TestSet_AddRemove verifies identifier assignment, ordering, and removal
// down to a single remaining obstacle.
func TestSet_AddRemove(t *testing.T) {
	s := obstacle.NewSet()

	idA, err := s.Add(obstacle.Rectangle{X: 1, Y: 1, Width: 2, Height: 1})
	require.NoError(t, err)
	idB, err := s.Add(obstacle.Circle{CX: 5, CY: 5, Radius: 1})
	require.NoError(t, err)
	require.NotEqual(t, idA, idB, "identifiers must be unique")
	require.Equal(t, 2, s.Len())

	require.NoError(t, s.Remove(idA))
	assert.Equal(t, 1, s.Len(), "exactly one obstacle must remain")
	remaining := s.List()
	require.Len(t, remaining, 1)
	assert.Equal(t, idB, remaining[0].ID)

	assert.ErrorIs(t, s.Remove(idA), obstacle.ErrUnknownObstacle, "double remove")
}

// TestSet_AddRejectsBadShapes covers nil and degenerate shapes.
func TestSet_AddRejectsBadShapes(t *testing.T) {
	s := obstacle.NewSet()

	_, err := s.Add(nil)
	assert.ErrorIs(t, err, obstacle.ErrNilShape)

	_, err = s.Add(obstacle.Circle{CX: 1, CY: 1, Radius: -1})
	assert.ErrorIs(t, err, obstacle.ErrBadShape)
	assert.Equal(t, 0, s.Len())
}

// TestSet_InsertDuplicateID verifies that explicit identifiers cannot repeat.
func TestSet_InsertDuplicateID(t *testing.T) {
	s := obstacle.NewSet()
	_, err := s.Insert(obstacle.Obstacle{ID: "wall", Shape: obstacle.Rectangle{Width: 1, Height: 1}})
	require.NoError(t, err)

	_, err = s.Insert(obstacle.Obstacle{ID: "wall", Shape: obstacle.Circle{Radius: 1}})
	assert.ErrorIs(t, err, obstacle.ErrDuplicateID)
}

// TestSet_Update replaces a shape in place, keeping the identifier and the
// insertion position, and re-indexes hit queries.
func TestSet_Update(t *testing.T) {
	s := obstacle.NewSet()
	idA, err := s.Add(obstacle.Rectangle{X: 0, Y: 0, Width: 1, Height: 1})
	require.NoError(t, err)
	idB, err := s.Add(obstacle.Circle{CX: 8, CY: 8, Radius: 1})
	require.NoError(t, err)

	require.NoError(t, s.Update(idA, obstacle.Rectangle{X: 4, Y: 4, Width: 2, Height: 2}))

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, idA, list[0].ID, "update must not change the stamping order")
	assert.Equal(t, idB, list[1].ID)

	// Old location no longer hits, new one does.
	assert.Empty(t, s.At(orb.Point{0.5, 0.5}))
	hits := s.At(orb.Point{5, 5})
	require.Len(t, hits, 1)
	assert.Equal(t, idA, hits[0].ID)

	assert.ErrorIs(t, s.Update("missing", obstacle.Circle{Radius: 1}), obstacle.ErrUnknownObstacle)
}

// TestSet_At distinguishes bounding-box candidates from exact containment:
// the corner region of a circle's bbox is not inside the circle.
func TestSet_At(t *testing.T) {
	s := obstacle.NewSet()
	_, err := s.Add(obstacle.Circle{CX: 2, CY: 2, Radius: 1})
	require.NoError(t, err)

	assert.Len(t, s.At(orb.Point{2, 2}), 1, "center hit")
	assert.Empty(t, s.At(orb.Point{1.1, 1.1}), "bbox corner outside the disc")
	assert.Empty(t, s.At(orb.Point{7, 7}), "far miss")
}

// TestSet_Within returns bbox-overlapping obstacles in insertion order.
func TestSet_Within(t *testing.T) {
	s := obstacle.NewSet()
	idA, err := s.Add(obstacle.Rectangle{X: 0, Y: 0, Width: 2, Height: 2})
	require.NoError(t, err)
	idB, err := s.Add(obstacle.Circle{CX: 3, CY: 3, Radius: 0.5})
	require.NoError(t, err)
	_, err = s.Add(obstacle.Rectangle{X: 10, Y: 10, Width: 1, Height: 1})
	require.NoError(t, err)

	hits := s.Within(orb.Bound{Min: orb.Point{1, 1}, Max: orb.Point{4, 4}})
	require.Len(t, hits, 2)
	assert.Equal(t, idA, hits[0].ID)
	assert.Equal(t, idB, hits[1].ID)
}

//----------------------------------------------------------------------------//
// JSON round-trip tests
//----------------------------------------------------------------------------//

// TestObstacleJSON_RoundTrip encodes and decodes both variants.
func TestObstacleJSON_RoundTrip(t *testing.T) {
	cases := []struct {
		name string
		ob   obstacle.Obstacle
	}{
		{"Rectangle", obstacle.Obstacle{ID: "r1", Shape: obstacle.Rectangle{X: 3, Y: 2, Width: 2, Height: 1.5}}},
		{"Circle", obstacle.Obstacle{ID: "c1", Shape: obstacle.Circle{CX: 2, CY: 6, Radius: 0.8}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(tc.ob)
			require.NoError(t, err)

			var back obstacle.Obstacle
			require.NoError(t, json.Unmarshal(data, &back))
			assert.Equal(t, tc.ob, back)
		})
	}
}

// TestObstacleJSON_TypeTag checks the tag value and the unknown-tag error.
func TestObstacleJSON_TypeTag(t *testing.T) {
	data, err := json.Marshal(obstacle.Obstacle{ID: "r1", Shape: obstacle.Rectangle{Width: 1, Height: 1}})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"rectangle"`)

	var back obstacle.Obstacle
	err = json.Unmarshal([]byte(`{"type":"triangle"}`), &back)
	assert.ErrorIs(t, err, obstacle.ErrBadShapeType)
}
