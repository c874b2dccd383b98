package obstacle

import (
	"encoding/json"
	"fmt"
)

// rectangleRecord is the wire form of a Rectangle obstacle.
type rectangleRecord struct {
	ID     string  `json:"id,omitempty"`
	Type   string  `json:"type"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// circleRecord is the wire form of a Circle obstacle.
type circleRecord struct {
	ID     string  `json:"id,omitempty"`
	Type   string  `json:"type"`
	CX     float64 `json:"cx"`
	CY     float64 `json:"cy"`
	Radius float64 `json:"radius"`
}

// MarshalJSON encodes the obstacle as a tagged record:
// {"type":"rectangle",...} or {"type":"circle",...}.
func (o Obstacle) MarshalJSON() ([]byte, error) {
	switch sh := o.Shape.(type) {
	case Rectangle:
		return json.Marshal(rectangleRecord{
			ID: o.ID, Type: TypeRectangle,
			X: sh.X, Y: sh.Y, Width: sh.Width, Height: sh.Height,
		})
	case Circle:
		return json.Marshal(circleRecord{
			ID: o.ID, Type: TypeCircle,
			CX: sh.CX, CY: sh.CY, Radius: sh.Radius,
		})
	case nil:
		return nil, ErrNilShape
	default:
		// Unreachable: Shape is sealed to the two variants above.
		return nil, fmt.Errorf("%w: %T", ErrBadShapeType, o.Shape)
	}
}

// UnmarshalJSON decodes a tagged record, dispatching on its "type" tag.
// Returns ErrBadShapeType for unknown tags.
func (o *Obstacle) UnmarshalJSON(data []byte) error {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	switch probe.Type {
	case TypeRectangle:
		var rec rectangleRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return err
		}
		o.ID = rec.ID
		o.Shape = Rectangle{X: rec.X, Y: rec.Y, Width: rec.Width, Height: rec.Height}
	case TypeCircle:
		var rec circleRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return err
		}
		o.ID = rec.ID
		o.Shape = Circle{CX: rec.CX, CY: rec.CY, Radius: rec.Radius}
	default:
		return fmt.Errorf("%w: %q", ErrBadShapeType, probe.Type)
	}

	return nil
}
