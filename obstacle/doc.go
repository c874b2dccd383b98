// Package obstacle models the slow-traversal regions of the planning domain
// as a closed tagged shape variant and manages identified collections of
// them.
//
// What:
//
//   - Shape is a sealed variant: Rectangle (axis-aligned, origin + size) or
//     Circle (center + radius). No other shapes can implement it.
//   - Obstacle pairs a Shape with a unique identifier assigned at creation.
//   - Set owns a list of obstacles in insertion order (the field builder
//     stamps them in exactly this order), supports add/remove/update by
//     identifier, and answers point and region hit queries through an R-tree
//     over shape bounding boxes.
//   - Obstacles serialize to/from the tagged JSON records used by planner
//     snapshots: {"type":"rectangle",...} / {"type":"circle",...}.
//
// Why:
//
//   - Interactive callers pick, drag, and delete obstacles by identifier;
//     the R-tree keeps point-hit queries cheap without scanning the list.
//   - Insertion order is semantic, not incidental: later obstacles overwrite
//     the cells of earlier ones during field construction.
//
// Complexity:
//
//   - Add/Update/Remove: O(log n) R-tree maintenance plus O(1)/O(n) list work.
//   - At/Within: O(log n + k) for k candidate shapes.
//
// Errors:
//
//   - ErrUnknownObstacle: no obstacle carries the given identifier.
//   - ErrDuplicateID: an obstacle with the identifier already exists.
//   - ErrNilShape: a nil shape was supplied.
//   - ErrBadShape: a shape with non-positive dimensions was supplied.
//   - ErrBadShapeType: a serialized record carries an unknown type tag.
package obstacle
