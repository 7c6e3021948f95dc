// Package lattice describes the uniform grid a route is searched over and
// the three pure rules the search engine needs from it.
//
// What:
//
//   - Geometry wraps two ascending tick axes, a uniform cell size, a set of
//     excluded (impassable) coordinates and a set of elevated-risk cells.
//   - Snap maps an arbitrary query point onto the lattice.
//   - Neighbors enumerates legal one-step moves, truncating the
//     8-neighbourhood on edges and corners.
//   - StepCost prices a single move by its geometry and by cell risk.
//
// Lattice extent:
//
// Each axis holds the ticks t[0] < t[1] < … < t[n-1] plus one extra boundary
// value t[n-1] + CellSize. The grid therefore spans one cell further than the
// last tick, and a coordinate equal to t[n-1] + CellSize is a valid position.
//
// Boundary rules:
//
//   - interior point: 8 candidates (N, NE, E, SE, S, SW, W, NW);
//   - point on one extreme axis value: the 3 outward moves are dropped, 5 remain;
//   - corner: exactly one candidate, the diagonal toward the interior.
//
// Edge and corner membership is decided only by comparing against the four
// extreme values, never by tick indices.
//
// Step costs:
//
//   - DiagonalCost (1.5): both axes change.
//   - RiskCost     (1.3): axis-aligned move along the boundary of a risk cell.
//   - BaseCost     (1.0): any other axis-aligned move.
//
// Errors:
//
//   - ErrInvalidGeometry: umbrella for every construction failure.
//   - ErrEmptyTicks, ErrBadCellSize, ErrUnsortedTicks: construction details.
//   - ErrOutOfExtent: a coordinate is not a lattice position.
//
// A Geometry is immutable after construction and safe for concurrent readers.
package lattice
