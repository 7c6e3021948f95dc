// Package dijkstra computes exact single-source shortest distances over a
// lattice.Geometry, using the same neighbour and step-cost rules as astar.
//
// Overview:
//
//   - Dijkstra expands positions in order of increasing distance from the
//     source with a min-heap, producing the full cost field of the lattice.
//   - It needs no heuristic, so it serves as the exhaustive reference the
//     astar package is checked against, and as a building block for callers
//     that need costs to every position (isochrones, reachability shading).
//   - Moves are directed: a corner only offers its inward diagonal, so the
//     cost from a to b may differ from the cost from b to a.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V), E ≤ 8V.
//   - Space: O(V) for the distance and predecessor maps, plus O(E) heap
//     entries under the lazy decrease-key strategy.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:    no Source option was given.
//   - ErrNilGeometry:    the geometry pointer is nil.
//   - ErrVertexNotFound: the source is not a lattice position, or is excluded.
//   - ErrBadMaxDistance: WithMaxDistance got a negative value (panics).
//
// API reference:
//
//	func Dijkstra(
//	    g *lattice.Geometry,
//	    opts ...Option,
//	) (dist map[lattice.Coordinate]float64, prev map[lattice.Coordinate]lattice.Coordinate, err error)
//
//	  - dist: every non-excluded lattice position → distance, +Inf if unreachable.
//	  - prev: position → predecessor on one shortest path; the source and
//	          unreachable positions have no entry. Nil unless WithReturnPath().
//
// Thread safety:
//
//   - The geometry is only read; concurrent calls on one Geometry are safe.
package dijkstra
