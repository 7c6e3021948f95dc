// Package bfs provides breadth-first traversal over a lattice.Geometry.
//
// BFS ignores step costs: it visits lattice positions in increasing hop count
// from a start position, following the same directed neighbour rules and
// exclusions as the weighted searches. It answers "can the goal be reached at
// all" cheaply and gives the hop depth of every reached position.
//
// Options:
//
//   - WithContext:        cancellation and deadlines.
//   - WithMaxDepth:       stop expanding beyond a hop depth.
//   - WithOnVisit:        hook per visited position; an error aborts the walk.
//   - WithFilterNeighbor: veto individual moves.
//
// Errors:
//
//   - ErrGeometryNil:         nil geometry.
//   - ErrStartVertexNotFound: start is not a lattice position or is excluded.
//   - ErrOptionViolation:     an invalid option value.
package bfs
