package astar

import "github.com/katalvlaran/gridroute/lattice"

// Node is one search state: a lattice coordinate, the node it was reached
// from, and its path costs. Two nodes denote the same logical node when their
// coordinates are equal, whatever their costs.
//
// A queued node may still be relaxed by the frontier; once expanded it is
// never modified again.
type Node struct {
	Coord  lattice.Coordinate
	Parent *Node   // nil for the start node
	G      float64 // accumulated cost from the start
	H      float64 // heuristic estimate to the goal
	F      float64 // G + H

	seq   uint64 // discovery order, breaks ties on F
	index int    // heap position, -1 once popped
}

// Same reports whether n and o occupy the same coordinate.
func (n *Node) Same(o *Node) bool {
	return n.Coord == o.Coord
}

// Path walks the parent links back to the start and returns the coordinates
// in start → n order.
// Complexity: O(depth).
func (n *Node) Path() []lattice.Coordinate {
	var path []lattice.Coordinate
	for cur := n; cur != nil; cur = cur.Parent {
		path = append(path, cur.Coord)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
