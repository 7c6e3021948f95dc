package astar

import (
	"container/heap"

	"github.com/katalvlaran/gridroute/lattice"
)

// frontier is the open set: a binary min-heap on (F, seq) paired with a map
// from coordinate to its queued node, so each coordinate is queued at most
// once and relaxation is an in-place update plus heap.Fix.
type frontier struct {
	nodes nodeHeap
	byPos map[lattice.Coordinate]*Node
	seq   uint64
}

func newFrontier() *frontier {
	return &frontier{byPos: make(map[lattice.Coordinate]*Node)}
}

// Len returns the number of queued nodes.
func (f *frontier) Len() int { return len(f.nodes) }

// push queues a node for a coordinate not yet in the frontier.
// Complexity: O(log n).
func (f *frontier) push(n *Node) {
	n.seq = f.seq
	f.seq++
	heap.Push(&f.nodes, n)
	f.byPos[n.Coord] = n
}

// pop removes and returns the node of lowest F, oldest first on ties.
// Complexity: O(log n).
func (f *frontier) pop() *Node {
	n := heap.Pop(&f.nodes).(*Node)
	delete(f.byPos, n.Coord)
	return n
}

// lookup returns the queued node at c, if any.
func (f *frontier) lookup(c lattice.Coordinate) (*Node, bool) {
	n, ok := f.byPos[c]
	return n, ok
}

// relax replaces the costs and parent of a queued node and restores heap
// order. The node keeps its first discovery sequence.
// Complexity: O(log n).
func (f *frontier) relax(n, parent *Node, g, h float64) {
	n.Parent = parent
	n.G = g
	n.H = h
	n.F = g + h
	heap.Fix(&f.nodes, n.index)
}

// nodeHeap implements heap.Interface over *Node ordered by (F, seq).
type nodeHeap []*Node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].F != h[j].F {
		return h[i].F < h[j].F
	}
	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *nodeHeap) Push(x interface{}) {
	n := x.(*Node)
	n.index = len(*h)
	*h = append(*h, n)
}

func (h *nodeHeap) Pop() interface{} {
	old := *h
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	n.index = -1
	*h = old[:last]

	return n
}
