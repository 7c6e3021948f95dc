package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/gridroute/lattice"
)

// Dijkstra computes shortest distances from Options.Source to every
// traversable lattice position of g.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrEmptySource).
//  2. g must be non-nil (ErrNilGeometry).
//  3. Source must be a lattice position that is not excluded (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *lattice.Geometry, opts ...Option) (map[lattice.Coordinate]float64, map[lattice.Coordinate]lattice.Coordinate, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.HasSource {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGeometry
	}
	if !g.Contains(cfg.Source) || g.Excluded(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %v", ErrVertexNotFound, cfg.Source)
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[lattice.Coordinate]float64),
		prev:    make(map[lattice.Coordinate]lattice.Coordinate),
		visited: make(map[lattice.Coordinate]bool),
	}
	r.init()
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}
	return r.dist, r.prev, nil
}

// PathTo rebuilds the source → target path from a predecessor map returned
// with WithReturnPath. ok is false when target was not reached.
func PathTo(prev map[lattice.Coordinate]lattice.Coordinate, source, target lattice.Coordinate) (path []lattice.Coordinate, ok bool) {
	path = []lattice.Coordinate{target}
	for cur := target; cur != source; {
		p, found := prev[cur]
		if !found {
			return nil, false
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *lattice.Geometry
	options Options
	dist    map[lattice.Coordinate]float64
	prev    map[lattice.Coordinate]lattice.Coordinate
	visited map[lattice.Coordinate]bool
	pq      nodePQ
}

// init sets every traversable position to +Inf and pushes Source=0.
func (r *runner) init() {
	for _, c := range r.g.Positions() {
		if r.g.Excluded(c) {
			continue
		}
		r.dist[c] = math.Inf(1)
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{at: r.options.Source, dist: 0})
}

// process pops the closest unvisited position until the heap is empty or
// the minimum exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.at

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax tries to improve the distance of every neighbour of u.
func (r *runner) relax(u lattice.Coordinate) {
	for _, v := range r.g.Neighbors(u) {
		newDist := r.dist[u] + r.g.StepCost(u, v)
		if newDist > r.options.MaxDistance {
			continue
		}
		// strictly shorter only
		if old, ok := r.dist[v]; ok && newDist >= old {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u

		// lazy decrease-key: the outdated entry is skipped when popped
		heap.Push(&r.pq, &nodeItem{at: v, dist: newDist})
	}
}

// nodeItem represents a position and its tentative distance from the source.
type nodeItem struct {
	at   lattice.Coordinate
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
