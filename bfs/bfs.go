package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridroute/lattice"
)

// queueItem pairs a position with its BFS depth.
type queueItem struct {
	at    lattice.Coordinate
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	g     *lattice.Geometry
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGeometryNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any OnVisit error.
func BFS(g *lattice.Geometry, start lattice.Coordinate, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGeometryNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Contains(start) || g.Excluded(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	w := &walker{
		g:    g,
		opts: o,
		ctx:  o.Ctx,
		res: &BFSResult{
			Start:  start,
			Depth:  make(map[lattice.Coordinate]int),
			Parent: make(map[lattice.Coordinate]lattice.Coordinate),
		},
	}
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem{at: start})

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.at)
		if err := w.opts.OnVisit(item.at, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.at, err)
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen neighbour.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nb := range w.g.Neighbors(item.at) {
		if !w.opts.FilterNeighbor(item.at, nb) {
			continue
		}
		if _, seen := w.res.Depth[nb]; seen {
			continue
		}
		w.res.Depth[nb] = next
		w.res.Parent[nb] = item.at
		w.queue = append(w.queue, queueItem{at: nb, depth: next})
	}
}
