// Package bfs provides tunable options and error definitions
// for breadth‐first search over a lattice.Geometry.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridroute/lattice"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start is not a traversable lattice position.
	ErrStartVertexNotFound = errors.New("bfs: start position not found")

	// ErrGeometryNil is returned if a nil geometry pointer is passed.
	ErrGeometryNil = errors.New("bfs: geometry is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a position. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(c lattice.Coordinate, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterNeighbor can skip moves by returning false.
	FilterNeighbor func(curr, next lattice.Coordinate) bool

	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering and a no-op OnVisit.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnVisit:        func(lattice.Coordinate, int) error { return nil },
		FilterNeighbor: func(_, _ lattice.Coordinate) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(c lattice.Coordinate, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips moves when fn returns false.
func WithFilterNeighbor(fn func(curr, next lattice.Coordinate) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: positions visited, in visit sequence.
//   - Depth: hop count from the start.
//   - Parent: predecessor in the BFS tree.
type BFSResult struct {
	Start  lattice.Coordinate
	Order  []lattice.Coordinate
	Depth  map[lattice.Coordinate]int
	Parent map[lattice.Coordinate]lattice.Coordinate
}

// Reached reports whether c was discovered.
func (r *BFSResult) Reached(c lattice.Coordinate) bool {
	_, ok := r.Depth[c]
	return ok
}

// PathTo reconstructs the hop-shortest path from the start to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest lattice.Coordinate) ([]lattice.Coordinate, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}
	path := []lattice.Coordinate{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
