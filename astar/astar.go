package astar

import (
	"fmt"

	"github.com/katalvlaran/gridroute/lattice"
)

// FindPath returns a least-cost path from start to goal over g.
//
// Both endpoints are snapped onto the lattice first (lattice.Geometry.Snap).
// Behavior:
//  1. Validate g and both snapped endpoints (lattice.ErrInvalidGeometry).
//  2. An excluded endpoint can never be on a path: ErrUnreachable.
//  3. Endpoints snapping to one coordinate: a one-element path.
//  4. Best-first search on f = g + h with decrease-key relaxation.
//  5. Goal popped: reconstruct the path via parent links.
//  6. Frontier empty: ErrUnreachable with Result.Found == false.
//
// Complexity: O(V log V) time and O(V) memory for V lattice positions
// reachable from start.
func FindPath(g *lattice.Geometry, start, goal lattice.Coordinate, opts ...Option) (Result, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}
	res, err := search(g, start, goal, cfg)
	if cfg.Observer != nil {
		cfg.Observer.ObserveSearch(res, err)
	}
	return res, err
}

func search(g *lattice.Geometry, start, goal lattice.Coordinate, cfg Options) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGeometry
	}
	s, err := g.SnapInside(start)
	if err != nil {
		return Result{}, fmt.Errorf("%w: start: %w", lattice.ErrInvalidGeometry, err)
	}
	t, err := g.SnapInside(goal)
	if err != nil {
		return Result{}, fmt.Errorf("%w: goal: %w", lattice.ErrInvalidGeometry, err)
	}
	if g.Excluded(s) {
		return Result{}, fmt.Errorf("%w: start %v is excluded", ErrUnreachable, s)
	}
	if g.Excluded(t) {
		return Result{}, fmt.Errorf("%w: goal %v is excluded", ErrUnreachable, t)
	}
	if s == t {
		return Result{Path: []lattice.Coordinate{s}, Found: true}, nil
	}

	h := cfg.Heuristic
	if h == nil {
		h = cellDistance(g.CellSize())
	}

	r := &runner{
		g:      g,
		goal:   t,
		h:      h,
		cfg:    cfg,
		open:   newFrontier(),
		closed: make(map[lattice.Coordinate]*Node),
	}
	return r.run(s)
}

// cellDistance is the Euclidean distance expressed in cells.
func cellDistance(cellSize float64) Heuristic {
	return func(from, goal lattice.Coordinate) float64 {
		return lattice.Distance(from, goal) / cellSize
	}
}

// runner holds the mutable state of one search.
type runner struct {
	g      *lattice.Geometry
	goal   lattice.Coordinate
	h      Heuristic
	cfg    Options
	open   *frontier
	closed map[lattice.Coordinate]*Node
	stats  Stats
}

func (r *runner) run(start lattice.Coordinate) (Result, error) {
	h0 := r.h(start, r.goal)
	r.open.push(&Node{Coord: start, H: h0, F: h0})
	r.stats.Discovered++

	for r.open.Len() > 0 {
		if err := r.cfg.Ctx.Err(); err != nil {
			return Result{Stats: r.stats}, err
		}

		cur := r.open.pop()
		if cur.Coord == r.goal {
			return Result{Path: cur.Path(), Cost: cur.G, Found: true, Stats: r.stats}, nil
		}
		if r.cfg.MaxExpansions > 0 && r.stats.Expanded >= r.cfg.MaxExpansions {
			return Result{Stats: r.stats}, fmt.Errorf("%w after %d expansions", ErrExpansionLimit, r.stats.Expanded)
		}

		r.closed[cur.Coord] = cur
		r.stats.Expanded++
		r.cfg.OnExpand(cur.Coord, cur.G)
		r.expand(cur)
	}

	return Result{Stats: r.stats}, ErrUnreachable
}

// expand prices every non-closed neighbour of cur and inserts or relaxes it.
func (r *runner) expand(cur *Node) {
	for _, c := range r.g.Neighbors(cur.Coord) {
		if _, done := r.closed[c]; done {
			continue
		}
		g := cur.G + r.g.StepCost(cur.Coord, c)
		h := r.h(c, r.goal)

		if queued, ok := r.open.lookup(c); ok {
			// strictly better only, so equal-cost ties keep the earlier parent
			if g+h < queued.F {
				r.open.relax(queued, cur, g, h)
				r.stats.Relaxed++
			}
			continue
		}
		r.open.push(&Node{Coord: c, Parent: cur, G: g, H: h, F: g + h})
		r.stats.Discovered++
	}
}
