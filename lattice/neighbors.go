package lattice

// Candidates returns the one-step moves from c before the exclusion filter.
//
//   - interior: all 8 directions;
//   - on one extreme axis value: 5, the three outward directions removed;
//   - corner: 1, the inward diagonal.
//
// The order follows N, NE, E, SE, S, SW, W, NW.
// Complexity: O(1).
func (g *Geometry) Candidates(c Coordinate) []Coordinate {
	left, right := g.OnLeft(c), g.OnRight(c)
	bottom, top := g.OnBottom(c), g.OnTop(c)

	if (left || right) && (bottom || top) {
		d := direction{dx: 1, dy: 1}
		if right {
			d.dx = -1
		}
		if top {
			d.dy = -1
		}
		return []Coordinate{g.offset(c, d)}
	}

	out := make([]Coordinate, 0, len(directions))
	for _, d := range directions {
		if (left && d.dx < 0) || (right && d.dx > 0) || (bottom && d.dy < 0) || (top && d.dy > 0) {
			continue
		}
		out = append(out, g.offset(c, d))
	}
	return out
}

// Neighbors returns the coordinates reachable from c in one step: the
// Candidates of c minus every excluded coordinate.
// Complexity: O(1).
func (g *Geometry) Neighbors(c Coordinate) []Coordinate {
	cand := g.Candidates(c)
	out := cand[:0]
	for _, n := range cand {
		if g.Excluded(n) {
			continue
		}
		out = append(out, n)
	}
	return out
}

func (g *Geometry) offset(c Coordinate, d direction) Coordinate {
	return Coordinate{
		X: g.x.step(c.X, d.dx, g.cellSize),
		Y: g.y.step(c.Y, d.dy, g.cellSize),
	}
}
