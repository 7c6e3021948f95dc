package lattice

import "fmt"

// Snap maps c to the lattice position at or below it, each axis on its own.
// A value that already is a lattice position is returned unchanged, so Snap
// is idempotent on the lattice. A value below the first tick, or above the
// upper boundary, is kept as given and will fail Contains.
// Complexity: O(log X + log Y).
func (g *Geometry) Snap(c Coordinate) Coordinate {
	return Coordinate{X: g.x.snap(c.X), Y: g.y.snap(c.Y)}
}

// SnapInside snaps c and reports ErrOutOfExtent when the result is not a
// lattice position.
func (g *Geometry) SnapInside(c Coordinate) (Coordinate, error) {
	s := g.Snap(c)
	if !g.Contains(s) {
		return s, fmt.Errorf("%w: %v snaps to %v", ErrOutOfExtent, c, s)
	}
	return s, nil
}
