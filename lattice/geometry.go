package lattice

import (
	"fmt"
	"math"
)

// Geometry is the read-only lattice a route is searched over.
// Build it with NewGeometry or Uniform; the zero value is not usable.
type Geometry struct {
	x, y      axis
	cellSize  float64
	excluded  map[Coordinate]struct{}
	risk      map[Cell]struct{}
	riskEdges map[segment]struct{}
}

// NewGeometry validates the tick axes and cell size and builds a Geometry.
// The tick slices are copied; later mutation by the caller has no effect.
//
// Returns an error wrapping ErrInvalidGeometry together with one of
// ErrEmptyTicks, ErrBadCellSize or ErrUnsortedTicks.
//
// Complexity: O(X + Y + E + R) for X, Y ticks, E exclusions and R risk cells.
func NewGeometry(xTicks, yTicks []float64, cellSize float64, opts ...Option) (*Geometry, error) {
	if len(xTicks) == 0 || len(yTicks) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGeometry, ErrEmptyTicks)
	}
	if !(cellSize > 0) || math.IsInf(cellSize, 0) {
		return nil, fmt.Errorf("%w: %w (got %v)", ErrInvalidGeometry, ErrBadCellSize, cellSize)
	}
	if err := checkAscending("x", xTicks); err != nil {
		return nil, err
	}
	if err := checkAscending("y", yTicks); err != nil {
		return nil, err
	}

	var o geometryOptions
	for _, opt := range opts {
		opt(&o)
	}

	g := &Geometry{
		x:         newAxis(xTicks, cellSize),
		y:         newAxis(yTicks, cellSize),
		cellSize:  cellSize,
		excluded:  make(map[Coordinate]struct{}, len(o.excluded)),
		risk:      make(map[Cell]struct{}, len(o.risk)),
		riskEdges: make(map[segment]struct{}, 4*len(o.risk)),
	}
	for _, c := range o.excluded {
		g.excluded[c] = struct{}{}
	}
	for _, cl := range o.risk {
		g.risk[cl] = struct{}{}
		k := cl.Corners()
		for i := range k {
			g.riskEdges[newSegment(k[i], k[(i+1)%4])] = struct{}{}
		}
	}

	return g, nil
}

// Uniform builds the tick axes over the bounding box [minX,maxX)×[minY,maxY)
// the way a plotting arange does: min, min+step, min+2·step, … while < max.
// Each tick is computed as min + i·cellSize, not by repeated addition.
func Uniform(minX, minY, maxX, maxY, cellSize float64, opts ...Option) (*Geometry, error) {
	if !(cellSize > 0) || math.IsInf(cellSize, 0) {
		return nil, fmt.Errorf("%w: %w (got %v)", ErrInvalidGeometry, ErrBadCellSize, cellSize)
	}
	return NewGeometry(arange(minX, maxX, cellSize), arange(minY, maxY, cellSize), cellSize, opts...)
}

func arange(lo, hi, step float64) []float64 {
	if !(hi > lo) {
		return nil
	}
	n := int(math.Ceil((hi - lo) / step))
	out := make([]float64, 0, n)
	for i := 0; ; i++ {
		v := lo + float64(i)*step
		if v >= hi {
			break
		}
		out = append(out, v)
	}
	return out
}

func checkAscending(name string, ticks []float64) error {
	for i, t := range ticks {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return fmt.Errorf("%w: %w (%s[%d]=%v)", ErrInvalidGeometry, ErrUnsortedTicks, name, i, t)
		}
		if i > 0 && !(t > ticks[i-1]) {
			return fmt.Errorf("%w: %w (%s[%d]=%v after %v)", ErrInvalidGeometry, ErrUnsortedTicks, name, i, t, ticks[i-1])
		}
	}
	return nil
}

// CellSize returns the uniform cell size.
func (g *Geometry) CellSize() float64 { return g.cellSize }

// XTicks returns a copy of the x axis ticks.
func (g *Geometry) XTicks() []float64 { return append([]float64(nil), g.x.ticks...) }

// YTicks returns a copy of the y axis ticks.
func (g *Geometry) YTicks() []float64 { return append([]float64(nil), g.y.ticks...) }

// Extent returns the rectangle spanned by the lattice, including the extra
// boundary cell past the last tick on each axis.
func (g *Geometry) Extent() Cell {
	return Cell{Left: g.x.lower(), Bottom: g.y.lower(), Right: g.x.upper, Top: g.y.upper}
}

// Size returns the number of lattice positions along x and y.
func (g *Geometry) Size() (nx, ny int) {
	return len(g.x.ticks) + 1, len(g.y.ticks) + 1
}

// OnLeft reports whether c lies on the first x tick.
func (g *Geometry) OnLeft(c Coordinate) bool { return c.X == g.x.lower() }

// OnRight reports whether c lies on the last x tick plus one cell.
func (g *Geometry) OnRight(c Coordinate) bool { return c.X == g.x.upper }

// OnBottom reports whether c lies on the first y tick.
func (g *Geometry) OnBottom(c Coordinate) bool { return c.Y == g.y.lower() }

// OnTop reports whether c lies on the last y tick plus one cell.
func (g *Geometry) OnTop(c Coordinate) bool { return c.Y == g.y.upper }

// OnXEdge reports whether c sits on an extreme x value.
func (g *Geometry) OnXEdge(c Coordinate) bool { return g.OnLeft(c) || g.OnRight(c) }

// OnYEdge reports whether c sits on an extreme y value.
func (g *Geometry) OnYEdge(c Coordinate) bool { return g.OnBottom(c) || g.OnTop(c) }

// IsCorner reports whether c sits on extreme values of both axes.
func (g *Geometry) IsCorner(c Coordinate) bool { return g.OnXEdge(c) && g.OnYEdge(c) }

// Contains reports whether c is a lattice position: a tick or the upper
// boundary value on both axes.
// Complexity: O(1).
func (g *Geometry) Contains(c Coordinate) bool {
	return g.x.has(c.X) && g.y.has(c.Y)
}

// Excluded reports whether c is impassable.
func (g *Geometry) Excluded(c Coordinate) bool {
	_, ok := g.excluded[c]
	return ok
}

// Risky reports whether cl is flagged as elevated-risk.
func (g *Geometry) Risky(cl Cell) bool {
	_, ok := g.risk[cl]
	return ok
}

// Cells enumerates every lattice cell, top row first and left to right
// within a row.
// Complexity: O(X·Y).
func (g *Geometry) Cells() []Cell {
	nx, ny := len(g.x.ticks), len(g.y.ticks)
	out := make([]Cell, 0, nx*ny)
	for j := ny - 1; j >= 0; j-- {
		for i := 0; i < nx; i++ {
			out = append(out, Cell{
				Left:   g.x.ticks[i],
				Bottom: g.y.ticks[j],
				Right:  g.x.value(i + 1),
				Top:    g.y.value(j + 1),
			})
		}
	}
	return out
}

// CellAt returns the cell whose bottom-left corner is c.
// ok is false when c is not a tick on both axes.
func (g *Geometry) CellAt(c Coordinate) (cl Cell, ok bool) {
	i, okx := g.x.pos[c.X]
	j, oky := g.y.pos[c.Y]
	if !okx || !oky || i == len(g.x.ticks) || j == len(g.y.ticks) {
		return Cell{}, false
	}
	return Cell{Left: c.X, Bottom: c.Y, Right: g.x.value(i + 1), Top: g.y.value(j + 1)}, true
}

// Distance is the Euclidean distance between a and b.
func Distance(a, b Coordinate) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Positions lists every lattice position, bottom row first and left to right
// within a row, excluded coordinates included.
// Complexity: O(X·Y).
func (g *Geometry) Positions() []Coordinate {
	nx, ny := g.Size()
	out := make([]Coordinate, 0, nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			out = append(out, Coordinate{X: g.x.value(i), Y: g.y.value(j)})
		}
	}
	return out
}
