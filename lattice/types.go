// Package lattice defines core types, options, and sentinel errors
// for the lattice subpackage of github.com/katalvlaran/gridroute.
package lattice

import (
	"errors"
	"fmt"
)

// Sentinel errors for lattice construction and lookups.
var (
	// ErrInvalidGeometry wraps every geometry validation failure.
	ErrInvalidGeometry = errors.New("lattice: invalid geometry")
	// ErrEmptyTicks indicates an axis without any tick.
	ErrEmptyTicks = errors.New("lattice: tick axis must have at least one value")
	// ErrBadCellSize indicates a cell size that is not a finite positive number.
	ErrBadCellSize = errors.New("lattice: cell size must be a finite positive number")
	// ErrUnsortedTicks indicates ticks that are not strictly ascending finite values.
	ErrUnsortedTicks = errors.New("lattice: ticks must be strictly ascending finite values")
	// ErrOutOfExtent indicates a coordinate that is not a lattice position.
	ErrOutOfExtent = errors.New("lattice: coordinate outside the lattice extent")
)

// Step costs used by StepCost.
const (
	// BaseCost prices an axis-aligned move outside risk territory.
	BaseCost = 1.0
	// RiskCost prices an axis-aligned move along a risk cell.
	RiskCost = 1.3
	// DiagonalCost prices a move that changes both axes.
	DiagonalCost = 1.5
)

// Coordinate is a lattice line intersection. Two coordinates are the same
// point only when both components are exactly equal.
type Coordinate struct {
	X, Y float64
}

// String renders c as "(x, y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%g, %g)", c.X, c.Y)
}

// Cell is one lattice cell identified by its four boundaries.
type Cell struct {
	Left, Bottom, Right, Top float64
}

// Contains reports whether c lies inside or on the boundary of the cell.
// Complexity: O(1).
func (cl Cell) Contains(c Coordinate) bool {
	return cl.Left <= c.X && c.X <= cl.Right && cl.Bottom <= c.Y && c.Y <= cl.Top
}

// Corners returns the cell corners in the order
// bottom-left, bottom-right, top-right, top-left.
func (cl Cell) Corners() [4]Coordinate {
	return [4]Coordinate{
		{cl.Left, cl.Bottom},
		{cl.Right, cl.Bottom},
		{cl.Right, cl.Top},
		{cl.Left, cl.Top},
	}
}

// Option configures the optional parts of a Geometry.
type Option func(*geometryOptions)

type geometryOptions struct {
	excluded []Coordinate
	risk     []Cell
}

// WithExcluded marks coordinates that a path may never occupy.
// May be given more than once; the sets are merged.
func WithExcluded(coords ...Coordinate) Option {
	return func(o *geometryOptions) {
		o.excluded = append(o.excluded, coords...)
	}
}

// WithRiskCells flags cells whose boundary moves are penalised with RiskCost.
// Risk cells are never impassable.
func WithRiskCells(cells ...Cell) Option {
	return func(o *geometryOptions) {
		o.risk = append(o.risk, cells...)
	}
}

// direction is a unit move expressed in cell steps.
type direction struct {
	dx, dy int
}

// directions lists the 8-neighbourhood clockwise from north.
// Neighbors emits candidates in this order.
var directions = [8]direction{
	{0, 1},   // N
	{1, 1},   // NE
	{1, 0},   // E
	{1, -1},  // SE
	{0, -1},  // S
	{-1, -1}, // SW
	{-1, 0},  // W
	{-1, 1},  // NW
}

// segment is an unordered pair of lattice points, stored with a before b.
type segment struct {
	a, b Coordinate
}

func newSegment(p, q Coordinate) segment {
	if q.X < p.X || (q.X == p.X && q.Y < p.Y) {
		p, q = q, p
	}
	return segment{a: p, b: q}
}
