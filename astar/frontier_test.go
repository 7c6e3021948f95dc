package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/lattice"
)

func TestFrontier_TiesPopInDiscoveryOrder(t *testing.T) {
	f := newFrontier()
	for i := 0; i < 5; i++ {
		f.push(&Node{Coord: lattice.Coordinate{X: float64(i)}, F: 2})
	}
	f.push(&Node{Coord: lattice.Coordinate{Y: 1}, F: 1})

	assert.Equal(t, lattice.Coordinate{Y: 1}, f.pop().Coord)
	for i := 0; i < 5; i++ {
		assert.Equal(t, float64(i), f.pop().Coord.X)
	}
	assert.Zero(t, f.Len())
}

func TestFrontier_RelaxKeepsSequence(t *testing.T) {
	f := newFrontier()
	a := &Node{Coord: lattice.Coordinate{X: 1}, G: 3, F: 3}
	b := &Node{Coord: lattice.Coordinate{X: 2}, G: 2, F: 2}
	c := &Node{Coord: lattice.Coordinate{X: 3}, G: 2, F: 2}
	f.push(a)
	f.push(b)
	f.push(c)

	parent := &Node{Coord: lattice.Coordinate{}}
	f.relax(a, parent, 1.5, 0.5)
	assert.Equal(t, 2.0, a.F)
	assert.Same(t, parent, a.Parent)
	assert.Equal(t, uint64(0), a.seq)

	// a now ties with b and c on F but was discovered first
	require.Same(t, a, f.pop())
	require.Same(t, b, f.pop())
	require.Same(t, c, f.pop())
}

func TestFrontier_Lookup(t *testing.T) {
	f := newFrontier()
	n := &Node{Coord: lattice.Coordinate{X: 1, Y: 1}}
	f.push(n)

	got, ok := f.lookup(n.Coord)
	require.True(t, ok)
	assert.Same(t, n, got)

	f.pop()
	_, ok = f.lookup(n.Coord)
	assert.False(t, ok)
	assert.Equal(t, -1, n.index)
}

func TestNode_PathAndSame(t *testing.T) {
	root := &Node{Coord: lattice.Coordinate{X: 0, Y: 0}}
	mid := &Node{Coord: lattice.Coordinate{X: 1, Y: 1}, Parent: root}
	leaf := &Node{Coord: lattice.Coordinate{X: 2, Y: 1}, Parent: mid}

	assert.Equal(t, []lattice.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}}, leaf.Path())
	assert.Equal(t, []lattice.Coordinate{{}}, root.Path())

	other := &Node{Coord: lattice.Coordinate{X: 1, Y: 1}, G: 99}
	assert.True(t, mid.Same(other))
	assert.False(t, mid.Same(leaf))
}
