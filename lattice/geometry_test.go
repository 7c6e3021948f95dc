package lattice

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unitGrid builds ticks {0,1,…,n-1} on both axes with cell size 1,
// i.e. (n+1)×(n+1) lattice positions.
func unitGrid(t *testing.T, n int, opts ...Option) *Geometry {
	t.Helper()
	ticks := make([]float64, n)
	for i := range ticks {
		ticks[i] = float64(i)
	}
	g, err := NewGeometry(ticks, ticks, 1, opts...)
	require.NoError(t, err)

	return g
}

func TestNewGeometry_Validation(t *testing.T) {
	cases := []struct {
		name   string
		x, y   []float64
		size   float64
		detail error
	}{
		{"empty x", nil, []float64{0}, 1, ErrEmptyTicks},
		{"empty y", []float64{0}, []float64{}, 1, ErrEmptyTicks},
		{"zero cell", []float64{0}, []float64{0}, 0, ErrBadCellSize},
		{"negative cell", []float64{0}, []float64{0}, -1, ErrBadCellSize},
		{"NaN cell", []float64{0}, []float64{0}, math.NaN(), ErrBadCellSize},
		{"inf cell", []float64{0}, []float64{0}, math.Inf(1), ErrBadCellSize},
		{"descending", []float64{1, 0}, []float64{0}, 1, ErrUnsortedTicks},
		{"duplicate", []float64{0}, []float64{0, 0}, 1, ErrUnsortedTicks},
		{"NaN tick", []float64{0, math.NaN()}, []float64{0}, 1, ErrUnsortedTicks},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := NewGeometry(tc.x, tc.y, tc.size)
			require.Nil(t, g)
			require.ErrorIs(t, err, ErrInvalidGeometry)
			require.ErrorIs(t, err, tc.detail)
		})
	}
}

func TestNewGeometry_CopiesTicks(t *testing.T) {
	x := []float64{0, 1, 2}
	g, err := NewGeometry(x, []float64{0, 1}, 1)
	require.NoError(t, err)
	x[0] = -10

	assert.Equal(t, []float64{0, 1, 2}, g.XTicks())
	assert.True(t, g.OnLeft(Coordinate{0, 0.5}))
}

func TestGeometry_ExtentIncludesUpperBoundary(t *testing.T) {
	g := unitGrid(t, 4)

	assert.Equal(t, Cell{Left: 0, Bottom: 0, Right: 4, Top: 4}, g.Extent())
	nx, ny := g.Size()
	assert.Equal(t, 5, nx)
	assert.Equal(t, 5, ny)

	assert.True(t, g.Contains(Coordinate{4, 4}), "last tick + cell size is a lattice position")
	assert.True(t, g.Contains(Coordinate{0, 3}))
	assert.False(t, g.Contains(Coordinate{5, 0}))
	assert.False(t, g.Contains(Coordinate{0.5, 0}))
}

func TestGeometry_BoundaryPredicates(t *testing.T) {
	g := unitGrid(t, 4)

	assert.True(t, g.OnLeft(Coordinate{0, 2}))
	assert.True(t, g.OnRight(Coordinate{4, 2}))
	assert.True(t, g.OnBottom(Coordinate{2, 0}))
	assert.True(t, g.OnTop(Coordinate{2, 4}))
	assert.False(t, g.OnRight(Coordinate{3, 2}), "the last tick itself is not the right edge")

	assert.True(t, g.IsCorner(Coordinate{0, 0}))
	assert.True(t, g.IsCorner(Coordinate{4, 4}))
	assert.True(t, g.IsCorner(Coordinate{0, 4}))
	assert.False(t, g.IsCorner(Coordinate{0, 2}))
	assert.False(t, g.IsCorner(Coordinate{2, 2}))
}

func TestUniform_TicksLikeArange(t *testing.T) {
	g, err := Uniform(10, 20, 13, 22, 1)
	require.NoError(t, err)

	assert.Equal(t, []float64{10, 11, 12}, g.XTicks())
	assert.Equal(t, []float64{20, 21}, g.YTicks())
	assert.Equal(t, Cell{Left: 10, Bottom: 20, Right: 13, Top: 22}, g.Extent())
}

func TestUniform_Invalid(t *testing.T) {
	_, err := Uniform(0, 0, 1, 1, 0)
	require.ErrorIs(t, err, ErrBadCellSize)

	_, err = Uniform(1, 0, 1, 1, 0.5)
	require.ErrorIs(t, err, ErrEmptyTicks, "empty x range yields no ticks")
}

func TestGeometry_Cells(t *testing.T) {
	g, err := NewGeometry([]float64{0, 1}, []float64{0, 1}, 1)
	require.NoError(t, err)

	want := []Cell{
		{0, 1, 1, 2}, {1, 1, 2, 2},
		{0, 0, 1, 1}, {1, 0, 2, 1},
	}
	assert.Equal(t, want, g.Cells())
}

func TestGeometry_CellAt(t *testing.T) {
	g := unitGrid(t, 3)

	cl, ok := g.CellAt(Coordinate{2, 1})
	require.True(t, ok)
	assert.Equal(t, Cell{2, 1, 3, 2}, cl)

	_, ok = g.CellAt(Coordinate{3, 1})
	assert.False(t, ok, "upper boundary has no cell to its right")
	_, ok = g.CellAt(Coordinate{0.5, 1})
	assert.False(t, ok)
}

func TestGeometry_ExcludedAndRisky(t *testing.T) {
	risk := Cell{1, 1, 2, 2}
	g := unitGrid(t, 3, WithExcluded(Coordinate{1, 1}), WithExcluded(Coordinate{2, 2}), WithRiskCells(risk))

	assert.True(t, g.Excluded(Coordinate{1, 1}))
	assert.True(t, g.Excluded(Coordinate{2, 2}), "repeated options merge")
	assert.False(t, g.Excluded(Coordinate{0, 0}))
	assert.True(t, g.Risky(risk))
	assert.False(t, g.Risky(Cell{0, 0, 1, 1}))
}

func TestCell_Contains(t *testing.T) {
	cl := Cell{0, 0, 1, 1}
	assert.True(t, cl.Contains(Coordinate{0, 0}))
	assert.True(t, cl.Contains(Coordinate{1, 1}))
	assert.True(t, cl.Contains(Coordinate{0.5, 0.25}))
	assert.False(t, cl.Contains(Coordinate{1.5, 0.5}))
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Distance(Coordinate{0, 0}, Coordinate{3, 4}), 1e-12)
	assert.Zero(t, Distance(Coordinate{2, 2}, Coordinate{2, 2}))
}

func TestCoordinate_String(t *testing.T) {
	assert.Equal(t, "(1.5, -2)", Coordinate{1.5, -2}.String())
}

func TestGeometry_Positions(t *testing.T) {
	g, err := NewGeometry([]float64{0, 1}, []float64{5}, 1)
	require.NoError(t, err)

	want := []Coordinate{{0, 5}, {1, 5}, {2, 5}, {0, 6}, {1, 6}, {2, 6}}
	assert.Equal(t, want, g.Positions())
	for _, c := range g.Positions() {
		assert.True(t, g.Contains(c))
	}
}
