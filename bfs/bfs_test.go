package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/gridroute/bfs"
	"github.com/katalvlaran/gridroute/lattice"
)

func unit(t *testing.T, n int, opts ...lattice.Option) *lattice.Geometry {
	t.Helper()
	ticks := make([]float64, n)
	for i := range ticks {
		ticks[i] = float64(i)
	}
	g, err := lattice.NewGeometry(ticks, ticks, 1, opts...)
	if err != nil {
		t.Fatalf("NewGeometry: %v", err)
	}
	return g
}

func at(x, y float64) lattice.Coordinate { return lattice.Coordinate{X: x, Y: y} }

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, at(0, 0)); !errors.Is(err, bfs.ErrGeometryNil) {
		t.Errorf("nil geometry: want ErrGeometryNil, got %v", err)
	}
	g := unit(t, 2, lattice.WithExcluded(at(1, 1)))
	if _, err := bfs.BFS(g, at(0.5, 0)); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("off-lattice start: want ErrStartVertexNotFound, got %v", err)
	}
	if _, err := bfs.BFS(g, at(1, 1)); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("excluded start: want ErrStartVertexNotFound, got %v", err)
	}
	if _, err := bfs.BFS(g, at(0, 0), bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_DepthsFromCentre checks hop depths on a 4-tick lattice (positions 0..4):
// the Chebyshev distance in the interior, with corners reached one hop later
// only when no diagonal leads into them.
func TestBFS_DepthsFromCentre(t *testing.T) {
	g := unit(t, 4)
	res, err := bfs.BFS(g, at(2, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(res.Order); got != 25 {
		t.Fatalf("visited %d positions; want 25", got)
	}
	cases := map[lattice.Coordinate]int{
		at(2, 2): 0,
		at(3, 3): 1,
		at(1, 2): 1,
		at(4, 4): 2,
		at(0, 2): 2,
		at(4, 0): 2,
	}
	for c, want := range cases {
		if got := res.Depth[c]; got != want {
			t.Errorf("Depth[%v] = %d; want %d", c, got, want)
		}
	}
	if res.Order[0] != at(2, 2) {
		t.Errorf("Order[0] = %v; want start", res.Order[0])
	}
}

// TestBFS_Moat confirms a goal sealed by exclusions is never reached.
func TestBFS_Moat(t *testing.T) {
	var moat []lattice.Coordinate
	for dx := -1.0; dx <= 1; dx++ {
		for dy := -1.0; dy <= 1; dy++ {
			if dx != 0 || dy != 0 {
				moat = append(moat, at(2+dx, 2+dy))
			}
		}
	}
	g := unit(t, 4, lattice.WithExcluded(moat...))
	res, err := bfs.BFS(g, at(0, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Reached(at(2, 2)) {
		t.Error("sealed goal reached")
	}
	if _, err := res.PathTo(at(2, 2)); err == nil {
		t.Error("PathTo sealed goal: want error")
	}
	if !res.Reached(at(4, 4)) {
		t.Error("border ring should stay connected")
	}
}

func TestBFS_PathTo(t *testing.T) {
	g := unit(t, 3)
	res, err := bfs.BFS(g, at(1, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	path, err := res.PathTo(at(3, 3))
	if err != nil {
		t.Fatalf("PathTo: %v", err)
	}
	want := []lattice.Coordinate{at(1, 1), at(2, 2), at(3, 3)}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := unit(t, 4)
	res, err := bfs.BFS(g, at(2, 2), bfs.WithMaxDepth(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(res.Order); got != 9 {
		t.Errorf("MaxDepth(1) visited %d; want 9", got)
	}

	onlyAxis := func(a, b lattice.Coordinate) bool { return a.X == b.X || a.Y == b.Y }
	res, err = bfs.BFS(g, at(2, 2), bfs.WithMaxDepth(1), bfs.WithFilterNeighbor(onlyAxis))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(res.Order); got != 5 {
		t.Errorf("axis-only MaxDepth(1) visited %d; want 5", got)
	}
}

func TestBFS_OnVisitAbortsAndContext(t *testing.T) {
	g := unit(t, 4)
	stop := errors.New("stop")
	count := 0
	_, err := bfs.BFS(g, at(2, 2), bfs.WithOnVisit(func(lattice.Coordinate, int) error {
		count++
		if count == 3 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("want wrapped stop, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, at(2, 2), bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}
