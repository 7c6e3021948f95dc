package astar_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/gridroute/astar"
	"github.com/katalvlaran/gridroute/lattice"
)

func benchGrid(b *testing.B, n int) *lattice.Geometry {
	b.Helper()
	var excluded []lattice.Coordinate
	for y := 1; y < n; y++ {
		excluded = append(excluded, at(float64(n/2), float64(y)))
	}
	return unitGrid(b, n, lattice.WithExcluded(excluded...))
}

// BenchmarkFindPath_Wall routes around a wall across most of a 100×100 lattice.
func BenchmarkFindPath_Wall(b *testing.B) {
	g := benchGrid(b, 100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := astar.FindPath(g, at(0, 50), at(100, 50)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFindPaths_Parallel runs 16 independent queries per iteration.
func BenchmarkFindPaths_Parallel(b *testing.B) {
	g := benchGrid(b, 60)
	queries := make([]astar.Query, 16)
	for i := range queries {
		queries[i] = astar.Query{Start: at(0, float64(i+1)), Goal: at(60, float64(59-i))}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := astar.FindPaths(context.Background(), g, queries); err != nil {
			b.Fatal(err)
		}
	}
}
