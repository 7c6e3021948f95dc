package bfs

import "github.com/katalvlaran/gridroute/lattice"

// Components partitions the traversable positions of g into regions that are
// connected when moves are taken in either direction. Corner positions only
// step inward, so a path between two positions of one component may exist
// in one direction only; positions in different components are never
// connected at all.
//
// Components are returned in the order of their first position in
// g.Positions(); each lists its positions in discovery order.
//
// Time:   O(V·d), d ≤ 8.
// Memory: O(V·d) for the undirected adjacency.
func Components(g *lattice.Geometry) ([][]lattice.Coordinate, error) {
	if g == nil {
		return nil, ErrGeometryNil
	}

	positions := g.Positions()
	adj := make(map[lattice.Coordinate][]lattice.Coordinate, len(positions))
	for _, p := range positions {
		if g.Excluded(p) {
			continue
		}
		for _, n := range g.Neighbors(p) {
			adj[p] = append(adj[p], n)
			adj[n] = append(adj[n], p)
		}
	}

	seen := make(map[lattice.Coordinate]bool, len(positions))
	var comps [][]lattice.Coordinate
	for _, p := range positions {
		if g.Excluded(p) || seen[p] {
			continue
		}
		queue := []lattice.Coordinate{p}
		seen[p] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, n := range adj[queue[qi]] {
				if !seen[n] {
					seen[n] = true
					queue = append(queue, n)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps, nil
}
