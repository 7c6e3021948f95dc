// Package gridroute finds least-cost routes across a uniform lattice laid
// over a region, steering around impassable points and paying extra for
// cells flagged as risky.
//
// 🚀 What is gridroute?
//
//	A small, dependency-light toolkit that brings together:
//		• Lattice geometry: ticks, boundary predicates, snapping
//		• Neighbour rules: 8 moves inside, 5 on an edge, 1 in a corner
//		• Edge costs: 1.0 straight, 1.5 diagonal, 1.3 along a risk cell
//		• Search: A* with decrease-key, plus parallel batches
//		• Reference searches: Dijkstra cost fields, BFS reachability
//		• Ops: Prometheus metrics, JSON/YAML lattice files, a CLI
//
// Under the hood:
//
//	lattice/    : Geometry, Coordinate, Cell, Snap, Neighbors, StepCost
//	astar/      : FindPath, FindPaths, Node, frontier
//	dijkstra/   : exhaustive single-source distances over a lattice
//	bfs/        : hop-count traversal honouring exclusions
//	metrics/    : astar.Observer exporting Prometheus series
//	gridfile/   : lattice documents → *lattice.Geometry
//	cmd/gridroute : route, batch and serve front end
//
// Quick example:
//
//	g, _ := lattice.NewGeometry([]float64{0, 1, 2}, []float64{0, 1, 2}, 1,
//		lattice.WithExcluded(lattice.Coordinate{X: 1, Y: 2}))
//	res, err := astar.FindPath(g, lattice.Coordinate{X: 0, Y: 0}, lattice.Coordinate{X: 3, Y: 2})
//
// res.Path runs start → goal inclusive and res.Cost is its total cost;
// errors.Is(err, astar.ErrUnreachable) when no route exists.
//
//	go get github.com/katalvlaran/gridroute
package gridroute
