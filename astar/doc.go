// Package astar finds least-cost routes over a lattice.Geometry with a
// best-first (A*) search guided by a Euclidean heuristic.
//
// Overview:
//
//   - FindPath snaps both endpoints onto the lattice, seeds the frontier with
//     the start node and repeatedly expands the node of lowest f = g + h,
//     until the goal is popped (success) or the frontier is empty (ErrUnreachable).
//   - The frontier supports decrease-key: a coordinate is queued at most once
//     and its entry is updated in place when a cheaper route to it is found.
//   - Expanded nodes enter a closed set and are never revisited.
//   - Ties on f are broken first-in first-out, which makes results deterministic.
//
// Heuristic:
//
// The default heuristic is the Euclidean distance to the goal measured in
// cells (lattice.Distance / CellSize). Every step costs at least the number of
// cells it covers (1.0 for an axis move, 1.5 ≥ √2 for a diagonal), so the
// heuristic is admissible and consistent for any cell size and the returned
// path is cost-optimal.
//
// Options:
//
//   - WithContext:       cancellation, checked once per expansion.
//   - WithMaxExpansions: caps the number of expanded nodes; hitting the cap
//     returns ErrExpansionLimit, which wraps ErrUnreachable.
//   - WithHeuristic:     replaces the default heuristic.
//   - WithObserver:      receives the Result and error of every search.
//   - WithOnExpand:      hook invoked for every expanded coordinate.
//   - WithWorkers:       parallelism for FindPaths.
//
// Errors:
//
//   - ErrUnreachable:     no path exists; an expected, non-fatal outcome.
//   - ErrExpansionLimit:  the expansion cap was hit (also matches ErrUnreachable).
//   - lattice.ErrInvalidGeometry: nil geometry or an endpoint outside the lattice.
//   - ErrOptionViolation: an invalid option was supplied.
//
// A start and goal that snap to the same coordinate yield a one-element path
// and no error.
//
// Concurrency:
//
// A search owns its frontier and closed set; the Geometry is only read.
// Independent searches may run in parallel on the same Geometry, and
// FindPaths does exactly that with a bounded worker pool.
package astar
