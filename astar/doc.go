// Package astar implements A* search over a grid.Grid with pluggable heuristics.
//
// The frontier is a min-heap ordered by f = g + h, where g is the cost from
// the start (one per move) and h the heuristic estimate to the goal. Ties are
// broken by lower h, then by earlier discovery. A best-known g is kept per
// cell; a strictly cheaper g re-inserts the cell and the older entry is
// discarded as stale when popped.
//
// Heuristics:
//
//   - Manhattan: |Δrow| + |Δcol|.
//   - Euclidean: straight-line distance.
//   - Zero:      always 0; A* then behaves like uniform-cost search.
//
// All three are admissible and consistent on 4-connected unit-cost grids, so
// the returned path is cost-optimal and no cell is expanded twice. With an
// informative heuristic A* expands no more cells than breadth-first search.
//
// Errors:
//
//   - ErrNilGrid:              grid pointer is nil.
//   - ErrUnsupportedHeuristic: unknown heuristic name, or a nil Heuristic.
//
// Start or goal out of bounds, blocked, or unreachable yields Found == false
// and a nil error.
package astar
