// Package ucs implements uniform-cost search (Dijkstra-style) between two
// nodes of a graph.Graph with non-negative edge weights.
//
// Overview:
//
//   - The frontier is a min-heap keyed by cumulative cost from the start.
//   - Equal costs are ordered by discovery sequence, so the entry pushed
//     first is expanded first.
//   - Relaxation only replaces a tentative cost when the new one is strictly
//     lower; the earliest-discovered of several equal-cost routes is kept.
//   - Decrease-key is simulated by re-insertion ("lazy decrease-key"): a
//     finalized set discards stale heap entries on pop.
//   - The goal is tested on pop, so the returned cost is optimal.
//
// Metrics:
//
//   - NodesExpanded: nodes finalized, including the goal. Stale pops are not counted.
//   - PeakFrontier:  largest heap length, stale entries included.
//
// Complexity:
//
//   - Time:  O((V + E) log E).
//   - Space: O(V + E); the heap may hold one entry per successful relaxation.
//
// Errors:
//
//   - ErrNilGraph if the graph pointer is nil.
//
// Start or goal missing from the graph, or an unreachable goal, yields
// Found == false and a nil error. Negative weights cannot reach this package:
// graph.AddEdge rejects them at construction time.
package ucs
