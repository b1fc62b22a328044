// Package bfs implements breadth-first search over a grid.Grid.
//
// Search explores cells in level order from a start position using a FIFO
// queue. Each cell is enqueued at most once (it is marked discovered on
// enqueue) and counted as expanded when it is dequeued. Neighbours are
// generated up, down, left, right, so equal-length paths are tie-broken
// reproducibly.
//
// Guarantees:
//
//   - If a path exists, the returned path has the minimum number of moves.
//   - Start or goal out of bounds, blocked, or unreachable yields
//     Found == false and a nil error. This is the normal "no path" outcome.
//
// Metrics:
//
//   - NodesExpanded: number of dequeues, including the goal.
//   - PeakFrontier:  largest queue length observed.
//
// Complexity:
//
//   - Time:   O(R×C).
//   - Memory: O(R×C) for the discovered set, parent links and queue.
//
// Errors:
//
//   - ErrNilGrid if the grid pointer is nil.
package bfs
