// Package graph provides the weighted graph model searched by uniform-cost search.
//
// What:
//
//   - Graph is an arena of string-identified nodes addressed by stable integer index.
//   - Each node owns an ordered list of outgoing edges (neighbour index, weight ≥ 0).
//   - Neighbours referenced by an edge but never declared become implicit
//     terminal nodes with no outgoing edges.
//
// Invariants:
//
//   - Weights are finite and non-negative; violations are rejected by AddEdge,
//     so searches never observe them.
//   - Node indices are assigned in insertion order and never change.
//   - Edge order per node is insertion order; searches rely on it for
//     deterministic tie-breaking.
//
// Complexity:
//
//   - AddNode, AddEdge, Index: O(1) amortized.
//   - Neighbors: O(1), returns the stored slice.
//
// Errors:
//
//   - ErrEmptyNodeID:    node ID is the empty string.
//   - ErrNegativeWeight: edge weight < 0.
//   - ErrBadWeight:      edge weight is NaN or ±Inf.
//
// Graph is not safe for concurrent mutation; it is built once and then read.
package graph
