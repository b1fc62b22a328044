// Package dfs implements depth-first search for a labelled node in a tree.Tree.
//
// Search walks the tree in pre-order by explicit recursion, visiting children
// in the order they are stored, and stops at the first node whose label equals
// the target. Duplicate labels are allowed; the first one encountered wins.
// Trees have unique parent paths, so the returned path is the only route to
// that node, but not necessarily the shallowest node carrying the label.
//
// Metrics:
//
//   - NodesExpanded: nodes visited, including the match.
//   - PeakFrontier:  maximum recursion depth in nodes (the root alone is 1).
//     It is bounded by the tree height rather than its breadth.
//
// Complexity:
//
//   - Time:   O(V).
//   - Memory: O(height) for the recursion stack.
//
// Errors:
//
//   - ErrNilTree if the tree pointer is nil.
//
// A missing label is not an error: Search returns Found == false.
package dfs
