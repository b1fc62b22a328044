// Package grid provides the immutable 2D occupancy grid searched by
// breadth-first search and A*.
//
// What:
//
//   - Grid wraps a rectangular matrix of Free/Blocked cells, deep-copied at construction.
//   - Position is a (Row, Col) value; identity is structural equality.
//   - Neighbors yields in-bounds free cells in 4-connectivity, always in the
//     order up, down, left, right, so tie-broken searches are reproducible.
//   - ToGraph converts free cells into a unit-weight graph.Graph for weighted searches.
//
// Complexity:
//
//   - New, Parse:  O(R×C) time and memory.
//   - InBounds, Free, Index: O(1).
//   - Neighbors:   O(1), appends at most four positions.
//   - ToGraph:     O(R×C) time, memory O(R×C + E).
//
// Errors:
//
//   - ErrEmptyGrid:      input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell:        Parse met a rune that is neither free nor blocked.
//   - ErrOutOfBounds:    Check on a position outside the grid.
//   - ErrBlocked:        Check on a blocked position.
package grid
