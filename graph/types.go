package graph

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrEmptyNodeID indicates a node was declared or referenced with an empty ID.
	ErrEmptyNodeID = errors.New("graph: node ID is empty")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("graph: negative edge weight")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("graph: edge weight must be finite")
)

// Edge is an outgoing arc stored by index.
type Edge struct {
	To     int     // index of the neighbour node
	Weight float64 // non-negative traversal cost
}

// Arc is an outgoing arc stored by ID, used by FromAdjacency.
type Arc struct {
	To     string
	Weight float64
}
