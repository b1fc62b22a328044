package graph

import (
	"fmt"
	"math"
	"sort"
)

// Graph is a directed weighted graph stored as an arena of nodes.
// The zero value is not usable; call New.
type Graph struct {
	ids   []string       // index → ID
	index map[string]int // ID → index
	adj   [][]Edge       // index → ordered outgoing edges
	edges int
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{index: make(map[string]int)}
}

// FromAdjacency builds a graph from an ID-keyed adjacency mapping.
// Keys are declared in sorted order so node indices are deterministic;
// each neighbour list keeps its given order.
func FromAdjacency(adj map[string][]Arc) (*Graph, error) {
	keys := make([]string, 0, len(adj))
	for id := range adj {
		keys = append(keys, id)
	}
	sort.Strings(keys)

	g := New()
	for _, id := range keys {
		if _, err := g.AddNode(id); err != nil {
			return nil, err
		}
	}
	for _, id := range keys {
		for _, a := range adj[id] {
			if err := g.AddEdge(id, a.To, a.Weight); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// AddNode declares id and returns its index. Declaring an existing ID
// returns the existing index.
func (g *Graph) AddNode(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyNodeID
	}
	if i, ok := g.index[id]; ok {
		return i, nil
	}
	i := len(g.ids)
	g.ids = append(g.ids, id)
	g.adj = append(g.adj, nil)
	g.index[id] = i

	return i, nil
}

// AddEdge appends the directed edge from→to with weight w.
// Missing endpoints are declared implicitly.
func (g *Graph) AddEdge(from, to string, w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: edge %s→%s weight=%g", ErrBadWeight, from, to, w)
	}
	if w < 0 {
		return fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, from, to, w)
	}
	u, err := g.AddNode(from)
	if err != nil {
		return err
	}
	v, err := g.AddNode(to)
	if err != nil {
		return err
	}
	g.adj[u] = append(g.adj[u], Edge{To: v, Weight: w})
	g.edges++

	return nil
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.ids) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Index returns the index of id and whether it exists.
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// HasNode reports whether id is a node of g.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.index[id]
	return ok
}

// ID returns the identifier of node i. It panics if i is out of range.
func (g *Graph) ID(i int) string { return g.ids[i] }

// IDs returns a copy of all node IDs in index order.
func (g *Graph) IDs() []string {
	out := make([]string, len(g.ids))
	copy(out, g.ids)

	return out
}

// Neighbors returns the ordered outgoing edges of node i.
// The returned slice is owned by g and must not be modified.
func (g *Graph) Neighbors(i int) []Edge { return g.adj[i] }
