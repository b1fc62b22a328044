package ucs

import (
	"container/heap"
	"errors"
	"math"

	"github.com/katalvlaran/searchbench/graph"
	"github.com/katalvlaran/searchbench/search"
)

// ErrNilGraph is returned when Search is given a nil graph.
var ErrNilGraph = errors.New("ucs: graph is nil")

// Search returns a minimum-cost path from start to goal in g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and goal must be nodes of g; otherwise the result is Found == false
//     with zero counters and a nil error.
//
// Equal-cost routes are resolved by discovery order: the first route that
// reaches a node at its final cost is kept.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) with lazy decrease-key.
func Search(g *graph.Graph, start, goal string) (search.Result[string], error) {
	// 1) Validate graph is non-nil
	if g == nil {
		return search.Result[string]{}, ErrNilGraph
	}

	// 2) Resolve endpoints; an absent endpoint is "no path", not an error
	s, okStart := g.Index(start)
	t, okGoal := g.Index(goal)
	if !okStart || !okGoal {
		return search.NotFound[string](0, 0), nil
	}

	// 3) Prepare per-node state, indexed like the graph arena
	V := g.Len()
	r := &runner{
		g:    g,
		goal: t,
		dist: make([]float64, V),
		prev: make([]int, V),
		done: make([]bool, V),
		pq:   make(nodePQ, 0, V), // capacity V is a reasonable starting point
	}

	// 4) Seed the frontier with start and run the main loop
	r.init(s)

	return r.process(), nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g        *graph.Graph // input graph; read-only during the search
	goal     int          // arena index of the goal
	dist     []float64    // best-known cost from start
	prev     []int        // predecessor on the best-known route, -1 for none
	done     []bool       // cost finalized
	pq       nodePQ       // min-heap of *nodeItem, may hold stale entries
	seq      int          // discovery counter for tie-breaking
	expanded int          // nodes finalized so far
	peak     int          // largest heap size observed
}

// init sets every distance to +Inf and pushes the start with cost 0.
func (r *runner) init(start int) {
	// 1) dist[v] = +∞ and no predecessor for every node
	for v := range r.dist {
		r.dist[v] = math.Inf(1)
		r.prev[v] = -1
	}

	// 2) Distance to the start is zero
	r.dist[start] = 0

	// 3) Establish heap invariants, then push the start
	heap.Init(&r.pq)
	r.push(start, 0)
}

// push inserts a frontier entry stamped with the next discovery sequence
// and updates the peak frontier size.
func (r *runner) push(id int, cost float64) {
	heap.Push(&r.pq, &nodeItem{id: id, cost: cost, seq: r.seq})
	r.seq++
	if r.pq.Len() > r.peak {
		r.peak = r.pq.Len()
	}
}

// process pops entries until the goal is finalized or the heap drains.
//
// Loop termination conditions:
//
//   - The goal is popped with a live entry (its cost is final).
//   - The heap becomes empty (goal unreachable).
func (r *runner) process() search.Result[string] {
	for r.pq.Len() > 0 {
		// 1) Extract the cheapest entry
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// 2) Stale entry: u was finalized through a cheaper or earlier route
		if r.done[u] {
			continue
		}

		// 3) Finalize u and count the expansion
		r.done[u] = true
		r.expanded++

		// 4) Goal test on expansion, so its cost is minimal
		if u == r.goal {
			return r.result()
		}

		// 5) Relax outgoing edges
		r.relax(u)
	}

	return search.NotFound[string](r.expanded, r.peak)
}

// relax tries to improve the cost of every successor of the finalized node u.
func (r *runner) relax(u int) {
	for _, e := range r.g.Neighbors(u) {
		v := e.To
		if r.done[v] {
			continue
		}
		newDist := r.dist[u] + e.Weight
		// Strict "<" keeps the first-discovered route among equal costs.
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		r.push(v, newDist)
	}
}

// result rebuilds the path to the goal from predecessor links.
func (r *runner) result() search.Result[string] {
	// Walk goal → start, then flip.
	var path []string
	for cur := r.goal; cur >= 0; cur = r.prev[cur] {
		path = append(path, r.g.ID(cur))
	}
	search.Reverse(path)

	return search.Result[string]{
		Path:          path,
		Cost:          r.dist[r.goal],
		Found:         true,
		NodesExpanded: r.expanded,
		PeakFrontier:  r.peak,
	}
}

// nodeItem is one frontier entry.
type nodeItem struct {
	id   int     // arena index
	cost float64 // cumulative cost when pushed
	seq  int     // discovery order
}

// nodePQ is a min-heap of *nodeItem ordered by cost, then by discovery sequence.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by cost, breaking ties by earlier discovery.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // avoid memory leak
	*pq = old[:n-1]

	return item
}
