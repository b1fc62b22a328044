package astar

import (
	"container/heap"
	"errors"
	"math"

	"github.com/katalvlaran/searchbench/grid"
	"github.com/katalvlaran/searchbench/search"
)

// ErrNilGrid is returned when Search is given a nil grid.
var ErrNilGrid = errors.New("astar: grid is nil")

// Search runs A* on g from start to goal guided by h.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. h must be non-nil (ErrUnsupportedHeuristic).
//  3. start and goal must be free cells; otherwise the result is
//     Found == false with zero counters and a nil error.
//
// Frontier order is f = g + h, then lower h, then earlier discovery.
// With an admissible, consistent h the returned path is cost-optimal.
func Search(g *grid.Grid, start, goal grid.Position, h Heuristic) (search.Result[grid.Position], error) {
	// 1) Validate grid is non-nil
	if g == nil {
		return search.Result[grid.Position]{}, ErrNilGrid
	}

	// 2) Validate heuristic is present
	if h == nil {
		return search.Result[grid.Position]{}, ErrUnsupportedHeuristic
	}

	// 3) Blocked or out-of-bounds endpoints cannot be connected
	if !g.Free(start) || !g.Free(goal) {
		return search.NotFound[grid.Position](0, 0), nil
	}

	// 4) Prepare per-cell state, indexed row-major
	n := g.Size()
	r := &runner{
		grid:  g,
		h:     h,
		goal:  goal,
		best:  make([]float64, n),
		prev:  make([]int, n),
		pq:    make(entryPQ, 0, n),
		goalI: g.Index(goal),
	}

	// 5) Seed the frontier and run the main loop
	r.init(start)

	return r.process(), nil
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	grid     *grid.Grid    // input grid; read-only during the search
	h        Heuristic     // remaining-cost estimate
	goal     grid.Position // goal position, passed to h
	goalI    int           // goal row-major index
	best     []float64     // best-known g per cell
	prev     []int         // predecessor on the best-known route, -1 for none
	pq       entryPQ       // min-heap of *entry, may hold stale entries
	seq      int           // discovery counter for tie-breaking
	expanded int           // live entries popped so far
	peak     int           // largest heap size observed
}

// init sets every g to +Inf and pushes the start with g = 0.
func (r *runner) init(start grid.Position) {
	// 1) best[v] = +∞ and no predecessor for every cell
	for i := range r.best {
		r.best[i] = math.Inf(1)
		r.prev[i] = -1
	}

	// 2) The start costs nothing to reach
	s := r.grid.Index(start)
	r.best[s] = 0

	// 3) Establish heap invariants, then push the start
	heap.Init(&r.pq)
	r.push(s, start, 0)
}

// push inserts cell idx with cost-so-far g and updates the peak frontier size.
func (r *runner) push(idx int, p grid.Position, g float64) {
	h := r.h(p, r.goal)
	heap.Push(&r.pq, &entry{idx: idx, g: g, h: h, f: g + h, seq: r.seq})
	r.seq++
	if r.pq.Len() > r.peak {
		r.peak = r.pq.Len()
	}
}

// process pops entries until the goal is expanded or the frontier drains.
// There is no closed set: a cell is expanded again only through a strictly
// cheaper g, which a consistent heuristic never produces.
func (r *runner) process() search.Result[grid.Position] {
	buf := make([]grid.Position, 0, 4)
	for r.pq.Len() > 0 {
		// 1) Extract the lowest-f entry
		e := heap.Pop(&r.pq).(*entry)

		// 2) Stale: a cheaper route to this cell was pushed after e
		if e.g > r.best[e.idx] {
			continue
		}

		// 3) Count the expansion and test for the goal
		r.expanded++
		if e.idx == r.goalI {
			return r.result()
		}

		// 4) Relax the free neighbours in up, down, left, right order
		p := r.grid.Position(e.idx)
		for _, nb := range r.grid.Neighbors(p, buf[:0]) {
			v := r.grid.Index(nb)
			g := e.g + 1
			if g >= r.best[v] {
				continue
			}
			r.best[v] = g
			r.prev[v] = e.idx
			r.push(v, nb, g)
		}
	}

	return search.NotFound[grid.Position](r.expanded, r.peak)
}

// result rebuilds the start→goal path from predecessor links.
func (r *runner) result() search.Result[grid.Position] {
	// Walk goal → start, then flip.
	var path []grid.Position
	for cur := r.goalI; cur >= 0; cur = r.prev[cur] {
		path = append(path, r.grid.Position(cur))
	}
	search.Reverse(path)

	return search.Result[grid.Position]{
		Path:          path,
		Cost:          r.best[r.goalI],
		Found:         true,
		NodesExpanded: r.expanded,
		PeakFrontier:  r.peak,
	}
}

// entry is one frontier item.
type entry struct {
	idx     int     // row-major cell index
	g, h, f float64 // cost so far, estimate, and their sum
	seq     int     // discovery order
}

// entryPQ is a min-heap ordered by f, then h, then discovery sequence.
type entryPQ []*entry

// Len returns the number of items in the heap.
func (pq entryPQ) Len() int { return len(pq) }

// Less orders by f, preferring lower h and then earlier discovery on ties.
func (pq entryPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}

	return a.seq < b.seq
}

// Swap swaps two elements in the heap.
func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(*entry)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // avoid memory leak
	*pq = old[:n-1]

	return item
}
