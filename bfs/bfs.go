package bfs

import (
	"errors"

	"github.com/katalvlaran/searchbench/grid"
	"github.com/katalvlaran/searchbench/search"
)

// ErrNilGrid is returned when Search is given a nil grid.
var ErrNilGrid = errors.New("bfs: grid is nil")

// walker encapsulates mutable BFS state. Cells are addressed by row-major index.
type walker struct {
	grid       *grid.Grid // input grid; read-only during the search
	goal       int        // goal row-major index
	queue      []int      // FIFO backing slice; entries before head are consumed
	head       int        // index of the next cell to dequeue
	discovered []bool     // set on enqueue so no cell is queued twice
	parent     []int      // BFS-tree parent, -1 for the start
	expanded   int        // cells dequeued so far
	peak       int        // largest live queue length observed
}

// Search runs breadth-first search on g from start to goal.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start and goal must be free cells; otherwise the result is
//     Found == false with zero counters and a nil error.
//
// Neighbours are queued up, down, left, right, so the returned shortest path
// is the same on every run.
func Search(g *grid.Grid, start, goal grid.Position) (search.Result[grid.Position], error) {
	// 1) Validate grid is non-nil
	if g == nil {
		return search.Result[grid.Position]{}, ErrNilGrid
	}

	// 2) Blocked or out-of-bounds endpoints cannot be connected
	if !g.Free(start) || !g.Free(goal) {
		return search.NotFound[grid.Position](0, 0), nil
	}

	// 3) Prepare per-cell state
	n := g.Size()
	w := &walker{
		grid:       g,
		goal:       g.Index(goal),
		queue:      make([]int, 0, n),
		discovered: make([]bool, n),
		parent:     make([]int, n),
	}

	// 4) Seed the queue with start and run the main loop
	w.enqueue(g.Index(start), -1)

	return w.loop(), nil
}

// enqueue marks idx discovered, records its parent and appends it to the queue.
func (w *walker) enqueue(idx, parent int) {
	w.discovered[idx] = true
	w.parent[idx] = parent
	w.queue = append(w.queue, idx)
	if size := len(w.queue) - w.head; size > w.peak {
		w.peak = size
	}
}

// dequeue pops the oldest queued cell and counts it as expanded.
func (w *walker) dequeue() int {
	idx := w.queue[w.head]
	w.head++
	w.expanded++

	return idx
}

// loop processes the queue until the goal is dequeued or the queue drains.
func (w *walker) loop() search.Result[grid.Position] {
	buf := make([]grid.Position, 0, 4)
	for w.head < len(w.queue) {
		// 1) Take the oldest cell
		u := w.dequeue()

		// 2) Goal test on dequeue
		if u == w.goal {
			return w.result(u)
		}

		// 3) Queue every undiscovered free neighbour
		for _, nb := range w.grid.Neighbors(w.grid.Position(u), buf[:0]) {
			if v := w.grid.Index(nb); !w.discovered[v] {
				w.enqueue(v, u)
			}
		}
	}

	return search.NotFound[grid.Position](w.expanded, w.peak)
}

// result rebuilds the start→goal path by following parent links.
func (w *walker) result(goal int) search.Result[grid.Position] {
	// Walk goal → start, then flip.
	var path []grid.Position
	for cur := goal; cur >= 0; cur = w.parent[cur] {
		path = append(path, w.grid.Position(cur))
	}
	search.Reverse(path)

	return search.Result[grid.Position]{
		Path:          path,
		Cost:          float64(len(path) - 1),
		Found:         true,
		NodesExpanded: w.expanded,
		PeakFrontier:  w.peak,
	}
}
