package grid

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/searchbench/graph"
)

// Grid is an immutable rectangular occupancy grid stored row-major.
type Grid struct {
	rows, cols int
	cells      []Cell
}

// New constructs a Grid from a non-empty, rectangular matrix of cells.
// The input is copied, so later changes to cells do not affect the Grid.
func New(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	g := &Grid{rows: h, cols: w, cells: make([]Cell, 0, h*w)}
	for r, row := range cells {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
		g.cells = append(g.cells, row...)
	}

	return g, nil
}

// Open returns a rows×cols grid with every cell free.
func Open(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}

	return &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}, nil
}

// Parse builds a Grid from text rows. '.' and '0' are free; '#' and '1' are blocked.
func Parse(lines []string) (*Grid, error) {
	cells := make([][]Cell, len(lines))
	for r, line := range lines {
		row := make([]Cell, 0, len(line))
		for c, ch := range line {
			switch ch {
			case '.', '0':
				row = append(row, Free)
			case '#', '1':
				row = append(row, Blocked)
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, ch, r, c)
			}
		}
		cells[r] = row
	}

	return New(cells)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns the total number of cells.
func (g *Grid) Size() int { return len(g.cells) }

// InBounds reports whether p lies within the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Free reports whether p is in bounds and not blocked.
func (g *Grid) Free(p Position) bool {
	return g.InBounds(p) && g.cells[g.Index(p)] == Free
}

// Check returns ErrOutOfBounds or ErrBlocked when p cannot be a start or goal.
func (g *Grid) Check(p Position) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.rows, g.cols)
	}
	if g.cells[g.Index(p)] == Blocked {
		return fmt.Errorf("%w: %v", ErrBlocked, p)
	}

	return nil
}

// Index maps p to its row-major index. p must be in bounds.
func (g *Grid) Index(p Position) int {
	return p.Row*g.cols + p.Col
}

// Position converts a row-major index back to a Position.
func (g *Grid) Position(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}

// FreeCount returns the number of free cells.
func (g *Grid) FreeCount() int {
	n := 0
	for _, c := range g.cells {
		if c == Free {
			n++
		}
	}

	return n
}

// Neighbors appends the free 4-connected neighbours of p to buf, in the
// order up, down, left, right, and returns the extended slice.
func (g *Grid) Neighbors(p Position, buf []Position) []Position {
	for _, d := range offsets {
		n := Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
		if g.Free(n) {
			buf = append(buf, n)
		}
	}

	return buf
}

// NodeID formats the graph node identifier used by ToGraph for p.
func NodeID(p Position) string {
	return strconv.Itoa(p.Row) + "," + strconv.Itoa(p.Col)
}

// ToGraph converts the free cells into a directed graph.Graph with a unit-weight
// edge for every move Neighbors allows. Nodes are declared in row-major order.
func (g *Grid) ToGraph() *graph.Graph {
	out := graph.New()
	for i, c := range g.cells {
		if c == Free {
			_, _ = out.AddNode(NodeID(g.Position(i)))
		}
	}
	buf := make([]Position, 0, len(offsets))
	for i, c := range g.cells {
		if c != Free {
			continue
		}
		p := g.Position(i)
		for _, n := range g.Neighbors(p, buf[:0]) {
			// IDs are non-empty and the weight is 1, so AddEdge cannot fail.
			_ = out.AddEdge(NodeID(p), NodeID(n), 1)
		}
	}

	return out
}
