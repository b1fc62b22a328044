package grid

import (
	"errors"
	"strconv"
)

// Sentinel errors for grid construction and position checks.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadCell indicates an unrecognised cell rune in Parse.
	ErrBadCell = errors.New("grid: unrecognised cell")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrBlocked indicates a position on a blocked cell.
	ErrBlocked = errors.New("grid: position is blocked")
)

// Cell is the occupancy state of one grid cell.
type Cell uint8

const (
	// Free cells may be traversed.
	Free Cell = iota
	// Blocked cells are obstacles.
	Blocked
)

// Position addresses a cell by row and column.
type Position struct {
	Row, Col int
}

// String renders p as "(row,col)".
func (p Position) String() string {
	return "(" + strconv.Itoa(p.Row) + "," + strconv.Itoa(p.Col) + ")"
}

// offsets lists 4-connected moves in the fixed order up, down, left, right.
var offsets = [4]Position{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
