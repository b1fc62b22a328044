package astar

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/searchbench/grid"
)

// ErrUnsupportedHeuristic indicates an unknown heuristic name or a nil Heuristic.
var ErrUnsupportedHeuristic = errors.New("astar: unsupported heuristic")

// Heuristic estimates the remaining cost from p to goal.
type Heuristic func(p, goal grid.Position) float64

// Heuristic names accepted by HeuristicByName.
const (
	NameManhattan = "manhattan"
	NameEuclidean = "euclidean"
	NameZero      = "zero"
)

// Manhattan returns |Δrow| + |Δcol|.
func Manhattan(p, goal grid.Position) float64 {
	return float64(abs(p.Row-goal.Row) + abs(p.Col-goal.Col))
}

// Euclidean returns the straight-line distance between p and goal.
func Euclidean(p, goal grid.Position) float64 {
	return math.Hypot(float64(p.Row-goal.Row), float64(p.Col-goal.Col))
}

// Zero always returns 0.
func Zero(_, _ grid.Position) float64 { return 0 }

// CanonicalName trims and lower-cases a heuristic name, the form
// HeuristicByName matches against.
func CanonicalName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// HeuristicByName resolves a heuristic by case-insensitive name.
// Unknown names are an error; there is no default.
func HeuristicByName(name string) (Heuristic, error) {
	switch CanonicalName(name) {
	case NameManhattan:
		return Manhattan, nil
	case NameEuclidean:
		return Euclidean, nil
	case NameZero:
		return Zero, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedHeuristic, name)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
