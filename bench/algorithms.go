package bench

import (
	"fmt"

	"github.com/katalvlaran/searchbench/astar"
	"github.com/katalvlaran/searchbench/bfs"
	"github.com/katalvlaran/searchbench/dfs"
	"github.com/katalvlaran/searchbench/search"
	"github.com/katalvlaran/searchbench/ucs"
)

// Algorithm is a named search engine the harness can time.
type Algorithm interface {
	// Name identifies the algorithm in metrics records.
	Name() string
	// Search runs the engine on inst. Instances of an unsupported form
	// yield ErrInstanceMismatch.
	Search(inst Instance) (search.Summary, error)
}

// Algorithm names used by the built-in adapters.
const (
	NameBFS = "BFS"
	NameDFS = "DFS"
	NameUCS = "UCS"
)

type bfsAlgorithm struct{}

// BFS returns the breadth-first grid search adapter.
func BFS() Algorithm { return bfsAlgorithm{} }

func (bfsAlgorithm) Name() string { return NameBFS }

func (a bfsAlgorithm) Search(inst Instance) (search.Summary, error) {
	gi, err := asGrid(a, inst)
	if err != nil {
		return search.Summary{}, err
	}
	res, err := bfs.Search(gi.Grid, gi.Start, gi.Goal)

	return res.Summary(), err
}

type dfsAlgorithm struct{}

// DFS returns the depth-first tree search adapter.
func DFS() Algorithm { return dfsAlgorithm{} }

func (dfsAlgorithm) Name() string { return NameDFS }

func (a dfsAlgorithm) Search(inst Instance) (search.Summary, error) {
	var ti TreeInstance
	switch v := inst.(type) {
	case TreeInstance:
		ti = v
	case *TreeInstance:
		ti = *v
	default:
		return search.Summary{}, mismatch(a, inst)
	}
	res, err := dfs.Search(ti.Tree, ti.Target)

	return res.Summary(), err
}

type ucsAlgorithm struct{}

// UCS returns the uniform-cost graph search adapter.
func UCS() Algorithm { return ucsAlgorithm{} }

func (ucsAlgorithm) Name() string { return NameUCS }

func (a ucsAlgorithm) Search(inst Instance) (search.Summary, error) {
	var gi GraphInstance
	switch v := inst.(type) {
	case GraphInstance:
		gi = v
	case *GraphInstance:
		gi = *v
	default:
		return search.Summary{}, mismatch(a, inst)
	}
	res, err := ucs.Search(gi.Graph, gi.Start, gi.Goal)

	return res.Summary(), err
}

type astarAlgorithm struct {
	name string
	h    astar.Heuristic
}

// AStar returns the A* grid search adapter for heuristic h, reported as name.
func AStar(name string, h astar.Heuristic) (Algorithm, error) {
	if h == nil {
		return nil, fmt.Errorf("%w: nil heuristic for %q", astar.ErrUnsupportedHeuristic, name)
	}

	return astarAlgorithm{name: name, h: h}, nil
}

// NewAStar resolves heuristic by name (see astar.HeuristicByName) and returns
// an adapter named "A*-<canonical heuristic name>". Unknown names fail here,
// before any run.
func NewAStar(heuristic string) (Algorithm, error) {
	h, err := astar.HeuristicByName(heuristic)
	if err != nil {
		return nil, err
	}

	return AStar("A*-"+astar.CanonicalName(heuristic), h)
}

func (a astarAlgorithm) Name() string { return a.name }

func (a astarAlgorithm) Search(inst Instance) (search.Summary, error) {
	gi, err := asGrid(a, inst)
	if err != nil {
		return search.Summary{}, err
	}
	res, err := astar.Search(gi.Grid, gi.Start, gi.Goal, a.h)

	return res.Summary(), err
}

func asGrid(a Algorithm, inst Instance) (GridInstance, error) {
	switch v := inst.(type) {
	case GridInstance:
		return v, nil
	case *GridInstance:
		return *v, nil
	default:
		return GridInstance{}, mismatch(a, inst)
	}
}

func mismatch(a Algorithm, inst Instance) error {
	return fmt.Errorf("%w: %s cannot run %T", ErrInstanceMismatch, a.Name(), inst)
}
