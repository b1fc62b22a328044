package scan

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/searchbench/astar"
	"github.com/katalvlaran/searchbench/bench"
	"github.com/katalvlaran/searchbench/graph"
	"github.com/katalvlaran/searchbench/grid"
	"github.com/katalvlaran/searchbench/tree"
)

// Family names of the default families.
const (
	NameGridFamily  = "grid"
	NameTreeFamily  = "tree"
	NameChainFamily = "chain"
)

// BuildFn builds the family's instance for size. Any randomness must come
// from rng; w supplies edge weights for weighted families.
type BuildFn func(size int, rng *rand.Rand, w WeightFn) (bench.Instance, error)

// Family is a parameterized problem generator and the algorithms run on it.
type Family struct {
	Name       string
	Build      BuildFn
	Algorithms []bench.Algorithm
}

// DefaultFamilies returns GridFamily, TreeFamily and ChainFamily.
func DefaultFamilies() []Family {
	return []Family{GridFamily(), TreeFamily(), ChainFamily()}
}

// GridFamily builds an open size×size grid searched from (0,0) to
// (size-1,size-1) by BFS and A* with both heuristics.
func GridFamily() Family {
	manhattan, _ := bench.NewAStar(astar.NameManhattan)
	euclidean, _ := bench.NewAStar(astar.NameEuclidean)

	return Family{
		Name:       NameGridFamily,
		Build:      buildGrid,
		Algorithms: []bench.Algorithm{bench.BFS(), manhattan, euclidean},
	}
}

func buildGrid(size int, _ *rand.Rand, _ WeightFn) (bench.Instance, error) {
	g, err := grid.Open(size, size)
	if err != nil {
		return nil, err
	}

	return bench.GridInstance{
		Name:  fmt.Sprintf("open grid %dx%d", size, size),
		Grid:  g,
		Start: grid.Position{},
		Goal:  grid.Position{Row: size - 1, Col: size - 1},
	}, nil
}

// TreeFamily builds a balanced binary tree of depth max(1, size/2) with
// levels labelled by tree.LevelLabel and searches it for the first leaf "N1".
func TreeFamily() Family {
	return Family{
		Name:       NameTreeFamily,
		Build:      buildTree,
		Algorithms: []bench.Algorithm{bench.DFS()},
	}
}

func buildTree(size int, _ *rand.Rand, _ WeightFn) (bench.Instance, error) {
	depth := max(1, size/2)
	t, err := tree.Balanced(depth, tree.LevelLabel)
	if err != nil {
		return nil, err
	}

	return bench.TreeInstance{
		Name:   fmt.Sprintf("balanced tree depth %d", depth),
		Tree:   t,
		Target: tree.LevelLabel(1),
	}, nil
}

// ChainFamily builds a directed chain of size nodes n0→n1→…, each edge
// weighted by one draw of the WeightFn, searched end to end by UCS.
func ChainFamily() Family {
	return Family{
		Name:       NameChainFamily,
		Build:      buildChain,
		Algorithms: []bench.Algorithm{bench.UCS()},
	}
}

func buildChain(size int, rng *rand.Rand, w WeightFn) (bench.Instance, error) {
	g := graph.New()
	if _, err := g.AddNode(chainID(0)); err != nil {
		return nil, err
	}
	for i := 1; i < size; i++ {
		if err := g.AddEdge(chainID(i-1), chainID(i), w(rng)); err != nil {
			return nil, err
		}
	}

	return bench.GraphInstance{
		Name:  fmt.Sprintf("weighted chain n=%d", size),
		Graph: g,
		Start: chainID(0),
		Goal:  chainID(size - 1),
	}, nil
}

func chainID(i int) string { return "n" + strconv.Itoa(i) }
