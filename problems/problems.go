// Package problems holds the fixed sample instances the comparison driver
// runs: a small open grid, a maze, a six-node tree and a four-node weighted
// graph. Every call returns freshly built models.
package problems

import (
	"github.com/katalvlaran/searchbench/bench"
	"github.com/katalvlaran/searchbench/graph"
	"github.com/katalvlaran/searchbench/grid"
	"github.com/katalvlaran/searchbench/tree"
)

// Instance names.
const (
	NameSimpleGrid  = "Simple 3x3"
	NameMazeGrid    = "Maze 5x5"
	NameSampleTree  = "Sample tree"
	NameSampleGraph = "Sample graph"
)

// mazeRows is a 5×5 maze whose shortest corner-to-corner route is 8 moves.
var mazeRows = []string{
	".#...",
	".#.#.",
	"...#.",
	"##.#.",
	".....",
}

// SimpleGrid is an open 3×3 grid from (0,0) to (2,2).
func SimpleGrid() bench.GridInstance {
	g, err := grid.Open(3, 3)
	if err != nil {
		panic(err)
	}

	return bench.GridInstance{
		Name:  NameSimpleGrid,
		Grid:  g,
		Start: grid.Position{Row: 0, Col: 0},
		Goal:  grid.Position{Row: 2, Col: 2},
	}
}

// MazeGrid is a 5×5 maze from (0,0) to (4,4).
func MazeGrid() bench.GridInstance {
	g, err := grid.Parse(mazeRows)
	if err != nil {
		panic(err)
	}

	return bench.GridInstance{
		Name:  NameMazeGrid,
		Grid:  g,
		Start: grid.Position{Row: 0, Col: 0},
		Goal:  grid.Position{Row: 4, Col: 4},
	}
}

// GridSuite returns the grid instances compared against each other.
func GridSuite() []bench.GridInstance {
	return []bench.GridInstance{SimpleGrid(), MazeGrid()}
}

// SampleTree is A→{B,C}, B→{D}, C→{E,F}, searched for D.
func SampleTree() bench.TreeInstance {
	t := tree.New("A")
	b, _ := t.AddChild(tree.Root, "B")
	c, _ := t.AddChild(tree.Root, "C")
	_, _ = t.AddChild(b, "D")
	_, _ = t.AddChild(c, "E")
	_, _ = t.AddChild(c, "F")

	return bench.TreeInstance{Name: NameSampleTree, Tree: t, Target: "D"}
}

// SampleGraph is {A:[(B,1),(C,4)], B:[(C,3),(D,5)], C:[(D,2)], D:[]}, searched A→D.
func SampleGraph() bench.GraphInstance {
	g, err := graph.FromAdjacency(map[string][]graph.Arc{
		"A": {{To: "B", Weight: 1}, {To: "C", Weight: 4}},
		"B": {{To: "C", Weight: 3}, {To: "D", Weight: 5}},
		"C": {{To: "D", Weight: 2}},
		"D": nil,
	})
	if err != nil {
		panic(err)
	}

	return bench.GraphInstance{Name: NameSampleGraph, Graph: g, Start: "A", Goal: "D"}
}
