package ucs_test

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/searchbench/graph"
	"github.com/katalvlaran/searchbench/ucs"
)

// sampleGraph is {A:[(B,1),(C,4)], B:[(C,3),(D,5)], C:[(D,2)], D:[]}.
func sampleGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.FromAdjacency(map[string][]graph.Arc{
		"A": {{To: "B", Weight: 1}, {To: "C", Weight: 4}},
		"B": {{To: "C", Weight: 3}, {To: "D", Weight: 5}},
		"C": {{To: "D", Weight: 2}},
		"D": nil,
	})
	require.NoError(t, err)

	return g
}

func TestSearch_NilGraph(t *testing.T) {
	_, err := ucs.Search(nil, "A", "B")
	assert.ErrorIs(t, err, ucs.ErrNilGraph)
}

// TestSearch_SampleGraphTieBreak pins the earliest-discovery tie-break.
// A→B→D, A→C→D and A→B→C→D all cost 6. D is first discovered while
// expanding B, and later equal-cost routes never replace it.
func TestSearch_SampleGraphTieBreak(t *testing.T) {
	g := sampleGraph(t)
	for i := 0; i < 10; i++ {
		res, err := ucs.Search(g, "A", "D")
		require.NoError(t, err)
		require.True(t, res.Found)
		assert.Equal(t, []string{"A", "B", "D"}, res.Path)
		assert.Equal(t, 6.0, res.Cost)
		assert.Equal(t, 4, res.NodesExpanded)
		assert.Equal(t, 2, res.PeakFrontier)
	}
}

func TestSearch_StartEqualsGoal(t *testing.T) {
	res, err := ucs.Search(sampleGraph(t), "C", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, res.Path)
	assert.Equal(t, 0.0, res.Cost)
	assert.Equal(t, 1, res.NodesExpanded)
}

func TestSearch_MissingEndpoints(t *testing.T) {
	g := sampleGraph(t)
	for _, tc := range [][2]string{{"X", "D"}, {"A", "X"}} {
		res, err := ucs.Search(g, tc[0], tc[1])
		require.NoError(t, err)
		assert.False(t, res.Found)
		assert.Zero(t, res.NodesExpanded)
	}
}

func TestSearch_Unreachable(t *testing.T) {
	// Edges are directed: nothing leads back to A.
	res, err := ucs.Search(sampleGraph(t), "D", "A")
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
	assert.Equal(t, 1, res.NodesExpanded)
}

// TestSearch_CheaperLongerRoute prefers more hops when they cost less.
func TestSearch_CheaperLongerRoute(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("S", "T", 10))
	require.NoError(t, g.AddEdge("S", "a", 1))
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("b", "T", 1))

	res, err := ucs.Search(g, "S", "T")
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "a", "b", "T"}, res.Path)
	assert.Equal(t, 3.0, res.Cost)
}

func TestSearch_ZeroWeights(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "C", 0))
	require.NoError(t, g.AddEdge("A", "C", 1))

	res, err := ucs.Search(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
	assert.Equal(t, 0.0, res.Cost)
}

// TestSearch_MatchesOracle checks optimal cost against gonum's Dijkstra on
// random sparse directed graphs.
func TestSearch_MatchesOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 150; trial++ {
		n := 2 + rng.Intn(15)
		g := graph.New()
		ref := simple.NewWeightedDirectedGraph(0, math.Inf(1))
		for i := 0; i < n; i++ {
			_, err := g.AddNode(nodeID(i))
			require.NoError(t, err)
			ref.AddNode(simple.Node(i))
		}
		seen := make(map[[2]int]bool)
		for k := 0; k < 3*n; k++ {
			u, v := rng.Intn(n), rng.Intn(n)
			if u == v || seen[[2]int{u, v}] {
				continue
			}
			seen[[2]int{u, v}] = true
			w := float64(rng.Intn(10))
			require.NoError(t, g.AddEdge(nodeID(u), nodeID(v), w))
			ref.SetWeightedEdge(ref.NewWeightedEdge(simple.Node(u), simple.Node(v), w))
		}
		goal := rng.Intn(n)
		want := path.DijkstraFrom(simple.Node(0), ref).WeightTo(int64(goal))

		res, err := ucs.Search(g, nodeID(0), nodeID(goal))
		require.NoError(t, err)
		require.Equal(t, !math.IsInf(want, 1), res.Found, "trial %d", trial)
		if !res.Found {
			continue
		}
		assert.InDelta(t, want, res.Cost, 1e-9, "trial %d", trial)
		assert.InDelta(t, res.Cost, pathCost(t, g, res.Path), 1e-9, "trial %d", trial)
	}
}

func nodeID(i int) string { return "v" + strconv.Itoa(i) }

// pathCost sums the cheapest edge between consecutive path nodes, failing
// if some hop is not an edge.
func pathCost(t *testing.T, g *graph.Graph, p []string) float64 {
	t.Helper()
	total := 0.0
	for i := 1; i < len(p); i++ {
		u, _ := g.Index(p[i-1])
		best := math.Inf(1)
		for _, e := range g.Neighbors(u) {
			if g.ID(e.To) == p[i] && e.Weight < best {
				best = e.Weight
			}
		}
		require.False(t, math.IsInf(best, 1), "no edge %s→%s", p[i-1], p[i])
		total += best
	}

	return total
}
