package problems_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/searchbench/bench"
	"github.com/katalvlaran/searchbench/problems"
)

func TestInstancesAreValid(t *testing.T) {
	instances := []bench.Instance{
		problems.SimpleGrid(),
		problems.MazeGrid(),
		problems.SampleTree(),
		problems.SampleGraph(),
	}
	for _, inst := range instances {
		assert.NoError(t, inst.Validate(), inst.Label())
	}
}

// TestSampleOutcomes pins the expected answers of every fixture.
func TestSampleOutcomes(t *testing.T) {
	h, err := bench.New()
	require.NoError(t, err)

	cases := []struct {
		alg    bench.Algorithm
		inst   bench.Instance
		length int
		cost   float64
	}{
		{bench.BFS(), problems.SimpleGrid(), 4, 4},
		{bench.BFS(), problems.MazeGrid(), 8, 8},
		{bench.DFS(), problems.SampleTree(), 2, 2},
		{bench.UCS(), problems.SampleGraph(), 2, 6},
	}
	for _, tc := range cases {
		rec := h.Run(tc.alg, tc.inst)
		require.False(t, rec.Failed, rec.Reason())
		require.True(t, rec.Found(), tc.inst.Label())
		assert.Equal(t, tc.length, *rec.PathLength, tc.inst.Label())
		assert.Equal(t, tc.cost, *rec.PathCost, tc.inst.Label())
	}
}

func TestFreshModels(t *testing.T) {
	a, b := problems.SimpleGrid(), problems.SimpleGrid()
	assert.NotSame(t, a.Grid, b.Grid)
	assert.Len(t, problems.GridSuite(), 2)
}
