package scan_test

import (
	"bytes"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/searchbench/bench"
	"github.com/katalvlaran/searchbench/graph"
	"github.com/katalvlaran/searchbench/scan"
)

var ignoreTime = cmpopts.IgnoreFields(bench.MetricsRecord{}, "ElapsedTimeMS")

func TestNewErrors(t *testing.T) {
	_, err := scan.New()
	require.ErrorIs(t, err, scan.ErrNeedRandSource)

	_, err = scan.New(scan.WithRand(nil))
	require.ErrorIs(t, err, scan.ErrOptionViolation)

	_, err = scan.New(scan.WithSeed(1), scan.WithWeightFn(nil))
	require.ErrorIs(t, err, scan.ErrOptionViolation)

	_, err = scan.New(scan.WithSeed(1), scan.WithFamilies())
	require.ErrorIs(t, err, scan.ErrOptionViolation)

	_, err = scan.New(scan.WithSeed(1), scan.WithHarness(nil))
	require.ErrorIs(t, err, scan.ErrOptionViolation)

	_, err = scan.New(scan.WithSeed(1), scan.WithFamilies(scan.GridFamily(), scan.GridFamily()))
	require.ErrorIs(t, err, scan.ErrDuplicateAlgorithm)

	withNil := scan.TreeFamily()
	withNil.Algorithms = []bench.Algorithm{bench.DFS(), nil}
	require.NotPanics(t, func() {
		_, err = scan.New(scan.WithSeed(1), scan.WithFamilies(withNil))
	})
	require.ErrorIs(t, err, scan.ErrOptionViolation)
}

func TestScanSizeValidation(t *testing.T) {
	s, err := scan.New(scan.WithSeed(1))
	require.NoError(t, err)

	_, err = s.Scan([]int{0})
	require.ErrorIs(t, err, scan.ErrBadSize)
	_, err = s.Scan([]int{3, -1})
	require.ErrorIs(t, err, scan.ErrBadSize)
	_, err = s.Scan([]int{4, 4})
	require.ErrorIs(t, err, scan.ErrUnsortedSizes)
	_, err = s.Scan([]int{5, 2})
	require.ErrorIs(t, err, scan.ErrUnsortedSizes)

	points, err := s.Scan(nil)
	require.NoError(t, err)
	require.Empty(t, points)
}

// TestScanShape checks size order, record keys and the exact counts of the
// default families.
func TestScanShape(t *testing.T) {
	s, err := scan.New(scan.WithSeed(42))
	require.NoError(t, err)

	sizes := []int{1, 2, 5, 8}
	points, err := s.Scan(sizes)
	require.NoError(t, err)
	require.Len(t, points, len(sizes))

	for i, p := range points {
		require.Equal(t, sizes[i], p.Size)
		require.Len(t, p.Records, 5)
		for name, rec := range p.Records {
			require.False(t, rec.Failed, "%s at %d: %s", name, p.Size, rec.Reason())
			require.True(t, rec.Found(), "%s at %d", name, p.Size)
		}

		n := p.Size
		bfs := p.Records[bench.NameBFS]
		assert.Equal(t, n*n, bfs.NodesExpanded, "BFS expands every cell before the far corner")
		assert.Equal(t, 2*(n-1), *bfs.PathLength)
		for _, name := range []string{"A*-manhattan", "A*-euclidean"} {
			assert.Equal(t, 2*(n-1), *p.Records[name].PathLength, name)
		}
		assert.LessOrEqual(t, p.Records["A*-manhattan"].NodesExpanded, bfs.NodesExpanded)

		depth := max(1, n/2)
		dfs := p.Records[bench.NameDFS]
		assert.Equal(t, depth, dfs.NodesExpanded)
		assert.Equal(t, depth, dfs.PeakFrontierSize)
		assert.Equal(t, depth-1, *dfs.PathLength)

		ucs := p.Records[bench.NameUCS]
		assert.Equal(t, n, ucs.NodesExpanded)
		assert.Equal(t, 1, ucs.PeakFrontierSize)
		assert.Equal(t, n-1, *ucs.PathLength)
		cost := *ucs.PathCost
		assert.Equal(t, math.Trunc(cost), cost, "integer weights")
		assert.GreaterOrEqual(t, cost, float64(scan.DefaultMinWeight*(n-1)))
		assert.LessOrEqual(t, cost, float64(scan.DefaultMaxWeight*(n-1)))
	}
}

// TestSeedReproducible rescans with the same scanner and with an equivalent
// caller-owned generator.
func TestSeedReproducible(t *testing.T) {
	sizes := []int{3, 6, 9, 12}

	s, err := scan.New(scan.WithSeed(7))
	require.NoError(t, err)
	first, err := s.Scan(sizes)
	require.NoError(t, err)
	second, err := s.Scan(sizes)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(first, second, ignoreTime))

	r, err := scan.New(scan.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	viaRand, err := r.Scan(sizes)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(first, viaRand, ignoreTime))
}

func TestSeedChangesWeights(t *testing.T) {
	sizes := []int{40}
	costOf := func(seed int64) float64 {
		s, err := scan.New(scan.WithSeed(seed), scan.WithFamilies(scan.ChainFamily()))
		require.NoError(t, err)
		points, err := s.Scan(sizes)
		require.NoError(t, err)
		return *points[0].Records[bench.NameUCS].PathCost
	}

	seen := map[float64]bool{}
	for seed := int64(1); seed <= 5; seed++ {
		seen[costOf(seed)] = true
	}
	assert.Greater(t, len(seen), 1)
}

// TestBuildFailureIsRecorded keeps scanning after a family fails to build.
func TestBuildFailureIsRecorded(t *testing.T) {
	negative := func(*rand.Rand) float64 { return -1 }
	s, err := scan.New(
		scan.WithSeed(1),
		scan.WithWeightFn(negative),
		scan.WithFamilies(scan.ChainFamily(), scan.TreeFamily()),
	)
	require.NoError(t, err)

	points, err := s.Scan([]int{1, 2, 4})
	require.NoError(t, err)
	require.Len(t, points, 3)

	// a single node has no edges to weigh
	assert.False(t, points[0].Records[bench.NameUCS].Failed)

	for _, p := range points[1:] {
		rec := p.Records[bench.NameUCS]
		require.True(t, rec.Failed)
		require.ErrorIs(t, rec.Err, bench.ErrInvalidInstance)
		require.ErrorIs(t, rec.Err, graph.ErrNegativeWeight)
		require.Contains(t, rec.Reason(), "negative edge weight")
		require.Nil(t, rec.PathLength)
		require.False(t, p.Records[bench.NameDFS].Failed)
	}
}

func TestConstantWeights(t *testing.T) {
	s, err := scan.New(
		scan.WithSeed(1),
		scan.WithWeightFn(scan.ConstantWeightFn(2.5)),
		scan.WithFamilies(scan.ChainFamily()),
	)
	require.NoError(t, err)

	points, err := s.Scan([]int{3, 5})
	require.NoError(t, err)
	assert.Equal(t, 5.0, *points[0].Records[bench.NameUCS].PathCost)
	assert.Equal(t, 10.0, *points[1].Records[bench.NameUCS].PathCost)
}

func TestSharedHarnessAndLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	h, err := bench.New()
	require.NoError(t, err)

	s, err := scan.New(scan.WithSeed(3), scan.WithHarness(h), scan.WithLogger(logger))
	require.NoError(t, err)
	_, err = s.Scan([]int{2, 4})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "scan size complete")
	assert.Contains(t, out, `"size":2`)
	assert.Contains(t, out, `"size":4`)
	assert.Contains(t, out, `"records":5`)
	assert.Contains(t, out, `"level":"info"`)
}

func TestSeries(t *testing.T) {
	s, err := scan.New(scan.WithSeed(9))
	require.NoError(t, err)
	points, err := s.Scan([]int{2, 3, 4})
	require.NoError(t, err)

	series := scan.Series(points, bench.NameUCS)
	require.Len(t, series, 3)
	for i, smp := range series {
		assert.Equal(t, points[i].Size, smp.Size)
		assert.Empty(t, cmp.Diff(points[i].Records[bench.NameUCS], smp.Record))
	}

	assert.Empty(t, scan.Series(points, "missing"))
}

func TestUniformIntWeightFn(t *testing.T) {
	w := scan.UniformIntWeightFn(1, 5)
	rng := rand.New(rand.NewSource(11))
	seen := map[float64]bool{}
	for i := 0; i < 500; i++ {
		v := w(rng)
		require.GreaterOrEqual(t, v, 1.0)
		require.LessOrEqual(t, v, 5.0)
		require.Equal(t, math.Trunc(v), v)
		seen[v] = true
	}
	assert.Len(t, seen, 5)

	assert.Panics(t, func() { scan.UniformIntWeightFn(3, 2) })
	assert.Panics(t, func() { scan.UniformIntWeightFn(-1, 2) })
	assert.Panics(t, func() { scan.ConstantWeightFn(-0.5) })
}
