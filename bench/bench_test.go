package bench_test

import (
	"testing"

	"github.com/katalvlaran/searchbench/bench"
	"github.com/katalvlaran/searchbench/problems"
)

// BenchmarkRun measures harness overhead around a tiny BFS run.
func BenchmarkRun(b *testing.B) {
	h, err := bench.New()
	if err != nil {
		b.Fatal(err)
	}
	inst := problems.SimpleGrid()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.Run(bench.BFS(), inst)
	}
}
