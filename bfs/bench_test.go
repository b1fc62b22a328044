package bfs_test

import (
	"testing"

	"github.com/katalvlaran/searchbench/bfs"
	"github.com/katalvlaran/searchbench/grid"
)

// BenchmarkSearch_OpenGrid runs BFS corner to corner on an M×M open grid.
func BenchmarkSearch_OpenGrid(b *testing.B) {
	const M = 100
	g, err := grid.Open(M, M)
	if err != nil {
		b.Fatal(err)
	}
	start, goal := grid.Position{}, grid.Position{Row: M - 1, Col: M - 1}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Search(g, start, goal)
	}
}
