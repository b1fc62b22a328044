// Package scan measures how the search algorithms scale with problem size.
//
// A Scanner owns a list of problem Families. For every requested size it
// builds one instance per family and hands it to a bench.Harness for each of
// the family's algorithms, yielding one Point per size:
//
//	s, _ := scan.New(scan.WithSeed(42))
//	points, _ := s.Scan([]int{5, 10, 15, 20})
//	bfs := scan.Series(points, bench.NameBFS)
//	g, _ := scan.FitGrowth(bfs, scan.NodesExpanded)
//
// Default families follow the classic comparison:
//
//   - GridFamily  - open size×size grid, corner to corner (BFS, A*-manhattan, A*-euclidean)
//   - TreeFamily  - balanced binary tree of depth max(1, size/2), target "N1" (DFS)
//   - ChainFamily - chain of size nodes with random weights (UCS)
//
// Randomness never comes from a global source. WithSeed rebuilds its
// generator on every Scan call, so repeated scans are identical; WithRand
// hands over a caller-owned generator that keeps advancing.
//
// FitGrowth fits log(metric) = a + b·log(size) by least squares (gonum/stat)
// and reports the growth exponent b. Open-grid BFS gives b ≈ 2, the chain
// gives b ≈ 1.
package scan
