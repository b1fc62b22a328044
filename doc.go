// Package searchbench benchmarks classic uninformed and informed search
// algorithms against shared problem instances.
//
// 🚀 What is searchbench?
//
//	A small, deterministic, single-threaded toolkit that brings together:
//		• Problem models: occupancy grids, labelled trees, weighted graphs
//		• Searches: BFS (grid), DFS (tree), UCS (weighted graph), A* (grid)
//		• Harness: timed runs, failure isolation, uniform metrics records
//		• Scanner: seeded problem families, size sweeps, growth fits
//
// Every run reports the same shape: path existence, path length and cost,
// nodes expanded, peak frontier size and elapsed wall-clock time. Reruns on
// an unmodified model give identical results; only the time varies.
//
// Packages:
//
//	grid/     — rectangular free/blocked grid, 4-connected moves
//	tree/     — arena tree of labelled nodes, balanced builder
//	graph/    — directed graph with non-negative edge weights
//	search/   — Result and Summary shared by every engine
//	bfs/      — breadth-first grid search
//	dfs/      — depth-first tree search
//	ucs/      — uniform-cost graph search
//	astar/    — A* grid search, Manhattan & Euclidean heuristics
//	bench/    — Harness, Algorithm adapters, MetricsRecord
//	problems/ — fixed sample instances
//	scan/     — Scanner, Series, FitGrowth
//
// Quick example:
//
//	h, _ := bench.New()
//	astarM, _ := bench.NewAStar("manhattan")
//	for _, r := range h.Compare(problems.MazeGrid(), bench.BFS(), astarM) {
//		fmt.Println(r.AlgorithmName, r.NodesExpanded)
//	}
//
//	go get github.com/katalvlaran/searchbench
package searchbench
