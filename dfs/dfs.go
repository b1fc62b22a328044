package dfs

import (
	"errors"

	"github.com/katalvlaran/searchbench/search"
	"github.com/katalvlaran/searchbench/tree"
)

// ErrNilTree is returned when Search is given a nil tree.
var ErrNilTree = errors.New("dfs: tree is nil")

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	tree     *tree.Tree
	target   string
	stack    []int // current root-to-node path
	expanded int
	peak     int
}

// Search returns the root-to-target path of labels for the first node, in
// pre-order, labelled target.
func Search(t *tree.Tree, target string) (search.Result[string], error) {
	res, err := SearchIndex(t, target)
	if err != nil || !res.Found {
		return search.NotFound[string](res.NodesExpanded, res.PeakFrontier), err
	}
	labels := make([]string, len(res.Path))
	for i, idx := range res.Path {
		labels[i] = t.Label(idx)
	}

	return search.Result[string]{
		Path:          labels,
		Cost:          res.Cost,
		Found:         true,
		NodesExpanded: res.NodesExpanded,
		PeakFrontier:  res.PeakFrontier,
	}, nil
}

// SearchIndex is Search returning arena indices instead of labels, which
// identifies the exact node when labels repeat.
func SearchIndex(t *tree.Tree, target string) (search.Result[int], error) {
	if t == nil {
		return search.Result[int]{}, ErrNilTree
	}
	w := &dfsWalker{tree: t, target: target}
	if !w.traverse(tree.Root) {
		return search.NotFound[int](w.expanded, w.peak), nil
	}
	path := make([]int, len(w.stack))
	copy(path, w.stack)

	return search.Result[int]{
		Path:          path,
		Cost:          float64(len(path) - 1),
		Found:         true,
		NodesExpanded: w.expanded,
		PeakFrontier:  w.peak,
	}, nil
}

// traverse visits node i and its descendants, reporting whether the target was found.
// On success the stack holds the path to the match.
func (w *dfsWalker) traverse(i int) bool {
	w.stack = append(w.stack, i)
	if len(w.stack) > w.peak {
		w.peak = len(w.stack)
	}
	w.expanded++
	if w.tree.Label(i) == w.target {
		return true
	}
	for _, c := range w.tree.Children(i) {
		if w.traverse(c) {
			return true
		}
	}
	w.stack = w.stack[:len(w.stack)-1]

	return false
}
