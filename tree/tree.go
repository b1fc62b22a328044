// Package tree provides the rooted, labelled tree searched by depth-first search.
//
// The tree is an arena: nodes live in a slice and refer to their children by
// index, so ownership is exclusive by construction and no node can have two
// parents. Node 0 is always the root. Labels need not be unique.
package tree

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for tree construction.
var (
	// ErrNodeIndex indicates a parent index outside the arena.
	ErrNodeIndex = errors.New("tree: node index out of range")
	// ErrBadDepth indicates a non-positive depth for Balanced.
	ErrBadDepth = errors.New("tree: depth must be at least 1")
)

// Root is the arena index of the root node.
const Root = 0

// Tree is an arena of labelled nodes with ordered child lists.
type Tree struct {
	labels   []string
	children [][]int
	parent   []int // -1 for the root
}

// New returns a tree holding a single root labelled rootLabel.
func New(rootLabel string) *Tree {
	return &Tree{
		labels:   []string{rootLabel},
		children: [][]int{nil},
		parent:   []int{-1},
	}
}

// AddChild appends a new node labelled label as the last child of parent
// and returns its index.
func (t *Tree) AddChild(parent int, label string) (int, error) {
	if parent < 0 || parent >= len(t.labels) {
		return 0, fmt.Errorf("%w: parent %d, size %d", ErrNodeIndex, parent, len(t.labels))
	}
	i := len(t.labels)
	t.labels = append(t.labels, label)
	t.children = append(t.children, nil)
	t.parent = append(t.parent, parent)
	t.children[parent] = append(t.children[parent], i)

	return i, nil
}

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.labels) }

// Label returns the label of node i.
func (t *Tree) Label(i int) string { return t.labels[i] }

// Children returns the ordered child indices of node i.
// The slice is owned by t and must not be modified.
func (t *Tree) Children(i int) []int { return t.children[i] }

// Parent returns the parent of node i; ok is false for the root.
func (t *Tree) Parent(i int) (p int, ok bool) {
	p = t.parent[i]
	return p, p >= 0
}

// Contains reports whether any node carries label.
func (t *Tree) Contains(label string) bool {
	for _, l := range t.labels {
		if l == label {
			return true
		}
	}

	return false
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree) Height() int {
	depth := make([]int, len(t.labels))
	h := 0
	// Children always have larger indices than their parent.
	for i := range t.labels {
		if p := t.parent[i]; p >= 0 {
			depth[i] = depth[p] + 1
		} else {
			depth[i] = 1
		}
		if depth[i] > h {
			h = depth[i]
		}
	}

	return h
}

// LevelLabel names nodes of a balanced tree by their height above the leaves:
// leaves are "N1", their parents "N2", and the root of a depth-d tree "Nd".
func LevelLabel(height int) string {
	return "N" + strconv.Itoa(height)
}

// Balanced builds a complete binary tree with depth levels. Each node is labelled
// by label(h), where h is its height above the leaves (leaves have h == 1).
// A nil label uses LevelLabel. Nodes are added level by level.
func Balanced(depth int, label func(height int) string) (*Tree, error) {
	if depth < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDepth, depth)
	}
	if label == nil {
		label = LevelLabel
	}
	t := New(label(depth))
	level := []int{Root}
	for h := depth - 1; h >= 1; h-- {
		next := make([]int, 0, 2*len(level))
		for _, p := range level {
			for k := 0; k < 2; k++ {
				c, _ := t.AddChild(p, label(h))
				next = append(next, c)
			}
		}
		level = next
	}

	return t, nil
}
