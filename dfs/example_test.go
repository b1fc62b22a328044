package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/searchbench/dfs"
	"github.com/katalvlaran/searchbench/tree"
)

// ExampleSearch walks a small org chart depth-first.
func ExampleSearch() {
	t := tree.New("ceo")
	cto, _ := t.AddChild(tree.Root, "cto")
	_, _ = t.AddChild(tree.Root, "cfo")
	_, _ = t.AddChild(cto, "dev")

	res, err := dfs.Search(t, "dev")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.NodesExpanded)
	// Output: [ceo cto dev] 3
}
