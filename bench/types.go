package bench

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/searchbench/graph"
	"github.com/katalvlaran/searchbench/grid"
	"github.com/katalvlaran/searchbench/tree"
)

// Sentinel errors for harness runs.
var (
	// ErrInvalidInstance indicates a malformed problem instance.
	ErrInvalidInstance = errors.New("bench: invalid instance")

	// ErrInstanceMismatch indicates an algorithm was given an instance of the wrong form.
	ErrInstanceMismatch = errors.New("bench: instance form not supported by algorithm")

	// ErrAlgorithmPanic indicates the search engine panicked.
	ErrAlgorithmPanic = errors.New("bench: algorithm panicked")

	// ErrNilAlgorithm indicates Run was called with a nil Algorithm.
	ErrNilAlgorithm = errors.New("bench: algorithm is nil")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("bench: invalid option supplied")

	// ErrTargetAbsent indicates a tree instance whose target label appears on no node.
	ErrTargetAbsent = errors.New("bench: target label not in tree")

	// ErrNodeAbsent indicates a graph instance whose start or goal is not a node.
	ErrNodeAbsent = errors.New("bench: node not in graph")
)

// Instance is one problem handed to an Algorithm.
type Instance interface {
	// Label names the instance in metrics records.
	Label() string
	// Validate reports malformed input, wrapping ErrInvalidInstance.
	Validate() error
}

// GridInstance is a grid-form problem.
type GridInstance struct {
	Name        string
	Grid        *grid.Grid
	Start, Goal grid.Position
}

// Label returns Name, or a description of the grid and endpoints.
func (gi GridInstance) Label() string {
	if gi.Name != "" {
		return gi.Name
	}
	if gi.Grid == nil {
		return "grid <nil>"
	}

	return fmt.Sprintf("grid %dx%d %v->%v", gi.Grid.Rows(), gi.Grid.Cols(), gi.Start, gi.Goal)
}

// Validate requires a grid whose start and goal are in bounds and free.
func (gi GridInstance) Validate() error {
	if gi.Grid == nil {
		return fmt.Errorf("%w: nil grid", ErrInvalidInstance)
	}
	if err := gi.Grid.Check(gi.Start); err != nil {
		return fmt.Errorf("%w: start: %w", ErrInvalidInstance, err)
	}
	if err := gi.Grid.Check(gi.Goal); err != nil {
		return fmt.Errorf("%w: goal: %w", ErrInvalidInstance, err)
	}

	return nil
}

// TreeInstance is a tree-form problem.
type TreeInstance struct {
	Name   string
	Tree   *tree.Tree
	Target string
}

// Label returns Name, or a description of the tree and target.
func (ti TreeInstance) Label() string {
	if ti.Name != "" {
		return ti.Name
	}
	if ti.Tree == nil {
		return "tree <nil>"
	}

	return fmt.Sprintf("tree n=%d target=%s", ti.Tree.Len(), ti.Target)
}

// Validate requires a tree with at least one node labelled Target.
func (ti TreeInstance) Validate() error {
	if ti.Tree == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidInstance)
	}
	if !ti.Tree.Contains(ti.Target) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidInstance, ErrTargetAbsent, ti.Target)
	}

	return nil
}

// GraphInstance is a weighted-graph problem.
type GraphInstance struct {
	Name        string
	Graph       *graph.Graph
	Start, Goal string
}

// Label returns Name, or a description of the graph and endpoints.
func (gi GraphInstance) Label() string {
	if gi.Name != "" {
		return gi.Name
	}
	if gi.Graph == nil {
		return "graph <nil>"
	}

	return fmt.Sprintf("graph n=%d %s->%s", gi.Graph.Len(), gi.Start, gi.Goal)
}

// Validate requires a graph containing both Start and Goal.
func (gi GraphInstance) Validate() error {
	if gi.Graph == nil {
		return fmt.Errorf("%w: nil graph", ErrInvalidInstance)
	}
	for _, id := range []string{gi.Start, gi.Goal} {
		if !gi.Graph.HasNode(id) {
			return fmt.Errorf("%w: %w: %q", ErrInvalidInstance, ErrNodeAbsent, id)
		}
	}

	return nil
}

// MetricsRecord is the normalized outcome of one run. It is the only shape
// reporting and plotting code may depend on.
type MetricsRecord struct {
	AlgorithmName    string   `json:"algorithm_name"`
	ProblemLabel     string   `json:"problem_label"`
	PathLength       *int     `json:"path_length"` // edges; nil when no path or failed
	PathCost         *float64 `json:"path_cost"`   // nil when no path or failed
	NodesExpanded    int      `json:"nodes_expanded"`
	PeakFrontierSize int      `json:"peak_frontier_size"`
	ElapsedTimeMS    float64  `json:"elapsed_time_ms"`
	Failed           bool     `json:"failed"`
	FailureReason    *string  `json:"failure_reason"` // nil unless Failed

	// Err is the failure cause for errors.Is checks; nil on success.
	Err error `json:"-"`
}

// Reason returns the failure reason, or "" for a successful run.
func (m MetricsRecord) Reason() string {
	if m.FailureReason == nil {
		return ""
	}

	return *m.FailureReason
}

// Found reports whether the run succeeded and produced a path.
func (m MetricsRecord) Found() bool {
	return !m.Failed && m.PathLength != nil
}
