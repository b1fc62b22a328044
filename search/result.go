// Package search defines the result shape shared by every search engine.
//
// A Result is produced once per run and never mutated afterwards.
// Found == false (with a nil Path) is the ordinary "no path" outcome;
// it is never reported as an error.
package search

// Result is the outcome of one search over nodes of type N.
type Result[N comparable] struct {
	// Path lists the nodes from start to goal inclusive; nil when not Found.
	Path []N
	// Cost is the summed edge cost of Path; zero when not Found.
	Cost float64
	// Found reports whether a path exists.
	Found bool
	// NodesExpanded counts nodes removed from the frontier and processed.
	NodesExpanded int
	// PeakFrontier is the largest size the frontier reached.
	PeakFrontier int
}

// NotFound returns a Result with no path and the given counters.
func NotFound[N comparable](expanded, peak int) Result[N] {
	return Result[N]{NodesExpanded: expanded, PeakFrontier: peak}
}

// PathLength returns the number of edges on Path, or -1 when not Found.
func (r Result[N]) PathLength() int {
	if !r.Found {
		return -1
	}

	return len(r.Path) - 1
}

// Summary drops the node type so heterogeneous engines can be compared.
func (r Result[N]) Summary() Summary {
	return Summary{
		Found:         r.Found,
		PathLength:    r.PathLength(),
		Cost:          r.Cost,
		NodesExpanded: r.NodesExpanded,
		PeakFrontier:  r.PeakFrontier,
	}
}

// Summary is the type-erased form of a Result.
type Summary struct {
	Found         bool
	PathLength    int // edges; -1 when not Found
	Cost          float64
	NodesExpanded int
	PeakFrontier  int
}

// Reverse reverses p in place. Engines build paths goal-first and flip them.
func Reverse[N any](p []N) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}
