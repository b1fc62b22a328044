// Package bench runs search algorithms against problem instances and turns
// each run into a comparable MetricsRecord.
//
// What:
//
//   - Instance: a problem in grid, tree or graph form (GridInstance,
//     TreeInstance, GraphInstance). Validate reports malformed input.
//   - Algorithm: a named adapter around one search engine (BFS, DFS, UCS,
//     AStar/NewAStar). Adapters reject instances of the wrong form.
//   - Harness.Run: validates the instance, times only the search call with a
//     monotonic clock, and normalizes the outcome into a MetricsRecord.
//   - Harness.Compare: runs one instance against several algorithms in order.
//
// Failure isolation:
//
//	Invalid instances, form mismatches, engine errors and panics never escape
//	Run. They become records with Failed == true, a FailureReason, and Err set
//	for errors.Is checks, so a sweep over many runs always completes.
//	"No path" is not a failure: PathLength and PathCost are nil instead.
//
// Errors:
//
//   - ErrInvalidInstance:  malformed instance (wraps grid/graph/tree causes).
//   - ErrInstanceMismatch: algorithm given an instance of the wrong form.
//   - ErrAlgorithmPanic:   the engine panicked.
//   - ErrNilAlgorithm:     Run called with a nil Algorithm.
//   - ErrOptionViolation:  New called with an invalid option.
//
// Runs are sequential; a Harness must not be shared across goroutines while
// a custom Clock with state is installed.
package bench
