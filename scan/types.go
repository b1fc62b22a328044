package scan

import (
	"errors"

	"github.com/katalvlaran/searchbench/bench"
)

// Sentinel errors for scanner construction and analysis.
var (
	// ErrNeedRandSource indicates neither WithSeed nor WithRand was supplied.
	ErrNeedRandSource = errors.New("scan: random source required (WithSeed or WithRand)")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("scan: invalid option supplied")

	// ErrDuplicateAlgorithm indicates two families share an algorithm name.
	ErrDuplicateAlgorithm = errors.New("scan: algorithm name used by more than one family")

	// ErrBadSize indicates a non-positive size.
	ErrBadSize = errors.New("scan: size must be positive")

	// ErrUnsortedSizes indicates sizes that are not strictly ascending.
	ErrUnsortedSizes = errors.New("scan: sizes must be strictly ascending")

	// ErrTooFewPoints indicates fewer than two usable samples for a fit.
	ErrTooFewPoints = errors.New("scan: need at least two positive samples")

	// ErrUnknownMetric indicates an unsupported Metric value.
	ErrUnknownMetric = errors.New("scan: unknown metric")
)

// Point holds every algorithm's record for one size.
type Point struct {
	Size    int                            `json:"size"`
	Records map[string]bench.MetricsRecord `json:"records"`
}

// Sample is one entry of a single algorithm's series.
type Sample struct {
	Size   int
	Record bench.MetricsRecord
}

// Metric selects the MetricsRecord field a growth fit uses.
type Metric int

const (
	// NodesExpanded fits MetricsRecord.NodesExpanded.
	NodesExpanded Metric = iota
	// PeakFrontier fits MetricsRecord.PeakFrontierSize.
	PeakFrontier
	// ElapsedTime fits MetricsRecord.ElapsedTimeMS.
	ElapsedTime
)

// String returns the metric's record field name.
func (m Metric) String() string {
	switch m {
	case NodesExpanded:
		return "nodes_expanded"
	case PeakFrontier:
		return "peak_frontier_size"
	case ElapsedTime:
		return "elapsed_time_ms"
	default:
		return "unknown"
	}
}

// Growth is a power-law fit metric ≈ e^Intercept · size^Exponent.
type Growth struct {
	Metric    Metric
	Exponent  float64
	Intercept float64
	RSquared  float64
	// Samples is the number of points that entered the fit.
	Samples int
}
