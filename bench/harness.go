package bench

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/searchbench/search"
)

// Harness times algorithm runs and produces MetricsRecords.
type Harness struct {
	log   zerolog.Logger
	clock Clock
}

// New builds a Harness, applying any number of functional Options.
func New(opts ...Option) (*Harness, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Harness{log: o.Logger, clock: o.Clock}, nil
}

// Run executes alg on inst and returns its record. It never panics and never
// returns an error: failures are reported in the record.
func (h *Harness) Run(alg Algorithm, inst Instance) MetricsRecord {
	rec := MetricsRecord{}
	var invalid error
	if inst == nil {
		invalid = fmt.Errorf("%w: nil instance", ErrInvalidInstance)
	} else {
		rec.ProblemLabel, invalid = inspect(inst)
	}
	if alg == nil {
		return h.fail(rec, ErrNilAlgorithm)
	}
	rec.AlgorithmName = alg.Name()
	if invalid != nil {
		return h.fail(rec, invalid)
	}

	sum, elapsed, err := h.timed(alg, inst)
	rec.ElapsedTimeMS = float64(elapsed) / float64(time.Millisecond)
	if err != nil {
		return h.fail(rec, err)
	}

	rec.NodesExpanded = sum.NodesExpanded
	rec.PeakFrontierSize = sum.PeakFrontier
	if sum.Found {
		length, cost := sum.PathLength, sum.Cost
		rec.PathLength = &length
		rec.PathCost = &cost
	}
	h.log.Debug().
		Str("algorithm", rec.AlgorithmName).
		Str("problem", rec.ProblemLabel).
		Bool("found", sum.Found).
		Int("nodes_expanded", rec.NodesExpanded).
		Int("peak_frontier", rec.PeakFrontierSize).
		Float64("elapsed_ms", rec.ElapsedTimeMS).
		Msg("run complete")

	return rec
}

// Compare runs inst against each algorithm in order.
func (h *Harness) Compare(inst Instance, algs ...Algorithm) []MetricsRecord {
	out := make([]MetricsRecord, 0, len(algs))
	for _, a := range algs {
		out = append(out, h.Run(a, inst))
	}

	return out
}

// inspect labels and validates inst. A panic there, such as a value method
// called through a nil *GridInstance, is reported as ErrInvalidInstance.
func inspect(inst Instance) (label string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %T: %v", ErrInvalidInstance, inst, r)
		}
	}()
	label = inst.Label()

	return label, inst.Validate()
}

// timed brackets only the search call with the clock and converts a panic
// into ErrAlgorithmPanic.
func (h *Harness) timed(alg Algorithm, inst Instance) (sum search.Summary, elapsed time.Duration, err error) {
	start := h.clock()
	defer func() {
		elapsed = h.clock().Sub(start)
		if r := recover(); r != nil {
			sum = search.Summary{}
			err = fmt.Errorf("%w: %v", ErrAlgorithmPanic, r)
		}
	}()
	sum, err = alg.Search(inst)

	return sum, 0, err
}

func (h *Harness) fail(rec MetricsRecord, err error) MetricsRecord {
	rec.Failed = true
	reason := err.Error()
	rec.FailureReason = &reason
	rec.Err = err
	rec.PathLength, rec.PathCost = nil, nil
	rec.NodesExpanded, rec.PeakFrontierSize = 0, 0
	h.log.Warn().
		Str("algorithm", rec.AlgorithmName).
		Str("problem", rec.ProblemLabel).
		Err(err).
		Msg("run failed")

	return rec
}

// NodeSavings returns the percentage of nodes other expands fewer than base.
// ok is false when either run failed or base expanded nothing.
func NodeSavings(base, other MetricsRecord) (pct float64, ok bool) {
	if base.Failed || other.Failed || base.NodesExpanded == 0 {
		return 0, false
	}
	b := float64(base.NodesExpanded)

	return (b - float64(other.NodesExpanded)) / b * 100, true
}
