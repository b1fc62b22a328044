package scan

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/searchbench/bench"
)

// FitGrowth fits log(metric) = a + b·log(size) over series by ordinary least
// squares. Failed runs and non-positive values are left out; at least two
// distinct sizes must remain. A metric that is constant across sizes fits
// exactly with Exponent 0 and RSquared 1.
func FitGrowth(series []Sample, m Metric) (Growth, error) {
	xs := make([]float64, 0, len(series))
	ys := make([]float64, 0, len(series))
	for _, s := range series {
		if s.Record.Failed {
			continue
		}
		v, err := metricValue(s.Record, m)
		if err != nil {
			return Growth{}, err
		}
		if v <= 0 || s.Size <= 0 {
			continue
		}
		xs = append(xs, math.Log(float64(s.Size)))
		ys = append(ys, math.Log(v))
	}
	if len(xs) < 2 || xs[0] == xs[len(xs)-1] {
		return Growth{}, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(xs))
	}

	a, b := stat.LinearRegression(xs, ys, nil, false)
	// RSquared divides by the total sum of squares, which is zero for a flat series.
	r2 := 1.0
	if !constant(ys) {
		r2 = stat.RSquared(xs, ys, nil, a, b)
	}

	return Growth{
		Metric:    m,
		Exponent:  b,
		Intercept: a,
		RSquared:  r2,
		Samples:   len(xs),
	}, nil
}

func constant(v []float64) bool {
	for _, x := range v[1:] {
		if x != v[0] {
			return false
		}
	}

	return true
}

func metricValue(r bench.MetricsRecord, m Metric) (float64, error) {
	switch m {
	case NodesExpanded:
		return float64(r.NodesExpanded), nil
	case PeakFrontier:
		return float64(r.PeakFrontierSize), nil
	case ElapsedTime:
		return r.ElapsedTimeMS, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownMetric, int(m))
	}
}
