package scan

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/searchbench/bench"
)

// DefaultSizes are the sizes of the classic scaling comparison.
var DefaultSizes = []int{5, 10, 15, 20, 25, 30, 35, 40}

// Scanner runs every family's algorithms over a sequence of sizes.
type Scanner struct {
	families []Family
	harness  *bench.Harness
	log      zerolog.Logger
	weight   WeightFn

	seed   int64
	seeded bool
	rng    *rand.Rand
}

// New builds a Scanner. Exactly one random source is needed: WithSeed or
// WithRand. Algorithm names must be unique across families.
func New(opts ...Option) (*Scanner, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !o.Seeded && o.Rand == nil {
		return nil, ErrNeedRandSource
	}

	seen := make(map[string]string)
	for _, f := range o.Families {
		for _, a := range f.Algorithms {
			if prev, dup := seen[a.Name()]; dup {
				return nil, fmt.Errorf("%w: %q in %q and %q", ErrDuplicateAlgorithm, a.Name(), prev, f.Name)
			}
			seen[a.Name()] = f.Name
		}
	}

	h := o.Harness
	if h == nil {
		var err error
		if h, err = bench.New(bench.WithLogger(o.Logger)); err != nil {
			return nil, err
		}
	}

	return &Scanner{
		families: o.Families,
		harness:  h,
		log:      o.Logger,
		weight:   o.WeightFn,
		seed:     o.Seed,
		seeded:   o.Seeded,
		rng:      o.Rand,
	}, nil
}

// Scan builds every family at each size and records each algorithm's run.
// sizes must be positive and strictly ascending; the result keeps their order.
// A family whose instance cannot be built yields failed records for its
// algorithms at that size and the scan continues.
func (s *Scanner) Scan(sizes []int) ([]Point, error) {
	for i, n := range sizes {
		if n <= 0 {
			return nil, fmt.Errorf("%w: sizes[%d]=%d", ErrBadSize, i, n)
		}
		if i > 0 && n <= sizes[i-1] {
			return nil, fmt.Errorf("%w: sizes[%d]=%d after %d", ErrUnsortedSizes, i, n, sizes[i-1])
		}
	}

	rng := s.rng
	if s.seeded {
		rng = rand.New(rand.NewSource(s.seed))
	}

	points := make([]Point, 0, len(sizes))
	for _, n := range sizes {
		p := Point{Size: n, Records: make(map[string]bench.MetricsRecord)}
		for _, f := range s.families {
			s.runFamily(f, n, rng, p.Records)
		}
		s.log.Info().
			Int("size", n).
			Int("records", len(p.Records)).
			Msg("scan size complete")
		points = append(points, p)
	}

	return points, nil
}

func (s *Scanner) runFamily(f Family, n int, rng *rand.Rand, out map[string]bench.MetricsRecord) {
	inst, err := f.Build(n, rng, s.weight)
	if err != nil {
		err = fmt.Errorf("%w: %s family size %d: %w", bench.ErrInvalidInstance, f.Name, n, err)
		s.log.Warn().
			Str("family", f.Name).
			Int("size", n).
			Err(err).
			Msg("family build failed")
		reason := err.Error()
		for _, a := range f.Algorithms {
			out[a.Name()] = bench.MetricsRecord{
				AlgorithmName: a.Name(),
				ProblemLabel:  fmt.Sprintf("%s n=%d", f.Name, n),
				Failed:        true,
				FailureReason: &reason,
				Err:           err,
			}
		}

		return
	}
	for _, a := range f.Algorithms {
		out[a.Name()] = s.harness.Run(a, inst)
	}
}

// Series extracts one algorithm's records in size order. Sizes where the
// algorithm has no record are skipped.
func Series(points []Point, algorithm string) []Sample {
	out := make([]Sample, 0, len(points))
	for _, p := range points {
		if rec, ok := p.Records[algorithm]; ok {
			out = append(out, Sample{Size: p.Size, Record: rec})
		}
	}

	return out
}
