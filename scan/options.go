package scan

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/searchbench/bench"
)

// Option configures a Scanner via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds Scanner parameters.
type Options struct {
	// Seed rebuilds the generator at the start of every Scan when Seeded is set.
	Seed   int64
	Seeded bool

	// Rand is a caller-owned generator used when no seed is given.
	Rand *rand.Rand

	// WeightFn draws chain edge weights.
	WeightFn WeightFn

	// Families are scanned in order.
	Families []Family

	// Harness runs and times each search. Nil builds one with Logger.
	Harness *bench.Harness

	// Logger receives progress (Info per size).
	Logger zerolog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the default families and weights, a
// no-op logger and no random source.
func DefaultOptions() Options {
	return Options{
		WeightFn: DefaultWeightFn(),
		Families: DefaultFamilies(),
		Logger:   zerolog.Nop(),
	}
}

// WithSeed makes every Scan draw from a fresh generator seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed, o.Seeded = seed, true
	}
}

// WithRand supplies a caller-owned generator. It is ignored if WithSeed is also given.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: rand is nil", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}

// WithWeightFn overrides the chain edge weight generator.
func WithWeightFn(fn WeightFn) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: weight fn is nil", ErrOptionViolation)
			return
		}
		o.WeightFn = fn
	}
}

// WithFamilies replaces the scanned families.
func WithFamilies(fams ...Family) Option {
	return func(o *Options) {
		if len(fams) == 0 {
			o.err = fmt.Errorf("%w: no families", ErrOptionViolation)
			return
		}
		for _, f := range fams {
			if f.Build == nil || len(f.Algorithms) == 0 {
				o.err = fmt.Errorf("%w: family %q needs a builder and algorithms", ErrOptionViolation, f.Name)
				return
			}
			for i, a := range f.Algorithms {
				if a == nil {
					o.err = fmt.Errorf("%w: family %q algorithm %d is nil", ErrOptionViolation, f.Name, i)
					return
				}
			}
		}
		o.Families = fams
	}
}

// WithHarness runs searches on h instead of a scanner-built harness.
func WithHarness(h *bench.Harness) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: harness is nil", ErrOptionViolation)
			return
		}
		o.Harness = h
	}
}

// WithLogger sets the structured logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
