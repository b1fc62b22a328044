package scan

import (
	"fmt"
	"math/rand"
)

// Default chain weight bounds, inclusive.
const (
	DefaultMinWeight = 1
	DefaultMaxWeight = 5
)

// WeightFn draws one edge weight from rng. It must use only rng for
// randomness so scans stay reproducible.
type WeightFn func(rng *rand.Rand) float64

// UniformIntWeightFn returns a WeightFn sampling integers uniformly in [lo, hi].
// Panics if lo < 0 or hi < lo.
func UniformIntWeightFn(lo, hi int) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("scan: UniformIntWeightFn: require 0 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		return float64(lo + rng.Intn(hi-lo+1))
	}
}

// ConstantWeightFn returns a WeightFn that ignores rng and yields value.
// Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("scan: ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// DefaultWeightFn draws integers in [DefaultMinWeight, DefaultMaxWeight].
func DefaultWeightFn() WeightFn {
	return UniformIntWeightFn(DefaultMinWeight, DefaultMaxWeight)
}
