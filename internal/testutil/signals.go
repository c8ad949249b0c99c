package testutil

import (
	"math/rand"

	"golang.org/x/exp/constraints"
)

// Linspace returns n evenly spaced values from lo to hi, both included.
// n == 1 yields lo.
func Linspace[F constraints.Float](lo, hi float64, n int) []F {
	if n <= 0 {
		return nil
	}
	out := make([]F, n)
	if n == 1 {
		out[0] = F(lo)
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = F(lo + step*float64(i))
	}
	out[n-1] = F(hi)
	return out
}

// DeterministicUniform generates uniformly distributed values in [lo, hi)
// with a fixed seed for reproducibility.
func DeterministicUniform[F constraints.Float](seed int64, lo, hi float64, length int) []F {
	out := make([]F, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = F(lo + rng.Float64()*(hi-lo))
	}
	return out
}

// Negated returns a copy of x with every element negated.
func Negated[F constraints.Float](x []F) []F {
	out := make([]F, len(x))
	for i, v := range x {
		out[i] = -v
	}
	return out
}
