package ising

import "math/rand"

// Source produces the uniform draws a run consumes. *rand.Rand satisfies it.
type Source interface {
	// Float64 returns a uniform sample in [0, 1).
	Float64() float64
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
}

// NewSource returns a deterministic source for seed.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
