package sim

import "math/rand"

// Source is the single source of randomness for a simulation.
// Float64 returns values in [0, 1). *rand.Rand satisfies it; tests inject
// scripted sequences.
type Source interface {
	Float64() float64
}

// NewSource returns a seeded pseudo-random source.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay randomness
}

// uniform draws from [lo, hi).
func uniform(src Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}
