package engine

import "math/rand"

// Rand is the randomness the engine consumes. Accuracy, crit and damage
// rolls are all single-shot draws from this source, so pinning it makes a
// whole battle reproducible.
type Rand interface {
	Float64() float64
}

// NewRand returns a deterministic source for the given seed.
// *rand.Rand satisfies Rand directly.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}
