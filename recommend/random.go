package recommend

import "math/rand/v2"

// Random is the only source of nondeterminism in the engine: sampling, the accessory
// coin flip, score jitter and phrase choice all go through it.
type Random interface {
	Float64() float64
	IntN(n int) int
}

// NewRandom returns a deterministic source for the given seed.
func NewRandom(seed uint64) Random {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func newRandomSeeded() Random {
	return NewRandom(rand.Uint64())
}
