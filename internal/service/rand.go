package service

import (
	"math/rand/v2"
)

// MathRandSource implements ports.RandSource on math/rand/v2. Draw outcomes
// do not need to be cryptographically unpredictable, only fair; the injectable
// interface exists so tests can force a specific outcome.
type MathRandSource struct {
	r *rand.Rand
}

// NewRandSource creates a source seeded from the global generator.
func NewRandSource() *MathRandSource {
	return &MathRandSource{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededRandSource creates a deterministic source for tests.
func NewSeededRandSource(seed1, seed2 uint64) *MathRandSource {
	return &MathRandSource{r: rand.New(rand.NewPCG(seed1, seed2))}
}

func (s *MathRandSource) Float64() float64 {
	return s.r.Float64()
}

func (s *MathRandSource) IntN(n int) int {
	return s.r.IntN(n)
}
