package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededRandSource_Deterministic(t *testing.T) {
	a := NewSeededRandSource(1, 2)
	b := NewSeededRandSource(1, 2)

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.IntN(20), b.IntN(20))
	}
}

func TestRandSource_Ranges(t *testing.T) {
	src := NewRandSource()

	for i := 0; i < 1000; i++ {
		f := src.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)

		n := src.IntN(20)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 20)
	}
}
