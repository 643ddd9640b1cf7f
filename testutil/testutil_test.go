package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNGDeterminism(t *testing.T) {
	a := NewRNG(42).UniformVectors(5, 8)
	b := NewRNG(42).UniformVectors(5, 8)

	require.Len(t, a, 5)
	for i := range a {
		assert.Equal(t, a[i].Data(), b[i].Data())
	}
}

func TestRNGReset(t *testing.T) {
	rng := NewRNG(7)
	first := rng.Float64()
	rng.Reset()
	assert.Equal(t, first, rng.Float64())
	assert.Equal(t, int64(7), rng.Seed())
}

func TestUniformVectorsRange(t *testing.T) {
	for _, v := range NewRNG(1).UniformVectors(10, 16) {
		require.Equal(t, 16, v.Dimensions())
		for _, x := range v.Data() {
			assert.GreaterOrEqual(t, x, 0.0)
			assert.Less(t, x, 1.0)
		}
	}
}

func TestFillUniformRange(t *testing.T) {
	dst := make([]float64, 100)
	NewRNG(2).FillUniformRange(dst, -1, 1)
	for _, x := range dst {
		assert.GreaterOrEqual(t, x, -1.0)
		assert.Less(t, x, 1.0)
	}
}

func TestUnitVectors(t *testing.T) {
	for _, v := range NewRNG(3).UnitVectors(10, 32) {
		assert.InDelta(t, 1.0, v.Magnitude(), 1e-9)
	}
}

func TestGaussianVectors(t *testing.T) {
	vs := NewRNG(4).GaussianVectors(100, 8)
	require.Len(t, vs, 100)

	// Component mean of a standard normal sample should be near zero.
	var sum float64
	for _, v := range vs {
		for _, x := range v.Data() {
			sum += x
		}
	}
	assert.InDelta(t, 0, sum/float64(100*8), 0.15)
}
