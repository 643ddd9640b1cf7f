package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/vecnd"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FillUniform fills dst with random values in range [0, 1).
// Locks only once per call (preferred over calling Float64 in a loop).
func (r *RNG) FillUniform(dst []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float64()
	}
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

// Weights generates num random weights in range [minVal, maxVal).
func (r *RNG) Weights(num int, minVal, maxVal float64) []float64 {
	out := make([]float64, num)
	r.FillUniformRange(out, minVal, maxVal)
	return out
}

// UniformVectors generates random vectors with values in range [0, 1).
func (r *RNG) UniformVectors(num int, dimensions int) []vecnd.Vector {
	r.mu.Lock()
	defer r.mu.Unlock()

	vectors := make([]vecnd.Vector, num)
	for i := range vectors {
		v := vecnd.New(dimensions)
		data := v.Data()
		for j := range data {
			data[j] = r.rand.Float64()
		}
		vectors[i] = v
	}

	return vectors
}

// GaussianVectors generates random vectors with values from a standard
// normal distribution.
func (r *RNG) GaussianVectors(num int, dimensions int) []vecnd.Vector {
	r.mu.Lock()
	defer r.mu.Unlock()

	vectors := make([]vecnd.Vector, num)
	for i := range vectors {
		v := vecnd.New(dimensions)
		data := v.Data()
		for j := range data {
			data[j] = r.rand.NormFloat64()
		}
		vectors[i] = v
	}

	return vectors
}

// UnitVectors generates L2-normalized random vectors (on the hypersphere).
// Uses a Gaussian distribution for uniformity on the sphere.
func (r *RNG) UnitVectors(num int, dimensions int) []vecnd.Vector {
	r.mu.Lock()
	defer r.mu.Unlock()

	vectors := make([]vecnd.Vector, num)
	for i := range vectors {
		v := vecnd.New(dimensions)
		data := v.Data()

		var norm2 float64
		for j := range data {
			data[j] = r.rand.NormFloat64()
			norm2 += data[j] * data[j]
		}
		if norm2 == 0 && dimensions > 0 {
			data[0] = 1
			norm2 = 1
		}

		inv := 1 / math.Sqrt(norm2)
		for j := range data {
			data[j] *= inv
		}
		vectors[i] = v
	}

	return vectors
}
