package ops

import (
	"fmt"
	"math"

	"github.com/hupe1980/vecnd"
	"github.com/hupe1980/vecnd/internal/math64"
)

// Multiply returns the per-component product of v1 and v2.
func Multiply(v1, v2 vecnd.Vector) (vecnd.Vector, error) {
	a, b := v1.Data(), v2.Data()
	if len(a) != len(b) {
		return vecnd.Vector{}, &vecnd.ErrDimensionMismatch{Expected: len(a), Actual: len(b)}
	}

	out := make([]float64, len(a))
	math64.MulTo(out, a, b)

	return vecnd.FromSlice(out), nil
}

// Divide returns the per-component quotient v1 / v2. Any divisor component
// whose magnitude is below the machine epsilon is rejected.
func Divide(v1, v2 vecnd.Vector) (vecnd.Vector, error) {
	a, b := v1.Data(), v2.Data()
	if len(a) != len(b) {
		return vecnd.Vector{}, &vecnd.ErrDimensionMismatch{Expected: len(a), Actual: len(b)}
	}

	out := make([]float64, len(a))
	for i := range a {
		if math.Abs(b[i]) < math64.Eps {
			return vecnd.Vector{}, fmt.Errorf("%w: division by near-zero component at index %d", vecnd.ErrInvalidOperation, i)
		}
		out[i] = a[i] / b[i]
	}

	return vecnd.FromSlice(out), nil
}
