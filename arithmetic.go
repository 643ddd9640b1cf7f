package vecnd

import (
	"fmt"
	"math"

	"github.com/hupe1980/vecnd/internal/math64"
)

// checkDimensions rejects operands of unequal dimensions. Mismatches are
// never silently truncated or padded.
func (v Vector) checkDimensions(other Vector) error {
	if len(v.data) != len(other.data) {
		return &ErrDimensionMismatch{Expected: len(v.data), Actual: len(other.data)}
	}

	return nil
}

// Add returns the elementwise sum v + other.
func (v Vector) Add(other Vector) (Vector, error) {
	if err := v.checkDimensions(other); err != nil {
		return Vector{}, err
	}

	out := make([]float64, len(v.data))
	math64.AddTo(out, v.data, other.data)

	return Vector{data: out}, nil
}

// Sub returns the elementwise difference v - other.
func (v Vector) Sub(other Vector) (Vector, error) {
	if err := v.checkDimensions(other); err != nil {
		return Vector{}, err
	}

	out := make([]float64, len(v.data))
	math64.SubTo(out, v.data, other.data)

	return Vector{data: out}, nil
}

// Neg returns the elementwise negation -v.
func (v Vector) Neg() Vector {
	out := make([]float64, len(v.data))
	math64.NegTo(out, v.data)

	return Vector{data: out}
}

// Scale returns v multiplied by scalar. Scalar multiplication commutes, so
// this covers both s*v and v*s.
func (v Vector) Scale(scalar float64) Vector {
	out := make([]float64, len(v.data))
	math64.ScaleTo(out, v.data, scalar)

	return Vector{data: out}
}

// Div returns v divided by scalar. A scalar whose magnitude is below the
// machine epsilon is rejected.
func (v Vector) Div(scalar float64) (Vector, error) {
	if nearZero(scalar) {
		return Vector{}, fmt.Errorf("%w: division by near-zero scalar %g", ErrInvalidOperation, scalar)
	}

	out := make([]float64, len(v.data))
	math64.DivScalarTo(out, v.data, scalar)

	return Vector{data: out}, nil
}

// Equal reports approximate equality: equal dimensions and every
// corresponding component within Epsilon. This is not bit equality.
func (v Vector) Equal(other Vector) bool {
	if len(v.data) != len(other.data) {
		return false
	}
	for i := range v.data {
		if math.Abs(v.data[i]-other.data[i]) >= Epsilon {
			return false
		}
	}

	return true
}
